// Package gui runs the game in a desktop window with Ebitengine.
// Unlike a terminal, a window reports key releases, so the held direction
// follows the keyboard exactly.
package gui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-doodle/internal/audio"
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

// Default window size in world units when the config leaves it open.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// errQuit ends RunGame without reporting a failure.
var errQuit = errors.New("gui: quit")

// Options configures a window run.
type Options struct {
	Config     config.DoodleConfig
	Endless    bool
	Seed       int64
	TickRate   int
	HighScores doodle.HighScores
	Audio      *audio.Player
	Logger     *log.Logger
}

// Game adapts a doodle session to ebiten.Game. Every Update is one
// simulation tick, so the window's TPS is the session's tick rate.
type Game struct {
	session *doodle.Session
	vp      doodle.Viewport
	seed    int64
	audio   *audio.Player
	logger  *log.Logger
}

// NewGame creates the session and starts the first run.
func NewGame(opts Options) *Game {
	cfg := opts.Config
	if opts.Endless {
		cfg.Scoring.WinningScore = 0
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id := doodle.GameID
	if opts.Endless {
		id = doodle.EndlessGameID
	}

	vp := Viewport(cfg)
	s := doodle.NewSession(cfg, vp,
		doodle.WithHighScores(opts.HighScores),
		doodle.WithLogger(logger),
		doodle.WithGameID(id))
	if opts.Audio != nil {
		opts.Audio.Attach(s)
	}
	s.Start(seed)

	return &Game{session: s, vp: vp, seed: seed, audio: opts.Audio, logger: logger}
}

// Viewport returns the configured world size, falling back to the default
// window size.
func Viewport(cfg config.DoodleConfig) doodle.Viewport {
	vp := doodle.Viewport{W: cfg.Viewport.Width, H: cfg.Viewport.Height}
	if vp.W <= 0 {
		vp.W = DefaultWidth
	}
	if vp.H <= 0 {
		vp.H = DefaultHeight
	}
	return vp
}

// Session returns the driven session.
func (g *Game) Session() *doodle.Session {
	return g.session
}

// Update reads the keyboard and advances one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed++
		g.session.Restart(g.seed)
		g.logger.Debug("restarted", "seed", g.seed)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.audio != nil {
		g.audio.ToggleMute()
	}

	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	g.session.SetHorizontalIntent(intentFor(left, right))

	g.session.Tick()
	return nil
}

// intentFor resolves held keys; both or neither held means no movement.
func intentFor(left, right bool) doodle.Intent {
	switch {
	case left && !right:
		return doodle.IntentLeft
	case right && !left:
		return doodle.IntentRight
	}
	return doodle.IntentNone
}

// Layout keeps the logical screen at the world size; ebiten scales it into
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.vp.W), int(g.vp.H)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)

	rate := opts.TickRate
	if rate < 1 {
		rate = 60
	}
	ebiten.SetTPS(rate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(g.vp.W), int(g.vp.H))
	ebiten.SetWindowTitle("Doodle Jump")

	err := ebiten.RunGame(g)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
