// Package doodle implements a Doodle Jump style climber with Pac-Man ghosts.
// The player bounces upward across generated platforms, steering left and
// right, while patrolling ghosts end the run on contact.
//
// The simulation is split into pure phases (Generate, Advance, Track) that
// take a State and return the next one; Session threads that state through
// the phases once per tick and owns the terminal latch and the high score.
package doodle

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

// Registry IDs.
const (
	GameID        = "doodle"
	EndlessGameID = "doodle_endless"
)

// hudRows is the number of terminal rows reserved above the playfield.
const hudRows = 1

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	highScores       HighScores
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// the config file's own difficulty section.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetHighScores sets the store shared by every game created afterwards.
func SetHighScores(h HighScores) {
	highScores = h
}

// SetLogger sets the logger shared by every game created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig loads, adjusts and validates the configuration for a mode.
// Validation warnings are returned so callers can surface them.
func LoadConfig(endless bool) (config.DoodleConfig, []string, error) {
	cfg, err := config.LoadDoodle(configPath)
	if err != nil {
		return config.DoodleConfig{}, nil, err
	}
	config.ApplyDoodlePreset(&cfg, difficultyPreset)
	if endless {
		cfg.Scoring.WinningScore = 0
	}
	warnings := cfg.Validate()
	return cfg, warnings, nil
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	id      string
	title   string
	endless bool

	runtime core.RuntimeConfig
	session *Session
	seed    int64
}

// New creates a game that is won at the configured winning score.
func New() *Game {
	return &Game{id: GameID, title: "Doodle Jump"}
}

// NewEndless creates a game with no win condition.
func NewEndless() *Game {
	return &Game{id: EndlessGameID, title: "Doodle Jump (Endless)", endless: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Session exposes the underlying session so adapters can subscribe to events.
// It is nil until the first Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Reset loads the configuration and starts a fresh world sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, warnings, err := LoadConfig(g.endless)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultDoodleConfig()
		if g.endless {
			cfg.Scoring.WinningScore = 0
		}
	}
	for _, w := range warnings {
		logger.Warn("config adjusted", "detail", w)
	}

	g.seed = runtime.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	vp := ViewportFor(cfg, runtime.ScreenW, runtime.ScreenH)
	if g.session == nil {
		g.session = NewSession(cfg, vp,
			WithHighScores(highScores),
			WithLogger(logger.WithPrefix(g.id)),
			WithGameID(g.id))
		g.session.Start(g.seed)
		return
	}
	g.session.SetConfig(cfg)
	g.session.SetViewport(vp)
	g.session.Restart(g.seed)
}

// Reload stages a new configuration; it applies on the next restart.
func (g *Game) Reload(cfg config.DoodleConfig) {
	if g.endless {
		cfg.Scoring.WinningScore = 0
	}
	if g.session != nil {
		g.session.SetConfig(cfg)
	}
}

// ViewportFor returns the world viewport for a terminal of the given size.
// Configured dimensions win over the terminal-derived ones.
func ViewportFor(cfg config.DoodleConfig, cols, rows int) Viewport {
	vp := Viewport{W: cfg.Viewport.Width, H: cfg.Viewport.Height}
	if vp.W <= 0 {
		vp.W = float64(cols) * cfg.Viewport.CellWidth
	}
	if vp.H <= 0 {
		vp.H = float64(rows-hudRows) * cfg.Viewport.CellHeight
	}
	return vp
}

// Step applies the frame's input and advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.seed++
		g.session.SetViewport(ViewportFor(g.session.Config(), g.runtime.ScreenW, g.runtime.ScreenH))
		g.session.Restart(g.seed)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	switch {
	case in.Has(core.ActionLeft):
		g.session.SetHorizontalIntent(IntentLeft)
	case in.Has(core.ActionRight):
		g.session.SetHorizontalIntent(IntentRight)
	case in.Has(core.ActionRelease):
		g.session.SetHorizontalIntent(IntentNone)
	}

	g.session.Tick()
	return core.StepResult{State: g.State()}
}

// Resize records a new terminal size; the world picks it up on restart.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.Status()
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		GameOver:  st.Terminal(),
		Won:       st == StatusWon,
		Paused:    g.session.Paused(),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessGameID, func() registry.Game {
		return NewEndless()
	})
}
