package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/audio"
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/loop"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

// helpRows is the number of terminal rows below the playfield.
const helpRows = 1

// Options carries the collaborators of a game screen. Zero values disable
// the corresponding feature.
type Options struct {
	Audio        *audio.Player
	Watcher      *config.Watcher
	Logger       *log.Logger
	ReleaseAfter time.Duration // direction release window, 0 keeps keys held
}

// sessioned is implemented by games backed by a doodle session.
type sessioned interface {
	Session() *doodle.Session
}

// configChangedMsg reports that the watched config file changed.
type configChangedMsg struct{ path string }

// watchErrMsg reports a watcher failure.
type watchErrMsg struct{ err error }

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	stepper  *loop.Stepper
	latch    *IntentLatch
	lastTick time.Time
	epoch    int

	keys   GameKeyMap
	help   help.Model
	notice string

	audio   *audio.Player
	watcher *config.Watcher
	logger  *log.Logger

	quitting bool
	back     bool
}

// NewModel creates a model and starts the game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate < 1 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(playfield(cfg))
	if s, ok := game.(sessioned); ok && opts.Audio != nil {
		opts.Audio.Attach(s.Session())
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		stepper:    loop.NewStepper(cfg.TickRate),
		latch:      NewIntentLatch(opts.ReleaseAfter),
		keys:       DefaultGameKeyMap(),
		help:       h,
		audio:      opts.Audio,
		watcher:    opts.Watcher,
		logger:     logger,
	}
}

// playfield returns the runtime config minus the rows used below the game.
func playfield(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH -= helpRows
	return cfg
}

// Init starts the tick loop and the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.epoch, m.config.TickRate), m.watchCmd())
}

// watchCmd waits for the next watcher event.
func (m Model) watchCmd() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Epoch != m.epoch || m.quitting {
			return m, nil
		}
		return m.handleTick(msg.At)

	case configChangedMsg:
		return m.handleConfigChange(msg.path)

	case watchErrMsg:
		m.logger.Warn("config watcher", "err", msg.err)
		return m, m.watchCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		return m.stop(false)
	case core.ActionBack:
		return m.stop(true)
	case core.ActionLeft, core.ActionRight:
		m.latch.Press(action, now)
		m.setDirection(action)
	case core.ActionRelease:
		m.latch.Release()
		m.setDirection(action)
	case core.ActionMute:
		if m.audio != nil {
			muted := m.audio.ToggleMute()
			m.notice = "sound on"
			if muted {
				m.notice = "sound off"
			}
		}
	case core.ActionRestart:
		m.latch.Release()
		m.inputFrame.Set(action)
		m.notice = ""
	case core.ActionPause:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// setDirection records a steering action, replacing any other steering
// action still waiting for the next tick so the latest key wins.
func (m *Model) setDirection(a core.Action) {
	for _, d := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionRelease} {
		delete(m.inputFrame.Actions, d)
	}
	m.inputFrame.Set(a)
}

// stop ends the tick loop: bumping the epoch makes any tick already in
// flight stale.
func (m Model) stop(back bool) (tea.Model, tea.Cmd) {
	m.epoch++
	m.quitting = true
	m.back = back
	return m, tea.Quit
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width

	pf := playfield(m.config)
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(pf.ScreenW, pf.ScreenH)
	}
	// A run that has not scored yet is restarted to fit the new size; a run
	// in progress keeps its world until the next restart.
	if m.gameState.Score == 0 && !m.gameState.GameOver {
		m.game.Reset(pf)
		m.gameState = m.game.State()
	}
	return m, nil
}

// handleTick runs the ticks that are due since the previous tick message.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.lastTick.IsZero() {
		m.lastTick = at.Add(-m.stepper.Step())
	}
	due := m.stepper.Advance(at.Sub(m.lastTick))
	m.lastTick = at

	if m.latch.Expire(at) {
		m.setDirection(core.ActionRelease)
	}

	for i := 0; i < due; i++ {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		m.inputFrame.Clear()
	}

	return m, tickCmd(m.epoch, m.config.TickRate)
}

// handleConfigChange reloads the config file into the running game.
func (m Model) handleConfigChange(path string) (tea.Model, tea.Cmd) {
	r, ok := m.game.(registry.Reloadable)
	if !ok {
		return m, m.watchCmd()
	}

	cfg, warnings, err := doodle.LoadConfig(false)
	if err != nil {
		m.logger.Warn("config reload failed", "path", path, "err", err)
		m.notice = "config error, keeping current settings"
		return m, m.watchCmd()
	}
	for _, w := range warnings {
		m.logger.Warn("config adjusted", "detail", w)
	}
	r.Reload(cfg)
	m.logger.Info("config reloaded", "path", path)
	m.notice = "config reloaded, applies on restart"
	return m, m.watchCmd()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := hudStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.notice != "" {
		footer = noticeStyle.Render(m.notice)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// WantsMenu reports whether the player left the game for the menu.
func (m Model) WantsMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game. It returns true
// when the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.WantsMenu(), nil
	}
	return false, nil
}
