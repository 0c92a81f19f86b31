package doodle

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

// HighScores is the session-spanning best score collaborator.
type HighScores interface {
	Best(gameID string) (int, error)
	RecordBest(gameID string, score int) error
	RecordSession(gameID string, score int) error
}

// Result describes a session at the moment it ended.
type Result struct {
	Status    Status
	Score     int
	HighScore int
	MaxHeight float64
	Ticks     uint64
}

// Snapshot is a read-only view of the session for render adapters.
// Platforms are shared with the session and must not be modified.
type Snapshot struct {
	State
	Score     int
	HighScore int
	Paused    bool
	Intent    Intent
	Params    Params
}

// Option configures a Session.
type Option func(*Session)

// WithHighScores sets the collaborator used to read and ratchet the best score.
func WithHighScores(h HighScores) Option {
	return func(s *Session) { s.scores = h }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGameID sets the key under which high scores are stored.
func WithGameID(id string) Option {
	return func(s *Session) { s.gameID = id }
}

// Session owns one running game: the world state, the current horizontal
// intent, the terminal latch and the high score. It is not safe for
// concurrent use.
type Session struct {
	cfg        config.DoodleConfig
	params     Params
	difficulty *config.DifficultyManager
	viewport   Viewport

	pendingCfg      *config.DoodleConfig
	pendingViewport *Viewport

	state     State
	intent    Intent
	paused    bool
	highScore int
	latched   bool // set on entering Lost or Won, cleared by Restart

	onLost      []func(Result)
	onWon       []func(Result)
	onHighScore []func(int)

	scores HighScores
	gameID string
	logger *log.Logger
}

// NewSession creates a session in the Initializing state. The configuration
// is expected to be validated already.
func NewSession(cfg config.DoodleConfig, vp Viewport, opts ...Option) *Session {
	s := &Session{
		gameID: GameID,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.applyConfig(cfg)
	s.viewport = vp.Clamp(s.params)
	return s
}

func (s *Session) applyConfig(cfg config.DoodleConfig) {
	s.cfg = cfg
	s.params = ParamsFromConfig(cfg)
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)
}

// Start generates the first world and moves the session to Running.
// Calling Start on a session that already started behaves like Restart.
func (s *Session) Start(seed int64) {
	s.reset(seed)
}

// Restart discards the current world and starts a fresh one. Pending
// configuration and viewport changes take effect here.
func (s *Session) Restart(seed int64) {
	if s.state.Status == StatusRunning {
		s.recordSession()
	}
	s.reset(seed)
}

func (s *Session) reset(seed int64) {
	if s.pendingCfg != nil {
		s.applyConfig(*s.pendingCfg)
		s.pendingCfg = nil
	}
	if s.pendingViewport != nil {
		s.viewport = s.pendingViewport.Clamp(s.params)
		s.pendingViewport = nil
	}

	s.state = Generate(s.viewport, s.params, rand.New(rand.NewSource(seed)))
	s.intent = IntentNone
	s.paused = false
	s.latched = false
	s.loadHighScore()

	s.logger.Debug("world generated",
		"seed", seed,
		"platforms", len(s.state.Platforms),
		"enemies", len(s.state.Enemies),
		"viewport", s.viewport)
}

func (s *Session) loadHighScore() {
	if s.scores == nil {
		return
	}
	best, err := s.scores.Best(s.gameID)
	if err != nil {
		s.logger.Warn("high score unavailable", "err", err)
		return
	}
	if best > s.highScore {
		s.highScore = best
	}
}

// SetHorizontalIntent records the direction the player is holding. The next
// tick reads it. Ignored unless the session is Running.
func (s *Session) SetHorizontalIntent(i Intent) {
	if s.state.Status != StatusRunning {
		return
	}
	s.intent = i
}

// TogglePause pauses or resumes a running session.
func (s *Session) TogglePause() {
	if s.state.Status != StatusRunning {
		return
	}
	s.paused = !s.paused
}

// Tick runs one simulation step: physics, then camera and score, then the
// terminal check. It returns false when nothing ran because the session is
// not running or is paused.
func (s *Session) Tick() bool {
	if s.state.Status != StatusRunning || s.paused {
		return false
	}

	params := s.params
	params.EnemySpeed = s.difficulty.Speed(s.params.EnemySpeed, s.Score(), s.state.Tick)

	next := Advance(s.state, s.intent, params)
	next, scoreChanged := Track(next, params)
	s.state = next

	if scoreChanged {
		s.ratchet(s.Score())
	}

	if s.state.Status.Terminal() && !s.latched {
		s.latched = true
		s.finish()
	}
	return true
}

func (s *Session) ratchet(score int) {
	if score <= s.highScore {
		return
	}
	s.highScore = score
	if s.scores != nil {
		if err := s.scores.RecordBest(s.gameID, score); err != nil {
			s.logger.Warn("high score not stored", "err", err)
		}
	}
	for _, fn := range s.onHighScore {
		s.emit("highscore", func() { fn(score) })
	}
}

func (s *Session) finish() {
	res := s.Result()
	s.logger.Info("session ended",
		"status", res.Status,
		"score", res.Score,
		"high", res.HighScore,
		"ticks", res.Ticks)
	s.recordSession()

	handlers := s.onLost
	if res.Status == StatusWon {
		handlers = s.onWon
	}
	for _, fn := range handlers {
		s.emit(res.Status.String(), func() { fn(res) })
	}
}

func (s *Session) recordSession() {
	if s.scores == nil || s.state.Tick == 0 {
		return
	}
	if err := s.scores.RecordSession(s.gameID, s.Score()); err != nil {
		s.logger.Warn("session not recorded", "err", err)
	}
}

// emit runs a subscriber and contains any panic it raises.
func (s *Session) emit(event string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("subscriber panicked", "event", event, "panic", r)
		}
	}()
	fn()
}

// OnLost subscribes to the transition into Lost.
func (s *Session) OnLost(fn func(Result)) {
	s.onLost = append(s.onLost, fn)
}

// OnWon subscribes to the transition into Won.
func (s *Session) OnWon(fn func(Result)) {
	s.onWon = append(s.onWon, fn)
}

// OnHighScore subscribes to high score improvements.
func (s *Session) OnHighScore(fn func(int)) {
	s.onHighScore = append(s.onHighScore, fn)
}

// SetConfig stages a new configuration for the next Start or Restart.
func (s *Session) SetConfig(cfg config.DoodleConfig) {
	s.pendingCfg = &cfg
}

// SetViewport stages a new viewport for the next Start or Restart.
func (s *Session) SetViewport(vp Viewport) {
	s.pendingViewport = &vp
}

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.state.Status }

// Paused reports whether ticks are suspended.
func (s *Session) Paused() bool { return s.paused }

// Score returns the current score.
func (s *Session) Score() int {
	return Score(s.state.MaxHeight, s.params.HeightPerPoint)
}

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int { return s.highScore }

// Params returns the active simulation parameters.
func (s *Session) Params() Params { return s.params }

// Config returns the active configuration.
func (s *Session) Config() config.DoodleConfig { return s.cfg }

// Result summarises the current session.
func (s *Session) Result() Result {
	return Result{
		Status:    s.state.Status,
		Score:     s.Score(),
		HighScore: s.highScore,
		MaxHeight: s.state.MaxHeight,
		Ticks:     s.state.Tick,
	}
}

// Snapshot returns a copy of the state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state.Clone(),
		Score:     s.Score(),
		HighScore: s.highScore,
		Paused:    s.paused,
		Intent:    s.intent,
		Params:    s.params,
	}
}
