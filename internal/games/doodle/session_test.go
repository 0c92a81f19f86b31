package doodle

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

type fakeScores struct {
	best     map[string]int
	sessions []int
	bestErr  error
}

func newFakeScores() *fakeScores {
	return &fakeScores{best: make(map[string]int)}
}

func (f *fakeScores) Best(gameID string) (int, error) {
	if f.bestErr != nil {
		return 0, f.bestErr
	}
	return f.best[gameID], nil
}

func (f *fakeScores) RecordBest(gameID string, score int) error {
	if score > f.best[gameID] {
		f.best[gameID] = score
	}
	return nil
}

func (f *fakeScores) RecordSession(gameID string, score int) error {
	f.sessions = append(f.sessions, score)
	return nil
}

func newTestSession(opts ...Option) *Session {
	return NewSession(config.DefaultDoodleConfig(), Viewport{W: 800, H: 600}, opts...)
}

// dropPlayer puts the player far below the viewport so the next tick loses.
func dropPlayer(s *Session) {
	s.state.Player.Y = s.state.Viewport.H + 1000
	s.state.Enemies = nil
}

// liftPlayer puts the player at a height worth score points, at rest.
func liftPlayer(s *Session, score int) {
	s.state.Enemies = nil
	s.state.Player.VY = 0
	s.state.Player.Y = s.state.Viewport.H - float64(score)*s.params.HeightPerPoint - 5
}

func TestSessionIgnoresInputBeforeStart(t *testing.T) {
	s := newTestSession()
	if s.Status() != StatusInitializing {
		t.Fatalf("Status = %v, expected initializing", s.Status())
	}

	s.SetHorizontalIntent(IntentLeft)
	s.TogglePause()
	if s.Tick() {
		t.Error("Tick() ran before Start")
	}

	s.Start(1)
	if s.Status() != StatusRunning {
		t.Errorf("Status = %v, expected running", s.Status())
	}
	if s.Snapshot().Intent != IntentNone || s.Paused() {
		t.Error("input before Start leaked into the session")
	}
}

func TestSessionLostFiresOnce(t *testing.T) {
	s := newTestSession()
	lost := 0
	var last Result
	s.OnLost(func(r Result) { lost++; last = r })
	s.OnWon(func(Result) { t.Error("OnWon fired on a loss") })

	s.Start(1)
	dropPlayer(s)
	if !s.Tick() {
		t.Fatal("Tick() did not run")
	}
	if s.Status() != StatusLost || lost != 1 {
		t.Fatalf("Status = %v lost = %d, expected lost once", s.Status(), lost)
	}
	if last.Status != StatusLost || last.Ticks != 1 {
		t.Errorf("Result = %+v", last)
	}

	before := s.Snapshot()
	for i := 0; i < 20; i++ {
		if s.Tick() {
			t.Fatal("Tick() ran in a terminal state")
		}
	}
	if lost != 1 {
		t.Errorf("OnLost fired %d times, expected 1", lost)
	}
	if after := s.Snapshot(); after.Tick != before.Tick || after.Player != before.Player {
		t.Error("state changed after the terminal transition")
	}

	s.Restart(2)
	if s.Status() != StatusRunning {
		t.Fatalf("Status = %v after restart, expected running", s.Status())
	}
	dropPlayer(s)
	s.Tick()
	if lost != 2 {
		t.Errorf("OnLost fired %d times after restart, expected 2", lost)
	}
}

func TestSessionWonFiresOnce(t *testing.T) {
	s := newTestSession()
	won := 0
	var res Result
	s.OnWon(func(r Result) { won++; res = r })

	s.Start(1)
	liftPlayer(s, s.params.WinningScore)
	s.Tick()
	s.Tick()

	if s.Status() != StatusWon || won != 1 {
		t.Fatalf("Status = %v won = %d, expected won once", s.Status(), won)
	}
	if res.Score < s.params.WinningScore {
		t.Errorf("Result.Score = %d, expected >= %d", res.Score, s.params.WinningScore)
	}
	if res.HighScore != res.Score {
		t.Errorf("Result.HighScore = %d, expected %d", res.HighScore, res.Score)
	}
}

func TestSessionSubscriberPanicIsContained(t *testing.T) {
	s := newTestSession()
	called := false
	s.OnLost(func(Result) { panic("speaker unplugged") })
	s.OnLost(func(Result) { called = true })

	s.Start(1)
	dropPlayer(s)
	s.Tick()

	if s.Status() != StatusLost {
		t.Errorf("Status = %v, expected lost", s.Status())
	}
	if !called {
		t.Error("second subscriber did not run after the first panicked")
	}
}

func TestSessionRestartResets(t *testing.T) {
	s := newTestSession()
	s.Start(7)
	liftPlayer(s, 30)
	s.state.CameraY = 250
	s.SetHorizontalIntent(IntentRight)
	s.Tick()
	s.TogglePause()

	if s.Score() == 0 {
		t.Fatal("expected a non-zero score before restart")
	}

	s.Restart(7)
	snap := s.Snapshot()
	fresh := Generate(Viewport{W: 800, H: 600}, s.params, rand.New(rand.NewSource(7)))

	if snap.Player != fresh.Player {
		t.Errorf("Player = %+v, expected %+v", snap.Player, fresh.Player)
	}
	if snap.CameraY != 0 || snap.MaxHeight != 0 || snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("restart left camera=%v max=%v score=%d tick=%d", snap.CameraY, snap.MaxHeight, snap.Score, snap.Tick)
	}
	if snap.Status != StatusRunning || snap.Paused || snap.Intent != IntentNone {
		t.Errorf("restart left status=%v paused=%v intent=%v", snap.Status, snap.Paused, snap.Intent)
	}
	if snap.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30 to survive restart", snap.HighScore)
	}
}

func TestSessionHighScoreRatchet(t *testing.T) {
	store := newFakeScores()
	store.best[GameID] = 50

	s := newTestSession(WithHighScores(store))
	var reported []int
	s.OnHighScore(func(v int) { reported = append(reported, v) })

	s.Start(1)
	if s.HighScore() != 50 {
		t.Fatalf("HighScore = %d, expected 50 from the store", s.HighScore())
	}

	liftPlayer(s, 40)
	s.Tick()
	if s.HighScore() != 50 || len(reported) != 0 {
		t.Errorf("HighScore = %d reported = %v, expected no change below best", s.HighScore(), reported)
	}

	liftPlayer(s, 60)
	s.Tick()
	if s.HighScore() != 60 || store.best[GameID] != 60 {
		t.Errorf("HighScore = %d store = %d, expected 60", s.HighScore(), store.best[GameID])
	}
	if len(reported) != 1 || reported[0] != 60 {
		t.Errorf("reported = %v, expected [60]", reported)
	}

	s.Restart(2)
	if s.HighScore() != 60 || s.Score() != 0 {
		t.Errorf("after restart HighScore = %d Score = %d, expected 60 and 0", s.HighScore(), s.Score())
	}
	if len(store.sessions) != 1 || store.sessions[0] != 60 {
		t.Errorf("sessions = %v, expected [60]", store.sessions)
	}
}

func TestSessionStoreErrorKeepsPlaying(t *testing.T) {
	store := newFakeScores()
	store.bestErr = errors.New("storage: closed")

	s := newTestSession(WithHighScores(store))
	s.Start(1)
	if s.HighScore() != 0 {
		t.Errorf("HighScore = %d, expected 0", s.HighScore())
	}
	if !s.Tick() {
		t.Error("Tick() did not run")
	}
}

func TestSessionPause(t *testing.T) {
	s := newTestSession()
	s.Start(1)
	s.TogglePause()

	tick := s.Snapshot().Tick
	for i := 0; i < 5; i++ {
		if s.Tick() {
			t.Fatal("Tick() ran while paused")
		}
	}
	if s.Snapshot().Tick != tick {
		t.Error("tick counter advanced while paused")
	}

	s.TogglePause()
	if !s.Tick() {
		t.Error("Tick() did not run after resume")
	}
}

func TestSessionIntentDrivesPlayer(t *testing.T) {
	s := newTestSession()
	s.Start(1)
	x := s.Snapshot().Player.X

	s.SetHorizontalIntent(IntentRight)
	s.Tick()
	s.Tick()
	s.SetHorizontalIntent(IntentNone)
	s.Tick()

	want := x + s.params.MoveSpeed
	want += s.params.MoveSpeed
	if got := s.Snapshot().Player.X; got != want {
		t.Errorf("X = %v, expected %v", got, want)
	}
}

func TestSessionPendingChangesApplyOnRestart(t *testing.T) {
	s := newTestSession()
	s.Start(1)

	cfg := config.DefaultDoodleConfig()
	cfg.Platforms.Spacing = 80
	s.SetConfig(cfg)
	s.SetViewport(Viewport{W: 400, H: 300})

	if s.Params().Spacing != 60 || s.Snapshot().Viewport.W != 800 {
		t.Fatal("pending changes applied before restart")
	}

	s.Restart(1)
	snap := s.Snapshot()
	if s.Params().Spacing != 80 {
		t.Errorf("Spacing = %v, expected 80", s.Params().Spacing)
	}
	if snap.Viewport.W != 400 || snap.Viewport.H != 300 {
		t.Errorf("Viewport = %+v, expected 400x300", snap.Viewport)
	}
	if snap.Platforms[1].Y != 300-80 {
		t.Errorf("platform 1 Y = %v, expected %v", snap.Platforms[1].Y, 300-80)
	}
}

func TestSessionDifficultyScalesEnemySpeed(t *testing.T) {
	cfg := config.DefaultDoodleConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 1.0
	cfg.Difficulty.Scaling.SpeedMultiplier = 1.0

	s := NewSession(cfg, Viewport{W: 800, H: 600})
	s.Start(1)
	s.state.Enemies = []Enemy{{X: 100, Y: -1000, W: 30, H: 30, Direction: 1}}
	s.Tick()

	if got := s.Snapshot().Enemies[0].X; got != 103 {
		t.Errorf("enemy X = %v, expected 103", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSession()
	s.Start(1)
	snap := s.Snapshot()
	if len(snap.Enemies) == 0 {
		t.Fatal("expected enemies in the default world")
	}
	snap.Enemies[0].X = -999
	if s.Snapshot().Enemies[0].X == -999 {
		t.Error("snapshot shares enemy storage with the session")
	}
}
