package doodle

import (
	"math/rand"
	"testing"
)

func bareState(w, h float64) State {
	return State{Viewport: Viewport{W: w, H: h}, Status: StatusRunning}
}

func TestAdvanceStartScenario(t *testing.T) {
	p := DefaultParams()
	s := Generate(Viewport{W: 800, H: 600}, p, rand.New(rand.NewSource(5)))
	startX := s.Player.X

	s = Advance(s, IntentNone, p)
	if s.Player.Y != 530 {
		t.Errorf("after tick 1 Y = %v, expected 530", s.Player.Y)
	}
	if s.Player.VY != p.Gravity {
		t.Errorf("after tick 1 VY = %v, expected %v", s.Player.VY, p.Gravity)
	}

	s = Advance(s, IntentNone, p)
	if s.Player.Y != 530+p.Gravity {
		t.Errorf("after tick 2 Y = %v, expected %v", s.Player.Y, 530+p.Gravity)
	}
	if s.Player.VY != 2*p.Gravity {
		t.Errorf("after tick 2 VY = %v, expected %v", s.Player.VY, 2*p.Gravity)
	}
	if s.Player.X != startX {
		t.Errorf("X moved without intent: %v -> %v", startX, s.Player.X)
	}
	if s.Status != StatusRunning || s.Tick != 2 {
		t.Errorf("Status = %v Tick = %d, expected running after 2 ticks", s.Status, s.Tick)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	p := DefaultParams()
	s := bareState(800, 600)
	s.Player = Player{X: 100, Y: 100, VY: 1}
	s.Enemies = []Enemy{{X: 400, Y: 0, W: 30, H: 30, Direction: 1}}

	_ = Advance(s, IntentRight, p)

	if s.Player.X != 100 || s.Player.Y != 100 || s.Enemies[0].X != 400 || s.Tick != 0 {
		t.Errorf("input state mutated: %+v %+v", s.Player, s.Enemies[0])
	}
}

func TestAdvanceLanding(t *testing.T) {
	p := DefaultParams()
	plat := Platform{X: 100, Y: 300, W: 150, H: 15}

	tests := []struct {
		name    string
		x, y    float64
		vy      float64
		kind    PlatformKind
		wantVY  float64
		bounced bool
	}{
		{"static", 150, 259, 2, PlatformStatic, p.JumpForce, true},
		{"bouncy", 150, 259, 2, PlatformBouncy, p.JumpForce * p.BouncyMultiplier, true},
		{"deep in band", 150, 278, 2, PlatformStatic, p.JumpForce, true},
		{"rising", 150, 262, -2, PlatformStatic, -2 + p.Gravity, false},
		{"apex", 150, 261, -0.1, PlatformStatic, p.JumpForce, true},
		{"below band", 150, 279, 2, PlatformStatic, 2 + p.Gravity, false},
		{"above platform", 150, 200, 2, PlatformStatic, 2 + p.Gravity, false},
		{"beside", 300, 259, 2, PlatformStatic, 2 + p.Gravity, false},
		{"touching edge", 250, 259, 2, PlatformStatic, 2 + p.Gravity, false},
		{"one unit overlap", 249, 259, 2, PlatformStatic, p.JumpForce, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bareState(800, 600)
			pl := plat
			pl.Kind = tt.kind
			s.Platforms = []Platform{pl}
			s.Player = Player{X: tt.x, Y: tt.y, VY: tt.vy}

			next := Advance(s, IntentNone, p)
			if next.Player.VY != tt.wantVY {
				t.Errorf("VY = %v, expected %v", next.Player.VY, tt.wantVY)
			}
			if next.Player.Jumping != tt.bounced {
				t.Errorf("Jumping = %v, expected %v", next.Player.Jumping, tt.bounced)
			}
		})
	}
}

func TestAdvanceLastQualifyingPlatformWins(t *testing.T) {
	p := DefaultParams()
	static := Platform{X: 100, Y: 300, W: 150, H: 15, Kind: PlatformStatic}
	bouncy := Platform{X: 100, Y: 295, W: 150, H: 15, Kind: PlatformBouncy}

	s := bareState(800, 600)
	s.Player = Player{X: 150, Y: 258, VY: 2}

	s.Platforms = []Platform{static, bouncy}
	if got := Advance(s, IntentNone, p).Player.VY; got != p.JumpForce*p.BouncyMultiplier {
		t.Errorf("VY = %v, expected bouncy jump", got)
	}

	s.Platforms = []Platform{bouncy, static}
	if got := Advance(s, IntentNone, p).Player.VY; got != p.JumpForce {
		t.Errorf("VY = %v, expected static jump", got)
	}
}

func TestAdvanceHorizontalWrap(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name   string
		x      float64
		intent Intent
		want   float64
	}{
		{"left edge", 1, IntentLeft, 800 + (1 - p.MoveSpeed)},
		{"right edge", 799, IntentRight, 799 + p.MoveSpeed - 800},
		{"inside", 400, IntentLeft, 400 - p.MoveSpeed},
		{"exactly zero", p.MoveSpeed, IntentLeft, 0},
		{"exactly width", 800 - p.MoveSpeed, IntentRight, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bareState(800, 600)
			s.Player = Player{X: tt.x, Y: 100}
			next := Advance(s, tt.intent, p)
			if next.Player.X != tt.want {
				t.Errorf("X = %v, expected %v", next.Player.X, tt.want)
			}
			if next.Player.VX != tt.intent.Velocity(p.MoveSpeed) {
				t.Errorf("VX = %v, expected %v", next.Player.VX, tt.intent.Velocity(p.MoveSpeed))
			}
		})
	}
}

func TestEnemyPatrolReflects(t *testing.T) {
	p := DefaultParams()

	s := bareState(800, 600)
	s.Player = Player{X: 400, Y: 300}
	s.Enemies = []Enemy{
		{X: 2, Y: -500, W: 30, H: 30, Direction: -1},
		{X: 768, Y: -500, W: 30, H: 30, Direction: 1},
	}

	s = Advance(s, IntentNone, p)
	if s.Enemies[0].X != 0.5 || s.Enemies[0].Direction != -1 {
		t.Errorf("left enemy = %+v, expected X 0.5 moving left", s.Enemies[0])
	}
	if s.Enemies[1].X != 769.5 || s.Enemies[1].Direction != 1 {
		t.Errorf("right enemy = %+v, expected X 769.5 moving right", s.Enemies[1])
	}

	s = Advance(s, IntentNone, p)
	if s.Enemies[0].X != 0 || s.Enemies[0].Direction != 1 {
		t.Errorf("left enemy = %+v, expected reflected at 0", s.Enemies[0])
	}
	if s.Enemies[1].X != 770 || s.Enemies[1].Direction != -1 {
		t.Errorf("right enemy = %+v, expected reflected at 770", s.Enemies[1])
	}

	for i := 0; i < 5000; i++ {
		s.Player = Player{X: 400, Y: 300}
		s = Advance(s, IntentNone, p)
		for k, e := range s.Enemies {
			if e.X < 0 || e.X > 800-e.W {
				t.Fatalf("tick %d: enemy %d X = %v outside [0, %v]", i, k, e.X, 800-e.W)
			}
		}
	}
}

func TestAdvanceEnemyCollision(t *testing.T) {
	p := DefaultParams()
	p.EnemySpeed = 0

	tests := []struct {
		name     string
		ex, ey   float64
		wantLost bool
	}{
		{"one unit right", 139, 100, true},
		{"touching right", 140, 100, false},
		{"one unit left", 71, 100, true},
		{"touching left", 70, 100, false},
		{"one unit below", 100, 139, true},
		{"touching below", 100, 140, false},
		{"one unit above", 100, 71, true},
		{"touching above", 100, 70, false},
		{"contained", 105, 105, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bareState(800, 600)
			s.Player = Player{X: 100, Y: 100}
			s.Enemies = []Enemy{{X: tt.ex, Y: tt.ey, W: 30, H: 30, Direction: 1}}

			next := Advance(s, IntentNone, p)
			if got := next.Status == StatusLost; got != tt.wantLost {
				t.Errorf("lost = %v, expected %v", got, tt.wantLost)
			}
		})
	}
}

func TestAdvanceFallOff(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name     string
		y        float64
		wantLost bool
	}{
		{"at margin", 699, false},
		{"past margin", 700, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bareState(800, 600)
			s.Player = Player{X: 100, Y: tt.y, VY: 1}
			next := Advance(s, IntentNone, p)
			if got := next.Status == StatusLost; got != tt.wantLost {
				t.Errorf("lost = %v (Y=%v), expected %v", got, next.Player.Y, tt.wantLost)
			}
		})
	}
}

func TestAdvanceKeepsTerminalStatus(t *testing.T) {
	p := DefaultParams()

	s := bareState(800, 600)
	s.Status = StatusWon
	s.Player = Player{X: 100, Y: 1000, VY: 5}
	s.Enemies = []Enemy{{X: 100, Y: 1005, W: 30, H: 30, Direction: 1}}

	for i := 0; i < 10; i++ {
		s = Advance(s, IntentNone, p)
		if s.Status != StatusWon {
			t.Fatalf("tick %d: Status = %v, expected won", i, s.Status)
		}
	}
}
