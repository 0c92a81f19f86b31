package doodle

import (
	"math"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusInitializing Status = iota // world not generated yet
	StatusRunning
	StatusLost
	StatusWon
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusRunning:
		return "running"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the session.
func (s Status) Terminal() bool {
	return s == StatusLost || s == StatusWon
}

// Intent is the horizontal direction the player is currently holding.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "none"
	}
}

// Velocity returns the horizontal velocity the intent produces.
func (i Intent) Velocity(speed float64) float64 {
	switch i {
	case IntentLeft:
		return -speed
	case IntentRight:
		return speed
	default:
		return 0
	}
}

// PlatformKind tags how strongly a platform bounces.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformBouncy
)

// String returns a human-readable name for the platform kind.
func (k PlatformKind) String() string {
	if k == PlatformBouncy {
		return "bouncy"
	}
	return "static"
}

// Player is the bouncing character. Y grows downward.
type Player struct {
	X, Y    float64
	VX, VY  float64
	Jumping bool
}

// Platform is a static ledge the player can bounce on.
type Platform struct {
	X, Y float64
	W, H float64
	Kind PlatformKind
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Enemy is a patrolling ghost.
type Enemy struct {
	X, Y      float64
	W, H      float64
	Direction float64 // -1 or +1
	Color     core.Color
}

// Box returns the enemy's bounding box.
func (e Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Viewport is the visible world size in world units.
type Viewport struct {
	W, H float64
}

// Clamp raises degenerate dimensions to the smallest playable size: wide
// enough for a platform plus the player, tall enough for a few player heights.
func (v Viewport) Clamp(p Params) Viewport {
	minW := p.PlatformW + p.PlayerSize
	minH := p.PlayerSize * 4
	if !finite(v.W) || v.W < minW {
		v.W = minW
	}
	if !finite(v.H) || v.H < minH {
		v.H = minH
	}
	return v
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// State is the complete simulation state threaded through each phase.
// Platforms are never mutated after generation and may be shared between
// states; Enemies are copied by each phase that moves them.
type State struct {
	Viewport  Viewport
	Player    Player
	Platforms []Platform
	Enemies   []Enemy
	CameraY   float64
	MaxHeight float64
	Status    Status
	Tick      uint64
}

// Clone returns a copy whose enemy slice can be mutated independently.
func (s State) Clone() State {
	c := s
	if s.Enemies != nil {
		c.Enemies = make([]Enemy, len(s.Enemies))
		copy(c.Enemies, s.Enemies)
	}
	return c
}

// PlayerBox returns the player's bounding box.
func (s State) PlayerBox(p Params) core.Box {
	return core.NewBox(s.Player.X, s.Player.Y, p.PlayerSize, p.PlayerSize)
}

// Params holds the numeric tuning used by every simulation phase.
type Params struct {
	Gravity          float64
	JumpForce        float64
	BouncyMultiplier float64
	MoveSpeed        float64
	FallMargin       float64
	LandingTolerance float64

	PlayerSize float64
	SpawnGap   float64

	PlatformW    float64
	PlatformH    float64
	Spacing      float64
	BouncyChance float64

	EnemyW      float64
	EnemyH      float64
	EnemySpeed  float64
	EnemyEvery  int
	EnemyColors []core.Color

	WinningScore   int // 0 disables the win condition
	Margin         int
	HeightPerPoint float64
	EndlessScore   int
}

// ParamsFromConfig converts a validated configuration into simulation parameters.
func ParamsFromConfig(cfg config.DoodleConfig) Params {
	colors := make([]core.Color, 0, len(cfg.Enemies.Colors))
	for _, name := range cfg.Enemies.Colors {
		colors = append(colors, colorByName(name))
	}
	if len(colors) == 0 {
		colors = append(colors, core.ColorRed)
	}

	return Params{
		Gravity:          cfg.Physics.Gravity,
		JumpForce:        cfg.Physics.JumpForce,
		BouncyMultiplier: cfg.Physics.BouncyMultiplier,
		MoveSpeed:        cfg.Physics.MoveSpeed,
		FallMargin:       cfg.Physics.FallMargin,
		LandingTolerance: cfg.Physics.LandingTolerance,
		PlayerSize:       cfg.Player.Size,
		SpawnGap:         cfg.Player.SpawnGap,
		PlatformW:        cfg.Platforms.Width,
		PlatformH:        cfg.Platforms.Height,
		Spacing:          cfg.Platforms.Spacing,
		BouncyChance:     cfg.Platforms.BouncyChance,
		EnemyW:           cfg.Enemies.Width,
		EnemyH:           cfg.Enemies.Height,
		EnemySpeed:       cfg.Enemies.Speed,
		EnemyEvery:       cfg.Enemies.Every,
		EnemyColors:      colors,
		WinningScore:     cfg.Scoring.WinningScore,
		Margin:           cfg.Scoring.Margin,
		HeightPerPoint:   cfg.Scoring.HeightPerPoint,
		EndlessScore:     cfg.Scoring.EndlessScore,
	}
}

// DefaultParams returns the parameters of the default configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultDoodleConfig())
}

func colorByName(name string) core.Color {
	switch name {
	case "red":
		return core.ColorRed
	case "pink":
		return core.ColorPink
	case "cyan":
		return core.ColorCyan
	case "orange":
		return core.ColorOrange
	case "green":
		return core.ColorGreen
	case "yellow":
		return core.ColorYellow
	case "blue":
		return core.ColorBlue
	case "magenta":
		return core.ColorMagenta
	case "white":
		return core.ColorWhite
	default:
		return core.ColorRed
	}
}
