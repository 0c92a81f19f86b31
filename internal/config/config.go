// Package config provides YAML-based game configuration loading,
// validation, hot reload and difficulty management for the doodle game.
package config

// DoodleConfig contains all configuration for the Doodle Jump game.
type DoodleConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig defines the world viewport.
// A zero width or height derives that dimension from the terminal size
// multiplied by the cell size.
type ViewportConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CellWidth  float64 `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64 `yaml:"cell_height"` // World units per terminal row
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jump_force"`        // Negative = up
	BouncyMultiplier float64 `yaml:"bouncy_multiplier"` // Applied to jump_force on bouncy platforms
	MoveSpeed        float64 `yaml:"move_speed"`        // Horizontal velocity while a direction is held
	FallMargin       float64 `yaml:"fall_margin"`       // Distance below the viewport that ends the run
	LandingTolerance float64 `yaml:"landing_tolerance"` // Depth of the landing band below a platform top
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Size     float64 `yaml:"size"`
	SpawnGap float64 `yaml:"spawn_gap"` // Gap between the player's feet and the first platform
}

// PlatformConfig defines platform generation parameters.
type PlatformConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Spacing      float64 `yaml:"spacing"`
	BouncyChance float64 `yaml:"bouncy_chance"`
}

// EnemyConfig defines ghost parameters.
type EnemyConfig struct {
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Speed  float64  `yaml:"speed"`
	Every  int      `yaml:"every"` // One ghost on every Nth platform, skipping the first; 0 disables
	Colors []string `yaml:"colors"`
}

// ScoringConfig defines scoring and the win condition.
type ScoringConfig struct {
	WinningScore   int     `yaml:"winning_score"` // 0 = endless, no win condition
	Margin         int     `yaml:"margin"`        // Extra score worth of platforms above the goal
	HeightPerPoint float64 `yaml:"height_per_point"`
	EndlessScore   int     `yaml:"endless_score"` // World height target when winning_score is 0
}

// InputConfig defines input handling parameters.
type InputConfig struct {
	// ReleaseAfterMs releases a held direction in terminals, which never
	// report key-up events, when no repeat arrives within this window.
	ReleaseAfterMs int `yaml:"release_after_ms"`
}

// AudioConfig defines sound parameters.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Base-2 logarithmic gain, 0 = unchanged
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to ghost speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
