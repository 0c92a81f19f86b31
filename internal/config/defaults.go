package config

import (
	_ "embed"
)

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

// DefaultDoodleConfig returns the default Doodle Jump configuration.
// It mirrors defaults/doodle.yaml and is used when the embedded file
// cannot be parsed.
func DefaultDoodleConfig() DoodleConfig {
	return DoodleConfig{
		Viewport: ViewportConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Physics: PhysicsConfig{
			Gravity:          0.25,
			JumpForce:        -12,
			BouncyMultiplier: 1.5,
			MoveSpeed:        3.5,
			FallMargin:       100,
			LandingTolerance: 20,
		},
		Player: PlayerConfig{
			Size:     40,
			SpawnGap: 30,
		},
		Platforms: PlatformConfig{
			Width:        150,
			Height:       15,
			Spacing:      60,
			BouncyChance: 0.2,
		},
		Enemies: EnemyConfig{
			Width:  30,
			Height: 30,
			Speed:  1.5,
			Every:  10,
			Colors: []string{"red", "pink", "cyan", "orange"},
		},
		Scoring: ScoringConfig{
			WinningScore:   1000,
			Margin:         200,
			HeightPerPoint: 10,
			EndlessScore:   5000,
		},
		Input: InputConfig{
			ReleaseAfterMs: 300,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDoodleYAML
}
