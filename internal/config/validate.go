package config

import (
	"fmt"
	"math"
)

// Validate clamps unusable values to working ones and returns a
// description of every adjustment. The configuration is always left
// playable, so callers only need to surface the warnings.
func (c *DoodleConfig) Validate() []string {
	def := DefaultDoodleConfig()
	var warnings []string
	fix := func(name string, cur *float64, replacement float64) {
		warnings = append(warnings, fmt.Sprintf("%s=%g is invalid, using %g", name, *cur, replacement))
		*cur = replacement
	}

	if c.Viewport.Width < 0 {
		fix("viewport.width", &c.Viewport.Width, 0)
	}
	if c.Viewport.Height < 0 {
		fix("viewport.height", &c.Viewport.Height, 0)
	}
	if c.Viewport.CellWidth <= 0 {
		fix("viewport.cell_width", &c.Viewport.CellWidth, def.Viewport.CellWidth)
	}
	if c.Viewport.CellHeight <= 0 {
		fix("viewport.cell_height", &c.Viewport.CellHeight, def.Viewport.CellHeight)
	}

	if c.Physics.Gravity <= 0 {
		fix("physics.gravity", &c.Physics.Gravity, def.Physics.Gravity)
	}
	if c.Physics.JumpForce >= 0 {
		fix("physics.jump_force", &c.Physics.JumpForce, def.Physics.JumpForce)
	}
	if c.Physics.BouncyMultiplier < 1 {
		fix("physics.bouncy_multiplier", &c.Physics.BouncyMultiplier, def.Physics.BouncyMultiplier)
	}
	if c.Physics.MoveSpeed < 0 {
		fix("physics.move_speed", &c.Physics.MoveSpeed, math.Abs(c.Physics.MoveSpeed))
	}
	if c.Physics.FallMargin < 0 {
		fix("physics.fall_margin", &c.Physics.FallMargin, def.Physics.FallMargin)
	}

	if c.Player.Size <= 0 {
		fix("player.size", &c.Player.Size, def.Player.Size)
	}
	if c.Player.SpawnGap < 0 {
		fix("player.spawn_gap", &c.Player.SpawnGap, 0)
	}

	if c.Platforms.Width <= 0 {
		fix("platforms.width", &c.Platforms.Width, def.Platforms.Width)
	}
	if c.Platforms.Height <= 0 {
		fix("platforms.height", &c.Platforms.Height, def.Platforms.Height)
	}
	if c.Platforms.Spacing <= 0 {
		fix("platforms.spacing", &c.Platforms.Spacing, def.Platforms.Spacing)
	}
	if c.Platforms.BouncyChance < 0 || c.Platforms.BouncyChance > 1 {
		fix("platforms.bouncy_chance", &c.Platforms.BouncyChance, clampF(c.Platforms.BouncyChance, 0, 1))
	}

	// A landing band at least as deep as the platform spacing could match two
	// platforms in the same tick; keeping it strictly smaller makes every
	// bounce unique.
	if c.Physics.LandingTolerance <= 0 {
		fix("physics.landing_tolerance", &c.Physics.LandingTolerance, c.Platforms.Height+5)
	}
	if c.Physics.LandingTolerance >= c.Platforms.Spacing {
		fix("physics.landing_tolerance", &c.Physics.LandingTolerance, c.Platforms.Spacing/2)
	}

	if c.Enemies.Width <= 0 {
		fix("enemies.width", &c.Enemies.Width, def.Enemies.Width)
	}
	if c.Enemies.Height <= 0 {
		fix("enemies.height", &c.Enemies.Height, def.Enemies.Height)
	}
	if c.Enemies.Speed < 0 {
		fix("enemies.speed", &c.Enemies.Speed, math.Abs(c.Enemies.Speed))
	}
	if c.Enemies.Every < 0 {
		warnings = append(warnings, fmt.Sprintf("enemies.every=%d is invalid, using 0", c.Enemies.Every))
		c.Enemies.Every = 0
	}
	if len(c.Enemies.Colors) == 0 {
		warnings = append(warnings, "enemies.colors is empty, using defaults")
		c.Enemies.Colors = def.Enemies.Colors
	}

	if c.Scoring.HeightPerPoint <= 0 {
		fix("scoring.height_per_point", &c.Scoring.HeightPerPoint, def.Scoring.HeightPerPoint)
	}
	if c.Scoring.WinningScore < 0 {
		warnings = append(warnings, fmt.Sprintf("scoring.winning_score=%d is invalid, using 0", c.Scoring.WinningScore))
		c.Scoring.WinningScore = 0
	}
	if c.Scoring.Margin < 0 {
		warnings = append(warnings, fmt.Sprintf("scoring.margin=%d is invalid, using 0", c.Scoring.Margin))
		c.Scoring.Margin = 0
	}
	if c.Scoring.EndlessScore <= 0 {
		warnings = append(warnings, fmt.Sprintf("scoring.endless_score=%d is invalid, using %d", c.Scoring.EndlessScore, def.Scoring.EndlessScore))
		c.Scoring.EndlessScore = def.Scoring.EndlessScore
	}

	if c.Input.ReleaseAfterMs <= 0 {
		warnings = append(warnings, fmt.Sprintf("input.release_after_ms=%d is invalid, using %d", c.Input.ReleaseAfterMs, def.Input.ReleaseAfterMs))
		c.Input.ReleaseAfterMs = def.Input.ReleaseAfterMs
	}

	if apex := c.Physics.JumpForce * c.Physics.JumpForce / (2 * c.Physics.Gravity); apex <= c.Platforms.Spacing {
		warnings = append(warnings, fmt.Sprintf("jump apex %.0f does not clear platform spacing %.0f; the level cannot be climbed", apex, c.Platforms.Spacing))
	}

	return warnings
}
