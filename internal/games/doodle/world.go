package doodle

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// PlatformCount returns how many platforms a world needs so that the top one
// sits above the height of the target score. It is always at least one.
func PlatformCount(p Params) int {
	target := p.WinningScore
	if target <= 0 {
		target = p.EndlessScore
	}
	if p.Spacing <= 0 || p.HeightPerPoint <= 0 {
		return 1
	}
	n := int(math.Ceil(float64(target+p.Margin) * p.HeightPerPoint / p.Spacing))
	if n < 1 {
		n = 1
	}
	return n
}

// Generate builds a fresh world for the viewport. The returned state is
// Running with the player at rest just above platform 0. The same rng seed
// always yields the same world.
func Generate(vp Viewport, p Params, rng *rand.Rand) State {
	vp = vp.Clamp(p)

	n := PlatformCount(p)
	span := vp.W - p.PlatformW
	if span < 0 {
		span = 0
	}

	platforms := make([]Platform, n)
	for i := range platforms {
		kind := PlatformStatic
		x := rng.Float64() * span
		if rng.Float64() < p.BouncyChance {
			kind = PlatformBouncy
		}
		platforms[i] = Platform{
			X:    x,
			Y:    vp.H - float64(i)*p.Spacing,
			W:    p.PlatformW,
			H:    p.PlatformH,
			Kind: kind,
		}
	}

	var enemies []Enemy
	if p.EnemyEvery > 0 {
		for i := p.EnemyEvery; i < n; i += p.EnemyEvery {
			plat := platforms[i]
			dir := 1.0
			if rng.Intn(2) == 0 {
				dir = -1
			}
			color := core.ColorRed
			if len(p.EnemyColors) > 0 {
				color = p.EnemyColors[rng.Intn(len(p.EnemyColors))]
			}
			enemies = append(enemies, Enemy{
				X:         plat.X + p.PlatformW/2 - p.EnemyW/2,
				Y:         plat.Y - p.EnemyH,
				W:         p.EnemyW,
				H:         p.EnemyH,
				Direction: dir,
				Color:     color,
			})
		}
	}

	first := platforms[0]
	return State{
		Viewport: vp,
		Player: Player{
			X: first.X + (p.PlatformW-p.PlayerSize)/2,
			Y: first.Y - p.PlayerSize - p.SpawnGap,
		},
		Platforms: platforms,
		Enemies:   enemies,
		Status:    StatusRunning,
	}
}
