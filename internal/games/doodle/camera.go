package doodle

import "math"

// Score converts a max height into points.
func Score(maxHeight, heightPerPoint float64) int {
	if maxHeight <= 0 || heightPerPoint <= 0 {
		return 0
	}
	return int(math.Floor(maxHeight / heightPerPoint))
}

// Track follows the player upward, ratchets the max height and checks the
// win condition. scoreChanged reports whether the score went up this tick.
func Track(s State, p Params) (next State, scoreChanged bool) {
	next = s
	half := next.Viewport.H / 2
	if next.Player.Y < half {
		next.CameraY = half - next.Player.Y
	}

	before := Score(next.MaxHeight, p.HeightPerPoint)
	candidate := math.Max(0, next.Viewport.H-next.Player.Y)
	if candidate > next.MaxHeight {
		next.MaxHeight = candidate
	}
	score := Score(next.MaxHeight, p.HeightPerPoint)

	if p.WinningScore > 0 && score >= p.WinningScore && next.Status == StatusRunning {
		next.Status = StatusWon
	}
	return next, score > before
}
