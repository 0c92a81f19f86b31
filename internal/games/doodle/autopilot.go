package doodle

// Autopilot picks a horizontal intent that steers the player toward the
// nearest platform above its feet. It drives headless simulations.
func Autopilot(snap Snapshot) Intent {
	p := snap.Params
	feet := snap.Player.Y + p.PlayerSize

	target := -1
	for i, plat := range snap.Platforms {
		if plat.Y >= feet {
			continue
		}
		if target < 0 || plat.Y > snap.Platforms[target].Y {
			target = i
		}
	}
	if target < 0 {
		return IntentNone
	}

	// While rising fast aim for the next platform; once falling, stay over
	// the one below if it is already under the player.
	if snap.Player.VY > 0 {
		for _, plat := range snap.Platforms {
			if plat.Y >= feet && plat.Y-feet < p.Spacing && overlapsPlatform(snap.Player.X, p.PlayerSize, plat) {
				return steer(snap.Player.X+p.PlayerSize/2, plat.X+plat.W/2, p.MoveSpeed)
			}
		}
	}

	plat := snap.Platforms[target]
	return steer(snap.Player.X+p.PlayerSize/2, plat.X+plat.W/2, p.MoveSpeed)
}

func overlapsPlatform(x, size float64, plat Platform) bool {
	return x < plat.X+plat.W && x+size > plat.X
}

func steer(from, to, deadzone float64) Intent {
	switch {
	case to < from-deadzone:
		return IntentLeft
	case to > from+deadzone:
		return IntentRight
	default:
		return IntentNone
	}
}
