package doodle

// Advance runs one fixed physics tick and returns the next state. The input
// state is not modified. Terminal states keep integrating motion but their
// status never changes here.
func Advance(s State, intent Intent, p Params) State {
	next := s.Clone()
	next.Tick++
	vp := next.Viewport

	pl := &next.Player
	pl.VX = intent.Velocity(p.MoveSpeed)
	pl.X += pl.VX
	pl.Y += pl.VY
	pl.VY += p.Gravity

	pl.X = wrapX(pl.X, vp.W)

	for i := range next.Enemies {
		patrol(&next.Enemies[i], vp.W, p.EnemySpeed)
	}

	player := next.PlayerBox(p)
	for _, e := range next.Enemies {
		if player.Intersects(e.Box()) {
			if !next.Status.Terminal() {
				next.Status = StatusLost
			}
			break
		}
	}

	if pl.VY > 0 {
		bottom := player.Bottom()
		for _, plat := range next.Platforms {
			top := plat.Y
			if bottom < top || bottom > top+p.LandingTolerance {
				continue
			}
			if !player.OverlapsX(plat.Box()) {
				continue
			}
			pl.VY = p.JumpForce
			if plat.Kind == PlatformBouncy {
				pl.VY = p.JumpForce * p.BouncyMultiplier
			}
			pl.Jumping = true
		}
	}

	if pl.Y > vp.H+p.FallMargin && !next.Status.Terminal() {
		next.Status = StatusLost
	}

	return next
}

// wrapX maps x back into [0, w] when it leaves the viewport horizontally.
func wrapX(x, w float64) float64 {
	switch {
	case x < 0:
		return x + w
	case x > w:
		return x - w
	default:
		return x
	}
}

// patrol moves an enemy one step and reflects it at the viewport edges,
// keeping it inside [0, w-e.W].
func patrol(e *Enemy, w, speed float64) {
	e.X += e.Direction * speed
	maxX := w - e.W
	if (e.X <= 0 && e.Direction < 0) || (e.X >= maxX && e.Direction > 0) {
		e.Direction = -e.Direction
		switch {
		case e.X < 0:
			e.X = 0
		case e.X > maxX:
			e.X = maxX
		}
	}
}
