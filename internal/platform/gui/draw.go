package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

var (
	background  = color.RGBA{R: 18, G: 18, B: 28, A: 255}
	playerFill  = rgba(core.ColorBrightYellow)
	staticFill  = rgba(core.ColorGreen)
	bouncyFill  = rgba(core.ColorBrightCyan)
	overlayFill = color.RGBA{A: 170}
)

// rgba converts a palette color to an opaque image color.
func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Draw paints the session snapshot. World y plus CameraY is screen y.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	screen.Fill(background)

	cam := snap.CameraY
	for _, p := range snap.Platforms {
		fill := staticFill
		if p.Kind == doodle.PlatformBouncy {
			fill = bouncyFill
		}
		fillRect(screen, p.X, p.Y+cam, p.W, p.H, fill)
	}

	for _, e := range snap.Enemies {
		fillRect(screen, e.X, e.Y+cam, e.W, e.H, rgba(e.Color))
	}

	pl := snap.Player
	size := snap.Params.PlayerSize
	fillRect(screen, pl.X, pl.Y+cam, size, size, playerFill)
	vector.StrokeRect(screen, float32(pl.X), float32(pl.Y+cam), float32(size), float32(size), 2, color.Black, false)

	ebitenutil.DebugPrintAt(screen, hudText(snap), 8, 6)

	switch {
	case snap.Status == doodle.StatusLost:
		g.drawOverlay(screen, "GAME OVER", fmt.Sprintf("Score: %d   R to restart", snap.Score))
	case snap.Status == doodle.StatusWon:
		g.drawOverlay(screen, "YOU WIN!", fmt.Sprintf("Score: %d   R to play again", snap.Score))
	case snap.Paused:
		g.drawOverlay(screen, "PAUSED", "P to resume")
	}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func hudText(snap doodle.Snapshot) string {
	text := fmt.Sprintf("Score: %d  High: %d", snap.Score, snap.HighScore)
	if snap.Params.WinningScore > 0 {
		text += fmt.Sprintf("  Goal: %d", snap.Params.WinningScore)
	}
	return text
}

func (g *Game) drawOverlay(screen *ebiten.Image, title, subtitle string) {
	w, h := g.vp.W, g.vp.H
	fillRect(screen, 0, h/2-40, w, 80, overlayFill)
	// The debug font is 6x16 pixels per glyph.
	ebitenutil.DebugPrintAt(screen, title, int(w/2)-len(title)*3, int(h/2)-24)
	ebitenutil.DebugPrintAt(screen, subtitle, int(w/2)-len(subtitle)*3, int(h/2)+4)
}
