package doodle

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '█'
	PlayerEyeChar   = '▀'
	GhostChar       = 'ᗣ'
	PlatformChar    = '▀'
	BouncyChar      = '≈'
	HUDSeparator    = '─'
	OffscreenMarker = '^'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	cfg := g.session.Config()
	RenderSnapshot(dst, g.session.Snapshot(), cfg.Viewport.CellWidth, cfg.Viewport.CellHeight)
}

// RenderSnapshot paints a snapshot into dst, mapping cellW x cellH world
// units onto one character. Row 0 holds the HUD.
func RenderSnapshot(dst *core.Screen, snap Snapshot, cellW, cellH float64) {
	dst.Clear()
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	v := view{cam: snap.CameraY, cellW: cellW, cellH: cellH}

	for _, p := range snap.Platforms {
		r := v.rect(p.X, p.Y, p.W, p.H)
		if p.Kind == PlatformBouncy {
			dst.FillRect(r, BouncyChar, core.ColorBrightCyan)
		} else {
			dst.FillRect(r, PlatformChar, core.ColorGreen)
		}
	}

	for _, e := range snap.Enemies {
		dst.FillRect(v.rect(e.X, e.Y, e.W, e.H), GhostChar, e.Color)
	}

	drawPlayer(dst, v, snap)
	drawHUD(dst, snap)

	switch {
	case snap.Status == StatusLost:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart", snap.Score), core.ColorBrightRed)
	case snap.Status == StatusWon:
		drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  R to play again", snap.Score), core.ColorGold)
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	}
}

// view converts world coordinates into screen cells.
type view struct {
	cam          float64
	cellW, cellH float64
}

func (v view) col(x float64) int {
	return int(math.Floor(x / v.cellW))
}

func (v view) row(y float64) int {
	return hudRows + int(math.Floor((y+v.cam)/v.cellH))
}

func (v view) rect(x, y, w, h float64) core.Rect {
	cw := int(math.Ceil(w / v.cellW))
	ch := int(math.Ceil(h / v.cellH))
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}
	return core.NewRect(v.col(x), v.row(y), cw, ch)
}

func drawPlayer(dst *core.Screen, v view, snap Snapshot) {
	size := snap.Params.PlayerSize
	r := v.rect(snap.Player.X, snap.Player.Y, size, size)

	// Above the top edge: keep a marker on the HUD separator row.
	if r.Bottom() <= hudRows {
		dst.SetColor(r.X+r.W/2, hudRows, OffscreenMarker, core.ColorYellow)
		return
	}

	dst.FillRect(r, PlayerChar, core.ColorYellow)
	eye := r.X + r.W - 1
	if snap.Player.VX < 0 {
		eye = r.X
	}
	dst.SetColor(eye, r.Y, PlayerEyeChar, core.ColorBrightYellow)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	text := fmt.Sprintf(" Score: %d  High: %d ", snap.Score, snap.HighScore)
	if snap.Params.WinningScore > 0 {
		text += fmt.Sprintf(" Goal: %d ", snap.Params.WinningScore)
	}
	dst.DrawTextColor(1, 0, text, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))
	boxW := max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
