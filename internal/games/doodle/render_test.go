package doodle

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

func renderTestSnapshot() Snapshot {
	return Snapshot{
		State: State{
			Viewport:  Viewport{W: 800, H: 600},
			Player:    Player{X: 400, Y: 400},
			Platforms: []Platform{{X: 0, Y: 100, W: 150, H: 15}},
			Enemies:   []Enemy{{X: 200, Y: 200, W: 30, H: 30, Direction: 1, Color: core.ColorCyan}},
			Status:    StatusRunning,
		},
		Params: DefaultParams(),
	}
}

func TestRenderSnapshotPlacesCells(t *testing.T) {
	tests := []struct {
		name    string
		cameraY float64
		row     int
	}{
		{"no scroll", 0, 6},
		{"scrolled", 40, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := renderTestSnapshot()
			snap.CameraY = tt.cameraY
			dst := core.NewScreen(80, 31)
			RenderSnapshot(dst, snap, 10, 20)

			for x := 0; x < 15; x++ {
				if c := dst.GetCell(x, tt.row); c.Rune != PlatformChar || c.Color != core.ColorGreen {
					t.Fatalf("cell (%d,%d) = %+v, expected platform", x, tt.row, c)
				}
			}
			if c := dst.GetCell(15, tt.row); c.Rune == PlatformChar {
				t.Error("platform drawn past its width")
			}
		})
	}
}

func TestRenderSnapshotEnemyColor(t *testing.T) {
	dst := core.NewScreen(80, 31)
	RenderSnapshot(dst, renderTestSnapshot(), 10, 20)

	if c := dst.GetCell(20, 11); c.Rune != GhostChar || c.Color != core.ColorCyan {
		t.Errorf("cell (20,11) = %+v, expected cyan ghost", c)
	}
}

func TestRenderSnapshotOverlays(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Snapshot)
		want   string
	}{
		{"lost", func(s *Snapshot) { s.Status = StatusLost; s.Score = 42 }, "GAME OVER"},
		{"won", func(s *Snapshot) { s.Status = StatusWon; s.Score = 1000 }, "Score: 1000"},
		{"paused", func(s *Snapshot) { s.Paused = true }, "PAUSED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := renderTestSnapshot()
			tt.modify(&snap)
			dst := core.NewScreen(80, 31)
			RenderSnapshot(dst, snap, 10, 20)
			if !strings.Contains(dst.String(), tt.want) {
				t.Errorf("screen missing %q", tt.want)
			}
		})
	}
}

func TestRenderPlayerAboveView(t *testing.T) {
	snap := renderTestSnapshot()
	snap.Player.Y = -200
	dst := core.NewScreen(80, 31)
	RenderSnapshot(dst, snap, 10, 20)

	if c := dst.GetCell(42, 1); c.Rune != OffscreenMarker {
		t.Errorf("cell (42,1) = %+v, expected offscreen marker", c)
	}
}
