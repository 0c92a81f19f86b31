// Package tui runs the game in a terminal with Bubble Tea.
// It maps keys to actions, schedules fixed ticks and paints the game's
// screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger game simulation ticks. Ticks scheduled before
// the model's epoch changed are stale and ignored.
type TickMsg struct {
	Epoch int
	At    time.Time
}

// tickCmd schedules the next tick message for the given epoch.
func tickCmd(epoch, tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, At: t}
	})
}
