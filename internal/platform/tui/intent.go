package tui

import (
	"time"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// IntentLatch holds the last direction key in a terminal. Terminals report
// key presses and auto-repeats but never releases, so a direction is
// considered released once no repeat arrives within the window.
type IntentLatch struct {
	window time.Duration
	held   core.Action
	last   time.Time
}

// NewIntentLatch creates a latch that releases after window without a repeat.
// A non-positive window keeps directions held until Release.
func NewIntentLatch(window time.Duration) *IntentLatch {
	return &IntentLatch{window: window}
}

// Press records a direction key press or repeat.
func (l *IntentLatch) Press(a core.Action, now time.Time) {
	l.held = a
	l.last = now
}

// Release drops the held direction.
func (l *IntentLatch) Release() {
	l.held = core.ActionNone
}

// Held returns the held direction, or ActionNone.
func (l *IntentLatch) Held() core.Action {
	return l.held
}

// Expire releases the held direction when its window has passed and reports
// whether it did.
func (l *IntentLatch) Expire(now time.Time) bool {
	if l.held == core.ActionNone || l.window <= 0 {
		return false
	}
	if now.Sub(l.last) < l.window {
		return false
	}
	l.held = core.ActionNone
	return true
}
