// Package loop schedules fixed simulation ticks.
//
// Stepper turns measured frame time into a whole number of ticks so that a
// frame with no elapsed time runs no tick. Runner drives a Stepper from a
// ticker in its own goroutine and guarantees that no tick runs once Stop has
// returned.
package loop

import "time"

// DefaultMaxCatchUp bounds how many ticks a single Advance may return.
const DefaultMaxCatchUp = 5

// Stepper accumulates elapsed time and releases it in fixed steps.
type Stepper struct {
	step       time.Duration
	acc        time.Duration
	maxCatchUp int
}

// NewStepper creates a stepper for the given ticks per second.
// Rates below 1 are treated as 1.
func NewStepper(tickRate int) *Stepper {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Stepper{
		step:       time.Second / time.Duration(tickRate),
		maxCatchUp: DefaultMaxCatchUp,
	}
}

// Step returns the fixed tick duration.
func (s *Stepper) Step() time.Duration {
	return s.step
}

// SetMaxCatchUp changes the per-call tick cap. Values below 1 disable the cap.
func (s *Stepper) SetMaxCatchUp(n int) {
	s.maxCatchUp = n
}

// Advance adds elapsed time and returns the number of ticks now due.
// Non-positive elapsed time yields zero ticks. When more ticks are due than
// the catch-up cap allows, the excess is dropped rather than carried over.
func (s *Stepper) Advance(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	s.acc += elapsed
	n := int(s.acc / s.step)
	s.acc -= time.Duration(n) * s.step

	if s.maxCatchUp > 0 && n > s.maxCatchUp {
		n = s.maxCatchUp
		s.acc = 0
	}
	return n
}

// Reset drops any accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
}
