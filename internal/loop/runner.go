package loop

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRunning is returned by Start when the runner is already active.
var ErrRunning = errors.New("loop: runner already started")

// TickFunc runs the given number of due ticks. Returning false stops the
// runner from inside the loop.
type TickFunc func(ticks int) bool

// Runner calls a TickFunc from a ticker goroutine until it is stopped.
type Runner struct {
	tickRate int
	fn       TickFunc
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner creates a stopped runner.
func NewRunner(tickRate int, fn TickFunc) *Runner {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Runner{tickRate: tickRate, fn: fn, now: time.Now}
}

// Start launches the loop. The loop ends when ctx is cancelled, Stop is
// called or the TickFunc returns false.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done != nil {
		select {
		case <-r.done:
		default:
			return ErrRunning
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.run(ctx, r.done)
	return nil
}

func (r *Runner) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	stepper := NewStepper(r.tickRate)
	ticker := time.NewTicker(stepper.Step())
	defer ticker.Stop()

	last := r.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Both cases may be ready at once; cancellation wins.
			if ctx.Err() != nil {
				return
			}
			now := r.now()
			n := stepper.Advance(now.Sub(last))
			last = now
			if n == 0 {
				continue
			}
			if !r.fn(n) {
				return
			}
		}
	}
}

// Stop cancels the loop and waits for it to exit. After Stop returns the
// TickFunc is never called again. Stop must not be called from the TickFunc;
// return false there instead.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Done returns a channel closed when the loop exits, or nil before Start.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// Running reports whether the loop goroutine is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}
