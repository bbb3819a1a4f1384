/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratectl

import (
	"sync"
	"time"

	"github.com/acronis/go-callkit/log"
)

// ThrottlerOpts are optional parameters of Throttler.
// Leading and trailing invocations are both enabled by default; the flags are independent.
type ThrottlerOpts struct {
	CommonOpts

	// NoLeading suppresses the synchronous invocation on the first trigger of a fresh window.
	NoLeading bool

	// NoTrailing suppresses the deferred invocation at the end of a window
	// for triggers that arrived while the window was active.
	NoTrailing bool
}

// Throttler invokes the wrapped function at most once per interval while trigger calls continue.
//
// A trigger arriving when the interval since the last invocation has elapsed invokes the function
// synchronously. A trigger arriving inside the window schedules a single trailing invocation at
// the end of the window; that invocation receives the arguments of the latest trigger seen before
// it fires.
//
// Throttler is safe for concurrent use. The function is never called with internal locks held,
// so it may trigger the Throttler again.
type Throttler[A, R any] struct {
	controllerCore
	fn       func(A) R
	interval time.Duration
	leading  bool
	trailing bool

	mu          sync.Mutex
	timer       timerSlot
	lastInvoked time.Time // zero means "never invoked"
	lastArgs    A
	result      R
}

var _ Controller[int, int] = (*Throttler[int, int])(nil)

// NewThrottler creates a Throttler with both leading and trailing invocations enabled.
func NewThrottler[A, R any](fn func(A) R, interval time.Duration) *Throttler[A, R] {
	return NewThrottlerWithOpts(fn, interval, ThrottlerOpts{})
}

// NewThrottlerWithOpts creates a Throttler with optional parameters.
// Negative interval is treated as zero. It panics if fn is nil.
func NewThrottlerWithOpts[A, R any](fn func(A) R, interval time.Duration, opts ThrottlerOpts) *Throttler[A, R] {
	if fn == nil {
		panic("ratectl: nil function passed to NewThrottler")
	}
	if interval < 0 {
		interval = 0
	}
	return &Throttler[A, R]{
		controllerCore: newControllerCore(PolicyThrottle, opts.CommonOpts),
		fn:             fn,
		interval:       interval,
		leading:        !opts.NoLeading,
		trailing:       !opts.NoTrailing,
	}
}

// Invoke registers a trigger call. It returns the result of the most recent actual invocation,
// which lags behind the latest trigger while a trailing invocation is pending.
func (t *Throttler[A, R]) Invoke(args A) R {
	t.metrics.IncTriggers(PolicyThrottle)

	t.mu.Lock()
	now := t.scheduler.Now()
	if t.lastInvoked.IsZero() && !t.leading {
		t.lastInvoked = now
	}
	remaining := t.interval - now.Sub(t.lastInvoked)

	// remaining > interval means the clock went backwards.
	if remaining <= 0 || remaining > t.interval {
		t.timer.reset()
		t.lastInvoked = now
		var zero A
		t.lastArgs = zero
		t.mu.Unlock()

		result := t.fn(args)
		t.storeResult(result)
		t.invoked(EdgeLeading)
		return result
	}

	t.lastArgs = args
	scheduled := false
	if !t.timer.pending() && t.trailing {
		t.timer.arm(t.scheduler, remaining, t.fireTrailing)
		scheduled = true
	}
	result := t.result
	t.mu.Unlock()

	if scheduled {
		t.logger.Debug("trailing invocation scheduled", log.Duration("remaining", remaining))
	}
	return result
}

// Cancel drops the pending trailing invocation and forgets the last invocation time,
// so the next trigger starts a fresh window.
func (t *Throttler[A, R]) Cancel() {
	t.mu.Lock()
	wasPending := t.timer.reset()
	t.lastInvoked = time.Time{}
	var zero A
	t.lastArgs = zero
	t.mu.Unlock()
	if wasPending {
		t.cancelled()
	}
}

// Pending reports whether a trailing invocation is scheduled.
func (t *Throttler[A, R]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer.pending()
}

// Result returns the result of the most recent actual invocation.
func (t *Throttler[A, R]) Result() R {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

func (t *Throttler[A, R]) fireTrailing(gen uint64) {
	t.mu.Lock()
	if !t.timer.claim(gen) {
		t.mu.Unlock()
		return
	}
	if t.leading {
		t.lastInvoked = t.scheduler.Now()
	} else {
		t.lastInvoked = time.Time{}
	}
	args := t.lastArgs
	var zero A
	t.lastArgs = zero
	t.mu.Unlock()

	t.storeResult(t.fn(args))
	t.invoked(EdgeTrailing)
}

func (t *Throttler[A, R]) storeResult(result R) {
	t.mu.Lock()
	t.result = result
	t.mu.Unlock()
}
