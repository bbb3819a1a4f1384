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

// DebouncerOpts are optional parameters of Debouncer.
type DebouncerOpts struct {
	CommonOpts

	// Immediate makes the first trigger of a quiet period invoke the function synchronously
	// instead of deferring the invocation to the end of the quiet period.
	Immediate bool
}

// Debouncer invokes the wrapped function only after trigger calls have been quiet for the interval.
//
// Without Immediate, every trigger restarts the quiet-period timer and only the last trigger's
// arguments reach the function, when the timer fires. With Immediate, the first trigger of
// a quiet period invokes the function right away and later triggers only extend the period.
//
// Debouncer is safe for concurrent use. The function is never called with internal locks held,
// so it may trigger the Debouncer again.
type Debouncer[A, R any] struct {
	controllerCore
	fn        func(A) R
	interval  time.Duration
	immediate bool

	mu     sync.Mutex
	timer  timerSlot
	result R
}

var _ Controller[int, int] = (*Debouncer[int, int])(nil)

// NewDebouncer creates a Debouncer with a deferred (trailing) invocation.
func NewDebouncer[A, R any](fn func(A) R, interval time.Duration) *Debouncer[A, R] {
	return NewDebouncerWithOpts(fn, interval, DebouncerOpts{})
}

// NewDebouncerWithOpts creates a Debouncer with optional parameters.
// Negative interval is treated as zero. It panics if fn is nil.
func NewDebouncerWithOpts[A, R any](fn func(A) R, interval time.Duration, opts DebouncerOpts) *Debouncer[A, R] {
	if fn == nil {
		panic("ratectl: nil function passed to NewDebouncer")
	}
	if interval < 0 {
		interval = 0
	}
	return &Debouncer[A, R]{
		controllerCore: newControllerCore(PolicyDebounce, opts.CommonOpts),
		fn:             fn,
		interval:       interval,
		immediate:      opts.Immediate,
	}
}

// Invoke registers a trigger call. It returns the result of the most recent actual invocation:
// a fresh one if this call invoked the function synchronously, the stored one otherwise.
func (d *Debouncer[A, R]) Invoke(args A) R {
	d.metrics.IncTriggers(PolicyDebounce)

	d.mu.Lock()
	wasPending := d.timer.reset()

	if !d.immediate {
		d.timer.arm(d.scheduler, d.interval, func(gen uint64) { d.fire(gen, args) })
		result := d.result
		d.mu.Unlock()
		d.logger.Debug("invocation deferred", log.Duration("interval", d.interval))
		return result
	}

	d.timer.arm(d.scheduler, d.interval, d.endQuietPeriod)
	if wasPending {
		result := d.result
		d.mu.Unlock()
		return result
	}
	d.mu.Unlock()

	result := d.fn(args)
	d.storeResult(result)
	d.invoked(EdgeLeading)
	return result
}

// Cancel drops the pending timer. The stored result is kept.
// In immediate mode the next trigger invokes the function right away.
func (d *Debouncer[A, R]) Cancel() {
	d.mu.Lock()
	wasPending := d.timer.reset()
	d.mu.Unlock()
	if wasPending {
		d.cancelled()
	}
}

// Pending reports whether a timer is scheduled.
func (d *Debouncer[A, R]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer.pending()
}

// Result returns the result of the most recent actual invocation.
func (d *Debouncer[A, R]) Result() R {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result
}

func (d *Debouncer[A, R]) fire(gen uint64, args A) {
	d.mu.Lock()
	if !d.timer.claim(gen) {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	d.storeResult(d.fn(args))
	d.invoked(EdgeTrailing)
}

func (d *Debouncer[A, R]) endQuietPeriod(gen uint64) {
	d.mu.Lock()
	d.timer.claim(gen)
	d.mu.Unlock()
}

func (d *Debouncer[A, R]) storeResult(result R) {
	d.mu.Lock()
	d.result = result
	d.mu.Unlock()
}
