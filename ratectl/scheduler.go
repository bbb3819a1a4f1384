/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratectl

import "time"

// Timer is a handle of a callback scheduled by Scheduler.
type Timer interface {
	// Stop prevents the callback from being called.
	// It returns false if the callback has already been called or the timer has already been stopped.
	Stop() bool
}

// Scheduler is a source of current time and deferred callbacks.
// AfterFunc must never call f synchronously.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler uses the wall clock and time.AfterFunc.
// Callbacks run on their own goroutines.
type SystemScheduler struct{}

var _ Scheduler = SystemScheduler{}

// Now returns time.Now().
func (SystemScheduler) Now() time.Time {
	return time.Now()
}

// AfterFunc calls f in its own goroutine after d.
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// timerSlot holds the single pending timer of a controller.
// Every reset bumps the generation so that a callback which lost the race with Stop
// (possible with SystemScheduler) recognizes itself as stale.
type timerSlot struct {
	timer Timer
	gen   uint64
}

func (s *timerSlot) pending() bool {
	return s.timer != nil
}

// reset stops the pending timer and reports whether there was one.
func (s *timerSlot) reset() bool {
	wasPending := s.timer != nil
	if wasPending {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	return wasPending
}

func (s *timerSlot) arm(scheduler Scheduler, d time.Duration, f func(gen uint64)) {
	gen := s.gen
	s.timer = scheduler.AfterFunc(d, func() { f(gen) })
}

// claim reports whether gen belongs to the pending timer and, if so, releases the slot.
func (s *timerSlot) claim(gen uint64) bool {
	if s.timer == nil || s.gen != gen {
		return false
	}
	s.timer = nil
	s.gen++
	return true
}
