/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package ratectltest provides a manually driven ratectl.Scheduler for tests.
package ratectltest

import (
	"sync"
	"time"

	"github.com/acronis/go-callkit/ratectl"
)

// DefaultStartTime is the initial time of a Scheduler created by NewScheduler.
var DefaultStartTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Scheduler is a ratectl.Scheduler with simulated time.
// Time moves only via Advance and Set, and callbacks run on the goroutine calling Advance.
type Scheduler struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*timer
}

var _ ratectl.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a Scheduler starting at DefaultStartTime.
func NewScheduler() *Scheduler {
	return NewSchedulerAt(DefaultStartTime)
}

// NewSchedulerAt creates a Scheduler starting at the given time.
func NewSchedulerAt(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the simulated time.
func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// AfterFunc registers f to be called when the simulated time reaches Now()+d.
// A non-positive d makes f due immediately, but it is still called only by Advance.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) ratectl.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &timer{scheduler: s, deadline: s.now.Add(d), seq: s.seq, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the simulated time forward by d and calls every callback that becomes due,
// in deadline order (registration order for equal deadlines). Callbacks may register and stop timers;
// newly registered ones are called too if they become due within the same advance.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()
	s.advanceTo(target)
}

// AdvanceTo moves the simulated time forward to t, calling due callbacks like Advance does.
// It does nothing with callbacks if t is before the current time.
func (s *Scheduler) AdvanceTo(t time.Time) {
	s.advanceTo(t)
}

// Set changes the simulated time without calling any callback. It allows modelling clock jumps.
func (s *Scheduler) Set(t time.Time) {
	s.mu.Lock()
	s.now = t
	s.mu.Unlock()
}

// Pending returns the number of registered callbacks that have been neither called nor stopped.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// NextDeadline returns the deadline of the earliest pending callback.
func (s *Scheduler) NextDeadline() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next := s.earliest(); next != nil {
		return next.deadline, true
	}
	return time.Time{}, false
}

func (s *Scheduler) advanceTo(target time.Time) {
	for {
		s.mu.Lock()
		next := s.earliest()
		if next == nil || next.deadline.After(target) {
			if target.After(s.now) {
				s.now = target
			}
			s.mu.Unlock()
			return
		}
		if next.deadline.After(s.now) {
			s.now = next.deadline
		}
		s.remove(next)
		s.mu.Unlock()

		next.fn()
	}
}

func (s *Scheduler) earliest() *timer {
	var next *timer
	for _, t := range s.timers {
		if next == nil || t.deadline.Before(next.deadline) || (t.deadline.Equal(next.deadline) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (s *Scheduler) remove(t *timer) bool {
	for i, candidate := range s.timers {
		if candidate == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

type timer struct {
	scheduler *Scheduler
	deadline  time.Time
	seq       uint64
	fn        func()
}

// Stop implements ratectl.Timer.
func (t *timer) Stop() bool {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	return t.scheduler.remove(t)
}
