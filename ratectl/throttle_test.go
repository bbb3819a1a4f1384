/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratectl_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/acronis/go-callkit/ratectl"
	"github.com/acronis/go-callkit/ratectl/ratectltest"
)

func newTestThrottler(
	scheduler *ratectltest.Scheduler, fn func(int) int, interval time.Duration, noLeading, noTrailing bool,
) *ratectl.Throttler[int, int] {
	return ratectl.NewThrottlerWithOpts(fn, interval, ratectl.ThrottlerOpts{
		CommonOpts: ratectl.CommonOpts{Scheduler: scheduler},
		NoLeading:  noLeading,
		NoTrailing: noTrailing,
	})
}

func TestThrottler_LeadingAndTrailing(t *testing.T) {
	s := ratectltest.NewScheduler()
	rec := newCallRecorder(s)
	th := newTestThrottler(s, rec.fn, time.Second, false, false)

	require.Equal(t, 10, th.Invoke(1))

	s.Advance(200 * time.Millisecond)
	require.Equal(t, 10, th.Invoke(2))
	require.True(t, th.Pending())
	deadline, ok := s.NextDeadline()
	require.True(t, ok)
	require.Equal(t, ratectltest.DefaultStartTime.Add(time.Second), deadline)

	s.Advance(800 * time.Millisecond)
	require.Equal(t, 20, th.Result())
	require.False(t, th.Pending())

	// The trailing invocation at 1000ms opens a new window, so a trigger at 1100ms is deferred to 2000ms.
	s.Advance(100 * time.Millisecond)
	require.Equal(t, 20, th.Invoke(3))
	s.Advance(900 * time.Millisecond)

	require.Equal(t, []call{
		{arg: 1, at: 0},
		{arg: 2, at: time.Second},
		{arg: 3, at: 2 * time.Second},
	}, rec.Calls())
}

func TestThrottler_TrailingUsesLatestArgs(t *testing.T) {
	s := ratectltest.NewScheduler()
	rec := newCallRecorder(s)
	th := newTestThrottler(s, rec.fn, time.Second, false, false)

	th.Invoke(1)
	for i := 2; i <= 5; i++ {
		s.Advance(100 * time.Millisecond)
		th.Invoke(i)
	}
	require.Equal(t, 1, s.Pending(), "only one trailing invocation must be scheduled per window")

	s.Advance(time.Second)
	require.Equal(t, []call{{arg: 1, at: 0}, {arg: 5, at: time.Second}}, rec.Calls())
}

func TestThrottler_RateBound(t *testing.T) {
	const interval = time.Second
	const step = 10 * time.Millisecond
	const total = 5 * time.Second

	for _, tt := range []struct {
		name       string
		noLeading  bool
		noTrailing bool
	}{
		{name: "leading and trailing"},
		{name: "leading only", noTrailing: true},
		{name: "trailing only", noLeading: true},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := ratectltest.NewScheduler()
			rec := newCallRecorder(s)
			th := newTestThrottler(s, rec.fn, interval, tt.noLeading, tt.noTrailing)

			for elapsed := time.Duration(0); elapsed < total; elapsed += step {
				th.Invoke(int(elapsed / step))
				s.Advance(step)
			}

			calls := rec.Calls()
			require.NotEmpty(t, calls)
			require.LessOrEqual(t, len(calls), int(total/interval)+1)
			for i := 1; i < len(calls); i++ {
				require.GreaterOrEqual(t, calls[i].at-calls[i-1].at, interval,
					"invocations %d and %d are closer than the interval", i-1, i)
			}
		})
	}
}

func TestThrottler_NoLeading(t *testing.T) {
	s := ratectltest.NewScheduler()
	rec := newCallRecorder(s)
	th := newTestThrottler(s, rec.fn, time.Second, true, false)

	require.Zero(t, th.Invoke(1))
	require.Empty(t, rec.Calls(), "first trigger must not invoke synchronously")

	s.Advance(300 * time.Millisecond)
	th.Invoke(2)
	s.Advance(700 * time.Millisecond)
	require.Equal(t, []call{{arg: 2, at: time.Second}}, rec.Calls())

	// After a trailing invocation the next trigger starts a new deferred window again.
	s.Advance(5 * time.Second)
	require.Equal(t, 20, th.Invoke(3))
	require.Len(t, rec.Calls(), 1)
	s.Advance(time.Second)
	require.Equal(t, []call{{arg: 2, at: time.Second}, {arg: 3, at: 7 * time.Second}}, rec.Calls())
}

func TestThrottler_NoTrailing(t *testing.T) {
	s := ratectltest.NewScheduler()
	rec := newCallRecorder(s)
	th := newTestThrottler(s, rec.fn, time.Second, false, true)

	require.Equal(t, 10, th.Invoke(1))
	s.Advance(200 * time.Millisecond)
	require.Equal(t, 10, th.Invoke(2))
	require.False(t, th.Pending())
	require.Zero(t, s.Pending())

	s.Advance(time.Second)
	require.Equal(t, 30, th.Invoke(3))
	require.Equal(t, []call{{arg: 1, at: 0}, {arg: 3, at: 1200 * time.Millisecond}}, rec.Calls())
}

func TestThrottler_NoLeadingNoTrailing(t *testing.T) {
	s := ratectltest.NewScheduler()
	rec := newCallRecorder(s)
	th := newTestThrottler(s, rec.fn, time.Second, true, true)

	th.Invoke(1)
	s.Advance(500 * time.Millisecond)
	th.Invoke(2)
	require.Empty(t, rec.Calls())
	require.Zero(t, s.Pending())

	// Flags are independent: once a full interval has passed since the first trigger, a trigger invokes.
	s.Advance(500 * time.Millisecond)
	require.Equal(t, 30, th.Invoke(3))
	require.Equal(t, []call{{arg: 3, at: time.Second}}, rec.Calls())
}

func TestThrottler_Cancel(t *testing.T) {
	t.Run("drops trailing invocation and resets the window", func(t *testing.T) {
		s := ratectltest.NewScheduler()
		rec := newCallRecorder(s)
		th := newTestThrottler(s, rec.fn, time.Second, false, false)

		th.Invoke(1)
		s.Advance(100 * time.Millisecond)
		th.Invoke(2)
		th.Cancel()
		th.Cancel()
		require.False(t, th.Pending())
		require.Zero(t, s.Pending())

		s.Advance(100 * time.Millisecond)
		require.Equal(t, 30, th.Invoke(3), "trigger after cancel starts a fresh window")
		s.Advance(2 * time.Second)
		require.Equal(t, []call{{arg: 1, at: 0}, {arg: 3, at: 200 * time.Millisecond}}, rec.Calls())
	})

	t.Run("without leading invocation", func(t *testing.T) {
		s := ratectltest.NewScheduler()
		rec := newCallRecorder(s)
		th := newTestThrottler(s, rec.fn, time.Second, true, false)

		th.Invoke(1)
		th.Cancel()
		s.Advance(100 * time.Millisecond)
		require.Zero(t, th.Invoke(2), "leading suppression still applies after cancel")
		require.Empty(t, rec.Calls())

		s.Advance(time.Second)
		require.Equal(t, []call{{arg: 2, at: 1100 * time.Millisecond}}, rec.Calls())
	})
}

func TestThrottler_ZeroInterval(t *testing.T) {
	s := ratectltest.NewScheduler()
	rec := newCallRecorder(s)
	th := newTestThrottler(s, rec.fn, 0, true, false)

	for i := 1; i <= 3; i++ {
		require.Equal(t, i*10, th.Invoke(i))
	}
	require.Len(t, rec.Calls(), 3)
	require.Zero(t, s.Pending())
}

func TestThrottler_ClockJumpBackwards(t *testing.T) {
	s := ratectltest.NewScheduler()
	rec := newCallRecorder(s)
	th := newTestThrottler(s, rec.fn, time.Second, false, false)

	th.Invoke(1)
	s.Advance(100 * time.Millisecond)
	th.Invoke(2)
	require.True(t, th.Pending())

	s.Set(ratectltest.DefaultStartTime.Add(-time.Hour))
	require.Equal(t, 30, th.Invoke(3), "clock going backwards must be treated as an expired window")
	require.False(t, th.Pending(), "pending trailing invocation is superseded")
	require.Len(t, rec.Calls(), 2)
}

func TestThrottler_Reentrant(t *testing.T) {
	s := ratectltest.NewScheduler()
	rec := newCallRecorder(s)
	var th *ratectl.Throttler[int, int]
	th = newTestThrottler(s, func(arg int) int {
		res := rec.fn(arg)
		if arg < 3 {
			th.Invoke(arg + 1)
		}
		return res
	}, time.Second, false, false)

	require.Equal(t, 10, th.Invoke(1))
	s.Advance(5 * time.Second)
	require.Equal(t, []call{
		{arg: 1, at: 0},
		{arg: 2, at: time.Second},
		{arg: 3, at: 2 * time.Second},
	}, rec.Calls())
}

func TestThrottler_Concurrent(t *testing.T) {
	var calls atomic.Int32
	th := ratectl.NewThrottler(ratectl.Func(func(int) { calls.Inc() }), time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			th.Invoke(i)
		}(i)
	}
	wg.Wait()
	th.Cancel()

	require.Equal(t, int32(1), calls.Load())
}

func TestNewThrottler_NilFunc(t *testing.T) {
	require.Panics(t, func() { ratectl.NewThrottler[int, int](nil, time.Second) })
}
