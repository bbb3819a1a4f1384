/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratectl_test

import (
	"sync"
	"time"

	"github.com/acronis/go-callkit/ratectl/ratectltest"
)

type call struct {
	arg int
	at  time.Duration
}

// callRecorder is a wrapped function that remembers its arguments and the simulated time of each call.
type callRecorder struct {
	scheduler *ratectltest.Scheduler

	mu    sync.Mutex
	calls []call
}

func newCallRecorder(scheduler *ratectltest.Scheduler) *callRecorder {
	return &callRecorder{scheduler: scheduler}
}

func (r *callRecorder) fn(arg int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{arg: arg, at: r.scheduler.Now().Sub(ratectltest.DefaultStartTime)})
	return arg * 10
}

func (r *callRecorder) Calls() []call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]call(nil), r.calls...)
}
