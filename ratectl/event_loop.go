/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratectl

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/acronis/go-callkit/log"
	"github.com/acronis/go-callkit/service"
)

// ErrEventLoopStopped is returned when a task is submitted to an EventLoop that has finished running.
var ErrEventLoopStopped = errors.New("event loop is stopped")

// ErrEventLoopAlreadyRunning is returned by Run if the loop is already running or has been run.
var ErrEventLoopAlreadyRunning = errors.New("event loop is already running")

// EventLoop runs submitted tasks and timer callbacks one by one on a single goroutine.
// Controllers using it as a Scheduler, and driven by tasks passed to Do, observe a single
// logical timeline with no parallel execution at all.
//
// EventLoop implements service.Worker, so it can be hosted by service.WorkerUnit.
// Tasks submitted before Run are executed once the loop starts.
type EventLoop struct {
	logger log.FieldLogger

	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	started atomic.Bool
	stopped atomic.Bool
}

var _ Scheduler = (*EventLoop)(nil)
var _ service.Worker = (*EventLoop)(nil)

// NewEventLoop creates a new EventLoop. logger may be nil.
func NewEventLoop(logger log.FieldLogger) *EventLoop {
	if logger == nil {
		logger = log.NewDisabledLogger()
	}
	return &EventLoop{logger: logger, wake: make(chan struct{}, 1)}
}

// Now returns time.Now().
func (l *EventLoop) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f to run on the loop goroutine after d.
func (l *EventLoop) AfterFunc(d time.Duration, f func()) Timer {
	lt := &loopTimer{}
	lt.timer = time.AfterFunc(d, func() {
		l.post(func() {
			if lt.state.CompareAndSwap(loopTimerPending, loopTimerFired) {
				f()
			}
		})
	})
	return lt
}

// Do submits fn to run on the loop goroutine. It may be called from the loop itself.
func (l *EventLoop) Do(fn func()) error {
	if !l.post(fn) {
		return ErrEventLoopStopped
	}
	return nil
}

// Run executes tasks until ctx is done. Pending tasks are dropped on exit.
func (l *EventLoop) Run(ctx context.Context) (err error) {
	if !l.started.CompareAndSwap(false, true) {
		return ErrEventLoopAlreadyRunning
	}
	defer func() {
		l.mu.Lock()
		l.stopped.Store(true)
		dropped := len(l.queue)
		l.queue = nil
		l.mu.Unlock()
		l.logger.Debug("event loop stopped", log.Int("dropped_tasks", dropped))
	}()
	l.logger.Debug("event loop started")

	for {
		for _, task := range l.takeQueue() {
			if ctx.Err() != nil {
				return nil
			}
			if err = l.runTask(task); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		}
	}
}

func (l *EventLoop) runTask(task func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			const logStackSize = 8192
			stack := make([]byte, logStackSize)
			stack = stack[:runtime.Stack(stack, false)]
			l.logger.Error(fmt.Sprintf("panic in event loop task: %+v", p), log.String("stack", string(stack)))
			err = fmt.Errorf("panic in event loop task: %v", p)
		}
	}()
	task()
	return nil
}

func (l *EventLoop) post(fn func()) bool {
	l.mu.Lock()
	if l.stopped.Load() {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

func (l *EventLoop) takeQueue() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	tasks := l.queue
	l.queue = nil
	return tasks
}

const (
	loopTimerPending int32 = iota
	loopTimerFired
	loopTimerStopped
)

type loopTimer struct {
	timer *time.Timer
	state atomic.Int32
}

// Stop implements Timer. A callback that was already queued but not yet run is skipped.
func (t *loopTimer) Stop() bool {
	if !t.state.CompareAndSwap(loopTimerPending, loopTimerStopped) {
		return false
	}
	t.timer.Stop()
	return true
}
