/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package service

import (
	"context"
	"errors"
	"time"
)

// ErrWorkerUnitStopTimeoutExceeded is returned by WorkerUnit.Stop when the worker does not finish in time.
var ErrWorkerUnitStopTimeoutExceeded = errors.New("worker unit stop timeout exceeded")

// WorkerUnitOpts are optional parameters of WorkerUnit.
type WorkerUnitOpts struct {
	MetricsRegisterer MetricsRegisterer

	// GracefulStopTimeout limits waiting for the worker in Stop(true). Zero means wait forever.
	GracefulStopTimeout time.Duration
}

// WorkerUnit presents a Worker as a Unit.
type WorkerUnit struct {
	worker    Worker
	opts      WorkerUnitOpts
	ctx       context.Context
	ctxCancel context.CancelFunc
	done      chan struct{}
}

var _ Unit = (*WorkerUnit)(nil)
var _ MetricsRegisterer = (*WorkerUnit)(nil)

// NewWorkerUnit creates a new WorkerUnit.
func NewWorkerUnit(worker Worker) *WorkerUnit {
	return NewWorkerUnitWithOpts(worker, WorkerUnitOpts{})
}

// NewWorkerUnitWithOpts creates a new WorkerUnit with optional parameters.
func NewWorkerUnitWithOpts(worker Worker, opts WorkerUnitOpts) *WorkerUnit {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerUnit{worker: worker, opts: opts, ctx: ctx, ctxCancel: cancel, done: make(chan struct{})}
}

// Start runs the worker and blocks until it returns.
func (u *WorkerUnit) Start(fatalErr chan<- error) {
	defer close(u.done)
	if err := u.worker.Run(u.ctx); err != nil {
		fatalErr <- err
	}
}

// Stop cancels the worker context. If gracefully is true, it waits for the worker to return.
func (u *WorkerUnit) Stop(gracefully bool) error {
	u.ctxCancel()
	if !gracefully {
		return nil
	}
	if u.opts.GracefulStopTimeout == 0 {
		<-u.done
		return nil
	}
	timer := time.NewTimer(u.opts.GracefulStopTimeout)
	defer timer.Stop()
	select {
	case <-u.done:
		return nil
	case <-timer.C:
		return ErrWorkerUnitStopTimeoutExceeded
	}
}

// MustRegisterMetrics implements MetricsRegisterer.
func (u *WorkerUnit) MustRegisterMetrics() {
	if u.opts.MetricsRegisterer != nil {
		u.opts.MetricsRegisterer.MustRegisterMetrics()
	}
}

// UnregisterMetrics implements MetricsRegisterer.
func (u *WorkerUnit) UnregisterMetrics() {
	if u.opts.MetricsRegisterer != nil {
		u.opts.MetricsRegisterer.UnregisterMetrics()
	}
}
