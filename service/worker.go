/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package service

import "context"

// Worker performs (usually long-running) work until ctx is done.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc lets an ordinary function be used as Worker.
type WorkerFunc func(ctx context.Context) error

// Run implements Worker.
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
