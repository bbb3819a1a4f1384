/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratectl

import (
	"fmt"
	"time"

	"github.com/acronis/go-callkit/lrucache"
)

// DefaultGroupMaxKeys is the number of per-key controllers kept by Group when GroupOpts.MaxKeys is zero.
const DefaultGroupMaxKeys = 1000

// GroupOpts are optional parameters of Group.
type GroupOpts struct {
	// MaxKeys bounds the number of live controllers. The least recently triggered one
	// is cancelled and dropped when the bound is exceeded.
	MaxKeys int

	// IdleTTL drops controllers that have not been triggered for the given time. Zero disables it.
	// Idle controllers are dropped lazily, on the next trigger of their key.
	IdleTTL time.Duration

	// Scheduler is the clock used to measure idle time. SystemScheduler is used if nil.
	Scheduler Scheduler

	// CacheMetricsCollector receives statistics of the underlying LRU cache. Disabled if nil.
	CacheMetricsCollector lrucache.MetricsCollector
}

// Group keeps an independent controller per key, e.g. a debounced save per document.
type Group[K comparable, A, R any] struct {
	factory     func(key K) Controller[A, R]
	controllers *lrucache.LRUCache[K, Controller[A, R]]
}

// NewGroup creates a Group that builds controllers with factory on the first trigger of a key.
func NewGroup[K comparable, A, R any](factory func(key K) Controller[A, R], opts GroupOpts) (*Group[K, A, R], error) {
	if factory == nil {
		return nil, fmt.Errorf("factory must not be nil")
	}
	maxKeys := opts.MaxKeys
	if maxKeys == 0 {
		maxKeys = DefaultGroupMaxKeys
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = SystemScheduler{}
	}
	controllers, err := lrucache.NewWithOpts[K, Controller[A, R]](maxKeys, opts.CacheMetricsCollector,
		lrucache.Options[K, Controller[A, R]]{
			DefaultTTL: opts.IdleTTL,
			SlidingTTL: true,
			Now:        scheduler.Now,
			OnEvicted: func(_ K, c Controller[A, R], _ lrucache.EvictReason) {
				c.Cancel()
			},
		})
	if err != nil {
		return nil, fmt.Errorf("new controllers cache: %w", err)
	}
	return &Group[K, A, R]{factory: factory, controllers: controllers}, nil
}

// Invoke triggers the controller of the key.
func (g *Group[K, A, R]) Invoke(key K, args A) R {
	c, _ := g.controllers.GetOrAdd(key, func() Controller[A, R] { return g.factory(key) })
	return c.Invoke(args)
}

// Cancel cancels the controller of the key and drops it. It reports whether the key was known.
func (g *Group[K, A, R]) Cancel(key K) bool {
	c, ok := g.controllers.Remove(key)
	if ok {
		c.Cancel()
	}
	return ok
}

// CancelAll cancels and drops all controllers.
func (g *Group[K, A, R]) CancelAll() {
	g.controllers.Range(func(key K, _ Controller[A, R]) bool {
		g.Cancel(key)
		return true
	})
}

// Len returns the number of live controllers.
func (g *Group[K, A, R]) Len() int {
	return g.controllers.Len()
}
