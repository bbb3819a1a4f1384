/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratectl

import (
	"github.com/rs/xid"

	"github.com/acronis/go-callkit/log"
)

// Controller wraps a function and decides when a trigger call actually invokes it.
type Controller[A, R any] interface {
	// Invoke registers a trigger call with the given arguments and returns
	// the result of the most recent actual invocation of the wrapped function.
	Invoke(args A) R

	// Cancel drops any pending deferred invocation. It is idempotent.
	Cancel()
}

// Policy is a kind of rate control.
type Policy string

// Policies.
const (
	PolicyDebounce Policy = "debounce"
	PolicyThrottle Policy = "throttle"
)

// Edge tells whether an invocation happened synchronously within a trigger call (leading)
// or was deferred to a timer (trailing).
type Edge string

// Edges.
const (
	EdgeLeading  Edge = "leading"
	EdgeTrailing Edge = "trailing"
)

// Func adapts a function without a result to the form accepted by controllers.
func Func[A any](fn func(A)) func(A) struct{} {
	return func(args A) struct{} {
		fn(args)
		return struct{}{}
	}
}

// CommonOpts are optional parameters shared by all controllers.
type CommonOpts struct {
	// Scheduler provides time and timers. SystemScheduler is used if nil.
	Scheduler Scheduler

	// Logger receives debug messages about scheduling and invocations. Disabled if nil.
	Logger log.FieldLogger

	// MetricsCollector receives trigger/invocation/cancel events. Disabled if nil.
	MetricsCollector MetricsCollector

	// Name identifies the controller in logs. A unique id is generated if empty.
	Name string
}

type controllerCore struct {
	policy    Policy
	scheduler Scheduler
	logger    log.FieldLogger
	metrics   MetricsCollector
}

func newControllerCore(policy Policy, opts CommonOpts) controllerCore {
	c := controllerCore{policy: policy, scheduler: opts.Scheduler, metrics: opts.MetricsCollector}
	if c.scheduler == nil {
		c.scheduler = SystemScheduler{}
	}
	if c.metrics == nil {
		c.metrics = disabledMetrics{}
	}
	name := opts.Name
	if name == "" {
		name = xid.New().String()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewDisabledLogger()
	}
	c.logger = logger.With(log.String("controller", name), log.String("policy", string(policy)))
	return c
}

func (c *controllerCore) invoked(edge Edge) {
	c.metrics.IncInvocations(c.policy, edge)
	c.logger.Debug("function invoked", log.String("edge", string(edge)))
}

func (c *controllerCore) cancelled() {
	c.metrics.IncCancels(c.policy)
	c.logger.Debug("pending invocation cancelled")
}
