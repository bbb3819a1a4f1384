/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratectl

import "github.com/prometheus/client_golang/prometheus"

// Metric label names.
const (
	MetricsLabelPolicy = "policy"
	MetricsLabelEdge   = "edge"
)

// MetricsCollector receives controller events.
type MetricsCollector interface {
	// IncTriggers counts trigger calls.
	IncTriggers(policy Policy)

	// IncInvocations counts actual invocations of the wrapped function.
	IncInvocations(policy Policy, edge Edge)

	// IncCancels counts pending invocations dropped by Cancel.
	IncCancels(policy Policy)
}

// PrometheusMetricsOpts are options of PrometheusMetrics.
type PrometheusMetricsOpts struct {
	Namespace   string
	ConstLabels prometheus.Labels

	// CurriedLabelNames must be curried with MustCurryWith before the collector is passed to a controller.
	// A typical use is a "controller" label to tell controllers apart.
	CurriedLabelNames []string
}

// PrometheusMetrics is a MetricsCollector that exports Prometheus counters.
type PrometheusMetrics struct {
	TriggersTotal    *prometheus.CounterVec
	InvocationsTotal *prometheus.CounterVec
	CancelsTotal     *prometheus.CounterVec
}

var _ MetricsCollector = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates PrometheusMetrics with default options.
func NewPrometheusMetrics() *PrometheusMetrics {
	return NewPrometheusMetricsWithOpts(PrometheusMetricsOpts{})
}

// NewPrometheusMetricsWithOpts creates PrometheusMetrics.
func NewPrometheusMetricsWithOpts(opts PrometheusMetricsOpts) *PrometheusMetrics {
	labels := func(names ...string) []string {
		return append(append(make([]string, 0, len(opts.CurriedLabelNames)+len(names)), opts.CurriedLabelNames...), names...)
	}
	return &PrometheusMetrics{
		TriggersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "ratectl_triggers_total",
			Help:        "Number of trigger calls received by rate controllers.",
			ConstLabels: opts.ConstLabels,
		}, labels(MetricsLabelPolicy)),
		InvocationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "ratectl_invocations_total",
			Help:        "Number of actual invocations of wrapped functions.",
			ConstLabels: opts.ConstLabels,
		}, labels(MetricsLabelPolicy, MetricsLabelEdge)),
		CancelsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "ratectl_cancels_total",
			Help:        "Number of pending invocations dropped by cancellation.",
			ConstLabels: opts.ConstLabels,
		}, labels(MetricsLabelPolicy)),
	}
}

// MustCurryWith returns a collector with the curried labels.
func (pm *PrometheusMetrics) MustCurryWith(labels prometheus.Labels) *PrometheusMetrics {
	return &PrometheusMetrics{
		TriggersTotal:    pm.TriggersTotal.MustCurryWith(labels),
		InvocationsTotal: pm.InvocationsTotal.MustCurryWith(labels),
		CancelsTotal:     pm.CancelsTotal.MustCurryWith(labels),
	}
}

// MustRegister registers metrics in the default Prometheus registry.
func (pm *PrometheusMetrics) MustRegister() {
	prometheus.MustRegister(pm.TriggersTotal, pm.InvocationsTotal, pm.CancelsTotal)
}

// Unregister removes metrics from the default Prometheus registry.
func (pm *PrometheusMetrics) Unregister() {
	prometheus.Unregister(pm.TriggersTotal)
	prometheus.Unregister(pm.InvocationsTotal)
	prometheus.Unregister(pm.CancelsTotal)
}

// MustRegisterMetrics implements service.MetricsRegisterer.
func (pm *PrometheusMetrics) MustRegisterMetrics() {
	pm.MustRegister()
}

// UnregisterMetrics implements service.MetricsRegisterer.
func (pm *PrometheusMetrics) UnregisterMetrics() {
	pm.Unregister()
}

func (pm *PrometheusMetrics) IncTriggers(policy Policy) {
	pm.TriggersTotal.With(prometheus.Labels{MetricsLabelPolicy: string(policy)}).Inc()
}

func (pm *PrometheusMetrics) IncInvocations(policy Policy, edge Edge) {
	pm.InvocationsTotal.With(prometheus.Labels{
		MetricsLabelPolicy: string(policy),
		MetricsLabelEdge:   string(edge),
	}).Inc()
}

func (pm *PrometheusMetrics) IncCancels(policy Policy) {
	pm.CancelsTotal.With(prometheus.Labels{MetricsLabelPolicy: string(policy)}).Inc()
}

type disabledMetrics struct{}

func (disabledMetrics) IncTriggers(Policy)          {}
func (disabledMetrics) IncInvocations(Policy, Edge) {}
func (disabledMetrics) IncCancels(Policy)           {}
