/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package lrucache

import "github.com/prometheus/client_golang/prometheus"

// MetricsCollector collects statistics of cache usage.
type MetricsCollector interface {
	SetAmount(int)
	IncHits()
	IncMisses()
	AddEvictions(int)
}

// PrometheusMetricsOpts are options of PrometheusMetrics.
type PrometheusMetricsOpts struct {
	Namespace   string
	ConstLabels prometheus.Labels

	// CurriedLabelNames must be curried with MustCurryWith before the collector is used.
	CurriedLabelNames []string
}

// PrometheusMetrics is a MetricsCollector that exports Prometheus metrics.
type PrometheusMetrics struct {
	EntriesAmount  *prometheus.GaugeVec
	HitsTotal      *prometheus.CounterVec
	MissesTotal    *prometheus.CounterVec
	EvictionsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics creates PrometheusMetrics with default options.
func NewPrometheusMetrics() *PrometheusMetrics {
	return NewPrometheusMetricsWithOpts(PrometheusMetricsOpts{})
}

// NewPrometheusMetricsWithOpts creates PrometheusMetrics.
func NewPrometheusMetricsWithOpts(opts PrometheusMetricsOpts) *PrometheusMetrics {
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace, Name: name, Help: help, ConstLabels: opts.ConstLabels,
		}, opts.CurriedLabelNames)
	}
	return &PrometheusMetrics{
		EntriesAmount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   opts.Namespace,
			Name:        "cache_entries_amount",
			Help:        "Total number of entries in the cache.",
			ConstLabels: opts.ConstLabels,
		}, opts.CurriedLabelNames),
		HitsTotal:      counter("cache_hits_total", "Number of successfully found keys in the cache."),
		MissesTotal:    counter("cache_misses_total", "Number of not found keys in cache."),
		EvictionsTotal: counter("cache_evictions_total", "Number of evicted entries."),
	}
}

// MustCurryWith returns a collector with the curried labels.
func (pm *PrometheusMetrics) MustCurryWith(labels prometheus.Labels) *PrometheusMetrics {
	return &PrometheusMetrics{
		EntriesAmount:  pm.EntriesAmount.MustCurryWith(labels),
		HitsTotal:      pm.HitsTotal.MustCurryWith(labels),
		MissesTotal:    pm.MissesTotal.MustCurryWith(labels),
		EvictionsTotal: pm.EvictionsTotal.MustCurryWith(labels),
	}
}

// MustRegister registers metrics in the default Prometheus registry.
func (pm *PrometheusMetrics) MustRegister() {
	prometheus.MustRegister(pm.EntriesAmount, pm.HitsTotal, pm.MissesTotal, pm.EvictionsTotal)
}

// Unregister removes metrics from the default Prometheus registry.
func (pm *PrometheusMetrics) Unregister() {
	prometheus.Unregister(pm.EntriesAmount)
	prometheus.Unregister(pm.HitsTotal)
	prometheus.Unregister(pm.MissesTotal)
	prometheus.Unregister(pm.EvictionsTotal)
}

func (pm *PrometheusMetrics) SetAmount(amount int) { pm.EntriesAmount.With(nil).Set(float64(amount)) }
func (pm *PrometheusMetrics) IncHits()             { pm.HitsTotal.With(nil).Inc() }
func (pm *PrometheusMetrics) IncMisses()           { pm.MissesTotal.With(nil).Inc() }
func (pm *PrometheusMetrics) AddEvictions(n int)   { pm.EvictionsTotal.With(nil).Add(float64(n)) }

type disabledMetrics struct{}

func (disabledMetrics) SetAmount(int)    {}
func (disabledMetrics) IncHits()         {}
func (disabledMetrics) IncMisses()       {}
func (disabledMetrics) AddEvictions(int) {}
