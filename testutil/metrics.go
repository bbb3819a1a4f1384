/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package testutil contains helpers for tests.
package testutil

import (
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

// AssertCounterValue asserts that the counter has the wanted value.
// A counter vector child that was never touched is treated as zero.
func AssertCounterValue(t assert.TestingT, vec *prometheus.CounterVec, labels prometheus.Labels, want int) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	counter, err := vec.GetMetricWith(labels)
	if !assert.NoError(t, err) {
		return false
	}
	return assert.Equal(t, want, int(promtestutil.ToFloat64(counter)), "counter with labels %v", labels)
}

// RequireCounterValue calls AssertCounterValue and stops the test on failure.
func RequireCounterValue(t require.TestingT, vec *prometheus.CounterVec, labels prometheus.Labels, want int) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !AssertCounterValue(t, vec, labels, want) {
		t.FailNow()
	}
}
