/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package service provides lifecycle primitives (units and workers) for long-running components.
package service

// Unit is a component with its own start/stop lifecycle.
type Unit interface {
	// Start runs the unit. It may block for the lifetime of the unit.
	// A fatal error is reported to fatalErr; nothing is written on success.
	Start(fatalErr chan<- error)

	// Stop halts the unit. It may be called even if Start failed or was never called.
	Stop(gracefully bool) error
}

// MetricsRegisterer is implemented by units that own metrics.
type MetricsRegisterer interface {
	MustRegisterMetrics()
	UnregisterMetrics()
}
