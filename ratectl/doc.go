/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package ratectl regulates how often a function is actually called in response to
// a high-frequency stream of trigger calls.
//
// Two policies are provided:
//   - Debouncer calls the function only after the triggers have been quiet for the interval
//     (or, in immediate mode, on the first trigger of a quiet period).
//   - Throttler calls the function at most once per interval while triggers continue,
//     on the leading and/or trailing edge of the window.
//
// Both implement Controller. Time and deferred callbacks come from a Scheduler:
// SystemScheduler uses the wall clock and time.AfterFunc, EventLoop runs every callback
// on a single goroutine, and ratectltest.Scheduler is a manually advanced clock for tests.
//
// Example:
//
//	search := ratectl.NewDebouncer(func(query string) int {
//		return runSearch(query)
//	}, 300*time.Millisecond)
//	defer search.Cancel()
//
//	for _, q := range []string{"g", "go", "gol", "gola"} {
//		search.Invoke(q) // runSearch("gola") is called once, 300ms after the last trigger
//	}
package ratectl
