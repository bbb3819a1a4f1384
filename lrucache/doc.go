/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package lrucache provides a generic in-memory LRU cache with optional TTL,
// an eviction callback and Prometheus metrics.
package lrucache
