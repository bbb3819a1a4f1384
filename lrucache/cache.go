/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package lrucache

import (
	"container/list"
	"fmt"
	"sync"
	"time"
)

type cacheEntry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// EvictReason tells why an entry left the cache without an explicit Remove or Purge.
type EvictReason int

// Eviction reasons.
const (
	EvictReasonCapacity EvictReason = iota
	EvictReasonExpired
)

// LRUCache is a thread-safe LRU cache.
type LRUCache[K comparable, V any] struct {
	maxEntries int
	defaultTTL time.Duration
	slidingTTL bool
	onEvicted  func(key K, value V, reason EvictReason)
	now        func() time.Time

	mu      sync.Mutex
	lruList *list.List
	cache   map[K]*list.Element

	metricsCollector MetricsCollector
}

// Options are optional parameters of the cache.
type Options[K comparable, V any] struct {
	// DefaultTTL is applied to entries added without an explicit TTL. Zero means no expiration.
	// Expired entries are dropped lazily on access.
	DefaultTTL time.Duration

	// SlidingTTL makes every hit extend the entry's lifetime by DefaultTTL.
	SlidingTTL bool

	// Now is the clock used for expiration. time.Now is used if nil.
	Now func() time.Time

	// OnEvicted is called for entries dropped because of capacity or expiration.
	// It is called with the cache lock held and must not call the cache back.
	OnEvicted func(key K, value V, reason EvictReason)
}

// New creates a cache limited to maxEntries. metricsCollector may be nil.
func New[K comparable, V any](maxEntries int, metricsCollector MetricsCollector) (*LRUCache[K, V], error) {
	return NewWithOpts[K, V](maxEntries, metricsCollector, Options[K, V]{})
}

// NewWithOpts creates a cache limited to maxEntries with additional options. metricsCollector may be nil.
func NewWithOpts[K comparable, V any](
	maxEntries int, metricsCollector MetricsCollector, opts Options[K, V],
) (*LRUCache[K, V], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("maxEntries must be greater than 0")
	}
	if opts.DefaultTTL < 0 {
		return nil, fmt.Errorf("defaultTTL must be greater or equal to 0 (no expiration)")
	}
	if metricsCollector == nil {
		metricsCollector = disabledMetrics{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &LRUCache[K, V]{
		maxEntries:       maxEntries,
		defaultTTL:       opts.DefaultTTL,
		slidingTTL:       opts.SlidingTTL,
		onEvicted:        opts.OnEvicted,
		now:              now,
		lruList:          list.New(),
		cache:            make(map[K]*list.Element),
		metricsCollector: metricsCollector,
	}, nil
}

// Get returns the value stored under the key.
func (c *LRUCache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(key)
}

// Add stores the value with the default TTL, evicting the least recently used entry if the cache is full.
func (c *LRUCache[K, V]) Add(key K, value V) {
	c.AddWithTTL(key, value, c.defaultTTL)
}

// AddWithTTL stores the value with the given TTL (zero means no expiration).
func (c *LRUCache[K, V]) AddWithTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.expiration(ttl)
	if elem, ok := c.cache[key]; ok {
		c.lruList.MoveToFront(elem)
		elem.Value = &cacheEntry[K, V]{key: key, value: value, expiresAt: expiresAt}
		return
	}
	c.addNew(key, value, expiresAt)
}

// GetOrAdd returns the value stored under the key or stores the one built by valueProvider.
// valueProvider is called with the cache lock held.
func (c *LRUCache[K, V]) GetOrAdd(key K, valueProvider func() V) (value V, exists bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value, exists = c.get(key); exists {
		return value, true
	}
	value = valueProvider()
	c.addNew(key, value, c.expiration(c.defaultTTL))
	return value, false
}

// Remove deletes the entry. OnEvicted is not called.
func (c *LRUCache[K, V]) Remove(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.cache[key]
	if !ok {
		return value, false
	}
	c.lruList.Remove(elem)
	delete(c.cache, key)
	c.metricsCollector.SetAmount(len(c.cache))
	return elem.Value.(*cacheEntry[K, V]).value, true
}

// Purge drops all entries. OnEvicted is not called.
func (c *LRUCache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[K]*list.Element)
	c.lruList.Init()
	c.metricsCollector.SetAmount(0)
}

// Range calls fn for every entry from the most to the least recently used one until fn returns false.
// Entries are snapshotted before the first call so fn may use the cache.
func (c *LRUCache[K, V]) Range(fn func(key K, value V) bool) {
	c.mu.Lock()
	snapshot := make([]*cacheEntry[K, V], 0, c.lruList.Len())
	for elem := c.lruList.Front(); elem != nil; elem = elem.Next() {
		snapshot = append(snapshot, elem.Value.(*cacheEntry[K, V]))
	}
	c.mu.Unlock()

	for _, entry := range snapshot {
		if !fn(entry.key, entry.value) {
			return
		}
	}
}

// Len returns the number of entries (including expired ones not yet dropped).
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

func (c *LRUCache[K, V]) expiration(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return c.now().Add(ttl)
}

func (c *LRUCache[K, V]) get(key K) (value V, ok bool) {
	elem, hit := c.cache[key]
	if !hit {
		c.metricsCollector.IncMisses()
		return value, false
	}
	entry := elem.Value.(*cacheEntry[K, V])
	if !entry.expiresAt.IsZero() && entry.expiresAt.Before(c.now()) {
		c.lruList.Remove(elem)
		delete(c.cache, key)
		c.metricsCollector.SetAmount(len(c.cache))
		c.metricsCollector.IncMisses()
		c.evicted(entry, EvictReasonExpired)
		return value, false
	}
	if c.slidingTTL && !entry.expiresAt.IsZero() {
		entry.expiresAt = c.expiration(c.defaultTTL)
	}
	c.lruList.MoveToFront(elem)
	c.metricsCollector.IncHits()
	return entry.value, true
}

func (c *LRUCache[K, V]) addNew(key K, value V, expiresAt time.Time) {
	c.cache[key] = c.lruList.PushFront(&cacheEntry[K, V]{key: key, value: value, expiresAt: expiresAt})
	if len(c.cache) > c.maxEntries {
		if oldest := c.lruList.Back(); oldest != nil {
			entry := oldest.Value.(*cacheEntry[K, V])
			c.lruList.Remove(oldest)
			delete(c.cache, entry.key)
			c.metricsCollector.AddEvictions(1)
			c.evicted(entry, EvictReasonCapacity)
		}
	}
	c.metricsCollector.SetAmount(len(c.cache))
}

func (c *LRUCache[K, V]) evicted(entry *cacheEntry[K, V], reason EvictReason) {
	if c.onEvicted != nil {
		c.onEvicted(entry.key, entry.value, reason)
	}
}
