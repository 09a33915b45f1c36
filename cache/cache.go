// Package cache implements a bounded, optionally TTL-limited cache
// keyed by a caller-chosen comparable key (typically an expression's
// source text plus the static flags it was compiled under), with a
// configurable LRU or LFU eviction policy and hit/miss/evict
// statistics. Concurrent Compile calls for the same key are coalesced
// through golang.org/x/sync/singleflight so a cache miss never
// triggers duplicate parses.
package cache // import "github.com/CognitoIQ/go-xpath/cache"

import (
	"container/list"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Policy selects the eviction strategy used once the cache is full.
type Policy int

const (
	// LRU evicts the least recently used entry (by Get or Set).
	LRU Policy = iota
	// LFU evicts the least frequently used entry (counting Get hits,
	// replacing Sets, and Compile hits).
	LFU
)

// Stats holds the running hit/miss/eviction counters. Safe to read
// concurrently with cache operations; fields are updated atomically.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

type entry[V any] struct {
	key       interface{}
	value     V
	expiresAt time.Time // zero means no expiry
	frequency int64
	elem      *list.Element // this entry's node in order
}

// Cache is a bounded, optionally TTL-limited cache from a comparable
// key to a value of any type. The zero Cache is not usable; build one
// with New.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	policy   Policy
	ttl      time.Duration

	entries map[K]*entry[V]
	order   *list.List // front = most-recently-used / most-frequently-used

	group singleflight.Group

	stats Stats
}

// Option configures a Cache during New.
type Option[K comparable, V any] func(*Cache[K, V])

// WithPolicy selects the eviction policy; the default is LRU.
func WithPolicy[K comparable, V any](p Policy) Option[K, V] {
	return func(c *Cache[K, V]) { c.policy = p }
}

// WithTTL bounds how long an entry stays valid after insertion; zero
// (the default) means entries never expire on their own.
func WithTTL[K comparable, V any](ttl time.Duration) Option[K, V] {
	return func(c *Cache[K, V]) { c.ttl = ttl }
}

// New builds a Cache holding at most capacity entries. A non-positive
// capacity means unbounded (eviction never runs).
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		capacity: capacity,
		entries:  make(map[K]*entry[V]),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get looks up key, reporting a miss if absent or expired. A hit on an
// LRU cache moves the entry to the front; on an LFU cache it
// increments the entry's frequency and re-sorts its position.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		atomic.AddInt64(&c.stats.Misses, 1)
		var zero V
		return zero, false
	}
	if c.expired(e) {
		c.removeLocked(key, e)
		atomic.AddInt64(&c.stats.Misses, 1)
		var zero V
		return zero, false
	}

	atomic.AddInt64(&c.stats.Hits, 1)
	c.touch(e)
	return e.value, true
}

// Set inserts or replaces the value for key, evicting an existing
// entry under the configured Policy if the cache is at capacity.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

func (c *Cache[K, V]) setLocked(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = c.expiryLocked()
		c.touch(e)
		return
	}
	if c.capacity > 0 && len(c.entries) >= c.capacity {
		c.evictLocked()
	}
	e := &entry[V]{key: key, value: value, expiresAt: c.expiryLocked()}
	if c.policy == LFU {
		// A new entry has frequency zero, the lowest possible, so it
		// goes to the back to keep order sorted by frequency.
		e.elem = c.order.PushBack(e)
	} else {
		e.elem = c.order.PushFront(e)
	}
	c.entries[key] = e
}

func (c *Cache[K, V]) expiryLocked() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.ttl)
}

func (c *Cache[K, V]) expired(e *entry[V]) bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// touch records a use of e: for LRU this moves e to the front of
// order; for LFU this increments e's frequency and bubbles it toward
// the front past any lower-frequency neighbors.
func (c *Cache[K, V]) touch(e *entry[V]) {
	switch c.policy {
	case LFU:
		e.frequency++
		for prev := e.elem.Prev(); prev != nil; prev = e.elem.Prev() {
			if prev.Value.(*entry[V]).frequency >= e.frequency {
				break
			}
			c.order.MoveBefore(e.elem, prev)
		}
	default:
		c.order.MoveToFront(e.elem)
	}
}

// evictLocked removes the back of order: for LRU, the least recently
// used entry; for LFU, the least frequently used one (touch keeps
// order sorted by frequency descending from the front).
func (c *Cache[K, V]) evictLocked() {
	back := c.order.Back()
	if back == nil {
		return
	}
	e := back.Value.(*entry[V])
	key, ok := e.key.(K)
	if !ok {
		return
	}
	c.removeLocked(key, e)
	atomic.AddInt64(&c.stats.Evictions, 1)
}

func (c *Cache[K, V]) removeLocked(key K, e *entry[V]) {
	delete(c.entries, key)
	c.order.Remove(e.elem)
}

// Compile returns the cached value for key, computing it with fn on a
// miss. Concurrent Compile calls for the same key are coalesced via
// singleflight, so fn runs at most once per key at a time even under
// concurrent parsing of the same expression source. Only one hit/miss
// is recorded in Stats per call, regardless of how many callers were
// coalesced onto the same singleflight group.
func (c *Cache[K, V]) Compile(key K, fn func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	groupKey := fmt.Sprintf("%v", key)
	v, err, _ := c.group.Do(groupKey, func() (interface{}, error) {
		if v, ok := c.peek(key); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// peek looks up key without updating Stats, for the singleflight
// double-check inside Compile (the outer Get already recorded the
// miss that led here).
func (c *Cache[K, V]) peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.expired(e) {
		var zero V
		return zero, false
	}
	c.touch(e)
	return e.value, true
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      atomic.LoadInt64(&c.stats.Hits),
		Misses:    atomic.LoadInt64(&c.stats.Misses),
		Evictions: atomic.LoadInt64(&c.stats.Evictions),
	}
}

// Len reports the number of entries currently cached.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
