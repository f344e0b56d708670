package cache

import (
	"sync"
	"time"
)

// entry is a stored value with its absolute expiry instant. An entry is
// visible to readers only while now < expiry; after that it is logically
// absent and physically removed on next access or during Cleanup.
type entry[T any] struct {
	data   T
	expiry time.Time
}

// Cache is a generic in-memory key/value store with per-entry TTL.
//
// There is no eviction policy beyond TTL: the key space here is bounded by
// distinct symbols times a handful of variants, so an LRU bound would buy
// nothing. Instances are constructed once at startup and injected into the
// services that need them; the cache is never a package-level singleton, so
// tests can build isolated instances.
//
// All methods are safe for concurrent use. Reads and writes never block on
// I/O; concurrent writers for the same key are last-writer-wins, which is
// fine because re-fetching and re-caching a key produces an equivalent value.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]
	now     func() time.Time
}

// New creates an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// Set stores value under key with expiry = now + ttl, overwriting any
// previous entry for the key.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{data: value, expiry: c.now().Add(ttl)}
}

// Get returns the value stored under key if it has not expired. An expired
// entry is evicted as a side effect and reported as absent.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	if !c.now().Before(e.expiry) {
		delete(c.entries, key)
		var zero T
		return zero, false
	}
	return e.data, true
}

// Has reports whether key holds an unexpired entry.
func (c *Cache[T]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Cleanup sweeps all expired entries. Get self-evicts, so this is
// housekeeping rather than correctness: it keeps keys that are never read
// again from lingering. Intended to run on a fixed interval.
func (c *Cache[T]) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if !now.Before(e.expiry) {
			delete(c.entries, key)
		}
	}
}

// Clear removes every entry.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}

// Size returns the number of stored entries, expired or not.
func (c *Cache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
