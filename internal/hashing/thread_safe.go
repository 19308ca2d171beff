package hashing

import "sync"

// ThreadSafeCache wraps PerftCache with mutex protection for concurrent access.
type ThreadSafeCache struct {
	cache *PerftCache
	mu    sync.Mutex
}

// NewThreadSafeCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeCache(maxCapacity int) *ThreadSafeCache {
	return &ThreadSafeCache{cache: NewPerftCache(maxCapacity)}
}

// Lookup returns the stored count for sig.
func (c *ThreadSafeCache) Lookup(sig Signature) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(sig)
}

// Store records a count.
func (c *ThreadSafeCache) Store(sig Signature, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Store(sig, nodes)
}

// Len returns the number of stored entries.
func (c *ThreadSafeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Hits returns the number of successful lookups.
func (c *ThreadSafeCache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Hits()
}

// LoadFromCache copies entries from an existing cache. Call before concurrent use.
func (c *ThreadSafeCache) LoadFromCache(other *PerftCache) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range other.table {
		c.cache.table[k] = e
	}
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafeCache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.IsFull()
}
