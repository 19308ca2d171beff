package hashing

// Signature identifies a position at a given remaining depth.
type Signature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash confirms a Zobrist match
	WeakHash uint32
	// Depth is the number of plies still to count below the position
	Depth int
}

type cacheKey struct {
	hash  uint64
	depth int
}

type cacheEntry struct {
	weak  uint32
	nodes uint64
}

// PerftCache memoizes perft subtree counts.
type PerftCache struct {
	table       map[cacheKey]cacheEntry
	maxCapacity int // 0 = unlimited
	hits        int
	collisions  int
}

// NewPerftCache creates an empty cache. maxCapacity of 0 means unlimited.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		table:       make(map[cacheKey]cacheEntry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for sig. An entry whose weak hash differs
// is a Zobrist collision and counts as a miss.
func (c *PerftCache) Lookup(sig Signature) (uint64, bool) {
	e, ok := c.table[cacheKey{sig.Hash, sig.Depth}]
	if !ok {
		return 0, false
	}
	if e.weak != sig.WeakHash {
		c.collisions++
		return 0, false
	}
	c.hits++
	return e.nodes, true
}

// Store records a count. Once the cache is full only existing keys are
// updated.
func (c *PerftCache) Store(sig Signature, nodes uint64) {
	k := cacheKey{sig.Hash, sig.Depth}
	if _, exists := c.table[k]; !exists && c.IsFull() {
		return
	}
	c.table[k] = cacheEntry{weak: sig.WeakHash, nodes: nodes}
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *PerftCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.table) >= c.maxCapacity
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	return len(c.table)
}

// Hits returns the number of successful lookups.
func (c *PerftCache) Hits() int {
	return c.hits
}

// Collisions returns the number of lookups rejected by the weak hash.
func (c *PerftCache) Collisions() int {
	return c.collisions
}

// Reset clears the cache and its counters.
func (c *PerftCache) Reset() {
	c.table = make(map[cacheKey]cacheEntry)
	c.hits = 0
	c.collisions = 0
}
