// Package cache provides a generic, thread-safe sharded LRU cache.
//
// The render pipeline uses it for read-mostly resources that are expensive
// to build and immutable once built: parsed font sources and sized faces.
// Entries are never mutated after insertion, only replaced wholesale.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// Default configuration constants.
const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	// shardMask is used for fast shard selection (DefaultShardCount - 1).
	shardMask = DefaultShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by ShardedCache for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// ShardedCache is a thread-safe, sharded LRU cache.
//
// Each shard has its own lock, so concurrent lookups of different keys
// rarely contend. Eviction is LRU per shard with a configurable capacity.
type ShardedCache[K comparable, V any] struct {
	shards   [DefaultShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int // Per-shard capacity

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// shard is a single shard of the cache.
type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[K, V]
	lru     *lruList[K]
}

// entry holds a cached value with its LRU node.
type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// NewSharded creates a new sharded cache with the specified capacity per
// shard. Total capacity is approximately capacity * DefaultShardCount.
//
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *ShardedCache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &ShardedCache[K, V]{
		hasher:   hasher,
		capacity: capacity,
	}

	for i := range c.shards {
		c.shards[i] = &shard[K, V]{
			entries: make(map[K]*entry[K, V]),
			lru:     newLRUList[K](),
		}
	}

	return c
}

func (c *ShardedCache[K, V]) getShard(key K) *shard[K, V] {
	hash := c.hasher(key)
	return c.shards[hash&shardMask]
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
//
// On cache hit, the entry is moved to the front of the LRU list.
func (c *ShardedCache[K, V]) Get(key K) (V, bool) {
	s := c.getShard(key)

	s.mu.RLock()
	_, exists := s.entries[key]
	s.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	// Write lock for LRU update; re-check after acquiring it since the
	// entry may have been evicted in between.
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	value := e.value
	s.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value in the cache.
// If the shard exceeds capacity after insertion, oldest entries are evicted.
//
// The value is stored as-is (not copied). Callers should not modify it
// after caching.
func (c *ShardedCache[K, V]) Set(key K, value V) {
	s := c.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[key]; ok {
		existing.value = value
		s.lru.MoveToFront(existing.node)
		return
	}

	for s.lru.Len() >= c.capacity {
		if oldest, ok := s.lru.RemoveOldest(); ok {
			delete(s.entries, oldest)
			c.evictions.Add(1)
		} else {
			break
		}
	}

	node := s.lru.PushFront(key)
	s.entries[key] = &entry[K, V]{value: value, node: node}
}

// GetOrCreate returns a cached value or creates it using the provided
// function. The create function runs with the shard lock held to prevent
// duplicate computation; keep it fast or accept the contention.
func (c *ShardedCache[K, V]) GetOrCreate(key K, create func() V) V {
	if value, ok := c.Get(key); ok {
		return value
	}

	s := c.getShard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}

	value := create()

	for s.lru.Len() >= c.capacity {
		if oldest, ok := s.lru.RemoveOldest(); ok {
			delete(s.entries, oldest)
			c.evictions.Add(1)
		} else {
			break
		}
	}

	node := s.lru.PushFront(key)
	s.entries[key] = &entry[K, V]{value: value, node: node}

	return value
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *ShardedCache[K, V]) Delete(key K) bool {
	s := c.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}

	s.lru.Remove(e.node)
	delete(s.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *ShardedCache[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *ShardedCache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the per-shard capacity.
	Capacity int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of evicted entries.
	Evictions uint64
}

// Stats returns current cache statistics.
// The counters are atomic; the length scan takes each shard's read lock.
func (c *ShardedCache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}
