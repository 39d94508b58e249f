// internal/common/cache/fifo.go
package cache

import (
	"sync"
	"time"
)

// FIFOCache is a bounded key-value store with insertion-order eviction.
// Re-putting an existing key replaces its value but keeps the position the key
// earned on its first-ever write, so eviction order is first-in-first-out over
// original insertions. A single mutex guards the whole structure; operations
// are cheap and contention is not a bottleneck here.
type FIFOCache[V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*fifoEntry[V]
	order    []string
}

type fifoEntry[V any] struct {
	value     V
	createdAt time.Time
}

func NewFIFO[V any](capacity int) *FIFOCache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &FIFOCache[V]{
		capacity: capacity,
		entries:  make(map[string]*fifoEntry[V], capacity),
	}
}

// Get returns the cached value for key, if present.
func (c *FIFOCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key. Inserting a new key beyond capacity evicts the
// single oldest entry by insertion order first.
func (c *FIFOCache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		return
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = &fifoEntry[V]{value: value, createdAt: time.Now()}
	c.order = append(c.order, key)
}

// Len returns the number of cached entries.
func (c *FIFOCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *FIFOCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*fifoEntry[V], c.capacity)
	c.order = nil
}
