// internal/common/cache/store.go
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Store is the lookup-cache contract shared by the in-memory and Redis
// backends. Values round-trip through JSON, so every Get hands out a fresh
// copy and concurrent runs never share a cached object by reference.
type Store interface {
	// Get unmarshals the cached value for key into out and reports whether a
	// live (non-expired) entry was found.
	Get(ctx context.Context, key string, out interface{}) bool

	// Put stores value under key with the store's TTL. Marshal failures are
	// swallowed; caching is best-effort.
	Put(ctx context.Context, key string, value interface{})
}

// MemoryStore is the default in-process TTL store. Entries expire after the
// configured TTL measured from creation; expiry is checked lazily on Get and
// expired entries are not swept, only replaced or read-checked.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry

	now func() time.Time // overridable in tests
}

type memoryEntry struct {
	data      []byte
	createdAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string, out interface{}) bool {
	s.mu.Lock()
	e, ok := s.entries[key]
	s.mu.Unlock()

	if !ok {
		return false
	}
	if s.ttl > 0 && s.now().Sub(e.createdAt) >= s.ttl {
		return false
	}
	return json.Unmarshal(e.data, out) == nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.entries[key] = memoryEntry{data: data, createdAt: s.now()}
	s.mu.Unlock()
}

// Len returns the number of entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
