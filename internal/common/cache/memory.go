// internal/common/cache/memory.go
package cache

import (
	"context"
	"sync"
	"time"
)

// Entry is one cached value with its bookkeeping fields.
type Entry struct {
	Data           []byte
	ExpiresAt      time.Time
	CreatedAt      time.Time
	AccessCount    int64
	LastAccessedAt time.Time
}

// MemoryStore is the in-process cache backend. Eviction is LRU-style: once the
// configured entry count or estimated memory footprint is exceeded, the entry
// with the oldest LastAccessedAt is removed first.
type MemoryStore struct {
	mu sync.Mutex

	shared  map[string]*Entry
	scoped  map[string]*Entry // request-scoped namespace, fixed TTL
	maxSize int
	maxMem  int64
	memUsed int64

	hits      int64
	misses    int64
	evictions int64

	now func() time.Time // injectable for tests
}

// NewMemoryStore creates a bounded in-memory store. maxEntries and
// maxMemoryBytes both bound the shared and request-scoped namespaces together.
func NewMemoryStore(maxEntries int, maxMemoryBytes int64) *MemoryStore {
	return &MemoryStore{
		shared:  make(map[string]*Entry),
		scoped:  make(map[string]*Entry),
		maxSize: maxEntries,
		maxMem:  maxMemoryBytes,
		now:     time.Now,
	}
}

func (m *MemoryStore) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(m.shared, key, data, ttl)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.get(m.shared, key)
	return data, ok, nil
}

func (m *MemoryStore) SetRequestScoped(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(m.scoped, key, data, RequestScopedTTL)
	return nil
}

func (m *MemoryStore) GetRequestScoped(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.get(m.scoped, key)
	return data, ok, nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remove(m.shared, key)
	m.remove(m.scoped, key)
	return nil
}

func (m *MemoryStore) Stats(_ context.Context) (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{
		Entries:        len(m.shared) + len(m.scoped),
		Hits:           m.hits,
		Misses:         m.misses,
		Evictions:      m.evictions,
		EstimatedBytes: m.memUsed,
	}, nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// set stores an entry and evicts until both bounds hold again.
func (m *MemoryStore) set(ns map[string]*Entry, key string, data []byte, ttl time.Duration) {
	if old, exists := ns[key]; exists {
		m.memUsed -= entrySize(key, old)
	}

	now := m.now()
	entry := &Entry{
		Data:           data,
		ExpiresAt:      now.Add(ttl),
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	ns[key] = entry
	m.memUsed += entrySize(key, entry)

	for (m.maxSize > 0 && len(m.shared)+len(m.scoped) > m.maxSize) ||
		(m.maxMem > 0 && m.memUsed > m.maxMem) {
		if !m.evictOldest() {
			break
		}
	}
}

func (m *MemoryStore) get(ns map[string]*Entry, key string) ([]byte, bool) {
	entry, exists := ns[key]
	if !exists {
		m.misses++
		return nil, false
	}

	now := m.now()
	if now.After(entry.ExpiresAt) {
		m.remove(ns, key)
		m.misses++
		return nil, false
	}

	entry.AccessCount++
	entry.LastAccessedAt = now
	m.hits++
	return entry.Data, true
}

func (m *MemoryStore) remove(ns map[string]*Entry, key string) {
	if entry, exists := ns[key]; exists {
		m.memUsed -= entrySize(key, entry)
		delete(ns, key)
	}
}

// evictOldest drops the least recently accessed entry across both namespaces.
func (m *MemoryStore) evictOldest() bool {
	var oldestKey string
	var oldestNS map[string]*Entry
	var oldestAt time.Time
	found := false

	for _, ns := range []map[string]*Entry{m.shared, m.scoped} {
		for key, entry := range ns {
			if !found || entry.LastAccessedAt.Before(oldestAt) {
				oldestKey = key
				oldestNS = ns
				oldestAt = entry.LastAccessedAt
				found = true
			}
		}
	}

	if !found {
		return false
	}

	m.remove(oldestNS, oldestKey)
	m.evictions++
	return true
}

func entrySize(key string, entry *Entry) int64 {
	// Rough footprint: key + payload + fixed bookkeeping overhead.
	return int64(len(key) + len(entry.Data) + 64)
}
