// internal/common/cache/memory_test.go
package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(100, 0)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	data, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), data)

	_, ok, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(100, 0)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	_, ok, _ := store.Get(ctx, "k")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok, "expired entry must not be returned")

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Entries, "expired entry is removed on read")
}

func TestMemoryStore_NamespacesAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(100, 0)

	require.NoError(t, store.Set(ctx, "k", []byte("shared"), time.Minute))
	require.NoError(t, store.SetRequestScoped(ctx, "k", []byte("scoped")))

	shared, ok, _ := store.Get(ctx, "k")
	require.True(t, ok)
	scoped, ok, _ := store.GetRequestScoped(ctx, "k")
	require.True(t, ok)

	assert.Equal(t, []byte("shared"), shared)
	assert.Equal(t, []byte("scoped"), scoped)
}

func TestMemoryStore_RequestScopedTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(100, 0)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.SetRequestScoped(ctx, "k", []byte("v")))

	current = current.Add(4 * time.Minute)
	_, ok, _ := store.GetRequestScoped(ctx, "k")
	assert.True(t, ok, "alive inside the fixed 5-minute window")

	current = current.Add(2 * time.Minute)
	_, ok, _ = store.GetRequestScoped(ctx, "k")
	assert.False(t, ok, "dead after the fixed 5-minute window")
}

func TestMemoryStore_LRUEviction(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(3, 0)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), time.Hour))
		current = current.Add(time.Second)
	}

	// Touch k0 so k1 becomes the least recently accessed.
	_, ok, _ := store.Get(ctx, "k0")
	require.True(t, ok)
	current = current.Add(time.Second)

	require.NoError(t, store.Set(ctx, "k3", []byte("v"), time.Hour))

	_, ok, _ = store.Get(ctx, "k1")
	assert.False(t, ok, "oldest lastAccessedAt is evicted first")
	_, ok, _ = store.Get(ctx, "k0")
	assert.True(t, ok)
	_, ok, _ = store.Get(ctx, "k3")
	assert.True(t, ok)

	stats, _ := store.Stats(ctx)
	assert.Equal(t, int64(1), stats.Evictions)
}

func TestMemoryStore_MemoryBoundEviction(t *testing.T) {
	ctx := context.Background()
	// Each entry costs len(key)+len(data)+64; three entries exceed 300 bytes.
	store := NewMemoryStore(0, 300)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Set(ctx, fmt.Sprintf("key-%d", i), make([]byte, 60), time.Hour))
		current = current.Add(time.Second)
	}

	stats, _ := store.Stats(ctx)
	assert.Greater(t, stats.Evictions, int64(0))
	assert.LessOrEqual(t, stats.EstimatedBytes, int64(300))
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(100, 0)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, store.SetRequestScoped(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, ok, _ := store.Get(ctx, "k")
	assert.False(t, ok)
	_, ok, _ = store.GetRequestScoped(ctx, "k")
	assert.False(t, ok)
}

func TestGenerateKey(t *testing.T) {
	a := GenerateKey("events", map[string]interface{}{"lat": 41.9, "lon": -87.6, "page": 1})
	b := GenerateKey("events", map[string]interface{}{"page": 1, "lon": -87.6, "lat": 41.9})

	assert.Equal(t, a, b, "parameter order must not change the key")
	assert.Equal(t, "events:lat=41.9|lon=-87.6|page=1", a)

	assert.Equal(t, "events", GenerateKey("events", nil))
}
