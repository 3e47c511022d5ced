// internal/common/cache/cache.go
// Package cache implements the key/TTL store collaborator used by the
// discovery engine. Two namespaces exist: a shared namespace with an explicit
// TTL per entry, and a request-scoped namespace with a fixed 5-minute TTL used
// to avoid repeating the same upstream lookup within one logical query.
package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// RequestScopedTTL is the fixed lifetime of the request-scoped namespace.
const RequestScopedTTL = 5 * time.Minute

// Store is the cache collaborator contract.
type Store interface {
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	SetRequestScoped(ctx context.Context, key string, data []byte) error
	GetRequestScoped(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
	Stats(ctx context.Context) (Stats, error)
	Close() error
}

// Stats reports cache bookkeeping for health checks.
type Stats struct {
	Entries        int   `json:"entries"`
	Hits           int64 `json:"hits"`
	Misses         int64 `json:"misses"`
	Evictions      int64 `json:"evictions"`
	EstimatedBytes int64 `json:"estimatedBytes"`
}

// GenerateKey produces a stable cache key by sorting parameter names
// alphabetically, so logically identical lookups share one entry.
func GenerateKey(prefix string, params map[string]interface{}) string {
	if len(params) == 0 {
		return prefix
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, params[name]))
	}

	return prefix + ":" + strings.Join(parts, "|")
}
