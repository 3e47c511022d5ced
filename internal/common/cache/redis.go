// internal/common/cache/redis.go
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"ticket-scout/internal/common/config"
)

const scopedPrefix = "req:"

// RedisStore is the Redis-backed cache backend, used when the engine runs as
// more than one process and the shared namespace must be shared for real.
// Hit/miss/eviction counters are process-local.
type RedisStore struct {
	client *redis.Client

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisStore creates a Redis-backed store and verifies connectivity.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: rdb}, nil
}

// NewRedisStoreWithClient wraps an existing client, for tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return r.get(ctx, key)
}

func (r *RedisStore) SetRequestScoped(ctx context.Context, key string, data []byte) error {
	return r.client.Set(ctx, scopedPrefix+key, data, RequestScopedTTL).Err()
}

func (r *RedisStore) GetRequestScoped(ctx context.Context, key string) ([]byte, bool, error) {
	return r.get(ctx, scopedPrefix+key)
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key, scopedPrefix+key).Err()
}

func (r *RedisStore) Stats(ctx context.Context) (Stats, error) {
	size, err := r.client.DBSize(ctx).Result()
	if err != nil {
		return Stats{}, fmt.Errorf("redis dbsize failed: %w", err)
	}
	return Stats{
		Entries: int(size),
		Hits:    r.hits.Load(),
		Misses:  r.misses.Load(),
	}, nil
}

func (r *RedisStore) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

func (r *RedisStore) get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}
	r.hits.Add(1)
	return data, true, nil
}
