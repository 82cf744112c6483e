package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rgehrsitz/fincalc/internal/config"
)

// ResultCache stores encoded responses keyed by endpoint and request.
// Calculations are deterministic, so a hit is always exact.
type ResultCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// NewResultCache builds the cache selected by cfg. The "none" backend returns nil.
func NewResultCache(cfg *config.AppConfig) (ResultCache, error) {
	ttl, err := cfg.CacheTTL()
	if err != nil {
		return nil, err
	}
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		return NewMemoryCache(ttl), nil
	case config.CacheRedis:
		return NewRedisCache(&redis.Options{Addr: cfg.Cache.RedisAddr}, ttl), nil
	case config.CacheNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

type memoryEntry struct {
	value   string
	expires time.Time
}

// MemoryCache is an in-process cache guarded by a RWMutex
type MemoryCache struct {
	mu        sync.RWMutex
	data      map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !entry.expires.IsZero() && !m.now().Before(entry.expires) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

// Set stores value under key. Expired entries are swept at most once per TTL,
// so the map holds roughly the keys written during the last two TTL windows.
func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	now := m.now()
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expires = now.Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ttl > 0 && !now.Before(m.nextSweep) {
		m.sweepLocked(now)
		m.nextSweep = now.Add(m.ttl)
	}
	m.data[key] = entry
	return nil
}

func (m *MemoryCache) sweepLocked(now time.Time) {
	for key, entry := range m.data {
		if !entry.expires.IsZero() && !now.Before(entry.expires) {
			delete(m.data, key)
		}
	}
}

// Len reports the number of stored entries, including expired ones not yet swept
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// RedisCache keeps results in redis under a fixed key prefix
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

const redisKeyPrefix = "fincalc:"

func NewRedisCache(opts *redis.Options, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, redisKeyPrefix+key, value, r.ttl).Err()
}

// Close releases the redis connection pool
func (r *RedisCache) Close() error {
	return r.client.Close()
}
