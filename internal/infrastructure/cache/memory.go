package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"sofa-backend/pkg/cache"
)

// MemoryCache là in-process cache.Cache dựa trên go-cache.
// Dùng khi CACHE_DRIVER=memory hoặc khi Redis không kết nối được.
// Values được lưu dạng JSON để Get có cùng semantics với RedisCache
// (caller không bao giờ nhận lại pointer dùng chung).
type MemoryCache struct {
	store *gocache.Cache
}

var _ cache.Cache = (*MemoryCache)(nil)

func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	v, found := m.store.Get(key)
	if !found {
		return false, nil
	}

	raw, ok := v.([]byte)
	if !ok {
		return false, fmt.Errorf("memory cache: unexpected value type %T for %s", v, key)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("memory cache decode %s: %w", key, err)
	}
	return true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory cache encode %s: %w", key, err)
	}
	m.store.Set(key, raw, ttl)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.store.Delete(key)
	}
	return nil
}

func (m *MemoryCache) Ping(context.Context) error {
	return nil
}

func (m *MemoryCache) Close() error {
	m.store.Flush()
	return nil
}
