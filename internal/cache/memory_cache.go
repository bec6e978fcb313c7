package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process Cache backed by go-cache. The content
// tables only change at seed time, so a short TTL per key is plenty.
type MemoryCache struct {
	c *gocache.Cache
}

func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{c: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (m *MemoryCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	v, found := m.c.Get(key)
	if !found {
		return false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		// foreign value under our key: treat as miss
		m.c.Delete(key)
		return false, nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		m.c.Delete(key)
		return false, nil
	}
	return true, nil
}

func (m *MemoryCache) SetJSON(_ context.Context, key string, val any, ttl time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	m.c.Set(key, b, ttl)
	return nil
}

func (m *MemoryCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.c.Delete(k)
	}
	return nil
}
