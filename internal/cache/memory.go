package cache

import (
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	Register("memory", newMemoryCache)
}

// memoryCache is a process-local LRU with per-entry expiry.
type memoryCache struct {
	inner *lru.LRU[string, []byte]
}

func newMemoryCache(cfg ProviderConfig) (Cache, error) {
	size := cfg.Size
	if size <= 0 {
		size = defaultSize
	}
	return &memoryCache{
		inner: lru.NewLRU[string, []byte](size, lru.EvictCallback[string, []byte](cfg.OnEvict), cfg.TTL),
	}, nil
}

func (m *memoryCache) Get(key string) ([]byte, bool) {
	return m.inner.Get(key)
}

func (m *memoryCache) Set(key string, value []byte) {
	m.inner.Add(key, value)
}

func (m *memoryCache) Contains(key string) bool {
	return m.inner.Contains(key)
}

func (m *memoryCache) Len() int {
	return m.inner.Len()
}

func (m *memoryCache) Close() error {
	return nil
}
