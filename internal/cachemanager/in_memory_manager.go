// Package cachemanager wraps an in-memory TTL cache behind a typed API.
// The editor uses it to keep styled screen rows between virtual line table
// rebuilds; the cache is flushed whenever the table or theme changes.
package cachemanager

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/rouge-editor/rouge/internal/log"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// NewInMemoryCacheManager initializes the in-memory cache for the given use
// case. The use case string only appears in logs.
func NewInMemoryCacheManager[V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCacheManager[V] {
	return &InMemoryCacheManager[V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// InMemoryCacheManager is a typed wrapper over an expiring key/value store.
type InMemoryCacheManager[V any] struct {
	useCase string
	cache   *gocache.Cache
}

// Get retrieves an item from the cache by its key.
func (c *InMemoryCacheManager[V]) Get(key string) (V, bool) {
	var zeroValue V

	value, found := c.cache.Get(key)
	if !found {
		return zeroValue, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "useCase", c.useCase, "key", key)
		return zeroValue, false
	}

	return v, true
}

// Set stores an item under key with the default expiration.
func (c *InMemoryCacheManager[V]) Set(key string, value V) {
	c.cache.SetDefault(key, value)
}

// Delete removes a single key.
func (c *InMemoryCacheManager[V]) Delete(key string) {
	c.cache.Delete(key)
}

// Flush drops every cached item.
func (c *InMemoryCacheManager[V]) Flush() {
	log.Debug(log.CatCache, "flushing cache", "useCase", c.useCase, "items", c.cache.ItemCount())
	c.cache.Flush()
}

// ItemCount returns the number of cached items, expired ones included.
func (c *InMemoryCacheManager[V]) ItemCount() int {
	return c.cache.ItemCount()
}
