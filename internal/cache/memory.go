package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/verdipratama/indra/internal/model"
)

// MemoryCache implements in-memory corpus caching with TTL expiry
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a parsed corpus from the cache
func (c *MemoryCache) Get(key string) ([]model.Statement, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]model.Statement), true
	}
	return nil, false
}

// Set stores a parsed corpus with the given TTL
func (c *MemoryCache) Set(key string, stmts []model.Statement, ttl time.Duration) {
	c.cache.Set(key, stmts, ttl)
}

// Delete removes a corpus from the cache
func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all cached corpora
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
