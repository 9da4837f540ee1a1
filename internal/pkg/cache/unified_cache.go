package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Sets   int64 `json:"sets"`
	// Items includes expired entries not yet purged
	Items int `json:"items"`
}

// UnifiedCache is a typed view over a go-cache store
type UnifiedCache[T any] struct {
	store  *gocache.Cache
	ttl    time.Duration
	name   string // For logging/debugging
	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
	logger *zap.Logger
}

// NewUnifiedCache creates a new generic cache with specified TTL and name.
// Expired items are purged twice per TTL period.
func NewUnifiedCache[T any](ttl time.Duration, name string, logger *zap.Logger) *UnifiedCache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UnifiedCache[T]{
		store:  gocache.New(ttl, ttl/2),
		ttl:    ttl,
		name:   name,
		logger: logger,
	}
}

// Set stores an item in the cache with the given key
func (c *UnifiedCache[T]) Set(key string, value T) {
	c.store.Set(key, value, gocache.DefaultExpiration)
	c.sets.Add(1)

	c.logger.Debug("Cache set",
		zap.String("cache", c.name),
		zap.String("key", key),
		zap.Duration("ttl", c.ttl),
	)
}

// Get retrieves an item from the cache
func (c *UnifiedCache[T]) Get(key string) (T, bool) {
	var zero T
	raw, found := c.store.Get(key)
	if !found {
		c.misses.Add(1)
		c.logger.Debug("Cache miss",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		return zero, false
	}

	value, ok := raw.(T)
	if !ok {
		c.misses.Add(1)
		c.logger.Warn("Cache entry has unexpected type",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		return zero, false
	}

	c.hits.Add(1)
	c.logger.Debug("Cache hit",
		zap.String("cache", c.name),
		zap.String("key", key),
	)
	return value, true
}

// Delete removes an item from the cache
func (c *UnifiedCache[T]) Delete(key string) {
	c.store.Delete(key)
	c.logger.Debug("Cache delete",
		zap.String("cache", c.name),
		zap.String("key", key),
	)
}

// GetMetrics returns current cache metrics
func (c *UnifiedCache[T]) GetMetrics() CacheMetrics {
	return CacheMetrics{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Sets:   c.sets.Load(),
		Items:  c.store.ItemCount(),
	}
}

// CacheKeyBuilder helps build consistent cache keys
type CacheKeyBuilder struct {
	components []map[string]any
	logger     *zap.Logger
}

// NewCacheKeyBuilder creates a new cache key builder
func NewCacheKeyBuilder(logger *zap.Logger) *CacheKeyBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheKeyBuilder{
		components: make([]map[string]any, 0, 8),
		logger:     logger,
	}
}

// Add adds a component to the cache key
func (b *CacheKeyBuilder) Add(key string, value any) *CacheKeyBuilder {
	b.components = append(b.components, map[string]any{key: value})
	return b
}

// Build generates the final cache key as a SHA-256 hash
func (b *CacheKeyBuilder) Build() (string, error) {
	jsonBytes, err := json.Marshal(b.components)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache key components: %w", err)
	}

	hash := sha256.Sum256(jsonBytes)
	key := hex.EncodeToString(hash[:])

	b.logger.Debug("Cache key built",
		zap.String("key", key),
		zap.String("components", string(jsonBytes)),
	)

	return key, nil
}

// BuildOrDefault builds the cache key, returns empty string on error
func (b *CacheKeyBuilder) BuildOrDefault() string {
	key, err := b.Build()
	if err != nil {
		b.logger.Error("Failed to build cache key", zap.Error(err))
		return ""
	}
	return key
}
