package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/events-directory/internal/domain/repository"
)

// Префиксы кеш-ключей по видам сущностей
const (
	cacheCities     = "cities:"
	cacheVenueTypes = "venue_types:"
	cacheEventTypes = "event_types:"
	cacheVenues     = "venues:"
	cacheEvents     = "events:"
)

// listCache - тонкая обёртка над кешем для списковых ответов.
// Отказ кеша никогда не валит запрос, только пишется в лог.
type listCache struct {
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func newListCache(cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *listCache {
	return &listCache{cache: cache, ttl: ttl, logger: logger}
}

func (c *listCache) get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.cache == nil {
		return false
	}
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("Cache entry is corrupted", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *listCache) set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *listCache) invalidate(ctx context.Context, prefixes ...string) {
	if c == nil || c.cache == nil {
		return
	}
	for _, prefix := range prefixes {
		if err := c.cache.DeleteByPrefix(ctx, prefix); err != nil {
			c.logger.Warn("Cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
		}
	}
}
