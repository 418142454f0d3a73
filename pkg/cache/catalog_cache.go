package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CatalogCacheTTL bounds how long the item catalog is served from Redis.
	// The catalog only changes through migrations.
	CatalogCacheTTL = 24 * time.Hour

	catalogCacheKey = "catalog:items"
)

// CachedCatalogItem is one catalog entry as stored in Redis.
type CachedCatalogItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// CatalogCache stores the whole item catalog under a single key.
type CatalogCache struct {
	client *RedisClient
}

// NewCatalogCache creates a CatalogCache backed by r.
func NewCatalogCache(r *RedisClient) *CatalogCache {
	return &CatalogCache{client: r}
}

// Get returns the cached catalog or redis.Nil on a miss.
func (c *CatalogCache) Get(ctx context.Context) ([]CachedCatalogItem, error) {
	raw, err := c.client.Client().Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get catalog: %w", err)
	}
	var items []CachedCatalogItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("cache decode catalog: %w", err)
	}
	return items, nil
}

// Set replaces the cached catalog. An empty catalog is never cached so a
// later seed becomes visible immediately.
func (c *CatalogCache) Set(ctx context.Context, items []CachedCatalogItem) error {
	if len(items) == 0 {
		return nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache encode catalog: %w", err)
	}
	if err := c.client.Client().Set(ctx, catalogCacheKey, raw, CatalogCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set catalog: %w", err)
	}
	return nil
}

// Invalidate drops the cached catalog.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Client().Del(ctx, catalogCacheKey).Err(); err != nil {
		return fmt.Errorf("cache delete catalog: %w", err)
	}
	return nil
}
