package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// PointCacheTTL is the time-to-live for cached point details.
	PointCacheTTL = time.Hour

	pointCacheKeyPrefix = "point"
)

// CachedPoint is the denormalized point detail read model: the point row
// plus the titles of the items it accepts.
type CachedPoint struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Whatsapp   string   `json:"whatsapp"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	City       string   `json:"city"`
	UF         string   `json:"uf"`
	Image      string   `json:"image"`
	ItemTitles []string `json:"item_titles"`
}

// PointCache provides read/write operations for point detail entries.
// Key format: "point:{id}"
type PointCache struct {
	client *RedisClient
}

// NewPointCache creates a PointCache backed by r.
func NewPointCache(r *RedisClient) *PointCache {
	return &PointCache{client: r}
}

// Get returns the cached detail or redis.Nil on a miss.
func (c *PointCache) Get(ctx context.Context, id int64) (*CachedPoint, error) {
	raw, err := c.client.Client().Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get point: %w", err)
	}
	var p CachedPoint
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("cache decode point: %w", err)
	}
	return &p, nil
}

// Set writes a point detail with PointCacheTTL.
func (c *PointCache) Set(ctx context.Context, p *CachedPoint) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache encode point: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(p.ID), raw, PointCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set point: %w", err)
	}
	return nil
}

// Delete removes a cached point detail.
func (c *PointCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete point: %w", err)
	}
	return nil
}

func (c *PointCache) key(id int64) string {
	return pointCacheKeyPrefix + ":" + strconv.FormatInt(id, 10)
}
