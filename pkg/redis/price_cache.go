package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"fantera.backend/internal/domain/entities"
)

const priceCacheKey = "prices:latest"

// PriceCache is a read-through cache for the latest-prices view. The sync
// job publishes after every run; readers fall back to the database when the
// key is missing or expired.
type PriceCache struct {
	ttl time.Duration
}

var (
	setCacheValue = Set
	getCacheValue = Get
	delCacheValue = Del
)

// NewPriceCache creates a new price cache with the given TTL
func NewPriceCache(ttl time.Duration) *PriceCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &PriceCache{ttl: ttl}
}

// Publish stores the latest price list
func (c *PriceCache) Publish(ctx context.Context, prices []entities.PricePoint) error {
	data, err := json.Marshal(prices)
	if err != nil {
		return err
	}
	return setCacheValue(ctx, priceCacheKey, data, c.ttl)
}

// Fetch returns the cached price list, or (nil, false, nil) on a miss
func (c *PriceCache) Fetch(ctx context.Context) ([]entities.PricePoint, bool, error) {
	raw, err := getCacheValue(ctx, priceCacheKey)
	if err != nil {
		if err == goredis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var prices []entities.PricePoint
	if err := json.Unmarshal([]byte(raw), &prices); err != nil {
		return nil, false, err
	}
	return prices, true, nil
}

// Invalidate drops the cached price list
func (c *PriceCache) Invalidate(ctx context.Context) error {
	return delCacheValue(ctx, priceCacheKey)
}
