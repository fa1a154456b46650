package service

import (
	"context"
	"encoding/json"
	"time"

	"shopops/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const shopCacheTTL = 30 * time.Second

// shopCache keeps hot shop detail reads in Redis. All methods are nil-safe so
// services built without Redis (unit tests) skip caching entirely. Cache
// failures are logged and treated as misses — Redis being down must never
// break a read.
type shopCache struct {
	rdb *redis.Client
}

func newShopCache(rdb *redis.Client) *shopCache { return &shopCache{rdb: rdb} }

func shopCacheKey(id string) string { return "shop:" + id }

func (c *shopCache) Get(ctx context.Context, id string) (*dto.ShopResponse, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	val, err := c.rdb.Get(ctx, shopCacheKey(id)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("shop_id", id).Msg("shop cache read failed")
		return nil, false
	}
	var resp dto.ShopResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *shopCache) Set(ctx context.Context, id string, resp *dto.ShopResponse) {
	if c == nil || c.rdb == nil || resp == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, shopCacheKey(id), payload, shopCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("shop_id", id).Msg("shop cache write failed")
	}
}

// Invalidate drops the cached entry after any shop mutation or top-up.
func (c *shopCache) Invalidate(ctx context.Context, id string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, shopCacheKey(id)).Err(); err != nil {
		log.Warn().Err(err).Str("shop_id", id).Msg("shop cache invalidation failed")
	}
}
