package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const countKeyPrefix = "study_syncer:count:"

// CountCache keeps estimated collection counts in Redis for a short TTL.
// Redis failures are logged and treated as cache misses.
type CountCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCountCache(client redis.Cmdable, ttl time.Duration) *CountCache {
	return &CountCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *CountCache) Get(ctx context.Context, collection string) (int64, bool) {
	rkey := countKeyPrefix + collection

	val, err := c.client.Get(ctx, rkey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("redisKey", rkey).Msg("Failed to read cached count")
		}
		return 0, false
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		log.Warn().Err(err).Str("redisKey", rkey).Msg("Discarding malformed cached count")
		return 0, false
	}
	return n, true
}

func (c *CountCache) Set(ctx context.Context, collection string, n int64) {
	rkey := countKeyPrefix + collection
	if err := c.client.Set(ctx, rkey, n, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("redisKey", rkey).Msg("Failed to cache count")
		return
	}
	log.Trace().Str("redisKey", rkey).Int64("count", n).Msg("Count cached")
}

func (c *CountCache) Invalidate(ctx context.Context, collection string) {
	rkey := countKeyPrefix + collection
	if err := c.client.Del(ctx, rkey).Err(); err != nil {
		log.Warn().Err(err).Str("redisKey", rkey).Msg("Failed to invalidate cached count")
	}
}
