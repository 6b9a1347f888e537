package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const ratingTTL = 10 * time.Minute

// RatingCache keeps computed listing average ratings in redis. A nil cache is
// valid and turns every operation into a no-op, so callers never branch on
// whether redis is configured.
type RatingCache struct {
	client *redis.Client
}

// NewRatingCache returns nil when no address is configured.
func NewRatingCache(addr string) *RatingCache {
	if addr == "" {
		return nil
	}
	return &RatingCache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func ratingKey(listingID string) string {
	return "listing:rating:" + listingID
}

func (c *RatingCache) Get(ctx context.Context, listingID string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, ratingKey(listingID)).Result()
	if err != nil {
		return 0, false
	}
	avg, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return avg, true
}

func (c *RatingCache) Set(ctx context.Context, listingID string, avg float64) {
	if c == nil {
		return
	}
	c.client.Set(ctx, ratingKey(listingID), strconv.FormatFloat(avg, 'f', -1, 64), ratingTTL)
}

func (c *RatingCache) Invalidate(ctx context.Context, listingID string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, ratingKey(listingID))
}
