// Package cache is a small read-through JSON cache on Redis. A nil client
// turns every call into a plain load, so callers never branch on it.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	BillingPeriodKeyPrefix = "billing_period:"
	ValidationOptionsKey   = "validation_options"

	BillingPeriodTTL     = 24 * time.Hour
	ValidationOptionsTTL = 1 * time.Hour
)

func BillingPeriodKey(month string) string {
	return BillingPeriodKeyPrefix + month
}

type Cache struct {
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func New(rdb *redis.Client, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{rdb: rdb, sf: &singleflight.Group{}, logger: logger}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Fetch returns the cached value for key, or runs load once per key across
// concurrent callers and stores its result for ttl. Redis failures are
// logged and fall through to load.
func Fetch[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if c.Enabled() {
		if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
			var v T
			if json.Unmarshal([]byte(cached), &v) == nil {
				return v, nil
			}
		} else if err != redis.Nil {
			c.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
	}

	sf := &singleflight.Group{}
	if c != nil {
		sf = c.sf
	}
	v, err, _ := sf.Do(key, func() (interface{}, error) {
		val, err := load(ctx)
		if err != nil {
			return val, err
		}
		if c.Enabled() {
			if data, err := json.Marshal(val); err == nil {
				if err := c.rdb.Set(ctx, key, string(data), ttl).Err(); err != nil {
					c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: unexpected value type %T for %s", v, key)
	}
	return out, nil
}

// Invalidate deletes keys. Failures are logged, never returned.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
