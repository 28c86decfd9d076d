package payment

import (
	"context"
	"errors"
	"time"

	"aircnc/utils"

	"github.com/go-redis/redis/v8"
)

// RedisIntentCache stores client secrets under IntentCachePrefix.
type RedisIntentCache struct {
	client *redis.Client
}

func NewRedisIntentCache(client *redis.Client) *RedisIntentCache {
	return &RedisIntentCache{client: client}
}

func (c *RedisIntentCache) Get(ctx context.Context, key string) (string, bool, error) {
	secret, err := c.client.Get(ctx, utils.IntentCachePrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return secret, true, nil
}

func (c *RedisIntentCache) Set(ctx context.Context, key, clientSecret string, ttl time.Duration) error {
	return c.client.Set(ctx, utils.IntentCachePrefix+key, clientSecret, ttl).Err()
}
