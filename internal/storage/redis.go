package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKeyCache stores PEM-encoded JWKS signing keys by kid with a TTL.
type RedisKeyCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisKeyCache(client *redis.Client, ttl time.Duration) *RedisKeyCache {
	return &RedisKeyCache{Client: client, TTL: ttl}
}

func (c *RedisKeyCache) key(kid string) string {
	return "jwks:" + kid
}

func (c *RedisKeyCache) Get(ctx context.Context, kid string) (string, error) {
	val, err := c.Client.Get(ctx, c.key(kid)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *RedisKeyCache) Set(ctx context.Context, kid, pem string) error {
	return c.Client.Set(ctx, c.key(kid), pem, c.TTL).Err()
}
