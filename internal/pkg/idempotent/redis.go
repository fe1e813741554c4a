package idempotent

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Service = (*RedisService)(nil)

type RedisService struct {
	client redis.Cmdable
	expiry time.Duration
}

func (c *RedisService) Exists(ctx context.Context, key string) (bool, error) {
	result, err := c.client.SetNX(ctx, c.getKey(key), "1", c.expiry).Result()
	if err != nil {
		return false, err
	}
	return !result, nil
}

func (c *RedisService) MExists(ctx context.Context, keys ...string) ([]bool, error) {
	pipe := c.client.Pipeline()
	cmds := make([]*redis.BoolCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.SetNX(ctx, c.getKey(key), "1", c.expiry)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	results := make([]bool, len(keys))
	for i, cmd := range cmds {
		added, err := cmd.Result()
		if err != nil {
			return nil, err
		}
		results[i] = !added
	}
	return results, nil
}

func (c *RedisService) getKey(key string) string {
	return fmt.Sprintf("dispatch:idempotency:%s", key)
}

func NewRedisService(client redis.Cmdable, expiry time.Duration) *RedisService {
	return &RedisService{
		client: client,
		expiry: expiry,
	}
}
