package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository/cache"
)

var _ cache.TemplateCache = (*templateCache)(nil)

// templateCache 集群共享的模板缓存，写入会触发各节点本地缓存的 keyspace 通知
type templateCache struct {
	client redis.Cmdable
}

func NewTemplateCache(client redis.Cmdable) cache.TemplateCache {
	return &templateCache{client: client}
}

func (c *templateCache) Get(ctx context.Context, name string) (domain.NotificationTemplate, error) {
	val, err := c.client.Get(ctx, cache.TemplateKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.NotificationTemplate{}, cache.ErrKeyNotFound
		}
		return domain.NotificationTemplate{}, err
	}
	var tpl domain.NotificationTemplate
	err = json.Unmarshal(val, &tpl)
	return tpl, err
}

func (c *templateCache) Set(ctx context.Context, tpl domain.NotificationTemplate) error {
	val, err := json.Marshal(tpl)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cache.TemplateKey(tpl.Name), val, 0).Err()
}

func (c *templateCache) Del(ctx context.Context, name string) error {
	return c.client.Del(ctx, cache.TemplateKey(name)).Err()
}

func (c *templateCache) SetTemplates(ctx context.Context, tpls []domain.NotificationTemplate) error {
	if len(tpls) == 0 {
		return nil
	}
	const number = 2
	vals := make([]any, 0, number*len(tpls))
	for _, tpl := range tpls {
		val, err := json.Marshal(tpl)
		if err != nil {
			return err
		}
		vals = append(vals, cache.TemplateKey(tpl.Name), val)
	}
	return c.client.MSet(ctx, vals...).Err()
}
