package local

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gotomicro/ego/core/elog"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository/cache"
)

const (
	defaultTimeout = 3 * time.Second
)

var _ cache.TemplateCache = (*Cache)(nil)

// Cache 进程内模板缓存，通过 Redis keyspace 通知和其他节点保持一致
type Cache struct {
	rdb        *redis.Client
	logger     *elog.Component
	localCache *ca.Cache
}

func (c *Cache) Get(_ context.Context, name string) (domain.NotificationTemplate, error) {
	v, ok := c.localCache.Get(cache.TemplateKey(name))
	if !ok {
		return domain.NotificationTemplate{}, cache.ErrKeyNotFound
	}
	vv, ok := v.(domain.NotificationTemplate)
	if !ok {
		return domain.NotificationTemplate{}, errors.New("数据类型不正确")
	}
	return vv, nil
}

func (c *Cache) Set(_ context.Context, tpl domain.NotificationTemplate) error {
	c.localCache.Set(cache.TemplateKey(tpl.Name), tpl, cache.DefaultExpiredTime)
	return nil
}

func (c *Cache) Del(_ context.Context, name string) error {
	c.localCache.Delete(cache.TemplateKey(name))
	return nil
}

func (c *Cache) SetTemplates(_ context.Context, tpls []domain.NotificationTemplate) error {
	for _, tpl := range tpls {
		c.localCache.Set(cache.TemplateKey(tpl.Name), tpl, cache.DefaultExpiredTime)
	}
	return nil
}

// 监控redis
func (c *Cache) loop(ctx context.Context) {
	pubsub := c.rdb.PSubscribe(ctx, "__keyspace@*__:"+cache.TemplatePrefix+":*")
	defer func() {
		err := pubsub.Close()
		if err != nil {
			c.logger.Error("关闭 Redis 订阅失败", elog.FieldErr(err))
		}
	}()
	ch := pubsub.Channel()
	for msg := range ch {
		c.logger.Info("监控到 Redis 更新消息",
			elog.String("key", msg.Channel), elog.String("payload", msg.Payload))

		// __keyspace@0__:template:order-created => template:order-created
		const channelMinLen = 2
		channelStrList := strings.SplitN(msg.Channel, ":", channelMinLen)
		if len(channelStrList) < channelMinLen {
			c.logger.Error("监听到非法 Redis key", elog.String("channel", msg.Channel))
			continue
		}
		const keyIdx = 1
		key := channelStrList[keyIdx]
		ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
		c.handleTemplateChange(ctx, key, msg.Payload)
		cancel()
	}
}

func (c *Cache) handleTemplateChange(ctx context.Context, key, event string) {
	switch event {
	case "set":
		res := c.rdb.Get(ctx, key)
		if res.Err() != nil {
			c.logger.Error("订阅完获取键失败", elog.String("key", key), elog.FieldErr(res.Err()))
			return
		}
		var tpl domain.NotificationTemplate
		err := json.Unmarshal([]byte(res.Val()), &tpl)
		if err != nil {
			c.logger.Error("序列化失败", elog.String("key", key), elog.FieldErr(err))
			return
		}
		c.localCache.Set(key, tpl, cache.DefaultExpiredTime)
	case "del", "expired":
		c.localCache.Delete(key)
	}
}

// NewLocalCache rdb 为 nil 时只作为单机缓存使用
func NewLocalCache(rdb *redis.Client, localCache *ca.Cache) *Cache {
	res := &Cache{
		rdb:        rdb,
		logger:     elog.DefaultLogger,
		localCache: localCache,
	}
	if rdb != nil {
		go res.loop(context.Background())
	}
	return res
}
