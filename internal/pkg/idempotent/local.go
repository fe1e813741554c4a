package idempotent

import (
	"context"
	"time"

	ca "github.com/patrickmn/go-cache"
)

var _ Service = (*LocalService)(nil)

// LocalService 单实例部署使用，多实例之间不共享
type LocalService struct {
	cache  *ca.Cache
	expiry time.Duration
}

func (l *LocalService) Exists(_ context.Context, key string) (bool, error) {
	// Add 在 key 已存在时返回错误
	return l.cache.Add(key, struct{}{}, l.expiry) != nil, nil
}

func (l *LocalService) MExists(ctx context.Context, keys ...string) ([]bool, error) {
	results := make([]bool, len(keys))
	for i, key := range keys {
		results[i], _ = l.Exists(ctx, key)
	}
	return results, nil
}

func NewLocalService(c *ca.Cache, expiry time.Duration) *LocalService {
	return &LocalService{cache: c, expiry: expiry}
}
