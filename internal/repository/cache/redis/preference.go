package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository/cache"
)

const preferenceExpiration = 30 * time.Minute

var _ cache.PreferenceCache = (*preferenceCache)(nil)

type preferenceCache struct {
	client redis.Cmdable
}

func NewPreferenceCache(client redis.Cmdable) cache.PreferenceCache {
	return &preferenceCache{client: client}
}

func (c *preferenceCache) Get(ctx context.Context, userID int64, route string) (domain.UserRoutePreference, error) {
	enabled, err := c.client.Get(ctx, cache.PreferenceKey(userID, route)).Bool()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.UserRoutePreference{}, cache.ErrKeyNotFound
		}
		return domain.UserRoutePreference{}, err
	}
	return domain.UserRoutePreference{
		UserID:  userID,
		Route:   route,
		Enabled: enabled,
	}, nil
}

func (c *preferenceCache) Set(ctx context.Context, pref domain.UserRoutePreference) error {
	return c.client.Set(ctx, cache.PreferenceKey(pref.UserID, pref.Route), pref.Enabled, preferenceExpiration).Err()
}

func (c *preferenceCache) Del(ctx context.Context, userID int64, route string) error {
	return c.client.Del(ctx, cache.PreferenceKey(userID, route)).Err()
}
