package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository/cache"
)

// 需要本地 redis
func newClient(t *testing.T) *redis.Client {
	t.Helper()
	t.Skip()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	t.Cleanup(func() { _ = client.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("redis 不可用: " + err.Error())
	}
	return client
}

func TestTemplateCache(t *testing.T) {
	t.Parallel()
	c := NewTemplateCache(newClient(t))
	ctx := t.Context()

	_, err := c.Get(ctx, "not-exist")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)

	tpls := []domain.NotificationTemplate{
		{Name: "order-created", Subject: "订单 {{orderNumber}}"},
		{Name: "announcement", Subject: "公告"},
	}
	require.NoError(t, c.SetTemplates(ctx, tpls))
	got, err := c.Get(ctx, "order-created")
	require.NoError(t, err)
	assert.Equal(t, "订单 {{orderNumber}}", got.Subject)

	require.NoError(t, c.Del(ctx, "order-created"))
	_, err = c.Get(ctx, "order-created")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}

func TestPreferenceCache(t *testing.T) {
	t.Parallel()
	c := NewPreferenceCache(newClient(t))
	ctx := t.Context()

	_, err := c.Get(ctx, 1, "OrderCreated")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)

	require.NoError(t, c.Set(ctx, domain.UserRoutePreference{UserID: 1, Route: "OrderCreated", Enabled: false}))
	got, err := c.Get(ctx, 1, "OrderCreated")
	require.NoError(t, err)
	assert.False(t, got.Enabled)

	require.NoError(t, c.Del(ctx, 1, "OrderCreated"))
}
