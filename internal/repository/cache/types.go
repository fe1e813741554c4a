package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notification-dispatch/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

const (
	TemplatePrefix     = "template"
	PreferencePrefix   = "preference"
	DefaultExpiredTime = 10 * time.Minute
)

//go:generate mockgen -source=./types.go -destination=./mocks/cache.mock.go -package=cachemocks
type TemplateCache interface {
	Get(ctx context.Context, name string) (domain.NotificationTemplate, error)
	Set(ctx context.Context, tpl domain.NotificationTemplate) error
	Del(ctx context.Context, name string) error
	SetTemplates(ctx context.Context, tpls []domain.NotificationTemplate) error
}

func TemplateKey(name string) string {
	return fmt.Sprintf("%s:%s", TemplatePrefix, name)
}

// PreferenceCache 只缓存用户显式设置过的开关
type PreferenceCache interface {
	Get(ctx context.Context, userID int64, route string) (domain.UserRoutePreference, error)
	Set(ctx context.Context, pref domain.UserRoutePreference) error
	Del(ctx context.Context, userID int64, route string) error
}

func PreferenceKey(userID int64, route string) string {
	return fmt.Sprintf("%s:%d:%s", PreferencePrefix, userID, route)
}
