package repository

import (
	"context"

	"notification-dispatch/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/repository.mock.go -package=repomocks
type NotificationRepository interface {
	// SaveBatch 保存一批新建的通知以及渠道初始状态
	SaveBatch(ctx context.Context, notifications []domain.Notification) error
	// Update 持久化通知的渠道状态，只有仍处于 PENDING 的渠道会被推进
	Update(ctx context.Context, notification domain.Notification) error
	UpdateBatch(ctx context.Context, notifications []domain.Notification) error

	GetByID(ctx context.Context, id uint64) (domain.Notification, error)
	FindByRecipient(ctx context.Context, recipientID int64, offset, limit int) ([]domain.Notification, error)
	// MarkRead 渠道状态 SENT -> READ
	MarkRead(ctx context.Context, id uint64, channel domain.Channel) error
}

type TemplateRepository interface {
	// GetByName 依次查询本地缓存、Redis、数据库
	GetByName(ctx context.Context, name string) (domain.NotificationTemplate, error)
	Save(ctx context.Context, tpl domain.NotificationTemplate) (domain.NotificationTemplate, error)
	// LoadCache 启动时把模板全部加载到缓存
	LoadCache(ctx context.Context) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (domain.User, error)
	// FindByIDs 按入参顺序返回，不存在的用户被忽略
	FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

type PreferenceRepository interface {
	// IsRouteEnabled 用户没有设置过时默认开启
	IsRouteEnabled(ctx context.Context, userID int64, route string) (bool, error)
	SetRouteEnabled(ctx context.Context, pref domain.UserRoutePreference) error
	FindByUser(ctx context.Context, userID int64) ([]domain.UserRoutePreference, error)
}
