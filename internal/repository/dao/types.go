package dao

import (
	"context"
)

//go:generate mockgen -source=./types.go -destination=./mocks/dao.mock.go -package=daomocks
type NotificationDAO interface {
	// BatchCreate 在同一个事务里写入通知以及各渠道的初始状态
	BatchCreate(ctx context.Context, notifications []Notification, states []NotificationChannelState) error
	// BatchUpdateStates 批量推进渠道状态，只有仍处于 PENDING 的记录会被更新
	BatchUpdateStates(ctx context.Context, states []NotificationChannelState) error
	// CASStatus 渠道状态从 from 变为 to，状态不符时返回 errs.ErrInvalidStatusTransition
	CASStatus(ctx context.Context, notificationID uint64, channel, from, to string) error

	// GetByID 根据ID查询通知
	GetByID(ctx context.Context, id uint64) (Notification, error)
	// FindByRecipient 按创建时间倒序分页查询某个用户的通知
	FindByRecipient(ctx context.Context, recipientID int64, offset, limit int) ([]Notification, error)
	// FindStates 按通知ID分组返回渠道状态
	FindStates(ctx context.Context, notificationIDs []uint64) (map[uint64][]NotificationChannelState, error)
}

type TemplateDAO interface {
	GetByName(ctx context.Context, name string) (Template, error)
	// Upsert 按 name 新建或覆盖模板
	Upsert(ctx context.Context, tpl Template) (Template, error)
	FindAll(ctx context.Context) ([]Template, error)
}

type UserDAO interface {
	FindByID(ctx context.Context, id int64) (User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]User, error)
	FindAll(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u User) (User, error)
}

type PreferenceDAO interface {
	// Find 没有记录时 found 为 false
	Find(ctx context.Context, userID int64, route string) (pref UserRoutePreference, found bool, err error)
	FindByUser(ctx context.Context, userID int64) ([]UserRoutePreference, error)
	Upsert(ctx context.Context, pref UserRoutePreference) error
}
