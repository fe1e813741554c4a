package notification

import (
	"context"

	"notification-dispatch/internal/domain"
)

// CommandService 按路由生成并发送通知
//
//go:generate mockgen -source=./types.go -destination=./mocks/notification.mock.go -package=notificationmocks
type CommandService interface {
	// Process 结构性错误（路由、模板、参数）在持久化之前返回，渠道失败只记录在渠道状态里
	Process(ctx context.Context, req domain.NotificationRequest) (domain.DispatchSummary, error)
}

type QueryService interface {
	GetByID(ctx context.Context, id uint64) (domain.Notification, error)
	ListByRecipient(ctx context.Context, userID int64, offset, limit int) ([]domain.Notification, error)
	// MarkRead 把用户自己通知里已投递的渠道标记为已读
	MarkRead(ctx context.Context, id uint64, userID int64) error
}
