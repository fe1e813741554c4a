package sender

import (
	"context"

	"notification-dispatch/internal/domain"
)

// SendResult 单条通知的发送结果，批量发送时互不影响
type SendResult struct {
	Notification domain.Notification
	Err          error
}

// NotificationSender 通知发送接口
//
//go:generate mockgen -source=./types.go -destination=./mocks/sender.mock.go -package=sendermocks NotificationSender
type NotificationSender interface {
	// Send 单条发送通知，返回渠道状态更新后的通知
	Send(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	// BatchSend 并发发送一批通知，结果顺序与入参一致
	BatchSend(ctx context.Context, notifications []domain.Notification) []SendResult
}
