package provider

import (
	"context"

	"notification-dispatch/internal/domain"
)

// Message 交给供应商的一次投递
type Message struct {
	NotificationID uint64
	Route          string
	Channel        domain.Channel
	// To 邮箱、手机号或者设备标识
	To      string
	Subject string
	Body    string
}

// Provider 具体供应商的统一抽象，装饰器都基于它实现
// 返回 false 表示供应商拒绝了本次投递
//
//go:generate mockgen -source=./types.go -destination=./mocks/provider.mock.go -package=providermocks
type Provider interface {
	Send(ctx context.Context, msg Message) (bool, error)
}

type EmailProvider interface {
	SendEmail(ctx context.Context, to, subject, body string) (bool, error)
}

type SMSProvider interface {
	SendSMS(ctx context.Context, to, body string) (bool, error)
}

type PushProvider interface {
	SendPush(ctx context.Context, deviceToken, title, body string) (bool, error)
}
