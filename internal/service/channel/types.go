package channel

import (
	"context"

	"notification-dispatch/internal/domain"
)

// Delivery 一次渠道投递需要的全部内容，正文已经按渠道渲染好了
type Delivery struct {
	Notification domain.Notification
	Subject      string
	Body         string
}

func (d Delivery) Recipient() domain.User {
	if d.Notification.Recipient == nil {
		return domain.User{}
	}
	return *d.Notification.Recipient
}

//go:generate mockgen -source=./types.go -destination=./mocks/channel.mock.go -package=channelmocks Channel
type Channel interface {
	// Send 返回 false 表示投递失败，联系方式缺失也属于投递失败
	Send(ctx context.Context, d Delivery) (bool, error)
}
