package channel

import (
	"context"
	"strings"

	"notification-dispatch/internal/service/provider"
)

type pushChannel struct {
	provider provider.PushProvider
}

func NewPushChannel(p provider.PushProvider) Channel {
	return &pushChannel{provider: p}
}

// Send 推送标题使用通知标题
func (c *pushChannel) Send(ctx context.Context, d Delivery) (bool, error) {
	token := d.Recipient().DeviceToken
	if strings.TrimSpace(token) == "" {
		return false, nil
	}
	return c.provider.SendPush(ctx, token, d.Notification.Title, d.Body)
}
