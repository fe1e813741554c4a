package channel

import (
	"context"
	"strings"

	"notification-dispatch/internal/service/provider"
)

type smsChannel struct {
	provider provider.SMSProvider
}

func NewSMSChannel(p provider.SMSProvider) Channel {
	return &smsChannel{provider: p}
}

func (c *smsChannel) Send(ctx context.Context, d Delivery) (bool, error) {
	to := d.Recipient().PhoneNumber
	if strings.TrimSpace(to) == "" {
		return false, nil
	}
	return c.provider.SendSMS(ctx, to, d.Body)
}
