package channel

import (
	"context"
	"strings"

	"notification-dispatch/internal/service/provider"
)

type emailChannel struct {
	provider provider.EmailProvider
}

func NewEmailChannel(p provider.EmailProvider) Channel {
	return &emailChannel{provider: p}
}

func (c *emailChannel) Send(ctx context.Context, d Delivery) (bool, error) {
	to := d.Recipient().Email
	if strings.TrimSpace(to) == "" {
		return false, nil
	}
	return c.provider.SendEmail(ctx, to, d.Subject, d.Body)
}
