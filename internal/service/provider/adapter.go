package provider

import (
	"context"

	"notification-dispatch/internal/domain"
)

var (
	_ EmailProvider = (*adapter)(nil)
	_ SMSProvider   = (*adapter)(nil)
	_ PushProvider  = (*adapter)(nil)
)

// adapter 把 Provider 适配成各个渠道的发送接口
type adapter struct {
	p Provider
}

func AsEmail(p Provider) EmailProvider {
	return &adapter{p: p}
}

func AsSMS(p Provider) SMSProvider {
	return &adapter{p: p}
}

func AsPush(p Provider) PushProvider {
	return &adapter{p: p}
}

func (a *adapter) SendEmail(ctx context.Context, to, subject, body string) (bool, error) {
	return a.p.Send(ctx, a.message(ctx, domain.ChannelEmail, to, subject, body))
}

func (a *adapter) SendSMS(ctx context.Context, to, body string) (bool, error) {
	return a.p.Send(ctx, a.message(ctx, domain.ChannelSMS, to, "", body))
}

func (a *adapter) SendPush(ctx context.Context, deviceToken, title, body string) (bool, error) {
	return a.p.Send(ctx, a.message(ctx, domain.ChannelPush, deviceToken, title, body))
}

func (a *adapter) message(ctx context.Context, c domain.Channel, to, subject, body string) Message {
	msg := Message{
		Channel: c,
		To:      to,
		Subject: subject,
		Body:    body,
	}
	if meta, ok := MetaFromContext(ctx); ok {
		msg.NotificationID = meta.NotificationID
		msg.Route = meta.Route
	}
	return msg
}
