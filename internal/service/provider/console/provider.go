package console

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/service/provider"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 输出到日志，开发环境或者没有接入真实供应商时使用
type Provider struct {
	logger *elog.Component
}

func NewProvider() *Provider {
	return &Provider{
		logger: elog.DefaultLogger,
	}
}

func (p *Provider) Send(_ context.Context, msg provider.Message) (bool, error) {
	p.logger.Info("发送通知",
		elog.Any("notificationId", msg.NotificationID),
		elog.String("channel", msg.Channel.String()),
		elog.String("to", msg.To),
		elog.String("subject", msg.Subject),
		elog.String("body", msg.Body),
	)
	return true, nil
}
