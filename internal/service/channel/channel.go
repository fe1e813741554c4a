package channel

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
)

// Dispatcher 渠道分发器，按渠道找到具体的 Channel
type Dispatcher struct {
	channels map[domain.Channel]Channel
}

// Send 合法但没有配置的渠道一律失败，不认识的渠道返回 ErrChannelNotSupported
func (d *Dispatcher) Send(ctx context.Context, c domain.Channel, delivery Delivery) (bool, error) {
	ch, err := d.channelOf(c)
	if err != nil {
		return false, err
	}
	return ch.Send(ctx, delivery)
}

// Supports 检查渠道是否是系统认识的渠道
func (d *Dispatcher) Supports(c domain.Channel) error {
	_, err := d.channelOf(c)
	return err
}

func (d *Dispatcher) channelOf(c domain.Channel) (Channel, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrChannelNotSupported, c)
	}
	ch, ok := d.channels[c]
	if !ok || ch == nil {
		return unconfigured{channel: c, logger: elog.DefaultLogger}, nil
	}
	return ch, nil
}

// NewDispatcher 创建渠道分发器
func NewDispatcher(channels map[domain.Channel]Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
	}
}

// unconfigured 没有配置供应商的渠道
type unconfigured struct {
	channel domain.Channel
	logger  *elog.Component
}

func (u unconfigured) Send(_ context.Context, d Delivery) (bool, error) {
	u.logger.Warn("渠道未配置供应商",
		elog.String("channel", u.channel.String()),
		elog.Any("notificationId", d.Notification.ID),
	)
	return false, nil
}
