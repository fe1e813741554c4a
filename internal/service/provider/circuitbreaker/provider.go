package circuitbreaker

import (
	"context"

	"github.com/go-kratos/aegis/circuitbreaker"
	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/service/provider"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 熔断打开时直接返回 false，不再调用底层供应商
type Provider struct {
	provider provider.Provider
	breaker  circuitbreaker.CircuitBreaker
	name     string
	logger   *elog.Component
}

func (p *Provider) Send(ctx context.Context, msg provider.Message) (bool, error) {
	if err := p.breaker.Allow(); err != nil {
		p.breaker.MarkFailed()
		p.logger.Warn("供应商触发熔断",
			elog.String("provider", p.name),
			elog.String("channel", msg.Channel.String()),
		)
		return false, nil
	}
	ok, err := p.provider.Send(ctx, msg)
	if err != nil {
		// 只有调用出错才视为供应商故障，返回 false 属于业务拒绝
		p.breaker.MarkFailed()
		return ok, err
	}
	p.breaker.MarkSuccess()
	return ok, nil
}

func NewProvider(name string, p provider.Provider, breaker circuitbreaker.CircuitBreaker) *Provider {
	return &Provider{
		provider: p,
		breaker:  breaker,
		name:     name,
		logger:   elog.DefaultLogger,
	}
}
