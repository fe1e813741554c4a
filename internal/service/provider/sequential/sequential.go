package sequential

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/service/provider"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 按顺序尝试同一渠道的多个供应商，第一个成功即返回
type Provider struct {
	providers []provider.Provider
	logger    *elog.Component
}

func NewProvider(providers ...provider.Provider) *Provider {
	return &Provider{
		providers: providers,
		logger:    elog.DefaultLogger,
	}
}

func (p *Provider) Send(ctx context.Context, msg provider.Message) (bool, error) {
	if len(p.providers) == 0 {
		return false, fmt.Errorf("%w: channel=%s", errs.ErrProviderNotConfigured, msg.Channel)
	}
	var result *multierror.Error
	for idx, pr := range p.providers {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		ok, err := pr.Send(ctx, msg)
		if err == nil && ok {
			return true, nil
		}
		if err != nil {
			result = multierror.Append(result, err)
		}
		p.logger.Warn("供应商发送失败，尝试下一个",
			elog.Int("index", idx),
			elog.String("channel", msg.Channel.String()),
			elog.FieldErr(err),
		)
	}
	// 所有供应商都只是返回 false 时不算错误
	return false, result.ErrorOrNil()
}
