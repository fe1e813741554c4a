package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/mrz1836/postmark"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/service/provider"
)

var _ provider.Provider = (*PostmarkProvider)(nil)

// PostmarkClient *postmark.Client 的子集
type PostmarkClient interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkProvider 通过 Postmark 事务邮件接口发送
type PostmarkProvider struct {
	client PostmarkClient
	from   string
	tag    string
	logger *elog.Component
}

func NewPostmarkProvider(client PostmarkClient, from, tag string) *PostmarkProvider {
	return &PostmarkProvider{
		client: client,
		from:   from,
		tag:    tag,
		logger: elog.DefaultLogger,
	}
}

// NewPostmarkClient serverToken 和 accountToken 都必须配置
func NewPostmarkClient(serverToken, accountToken string) (*postmark.Client, error) {
	if serverToken == "" || accountToken == "" {
		return nil, fmt.Errorf("%w: postmark token 未配置", errs.ErrProviderNotConfigured)
	}
	return postmark.NewClient(serverToken, accountToken), nil
}

func (p *PostmarkProvider) Send(ctx context.Context, msg provider.Message) (bool, error) {
	if strings.TrimSpace(msg.To) == "" {
		return false, nil
	}
	resp, err := p.client.SendEmail(ctx, postmark.Email{
		From:     p.from,
		To:       msg.To,
		Subject:  msg.Subject,
		Tag:      p.tag,
		TextBody: msg.Body,
	})
	if err != nil {
		return false, fmt.Errorf("postmark 发送失败: %w", err)
	}
	if resp.ErrorCode > 0 {
		p.logger.Warn("postmark 拒绝投递",
			elog.Any("errorCode", resp.ErrorCode),
			elog.String("message", resp.Message),
		)
		return false, nil
	}
	return true, nil
}
