package email

import (
	"context"
	"strings"

	"gopkg.in/gomail.v2"
	"notification-dispatch/internal/service/provider"
)

var _ provider.Provider = (*SMTPProvider)(nil)

// Dialer gomail.Dialer 的子集
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPProvider 自建邮件服务器
type SMTPProvider struct {
	dialer Dialer
	from   string
}

func NewSMTPProvider(dialer Dialer, from string) *SMTPProvider {
	return &SMTPProvider{dialer: dialer, from: from}
}

func NewDialer(host string, port int, username, password string) *gomail.Dialer {
	return gomail.NewDialer(host, port, username, password)
}

func (p *SMTPProvider) Send(ctx context.Context, msg provider.Message) (bool, error) {
	if strings.TrimSpace(msg.To) == "" {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if err := p.dialer.DialAndSend(m); err != nil {
		return false, err
	}
	return true, nil
}
