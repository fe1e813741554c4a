package sms

import (
	"context"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/service/provider"
	"notification-dispatch/internal/service/provider/sms/client"
)

var _ provider.Provider = (*smsProvider)(nil)

// Config 云厂商短信需要审核过的模板，正文整体放进 ContentParam 对应的参数里
type Config struct {
	SignName     string `yaml:"signName"`
	TemplateID   string `yaml:"templateId"`
	ContentParam string `yaml:"contentParam"`
}

// smsProvider SMS供应商
type smsProvider struct {
	name   string
	cfg    Config
	client client.Client
	logger *elog.Component
}

func (p *smsProvider) Send(ctx context.Context, msg provider.Message) (bool, error) {
	if strings.TrimSpace(msg.To) == "" {
		return false, nil
	}
	resp, err := p.client.Send(ctx, client.SendReq{
		PhoneNumbers:  []string{msg.To},
		SignName:      p.cfg.SignName,
		TemplateID:    p.cfg.TemplateID,
		TemplateParam: map[string]string{p.cfg.ContentParam: msg.Body},
	})
	if err != nil {
		return false, err
	}

	if len(resp.PhoneNumbers) == 0 {
		return false, nil
	}
	for phone, status := range resp.PhoneNumbers {
		if !strings.EqualFold(status.Code, client.OK) {
			p.logger.Warn("短信供应商拒绝投递",
				elog.String("provider", p.name),
				elog.String("phone", phone),
				elog.String("code", status.Code),
				elog.String("message", status.Message),
			)
			return false, nil
		}
	}
	return true, nil
}

// NewSMSProvider SMS供应商
func NewSMSProvider(name string, cfg Config, c client.Client) provider.Provider {
	if cfg.ContentParam == "" {
		cfg.ContentParam = "content"
	}
	return &smsProvider{
		name:   name,
		cfg:    cfg,
		client: c,
		logger: elog.DefaultLogger,
	}
}
