package ioc

import (
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/event/inapp"
	"notification-dispatch/internal/service/channel"
	"notification-dispatch/internal/service/provider"
	"notification-dispatch/internal/service/provider/circuitbreaker"
	"notification-dispatch/internal/service/provider/console"
	"notification-dispatch/internal/service/provider/email"
	"notification-dispatch/internal/service/provider/metrics"
	"notification-dispatch/internal/service/provider/push"
	"notification-dispatch/internal/service/provider/sequential"
	"notification-dispatch/internal/service/provider/sms"
	"notification-dispatch/internal/service/provider/sms/client"
	"notification-dispatch/internal/service/provider/tracing"
)

const (
	providerTypeConsole  = "console"
	providerTypePostmark = "postmark"
	providerTypeSMTP     = "smtp"
	providerTypeAliyun   = "aliyun"
	providerTypeTencent  = "tencent"
	providerTypeGateway  = "gateway"
)

// ProviderConfig 单个供应商配置，不同类型只读取自己关心的字段
type ProviderConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// email
	From         string `yaml:"from"`
	Tag          string `yaml:"tag"`
	ServerToken  string `yaml:"serverToken"`
	AccountToken string `yaml:"accountToken"`
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`

	// sms
	RegionID     string   `yaml:"regionId"`
	SecretID     string   `yaml:"secretId"`
	SecretKey    string   `yaml:"secretKey"`
	AppID        string   `yaml:"appId"`
	SignName     string   `yaml:"signName"`
	TemplateID   string   `yaml:"templateId"`
	ContentParam string   `yaml:"contentParam"`
	ParamOrder   []string `yaml:"paramOrder"`

	// push
	Topic string `yaml:"topic"`
}

type ProvidersConfig struct {
	Email []ProviderConfig `yaml:"email"`
	SMS   []ProviderConfig `yaml:"sms"`
	Push  []ProviderConfig `yaml:"push"`
}

func InitProvidersConfig() ProvidersConfig {
	var cfg ProvidersConfig
	if err := econf.UnmarshalKey("provider", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func InitPrometheusRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}

func InitProviderCollector(reg prometheus.Registerer) *metrics.Collector {
	return metrics.NewCollector(reg)
}

// InitDispatcher 按配置组装各渠道，没有配置供应商的渠道不注册
func InitDispatcher(
	cfg ProvidersConfig,
	q mq.MQ,
	producer inapp.EventProducer,
	collector *metrics.Collector,
) *channel.Dispatcher {
	channels := map[domain.Channel]channel.Channel{
		domain.ChannelInApp: channel.NewInAppChannel(producer),
	}
	if p := buildProviders(cfg.Email, q, collector); p != nil {
		channels[domain.ChannelEmail] = channel.NewEmailChannel(provider.AsEmail(p))
	}
	if p := buildProviders(cfg.SMS, q, collector); p != nil {
		channels[domain.ChannelSMS] = channel.NewSMSChannel(provider.AsSMS(p))
	}
	if p := buildProviders(cfg.Push, q, collector); p != nil {
		channels[domain.ChannelPush] = channel.NewPushChannel(provider.AsPush(p))
	}
	return channel.NewDispatcher(channels)
}

func InitInAppProducer(q mq.MQ) inapp.EventProducer {
	p, err := inapp.NewEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

// buildProviders 多个供应商按配置顺序依次尝试
func buildProviders(cfgs []ProviderConfig, q mq.MQ, collector *metrics.Collector) provider.Provider {
	if len(cfgs) == 0 {
		return nil
	}
	providers := make([]provider.Provider, 0, len(cfgs))
	for _, c := range cfgs {
		p, err := newProvider(c, q)
		if err != nil {
			panic(fmt.Errorf("初始化供应商 %s 失败: %w", c.Name, err))
		}
		providers = append(providers, decorate(c.Name, p, collector))
	}
	if len(providers) == 1 {
		return providers[0]
	}
	return sequential.NewProvider(providers...)
}

// decorate 顺序为 熔断 -> 追踪 -> 指标 -> 真实供应商
func decorate(name string, p provider.Provider, collector *metrics.Collector) provider.Provider {
	p = metrics.NewProvider(name, p, collector)
	p = tracing.NewProvider(p, name)
	return circuitbreaker.NewProvider(name, p, sre.NewBreaker())
}

func newProvider(c ProviderConfig, q mq.MQ) (provider.Provider, error) {
	switch c.Type {
	case providerTypeConsole:
		return console.NewProvider(), nil
	case providerTypePostmark:
		cli, err := email.NewPostmarkClient(c.ServerToken, c.AccountToken)
		if err != nil {
			return nil, err
		}
		return email.NewPostmarkProvider(cli, c.From, c.Tag), nil
	case providerTypeSMTP:
		return email.NewSMTPProvider(email.NewDialer(c.Host, c.Port, c.Username, c.Password), c.From), nil
	case providerTypeAliyun:
		cli, err := client.NewAliyunSMS(c.RegionID, c.SecretID, c.SecretKey)
		if err != nil {
			return nil, err
		}
		return sms.NewSMSProvider(c.Name, smsConfig(c), cli), nil
	case providerTypeTencent:
		cli, err := client.NewTencentCloudSMS(c.RegionID, c.SecretID, c.SecretKey, c.AppID, c.ParamOrder)
		if err != nil {
			return nil, err
		}
		return sms.NewSMSProvider(c.Name, smsConfig(c), cli), nil
	case providerTypeGateway:
		topic := c.Topic
		if topic == "" {
			topic = push.DefaultTopic
		}
		return push.NewGatewayProvider(q, topic)
	default:
		return nil, fmt.Errorf("未知的供应商类型 %q", c.Type)
	}
}

func smsConfig(c ProviderConfig) sms.Config {
	return sms.Config{
		SignName:     c.SignName,
		TemplateID:   c.TemplateID,
		ContentParam: c.ContentParam,
	}
}
