package ioc

import (
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
	"notification-dispatch/internal/event/request"
	"notification-dispatch/internal/pkg/idempotent"
	"notification-dispatch/internal/pkg/ratelimit"
	notificationsvc "notification-dispatch/internal/service/notification"
)

type KafkaConfig struct {
	Addr    string `yaml:"addr"`
	GroupID string `yaml:"groupId"`
	Topic   string `yaml:"topic"`

	// LimitedRoute HTTP 入口这个路由被限流时，消费者暂停一段时间
	LimitedRoute string        `yaml:"limitedRoute"`
	Lookback     time.Duration `yaml:"lookback"`
	Sleep        time.Duration `yaml:"sleep"`

	// IdempotencyExpiry 消息 key 的去重有效期
	IdempotencyExpiry time.Duration `yaml:"idempotencyExpiry"`
}

func InitRequestEventConsumer(
	srv notificationsvc.CommandService,
	limiter ratelimit.Limiter,
	cmd redis.Cmdable,
) *request.EventConsumer {
	var cfg KafkaConfig
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	if cfg.Topic == "" {
		cfg.Topic = request.EventName
	}
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.Addr,
		"auto.offset.reset":  "earliest",
		"group.id":           cfg.GroupID,
		"enable.auto.commit": "false",
	})
	if err != nil {
		panic(err)
	}
	c, err := request.NewEventConsumerWithTopic(srv, consumer, ratelimit.RouteKey(cfg.LimitedRoute), limiter, cfg.Lookback, cfg.Sleep, cfg.Topic)
	if err != nil {
		panic(err)
	}
	if cfg.IdempotencyExpiry > 0 {
		c.WithIdempotency(idempotent.NewRedisService(cmd, cfg.IdempotencyExpiry))
	}
	return c
}
