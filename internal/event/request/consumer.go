package request

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/pkg/idempotent"
	"notification-dispatch/internal/pkg/mqx"
	"notification-dispatch/internal/pkg/ratelimit"
	notificationsvc "notification-dispatch/internal/service/notification"
)

const (
	defaultPollInterval = time.Second
	defaultReadTimeout  = time.Second
)

// EventConsumer 从 kafka 读取通知请求，交给 CommandService 处理
type EventConsumer struct {
	srv      notificationsvc.CommandService
	consumer mqx.Consumer

	limiter          ratelimit.Limiter
	limitedKey       string
	lookbackDuration time.Duration
	sleepDuration    time.Duration

	// idem 为 nil 时不去重
	idem idempotent.Service

	logger *elog.Component
}

func (c *EventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			// 限流检测
			if err := c.waitUntilRateLimitExpires(ctx); err != nil {
				c.logger.Error("消费者限流", elog.FieldErr(err))
			}

			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费通知请求失败", elog.FieldErr(er))
			}
		}
	}()
}

// Consume 格式错误和结构性错误重试也不会成功，记录日志后提交
func (c *EventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.ReadMessage(defaultReadTimeout)
	if err != nil {
		var kErr kafka.Error
		if errors.As(err, &kErr) && kErr.Code() == kafka.ErrTimedOut {
			return nil
		}
		return err
	}

	if c.isDuplicate(ctx, msg) {
		c.logger.Info("重复的通知请求，跳过", elog.String("key", string(msg.Key)))
		_, err = c.consumer.CommitMessage(msg)
		return err
	}

	var req domain.NotificationRequest
	if err = json.Unmarshal(msg.Value, &req); err != nil {
		c.logger.Warn("通知请求格式错误，跳过",
			elog.FieldErr(err),
			elog.String("value", string(msg.Value)),
		)
	} else {
		summary, er := c.srv.Process(ctx, req)
		if er != nil {
			c.logger.Error("处理通知请求失败",
				elog.FieldErr(er),
				elog.String("route", req.Route),
			)
		} else {
			c.logger.Info("处理通知请求成功",
				elog.String("route", summary.Route),
				elog.Int("notifications", len(summary.CreatedNotificationIDs)),
			)
		}
	}

	_, err = c.consumer.CommitMessage(msg)
	return err
}

// WithIdempotency 生产者设置的消息 key 作为幂等键
func (c *EventConsumer) WithIdempotency(svc idempotent.Service) *EventConsumer {
	c.idem = svc
	return c
}

// isDuplicate 没有 key 或者检查失败都按新请求处理
func (c *EventConsumer) isDuplicate(ctx context.Context, msg *kafka.Message) bool {
	if c.idem == nil || len(msg.Key) == 0 {
		return false
	}
	exists, err := c.idem.Exists(ctx, EventName+":"+string(msg.Key))
	if err != nil {
		c.logger.Warn("幂等检查失败", elog.FieldErr(err), elog.String("key", string(msg.Key)))
		return false
	}
	return exists
}

func (c *EventConsumer) waitUntilRateLimitExpires(ctx context.Context) error {
	for {
		// 是否发送过限流
		lastLimitTime, err1 := c.limiter.LastLimitTime(ctx, c.limitedKey)
		if err1 != nil {
			c.logger.Warn("获取限流状态失败",
				elog.FieldErr(err1),
				elog.Any("limitedKey", c.limitedKey))
			return err1
		}

		// 未发生限流，或者最近一次发生限流的时间不在预期时间段内
		if lastLimitTime.IsZero() || time.Since(lastLimitTime) > c.lookbackDuration {
			return nil
		}

		// 获取分配的分区
		partitions, err2 := c.consumer.Assignment()
		if err2 != nil {
			c.logger.Warn("获取消费者已分配的分区失败",
				elog.FieldErr(err2),
				elog.Any("partitions", partitions))
			return err2
		}

		// 发生过限流，暂停分区消费，睡眠一段时间，醒了继续判断是否被限流
		err3 := c.consumer.Pause(partitions)
		if err3 != nil {
			c.logger.Warn("暂停分区失败",
				elog.FieldErr(err3),
				elog.Any("partitions", partitions))
			return err3
		}

		c.sleepAndPoll(ctx, c.sleepDuration)

		// 恢复分区消费
		err4 := c.consumer.Resume(partitions)
		if err4 != nil {
			c.logger.Warn("恢复分区失败",
				elog.FieldErr(err4),
				elog.Any("partitions", partitions))
			return err4
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// sleepAndPoll 暂停期间继续 Poll，避免被踢出消费者组
func (c *EventConsumer) sleepAndPoll(ctx context.Context, subTime time.Duration) {
	const defaultPollDuration = 100
	ticker := time.NewTicker(defaultPollInterval)
	defer ticker.Stop()
	timer := time.NewTimer(subTime)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			return
		case <-ticker.C:
			c.consumer.Poll(defaultPollDuration)
		}
	}
}

func NewEventConsumer(
	srv notificationsvc.CommandService,
	consumer *kafka.Consumer,
	limitedKey string,
	limiter ratelimit.Limiter,
	lookbackDuration time.Duration,
	sleepDuration time.Duration,
) (*EventConsumer, error) {
	return NewEventConsumerWithTopic(srv, consumer, limitedKey, limiter, lookbackDuration, sleepDuration, EventName)
}

func NewEventConsumerWithTopic(
	srv notificationsvc.CommandService,
	consumer *kafka.Consumer,
	limitedKey string,
	limiter ratelimit.Limiter,
	lookbackDuration time.Duration,
	sleepDuration time.Duration,
	topic string,
) (*EventConsumer, error) {
	err := consumer.SubscribeTopics([]string{topic}, nil)
	if err != nil {
		return nil, err
	}
	return newEventConsumer(srv, consumer, limitedKey, limiter, lookbackDuration, sleepDuration), nil
}

func newEventConsumer(
	srv notificationsvc.CommandService,
	consumer mqx.Consumer,
	limitedKey string,
	limiter ratelimit.Limiter,
	lookbackDuration time.Duration,
	sleepDuration time.Duration,
) *EventConsumer {
	return &EventConsumer{
		srv:              srv,
		consumer:         consumer,
		limitedKey:       limitedKey,
		limiter:          limiter,
		lookbackDuration: lookbackDuration,
		sleepDuration:    sleepDuration,
		logger:           elog.DefaultLogger,
	}
}
