package ioc

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"notification-dispatch/internal/event/inapp"
	"notification-dispatch/internal/service/provider/push"
)

// InitMQ 站内信和推送网关共用的进程内消息队列
func InitMQ() mq.MQ {
	type Topic struct {
		Name       string
		Partitions int
	}
	topics := []Topic{
		{Name: inapp.EventName, Partitions: 1},
		{Name: push.DefaultTopic, Partitions: 1},
	}
	q := memory.NewMQ()
	for _, t := range topics {
		if err := q.CreateTopic(context.Background(), t.Name, t.Partitions); err != nil {
			panic(err)
		}
	}
	return q
}
