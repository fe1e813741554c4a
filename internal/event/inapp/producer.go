package inapp

import (
	"context"
	"strconv"

	"github.com/ecodeclub/mq-api"
	"notification-dispatch/internal/pkg/mqx"
)

type producer struct {
	p *mqx.GeneralProducer[Event]
}

// Produce 按用户分区，保证同一用户的站内信有序
func (p *producer) Produce(ctx context.Context, evt Event) error {
	return p.p.ProduceWithKey(ctx, strconv.FormatInt(evt.UserID, 10), evt)
}

func NewEventProducer(q mq.MQ) (EventProducer, error) {
	return NewEventProducerWithTopic(q, EventName)
}

func NewEventProducerWithTopic(q mq.MQ, topic string) (EventProducer, error) {
	p, err := mqx.NewGeneralProducer[Event](q, topic)
	if err != nil {
		return nil, err
	}
	return &producer{p: p}, nil
}
