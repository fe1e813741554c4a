package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

// GeneralProducer 把事件序列化成 JSON 投到固定 topic
type GeneralProducer[T any] struct {
	producer mq.Producer
	topic    string
}

func NewGeneralProducer[T any](q mq.MQ, topic string) (*GeneralProducer[T], error) {
	producer, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建 %s 生产者失败: %w", topic, err)
	}
	return &GeneralProducer[T]{producer: producer, topic: topic}, nil
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	return p.ProduceWithKey(ctx, "", evt)
}

func (p *GeneralProducer[T]) ProduceWithKey(ctx context.Context, key string, evt T) error {
	val, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := &mq.Message{Topic: p.topic, Value: val}
	if key != "" {
		msg.Key = []byte(key)
	}
	_, err = p.producer.Produce(ctx, msg)
	return err
}

func (p *GeneralProducer[T]) Topic() string {
	return p.topic
}
