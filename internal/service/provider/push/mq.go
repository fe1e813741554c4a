package push

import (
	"context"
	"strings"

	"github.com/ecodeclub/mq-api"
	"notification-dispatch/internal/pkg/mqx"
	"notification-dispatch/internal/service/provider"
)

const DefaultTopic = "push_notifications"

var _ provider.Provider = (*GatewayProvider)(nil)

// Event 推送网关消费的消息
type Event struct {
	NotificationID uint64 `json:"notificationId"`
	Route          string `json:"route"`
	DeviceToken    string `json:"deviceToken"`
	Title          string `json:"title"`
	Body           string `json:"body"`
}

// GatewayProvider 把推送交给推送网关，由网关对接 APNs / FCM
type GatewayProvider struct {
	producer *mqx.GeneralProducer[Event]
}

func NewGatewayProvider(q mq.MQ, topic string) (*GatewayProvider, error) {
	if topic == "" {
		topic = DefaultTopic
	}
	producer, err := mqx.NewGeneralProducer[Event](q, topic)
	if err != nil {
		return nil, err
	}
	return &GatewayProvider{producer: producer}, nil
}

func (p *GatewayProvider) Send(ctx context.Context, msg provider.Message) (bool, error) {
	if strings.TrimSpace(msg.To) == "" {
		return false, nil
	}
	err := p.producer.ProduceWithKey(ctx, msg.To, Event{
		NotificationID: msg.NotificationID,
		Route:          msg.Route,
		DeviceToken:    msg.To,
		Title:          msg.Subject,
		Body:           msg.Body,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
