package channel

import (
	"context"

	"notification-dispatch/internal/event/inapp"
)

// inAppChannel 站内信只负责发出实时事件，事件被接收即认为投递成功
type inAppChannel struct {
	producer inapp.EventProducer
}

func NewInAppChannel(producer inapp.EventProducer) Channel {
	return &inAppChannel{producer: producer}
}

func (c *inAppChannel) Send(ctx context.Context, d Delivery) (bool, error) {
	err := c.producer.Produce(ctx, inapp.Event{
		NotificationID: d.Notification.ID,
		UserID:         d.Recipient().ID,
		Route:          d.Notification.Route,
		Title:          d.Notification.Title,
		Message:        d.Body,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
