package push

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/service/provider"
)

func TestGatewayProvider_Send(t *testing.T) {
	t.Parallel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(t.Context(), DefaultTopic, 1))
	consumer, err := q.Consumer(DefaultTopic, "push-gateway")
	require.NoError(t, err)

	p, err := NewGatewayProvider(q, "")
	require.NoError(t, err)

	ok, err := p.Send(t.Context(), provider.Message{
		NotificationID: 7,
		Route:          "OrderCreated",
		Channel:        domain.ChannelPush,
		To:             "device-1",
		Subject:        "title",
		Body:           "body",
	})
	require.NoError(t, err)
	assert.True(t, ok)

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)

	var evt Event
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, Event{
		NotificationID: 7,
		Route:          "OrderCreated",
		DeviceToken:    "device-1",
		Title:          "title",
		Body:           "body",
	}, evt)
}

func TestGatewayProvider_SendWithoutDeviceToken(t *testing.T) {
	t.Parallel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(t.Context(), "push_empty", 1))
	p, err := NewGatewayProvider(q, "push_empty")
	require.NoError(t, err)

	ok, err := p.Send(t.Context(), provider.Message{Channel: domain.ChannelPush})
	require.NoError(t, err)
	assert.False(t, ok)
}
