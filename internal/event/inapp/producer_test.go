package inapp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventProducer_Produce(t *testing.T) {
	t.Parallel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(t.Context(), EventName, 1))
	consumer, err := q.Consumer(EventName, "realtime-hub")
	require.NoError(t, err)

	p, err := NewEventProducer(q)
	require.NoError(t, err)

	evt := Event{NotificationID: 1, UserID: 9, Route: "Announcement", Title: "t", Message: "m"}
	require.NoError(t, p.Produce(t.Context(), evt))

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("9"), msg.Key)

	var got Event
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, evt, got)
}
