package mqx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestGeneralProducer_Produce(t *testing.T) {
	t.Parallel()

	q := memory.NewMQ()
	const topic = "mqx_test"
	require.NoError(t, q.CreateTopic(t.Context(), topic, 1))

	consumer, err := q.Consumer(topic, "g1")
	require.NoError(t, err)

	producer, err := NewGeneralProducer[testEvent](q, topic)
	require.NoError(t, err)
	assert.Equal(t, topic, producer.Topic())

	require.NoError(t, producer.ProduceWithKey(t.Context(), "1", testEvent{ID: 1, Name: "a"}))

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), msg.Key)

	var got testEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, testEvent{ID: 1, Name: "a"}, got)
}
