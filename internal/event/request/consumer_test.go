package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	ca "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/pkg/idempotent"
	mqxmocks "notification-dispatch/internal/pkg/mqx/mocks"
	limitmocks "notification-dispatch/internal/pkg/ratelimit/mocks"
	notificationmocks "notification-dispatch/internal/service/notification/mocks"
)

func TestEventConsumer_Consume(t *testing.T) {
	t.Parallel()

	topic := EventName
	newMsg := func(val string) *kafka.Message {
		return &kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: 0, Offset: 1},
			Value:          []byte(val),
		}
	}

	testCases := []struct {
		name    string
		mock    func(consumer *mqxmocks.MockConsumer, svc *notificationmocks.MockCommandService)
		wantErr bool
	}{
		{
			name: "处理成功并提交",
			mock: func(consumer *mqxmocks.MockConsumer, svc *notificationmocks.MockCommandService) {
				msg := newMsg(`{"route":"OrderCreated","channels":["email"],"parameters":{"customerId":1,"orderNumber":"ORD-1"}}`)
				consumer.EXPECT().ReadMessage(gomock.Any()).Return(msg, nil)
				svc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.NotificationRequest) (domain.DispatchSummary, error) {
						if req.Route != "OrderCreated" || req.Channels[0] != domain.ChannelEmail {
							return domain.DispatchSummary{}, errors.New("请求解析错误")
						}
						return domain.DispatchSummary{Route: req.Route, CreatedNotificationIDs: []string{"1"}}, nil
					})
				consumer.EXPECT().CommitMessage(msg).Return(nil, nil)
			},
		},
		{
			name: "格式错误跳过",
			mock: func(consumer *mqxmocks.MockConsumer, _ *notificationmocks.MockCommandService) {
				msg := newMsg(`not json`)
				consumer.EXPECT().ReadMessage(gomock.Any()).Return(msg, nil)
				consumer.EXPECT().CommitMessage(msg).Return(nil, nil)
			},
		},
		{
			name: "路由不存在也提交",
			mock: func(consumer *mqxmocks.MockConsumer, svc *notificationmocks.MockCommandService) {
				msg := newMsg(`{"route":"Unknown"}`)
				consumer.EXPECT().ReadMessage(gomock.Any()).Return(msg, nil)
				svc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(domain.DispatchSummary{}, errs.ErrRouteNotFound)
				consumer.EXPECT().CommitMessage(msg).Return(nil, nil)
			},
		},
		{
			name: "读取超时",
			mock: func(consumer *mqxmocks.MockConsumer, _ *notificationmocks.MockCommandService) {
				consumer.EXPECT().ReadMessage(gomock.Any()).Return(nil, kafka.NewError(kafka.ErrTimedOut, "timeout", false))
			},
		},
		{
			name: "读取失败",
			mock: func(consumer *mqxmocks.MockConsumer, _ *notificationmocks.MockCommandService) {
				consumer.EXPECT().ReadMessage(gomock.Any()).Return(nil, errors.New("mock error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			consumer := mqxmocks.NewMockConsumer(ctrl)
			svc := notificationmocks.NewMockCommandService(ctrl)
			tc.mock(consumer, svc)

			c := newEventConsumer(svc, consumer, "limited", limitmocks.NewMockLimiter(ctrl), time.Minute, time.Millisecond)
			err := c.Consume(t.Context())
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventConsumer_ConsumeDuplicate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	topic := EventName
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: 0, Offset: 1},
		Key:            []byte("req-1"),
		Value:          []byte(`{"route":"Announcement","channels":["inapp"],"parameters":{"message":"hi"}}`),
	}
	consumer := mqxmocks.NewMockConsumer(ctrl)
	svc := notificationmocks.NewMockCommandService(ctrl)
	// 同一个 key 投递两次，只处理一次
	consumer.EXPECT().ReadMessage(gomock.Any()).Return(msg, nil).Times(2)
	consumer.EXPECT().CommitMessage(msg).Return(nil, nil).Times(2)
	svc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(domain.DispatchSummary{Route: "Announcement"}, nil).Times(1)

	c := newEventConsumer(svc, consumer, "limited", limitmocks.NewMockLimiter(ctrl), time.Minute, time.Millisecond).
		WithIdempotency(idempotent.NewLocalService(ca.New(time.Minute, time.Minute), time.Minute))
	assert.NoError(t, c.Consume(t.Context()))
	assert.NoError(t, c.Consume(t.Context()))
}

func TestEventConsumer_WaitUntilRateLimitExpires(t *testing.T) {
	t.Parallel()

	t.Run("没有发生限流", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		limiter := limitmocks.NewMockLimiter(ctrl)
		limiter.EXPECT().LastLimitTime(gomock.Any(), "limited").Return(time.Time{}, nil)

		c := newEventConsumer(nil, mqxmocks.NewMockConsumer(ctrl), "limited", limiter, time.Minute, time.Millisecond)
		assert.NoError(t, c.waitUntilRateLimitExpires(t.Context()))
	})

	t.Run("限流后暂停再恢复", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		limiter := limitmocks.NewMockLimiter(ctrl)
		consumer := mqxmocks.NewMockConsumer(ctrl)

		topic := EventName
		partitions := []kafka.TopicPartition{{Topic: &topic, Partition: 0}}
		gomock.InOrder(
			limiter.EXPECT().LastLimitTime(gomock.Any(), "limited").Return(time.Now(), nil),
			consumer.EXPECT().Assignment().Return(partitions, nil),
			consumer.EXPECT().Pause(partitions).Return(nil),
			consumer.EXPECT().Resume(partitions).Return(nil),
			limiter.EXPECT().LastLimitTime(gomock.Any(), "limited").Return(time.Now().Add(-time.Hour), nil),
		)

		c := newEventConsumer(nil, consumer, "limited", limiter, time.Minute, 10*time.Millisecond)
		assert.NoError(t, c.waitUntilRateLimitExpires(t.Context()))
	})

	t.Run("查询限流状态失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		limiter := limitmocks.NewMockLimiter(ctrl)
		limiter.EXPECT().LastLimitTime(gomock.Any(), "limited").Return(time.Time{}, errors.New("mock error"))

		c := newEventConsumer(nil, mqxmocks.NewMockConsumer(ctrl), "limited", limiter, time.Minute, time.Millisecond)
		assert.Error(t, c.waitUntilRateLimitExpires(t.Context()))
	})
}
