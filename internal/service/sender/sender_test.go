package sender

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/pool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/pkg/render"
	repomocks "notification-dispatch/internal/repository/mocks"
	"notification-dispatch/internal/service/channel"
	preferencemocks "notification-dispatch/internal/service/preference/mocks"
	"notification-dispatch/internal/service/provider"
	providermocks "notification-dispatch/internal/service/provider/mocks"
)

type providers struct {
	email *providermocks.MockEmailProvider
	sms   *providermocks.MockSMSProvider
	push  *providermocks.MockPushProvider
}

func newDispatcher(ctrl *gomock.Controller) (*channel.Dispatcher, providers) {
	ps := providers{
		email: providermocks.NewMockEmailProvider(ctrl),
		sms:   providermocks.NewMockSMSProvider(ctrl),
		push:  providermocks.NewMockPushProvider(ctrl),
	}
	return channel.NewDispatcher(map[domain.Channel]channel.Channel{
		domain.ChannelEmail: channel.NewEmailChannel(ps.email),
		domain.ChannelSMS:   channel.NewSMSChannel(ps.sms),
		domain.ChannelPush:  channel.NewPushChannel(ps.push),
	}), ps
}

func newTaskPool(t *testing.T) pool.TaskPool {
	p, err := pool.NewOnDemandBlockTaskPool(4, 16)
	require.NoError(t, err)
	require.NoError(t, p.Start())
	t.Cleanup(func() {
		_, _ = p.Shutdown()
	})
	return p
}

func newNotification(u domain.User, channels ...domain.Channel) domain.Notification {
	return domain.Notification{
		ID:                    1001,
		Title:                 "下单成功",
		Message:               "Hello Ann",
		Route:                 "OrderCreated",
		CreatedAt:             time.UnixMilli(1700000000000),
		Recipient:             &u,
		DeliveryChannelsState: domain.NewPendingStates(channels, time.UnixMilli(1700000000000)),
	}
}

func statuses(n domain.Notification) map[domain.Channel]domain.DeliveryStatus {
	res := make(map[domain.Channel]domain.DeliveryStatus, len(n.DeliveryChannelsState))
	for _, st := range n.DeliveryChannelsState {
		res[st.Channel] = st.Status
	}
	return res
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	fullUser := domain.User{ID: 1, Name: "Ann", Email: "ann@example.com", PhoneNumber: "13800138000", DeviceToken: "device-1"}

	testCases := []struct {
		name         string
		notification domain.Notification
		mock         func(ps providers, repo *repomocks.MockNotificationRepository, pref *preferencemocks.MockService)
		wantStatus   map[domain.Channel]domain.DeliveryStatus
		wantErr      error
	}{
		{
			name: "所有渠道发送成功",
			notification: newNotification(fullUser,
				domain.ChannelEmail, domain.ChannelSMS, domain.ChannelPush),
			mock: func(ps providers, repo *repomocks.MockNotificationRepository, pref *preferencemocks.MockService) {
				pref.EXPECT().IsRouteEnabled(gomock.Any(), int64(1), "OrderCreated").Return(true, nil)
				ps.email.EXPECT().SendEmail(gomock.Any(), "ann@example.com", "下单成功", "Hello Ann").Return(true, nil)
				ps.sms.EXPECT().SendSMS(gomock.Any(), "13800138000", "Hello Ann").Return(true, nil)
				ps.push.EXPECT().SendPush(gomock.Any(), "device-1", "下单成功", "Hello Ann").Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: map[domain.Channel]domain.DeliveryStatus{
				domain.ChannelEmail: domain.DeliveryStatusSent,
				domain.ChannelSMS:   domain.DeliveryStatusSent,
				domain.ChannelPush:  domain.DeliveryStatusSent,
			},
		},
		{
			name:         "用户关闭路由全部跳过",
			notification: newNotification(fullUser, domain.ChannelEmail, domain.ChannelPush),
			mock: func(_ providers, repo *repomocks.MockNotificationRepository, pref *preferencemocks.MockService) {
				pref.EXPECT().IsRouteEnabled(gomock.Any(), int64(1), "OrderCreated").Return(false, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: map[domain.Channel]domain.DeliveryStatus{
				domain.ChannelEmail: domain.DeliveryStatusSkipped,
				domain.ChannelPush:  domain.DeliveryStatusSkipped,
			},
		},
		{
			name:         "没有手机号短信失败，邮件不受影响",
			notification: newNotification(domain.User{ID: 1, Email: "ann@example.com"}, domain.ChannelEmail, domain.ChannelSMS),
			mock: func(ps providers, repo *repomocks.MockNotificationRepository, pref *preferencemocks.MockService) {
				pref.EXPECT().IsRouteEnabled(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				ps.email.EXPECT().SendEmail(gomock.Any(), "ann@example.com", gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: map[domain.Channel]domain.DeliveryStatus{
				domain.ChannelEmail: domain.DeliveryStatusSent,
				domain.ChannelSMS:   domain.DeliveryStatusFailed,
			},
		},
		{
			name:         "供应商返回错误或panic只影响自己的渠道",
			notification: newNotification(fullUser, domain.ChannelEmail, domain.ChannelSMS, domain.ChannelPush),
			mock: func(ps providers, repo *repomocks.MockNotificationRepository, pref *preferencemocks.MockService) {
				pref.EXPECT().IsRouteEnabled(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				ps.email.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("mock error"))
				ps.sms.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(context.Context, string, string) (bool, error) {
						panic("boom")
					})
				ps.push.EXPECT().SendPush(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: map[domain.Channel]domain.DeliveryStatus{
				domain.ChannelEmail: domain.DeliveryStatusFailed,
				domain.ChannelSMS:   domain.DeliveryStatusFailed,
				domain.ChannelPush:  domain.DeliveryStatusSent,
			},
		},
		{
			name:         "供应商返回false",
			notification: newNotification(fullUser, domain.ChannelPush),
			mock: func(ps providers, repo *repomocks.MockNotificationRepository, pref *preferencemocks.MockService) {
				pref.EXPECT().IsRouteEnabled(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				ps.push.EXPECT().SendPush(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: map[domain.Channel]domain.DeliveryStatus{
				domain.ChannelPush: domain.DeliveryStatusFailed,
			},
		},
		{
			name: "渠道模板按渲染数据渲染",
			notification: func() domain.Notification {
				n := newNotification(fullUser, domain.ChannelSMS, domain.ChannelEmail)
				n.Template = &domain.NotificationTemplate{
					Name:                  "order-created",
					CommonContentTemplate: "Hello {{CustomerName}}",
					ChannelOverrides:      map[domain.Channel]string{domain.ChannelSMS: "订单 {{OrderNumber}} 已创建"},
				}
				n.RenderData = map[string]any{"CustomerName": "Ann", "OrderNumber": "ORD-1"}
				return n
			}(),
			mock: func(ps providers, repo *repomocks.MockNotificationRepository, pref *preferencemocks.MockService) {
				pref.EXPECT().IsRouteEnabled(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				ps.sms.EXPECT().SendSMS(gomock.Any(), "13800138000", "订单 ORD-1 已创建").Return(true, nil)
				ps.email.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), "Hello Ann").Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: map[domain.Channel]domain.DeliveryStatus{
				domain.ChannelSMS:   domain.DeliveryStatusSent,
				domain.ChannelEmail: domain.DeliveryStatusSent,
			},
		},
		{
			name:         "没有配置的渠道失败",
			notification: newNotification(fullUser, domain.ChannelInApp),
			mock: func(_ providers, repo *repomocks.MockNotificationRepository, pref *preferencemocks.MockService) {
				pref.EXPECT().IsRouteEnabled(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: map[domain.Channel]domain.DeliveryStatus{
				domain.ChannelInApp: domain.DeliveryStatusFailed,
			},
		},
		{
			name: "校验失败不调用任何依赖",
			notification: func() domain.Notification {
				n := newNotification(fullUser, domain.ChannelEmail)
				n.Title = ""
				return n
			}(),
			mock:    func(providers, *repomocks.MockNotificationRepository, *preferencemocks.MockService) {},
			wantErr: errs.ErrValidationFailure,
		},
		{
			name:         "不支持的渠道",
			notification: newNotification(fullUser, domain.ChannelEmail, domain.Channel("FAX")),
			mock:         func(providers, *repomocks.MockNotificationRepository, *preferencemocks.MockService) {},
			wantErr:      errs.ErrChannelNotSupported,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dispatcher, ps := newDispatcher(ctrl)
			repo := repomocks.NewMockNotificationRepository(ctrl)
			pref := preferencemocks.NewMockService(ctrl)
			tc.mock(ps, repo, pref)

			s := NewSender(repo, pref, dispatcher, render.NewHandlebarsRenderer(), newTaskPool(t))
			updated, err := s.Send(t.Context(), tc.notification)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, statuses(updated))
			// 原始通知不被修改
			for _, st := range tc.notification.DeliveryChannelsState {
				assert.Equal(t, domain.DeliveryStatusPending, st.Status)
			}
		})
	}
}

func TestSender_SendWithoutPreferenceService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher, ps := newDispatcher(ctrl)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	ps.email.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	s := NewSender(repo, nil, dispatcher, render.NewHandlebarsRenderer(), newTaskPool(t))
	updated, err := s.Send(t.Context(), newNotification(domain.User{ID: 1, Email: "a@example.com"}, domain.ChannelEmail))
	require.NoError(t, err)
	assert.Equal(t, map[domain.Channel]domain.DeliveryStatus{domain.ChannelEmail: domain.DeliveryStatusSent}, statuses(updated))
}

func TestSender_SendCancelled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher, ps := newDispatcher(ctrl)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	ctx, cancel := context.WithCancel(t.Context())

	ps.email.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, _, _ string) (bool, error) {
			cancel()
			return false, ctx.Err()
		})
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ domain.Notification) error {
		// 落库不受调用方取消影响
		assert.NoError(t, ctx.Err())
		return nil
	})

	s := NewSender(repo, nil, dispatcher, render.NewHandlebarsRenderer(), newTaskPool(t))
	updated, err := s.Send(ctx, newNotification(domain.User{ID: 1, Email: "a@example.com"}, domain.ChannelEmail))
	require.NoError(t, err)
	assert.Equal(t, map[domain.Channel]domain.DeliveryStatus{domain.ChannelEmail: domain.DeliveryStatusPending}, statuses(updated))
}

func TestSender_SendPreferenceError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher, _ := newDispatcher(ctrl)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	pref := preferencemocks.NewMockService(ctrl)
	pref.EXPECT().IsRouteEnabled(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("mock error"))

	s := NewSender(repo, pref, dispatcher, render.NewHandlebarsRenderer(), newTaskPool(t))
	_, err := s.Send(t.Context(), newNotification(domain.User{ID: 1, Email: "a@example.com"}, domain.ChannelEmail))
	assert.Error(t, err)
}

func TestSender_ProviderMetaInContext(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := providermocks.NewMockProvider(ctrl)
	p.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg provider.Message) (bool, error) {
		assert.Equal(t, uint64(1001), msg.NotificationID)
		assert.Equal(t, "OrderCreated", msg.Route)
		assert.Equal(t, domain.ChannelEmail, msg.Channel)
		return true, nil
	})
	dispatcher := channel.NewDispatcher(map[domain.Channel]channel.Channel{
		domain.ChannelEmail: channel.NewEmailChannel(provider.AsEmail(p)),
	})
	repo := repomocks.NewMockNotificationRepository(ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	s := NewSender(repo, nil, dispatcher, render.NewHandlebarsRenderer(), newTaskPool(t))
	_, err := s.Send(t.Context(), newNotification(domain.User{ID: 1, Email: "a@example.com"}, domain.ChannelEmail))
	require.NoError(t, err)
}

func TestSender_BatchSend(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher, ps := newDispatcher(ctrl)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	ps.email.EXPECT().SendEmail(gomock.Any(), "a@example.com", gomock.Any(), gomock.Any()).Return(true, nil)
	ps.email.EXPECT().SendEmail(gomock.Any(), "b@example.com", gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first := newNotification(domain.User{ID: 1, Email: "a@example.com"}, domain.ChannelEmail)
	second := newNotification(domain.User{ID: 2, Email: "b@example.com"}, domain.ChannelEmail)
	second.ID = 1002
	invalid := newNotification(domain.User{ID: 3}, domain.ChannelEmail)
	invalid.ID = 1003
	invalid.Recipient = nil

	s := NewSender(repo, nil, dispatcher, render.NewHandlebarsRenderer(), newTaskPool(t))
	results := s.BatchSend(t.Context(), []domain.Notification{first, second, invalid})
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.Equal(t, uint64(1001), results[0].Notification.ID)
	assert.Equal(t, domain.DeliveryStatusSent, statuses(results[0].Notification)[domain.ChannelEmail])

	require.NoError(t, results[1].Err)
	assert.Equal(t, domain.DeliveryStatusFailed, statuses(results[1].Notification)[domain.ChannelEmail])

	// 一条失败不影响其他通知
	assert.ErrorIs(t, results[2].Err, errs.ErrValidationFailure)

	assert.Nil(t, s.BatchSend(t.Context(), nil))
}

func TestMetricsSender(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher, ps := newDispatcher(ctrl)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	ps.email.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	reg := prometheus.NewRegistry()
	m := NewMetricsSender(NewSender(repo, nil, dispatcher, render.NewHandlebarsRenderer(), newTaskPool(t)), reg)

	n := newNotification(domain.User{ID: 1, Email: "a@example.com"}, domain.ChannelEmail, domain.ChannelSMS)
	_, err := m.Send(t.Context(), n)
	require.NoError(t, err)
	_ = m.BatchSend(t.Context(), []domain.Notification{n})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.sendCounter.WithLabelValues("OrderCreated")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.batchSendCounter.WithLabelValues("OrderCreated")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.channelStatus.WithLabelValues("EMAIL", "SENT")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.channelStatus.WithLabelValues("SMS", "FAILED")))
}
