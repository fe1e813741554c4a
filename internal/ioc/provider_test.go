package ioc

import (
	"testing"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/event/inapp"
	"notification-dispatch/internal/service/channel"
	"notification-dispatch/internal/service/provider/metrics"
	"notification-dispatch/internal/service/provider/push"
	"notification-dispatch/internal/service/provider/sequential"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     ProviderConfig
		wantErr bool
	}{
		{name: "console", cfg: ProviderConfig{Name: "console", Type: providerTypeConsole}},
		{name: "smtp", cfg: ProviderConfig{Name: "smtp", Type: providerTypeSMTP, Host: "localhost", Port: 1025, From: "a@example.com"}},
		{name: "tencent", cfg: ProviderConfig{Name: "tencent", Type: providerTypeTencent, RegionID: "ap-guangzhou", ParamOrder: []string{"content"}}},
		{name: "gateway", cfg: ProviderConfig{Name: "gateway", Type: providerTypeGateway}},
		{name: "未知类型", cfg: ProviderConfig{Name: "fax", Type: "fax"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(t.Context(), push.DefaultTopic, 1))
			p, err := newProvider(tc.cfg, q)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}

func TestBuildProviders(t *testing.T) {
	t.Parallel()
	collector := metrics.NewCollector(prometheus.NewRegistry())
	q := memory.NewMQ()

	assert.Nil(t, buildProviders(nil, q, collector))
	single := buildProviders([]ProviderConfig{{Name: "console", Type: providerTypeConsole}}, q, collector)
	assert.NotNil(t, single)
	_, isSeq := single.(*sequential.Provider)
	assert.False(t, isSeq)

	multi := buildProviders([]ProviderConfig{
		{Name: "c1", Type: providerTypeConsole},
		{Name: "c2", Type: providerTypeConsole},
	}, q, collector)
	_, isSeq = multi.(*sequential.Provider)
	assert.True(t, isSeq)

	assert.Panics(t, func() {
		buildProviders([]ProviderConfig{{Name: "fax", Type: "fax"}}, q, collector)
	})
}

func TestInitDispatcher(t *testing.T) {
	t.Parallel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(t.Context(), inapp.EventName, 1))
	_, err := q.Consumer(inapp.EventName, "realtime-hub")
	require.NoError(t, err)
	producer, err := inapp.NewEventProducer(q)
	require.NoError(t, err)

	d := InitDispatcher(ProvidersConfig{
		Email: []ProviderConfig{{Name: "console", Type: providerTypeConsole}},
	}, q, producer, metrics.NewCollector(prometheus.NewRegistry()))

	delivery := channel.Delivery{
		Notification: domain.Notification{
			ID:        1,
			Route:     "Announcement",
			Recipient: &domain.User{ID: 1, Email: "a@example.com"},
		},
		Subject: "标题",
		Body:    "正文",
	}
	ok, err := d.Send(t.Context(), domain.ChannelEmail, delivery)
	require.NoError(t, err)
	assert.True(t, ok)

	// 没有配置供应商的渠道投递失败
	ok, err = d.Send(t.Context(), domain.ChannelSMS, delivery)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = d.Send(t.Context(), domain.ChannelInApp, delivery)
	require.NoError(t, err)
	assert.True(t, ok)
}
