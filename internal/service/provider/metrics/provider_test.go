package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/service/provider"
	providermocks "notification-dispatch/internal/service/provider/mocks"
)

func TestProvider_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := NewCollector(prometheus.NewRegistry())
	msg := provider.Message{Channel: domain.ChannelSMS, To: "13800000000"}

	mp := providermocks.NewMockProvider(ctrl)
	gomock.InOrder(
		mp.EXPECT().Send(gomock.Any(), msg).Return(true, nil),
		mp.EXPECT().Send(gomock.Any(), msg).Return(false, nil),
		mp.EXPECT().Send(gomock.Any(), msg).Return(false, errors.New("mock error")),
	)

	p := NewProvider("aliyun", mp, collector)
	for i := 0; i < 3; i++ {
		_, _ = p.Send(t.Context(), msg)
	}

	ch := domain.ChannelSMS.String()
	assert.Equal(t, float64(3), testutil.ToFloat64(collector.sendCounter.WithLabelValues("aliyun", ch)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.sendStatusCounter.WithLabelValues("aliyun", ch, "true")))
	assert.Equal(t, float64(2), testutil.ToFloat64(collector.sendStatusCounter.WithLabelValues("aliyun", ch, "false")))
}

func TestNewCollectorRegistersOnce(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	NewCollector(reg)
	assert.Panics(t, func() {
		NewCollector(reg)
	})
}
