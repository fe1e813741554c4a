package sender

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"notification-dispatch/internal/domain"
)

const (
	metricsMaxAge        = 5 * time.Minute
	metricsP50Percentile = 0.5
	metricsP50Error      = 0.05
	metricsP90Percentile = 0.9
	metricsP90Error      = 0.01
	metricsP95Percentile = 0.95
	metricsP95Error      = 0.005
	metricsP99Percentile = 0.99
	metricsP99Error      = 0.001

	metricsBatchTag = "batch"
	metricsErrorTag = "error"
)

var _ NotificationSender = (*MetricsSender)(nil)

// MetricsSender 为通知发送添加指标收集的装饰器
type MetricsSender struct {
	sender              NotificationSender
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	batchSendCounter    *prometheus.CounterVec
	channelStatus       *prometheus.CounterVec
}

// Send 发送单条通知并记录指标
func (m *MetricsSender) Send(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	startTime := time.Now()
	m.sendCounter.WithLabelValues(notification.Route).Inc()

	updated, err := m.sender.Send(ctx, notification)

	tag := "ok"
	if err != nil {
		tag = metricsErrorTag
	} else {
		m.recordStates(updated)
	}
	m.sendDurationSummary.WithLabelValues(notification.Route, tag).Observe(time.Since(startTime).Seconds())
	return updated, err
}

// BatchSend 批量发送通知并记录指标
func (m *MetricsSender) BatchSend(ctx context.Context, notifications []domain.Notification) []SendResult {
	if len(notifications) == 0 {
		return nil
	}

	startTime := time.Now()
	// 同一批通知来自同一个请求，路由相同
	route := notifications[0].Route
	m.batchSendCounter.WithLabelValues(route).Inc()

	results := m.sender.BatchSend(ctx, notifications)
	for _, res := range results {
		if res.Err == nil {
			m.recordStates(res.Notification)
		}
	}

	// 记录平均耗时（每条通知）
	m.sendDurationSummary.WithLabelValues(route, metricsBatchTag).
		Observe(time.Since(startTime).Seconds() / float64(len(notifications)))
	return results
}

func (m *MetricsSender) recordStates(n domain.Notification) {
	for _, st := range n.DeliveryChannelsState {
		m.channelStatus.WithLabelValues(st.Channel.String(), st.Status.String()).Inc()
	}
}

// NewMetricsSender 创建一个新的带有指标收集的发送器
func NewMetricsSender(sender NotificationSender, reg prometheus.Registerer) *MetricsSender {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "notification_send_duration_seconds",
			Help:       "通知发送耗时统计（秒）",
			Objectives: map[float64]float64{metricsP50Percentile: metricsP50Error, metricsP90Percentile: metricsP90Error, metricsP95Percentile: metricsP95Error, metricsP99Percentile: metricsP99Error},
			MaxAge:     metricsMaxAge,
		},
		[]string{"route", "result"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_send_total",
			Help: "通知发送总数",
		},
		[]string{"route"},
	)

	batchSendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_batch_send_total",
			Help: "批量通知发送总数",
		},
		[]string{"route"},
	)

	channelStatus := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_channel_status_total",
			Help: "渠道投递状态统计",
		},
		[]string{"channel", "status"},
	)

	reg.MustRegister(sendDurationSummary, sendCounter, batchSendCounter, channelStatus)

	return &MetricsSender{
		sender:              sender,
		sendDurationSummary: sendDurationSummary,
		sendCounter:         sendCounter,
		batchSendCounter:    batchSendCounter,
		channelStatus:       channelStatus,
	}
}
