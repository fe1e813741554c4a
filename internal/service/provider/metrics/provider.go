package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"notification-dispatch/internal/service/provider"
)

// 定义Prometheus指标配置常量
const (
	// 摘要指标的分位数配置
	median = 0.5
	p90    = 0.9
	p95    = 0.95
	p99    = 0.99

	medianError = 0.05
	p90Error    = 0.01
	p95Error    = 0.005
	p99Error    = 0.001

	// 摘要指标的最大保留时间
	maxAgeDuration = 5 * time.Minute
)

var _ provider.Provider = (*Provider)(nil)

// Collector 所有供应商共用一组指标，用 provider 标签区分
type Collector struct {
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	sendStatusCounter   *prometheus.CounterVec
}

// NewCollector 创建并注册指标
func NewCollector(reg prometheus.Registerer) *Collector {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "provider_send_duration_seconds",
			Help: "供应商发送通知耗时统计（秒）",
			Objectives: map[float64]float64{
				median: medianError,
				p90:    p90Error,
				p95:    p95Error,
				p99:    p99Error,
			},
			MaxAge: maxAgeDuration,
		},
		[]string{"provider", "channel", "success"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_total",
			Help: "供应商发送通知总数",
		},
		[]string{"provider", "channel"},
	)

	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_status_total",
			Help: "供应商发送通知结果统计",
		},
		[]string{"provider", "channel", "success"},
	)

	// 注册指标
	reg.MustRegister(sendDurationSummary, sendCounter, sendStatusCounter)

	return &Collector{
		sendDurationSummary: sendDurationSummary,
		sendCounter:         sendCounter,
		sendStatusCounter:   sendStatusCounter,
	}
}

// Provider 为供应商实现添加指标收集的装饰器
type Provider struct {
	provider  provider.Provider
	collector *Collector
	name      string
}

// Send 发送通知并记录指标
func (p *Provider) Send(ctx context.Context, msg provider.Message) (bool, error) {
	startTime := time.Now()
	channel := msg.Channel.String()

	p.collector.sendCounter.WithLabelValues(p.name, channel).Inc()

	ok, err := p.provider.Send(ctx, msg)

	duration := time.Since(startTime).Seconds()
	success := strconv.FormatBool(ok && err == nil)
	p.collector.sendStatusCounter.WithLabelValues(p.name, channel, success).Inc()
	p.collector.sendDurationSummary.WithLabelValues(p.name, channel, success).Observe(duration)

	return ok, err
}

// NewProvider 创建一个新的带有指标收集的供应商
func NewProvider(name string, p provider.Provider, collector *Collector) *Provider {
	return &Provider{
		provider:  p,
		collector: collector,
		name:      name,
	}
}
