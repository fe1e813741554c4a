package tracing

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"notification-dispatch/internal/service/provider"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 为供应商实现添加链路追踪的装饰器
type Provider struct {
	provider provider.Provider
	tracer   trace.Tracer
	name     string
}

func (p *Provider) Send(ctx context.Context, msg provider.Message) (bool, error) {
	ctx, span := p.tracer.Start(ctx, "Provider.Send",
		trace.WithAttributes(
			attribute.String("provider.name", p.name),
			attribute.String("notification.id", strconv.FormatUint(msg.NotificationID, 10)),
			attribute.String("notification.route", msg.Route),
			attribute.String("notification.channel", msg.Channel.String()),
		))
	defer span.End()

	// 调用底层供应商发送通知
	ok, err := p.provider.Send(ctx, msg)

	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case !ok:
		span.SetStatus(codes.Error, "供应商拒绝投递")
	default:
		span.SetAttributes(attribute.Bool("notification.sent", true))
	}

	return ok, err
}

// NewProvider 创建一个新的带有链路追踪的供应商
// name 应该传入类似于 tencent, aliyun, postmark 这种名字
func NewProvider(p provider.Provider, name string) *Provider {
	return NewProviderWithTracer(p, name, otel.Tracer("notification-dispatch/provider"))
}

func NewProviderWithTracer(p provider.Provider, name string, tracer trace.Tracer) *Provider {
	return &Provider{
		provider: p,
		name:     name,
		tracer:   tracer,
	}
}
