package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InitTracerProvider 注册全局 TracerProvider，导出器由部署环境追加
func InitTracerProvider() *sdktrace.TracerProvider {
	ratio := econf.GetFloat64("trace.sampleRatio")
	if ratio <= 0 {
		ratio = 1
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	otel.SetTracerProvider(tp)
	return tp
}
