package provider

import "context"

type metaKey struct{}

// Meta 发送链路上和供应商无关的通知信息，用于打点和链路追踪
type Meta struct {
	NotificationID uint64
	Route          string
}

func WithMeta(ctx context.Context, meta Meta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

func MetaFromContext(ctx context.Context) (Meta, bool) {
	meta, ok := ctx.Value(metaKey{}).(Meta)
	return meta, ok
}
