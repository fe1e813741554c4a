package route

import (
	"context"

	"notification-dispatch/internal/domain"
)

// Resolver 每个路由一个实现，把请求里的 parameters 解析成接收人和模板数据
//
//go:generate mockgen -source=./types.go -destination=./mocks/route.mock.go -package=routemocks
type Resolver interface {
	// Route 必须和注册时使用的路由一致
	Route() string
	// ResolveRecipients 返回空列表不是错误，此时不会产生任何通知
	ResolveRecipients(ctx context.Context, req domain.NotificationRequest) ([]domain.User, error)
	// ResolveFullData 返回值原样交给渲染器
	ResolveFullData(ctx context.Context, req domain.NotificationRequest) (any, error)
}

// Lookup 运行期只读的路由查询
type Lookup interface {
	ResolverFor(route string) (Resolver, error)
	ConfigFor(route string) (domain.RouteConfig, error)
}
