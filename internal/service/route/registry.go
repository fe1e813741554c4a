package route

import (
	"fmt"
	"sort"

	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
)

var _ Lookup = (*Registry)(nil)

// Registry 构建完成后不再修改，并发读不需要加锁
type Registry struct {
	resolvers map[string]Resolver
	configs   map[string]domain.RouteConfig
}

func (r *Registry) ResolverFor(route string) (Resolver, error) {
	res, ok := r.resolvers[route]
	if !ok {
		return nil, fmt.Errorf("%w: route=%s", errs.ErrRouteNotFound, route)
	}
	return res, nil
}

func (r *Registry) ConfigFor(route string) (domain.RouteConfig, error) {
	cfg, ok := r.configs[route]
	if !ok {
		return domain.RouteConfig{}, fmt.Errorf("%w: route=%s", errs.ErrRouteNotFound, route)
	}
	return cfg, nil
}

// Routes 已注册的路由，按字典序
func (r *Registry) Routes() []string {
	routes := make([]string, 0, len(r.configs))
	for route := range r.configs {
		routes = append(routes, route)
	}
	sort.Strings(routes)
	return routes
}

// Builder 只在启动阶段使用，第一个错误会一直保留到 Build
type Builder struct {
	resolvers map[string]Resolver
	configs   map[string]domain.RouteConfig
	err       error
}

func NewBuilder() *Builder {
	return &Builder{
		resolvers: make(map[string]Resolver),
		configs:   make(map[string]domain.RouteConfig),
	}
}

func (b *Builder) RegisterResolver(route string, resolver Resolver) *Builder {
	if b.err != nil {
		return b
	}
	if resolver == nil {
		b.err = fmt.Errorf("%w: route=%s 的解析器为 nil", errs.ErrInvalidParameter, route)
		return b
	}
	if resolver.Route() != route {
		b.err = fmt.Errorf("%w: 解析器路由 %s 与注册路由 %s 不一致", errs.ErrInvalidParameter, resolver.Route(), route)
		return b
	}
	if _, ok := b.resolvers[route]; ok {
		b.err = fmt.Errorf("%w: resolver route=%s", errs.ErrRouteDuplicate, route)
		return b
	}
	b.resolvers[route] = resolver
	return b
}

func (b *Builder) RegisterConfig(route string, cfg domain.RouteConfig) *Builder {
	if b.err != nil {
		return b
	}
	if _, ok := b.configs[route]; ok {
		b.err = fmt.Errorf("%w: config route=%s", errs.ErrRouteDuplicate, route)
		return b
	}
	cfg.Route = route
	b.configs[route] = cfg
	return b
}

// Register 同时注册解析器和配置
func (b *Builder) Register(resolver Resolver, cfg domain.RouteConfig) *Builder {
	if resolver == nil {
		return b.RegisterResolver(cfg.Route, nil)
	}
	return b.RegisterResolver(resolver.Route(), resolver).
		RegisterConfig(resolver.Route(), cfg)
}

// Build 要求每个路由的解析器和配置成对出现
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	for route := range b.resolvers {
		if _, ok := b.configs[route]; !ok {
			return nil, fmt.Errorf("%w: route=%s 缺少配置", errs.ErrRouteNotFound, route)
		}
	}
	for route := range b.configs {
		if _, ok := b.resolvers[route]; !ok {
			return nil, fmt.Errorf("%w: route=%s 缺少解析器", errs.ErrRouteNotFound, route)
		}
	}
	reg := &Registry{
		resolvers: make(map[string]Resolver, len(b.resolvers)),
		configs:   make(map[string]domain.RouteConfig, len(b.configs)),
	}
	for k, v := range b.resolvers {
		reg.resolvers[k] = v
	}
	for k, v := range b.configs {
		reg.configs[k] = v
	}
	return reg, nil
}
