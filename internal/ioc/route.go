package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/service/route"
	"notification-dispatch/internal/service/route/resolver"
)

// InitRouteRegistry 模板名称可以通过 routes.<路由>.templateName 覆盖
func InitRouteRegistry(users repository.UserRepository) *route.Registry {
	var overrides map[string]domain.RouteConfig
	if econf.Get("routes") != nil {
		if err := econf.UnmarshalKey("routes", &overrides); err != nil {
			panic(err)
		}
	}
	cfg := func(r, tplName, desc string) domain.RouteConfig {
		c := domain.RouteConfig{Route: r, TemplateName: tplName, Description: desc}
		if o, ok := overrides[r]; ok && o.TemplateName != "" {
			c.TemplateName = o.TemplateName
		}
		return c
	}
	reg, err := route.NewBuilder().
		Register(resolver.NewOrderCreatedResolver(users),
			cfg(resolver.RouteOrderCreated, "order-created", "下单成功通知")).
		Register(resolver.NewPasswordChangedResolver(users),
			cfg(resolver.RoutePasswordChanged, "password-changed", "密码修改提醒")).
		Register(resolver.NewAnnouncementResolver(users),
			cfg(resolver.RouteAnnouncement, "announcement", "全员公告")).
		Build()
	if err != nil {
		panic(err)
	}
	return reg
}

func InitRouteLookup(reg *route.Registry) route.Lookup {
	return reg
}
