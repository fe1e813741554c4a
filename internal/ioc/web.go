package ioc

import (
	"github.com/gotomicro/ego/server/egin"
	notificationhdl "notification-dispatch/internal/handler/notification"
	templatehdl "notification-dispatch/internal/handler/template"
)

func InitGinServer(nh *notificationhdl.Handler, th *templatehdl.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	nh.PublicRoutes(server.Engine)
	th.PublicRoutes(server.Engine)
	return server
}
