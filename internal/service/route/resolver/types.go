package resolver

import "time"

// 路由名称
const (
	RouteOrderCreated    = "OrderCreated"
	RoutePasswordChanged = "PasswordChanged"
	RouteAnnouncement    = "Announcement"
)

// Clock 方便测试固定时间
type Clock func() time.Time
