package errs

import "errors"

// 路由与模板
var (
	ErrRouteNotFound    = errors.New("路由不存在")
	ErrRouteDuplicate   = errors.New("路由重复注册")
	ErrTemplateNotFound = errors.New("模板不存在")
	ErrTemplateRender   = errors.New("模板渲染失败")
)

// 参数与校验
var (
	ErrInvalidParameter         = errors.New("参数错误")
	ErrMissingRequiredParameter = errors.New("缺少必填参数")
	ErrValidationFailure        = errors.New("通知校验失败")
	ErrChannelNotSupported      = errors.New("不支持的渠道")
)

// 通知与用户
var (
	ErrNotificationNotFound    = errors.New("通知记录不存在")
	ErrNotificationDuplicate   = errors.New("通知记录主键冲突")
	ErrInvalidStatusTransition = errors.New("非法的投递状态变更")
	ErrUserNotFound            = errors.New("用户不存在")
)

// 发送链路
var (
	ErrProviderNotConfigured = errors.New("渠道供应商未配置")
	ErrRateLimited           = errors.New("触发限流")
)
