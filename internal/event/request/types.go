package request

const (
	// EventName 消息体就是 HTTP 接口的请求体
	EventName = "notification_requests"
)
