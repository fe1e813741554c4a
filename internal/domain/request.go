package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"notification-dispatch/internal/errs"
)

// NotificationRequest 业务方发起的一次"某件事发生了"的请求
type NotificationRequest struct {
	Route    string    `json:"route"`
	Title    string    `json:"title,omitempty"`
	Message  string    `json:"message,omitempty"`
	Channels []Channel `json:"channels,omitempty"`
	// Parameters 只有对应路由的解析器知道结构
	Parameters json.RawMessage `json:"parameters"`
}

func (r NotificationRequest) Validate() error {
	if strings.TrimSpace(r.Route) == "" {
		return fmt.Errorf("%w: Route 为空", errs.ErrInvalidParameter)
	}
	return nil
}

// RequestedChannels 请求的渠道，未指定时使用默认渠道
func (r NotificationRequest) RequestedChannels() []Channel {
	if len(r.Channels) == 0 {
		return DefaultChannels()
	}
	channels := make([]Channel, len(r.Channels))
	copy(channels, r.Channels)
	return channels
}

// DecodeParameters 把 Parameters 解析到 dst
func (r NotificationRequest) DecodeParameters(dst any) error {
	if len(r.Parameters) == 0 {
		return fmt.Errorf("%w: parameters 为空", errs.ErrMissingRequiredParameter)
	}
	if err := json.Unmarshal(r.Parameters, dst); err != nil {
		return fmt.Errorf("%w: parameters 格式错误 %w", errs.ErrInvalidParameter, err)
	}
	return nil
}

// DispatchSummary 一次请求的处理结果
type DispatchSummary struct {
	Title                  string        `json:"title"`
	Route                  string        `json:"route"`
	CreatedAt              time.Time     `json:"createdAt"`
	Recipients             []UserSummary `json:"recipients"`
	CreatedNotificationIDs []string      `json:"createdNotificationIds"`
	StatusMessage          string        `json:"statusMessage"`
}
