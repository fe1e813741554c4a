package domain

import "time"

// DeliveryStatus 单个渠道的投递状态
type DeliveryStatus string

const (
	DeliveryStatusPending DeliveryStatus = "PENDING" // 待投递
	DeliveryStatusSkipped DeliveryStatus = "SKIPPED" // 用户关闭了该路由
	DeliveryStatusSent    DeliveryStatus = "SENT"    // 投递成功
	DeliveryStatusFailed  DeliveryStatus = "FAILED"  // 投递失败
	DeliveryStatusRead    DeliveryStatus = "READ"    // 用户已读
)

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsPending() bool {
	return s == DeliveryStatusPending
}

// CanTransitionTo 状态机：
// PENDING -> SKIPPED | SENT | FAILED，SENT -> READ，其余均为终态
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	switch s {
	case DeliveryStatusPending:
		return next == DeliveryStatusSkipped || next == DeliveryStatusSent || next == DeliveryStatusFailed
	case DeliveryStatusSent:
		return next == DeliveryStatusRead
	default:
		return false
	}
}

// ChannelState 某条通知在某个渠道上的投递状态
type ChannelState struct {
	Channel   Channel        `json:"channel"`
	Status    DeliveryStatus `json:"status"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// NewPendingStates 为每个渠道生成一个 PENDING 状态，重复的渠道只保留一个
func NewPendingStates(channels []Channel, now time.Time) []ChannelState {
	seen := make(map[Channel]struct{}, len(channels))
	states := make([]ChannelState, 0, len(channels))
	for _, c := range channels {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		states = append(states, ChannelState{
			Channel:   c,
			Status:    DeliveryStatusPending,
			UpdatedAt: now,
		})
	}
	return states
}
