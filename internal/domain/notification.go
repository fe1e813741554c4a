package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"notification-dispatch/internal/errs"
)

// MetadataEntry 通知附带的键值对
type MetadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Notification 一条通知对应一个接收人
type Notification struct {
	ID                    uint64                `json:"id"`
	Title                 string                `json:"title"`
	Message               string                `json:"message"` // 使用通用模板渲染出来的正文
	Route                 string                `json:"route"`
	CreatedAt             time.Time             `json:"createdAt"`
	Recipient             *User                 `json:"recipient"`
	Template              *NotificationTemplate `json:"template,omitempty"`
	DeliveryChannelsState []ChannelState        `json:"deliveryChannelsState"`
	Metadata              []MetadataEntry       `json:"metadata,omitempty"`

	// RenderData 解析器返回的完整数据，只在本次分发的内存中存在，用于按渠道渲染覆盖模板
	RenderData any `json:"-"`
}

func (n Notification) IDString() string {
	return strconv.FormatUint(n.ID, 10)
}

// Validate 校验数据完整性，所有违反的规则合并成一个错误返回
func (n Notification) Validate() error {
	var result *multierror.Error
	if strings.TrimSpace(n.Title) == "" {
		result = multierror.Append(result, fmt.Errorf("%w: Title 为空", errs.ErrInvalidParameter))
	}
	if n.Recipient == nil {
		result = multierror.Append(result, fmt.Errorf("%w: Recipient 为空", errs.ErrInvalidParameter))
	}
	if strings.TrimSpace(n.Message) == "" && n.Template == nil {
		result = multierror.Append(result, fmt.Errorf("%w: Message 和 Template 不能同时为空", errs.ErrInvalidParameter))
	}
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: id=%d, %w", errs.ErrValidationFailure, n.ID, err)
	}
	return nil
}

// Channels 返回通知请求的所有渠道
func (n Notification) Channels() []Channel {
	channels := make([]Channel, 0, len(n.DeliveryChannelsState))
	for _, st := range n.DeliveryChannelsState {
		channels = append(channels, st.Channel)
	}
	return channels
}

func (n Notification) StateOf(c Channel) (ChannelState, bool) {
	for _, st := range n.DeliveryChannelsState {
		if st.Channel == c {
			return st, true
		}
	}
	return ChannelState{}, false
}

// PendingChannels 仍处于 PENDING 的渠道
func (n Notification) PendingChannels() []Channel {
	channels := make([]Channel, 0, len(n.DeliveryChannelsState))
	for _, st := range n.DeliveryChannelsState {
		if st.Status.IsPending() {
			channels = append(channels, st.Channel)
		}
	}
	return channels
}

// WithStates 返回一个使用新状态列表的副本，不修改原通知
func (n Notification) WithStates(states []ChannelState) Notification {
	n.DeliveryChannelsState = states
	return n
}

// ContentFor 渠道正文：有渲染好的渠道内容用渠道内容，否则用 Message
func (n Notification) ContentFor(rendered string) string {
	if strings.TrimSpace(rendered) != "" {
		return rendered
	}
	return n.Message
}

func (n Notification) MarshalMetadata() (string, error) {
	if len(n.Metadata) == 0 {
		return "[]", nil
	}
	jsonBytes, err := json.Marshal(n.Metadata)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}
