package domain

import (
	"encoding/json"
	"strings"
)

// Channel 投递渠道
type Channel string

const (
	ChannelEmail Channel = "EMAIL"  // 邮件
	ChannelSMS   Channel = "SMS"    // 短信
	ChannelPush  Channel = "PUSH"   // 移动推送
	ChannelInApp Channel = "IN_APP" // 站内信
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelPush, ChannelInApp:
		return true
	default:
		return false
	}
}

// MaxChannelLength 和渠道状态表 channel 列的长度一致
const MaxChannelLength = 32

// ParseChannel 兼容大小写以及 in-app / inapp 等写法，无法识别的值原样保留，由发送阶段拒绝
// 过长的值截断到 MaxChannelLength 个字符，保证能落库
func ParseChannel(s string) Channel {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	switch normalized {
	case "EMAIL", "MAIL":
		return ChannelEmail
	case "SMS":
		return ChannelSMS
	case "PUSH":
		return ChannelPush
	case "IN_APP", "INAPP":
		return ChannelInApp
	default:
		if r := []rune(s); len(r) > MaxChannelLength {
			return Channel(r[:MaxChannelLength])
		}
		return Channel(s)
	}
}

func (c *Channel) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = ParseChannel(raw)
	return nil
}

// DefaultChannels 请求未指定渠道时使用
func DefaultChannels() []Channel {
	return []Channel{ChannelEmail, ChannelPush}
}
