package domain

import "strings"

// NotificationTemplate 通知模板，正文可以按渠道覆盖
type NotificationTemplate struct {
	ID                    int64              `json:"id"`
	Name                  string             `json:"name"`
	Subject               string             `json:"subject"`
	CommonContentTemplate string             `json:"commonContentTemplate"`
	ChannelOverrides      map[Channel]string `json:"channelOverrides"`
	Ctime                 int64              `json:"ctime"`
	Utime                 int64              `json:"utime"`
}

// ContentTemplateFor 有渠道覆盖用覆盖，否则用通用模板
func (t NotificationTemplate) ContentTemplateFor(c Channel) string {
	if override, ok := t.ChannelOverrides[c]; ok && strings.TrimSpace(override) != "" {
		return override
	}
	return t.CommonContentTemplate
}

func (t NotificationTemplate) HasOverride(c Channel) bool {
	override, ok := t.ChannelOverrides[c]
	return ok && strings.TrimSpace(override) != ""
}

func (t NotificationTemplate) HasSubject() bool {
	return strings.TrimSpace(t.Subject) != ""
}
