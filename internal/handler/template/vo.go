package template

type GetTemplateReq struct {
	Name string `form:"name" json:"name"`
}

// SaveTemplateReq 按名称新建或覆盖
type SaveTemplateReq struct {
	Name                  string            `json:"name"`
	Subject               string            `json:"subject"`
	CommonContentTemplate string            `json:"commonContentTemplate"`
	ChannelOverrides      map[string]string `json:"channelOverrides"` // 渠道专属正文，key 为渠道名
}

// NotificationTemplate 通知模板
type NotificationTemplate struct {
	ID                    int64             `json:"id"`
	Name                  string            `json:"name"`
	Subject               string            `json:"subject"`
	CommonContentTemplate string            `json:"commonContentTemplate"`
	ChannelOverrides      map[string]string `json:"channelOverrides"`
	Ctime                 int64             `json:"ctime"` // 创建时间
	Utime                 int64             `json:"utime"` // 更新时间
}
