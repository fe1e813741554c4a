package domain

// RouteConfig 路由配置
type RouteConfig struct {
	Route        string `json:"route"`
	TemplateName string `json:"templateName"` // 使用的模板名称
	Description  string `json:"description"`
}
