package template

import (
	"context"

	"notification-dispatch/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/template.mock.go -package=templatemocks
type Store interface {
	// Get 模板不存在时返回 errs.ErrTemplateNotFound
	Get(ctx context.Context, name string) (domain.NotificationTemplate, error)
	// Save 按名称新建或覆盖，保存前校验模板语法
	Save(ctx context.Context, tpl domain.NotificationTemplate) (domain.NotificationTemplate, error)
}
