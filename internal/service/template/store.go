package template

import (
	"context"
	"fmt"
	"strings"

	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/pkg/render"
	"notification-dispatch/internal/repository"
)

type store struct {
	repo repository.TemplateRepository
}

func NewStore(repo repository.TemplateRepository) Store {
	return &store{repo: repo}
}

func (s *store) Get(ctx context.Context, name string) (domain.NotificationTemplate, error) {
	if strings.TrimSpace(name) == "" {
		return domain.NotificationTemplate{}, fmt.Errorf("%w: 模板名称为空", errs.ErrTemplateNotFound)
	}
	return s.repo.GetByName(ctx, name)
}

func (s *store) Save(ctx context.Context, tpl domain.NotificationTemplate) (domain.NotificationTemplate, error) {
	if strings.TrimSpace(tpl.Name) == "" {
		return domain.NotificationTemplate{}, fmt.Errorf("%w: 模板名称为空", errs.ErrInvalidParameter)
	}
	texts := []string{tpl.Subject, tpl.CommonContentTemplate}
	for c, override := range tpl.ChannelOverrides {
		if !c.IsValid() {
			return domain.NotificationTemplate{}, fmt.Errorf("%w: %s", errs.ErrChannelNotSupported, c)
		}
		texts = append(texts, override)
	}
	for _, text := range texts {
		if err := render.Validate(text); err != nil {
			return domain.NotificationTemplate{}, err
		}
	}
	return s.repo.Save(ctx, tpl)
}
