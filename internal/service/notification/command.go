package notification

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/service/route"
	"notification-dispatch/internal/service/sender"
	templatesvc "notification-dispatch/internal/service/template"
)

type commandService struct {
	routes    route.Lookup
	templates templatesvc.Store
	mapper    *Mapper
	repo      repository.NotificationRepository
	sender    sender.NotificationSender

	logger *elog.Component
}

func NewCommandService(
	routes route.Lookup,
	templates templatesvc.Store,
	mapper *Mapper,
	repo repository.NotificationRepository,
	sender sender.NotificationSender,
) CommandService {
	return &commandService{
		routes:    routes,
		templates: templates,
		mapper:    mapper,
		repo:      repo,
		sender:    sender,
		logger:    elog.DefaultLogger,
	}
}

func (s *commandService) Process(ctx context.Context, req domain.NotificationRequest) (domain.DispatchSummary, error) {
	if err := req.Validate(); err != nil {
		return domain.DispatchSummary{}, err
	}

	resolver, err := s.routes.ResolverFor(req.Route)
	if err != nil {
		return domain.DispatchSummary{}, err
	}
	cfg, err := s.routes.ConfigFor(req.Route)
	if err != nil {
		return domain.DispatchSummary{}, err
	}
	tpl, err := s.templates.Get(ctx, cfg.TemplateName)
	if err != nil {
		return domain.DispatchSummary{}, err
	}

	notifications, err := s.mapper.BuildNotifications(ctx, req, resolver, tpl)
	if err != nil {
		return domain.DispatchSummary{}, err
	}
	if len(notifications) == 0 {
		s.logger.Info("路由没有解析出接收人", elog.String("route", req.Route))
		return s.mapper.Summarize(req.Route, notifications), nil
	}

	if err = s.repo.SaveBatch(ctx, notifications); err != nil {
		return domain.DispatchSummary{}, fmt.Errorf("保存通知失败: %w", err)
	}

	// 单条通知发送失败只记录日志，不影响整个请求
	results := s.sender.BatchSend(ctx, notifications)
	for _, res := range results {
		if res.Err != nil {
			s.logger.Error("发送通知失败",
				elog.FieldErr(res.Err),
				elog.Any("notificationId", res.Notification.ID),
				elog.String("route", req.Route),
			)
		}
	}
	return s.mapper.Summarize(req.Route, notifications), nil
}
