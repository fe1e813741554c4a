package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"notification-dispatch/internal/domain"
	id "notification-dispatch/internal/pkg/idgenerator"
	"notification-dispatch/internal/pkg/render"
	"notification-dispatch/internal/service/route"
)

const (
	defaultSubject = "No subject"

	statusNoRecipients = "No recipients resolved for route %s"
	statusDispatched   = "Dispatched %d notification(s) for route %s"
)

// Mapper 把一次请求展开成每个接收人一条通知
type Mapper struct {
	renderer render.Renderer
	idGen    id.Generator
	now      func() time.Time
}

func NewMapper(renderer render.Renderer, idGen id.Generator) *Mapper {
	return &Mapper{
		renderer: renderer,
		idGen:    idGen,
		now:      time.Now,
	}
}

// BuildNotifications 模板数据只解析一次，所有接收人共享
func (m *Mapper) BuildNotifications(
	ctx context.Context,
	req domain.NotificationRequest,
	resolver route.Resolver,
	tpl domain.NotificationTemplate,
) ([]domain.Notification, error) {
	data, err := resolver.ResolveFullData(ctx, req)
	if err != nil {
		return nil, err
	}

	title, err := m.subject(tpl, req, data)
	if err != nil {
		return nil, err
	}
	message, err := m.renderer.Render(tpl.CommonContentTemplate, data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(message) == "" {
		message = req.Message
	}

	recipients, err := resolver.ResolveRecipients(ctx, req)
	if err != nil {
		return nil, err
	}
	recipients = dedupe(recipients)

	channels := req.RequestedChannels()
	createdAt := m.now()
	template := tpl
	notifications := make([]domain.Notification, 0, len(recipients))
	for i := range recipients {
		nid, err1 := m.idGen.NextID()
		if err1 != nil {
			return nil, fmt.Errorf("生成通知ID失败: %w", err1)
		}
		recipient := recipients[i]
		notifications = append(notifications, domain.Notification{
			ID:                    nid,
			Title:                 title,
			Message:               message,
			Route:                 req.Route,
			CreatedAt:             createdAt,
			Recipient:             &recipient,
			Template:              &template,
			DeliveryChannelsState: domain.NewPendingStates(channels, createdAt),
			RenderData:            data,
		})
	}
	return notifications, nil
}

// subject 模板主题、请求标题、默认主题依次兜底
func (m *Mapper) subject(tpl domain.NotificationTemplate, req domain.NotificationRequest, data any) (string, error) {
	if tpl.HasSubject() {
		subject, err := m.renderer.Render(tpl.Subject, data)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(subject) != "" {
			return subject, nil
		}
	}
	if strings.TrimSpace(req.Title) != "" {
		return req.Title, nil
	}
	return defaultSubject, nil
}

func dedupe(users []domain.User) []domain.User {
	seen := make(map[int64]struct{}, len(users))
	res := make([]domain.User, 0, len(users))
	for _, u := range users {
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		res = append(res, u)
	}
	return res
}

// Summarize 同一批通知的标题、路由、创建时间相同，取第一条即可
func (m *Mapper) Summarize(route string, notifications []domain.Notification) domain.DispatchSummary {
	if len(notifications) == 0 {
		return domain.DispatchSummary{
			Route:                  route,
			CreatedAt:              m.now(),
			Recipients:             []domain.UserSummary{},
			CreatedNotificationIDs: []string{},
			StatusMessage:          fmt.Sprintf(statusNoRecipients, route),
		}
	}

	first := notifications[0]
	summary := domain.DispatchSummary{
		Title:                  first.Title,
		Route:                  first.Route,
		CreatedAt:              first.CreatedAt,
		Recipients:             make([]domain.UserSummary, 0, len(notifications)),
		CreatedNotificationIDs: make([]string, 0, len(notifications)),
		StatusMessage:          fmt.Sprintf(statusDispatched, len(notifications), first.Route),
	}
	for i := range notifications {
		if notifications[i].Recipient != nil {
			summary.Recipients = append(summary.Recipients, notifications[i].Recipient.Summary())
		}
		summary.CreatedNotificationIDs = append(summary.CreatedNotificationIDs, notifications[i].IDString())
	}
	return summary
}
