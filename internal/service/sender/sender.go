package sender

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/pool"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/pkg/render"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/service/channel"
	"notification-dispatch/internal/service/preference"
	"notification-dispatch/internal/service/provider"
)

// sender 通知发送器实现
type sender struct {
	repo       repository.NotificationRepository
	prefSvc    preference.Service
	dispatcher *channel.Dispatcher
	renderer   render.Renderer
	taskPool   pool.TaskPool
	now        func() time.Time

	logger *elog.Component
}

// NewSender 创建通知发送器，prefSvc 为 nil 时所有路由视为开启
func NewSender(
	repo repository.NotificationRepository,
	prefSvc preference.Service,
	dispatcher *channel.Dispatcher,
	renderer render.Renderer,
	taskPool pool.TaskPool,
) NotificationSender {
	return &sender{
		repo:       repo,
		prefSvc:    prefSvc,
		dispatcher: dispatcher,
		renderer:   renderer,
		taskPool:   taskPool,
		now:        time.Now,
		logger:     elog.DefaultLogger,
	}
}

func (s *sender) Send(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	if err := notification.Validate(); err != nil {
		return notification, err
	}
	for _, c := range notification.PendingChannels() {
		if err := s.dispatcher.Supports(c); err != nil {
			return notification, fmt.Errorf("%w, id=%d", err, notification.ID)
		}
	}

	enabled, err := s.isRouteEnabled(ctx, notification)
	if err != nil {
		return notification, err
	}

	var updated domain.Notification
	if !enabled {
		updated = s.skipAll(notification)
	} else {
		updated = s.dispatch(ctx, notification)
	}

	// 已经拿到的投递结果要落库，哪怕调用方已经取消
	if err = s.repo.Update(context.WithoutCancel(ctx), updated); err != nil {
		s.logger.Error("更新通知渠道状态失败",
			elog.FieldErr(err),
			elog.Any("notificationId", updated.ID),
		)
		return updated, fmt.Errorf("更新通知渠道状态失败: %w", err)
	}
	return updated, nil
}

func (s *sender) isRouteEnabled(ctx context.Context, n domain.Notification) (bool, error) {
	if s.prefSvc == nil {
		return true, nil
	}
	enabled, err := s.prefSvc.IsRouteEnabled(ctx, n.Recipient.ID, n.Route)
	if err != nil {
		return false, fmt.Errorf("查询用户路由偏好失败: %w", err)
	}
	return enabled, nil
}

func (s *sender) skipAll(n domain.Notification) domain.Notification {
	now := s.now()
	states := make([]domain.ChannelState, 0, len(n.DeliveryChannelsState))
	for _, st := range n.DeliveryChannelsState {
		if st.Status.CanTransitionTo(domain.DeliveryStatusSkipped) {
			st = domain.ChannelState{Channel: st.Channel, Status: domain.DeliveryStatusSkipped, UpdatedAt: now}
		}
		states = append(states, st)
	}
	s.logger.Info("用户关闭了该路由，跳过所有渠道",
		elog.Any("notificationId", n.ID),
		elog.String("route", n.Route),
	)
	return n.WithStates(states)
}

// dispatch 每个渠道一个任务，各自产出结果，全部结束后再合并成新的状态列表
func (s *sender) dispatch(ctx context.Context, n domain.Notification) domain.Notification {
	pending := n.PendingChannels()
	outcomes := make([]domain.ChannelState, len(pending))

	ctx = provider.WithMeta(ctx, provider.Meta{NotificationID: n.ID, Route: n.Route})
	var eg errgroup.Group
	for i, c := range pending {
		eg.Go(func() error {
			outcomes[i] = s.sendChannel(ctx, n, c)
			return nil
		})
	}
	_ = eg.Wait()

	byChannel := make(map[domain.Channel]domain.ChannelState, len(outcomes))
	for _, o := range outcomes {
		byChannel[o.Channel] = o
	}
	states := make([]domain.ChannelState, 0, len(n.DeliveryChannelsState))
	for _, st := range n.DeliveryChannelsState {
		if o, ok := byChannel[st.Channel]; ok && st.Status.IsPending() {
			st = o
		}
		states = append(states, st)
	}
	return n.WithStates(states)
}

func (s *sender) sendChannel(ctx context.Context, n domain.Notification, c domain.Channel) (state domain.ChannelState) {
	state = domain.ChannelState{Channel: c, Status: domain.DeliveryStatusFailed}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("渠道发送 panic",
				elog.Any("notificationId", n.ID),
				elog.String("channel", c.String()),
				elog.Any("panic", r),
			)
			state = domain.ChannelState{Channel: c, Status: domain.DeliveryStatusFailed, UpdatedAt: s.now()}
		}
	}()

	ok, err := s.dispatcher.Send(ctx, c, s.deliveryFor(n, c))
	state.UpdatedAt = s.now()
	switch {
	case err != nil && ctx.Err() != nil:
		// 被取消的渠道保持 PENDING
		s.logger.Warn("渠道发送被取消",
			elog.FieldErr(err),
			elog.Any("notificationId", n.ID),
			elog.String("channel", c.String()),
		)
		state.Status = domain.DeliveryStatusPending
	case err != nil:
		s.logger.Warn("渠道发送失败",
			elog.FieldErr(err),
			elog.Any("notificationId", n.ID),
			elog.String("channel", c.String()),
		)
	case ok:
		state.Status = domain.DeliveryStatusSent
	}
	return state
}

// deliveryFor 有渠道专属模板时按渠道渲染正文，否则使用通用正文。
// 标题在构建通知时已经由模板主题渲染得到
func (s *sender) deliveryFor(n domain.Notification, c domain.Channel) channel.Delivery {
	d := channel.Delivery{
		Notification: n,
		Subject:      n.Title,
		Body:         n.Message,
	}
	if n.Template == nil || !n.Template.HasOverride(c) || n.RenderData == nil {
		return d
	}
	rendered, err := s.renderer.Render(n.Template.ContentTemplateFor(c), n.RenderData)
	if err != nil {
		s.logger.Warn("渲染渠道模板失败，使用通用正文",
			elog.FieldErr(err),
			elog.Any("notificationId", n.ID),
			elog.String("channel", c.String()),
		)
		return d
	}
	d.Body = n.ContentFor(rendered)
	return d
}

func (s *sender) BatchSend(ctx context.Context, notifications []domain.Notification) []SendResult {
	if len(notifications) == 0 {
		return nil
	}

	results := make([]SendResult, len(notifications))
	var wg sync.WaitGroup
	for i := range notifications {
		n := notifications[i]
		wg.Add(1)
		// 任务里使用调用方的 ctx，取消能传到每个渠道
		err := s.taskPool.Submit(ctx, pool.TaskFunc(func(context.Context) error {
			defer wg.Done()
			results[i] = s.safeSend(ctx, n)
			return nil
		}))
		if err != nil {
			wg.Done()
			s.logger.Warn("提交任务到任务池失败",
				elog.FieldErr(err),
				elog.Any("notificationId", n.ID),
			)
			results[i] = SendResult{Notification: n, Err: fmt.Errorf("提交任务到任务池失败: %w", err)}
		}
	}
	wg.Wait()
	return results
}

func (s *sender) safeSend(ctx context.Context, n domain.Notification) (res SendResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("发送通知 panic", elog.Any("notificationId", n.ID), elog.Any("panic", r))
			res = SendResult{Notification: n, Err: fmt.Errorf("发送通知 panic: %v", r)}
		}
	}()
	updated, err := s.Send(ctx, n)
	return SendResult{Notification: updated, Err: err}
}
