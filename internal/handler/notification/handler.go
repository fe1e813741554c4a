package notification

import (
	"fmt"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/handler"
	"notification-dispatch/internal/pkg/ratelimit"
	notificationsvc "notification-dispatch/internal/service/notification"
	"notification-dispatch/internal/service/preference"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	cmdSvc   notificationsvc.CommandService
	querySvc notificationsvc.QueryService
	prefSvc  preference.Service
	limiter  ratelimit.Limiter
	logger   *elog.Component
}

// NewHandler limiter 为 nil 时不限流
func NewHandler(
	cmdSvc notificationsvc.CommandService,
	querySvc notificationsvc.QueryService,
	prefSvc preference.Service,
	limiter ratelimit.Limiter,
) *Handler {
	return &Handler{
		cmdSvc:   cmdSvc,
		querySvc: querySvc,
		prefSvc:  prefSvc,
		limiter:  limiter,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	ng := server.Group("/notifications")
	ng.POST("/dispatch", ginx.B(h.Dispatch))
	ng.GET("", ginx.B(h.List))
	ng.GET("/:id", ginx.W(h.Detail))
	ng.POST("/read", ginx.B(h.MarkRead))

	pg := server.Group("/preferences")
	pg.POST("", ginx.B(h.SetPreference))
	pg.GET("", ginx.B(h.ListPreferences))
}

// Dispatch 按路由生成并发送通知
func (h *Handler) Dispatch(ctx *ginx.Context, req DispatchReq) (ginx.Result, error) {
	if err := h.limit(ctx, req.Route); err != nil {
		return handler.Abort(ctx, err)
	}

	summary, err := h.cmdSvc.Process(ctx.Request.Context(), domain.NotificationRequest{
		Route:      req.Route,
		Title:      req.Title,
		Message:    req.Message,
		Channels:   slice.Map(req.Channels, func(_ int, src string) domain.Channel { return domain.ParseChannel(src) }),
		Parameters: req.Parameters,
	})
	if err != nil {
		h.logger.Warn("处理通知请求失败", elog.FieldErr(err), elog.String("route", req.Route))
		return handler.Abort(ctx, err)
	}
	return ginx.Result{
		Data: DispatchResp{
			Title:     summary.Title,
			Route:     summary.Route,
			CreatedAt: summary.CreatedAt,
			Recipients: slice.Map(summary.Recipients, func(_ int, src domain.UserSummary) UserSummary {
				return UserSummary{ID: src.ID, Name: src.Name, Email: src.Email}
			}),
			CreatedNotificationIDs: summary.CreatedNotificationIDs,
			StatusMessage:          summary.StatusMessage,
		},
	}, nil
}

func (h *Handler) limit(ctx *ginx.Context, route string) error {
	if h.limiter == nil {
		return nil
	}
	limited, err := h.limiter.Limit(ctx.Request.Context(), ratelimit.RouteKey(route))
	if err != nil {
		// 限流器出问题时放行
		h.logger.Warn("限流器异常", elog.FieldErr(err), elog.String("route", route))
		return nil
	}
	if limited {
		return fmt.Errorf("%w: route=%s", errs.ErrRateLimited, route)
	}
	return nil
}

// List 用户收到的通知
func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ns, err := h.querySvc.ListByRecipient(ctx.Request.Context(), req.UserID, req.Offset, req.Limit)
	if err != nil {
		return handler.Abort(ctx, err)
	}
	return ginx.Result{
		Data: ListResp{
			Notifications: slice.Map(ns, func(_ int, src domain.Notification) Notification {
				return h.toNotificationVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseUint(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return handler.Abort(ctx, fmt.Errorf("%w: id", errs.ErrInvalidParameter))
	}
	n, err := h.querySvc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		return handler.Abort(ctx, err)
	}
	return ginx.Result{Data: h.toNotificationVO(n)}, nil
}

// MarkRead 通知 id 是 uint64，前端以字符串传递
func (h *Handler) MarkRead(ctx *ginx.Context, req MarkReadReq) (ginx.Result, error) {
	id, err := strconv.ParseUint(req.NotificationID, 10, 64)
	if err != nil {
		return handler.Abort(ctx, fmt.Errorf("%w: notificationId", errs.ErrInvalidParameter))
	}
	if err = h.querySvc.MarkRead(ctx.Request.Context(), id, req.UserID); err != nil {
		return handler.Abort(ctx, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SetPreference(ctx *ginx.Context, req SetPreferenceReq) (ginx.Result, error) {
	err := h.prefSvc.SetRouteEnabled(ctx.Request.Context(), domain.UserRoutePreference{
		UserID:  req.UserID,
		Route:   req.Route,
		Enabled: req.Enabled,
	})
	if err != nil {
		return handler.Abort(ctx, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListPreferences(ctx *ginx.Context, req ListPreferencesReq) (ginx.Result, error) {
	prefs, err := h.prefSvc.ListByUser(ctx.Request.Context(), req.UserID)
	if err != nil {
		return handler.Abort(ctx, err)
	}
	return ginx.Result{
		Data: ListPreferencesResp{
			Preferences: slice.Map(prefs, func(_ int, src domain.UserRoutePreference) Preference {
				return Preference{Route: src.Route, Enabled: src.Enabled}
			}),
		},
	}, nil
}

func (h *Handler) toNotificationVO(src domain.Notification) Notification {
	vo := Notification{
		ID:        src.IDString(),
		Title:     src.Title,
		Message:   src.Message,
		Route:     src.Route,
		CreatedAt: src.CreatedAt,
		DeliveryChannelsState: slice.Map(src.DeliveryChannelsState, func(_ int, st domain.ChannelState) ChannelState {
			return ChannelState{Channel: st.Channel.String(), Status: st.Status.String(), UpdatedAt: st.UpdatedAt}
		}),
	}
	if src.Recipient != nil {
		vo.RecipientID = src.Recipient.ID
	}
	return vo
}
