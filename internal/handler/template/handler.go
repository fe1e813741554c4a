package template

import (
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/handler"
	templatesvc "notification-dispatch/internal/service/template"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc templatesvc.Store
}

func NewHandler(svc templatesvc.Store) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/templates")
	g.GET("", ginx.B(h.GetTemplate))
	g.POST("", ginx.B(h.SaveTemplate))
}

// GetTemplate 按名称获取模板
func (h *Handler) GetTemplate(ctx *ginx.Context, req GetTemplateReq) (ginx.Result, error) {
	tpl, err := h.svc.Get(ctx.Request.Context(), req.Name)
	if err != nil {
		return handler.Abort(ctx, err)
	}
	return ginx.Result{Data: h.toTemplateVO(tpl)}, nil
}

// SaveTemplate 保存前会校验模板语法
func (h *Handler) SaveTemplate(ctx *ginx.Context, req SaveTemplateReq) (ginx.Result, error) {
	overrides := make(map[domain.Channel]string, len(req.ChannelOverrides))
	for c, text := range req.ChannelOverrides {
		overrides[domain.ParseChannel(c)] = text
	}
	saved, err := h.svc.Save(ctx.Request.Context(), domain.NotificationTemplate{
		Name:                  req.Name,
		Subject:               req.Subject,
		CommonContentTemplate: req.CommonContentTemplate,
		ChannelOverrides:      overrides,
	})
	if err != nil {
		return handler.Abort(ctx, err)
	}
	return ginx.Result{Data: h.toTemplateVO(saved)}, nil
}

func (h *Handler) toTemplateVO(src domain.NotificationTemplate) NotificationTemplate {
	overrides := make(map[string]string, len(src.ChannelOverrides))
	for c, text := range src.ChannelOverrides {
		overrides[c.String()] = text
	}
	return NotificationTemplate{
		ID:                    src.ID,
		Name:                  src.Name,
		Subject:               src.Subject,
		CommonContentTemplate: src.CommonContentTemplate,
		ChannelOverrides:      overrides,
		Ctime:                 src.Ctime,
		Utime:                 src.Utime,
	}
}
