package handler

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"notification-dispatch/internal/errs"
)

const (
	CodeBadRequest  = 400001
	CodeNotFound    = 404001
	CodeConflict    = 409001
	CodeRateLimited = 429001
	CodeSystemError = 500001

	msgSystemError = "系统错误"
	msgRateLimited = "请求过于频繁"
)

// ErrorResult 把业务错误映射到 HTTP 状态码和返回体
func ErrorResult(err error) (int, ginx.Result) {
	switch {
	case errors.Is(err, errs.ErrRouteNotFound),
		errors.Is(err, errs.ErrTemplateNotFound),
		errors.Is(err, errs.ErrNotificationNotFound),
		errors.Is(err, errs.ErrUserNotFound):
		return http.StatusNotFound, ginx.Result{Code: CodeNotFound, Msg: err.Error()}
	case errors.Is(err, errs.ErrMissingRequiredParameter),
		errors.Is(err, errs.ErrValidationFailure),
		errors.Is(err, errs.ErrChannelNotSupported),
		errors.Is(err, errs.ErrInvalidParameter),
		errors.Is(err, errs.ErrTemplateRender):
		return http.StatusBadRequest, ginx.Result{Code: CodeBadRequest, Msg: err.Error()}
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		return http.StatusConflict, ginx.Result{Code: CodeConflict, Msg: err.Error()}
	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests, ginx.Result{Code: CodeRateLimited, Msg: msgRateLimited}
	default:
		return http.StatusInternalServerError, ginx.Result{Code: CodeSystemError, Msg: msgSystemError}
	}
}

// Abort 自己写响应，ginx 不再处理
func Abort(ctx *ginx.Context, err error) (ginx.Result, error) {
	status, res := ErrorResult(err)
	ctx.JSON(status, res)
	return res, ginx.ErrNoResponse
}
