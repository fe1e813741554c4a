package client

import (
	"context"
	"errors"
)

const OK = "OK"

var (
	ErrInvalidParameter = errors.New("参数错误")
	ErrSendFailed       = errors.New("短信发送失败")
)

// Client 短信云服务
//
//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=smsmocks
type Client interface {
	Send(ctx context.Context, req SendReq) (SendResp, error)
}

type SendReq struct {
	PhoneNumbers []string
	SignName     string
	TemplateID   string
	// TemplateParam 模板参数，按名称填充
	TemplateParam map[string]string
}

type SendResp struct {
	RequestID    string
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}
