package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	sms "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/sms/v20210111"
)

var _ Client = (*TencentCloudSMS)(nil)

// TencentCloudSMS 腾讯云短信实现
type TencentCloudSMS struct {
	client *sms.Client
	appID  string
	// paramOrder 腾讯云模板参数是有序数组，按这个顺序从 TemplateParam 里取值
	paramOrder []string
}

func (c *TencentCloudSMS) Send(ctx context.Context, req SendReq) (SendResp, error) {
	if len(req.PhoneNumbers) == 0 {
		return SendResp{}, fmt.Errorf("%w: %v", ErrInvalidParameter, "手机号码不能为空")
	}
	request := sms.NewSendSmsRequest()
	request.SmsSdkAppId = common.StringPtr(c.appID)
	request.SignName = common.StringPtr(req.SignName)
	request.TemplateId = common.StringPtr(req.TemplateID)
	request.PhoneNumberSet = common.StringPtrs(req.PhoneNumbers)
	params := make([]string, 0, len(c.paramOrder))
	for _, name := range c.paramOrder {
		params = append(params, req.TemplateParam[name])
	}
	request.TemplateParamSet = common.StringPtrs(params)

	response, err := c.client.SendSmsWithContext(ctx, request)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	if response.Response == nil {
		return SendResp{}, fmt.Errorf("%w: %v", ErrSendFailed, "响应异常")
	}

	result := SendResp{
		PhoneNumbers: make(map[string]SendRespStatus, len(response.Response.SendStatusSet)),
	}
	if response.Response.RequestId != nil {
		result.RequestID = *response.Response.RequestId
	}
	for _, status := range response.Response.SendStatusSet {
		if status == nil || status.PhoneNumber == nil {
			continue
		}
		st := SendRespStatus{}
		if status.Code != nil {
			// 腾讯云成功码是 Ok，统一成 OK
			st.Code = strings.ToUpper(*status.Code)
		}
		if status.Message != nil {
			st.Message = *status.Message
		}
		result.PhoneNumbers[strings.TrimPrefix(*status.PhoneNumber, "+86")] = st
	}
	return result, nil
}

// NewTencentCloudSMS 创建腾讯云短信实例
func NewTencentCloudSMS(regionID, secretID, secretKey, appID string, paramOrder []string) (*TencentCloudSMS, error) {
	client, err := sms.NewClient(common.NewCredential(secretID, secretKey), regionID, profile.NewClientProfile())
	if err != nil {
		return nil, err
	}
	return &TencentCloudSMS{
		client:     client,
		appID:      appID,
		paramOrder: paramOrder,
	}, nil
}
