package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/handler"
	limitmocks "notification-dispatch/internal/pkg/ratelimit/mocks"
	notificationmocks "notification-dispatch/internal/service/notification/mocks"
	preferencemocks "notification-dispatch/internal/service/preference/mocks"
)

func TestHandlerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
}

type handlerMocks struct {
	cmd     *notificationmocks.MockCommandService
	query   *notificationmocks.MockQueryService
	pref    *preferencemocks.MockService
	limiter *limitmocks.MockLimiter
}

func (s *HandlerTestSuite) newServer(ctrl *gomock.Controller) (*gin.Engine, handlerMocks) {
	m := handlerMocks{
		cmd:     notificationmocks.NewMockCommandService(ctrl),
		query:   notificationmocks.NewMockQueryService(ctrl),
		pref:    preferencemocks.NewMockService(ctrl),
		limiter: limitmocks.NewMockLimiter(ctrl),
	}
	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewHandler(m.cmd, m.query, m.pref, m.limiter).PublicRoutes(server)
	return server, m
}

func (s *HandlerTestSuite) do(server *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) TestDispatch() {
	t := s.T()

	body := DispatchReq{
		Route:      "OrderCreated",
		Channels:   []string{"email", "sms"},
		Parameters: json.RawMessage(`{"customerId":1,"orderNumber":"ORD-1"}`),
	}

	testCases := []struct {
		name       string
		mock       func(m handlerMocks)
		wantStatus int
		wantCode   int
	}{
		{
			name: "分发成功",
			mock: func(m handlerMocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), "dispatch:OrderCreated").Return(false, nil)
				m.cmd.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.NotificationRequest) (domain.DispatchSummary, error) {
						assert.Equal(t, []domain.Channel{domain.ChannelEmail, domain.ChannelSMS}, req.Channels)
						return domain.DispatchSummary{
							Route:                  "OrderCreated",
							Recipients:             []domain.UserSummary{{ID: 1, Name: "Ann"}},
							CreatedNotificationIDs: []string{"1"},
							StatusMessage:          "Dispatched 1 notification(s) for route OrderCreated",
						}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "被限流",
			mock: func(m handlerMocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), "dispatch:OrderCreated").Return(true, nil)
			},
			wantStatus: http.StatusTooManyRequests,
			wantCode:   handler.CodeRateLimited,
		},
		{
			name: "限流器异常放行",
			mock: func(m handlerMocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(false, errors.New("mock error"))
				m.cmd.EXPECT().Process(gomock.Any(), gomock.Any()).Return(domain.DispatchSummary{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "路由不存在",
			mock: func(m handlerMocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(false, nil)
				m.cmd.EXPECT().Process(gomock.Any(), gomock.Any()).Return(domain.DispatchSummary{}, errs.ErrRouteNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   handler.CodeNotFound,
		},
		{
			name: "参数缺失",
			mock: func(m handlerMocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(false, nil)
				m.cmd.EXPECT().Process(gomock.Any(), gomock.Any()).Return(domain.DispatchSummary{}, errs.ErrMissingRequiredParameter)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   handler.CodeBadRequest,
		},
		{
			name: "系统错误",
			mock: func(m handlerMocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(false, nil)
				m.cmd.EXPECT().Process(gomock.Any(), gomock.Any()).Return(domain.DispatchSummary{}, errors.New("mock error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   handler.CodeSystemError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server, m := s.newServer(ctrl)
			tc.mock(m)

			recorder := s.do(server, http.MethodPost, "/notifications/dispatch", body)
			require.Equal(t, tc.wantStatus, recorder.Code)

			var res ginx.Result
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
}

func (s *HandlerTestSuite) TestMarkRead() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server, m := s.newServer(ctrl)

	m.query.EXPECT().MarkRead(gomock.Any(), uint64(42), int64(7)).Return(nil)
	recorder := s.do(server, http.MethodPost, "/notifications/read", MarkReadReq{NotificationID: "42", UserID: 7})
	assert.Equal(t, http.StatusOK, recorder.Code)

	m.query.EXPECT().MarkRead(gomock.Any(), uint64(42), int64(7)).Return(errs.ErrInvalidStatusTransition)
	recorder = s.do(server, http.MethodPost, "/notifications/read", MarkReadReq{NotificationID: "42", UserID: 7})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = s.do(server, http.MethodPost, "/notifications/read", MarkReadReq{NotificationID: "abc", UserID: 7})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestListAndDetail() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server, m := s.newServer(ctrl)

	n := domain.Notification{
		ID:        42,
		Title:     "t",
		Route:     "OrderCreated",
		Recipient: &domain.User{ID: 7},
		DeliveryChannelsState: []domain.ChannelState{
			{Channel: domain.ChannelEmail, Status: domain.DeliveryStatusSent},
		},
	}
	m.query.EXPECT().ListByRecipient(gomock.Any(), int64(7), 0, 10).Return([]domain.Notification{n}, nil)
	recorder := s.do(server, http.MethodGet, "/notifications?userId=7&offset=0&limit=10", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var res struct {
		Data ListResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	require.Len(t, res.Data.Notifications, 1)
	assert.Equal(t, "42", res.Data.Notifications[0].ID)
	assert.Equal(t, int64(7), res.Data.Notifications[0].RecipientID)
	assert.Equal(t, "SENT", res.Data.Notifications[0].DeliveryChannelsState[0].Status)

	m.query.EXPECT().GetByID(gomock.Any(), uint64(43)).Return(domain.Notification{}, errs.ErrNotificationNotFound)
	recorder = s.do(server, http.MethodGet, "/notifications/43", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestPreferences() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server, m := s.newServer(ctrl)

	m.pref.EXPECT().SetRouteEnabled(gomock.Any(), domain.UserRoutePreference{UserID: 7, Route: "Announcement"}).Return(nil)
	recorder := s.do(server, http.MethodPost, "/preferences", SetPreferenceReq{UserID: 7, Route: "Announcement"})
	assert.Equal(t, http.StatusOK, recorder.Code)

	m.pref.EXPECT().ListByUser(gomock.Any(), int64(7)).Return([]domain.UserRoutePreference{
		{UserID: 7, Route: "Announcement"},
	}, nil)
	recorder = s.do(server, http.MethodGet, "/preferences?userId=7", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var res struct {
		Data ListPreferencesResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, []Preference{{Route: "Announcement"}}, res.Data.Preferences)
}
