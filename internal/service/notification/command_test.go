package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	repomocks "notification-dispatch/internal/repository/mocks"
	routemocks "notification-dispatch/internal/service/route/mocks"
	"notification-dispatch/internal/service/sender"
	sendermocks "notification-dispatch/internal/service/sender/mocks"
	templatemocks "notification-dispatch/internal/service/template/mocks"
)

func TestCommandServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CommandServiceTestSuite))
}

type CommandServiceTestSuite struct {
	suite.Suite
}

type commandMocks struct {
	lookup    *routemocks.MockLookup
	resolver  *routemocks.MockResolver
	templates *templatemocks.MockStore
	repo      *repomocks.MockNotificationRepository
	sender    *sendermocks.MockNotificationSender
}

func (s *CommandServiceTestSuite) newService(ctrl *gomock.Controller) (CommandService, commandMocks) {
	m := commandMocks{
		lookup:    routemocks.NewMockLookup(ctrl),
		resolver:  routemocks.NewMockResolver(ctrl),
		templates: templatemocks.NewMockStore(ctrl),
		repo:      repomocks.NewMockNotificationRepository(ctrl),
		sender:    sendermocks.NewMockNotificationSender(ctrl),
	}
	return NewCommandService(m.lookup, m.templates, newTestMapper(), m.repo, m.sender), m
}

func (s *CommandServiceTestSuite) TestProcess() {
	t := s.T()

	req := domain.NotificationRequest{
		Route:      "OrderCreated",
		Channels:   []domain.Channel{domain.ChannelEmail, domain.ChannelSMS},
		Parameters: []byte(`{"customerId":1,"orderNumber":"ORD-1"}`),
	}
	users := []domain.User{
		{ID: 1, Name: "Ann", Email: "ann@example.com"},
		{ID: 2, Name: "Bob"},
	}

	testCases := []struct {
		name    string
		req     domain.NotificationRequest
		mock    func(m commandMocks)
		assert  func(t *testing.T, summary domain.DispatchSummary)
		wantErr error
	}{
		{
			name: "每个接收人一条通知",
			req:  req,
			mock: func(m commandMocks) {
				m.lookup.EXPECT().ResolverFor("OrderCreated").Return(m.resolver, nil)
				m.lookup.EXPECT().ConfigFor("OrderCreated").Return(domain.RouteConfig{Route: "OrderCreated", TemplateName: "order-created"}, nil)
				m.templates.EXPECT().Get(gomock.Any(), "order-created").Return(orderTemplate, nil)
				m.resolver.EXPECT().ResolveFullData(gomock.Any(), req).Return(orderData, nil)
				m.resolver.EXPECT().ResolveRecipients(gomock.Any(), req).Return(users, nil)
				m.repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ns []domain.Notification) error {
						if len(ns) != 2 {
							return errors.New("期望两条通知")
						}
						return nil
					})
				m.sender.EXPECT().BatchSend(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ns []domain.Notification) []sender.SendResult {
						results := make([]sender.SendResult, 0, len(ns))
						for i, n := range ns {
							var err error
							// 一条发送失败不影响返回
							if i == 1 {
								err = errors.New("mock error")
							}
							results = append(results, sender.SendResult{Notification: n, Err: err})
						}
						return results
					})
			},
			assert: func(t *testing.T, summary domain.DispatchSummary) {
				assert.Equal(t, "订单 ORD-1", summary.Title)
				assert.Equal(t, "OrderCreated", summary.Route)
				assert.Len(t, summary.CreatedNotificationIDs, 2)
				assert.Equal(t, []domain.UserSummary{users[0].Summary(), users[1].Summary()}, summary.Recipients)
			},
		},
		{
			name: "没有接收人不持久化",
			req:  req,
			mock: func(m commandMocks) {
				m.lookup.EXPECT().ResolverFor("OrderCreated").Return(m.resolver, nil)
				m.lookup.EXPECT().ConfigFor("OrderCreated").Return(domain.RouteConfig{TemplateName: "order-created"}, nil)
				m.templates.EXPECT().Get(gomock.Any(), "order-created").Return(orderTemplate, nil)
				m.resolver.EXPECT().ResolveFullData(gomock.Any(), req).Return(orderData, nil)
				m.resolver.EXPECT().ResolveRecipients(gomock.Any(), req).Return(nil, nil)
			},
			assert: func(t *testing.T, summary domain.DispatchSummary) {
				assert.Empty(t, summary.CreatedNotificationIDs)
				assert.Equal(t, "No recipients resolved for route OrderCreated", summary.StatusMessage)
			},
		},
		{
			name: "路由未注册",
			req:  domain.NotificationRequest{Route: "Unknown"},
			mock: func(m commandMocks) {
				m.lookup.EXPECT().ResolverFor("Unknown").Return(nil, errs.ErrRouteNotFound)
			},
			wantErr: errs.ErrRouteNotFound,
		},
		{
			name: "模板不存在",
			req:  req,
			mock: func(m commandMocks) {
				m.lookup.EXPECT().ResolverFor("OrderCreated").Return(m.resolver, nil)
				m.lookup.EXPECT().ConfigFor("OrderCreated").Return(domain.RouteConfig{TemplateName: "missing"}, nil)
				m.templates.EXPECT().Get(gomock.Any(), "missing").Return(domain.NotificationTemplate{}, errs.ErrTemplateNotFound)
			},
			wantErr: errs.ErrTemplateNotFound,
		},
		{
			name: "参数缺失",
			req:  req,
			mock: func(m commandMocks) {
				m.lookup.EXPECT().ResolverFor("OrderCreated").Return(m.resolver, nil)
				m.lookup.EXPECT().ConfigFor("OrderCreated").Return(domain.RouteConfig{TemplateName: "order-created"}, nil)
				m.templates.EXPECT().Get(gomock.Any(), "order-created").Return(orderTemplate, nil)
				m.resolver.EXPECT().ResolveFullData(gomock.Any(), req).Return(nil, errs.ErrMissingRequiredParameter)
			},
			wantErr: errs.ErrMissingRequiredParameter,
		},
		{
			name:    "路由为空",
			req:     domain.NotificationRequest{},
			mock:    func(commandMocks) {},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "保存失败不发送",
			req:  req,
			mock: func(m commandMocks) {
				m.lookup.EXPECT().ResolverFor("OrderCreated").Return(m.resolver, nil)
				m.lookup.EXPECT().ConfigFor("OrderCreated").Return(domain.RouteConfig{TemplateName: "order-created"}, nil)
				m.templates.EXPECT().Get(gomock.Any(), "order-created").Return(orderTemplate, nil)
				m.resolver.EXPECT().ResolveFullData(gomock.Any(), req).Return(orderData, nil)
				m.resolver.EXPECT().ResolveRecipients(gomock.Any(), req).Return(users, nil)
				m.repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(errs.ErrNotificationDuplicate)
			},
			wantErr: errs.ErrNotificationDuplicate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := s.newService(ctrl)
			tc.mock(m)

			summary, err := svc.Process(t.Context(), tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.assert(t, summary)
		})
	}
}
