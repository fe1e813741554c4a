package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/service/route"
)

var _ route.Resolver = (*OrderCreatedResolver)(nil)

type orderCreatedParams struct {
	CustomerID  int64      `json:"customerId"`
	OrderNumber string     `json:"orderNumber"`
	OrderTotal  float64    `json:"orderTotal"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

func (p orderCreatedParams) validate() error {
	if p.CustomerID <= 0 {
		return fmt.Errorf("%w: customerId", errs.ErrMissingRequiredParameter)
	}
	if strings.TrimSpace(p.OrderNumber) == "" {
		return fmt.Errorf("%w: orderNumber", errs.ErrMissingRequiredParameter)
	}
	return nil
}

// OrderCreatedResolver 下单成功通知下单人
type OrderCreatedResolver struct {
	users repository.UserRepository
	now   Clock
}

func NewOrderCreatedResolver(users repository.UserRepository) *OrderCreatedResolver {
	return &OrderCreatedResolver{users: users, now: time.Now}
}

func (r *OrderCreatedResolver) Route() string {
	return RouteOrderCreated
}

func (r *OrderCreatedResolver) params(req domain.NotificationRequest) (orderCreatedParams, error) {
	var p orderCreatedParams
	if err := req.DecodeParameters(&p); err != nil {
		return orderCreatedParams{}, err
	}
	return p, p.validate()
}

func (r *OrderCreatedResolver) ResolveRecipients(ctx context.Context, req domain.NotificationRequest) ([]domain.User, error) {
	p, err := r.params(req)
	if err != nil {
		return nil, err
	}
	u, err := r.users.FindByID(ctx, p.CustomerID)
	if err != nil {
		return nil, err
	}
	return []domain.User{u}, nil
}

func (r *OrderCreatedResolver) ResolveFullData(ctx context.Context, req domain.NotificationRequest) (any, error) {
	p, err := r.params(req)
	if err != nil {
		return nil, err
	}
	u, err := r.users.FindByID(ctx, p.CustomerID)
	if err != nil {
		return nil, err
	}
	createdAt := r.now()
	if p.CreatedAt != nil {
		createdAt = *p.CreatedAt
	}
	return map[string]any{
		"CustomerName": u.Name,
		"OrderNumber":  p.OrderNumber,
		"OrderTotal":   p.OrderTotal,
		"CreatedAt":    createdAt,
	}, nil
}
