package resolver

import (
	"context"
	"fmt"
	"time"

	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/service/route"
)

var _ route.Resolver = (*PasswordChangedResolver)(nil)

type passwordChangedParams struct {
	UserID    int64      `json:"userId"`
	ChangedAt *time.Time `json:"changedAt,omitempty"`
}

// PasswordChangedResolver 密码修改后提醒本人
type PasswordChangedResolver struct {
	users repository.UserRepository
	now   Clock
}

func NewPasswordChangedResolver(users repository.UserRepository) *PasswordChangedResolver {
	return &PasswordChangedResolver{users: users, now: time.Now}
}

func (r *PasswordChangedResolver) Route() string {
	return RoutePasswordChanged
}

func (r *PasswordChangedResolver) params(req domain.NotificationRequest) (passwordChangedParams, error) {
	var p passwordChangedParams
	if err := req.DecodeParameters(&p); err != nil {
		return passwordChangedParams{}, err
	}
	if p.UserID <= 0 {
		return passwordChangedParams{}, fmt.Errorf("%w: userId", errs.ErrMissingRequiredParameter)
	}
	return p, nil
}

func (r *PasswordChangedResolver) ResolveRecipients(ctx context.Context, req domain.NotificationRequest) ([]domain.User, error) {
	p, err := r.params(req)
	if err != nil {
		return nil, err
	}
	u, err := r.users.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return []domain.User{u}, nil
}

func (r *PasswordChangedResolver) ResolveFullData(ctx context.Context, req domain.NotificationRequest) (any, error) {
	p, err := r.params(req)
	if err != nil {
		return nil, err
	}
	u, err := r.users.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	changedAt := r.now()
	if p.ChangedAt != nil {
		changedAt = *p.ChangedAt
	}
	return map[string]any{
		"UserName":  u.Name,
		"ChangedAt": changedAt,
	}, nil
}
