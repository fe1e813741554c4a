package preference

import (
	"context"
	"fmt"
	"strings"

	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/repository"
)

// Service 用户按路由退订
//
//go:generate mockgen -source=./service.go -destination=./mocks/preference.mock.go -package=preferencemocks Service
type Service interface {
	IsRouteEnabled(ctx context.Context, userID int64, route string) (bool, error)
	SetRouteEnabled(ctx context.Context, pref domain.UserRoutePreference) error
	ListByUser(ctx context.Context, userID int64) ([]domain.UserRoutePreference, error)
}

type service struct {
	repo repository.PreferenceRepository
}

func NewService(repo repository.PreferenceRepository) Service {
	return &service{repo: repo}
}

func (s *service) IsRouteEnabled(ctx context.Context, userID int64, route string) (bool, error) {
	return s.repo.IsRouteEnabled(ctx, userID, route)
}

func (s *service) SetRouteEnabled(ctx context.Context, pref domain.UserRoutePreference) error {
	if pref.UserID <= 0 {
		return fmt.Errorf("%w: userId = %d", errs.ErrInvalidParameter, pref.UserID)
	}
	if strings.TrimSpace(pref.Route) == "" {
		return fmt.Errorf("%w: route 为空", errs.ErrInvalidParameter)
	}
	return s.repo.SetRouteEnabled(ctx, pref)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]domain.UserRoutePreference, error) {
	return s.repo.FindByUser(ctx, userID)
}
