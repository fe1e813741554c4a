package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository/cache"
	"notification-dispatch/internal/repository/dao"
)

type preferenceRepository struct {
	dao    dao.PreferenceDAO
	cache  cache.PreferenceCache
	logger *elog.Component
}

func NewPreferenceRepository(d dao.PreferenceDAO, c cache.PreferenceCache) PreferenceRepository {
	return &preferenceRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *preferenceRepository) IsRouteEnabled(ctx context.Context, userID int64, route string) (bool, error) {
	pref, err := repo.cache.Get(ctx, userID, route)
	if err == nil {
		return pref.Enabled, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		repo.logger.Warn("从缓存获取用户偏好失败",
			elog.Any("userId", userID),
			elog.String("route", route),
			elog.FieldErr(err),
		)
	}

	entity, found, err := repo.dao.Find(ctx, userID, route)
	if err != nil {
		return false, err
	}
	pref = domain.UserRoutePreference{UserID: userID, Route: route, Enabled: true}
	if found {
		pref.Enabled = entity.Enabled
	}
	if err1 := repo.cache.Set(ctx, pref); err1 != nil {
		repo.logger.Warn("回写用户偏好缓存失败",
			elog.Any("userId", userID),
			elog.String("route", route),
			elog.FieldErr(err1),
		)
	}
	return pref.Enabled, nil
}

func (repo *preferenceRepository) SetRouteEnabled(ctx context.Context, pref domain.UserRoutePreference) error {
	err := repo.dao.Upsert(ctx, dao.UserRoutePreference{
		UserID:  pref.UserID,
		Route:   pref.Route,
		Enabled: pref.Enabled,
	})
	if err != nil {
		return err
	}
	return repo.cache.Del(ctx, pref.UserID, pref.Route)
}

func (repo *preferenceRepository) FindByUser(ctx context.Context, userID int64) ([]domain.UserRoutePreference, error) {
	prefs, err := repo.dao.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return slice.Map(prefs, func(_ int, src dao.UserRoutePreference) domain.UserRoutePreference {
		return domain.UserRoutePreference{
			UserID:  src.UserID,
			Route:   src.Route,
			Enabled: src.Enabled,
		}
	}), nil
}
