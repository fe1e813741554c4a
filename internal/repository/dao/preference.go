package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type preferenceDAO struct {
	db *egorm.Component
}

func NewPreferenceDAO(db *egorm.Component) PreferenceDAO {
	return &preferenceDAO{db: db}
}

func (dao *preferenceDAO) Find(ctx context.Context, userID int64, route string) (UserRoutePreference, bool, error) {
	var prefs []UserRoutePreference
	err := dao.db.WithContext(ctx).
		Where("user_id = ? AND route = ?", userID, route).
		Limit(1).
		Find(&prefs).Error
	if err != nil {
		return UserRoutePreference{}, false, err
	}
	if len(prefs) == 0 {
		return UserRoutePreference{}, false, nil
	}
	return prefs[0], true, nil
}

func (dao *preferenceDAO) FindByUser(ctx context.Context, userID int64) ([]UserRoutePreference, error) {
	var prefs []UserRoutePreference
	err := dao.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("route ASC").
		Find(&prefs).Error
	return prefs, err
}

func (dao *preferenceDAO) Upsert(ctx context.Context, pref UserRoutePreference) error {
	now := time.Now().UnixMilli()
	pref.Ctime, pref.Utime = now, now
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "route"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled", "utime"}),
	}).Create(&pref).Error
}

// UserRoutePreference 用户对路由的订阅开关，没有记录视为开启
type UserRoutePreference struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	UserID  int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uk_user_route,priority:1"`
	Route   string `gorm:"type:VARCHAR(128);NOT NULL;uniqueIndex:uk_user_route,priority:2"`
	Enabled bool   `gorm:"NOT NULL"`
	Ctime   int64
	Utime   int64
}

func (p *UserRoutePreference) TableName() string {
	return "user_route_preference"
}
