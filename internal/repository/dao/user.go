package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"notification-dispatch/internal/errs"
)

type userDAO struct {
	db *egorm.Component
}

func NewUserDAO(db *egorm.Component) UserDAO {
	return &userDAO{db: db}
}

func (dao *userDAO) FindByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, fmt.Errorf("%w: id=%d", errs.ErrUserNotFound, id)
		}
		return User{}, err
	}
	return u, nil
}

func (dao *userDAO) FindByIDs(ctx context.Context, ids []int64) ([]User, error) {
	if len(ids) == 0 {
		return []User{}, nil
	}
	var users []User
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (dao *userDAO) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := dao.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (dao *userDAO) Create(ctx context.Context, u User) (User, error) {
	now := time.Now().UnixMilli()
	u.Ctime, u.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&u).Error
	return u, err
}

// User 接收人
type User struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:VARCHAR(128);NOT NULL"`
	Email       string `gorm:"type:VARCHAR(256)"`
	PhoneNumber string `gorm:"type:VARCHAR(32)"`
	DeviceToken string `gorm:"type:VARCHAR(256);comment:'移动推送设备标识'"`
	Ctime       int64
	Utime       int64
}

func (u *User) TableName() string {
	return "user"
}
