package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"notification-dispatch/internal/errs"
)

type templateDAO struct {
	db *egorm.Component
}

func NewTemplateDAO(db *egorm.Component) TemplateDAO {
	return &templateDAO{db: db}
}

func (dao *templateDAO) GetByName(ctx context.Context, name string) (Template, error) {
	var tpl Template
	err := dao.db.WithContext(ctx).Where("name = ?", name).First(&tpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Template{}, fmt.Errorf("%w: name=%s", errs.ErrTemplateNotFound, name)
		}
		return Template{}, err
	}
	return tpl, nil
}

func (dao *templateDAO) Upsert(ctx context.Context, tpl Template) (Template, error) {
	now := time.Now().UnixMilli()
	tpl.Ctime, tpl.Utime = now, now
	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"subject", "content", "channel_overrides", "description", "utime",
		}),
	}).Create(&tpl).Error
	if err != nil {
		return Template{}, err
	}
	return tpl, nil
}

func (dao *templateDAO) FindAll(ctx context.Context) ([]Template, error) {
	var tpls []Template
	err := dao.db.WithContext(ctx).Order("id ASC").Find(&tpls).Error
	return tpls, err
}

// Template 通知模板表
type Template struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:VARCHAR(128);NOT NULL;uniqueIndex:uk_name;comment:'模板名称'"`
	Subject string `gorm:"type:VARCHAR(512);comment:'主题模板'"`
	Content string `gorm:"type:TEXT;comment:'通用正文模板'"`
	// ChannelOverrides 渠道 -> 覆盖正文模板
	ChannelOverrides sqlx.JsonColumn[map[string]string] `gorm:"type:JSON;comment:'按渠道覆盖的正文模板'"`
	Description      string                             `gorm:"type:VARCHAR(512)"`
	Ctime            int64
	Utime            int64
}

func (t *Template) TableName() string {
	return "notification_template"
}
