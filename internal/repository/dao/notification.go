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

const (
	statusPending = "PENDING"
	batchSize     = 100
)

type notificationDAO struct {
	db *egorm.Component
}

// NewNotificationDAO 创建通知DAO实例
func NewNotificationDAO(db *egorm.Component) NotificationDAO {
	return &notificationDAO{
		db: db,
	}
}

func (dao *notificationDAO) BatchCreate(ctx context.Context, notifications []Notification, states []NotificationChannelState) error {
	if len(notifications) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range notifications {
		if notifications[i].Ctime == 0 {
			notifications[i].Ctime = now
		}
		notifications[i].Utime = now
	}
	for i := range states {
		states[i].Ctime, states[i].Utime = now, now
	}
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(notifications, batchSize).Error; err != nil {
			if isUniqueConstraintError(err) {
				return fmt.Errorf("%w", errs.ErrNotificationDuplicate)
			}
			return err
		}
		if len(states) == 0 {
			return nil
		}
		return tx.CreateInBatches(states, batchSize).Error
	})
}

func (dao *notificationDAO) BatchUpdateStates(ctx context.Context, states []NotificationChannelState) error {
	if len(states) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		touched := make(map[uint64]struct{}, len(states))
		for _, st := range states {
			utime := st.Utime
			if utime == 0 {
				utime = now
			}
			// 已经是终态的渠道不会被覆盖
			err := tx.Model(&NotificationChannelState{}).
				Where("notification_id = ? AND channel = ? AND status = ?", st.NotificationID, st.Channel, statusPending).
				Updates(map[string]any{
					"status": st.Status,
					"utime":  utime,
				}).Error
			if err != nil {
				return err
			}
			touched[st.NotificationID] = struct{}{}
		}
		ids := make([]uint64, 0, len(touched))
		for id := range touched {
			ids = append(ids, id)
		}
		return tx.Model(&Notification{}).
			Where("id IN ?", ids).
			Update("utime", now).Error
	})
}

func (dao *notificationDAO) CASStatus(ctx context.Context, notificationID uint64, channel, from, to string) error {
	now := time.Now().UnixMilli()
	res := dao.db.WithContext(ctx).Model(&NotificationChannelState{}).
		Where("notification_id = ? AND channel = ? AND status = ?", notificationID, channel, from).
		Updates(map[string]any{
			"status": to,
			"utime":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return fmt.Errorf("%w: id=%d, channel=%s, %s -> %s",
			errs.ErrInvalidStatusTransition, notificationID, channel, from, to)
	}
	return nil
}

// GetByID 根据ID查询通知
func (dao *notificationDAO) GetByID(ctx context.Context, id uint64) (Notification, error) {
	var notification Notification
	err := dao.db.WithContext(ctx).First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Notification{}, fmt.Errorf("%w: id=%d", errs.ErrNotificationNotFound, id)
		}
		return Notification{}, err
	}
	return notification, nil
}

func (dao *notificationDAO) FindByRecipient(ctx context.Context, recipientID int64, offset, limit int) ([]Notification, error) {
	var notifications []Notification
	err := dao.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("ctime DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("查询通知列表失败: %w", err)
	}
	return notifications, nil
}

func (dao *notificationDAO) FindStates(ctx context.Context, notificationIDs []uint64) (map[uint64][]NotificationChannelState, error) {
	if len(notificationIDs) == 0 {
		return map[uint64][]NotificationChannelState{}, nil
	}
	var states []NotificationChannelState
	err := dao.db.WithContext(ctx).
		Where("notification_id IN ?", notificationIDs).
		Order("id ASC").
		Find(&states).Error
	if err != nil {
		return nil, err
	}
	res := make(map[uint64][]NotificationChannelState, len(notificationIDs))
	for _, st := range states {
		res[st.NotificationID] = append(res[st.NotificationID], st)
	}
	return res, nil
}

// Notification 通知记录表，一个接收人一条
type Notification struct {
	ID           uint64 `gorm:"primaryKey;comment:'雪花算法ID'"`
	Title        string `gorm:"type:VARCHAR(512);NOT NULL;comment:'标题'"`
	Message      string `gorm:"type:TEXT;comment:'通用模板渲染出来的正文'"`
	Route        string `gorm:"type:VARCHAR(128);NOT NULL;index:idx_route;comment:'路由'"`
	RecipientID  int64  `gorm:"type:BIGINT;NOT NULL;index:idx_recipient_ctime,priority:1;comment:'接收人ID'"`
	TemplateName string `gorm:"type:VARCHAR(128);comment:'模板名称'"`
	Metadata     string `gorm:"type:TEXT;comment:'附加信息，JSON数组'"`
	Ctime        int64  `gorm:"index:idx_recipient_ctime,priority:2"`
	Utime        int64
}

func (n *Notification) TableName() string {
	return "notification"
}

// NotificationChannelState 通知在每个渠道上的投递状态
type NotificationChannelState struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	NotificationID uint64 `gorm:"type:BIGINT UNSIGNED;NOT NULL;uniqueIndex:uk_notification_channel,priority:1"`
	Channel        string `gorm:"type:VARCHAR(32);NOT NULL;uniqueIndex:uk_notification_channel,priority:2"`
	Status         string `gorm:"type:ENUM('PENDING','SKIPPED','SENT','FAILED','READ');DEFAULT:'PENDING';comment:'投递状态'"`
	Ctime          int64
	Utime          int64
}

func (s *NotificationChannelState) TableName() string {
	return "notification_channel_state"
}
