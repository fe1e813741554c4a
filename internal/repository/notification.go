package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository/dao"
)

// notificationRepository 通知仓储实现
type notificationRepository struct {
	dao     dao.NotificationDAO
	userDAO dao.UserDAO
	logger  *elog.Component
}

// NewNotificationRepository 创建通知仓储实例
func NewNotificationRepository(d dao.NotificationDAO, userDAO dao.UserDAO) NotificationRepository {
	return &notificationRepository{
		dao:     d,
		userDAO: userDAO,
		logger:  elog.DefaultLogger,
	}
}

func (repo *notificationRepository) SaveBatch(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	entities := make([]dao.Notification, 0, len(notifications))
	states := make([]dao.NotificationChannelState, 0, len(notifications)*len(domain.DefaultChannels()))
	for i := range notifications {
		entity, err := repo.toEntity(notifications[i])
		if err != nil {
			return err
		}
		entities = append(entities, entity)
		states = append(states, repo.toStateEntities(notifications[i])...)
	}
	return repo.dao.BatchCreate(ctx, entities, states)
}

func (repo *notificationRepository) Update(ctx context.Context, notification domain.Notification) error {
	return repo.UpdateBatch(ctx, []domain.Notification{notification})
}

func (repo *notificationRepository) UpdateBatch(ctx context.Context, notifications []domain.Notification) error {
	var states []dao.NotificationChannelState
	for i := range notifications {
		for _, st := range repo.toStateEntities(notifications[i]) {
			// PENDING 不需要写回
			if st.Status == domain.DeliveryStatusPending.String() {
				continue
			}
			states = append(states, st)
		}
	}
	return repo.dao.BatchUpdateStates(ctx, states)
}

func (repo *notificationRepository) GetByID(ctx context.Context, id uint64) (domain.Notification, error) {
	entity, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Notification{}, err
	}
	res, err := repo.toDomains(ctx, []dao.Notification{entity})
	if err != nil {
		return domain.Notification{}, err
	}
	const first = 0
	return res[first], nil
}

func (repo *notificationRepository) FindByRecipient(ctx context.Context, recipientID int64, offset, limit int) ([]domain.Notification, error) {
	entities, err := repo.dao.FindByRecipient(ctx, recipientID, offset, limit)
	if err != nil {
		return nil, err
	}
	return repo.toDomains(ctx, entities)
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id uint64, channel domain.Channel) error {
	return repo.dao.CASStatus(ctx, id, channel.String(),
		domain.DeliveryStatusSent.String(), domain.DeliveryStatusRead.String())
}

func (repo *notificationRepository) toDomains(ctx context.Context, entities []dao.Notification) ([]domain.Notification, error) {
	if len(entities) == 0 {
		return []domain.Notification{}, nil
	}
	ids := slice.Map(entities, func(_ int, src dao.Notification) uint64 { return src.ID })
	states, err := repo.dao.FindStates(ctx, ids)
	if err != nil {
		return nil, err
	}
	recipientIDs := slice.Map(entities, func(_ int, src dao.Notification) int64 { return src.RecipientID })
	users, err := repo.userDAO.FindByIDs(ctx, recipientIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[int64]dao.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	return slice.Map(entities, func(_ int, src dao.Notification) domain.Notification {
		recipient := domain.User{ID: src.RecipientID}
		if u, ok := userMap[src.RecipientID]; ok {
			recipient = toUserDomain(u)
		}
		return repo.toDomain(src, states[src.ID], recipient)
	}), nil
}

func (repo *notificationRepository) toEntity(n domain.Notification) (dao.Notification, error) {
	metadata, err := n.MarshalMetadata()
	if err != nil {
		return dao.Notification{}, err
	}
	entity := dao.Notification{
		ID:       n.ID,
		Title:    n.Title,
		Message:  n.Message,
		Route:    n.Route,
		Metadata: metadata,
		Ctime:    n.CreatedAt.UnixMilli(),
	}
	if n.Recipient != nil {
		entity.RecipientID = n.Recipient.ID
	}
	if n.Template != nil {
		entity.TemplateName = n.Template.Name
	}
	return entity, nil
}

func (repo *notificationRepository) toStateEntities(n domain.Notification) []dao.NotificationChannelState {
	return slice.Map(n.DeliveryChannelsState, func(_ int, src domain.ChannelState) dao.NotificationChannelState {
		return dao.NotificationChannelState{
			NotificationID: n.ID,
			Channel:        src.Channel.String(),
			Status:         src.Status.String(),
			Utime:          src.UpdatedAt.UnixMilli(),
		}
	})
}

func (repo *notificationRepository) toDomain(n dao.Notification, states []dao.NotificationChannelState, recipient domain.User) domain.Notification {
	var metadata []domain.MetadataEntry
	if n.Metadata != "" {
		if err := json.Unmarshal([]byte(n.Metadata), &metadata); err != nil {
			repo.logger.Warn("通知附加信息反序列化失败",
				elog.FieldErr(err),
				elog.Any("notificationId", n.ID),
			)
		}
	}
	res := domain.Notification{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Route:     n.Route,
		CreatedAt: time.UnixMilli(n.Ctime),
		Recipient: &recipient,
		Metadata:  metadata,
		DeliveryChannelsState: slice.Map(states, func(_ int, src dao.NotificationChannelState) domain.ChannelState {
			return domain.ChannelState{
				Channel:   domain.Channel(src.Channel),
				Status:    domain.DeliveryStatus(src.Status),
				UpdatedAt: time.UnixMilli(src.Utime),
			}
		}),
	}
	if n.TemplateName != "" {
		res.Template = &domain.NotificationTemplate{Name: n.TemplateName}
	}
	return res
}
