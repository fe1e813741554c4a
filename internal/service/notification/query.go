package notification

import (
	"context"
	"fmt"

	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/repository"
)

const maxPageSize = 100

type queryService struct {
	repo repository.NotificationRepository
}

func NewQueryService(repo repository.NotificationRepository) QueryService {
	return &queryService{repo: repo}
}

func (s *queryService) GetByID(ctx context.Context, id uint64) (domain.Notification, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *queryService) ListByRecipient(ctx context.Context, userID int64, offset, limit int) ([]domain.Notification, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userId = %d", errs.ErrInvalidParameter, userID)
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	return s.repo.FindByRecipient(ctx, userID, offset, limit)
}

func (s *queryService) MarkRead(ctx context.Context, id uint64, userID int64) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// 不是自己的通知当作不存在
	if n.Recipient == nil || n.Recipient.ID != userID {
		return fmt.Errorf("%w: id=%d", errs.ErrNotificationNotFound, id)
	}

	marked := 0
	for _, st := range n.DeliveryChannelsState {
		if !st.Status.CanTransitionTo(domain.DeliveryStatusRead) {
			continue
		}
		if err = s.repo.MarkRead(ctx, id, st.Channel); err != nil {
			return err
		}
		marked++
	}
	if marked == 0 {
		return fmt.Errorf("%w: id=%d 没有已投递的渠道", errs.ErrInvalidStatusTransition, id)
	}
	return nil
}
