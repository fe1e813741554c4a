package resolver

import (
	"context"
	"fmt"
	"strings"

	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/service/route"
)

var _ route.Resolver = (*AnnouncementResolver)(nil)

type announcementParams struct {
	UserIDs  []int64 `json:"userIds,omitempty"`
	Headline string  `json:"headline"`
	Body     string  `json:"body,omitempty"`
}

// AnnouncementResolver 公告，未指定用户时发给全部用户
type AnnouncementResolver struct {
	users repository.UserRepository
}

func NewAnnouncementResolver(users repository.UserRepository) *AnnouncementResolver {
	return &AnnouncementResolver{users: users}
}

func (r *AnnouncementResolver) Route() string {
	return RouteAnnouncement
}

func (r *AnnouncementResolver) params(req domain.NotificationRequest) (announcementParams, error) {
	var p announcementParams
	if err := req.DecodeParameters(&p); err != nil {
		return announcementParams{}, err
	}
	if strings.TrimSpace(p.Headline) == "" {
		return announcementParams{}, fmt.Errorf("%w: headline", errs.ErrMissingRequiredParameter)
	}
	return p, nil
}

func (r *AnnouncementResolver) ResolveRecipients(ctx context.Context, req domain.NotificationRequest) ([]domain.User, error) {
	p, err := r.params(req)
	if err != nil {
		return nil, err
	}
	if len(p.UserIDs) == 0 {
		return r.users.FindAll(ctx)
	}
	return r.users.FindByIDs(ctx, dedupe(p.UserIDs))
}

func (r *AnnouncementResolver) ResolveFullData(_ context.Context, req domain.NotificationRequest) (any, error) {
	p, err := r.params(req)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"Headline": p.Headline,
		"Body":     p.Body,
	}, nil
}

// dedupe 保留第一次出现的顺序
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
