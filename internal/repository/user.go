package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository/dao"
)

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{dao: d}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return toUserDomain(u), nil
}

func (repo *userRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	users, err := repo.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	userMap := make(map[int64]dao.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	res := make([]domain.User, 0, len(users))
	for _, id := range ids {
		if u, ok := userMap[id]; ok {
			res = append(res, toUserDomain(u))
		}
	}
	return res, nil
}

func (repo *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	users, err := repo.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(users, func(_ int, src dao.User) domain.User {
		return toUserDomain(src)
	}), nil
}

func (repo *userRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	created, err := repo.dao.Create(ctx, dao.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		DeviceToken: u.DeviceToken,
	})
	if err != nil {
		return domain.User{}, err
	}
	return toUserDomain(created), nil
}

func toUserDomain(u dao.User) domain.User {
	return domain.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		DeviceToken: u.DeviceToken,
	}
}
