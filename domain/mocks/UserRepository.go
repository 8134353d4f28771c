package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-social-graph/domain"
)

type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (_m *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	ret := _m.Called(ctx, ids)
	var users []domain.User
	if v := ret.Get(0); v != nil {
		users = v.([]domain.User)
	}
	return users, ret.Error(1)
}

var _ domain.UserRepository = (*UserRepository)(nil)
