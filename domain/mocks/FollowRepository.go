package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-social-graph/domain"
)

// FollowRepository is a mock of domain.FollowDBRepository, also usable as domain.FollowRepository.
type FollowRepository struct {
	mock.Mock
}

func (_m *FollowRepository) Store(ctx context.Context, f *domain.Follow) error {
	ret := _m.Called(ctx, f)
	return ret.Error(0)
}

func (_m *FollowRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	ret := _m.Called(ctx, followerID, followeeID)
	return ret.Error(0)
}

func (_m *FollowRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	ret := _m.Called(ctx, followerID, followeeID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *FollowRepository) FetchFollowingIDs(ctx context.Context, uid int64) ([]int64, error) {
	ret := _m.Called(ctx, uid)
	var ids []int64
	if v := ret.Get(0); v != nil {
		ids = v.([]int64)
	}
	return ids, ret.Error(1)
}

func (_m *FollowRepository) FetchFollowerIDs(ctx context.Context, uid int64) ([]int64, error) {
	ret := _m.Called(ctx, uid)
	var ids []int64
	if v := ret.Get(0); v != nil {
		ids = v.([]int64)
	}
	return ids, ret.Error(1)
}

var _ domain.FollowRepository = (*FollowRepository)(nil)
