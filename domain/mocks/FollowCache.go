package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-social-graph/domain"
)

type FollowCache struct {
	mock.Mock
}

func (_m *FollowCache) GetFollowing(ctx context.Context, uid int64) ([]int64, bool, error) {
	ret := _m.Called(ctx, uid)
	var ids []int64
	if v := ret.Get(0); v != nil {
		ids = v.([]int64)
	}
	return ids, ret.Bool(1), ret.Error(2)
}

func (_m *FollowCache) SetFollowing(ctx context.Context, uid int64, ids []int64, ttl time.Duration) error {
	ret := _m.Called(ctx, uid, ids, ttl)
	return ret.Error(0)
}

func (_m *FollowCache) DeleteFollowing(ctx context.Context, uid int64) error {
	ret := _m.Called(ctx, uid)
	return ret.Error(0)
}

var _ domain.FollowCache = (*FollowCache)(nil)
