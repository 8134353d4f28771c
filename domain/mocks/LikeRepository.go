package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-social-graph/domain"
)

type LikeRepository struct {
	mock.Mock
}

func (_m *LikeRepository) StoreWithNotification(ctx context.Context, l *domain.Like, n *domain.Notification) error {
	ret := _m.Called(ctx, l, n)
	return ret.Error(0)
}

func (_m *LikeRepository) Delete(ctx context.Context, userID, postID int64) error {
	ret := _m.Called(ctx, userID, postID)
	return ret.Error(0)
}

func (_m *LikeRepository) Exists(ctx context.Context, userID, postID int64) (bool, error) {
	ret := _m.Called(ctx, userID, postID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *LikeRepository) Count(ctx context.Context, postID int64) (int64, error) {
	ret := _m.Called(ctx, postID)
	return ret.Get(0).(int64), ret.Error(1)
}

var _ domain.LikeRepository = (*LikeRepository)(nil)
