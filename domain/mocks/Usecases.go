package mocks

import (
	"context"
	"iter"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-social-graph/domain"
)

type FollowUsecase struct {
	mock.Mock
}

func (_m *FollowUsecase) Follow(ctx context.Context, actorID, targetID int64) error {
	return _m.Called(ctx, actorID, targetID).Error(0)
}

func (_m *FollowUsecase) Unfollow(ctx context.Context, actorID, targetID int64) error {
	return _m.Called(ctx, actorID, targetID).Error(0)
}

func (_m *FollowUsecase) Status(ctx context.Context, actorID, targetID int64) (domain.RelationStatus, error) {
	ret := _m.Called(ctx, actorID, targetID)
	return ret.Get(0).(domain.RelationStatus), ret.Error(1)
}

func (_m *FollowUsecase) ListFollowing(ctx context.Context, uid int64) ([]domain.User, error) {
	ret := _m.Called(ctx, uid)
	var users []domain.User
	if v := ret.Get(0); v != nil {
		users = v.([]domain.User)
	}
	return users, ret.Error(1)
}

func (_m *FollowUsecase) ListFollowers(ctx context.Context, uid int64) ([]domain.User, error) {
	ret := _m.Called(ctx, uid)
	var users []domain.User
	if v := ret.Get(0); v != nil {
		users = v.([]domain.User)
	}
	return users, ret.Error(1)
}

type LikeUsecase struct {
	mock.Mock
}

func (_m *LikeUsecase) Like(ctx context.Context, actorID, postID int64) (int64, error) {
	ret := _m.Called(ctx, actorID, postID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *LikeUsecase) Unlike(ctx context.Context, actorID, postID int64) error {
	return _m.Called(ctx, actorID, postID).Error(0)
}

func (_m *LikeUsecase) Status(ctx context.Context, actorID, postID int64) (domain.LikeStatus, error) {
	ret := _m.Called(ctx, actorID, postID)
	return ret.Get(0).(domain.LikeStatus), ret.Error(1)
}

type NotificationUsecase struct {
	mock.Mock
}

func (_m *NotificationUsecase) Unread(ctx context.Context, recipientID int64) iter.Seq2[domain.Notification, error] {
	return _m.Called(ctx, recipientID).Get(0).(iter.Seq2[domain.Notification, error])
}

func (_m *NotificationUsecase) ListUnread(ctx context.Context, recipientID int64, cursor string, num int64) ([]domain.Notification, string, error) {
	ret := _m.Called(ctx, recipientID, cursor, num)
	var res []domain.Notification
	if v := ret.Get(0); v != nil {
		res = v.([]domain.Notification)
	}
	return res, ret.String(1), ret.Error(2)
}

func (_m *NotificationUsecase) MarkRead(ctx context.Context, recipientID, id int64) error {
	return _m.Called(ctx, recipientID, id).Error(0)
}

func (_m *NotificationUsecase) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	ret := _m.Called(ctx, recipientID)
	return ret.Get(0).(int64), ret.Error(1)
}

type FeedUsecase struct {
	mock.Mock
}

func (_m *FeedUsecase) Feed(ctx context.Context, actorID int64) iter.Seq2[domain.Post, error] {
	return _m.Called(ctx, actorID).Get(0).(iter.Seq2[domain.Post, error])
}

func (_m *FeedUsecase) Fetch(ctx context.Context, actorID int64, cursor string, num int64) ([]domain.Post, string, error) {
	ret := _m.Called(ctx, actorID, cursor, num)
	var res []domain.Post
	if v := ret.Get(0); v != nil {
		res = v.([]domain.Post)
	}
	return res, ret.String(1), ret.Error(2)
}

var (
	_ domain.FollowUsecase       = (*FollowUsecase)(nil)
	_ domain.LikeUsecase         = (*LikeUsecase)(nil)
	_ domain.NotificationUsecase = (*NotificationUsecase)(nil)
	_ domain.FeedUsecase         = (*FeedUsecase)(nil)
)
