package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-social-graph/domain"
)

type NotificationRepository struct {
	mock.Mock
}

func (_m *NotificationRepository) FetchUnread(ctx context.Context, recipientID int64, cursor string, num int64) ([]domain.Notification, error) {
	ret := _m.Called(ctx, recipientID, cursor, num)
	var res []domain.Notification
	if v := ret.Get(0); v != nil {
		res = v.([]domain.Notification)
	}
	return res, ret.Error(1)
}

func (_m *NotificationRepository) MarkRead(ctx context.Context, recipientID, id int64) error {
	ret := _m.Called(ctx, recipientID, id)
	return ret.Error(0)
}

func (_m *NotificationRepository) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	ret := _m.Called(ctx, recipientID)
	return ret.Get(0).(int64), ret.Error(1)
}

var _ domain.NotificationRepository = (*NotificationRepository)(nil)
