package notification

import (
	"context"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/repository"
)

// pageSize is the number of rows Unread pulls per round trip.
const pageSize int64 = 50

type Service struct {
	notificationRepo domain.NotificationRepository
}

var _ domain.NotificationUsecase = (*Service)(nil)

func NewService(n domain.NotificationRepository) *Service {
	return &Service{
		notificationRepo: n,
	}
}

// Unread walks every unread notification of recipientID, newest first.
// Each iteration starts a fresh query, so it reflects the current state.
func (s *Service) Unread(ctx context.Context, recipientID int64) iter.Seq2[domain.Notification, error] {
	return func(yield func(domain.Notification, error) bool) {
		cursor := ""
		for {
			page, next, err := s.ListUnread(ctx, recipientID, cursor, pageSize)
			if err != nil {
				yield(domain.Notification{}, err)
				return
			}
			for _, n := range page {
				if !yield(n, nil) {
					return
				}
			}
			if next == "" {
				return
			}
			cursor = next
		}
	}
}

func (s *Service) ListUnread(ctx context.Context, recipientID int64, cursor string, num int64) ([]domain.Notification, string, error) {
	repository.PageVerify(&num)
	res, err := s.notificationRepo.FetchUnread(ctx, recipientID, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if int64(len(res)) < num {
		return res, "", nil
	}
	last := res[len(res)-1]
	return res, repository.EncodeCursor(last.CreatedAt, last.ID), nil
}

// MarkRead is idempotent; another user's notification is reported as ErrNotFound.
func (s *Service) MarkRead(ctx context.Context, recipientID, id int64) error {
	if err := s.notificationRepo.MarkRead(ctx, recipientID, id); err != nil {
		return err
	}
	logrus.Debugf("notification %d marked read by user %d", id, recipientID)
	return nil
}

func (s *Service) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, recipientID)
}
