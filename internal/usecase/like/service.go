package like

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-social-graph/domain"
)

type Service struct {
	likeRepo domain.LikeRepository
	postRepo domain.PostRepository
	now      func() time.Time
}

var _ domain.LikeUsecase = (*Service)(nil)

func NewService(l domain.LikeRepository, p domain.PostRepository) *Service {
	return &Service{
		likeRepo: l,
		postRepo: p,
		now:      time.Now,
	}
}

// Like records the like and notifies the post author in one unit of work.
// It returns the id of the new notification.
func (s *Service) Like(ctx context.Context, actorID, postID int64) (int64, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post.User.ID == actorID {
		return 0, domain.ErrSelfLike
	}

	now := s.now()
	like := &domain.Like{
		PostID:    postID,
		UserID:    actorID,
		CreatedAt: now,
	}
	notification := &domain.Notification{
		RecipientID: post.User.ID,
		ActorID:     actorID,
		Verb:        domain.VerbLikedPost,
		Target:      domain.PostTarget(postID),
		CreatedAt:   now,
	}
	if err := s.likeRepo.StoreWithNotification(ctx, like, notification); err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"user":         actorID,
		"post":         postID,
		"notification": notification.ID,
	}).Info("post liked")
	return notification.ID, nil
}

// Unlike removes the like. The notification sent by Like is kept.
func (s *Service) Unlike(ctx context.Context, actorID, postID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.User.ID == actorID {
		return domain.ErrSelfUnlike
	}
	return s.likeRepo.Delete(ctx, actorID, postID)
}

func (s *Service) Status(ctx context.Context, actorID, postID int64) (domain.LikeStatus, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return domain.LikeStatus{}, err
	}

	count, err := s.likeRepo.Count(ctx, postID)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	liked, err := s.likeRepo.Exists(ctx, actorID, postID)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	return domain.LikeStatus{
		PostID:    postID,
		LikeCount: count,
		IsLiked:   liked,
	}, nil
}
