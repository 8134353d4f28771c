package follow

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/go-social-graph/domain"
)

type Service struct {
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
	now        func() time.Time
}

var _ domain.FollowUsecase = (*Service)(nil)

// NewService will create a new follow service object
func NewService(f domain.FollowRepository, u domain.UserRepository) *Service {
	return &Service{
		followRepo: f,
		userRepo:   u,
		now:        time.Now,
	}
}

// Follow creates the edge actorID -> targetID. No notification is emitted.
func (s *Service) Follow(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return domain.ErrSelfReference
	}

	err := s.followRepo.Store(ctx, &domain.Follow{
		FollowerID: actorID,
		FolloweeID: targetID,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"follower": actorID,
		"followee": targetID,
	}).Info("user followed")
	return nil
}

// Unfollow removes the edge, failing with ErrNotFound when actorID is not following targetID.
func (s *Service) Unfollow(ctx context.Context, actorID, targetID int64) error {
	if err := s.followRepo.Delete(ctx, actorID, targetID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"follower": actorID,
		"followee": targetID,
	}).Info("user unfollowed")
	return nil
}

// Status checks both directions concurrently.
func (s *Service) Status(ctx context.Context, actorID, targetID int64) (domain.RelationStatus, error) {
	var res domain.RelationStatus
	if actorID == targetID {
		return res, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.IsFollowing, err = s.followRepo.Exists(ctx, actorID, targetID)
		return
	})
	g.Go(func() (err error) {
		res.IsFollowedBy, err = s.followRepo.Exists(ctx, targetID, actorID)
		return
	})
	if err := g.Wait(); err != nil {
		return domain.RelationStatus{}, err
	}
	return res, nil
}

func (s *Service) ListFollowing(ctx context.Context, uid int64) ([]domain.User, error) {
	ids, err := s.followRepo.FetchFollowingIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByIDs(ctx, ids)
}

func (s *Service) ListFollowers(ctx context.Context, uid int64) ([]domain.User, error) {
	ids, err := s.followRepo.FetchFollowerIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByIDs(ctx, ids)
}
