package feed

import (
	"context"
	"iter"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/repository"
)

const pageSize int64 = 50

type Service struct {
	followRepo domain.FollowRepository
	postRepo   domain.PostRepository
	userRepo   domain.UserRepository
}

var _ domain.FeedUsecase = (*Service)(nil)

func NewService(f domain.FollowRepository, p domain.PostRepository, u domain.UserRepository) *Service {
	return &Service{
		followRepo: f,
		postRepo:   p,
		userRepo:   u,
	}
}

// Feed walks the posts of every actor followed by actorID, newest first.
func (s *Service) Feed(ctx context.Context, actorID int64) iter.Seq2[domain.Post, error] {
	return func(yield func(domain.Post, error) bool) {
		cursor := ""
		for {
			page, next, err := s.Fetch(ctx, actorID, cursor, pageSize)
			if err != nil {
				yield(domain.Post{}, err)
				return
			}
			for _, p := range page {
				if !yield(p, nil) {
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

// Fetch returns one page of the feed. An actor following nobody has an empty feed.
func (s *Service) Fetch(ctx context.Context, actorID int64, cursor string, num int64) ([]domain.Post, string, error) {
	following, err := s.followRepo.FetchFollowingIDs(ctx, actorID)
	if err != nil {
		return nil, "", err
	}
	if len(following) == 0 {
		return []domain.Post{}, "", nil
	}

	repository.PageVerify(&num)
	posts, err := s.postRepo.FetchByAuthors(ctx, following, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if len(posts) == 0 {
		return posts, "", nil
	}

	posts, err = s.fillUserDetails(ctx, posts)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if int64(len(posts)) == num {
		last := posts[len(posts)-1]
		next = repository.EncodeCursor(last.CreatedAt, last.ID)
	}
	return posts, next, nil
}

// fillUserDetails loads the authors of posts in one query
func (s *Service) fillUserDetails(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	userIDs := make([]int64, 0, len(posts))
	seen := make(map[int64]bool)
	for _, p := range posts {
		if !seen[p.User.ID] {
			userIDs = append(userIDs, p.User.ID)
			seen[p.User.ID] = true
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	for i := range posts {
		if u, ok := userMap[posts[i].User.ID]; ok {
			posts[i].User = u
		}
	}
	return posts, nil
}
