package like_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/domain/mocks"
	"github.com/Guyuepp/go-social-graph/internal/repository/memory"
	"github.com/Guyuepp/go-social-graph/internal/usecase/like"
)

const (
	author int64 = 1
	reader int64 = 2
	postID int64 = 10
)

func newMemService(t *testing.T) (*like.Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	for _, id := range []int64{author, reader} {
		var u domain.User
		require.NoError(t, faker.FakeData(&u))
		u.ID = id
		store.AddUser(u)
	}
	store.AddPost(domain.Post{
		ID:        postID,
		Title:     faker.Sentence(),
		Content:   faker.Paragraph(),
		User:      domain.User{ID: author},
		CreatedAt: time.Now(),
	})
	return like.NewService(store.Likes(), store.Posts()), store
}

func TestLike(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, store := newMemService(t)

		id, err := svc.Like(context.TODO(), reader, postID)
		require.NoError(t, err)

		notifications := store.Snapshot()
		require.Len(t, notifications, 1)
		n := notifications[0]
		assert.Equal(t, id, n.ID)
		assert.Equal(t, author, n.RecipientID)
		assert.Equal(t, reader, n.ActorID)
		assert.Equal(t, domain.VerbLikedPost, n.Verb)
		assert.Equal(t, domain.PostTarget(postID), n.Target)
		assert.False(t, n.Read)

		st, err := svc.Status(context.TODO(), reader, postID)
		require.NoError(t, err)
		assert.Equal(t, domain.LikeStatus{PostID: postID, LikeCount: 1, IsLiked: true}, st)
	})

	t.Run("own post", func(t *testing.T) {
		svc, store := newMemService(t)

		_, err := svc.Like(context.TODO(), author, postID)
		assert.ErrorIs(t, err, domain.ErrSelfLike)
		assert.Empty(t, store.Snapshot())

		st, err := svc.Status(context.TODO(), author, postID)
		require.NoError(t, err)
		assert.Zero(t, st.LikeCount)
	})

	t.Run("twice", func(t *testing.T) {
		svc, store := newMemService(t)

		_, err := svc.Like(context.TODO(), reader, postID)
		require.NoError(t, err)
		_, err = svc.Like(context.TODO(), reader, postID)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		assert.Len(t, store.Snapshot(), 1)
		st, err := svc.Status(context.TODO(), reader, postID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, st.LikeCount)
	})

	t.Run("concurrent", func(t *testing.T) {
		svc, store := newMemService(t)

		var ok, dup atomic.Int32
		var g errgroup.Group
		for range 4 {
			g.Go(func() error {
				_, err := svc.Like(context.TODO(), reader, postID)
				switch {
				case err == nil:
					ok.Add(1)
				case errors.Is(err, domain.ErrAlreadyExists):
					dup.Add(1)
				default:
					return err
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
		assert.EqualValues(t, 1, ok.Load())
		assert.EqualValues(t, 3, dup.Load())
		assert.Len(t, store.Snapshot(), 1)
	})

	t.Run("post not found", func(t *testing.T) {
		svc, _ := newMemService(t)
		_, err := svc.Like(context.TODO(), reader, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		mockLikeRepo := new(mocks.LikeRepository)
		mockPostRepo := new(mocks.PostRepository)
		mockPostRepo.On("GetByID", mock.Anything, postID).
			Return(domain.Post{ID: postID, User: domain.User{ID: author}}, nil).Once()
		mockLikeRepo.On("StoreWithNotification", mock.Anything,
			mock.AnythingOfType("*domain.Like"), mock.AnythingOfType("*domain.Notification")).
			Return(assert.AnError).Once()

		svc := like.NewService(mockLikeRepo, mockPostRepo)
		id, err := svc.Like(context.TODO(), reader, postID)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, id)
		mockLikeRepo.AssertExpectations(t)
		mockPostRepo.AssertExpectations(t)
	})
}

func TestUnlike(t *testing.T) {
	t.Run("keeps notification", func(t *testing.T) {
		svc, store := newMemService(t)
		_, err := svc.Like(context.TODO(), reader, postID)
		require.NoError(t, err)

		require.NoError(t, svc.Unlike(context.TODO(), reader, postID))
		assert.Len(t, store.Snapshot(), 1)

		st, err := svc.Status(context.TODO(), reader, postID)
		require.NoError(t, err)
		assert.False(t, st.IsLiked)
		assert.Zero(t, st.LikeCount)
	})

	t.Run("not liked", func(t *testing.T) {
		svc, _ := newMemService(t)
		assert.ErrorIs(t, svc.Unlike(context.TODO(), reader, postID), domain.ErrNotFound)
	})

	t.Run("own post", func(t *testing.T) {
		mockLikeRepo := new(mocks.LikeRepository)
		mockPostRepo := new(mocks.PostRepository)
		mockPostRepo.On("GetByID", mock.Anything, postID).
			Return(domain.Post{ID: postID, User: domain.User{ID: author}}, nil).Once()

		svc := like.NewService(mockLikeRepo, mockPostRepo)
		assert.ErrorIs(t, svc.Unlike(context.TODO(), author, postID), domain.ErrSelfUnlike)
		mockLikeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("post not found", func(t *testing.T) {
		svc, _ := newMemService(t)
		assert.ErrorIs(t, svc.Unlike(context.TODO(), reader, 404), domain.ErrNotFound)
	})
}

func TestStatusPostNotFound(t *testing.T) {
	mockLikeRepo := new(mocks.LikeRepository)
	mockPostRepo := new(mocks.PostRepository)
	mockPostRepo.On("GetByID", mock.Anything, int64(404)).Return(domain.Post{}, domain.ErrNotFound).Once()

	svc := like.NewService(mockLikeRepo, mockPostRepo)
	_, err := svc.Status(context.TODO(), reader, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockLikeRepo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}
