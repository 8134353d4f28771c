package follow_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/domain/mocks"
	"github.com/Guyuepp/go-social-graph/internal/repository/memory"
	"github.com/Guyuepp/go-social-graph/internal/usecase/follow"
)

func seedUsers(t *testing.T, store *memory.Store, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		var u domain.User
		require.NoError(t, faker.FakeData(&u))
		u.ID = id
		store.AddUser(u)
	}
}

func newMemService(t *testing.T, ids ...int64) (*follow.Service, *memory.Store) {
	store := memory.NewStore()
	seedUsers(t, store, ids...)
	return follow.NewService(store.Follows(), store.Users()), store
}

func TestFollow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _ := newMemService(t, 1, 2)
		require.NoError(t, svc.Follow(context.TODO(), 1, 2))

		st, err := svc.Status(context.TODO(), 1, 2)
		require.NoError(t, err)
		assert.True(t, st.IsFollowing)
		assert.False(t, st.IsFollowedBy)
	})

	t.Run("self", func(t *testing.T) {
		mockRepo := new(mocks.FollowRepository)
		svc := follow.NewService(mockRepo, new(mocks.UserRepository))

		err := svc.Follow(context.TODO(), 7, 7)
		assert.ErrorIs(t, err, domain.ErrSelfReference)
		mockRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("twice", func(t *testing.T) {
		svc, _ := newMemService(t, 1, 2)
		require.NoError(t, svc.Follow(context.TODO(), 1, 2))
		assert.ErrorIs(t, svc.Follow(context.TODO(), 1, 2), domain.ErrAlreadyExists)
	})

	t.Run("unknown target", func(t *testing.T) {
		svc, _ := newMemService(t, 1)
		assert.ErrorIs(t, svc.Follow(context.TODO(), 1, 99), domain.ErrNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		mockRepo := new(mocks.FollowRepository)
		mockRepo.On("Store", mock.Anything, mock.MatchedBy(func(f *domain.Follow) bool {
			return f.FollowerID == 1 && f.FolloweeID == 2 && !f.CreatedAt.IsZero()
		})).Return(assert.AnError).Once()

		svc := follow.NewService(mockRepo, new(mocks.UserRepository))
		assert.ErrorIs(t, svc.Follow(context.TODO(), 1, 2), assert.AnError)
		mockRepo.AssertExpectations(t)
	})
}

func TestFollowConcurrent(t *testing.T) {
	svc, _ := newMemService(t, 1, 2)

	var ok, dup atomic.Int32
	var g errgroup.Group
	for range 2 {
		g.Go(func() error {
			err := svc.Follow(context.TODO(), 1, 2)
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
	assert.EqualValues(t, 1, dup.Load())
}

func TestUnfollow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _ := newMemService(t, 1, 2)
		require.NoError(t, svc.Follow(context.TODO(), 1, 2))
		require.NoError(t, svc.Unfollow(context.TODO(), 1, 2))

		st, err := svc.Status(context.TODO(), 1, 2)
		require.NoError(t, err)
		assert.False(t, st.IsFollowing)
	})

	t.Run("not following", func(t *testing.T) {
		svc, _ := newMemService(t, 1, 2)
		assert.ErrorIs(t, svc.Unfollow(context.TODO(), 1, 2), domain.ErrNotFound)
	})

	t.Run("follow again after unfollow", func(t *testing.T) {
		svc, _ := newMemService(t, 1, 2)
		require.NoError(t, svc.Follow(context.TODO(), 1, 2))
		require.NoError(t, svc.Unfollow(context.TODO(), 1, 2))
		assert.NoError(t, svc.Follow(context.TODO(), 1, 2))
	})
}

func TestStatus(t *testing.T) {
	t.Run("mutual", func(t *testing.T) {
		svc, _ := newMemService(t, 1, 2)
		require.NoError(t, svc.Follow(context.TODO(), 1, 2))
		require.NoError(t, svc.Follow(context.TODO(), 2, 1))

		st, err := svc.Status(context.TODO(), 2, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.RelationStatus{IsFollowing: true, IsFollowedBy: true}, st)
	})

	t.Run("self", func(t *testing.T) {
		mockRepo := new(mocks.FollowRepository)
		svc := follow.NewService(mockRepo, new(mocks.UserRepository))

		st, err := svc.Status(context.TODO(), 3, 3)
		require.NoError(t, err)
		assert.Equal(t, domain.RelationStatus{}, st)
		mockRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error", func(t *testing.T) {
		mockRepo := new(mocks.FollowRepository)
		mockRepo.On("Exists", mock.Anything, int64(1), int64(2)).Return(false, assert.AnError)
		mockRepo.On("Exists", mock.Anything, int64(2), int64(1)).Return(true, nil)

		svc := follow.NewService(mockRepo, new(mocks.UserRepository))
		_, err := svc.Status(context.TODO(), 1, 2)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestListFollowingAndFollowers(t *testing.T) {
	svc, _ := newMemService(t, 1, 2, 3)
	require.NoError(t, svc.Follow(context.TODO(), 1, 3))
	require.NoError(t, svc.Follow(context.TODO(), 1, 2))
	require.NoError(t, svc.Follow(context.TODO(), 3, 2))

	following, err := svc.ListFollowing(context.TODO(), 1)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, int64(2), following[0].ID)
	assert.Equal(t, int64(3), following[1].ID)

	followers, err := svc.ListFollowers(context.TODO(), 2)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, int64(1), followers[0].ID)
	assert.Equal(t, int64(3), followers[1].ID)

	none, err := svc.ListFollowers(context.TODO(), 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListFollowingError(t *testing.T) {
	mockRepo := new(mocks.FollowRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockRepo.On("FetchFollowingIDs", mock.Anything, int64(1)).Return(nil, assert.AnError).Once()

	svc := follow.NewService(mockRepo, mockUserRepo)
	_, err := svc.ListFollowing(context.TODO(), 1)
	assert.ErrorIs(t, err, assert.AnError)
	mockUserRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}
