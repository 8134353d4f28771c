package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/domain/mocks"
)

func TestFetchFollowingIDsCacheHit(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := new(mocks.FollowCache)
	cache.On("GetFollowing", mock.Anything, int64(1)).Return([]int64{2, 3}, false, nil).Once()

	ids, err := NewFollowRepository(db, cache).FetchFollowingIDs(context.TODO(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids)
	db.AssertNotCalled(t, "FetchFollowingIDs", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestFetchFollowingIDsCacheMiss(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := new(mocks.FollowCache)
	cache.On("GetFollowing", mock.Anything, int64(1)).Return(nil, false, domain.ErrCacheMiss).Once()
	db.On("FetchFollowingIDs", mock.Anything, int64(1)).Return([]int64{4}, nil).Once()
	cache.On("SetFollowing", mock.Anything, int64(1), []int64{4}, FollowingCacheTTL).Return(nil).Once()

	ids, err := NewFollowRepository(db, cache).FetchFollowingIDs(context.TODO(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, ids)
	db.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFetchFollowingIDsCacheDown(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := new(mocks.FollowCache)
	cache.On("GetFollowing", mock.Anything, int64(1)).Return(nil, false, assert.AnError).Once()
	db.On("FetchFollowingIDs", mock.Anything, int64(1)).Return([]int64{}, nil).Once()
	cache.On("SetFollowing", mock.Anything, int64(1), []int64{}, FollowingCacheTTL).Return(assert.AnError).Once()

	ids, err := NewFollowRepository(db, cache).FetchFollowingIDs(context.TODO(), 1)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFetchFollowingIDsDBError(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := new(mocks.FollowCache)
	cache.On("GetFollowing", mock.Anything, int64(1)).Return(nil, false, domain.ErrCacheMiss).Once()
	db.On("FetchFollowingIDs", mock.Anything, int64(1)).Return(nil, assert.AnError).Once()

	_, err := NewFollowRepository(db, cache).FetchFollowingIDs(context.TODO(), 1)
	assert.ErrorIs(t, err, assert.AnError)
	cache.AssertNotCalled(t, "SetFollowing", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFetchFollowingIDsExpiredRebuildsInBackground(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := new(mocks.FollowCache)
	rebuilt := make(chan struct{})
	cache.On("GetFollowing", mock.Anything, int64(1)).Return([]int64{2}, true, nil).Once()
	db.On("FetchFollowingIDs", mock.Anything, int64(1)).Return([]int64{2, 5}, nil).Once()
	cache.On("SetFollowing", mock.Anything, int64(1), []int64{2, 5}, FollowingCacheTTL).
		Return(nil).
		Run(func(mock.Arguments) { close(rebuilt) }).
		Once()

	ids, err := NewFollowRepository(db, cache).FetchFollowingIDs(context.TODO(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	select {
	case <-rebuilt:
	case <-time.After(2 * time.Second):
		t.Fatal("following cache was not rebuilt")
	}
	db.AssertExpectations(t)
}

func TestStoreInvalidatesCache(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := new(mocks.FollowCache)
	f := &domain.Follow{FollowerID: 1, FolloweeID: 2}
	db.On("Store", mock.Anything, f).Return(nil).Once()
	cache.On("DeleteFollowing", mock.Anything, int64(1)).Return(assert.AnError).Once()
	cache.On("DeleteFollowing", mock.Anything, int64(1)).Return(nil).Once()

	err := NewFollowRepository(db, cache).Store(context.TODO(), f)
	assert.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestStoreInvalidationDown(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := new(mocks.FollowCache)
	f := &domain.Follow{FollowerID: 1, FolloweeID: 2}
	db.On("Store", mock.Anything, f).Return(nil).Once()
	cache.On("DeleteFollowing", mock.Anything, int64(1)).Return(assert.AnError).Twice()

	// the edge is committed, so the write still succeeds
	err := NewFollowRepository(db, cache).Store(context.TODO(), f)
	assert.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestStoreErrorKeepsCache(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := new(mocks.FollowCache)
	f := &domain.Follow{FollowerID: 1, FolloweeID: 2}
	db.On("Store", mock.Anything, f).Return(domain.ErrAlreadyExists).Once()

	err := NewFollowRepository(db, cache).Store(context.TODO(), f)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	cache.AssertNotCalled(t, "DeleteFollowing", mock.Anything, mock.Anything)
}

func TestDeleteInvalidatesCache(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := new(mocks.FollowCache)
	db.On("Delete", mock.Anything, int64(1), int64(2)).Return(nil).Once()
	cache.On("DeleteFollowing", mock.Anything, int64(1)).Return(nil).Once()

	assert.NoError(t, NewFollowRepository(db, cache).Delete(context.TODO(), 1, 2))
	cache.AssertExpectations(t)
}

// mapCache keeps following sets in memory and never expires them.
type mapCache struct {
	mu   sync.Mutex
	sets map[int64][]int64
}

func newMapCache() *mapCache {
	return &mapCache{sets: make(map[int64][]int64)}
}

func (c *mapCache) GetFollowing(ctx context.Context, uid int64) ([]int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids, ok := c.sets[uid]
	if !ok {
		return nil, false, domain.ErrCacheMiss
	}
	return ids, false, nil
}

func (c *mapCache) SetFollowing(ctx context.Context, uid int64, ids []int64, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets[uid] = ids
	return nil
}

func (c *mapCache) DeleteFollowing(ctx context.Context, uid int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sets, uid)
	return nil
}

func TestFetchFollowingIDsLoadOverlappingWrite(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := newMapCache()
	started := make(chan struct{})
	release := make(chan struct{})
	db.On("FetchFollowingIDs", mock.Anything, int64(1)).
		Return([]int64{}, nil).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Once()
	db.On("Store", mock.Anything, mock.Anything).Return(nil).Once()
	db.On("FetchFollowingIDs", mock.Anything, int64(1)).Return([]int64{2}, nil)

	repo := NewFollowRepository(db, cache)
	stale := make(chan []int64, 1)
	go func() {
		ids, err := repo.FetchFollowingIDs(context.TODO(), 1)
		assert.NoError(t, err)
		stale <- ids
	}()
	<-started

	require.NoError(t, repo.Store(context.TODO(), &domain.Follow{FollowerID: 1, FolloweeID: 2}))

	// readers arriving after the write do not join the old load
	ids, err := repo.FetchFollowingIDs(context.TODO(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	close(release)
	select {
	case ids := <-stale:
		assert.Empty(t, ids)
	case <-time.After(2 * time.Second):
		t.Fatal("load did not finish")
	}

	ids, err = repo.FetchFollowingIDs(context.TODO(), 1)
	require.NoError(t, err)
	assert.Contains(t, ids, int64(2))
	cached, _, err := cache.GetFollowing(context.TODO(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, cached)
}

func TestFetchFollowingIDsOutlivesCallerContext(t *testing.T) {
	db := new(mocks.FollowRepository)
	cache := newMapCache()
	db.On("FetchFollowingIDs", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), int64(1)).Return([]int64{3}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ids, err := NewFollowRepository(db, cache).FetchFollowingIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)
	db.AssertExpectations(t)
}
