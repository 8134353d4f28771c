package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-social-graph/domain"
)

// FollowingCacheTTL is the logical lifetime of a cached following set.
const FollowingCacheTTL = 10 * time.Minute

// followRepository coordinates the following-set cache with the database.
type followRepository struct {
	db           domain.FollowDBRepository
	cache        domain.FollowCache
	rebuildGroup singleflight.Group
	ttl          time.Duration

	// generations counts committed writes per follower; a load only
	// publishes its result if no write landed while it was running.
	mu          sync.Mutex
	generations map[int64]uint64
}

var _ domain.FollowRepository = (*followRepository)(nil)

// NewFollowRepository wraps db with the following-set cache.
func NewFollowRepository(db domain.FollowDBRepository, cache domain.FollowCache) *followRepository {
	return &followRepository{
		db:          db,
		cache:       cache,
		ttl:         FollowingCacheTTL,
		generations: make(map[int64]uint64),
	}
}

// Store writes the edge and drops the follower's cached following set.
func (r *followRepository) Store(ctx context.Context, f *domain.Follow) error {
	if err := r.db.Store(ctx, f); err != nil {
		return err
	}
	r.written(ctx, f.FollowerID)
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	if err := r.db.Delete(ctx, followerID, followeeID); err != nil {
		return err
	}
	r.written(ctx, followerID)
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return r.db.Exists(ctx, followerID, followeeID)
}

func (r *followRepository) FetchFollowerIDs(ctx context.Context, uid int64) ([]int64, error) {
	return r.db.FetchFollowerIDs(ctx, uid)
}

// FetchFollowingIDs serves the cached set, rebuilding it in the background once
// it is logically expired. A miss is loaded once per uid via singleflight.
func (r *followRepository) FetchFollowingIDs(ctx context.Context, uid int64) ([]int64, error) {
	ids, expired, err := r.cache.GetFollowing(ctx, uid)
	if err == nil {
		if expired {
			go r.rebuild(context.Background(), uid)
		}
		return ids, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to get following set of user %d from cache: %v", uid, err)
	}

	res, err, _ := r.rebuildGroup.Do(followingKey(uid), func() (any, error) {
		return r.load(context.WithoutCancel(ctx), uid)
	})
	if err != nil {
		return nil, err
	}
	return res.([]int64), nil
}

// load reads the set from the database and caches it unless a write for uid
// committed in the meantime.
func (r *followRepository) load(ctx context.Context, uid int64) ([]int64, error) {
	gen := r.generation(uid)
	ids, err := r.db.FetchFollowingIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	if r.generation(uid) != gen {
		return ids, nil
	}
	if err := r.cache.SetFollowing(ctx, uid, ids, r.ttl); err != nil {
		logrus.Warnf("failed to set following set of user %d: %v", uid, err)
		return ids, nil
	}
	// a write may have invalidated the key just before SetFollowing landed
	if r.generation(uid) != gen {
		r.invalidate(ctx, uid)
	}
	return ids, nil
}

// rebuild refreshes a logically expired entry in the background.
func (r *followRepository) rebuild(ctx context.Context, uid int64) {
	_, err, _ := r.rebuildGroup.Do(followingKey(uid), func() (any, error) {
		return r.load(ctx, uid)
	})
	if err != nil {
		logrus.Errorf("rebuild following cache failed for user %d: %v", uid, err)
	}
}

// written must run after a committed write to the edges of uid.
// Loads in flight are detached so later readers start from the new state.
func (r *followRepository) written(ctx context.Context, uid int64) {
	r.mu.Lock()
	r.generations[uid]++
	r.mu.Unlock()

	r.rebuildGroup.Forget(followingKey(uid))
	r.invalidate(context.WithoutCancel(ctx), uid)
}

func (r *followRepository) generation(uid int64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generations[uid]
}

// invalidate deletes the cached set, retrying once.
func (r *followRepository) invalidate(ctx context.Context, uid int64) {
	err := r.cache.DeleteFollowing(ctx, uid)
	if err == nil {
		return
	}
	logrus.Warnf("failed to delete following set of user %d, retrying: %v", uid, err)
	if err = r.cache.DeleteFollowing(ctx, uid); err != nil {
		logrus.Errorf("following set of user %d may be stale for up to %s: %v", uid, r.ttl, err)
	}
}

func followingKey(uid int64) string {
	return "following:" + strconv.FormatInt(uid, 10)
}
