package domain

import (
	"context"
	"time"
)

// Follow is a directed edge follower -> followee.
type Follow struct {
	FollowerID int64
	FolloweeID int64
	CreatedAt  time.Time
}

// RelationStatus describes the follow edges between two actors in both directions.
type RelationStatus struct {
	IsFollowing  bool // actor -> target
	IsFollowedBy bool // target -> actor
}

// FollowDBRepository is the persistence contract for follow edges.
type FollowDBRepository interface {
	// Store inserts the edge. Returns ErrNotFound if the followee doesn't exist
	// and ErrAlreadyExists if the edge is already present.
	Store(ctx context.Context, f *Follow) error

	// Delete removes the edge. Returns ErrNotFound if there is no such edge.
	Delete(ctx context.Context, followerID, followeeID int64) error

	// Exists reports whether the edge follower -> followee is present.
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)

	// FetchFollowingIDs returns the ids followed by uid.
	FetchFollowingIDs(ctx context.Context, uid int64) ([]int64, error)

	// FetchFollowerIDs returns the ids following uid.
	FetchFollowerIDs(ctx context.Context, uid int64) ([]int64, error)
}

// FollowCache caches the following set of a user.
type FollowCache interface {
	// GetFollowing returns ErrCacheMiss when the set is not cached.
	// expired reports that the entry is past its logical expiry and should be rebuilt.
	GetFollowing(ctx context.Context, uid int64) (ids []int64, expired bool, err error)
	SetFollowing(ctx context.Context, uid int64, ids []int64, ttl time.Duration) error
	DeleteFollowing(ctx context.Context, uid int64) error
}

// FollowRepository coordinates the database and the cache.
type FollowRepository interface {
	FollowDBRepository
}

// FollowUsecase is the follow half of the relationship manager.
type FollowUsecase interface {
	Follow(ctx context.Context, actorID, targetID int64) error
	Unfollow(ctx context.Context, actorID, targetID int64) error
	Status(ctx context.Context, actorID, targetID int64) (RelationStatus, error)
	ListFollowing(ctx context.Context, uid int64) ([]User, error)
	ListFollowers(ctx context.Context, uid int64) ([]User, error)
}
