package domain

import (
	"context"
	"time"
)

// VerbLikedPost is the notification verb emitted by a like.
const VerbLikedPost = "liked your post"

// Like is representing a like record
type Like struct {
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// LikeStatus is the like summary of one post as seen by one user.
type LikeStatus struct {
	PostID    int64
	LikeCount int64
	IsLiked   bool
}

// LikeRepository is the persistence contract for like edges.
type LikeRepository interface {
	// StoreWithNotification inserts the like and the notification in one
	// transaction. Returns ErrAlreadyExists if the like is already present,
	// in which case neither row is written. n.ID is backfilled on success.
	StoreWithNotification(ctx context.Context, l *Like, n *Notification) error

	// Delete removes the like. Returns ErrNotFound if there is no such like.
	Delete(ctx context.Context, userID, postID int64) error

	// Exists reports whether userID liked postID.
	Exists(ctx context.Context, userID, postID int64) (bool, error)

	// Count returns the number of likes of postID.
	Count(ctx context.Context, postID int64) (int64, error)
}

// LikeUsecase is the like half of the relationship manager.
type LikeUsecase interface {
	// Like returns the id of the notification sent to the post author.
	Like(ctx context.Context, actorID, postID int64) (int64, error)
	Unlike(ctx context.Context, actorID, postID int64) error
	Status(ctx context.Context, actorID, postID int64) (LikeStatus, error)
}
