package domain

import (
	"context"
	"fmt"
	"iter"
	"time"
)

// TargetKind tags the entity a notification points at.
type TargetKind string

const (
	TargetPost TargetKind = "post"
)

// Target is a typed reference to the entity a notification is about.
type Target struct {
	Kind TargetKind
	ID   int64
}

// PostTarget builds a Target referencing a post.
func PostTarget(postID int64) Target {
	return Target{Kind: TargetPost, ID: postID}
}

// Validate rejects unknown kinds.
func (t Target) Validate() error {
	switch t.Kind {
	case TargetPost:
		if t.ID <= 0 {
			return fmt.Errorf("%w: post target without id", ErrBadParamInput)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown target kind %q", ErrBadParamInput, t.Kind)
	}
}

// Notification records one actor's action affecting another.
// Only Read is mutable, and only from false to true.
type Notification struct {
	ID          int64
	RecipientID int64
	ActorID     int64
	Verb        string
	Target      Target
	Read        bool
	CreatedAt   time.Time
}

// NotificationRepository is the persistence contract for notifications.
type NotificationRepository interface {
	// FetchUnread returns unread notifications of recipientID, newest first.
	FetchUnread(ctx context.Context, recipientID int64, cursor string, num int64) ([]Notification, error)

	// MarkRead sets read=true. Returns ErrNotFound if the notification does
	// not exist or does not belong to recipientID.
	MarkRead(ctx context.Context, recipientID, id int64) error

	// CountUnread returns the number of unread notifications of recipientID.
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
}

// NotificationUsecase exposes the activity log of a user.
type NotificationUsecase interface {
	Unread(ctx context.Context, recipientID int64) iter.Seq2[Notification, error]
	ListUnread(ctx context.Context, recipientID int64, cursor string, num int64) ([]Notification, string, error)
	MarkRead(ctx context.Context, recipientID, id int64) error
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
}
