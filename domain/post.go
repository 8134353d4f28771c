package domain

import (
	"context"
	"iter"
	"time"
)

// Post is a piece of content authored by a user.
// Posts are owned by the content service and only referenced here.
type Post struct {
	ID        int64
	Title     string
	Content   string
	User      User // Author, only ID is guaranteed to be set
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostRepository defines the read contract on posts.
type PostRepository interface {
	// GetByID returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// FetchByAuthors returns posts written by any of authorIDs, newest first.
	// cursor is the opaque value returned by the previous page, "" for the first page.
	FetchByAuthors(ctx context.Context, authorIDs []int64, cursor string, num int64) ([]Post, error)
}

// FeedUsecase assembles the posts of followed actors.
type FeedUsecase interface {
	// Feed lazily walks the whole feed of actorID, newest first.
	Feed(ctx context.Context, actorID int64) iter.Seq2[Post, error]

	// Fetch returns one page of the feed and the cursor of the next page.
	Fetch(ctx context.Context, actorID int64, cursor string, num int64) ([]Post, string, error)
}
