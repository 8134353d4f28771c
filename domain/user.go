package domain

import (
	"context"
	"time"
)

// User represents an actor of the social graph.
// Users are created by the identity provider; this service only reads them.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	CreatedAt time.Time // Account creation timestamp
}

// UserRepository defines the read contract on actors.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs retrieves the users with the given IDs. Missing IDs are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)
}
