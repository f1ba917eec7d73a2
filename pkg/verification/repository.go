package verification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Attempt represents one user's in-progress email verification: the
// normalized address and the one-time code bound to it. At most one live
// attempt exists per user.
type Attempt struct {
	ID        uuid.UUID
	UserID    string
	Email     string
	Code      string
	CreatedAt time.Time
}

// AttemptRepository is the authoritative store of outstanding verification
// attempts, keyed by platform user ID. Attempts have no expiry; they live
// until replaced or removed.
type AttemptRepository interface {
	// Put inserts or overwrites the attempt for a user.
	Put(ctx context.Context, userID, email, code string) (Attempt, error)

	// Get returns the attempt for a user, or ErrNoAttempt.
	Get(ctx context.Context, userID string) (Attempt, error)

	// HasPending reports whether an attempt exists for a user.
	HasPending(ctx context.Context, userID string) (bool, error)

	// Remove deletes the attempt for a user. Removing an absent attempt is a no-op.
	Remove(ctx context.Context, userID string) error
}
