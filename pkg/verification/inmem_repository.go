package verification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryAttemptRepository implements AttemptRepository using in-memory storage.
// Interaction dispatch is concurrent, so access is guarded by a RWMutex.
type InMemoryAttemptRepository struct {
	mu       sync.RWMutex
	attempts map[string]Attempt
}

// NewInMemoryAttemptRepository creates a new in-memory attempt repository.
func NewInMemoryAttemptRepository() *InMemoryAttemptRepository {
	return &InMemoryAttemptRepository{
		attempts: make(map[string]Attempt),
	}
}

// Put inserts or overwrites the attempt for a user. A replacement gets a
// fresh attempt ID; the old code stops matching immediately.
func (r *InMemoryAttemptRepository) Put(ctx context.Context, userID, email, code string) (Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	attempt := Attempt{
		ID:        uuid.New(),
		UserID:    userID,
		Email:     email,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}
	r.attempts[userID] = attempt
	return attempt, nil
}

// Get returns the attempt for a user.
func (r *InMemoryAttemptRepository) Get(ctx context.Context, userID string) (Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attempt, ok := r.attempts[userID]
	if !ok {
		return Attempt{}, ErrNoAttempt
	}
	return attempt, nil
}

// HasPending reports whether an attempt exists for a user.
func (r *InMemoryAttemptRepository) HasPending(ctx context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.attempts[userID]
	return ok, nil
}

// Remove deletes the attempt for a user, if any.
func (r *InMemoryAttemptRepository) Remove(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.attempts, userID)
	return nil
}
