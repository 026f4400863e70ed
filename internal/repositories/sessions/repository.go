// Package sessions keeps the live encounter-building sessions, each owning one roster store
package sessions

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionsmock github.com/KirkDiggler/encounter-builder/internal/repositories/sessions Repository

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/encounter-builder/internal/engine/roster"
	"github.com/KirkDiggler/encounter-builder/internal/entities"
)

// Repository defines the storage interface for sessions
type Repository interface {
	// Create registers a new session with empty rosters
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a live session and marks it active
	// Returns errors.NotFound if the session doesn't exist or has expired
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a session
	// Returns errors.NotFound if the session doesn't exist
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// Session is one encounter being built. All roster access goes through Mutate and
// Snapshot, which serialize on the session's lock.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	store      *roster.Store
	lastActive time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:         id,
		CreatedAt:  now,
		store:      roster.New(),
		lastActive: now,
	}
}

// Mutate runs fn against the session's roster store while holding the session lock
// and returns the snapshot the mutation produced
func (s *Session) Mutate(fn func(store *roster.Store)) *entities.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.store)
	return s.store.Snapshot()
}

// Snapshot returns a copy of the current snapshot
func (s *Session) Snapshot() *entities.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Snapshot()
}

// LastActive reports when the session was last retrieved
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastActive
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = now
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(s.LastActive()) > ttl
}

// CreateInput defines the input for creating a session
type CreateInput struct {
	ID string
}

// CreateOutput defines the output for creating a session
type CreateOutput struct {
	Session *Session
}

// GetInput defines the input for getting a session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *Session
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}
