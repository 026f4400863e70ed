package sessions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/encounter-builder/internal/errors"
	"github.com/KirkDiggler/encounter-builder/internal/pkg/clock"
)

// InMemoryConfig configures the in-memory session registry
type InMemoryConfig struct {
	Clock clock.Clock
	// TTL is how long a session survives without being retrieved. Zero keeps sessions forever.
	TTL time.Duration
}

// Validate validates the config and applies defaults
func (c *InMemoryConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	clock clock.Clock
	ttl   time.Duration

	mu    sync.RWMutex
	store map[string]*Session
}

// NewInMemory creates a new in-memory session registry
func NewInMemory(cfg *InMemoryConfig) (*InMemoryRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &InMemoryRepository{
		clock: cfg.Clock,
		ttl:   cfg.TTL,
		store: make(map[string]*Session),
	}, nil
}

var _ Repository = (*InMemoryRepository)(nil)

// Create registers a new session. Expired sessions are swept first.
func (r *InMemoryRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.ID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked(ctx, now)

	if _, exists := r.store[input.ID]; exists {
		return nil, errors.AlreadyExistsf("session %s already exists", input.ID).
			WithMeta("session_id", input.ID)
	}

	session := newSession(input.ID, now)
	r.store[input.ID] = session

	return &CreateOutput{Session: session}, nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.ID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	now := r.clock.Now()

	r.mu.RLock()
	session, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("session %s not found", input.ID).
			WithMeta("session_id", input.ID)
	}

	if session.expired(now, r.ttl) {
		r.mu.Lock()
		if r.store[input.ID] == session {
			delete(r.store, input.ID)
		}
		r.mu.Unlock()

		slog.InfoContext(ctx, "session expired", "session_id", input.ID)
		return nil, errors.NotFoundf("session %s expired", input.ID).
			WithMeta("session_id", input.ID)
	}

	session.touch(now)

	return &GetOutput{Session: session}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.ID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("session %s not found", input.ID).
			WithMeta("session_id", input.ID)
	}

	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// Len reports how many sessions are registered, expired ones included
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}

func (r *InMemoryRepository) sweepLocked(ctx context.Context, now time.Time) {
	for id, session := range r.store {
		if session.expired(now, r.ttl) {
			delete(r.store, id)
			slog.DebugContext(ctx, "swept expired session", "session_id", id)
		}
	}
}
