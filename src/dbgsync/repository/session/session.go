package session

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"github.com/uber/dbg-sync/src/dbgsync/model"
)

// Repository is an entity-scoped repository of debug sessions keyed by connection id.
type Repository interface {
	Get(context.Context, uuid.UUID) (*entity.Session, error)
	Set(context.Context, *entity.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	SessionCount(ctx context.Context) (int, error)
}

type repository struct {
	mu       sync.Mutex
	memstore map[uuid.UUID]*model.Session
	stats    tally.Scope
}

// New returns a repository to a key-value Session data store.
func New(stats tally.Scope) Repository {
	return &repository{
		memstore: make(map[uuid.UUID]*model.Session),
		stats:    stats,
	}
}

// Get returns the Session associated with the given id.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.memstore[id]
	if !ok {
		return nil, &errors.SessionNotFoundError{ID: id}
	}
	return mapper.ModelToSession(s)
}

// Set sets the Session to its associated id.
func (r *repository) Set(ctx context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s == nil {
		return errors.New("can't save nil session")
	}
	r.memstore[s.ID] = mapper.SessionToModel(s)
	r.stats.Gauge("active_sessions").Update(float64(len(r.memstore)))
	return nil
}

// Delete removes the Session associated with the given id.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memstore, id)
	r.stats.Gauge("active_sessions").Update(float64(len(r.memstore)))
	return nil
}

// SessionCount returns the total count of known sessions.
func (r *repository) SessionCount(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.memstore), nil
}
