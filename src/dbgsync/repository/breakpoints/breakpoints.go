// Package breakpoints stores the authoritative breakpoint lists, keyed by source identity.
package breakpoints

import (
	"context"
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"github.com/uber/dbg-sync/src/dbgsync/model"
)

// Repository is a key-value store of breakpoint lists.
type Repository interface {
	// Get returns the breakpoints of sourceID, or an empty list.
	Get(ctx context.Context, sourceID string) (entity.Breakpoints, error)
	// Set replaces the breakpoints of sourceID. An empty list removes the source.
	Set(ctx context.Context, sourceID string, bps entity.Breakpoints) error
	Delete(ctx context.Context, sourceID string) error
	// All returns every stored list keyed by source identity.
	All(ctx context.Context) (map[string]entity.Breakpoints, error)
	// Restore replaces the whole store.
	Restore(ctx context.Context, all map[string]entity.Breakpoints) error
	SourceCount(ctx context.Context) (int, error)
}

type repository struct {
	mu       sync.Mutex
	memstore map[string][]model.Breakpoint
	stats    tally.Scope
}

// New returns a repository to a key-value breakpoint data store.
func New(stats tally.Scope) Repository {
	return &repository{
		memstore: make(map[string][]model.Breakpoint),
		stats:    stats.SubScope("breakpoints"),
	}
}

func (r *repository) Get(ctx context.Context, sourceID string) (entity.Breakpoints, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return mapper.ModelToBreakpoints(r.memstore[sourceID]), nil
}

func (r *repository) Set(ctx context.Context, sourceID string, bps entity.Breakpoints) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.setLocked(sourceID, bps)
	r.updateMetricsLocked()
	return nil
}

func (r *repository) Delete(ctx context.Context, sourceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memstore, sourceID)
	r.updateMetricsLocked()
	return nil
}

func (r *repository) All(ctx context.Context) (map[string]entity.Breakpoints, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[string]entity.Breakpoints, len(r.memstore))
	for id, bps := range r.memstore {
		result[id] = mapper.ModelToBreakpoints(bps)
	}
	return result, nil
}

func (r *repository) Restore(ctx context.Context, all map[string]entity.Breakpoints) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.memstore)
	for id, bps := range all {
		r.setLocked(id, bps)
	}
	r.updateMetricsLocked()
	return nil
}

func (r *repository) SourceCount(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.memstore), nil
}

func (r *repository) setLocked(sourceID string, bps entity.Breakpoints) {
	if len(bps) == 0 {
		delete(r.memstore, sourceID)
		return
	}
	r.memstore[sourceID] = mapper.BreakpointsToModel(bps.Dedup())
}

func (r *repository) updateMetricsLocked() {
	count := 0
	for _, bps := range r.memstore {
		count += len(bps)
	}
	r.stats.Gauge("sources").Update(float64(len(r.memstore)))
	r.stats.Gauge("count").Update(float64(count))
}
