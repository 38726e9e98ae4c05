package editorhandler

import (
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"go.uber.org/zap"
)

type cellEntry struct {
	cell       entity.Cell
	handler    Handler
	disconnect func()
}

// CellMap owns one Handler per code cell, keyed by cell model id.
// A cell's handler is released when the cell is disposed.
type CellMap struct {
	params Params
	gauge  tally.Gauge

	mu       sync.Mutex
	disposed bool
	entries  map[string]*cellEntry
}

// NewCellMap creates an empty CellMap. Handlers are bound with p and the cell's editor.
// gauge, if set, tracks the number of bound cells.
func NewCellMap(p Params, gauge tally.Gauge) *CellMap {
	if p.Logger == nil {
		p.Logger = zap.NewNop().Sugar()
	}
	return &CellMap{
		params:  p,
		gauge:   gauge,
		entries: make(map[string]*cellEntry),
	}
}

// Add binds a handler to a code cell not bound yet. It is a no-op for any other cell.
func (m *CellMap) Add(cell entity.Cell) {
	if cell == nil || cell.IsDisposed() {
		return
	}
	model := cell.Model()
	if model.Type() != entity.CellTypeCode {
		return
	}
	id := model.ID()

	m.mu.Lock()
	_, exists := m.entries[id]
	disposed := m.disposed
	m.mu.Unlock()
	if exists || disposed {
		return
	}

	p := m.params
	p.Editor = cell.Editor()
	h, err := New(p)
	if err != nil {
		m.params.Logger.Warnw("binding cell editor", zap.String("cell", id), zap.Error(err))
		return
	}
	disconnect := cell.OnDisposed(func() { m.remove(id) })

	m.mu.Lock()
	if _, exists := m.entries[id]; exists || m.disposed {
		m.mu.Unlock()
		disconnect()
		h.Dispose()
		return
	}
	m.entries[id] = &cellEntry{cell: cell, handler: h, disconnect: disconnect}
	n := len(m.entries)
	m.mu.Unlock()

	// the cell may have gone away while its handler was being bound
	if cell.IsDisposed() {
		m.remove(id)
		return
	}
	m.updateGauge(n)
	m.params.Logger.Debugw("bound cell editor", zap.String("cell", id))
}

// Get returns the handler of the cell with the given model id.
func (m *CellMap) Get(id string) (Handler, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[id]
	if !ok {
		return nil, false
	}
	return entry.handler, true
}

// Handlers returns a snapshot of the handlers keyed by cell model id.
func (m *CellMap) Handlers() map[string]Handler {
	m.mu.Lock()
	defer m.mu.Unlock()

	handlers := make(map[string]Handler, len(m.entries))
	for id, entry := range m.entries {
		handlers[id] = entry.handler
	}
	return handlers
}

// Dispose releases every handler. When cfg is not nil, live cell editors are reset to it.
// Cells added afterwards are ignored.
func (m *CellMap) Dispose(cfg entity.EditorConfig) {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	m.disposed = true
	entries := m.entries
	m.entries = make(map[string]*cellEntry)
	m.mu.Unlock()

	for _, entry := range entries {
		entry.disconnect()
		entry.handler.Dispose()
		if editor := entry.cell.Editor(); cfg != nil && !editor.IsDisposed() {
			editor.SetOptions(cfg)
		}
	}
	m.updateGauge(0)
}

func (m *CellMap) remove(id string) {
	m.mu.Lock()
	entry, ok := m.entries[id]
	delete(m.entries, id)
	n := len(m.entries)
	m.mu.Unlock()
	if !ok {
		return
	}

	entry.disconnect()
	entry.handler.Dispose()
	m.updateGauge(n)
	m.params.Logger.Debugw("released cell editor", zap.String("cell", id))
}

func (m *CellMap) updateGauge(n int) {
	if m.gauge != nil {
		m.gauge.Update(float64(n))
	}
}
