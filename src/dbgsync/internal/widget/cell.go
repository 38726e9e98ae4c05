// Package widget provides in-process notebook, file and console widgets backed by texteditor.
package widget

import (
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/signal"
	"github.com/uber/dbg-sync/src/dbgsync/internal/texteditor"
)

// CellModel is an immutable cell identity.
type CellModel struct {
	id  string
	typ entity.CellType
}

var _ entity.CellModel = (*CellModel)(nil)

// NewCellModel creates a model of the given type with a fresh id.
func NewCellModel(typ entity.CellType) *CellModel {
	return &CellModel{id: uuid.Must(uuid.NewV4()).String(), typ: typ}
}

// NewCellModelWithID creates a model with an explicit id.
func NewCellModelWithID(id string, typ entity.CellType) *CellModel {
	return &CellModel{id: id, typ: typ}
}

// ID returns the cell identity.
func (m *CellModel) ID() string { return m.id }

// Type returns the cell type.
func (m *CellModel) Type() entity.CellType { return m.typ }

// Cell couples a cell model with its editor.
type Cell struct {
	model  entity.CellModel
	editor *texteditor.Editor

	mu        sync.Mutex
	disposed  bool
	onDispose *signal.Signal[struct{}]
}

var _ entity.Cell = (*Cell)(nil)

// NewCell creates a cell widget showing source with the given editor configuration.
func NewCell(model entity.CellModel, source string, cfg entity.EditorConfig) *Cell {
	return &Cell{
		model:     model,
		editor:    texteditor.New(source, cfg),
		onDispose: signal.New[struct{}](),
	}
}

// Model returns the cell model.
func (c *Cell) Model() entity.CellModel { return c.model }

// Editor returns the cell editor.
func (c *Cell) Editor() entity.Editor { return c.editor }

// TextEditor returns the concrete editor, for driving edits.
func (c *Cell) TextEditor() *texteditor.Editor { return c.editor }

// OnDisposed registers fn to run once the cell is disposed.
func (c *Cell) OnDisposed(fn func()) (disconnect func()) {
	return c.onDispose.Connect(func(struct{}) { fn() })
}

// IsDisposed reports whether the cell has been disposed.
func (c *Cell) IsDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// Dispose emits the disposed signal, then disposes the editor.
func (c *Cell) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	c.mu.Unlock()

	c.onDispose.Emit(struct{}{})
	c.onDispose.DisconnectAll()
	c.editor.Dispose()
}
