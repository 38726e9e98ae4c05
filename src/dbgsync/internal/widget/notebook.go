package widget

import (
	"maps"
	"slices"
	"sync"

	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/signal"
)

// Notebook is an ordered collection of cells with one active cell.
type Notebook struct {
	base

	cfg           entity.EditorConfig
	list          *CellList
	activeChanged *signal.Signal[entity.Cell]

	cellsMu sync.Mutex
	cells   []*Cell
	active  int
}

var _ entity.Notebook = (*Notebook)(nil)

// NewNotebook creates an empty notebook whose code cells use cfg as their editor configuration.
func NewNotebook(id string, cfg entity.EditorConfig) *Notebook {
	return &Notebook{
		base:          base{id: id, onDispose: signal.New[struct{}]()},
		cfg:           maps.Clone(cfg),
		list:          NewCellList(),
		activeChanged: signal.New[entity.Cell](),
		active:        -1,
	}
}

// Widgets returns the displayed cells in order.
func (n *Notebook) Widgets() []entity.Cell {
	n.cellsMu.Lock()
	defer n.cellsMu.Unlock()

	cells := make([]entity.Cell, 0, len(n.cells))
	for _, c := range n.cells {
		cells = append(cells, c)
	}
	return cells
}

// Cell returns the concrete cell at i, or nil.
func (n *Notebook) Cell(i int) *Cell {
	n.cellsMu.Lock()
	defer n.cellsMu.Unlock()
	if i < 0 || i >= len(n.cells) {
		return nil
	}
	return n.cells[i]
}

// Cells returns the observable model list.
func (n *Notebook) Cells() entity.CellList { return n.list }

// EditorConfig returns the baseline code cell editor configuration.
func (n *Notebook) EditorConfig() entity.EditorConfig { return maps.Clone(n.cfg) }

// ActiveCell returns the active cell, or nil for an empty notebook.
func (n *Notebook) ActiveCell() entity.Cell {
	n.cellsMu.Lock()
	defer n.cellsMu.Unlock()
	if n.active < 0 || n.active >= len(n.cells) {
		return nil
	}
	return n.cells[n.active]
}

// ActiveCellIndex returns the index of the active cell, or -1.
func (n *Notebook) ActiveCellIndex() int {
	n.cellsMu.Lock()
	defer n.cellsMu.Unlock()
	return n.active
}

// SetActiveCellIndex activates the cell at i, clamped to the notebook bounds.
func (n *Notebook) SetActiveCellIndex(i int) {
	n.cellsMu.Lock()
	if len(n.cells) == 0 {
		n.cellsMu.Unlock()
		return
	}
	i = max(0, min(i, len(n.cells)-1))
	if i == n.active {
		n.cellsMu.Unlock()
		return
	}
	n.active = i
	cell := n.cells[i]
	n.cellsMu.Unlock()

	n.activeChanged.Emit(cell)
}

// OnActiveCellChanged registers fn for active cell changes.
func (n *Notebook) OnActiveCellChanged(fn func(entity.Cell)) (disconnect func()) {
	return n.activeChanged.Connect(fn)
}

// AddCell inserts a new cell of typ at i and returns it. The first cell becomes active.
func (n *Notebook) AddCell(i int, typ entity.CellType, source string) *Cell {
	cell := NewCell(NewCellModel(typ), source, n.cfg)

	n.cellsMu.Lock()
	i = max(0, min(i, len(n.cells)))
	n.cells = slices.Insert(n.cells, i, cell)
	first := n.active < 0
	if !first && i <= n.active {
		n.active++
	}
	n.cellsMu.Unlock()

	n.list.emit(n.list.insert(i, cell.Model()))
	if first {
		n.SetActiveCellIndex(i)
	}
	return cell
}

// RemoveCell removes and disposes the cell at i.
func (n *Notebook) RemoveCell(i int) {
	n.cellsMu.Lock()
	if i < 0 || i >= len(n.cells) {
		n.cellsMu.Unlock()
		return
	}
	cell := n.cells[i]
	n.cells = slices.Delete(n.cells, i, i+1)

	var activated *Cell
	switch {
	case len(n.cells) == 0:
		n.active = -1
	case i < n.active:
		n.active--
	case i == n.active:
		n.active = min(i, len(n.cells)-1)
		activated = n.cells[n.active]
	}
	n.cellsMu.Unlock()

	n.list.emit(n.list.remove(i))
	cell.Dispose()
	if activated != nil {
		n.activeChanged.Emit(activated)
	}
}

// MoveCell moves the cell at from to index to. The cell keeps its identity and editor.
func (n *Notebook) MoveCell(from, to int) {
	n.cellsMu.Lock()
	if from < 0 || from >= len(n.cells) || to < 0 || to >= len(n.cells) || from == to {
		n.cellsMu.Unlock()
		return
	}
	var activeCell *Cell
	if n.active >= 0 {
		activeCell = n.cells[n.active]
	}
	cell := n.cells[from]
	n.cells = slices.Delete(n.cells, from, from+1)
	n.cells = slices.Insert(n.cells, to, cell)
	if activeCell != nil {
		n.active = slices.Index(n.cells, activeCell)
	}
	n.cellsMu.Unlock()

	n.list.emit(n.list.move(from, to))
}

// ChangeCellType replaces the cell at i with a cell of typ holding the same source.
// The replacement has a new identity.
func (n *Notebook) ChangeCellType(i int, typ entity.CellType) *Cell {
	n.cellsMu.Lock()
	if i < 0 || i >= len(n.cells) {
		n.cellsMu.Unlock()
		return nil
	}
	old := n.cells[i]
	cell := NewCell(NewCellModel(typ), old.TextEditor().Text(), n.cfg)
	n.cells[i] = cell
	wasActive := i == n.active
	n.cellsMu.Unlock()

	n.list.emit(n.list.set(i, cell.Model()))
	old.Dispose()
	if wasActive {
		n.activeChanged.Emit(cell)
	}
	return cell
}

// Dispose disposes every cell, then the notebook.
func (n *Notebook) Dispose() {
	if !n.markDisposed() {
		return
	}

	n.cellsMu.Lock()
	cells := n.cells
	n.cells = nil
	n.active = -1
	n.cellsMu.Unlock()

	for _, c := range cells {
		c.Dispose()
	}
	n.activeChanged.DisconnectAll()
	n.emitDisposed()
}
