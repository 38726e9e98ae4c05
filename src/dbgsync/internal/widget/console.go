package widget

import (
	"maps"
	"sync"

	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/signal"
)

// Console is a prompt cell plus the cells executed so far.
type Console struct {
	base

	cfg           entity.EditorConfig
	list          *CellList
	promptCreated *signal.Signal[entity.Cell]

	cellsMu sync.Mutex
	prompt  *Cell
	cells   []*Cell
}

var _ entity.Console = (*Console)(nil)

// NewConsole creates a console with an empty prompt cell.
func NewConsole(id string, cfg entity.EditorConfig) *Console {
	return &Console{
		base:          base{id: id, onDispose: signal.New[struct{}]()},
		cfg:           maps.Clone(cfg),
		list:          NewCellList(),
		promptCreated: signal.New[entity.Cell](),
		prompt:        NewCell(NewCellModel(entity.CellTypeCode), "", cfg),
	}
}

// PromptCell returns the current prompt cell.
func (c *Console) PromptCell() entity.Cell {
	c.cellsMu.Lock()
	defer c.cellsMu.Unlock()
	if c.prompt == nil {
		return nil
	}
	return c.prompt
}

// Prompt returns the concrete prompt cell, for driving edits.
func (c *Console) Prompt() *Cell {
	c.cellsMu.Lock()
	defer c.cellsMu.Unlock()
	return c.prompt
}

// OnPromptCellCreated registers fn for every new prompt cell.
func (c *Console) OnPromptCellCreated(fn func(entity.Cell)) (disconnect func()) {
	return c.promptCreated.Connect(fn)
}

// Widgets returns the executed cells in order.
func (c *Console) Widgets() []entity.Cell {
	c.cellsMu.Lock()
	defer c.cellsMu.Unlock()

	cells := make([]entity.Cell, 0, len(c.cells))
	for _, cell := range c.cells {
		cells = append(cells, cell)
	}
	return cells
}

// Cells returns the observable list of executed cell models.
func (c *Console) Cells() entity.CellList { return c.list }

// Execute moves the prompt cell to the executed cells and creates a new, empty prompt.
func (c *Console) Execute() *Cell {
	c.cellsMu.Lock()
	if c.prompt == nil {
		c.cellsMu.Unlock()
		return nil
	}
	executed := c.prompt
	c.cells = append(c.cells, executed)
	index := len(c.cells) - 1
	c.prompt = NewCell(NewCellModel(entity.CellTypeCode), "", c.cfg)
	prompt := c.prompt
	c.cellsMu.Unlock()

	c.list.emit(c.list.insert(index, executed.Model()))
	c.promptCreated.Emit(prompt)
	return executed
}

// Clear removes and disposes every executed cell.
func (c *Console) Clear() {
	c.cellsMu.Lock()
	cells := c.cells
	c.cells = nil
	c.cellsMu.Unlock()

	for i := len(cells) - 1; i >= 0; i-- {
		c.list.emit(c.list.remove(i))
		cells[i].Dispose()
	}
}

// Dispose disposes every cell, then the console.
func (c *Console) Dispose() {
	if !c.markDisposed() {
		return
	}

	c.cellsMu.Lock()
	cells := c.cells
	prompt := c.prompt
	c.cells = nil
	c.prompt = nil
	c.cellsMu.Unlock()

	for _, cell := range cells {
		cell.Dispose()
	}
	if prompt != nil {
		prompt.Dispose()
	}
	c.promptCreated.DisconnectAll()
	c.emitDisposed()
}

// Cell returns the executed cell at i, or nil.
func (c *Console) Cell(i int) *Cell {
	c.cellsMu.Lock()
	defer c.cellsMu.Unlock()
	if i < 0 || i >= len(c.cells) {
		return nil
	}
	return c.cells[i]
}
