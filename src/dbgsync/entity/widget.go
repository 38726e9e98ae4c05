package entity

// CellType distinguishes notebook cell kinds. Only code cells are bound to the debugger.
type CellType string

const (
	CellTypeCode     CellType = "code"
	CellTypeMarkdown CellType = "markdown"
	CellTypeRaw      CellType = "raw"
)

// CellListChangeType is the kind of mutation applied to a cell list.
type CellListChangeType string

const (
	CellListAdd    CellListChangeType = "add"
	CellListRemove CellListChangeType = "remove"
	CellListMove   CellListChangeType = "move"
	CellListSet    CellListChangeType = "set"
)

// CellModel is the identity-carrying model behind a cell widget.
type CellModel interface {
	// ID is unique within the notebook and stable across moves.
	ID() string
	Type() CellType
}

// CellListChange describes a single change of a cell list.
type CellListChange struct {
	Type      CellListChangeType
	OldIndex  int
	NewIndex  int
	OldValues []CellModel
	NewValues []CellModel
}

// CellList is the observable list of cell models.
type CellList interface {
	Len() int
	OnChanged(fn func(CellListChange)) (disconnect func())
}

// Widget is any debuggable widget.
type Widget interface {
	ID() string
	OnDisposed(fn func()) (disconnect func())
	IsDisposed() bool
}

// Cell is a displayed cell widget.
type Cell interface {
	Model() CellModel
	Editor() Editor
	OnDisposed(fn func()) (disconnect func())
	IsDisposed() bool
}

// Notebook is a notebook widget under debug.
type Notebook interface {
	Widget
	// Widgets returns the displayed cell widgets in order.
	Widgets() []Cell
	Cells() CellList
	ActiveCell() Cell
	ActiveCellIndex() int
	SetActiveCellIndex(i int)
	OnActiveCellChanged(fn func(Cell)) (disconnect func())
	// EditorConfig is the baseline configuration of code cell editors.
	EditorConfig() EditorConfig
}

// FileWidget is a standalone file editor widget.
type FileWidget interface {
	Widget
	// Path is a filesystem path or a file URI.
	Path() string
	Editor() Editor
	EditorConfig() EditorConfig
}

// Console is a console widget: executed cells plus a prompt cell.
type Console interface {
	Widget
	PromptCell() Cell
	OnPromptCellCreated(fn func(Cell)) (disconnect func())
	// Widgets returns the executed cell widgets in order.
	Widgets() []Cell
	Cells() CellList
}
