package model

// Methods served to frontend connections.
const (
	MethodAttach           = "dbgsync/attach"
	MethodDetach           = "dbgsync/detach"
	MethodDidOpenFile      = "dbgsync/didOpenFile"
	MethodDidChangeFile    = "dbgsync/didChangeFile"
	MethodDidClose         = "dbgsync/didClose"
	MethodDidOpenNotebook  = "dbgsync/didOpenNotebook"
	MethodDidChangeCell    = "dbgsync/didChangeCell"
	MethodDidInsertCell    = "dbgsync/didInsertCell"
	MethodDidRemoveCell    = "dbgsync/didRemoveCell"
	MethodDidMoveCell      = "dbgsync/didMoveCell"
	MethodDidActivateCell  = "dbgsync/didActivateCell"
	MethodDidOpenConsole   = "dbgsync/didOpenConsole"
	MethodDidChangePrompt  = "dbgsync/didChangePrompt"
	MethodDidExecute       = "dbgsync/didExecute"
	MethodToggleBreakpoint = "dbgsync/toggleBreakpoint"
	MethodStopped          = "dbgsync/stopped"
	MethodContinued        = "dbgsync/continued"
	MethodBreakpoints      = "dbgsync/breakpoints"
)

// Notifications sent to frontend connections.
const (
	MethodBreakpointsChanged  = "dbgsync/breakpointsChanged"
	MethodCurrentFrameChanged = "dbgsync/currentFrameChanged"
)

// AttachParams start debugging the kernel session of a frontend connection.
type AttachParams struct {
	Name string `json:"name"`
}

// AttachResult reports the debug session created for the connection.
type AttachResult struct {
	SessionID string `json:"sessionId"`
	Started   bool   `json:"started"`
}

// OpenFileParams mirror a file editor opened in the frontend.
// With Watch set the text is read from disk and follows later writes to the file.
type OpenFileParams struct {
	URI   string `json:"uri"`
	Text  string `json:"text"`
	Watch bool   `json:"watch,omitempty"`
}

// ChangeFileParams replace the full text of a mirrored file.
type ChangeFileParams struct {
	URI  string `json:"uri"`
	Text string `json:"text"`
}

// CloseParams close a mirrored file or notebook.
type CloseParams struct {
	WidgetID string `json:"widgetId"`
}

// NotebookCell is one cell of a mirrored notebook.
type NotebookCell struct {
	Type   string `json:"type"`
	Source string `json:"source"`
}

// OpenNotebookParams mirror a notebook opened in the frontend.
type OpenNotebookParams struct {
	ID    string         `json:"id"`
	Cells []NotebookCell `json:"cells"`
}

// ChangeCellParams replace the source of a notebook cell.
type ChangeCellParams struct {
	NotebookID string `json:"notebookId"`
	Index      int    `json:"index"`
	Source     string `json:"source"`
}

// InsertCellParams insert a cell into a mirrored notebook.
type InsertCellParams struct {
	NotebookID string `json:"notebookId"`
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Source     string `json:"source"`
}

// CellParams select one cell of a mirrored notebook.
type CellParams struct {
	NotebookID string `json:"notebookId"`
	Index      int    `json:"index"`
}

// MoveCellParams move a notebook cell from one index to another.
type MoveCellParams struct {
	NotebookID string `json:"notebookId"`
	From       int    `json:"from"`
	To         int    `json:"to"`
}

// OpenConsoleParams mirror a console opened in the frontend.
type OpenConsoleParams struct {
	ID string `json:"id"`
}

// ChangePromptParams replace the source of a console prompt.
type ChangePromptParams struct {
	ConsoleID string `json:"consoleId"`
	Source    string `json:"source"`
}

// ExecuteParams execute the prompt of a console.
type ExecuteParams struct {
	ConsoleID string `json:"consoleId"`
}

// ToggleBreakpointParams click the breakpoint gutter of a mirrored editor.
type ToggleBreakpointParams struct {
	WidgetID string `json:"widgetId"`
	// Cell is the cell index for notebooks and consoles, ignored for files.
	// The prompt of a console follows its executed cells.
	Cell int `json:"cell,omitempty"`
	// Line is 1-based.
	Line int `json:"line"`
}

// FrameParams carry the frame the kernel stopped at.
type FrameParams struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Line       int    `json:"line"`
	SourcePath string `json:"sourcePath"`
}

// BreakpointsParams select the widget whose breakpoint markers are returned.
type BreakpointsParams struct {
	WidgetID string `json:"widgetId"`
}

// EditorBreakpoints are the breakpoint markers of one editor.
type EditorBreakpoints struct {
	Cell     int    `json:"cell"`
	SourceID string `json:"sourceId"`
	// Lines are 1-based.
	Lines []int `json:"lines"`
}

// BreakpointsResult lists the markers of every editor of a widget.
type BreakpointsResult struct {
	Editors []EditorBreakpoints `json:"editors"`
}

// BreakpointsChangedParams notify a frontend that the breakpoints of a source changed.
type BreakpointsChangedParams struct {
	SourceID    string       `json:"sourceId"`
	Breakpoints []Breakpoint `json:"breakpoints"`
}

// CurrentFrameChangedParams notify a frontend of the current frame. Frame is nil when execution resumed.
type CurrentFrameChangedParams struct {
	Frame *FrameParams `json:"frame"`
}
