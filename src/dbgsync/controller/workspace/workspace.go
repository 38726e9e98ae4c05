// Package workspace mirrors the files and notebooks of each frontend connection and keeps them bound to the debugger.
package workspace

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	debugservice "github.com/uber/dbg-sync/src/dbgsync/controller/debug-service"
	debuggerhandler "github.com/uber/dbg-sync/src/dbgsync/controller/debugger-handler"
	filehandler "github.com/uber/dbg-sync/src/dbgsync/controller/file-handler"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/gateway/frontend"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"github.com/uber/dbg-sync/src/dbgsync/internal/filewatch"
	"github.com/uber/dbg-sync/src/dbgsync/internal/fs"
	"github.com/uber/dbg-sync/src/dbgsync/internal/texteditor"
	"github.com/uber/dbg-sync/src/dbgsync/internal/widget"
	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"github.com/uber/dbg-sync/src/dbgsync/model"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _nameKey = "workspace"

var _defaultEditorConfig = entity.EditorConfig{entity.OptionLineNumbers: false}

// Controller handles the requests of frontend connections.
// Every method except InitSession and EndSession expects a context carrying the connection id.
type Controller interface {
	// InitSession registers a new frontend connection and returns its id.
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	// EndSession closes every widget of the connection and ends its debug session.
	EndSession(ctx context.Context, id uuid.UUID) error

	// Attach makes the connection the active debug session and binds its widgets.
	Attach(ctx context.Context, params *model.AttachParams) (*model.AttachResult, error)
	// Detach ends the debug session of the connection, if active.
	Detach(ctx context.Context) error

	DidOpenFile(ctx context.Context, params *model.OpenFileParams) error
	DidChangeFile(ctx context.Context, params *model.ChangeFileParams) error
	DidOpenNotebook(ctx context.Context, params *model.OpenNotebookParams) error
	DidChangeCell(ctx context.Context, params *model.ChangeCellParams) error
	DidInsertCell(ctx context.Context, params *model.InsertCellParams) error
	DidRemoveCell(ctx context.Context, params *model.CellParams) error
	DidMoveCell(ctx context.Context, params *model.MoveCellParams) error
	DidActivateCell(ctx context.Context, params *model.CellParams) error
	DidOpenConsole(ctx context.Context, params *model.OpenConsoleParams) error
	DidChangePrompt(ctx context.Context, params *model.ChangePromptParams) error
	// DidExecute moves the prompt of a console to its executed cells.
	DidExecute(ctx context.Context, params *model.ExecuteParams) error
	// DidClose closes a file, notebook or console.
	DidClose(ctx context.Context, params *model.CloseParams) error

	// ToggleBreakpoint clicks the breakpoint gutter of a file, notebook cell or console cell.
	ToggleBreakpoint(ctx context.Context, params *model.ToggleBreakpointParams) error
	// Breakpoints returns the breakpoint markers shown by every editor of a widget.
	Breakpoints(ctx context.Context, params *model.BreakpointsParams) (*model.BreakpointsResult, error)

	// Stopped sets the current frame of the active session.
	Stopped(ctx context.Context, params *model.FrameParams) error
	// Continued clears the current frame of the active session.
	Continued(ctx context.Context) error
}

// Params are inbound parameters to initialize a new Controller.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Service   debugservice.Service
	Registry  debuggerhandler.Registry
	Frontend  frontend.Gateway
	Watcher   filewatch.Watcher `optional:"true"`
	FS        fs.DbgSyncFS
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

// mirror is a widget owned by a connection.
type mirror interface {
	entity.Widget
	Dispose()
}

type connection struct {
	files     map[string]*widget.FileWidget
	notebooks map[string]*widget.Notebook
	consoles  map[string]*widget.Console
}

type controller struct {
	service  debugservice.Service
	registry debuggerhandler.Registry
	frontend frontend.Gateway
	watcher  filewatch.Watcher
	fs       fs.DbgSyncFS
	logger   *zap.SugaredLogger
	stats    tally.Scope

	mu          sync.Mutex
	connections map[uuid.UUID]*connection
	disconnects []func()
}

// New creates a new workspace Controller. Service notifications are forwarded to the frontend of the active session.
func New(p Params) (Controller, error) {
	if p.Service == nil {
		return nil, errors.MissingServiceError
	}
	if p.Lifecycle == nil || p.Registry == nil || p.Frontend == nil || p.FS == nil {
		return nil, errors.New("required parameters are missing")
	}

	c := &controller{
		service:     p.Service,
		registry:    p.Registry,
		frontend:    p.Frontend,
		watcher:     p.Watcher,
		fs:          p.FS,
		logger:      p.Logger.With("controller", _nameKey),
		stats:       p.Stats.SubScope("workspace"),
		connections: make(map[uuid.UUID]*connection),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.disconnects = []func(){
				c.service.OnBreakpointsChanged(c.onBreakpointsChanged),
				c.service.OnCurrentFrameChanged(c.onCurrentFrameChanged),
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			c.mu.Lock()
			disconnects := c.disconnects
			c.disconnects = nil
			ids := make([]uuid.UUID, 0, len(c.connections))
			for id := range c.connections {
				ids = append(ids, id)
			}
			c.mu.Unlock()

			for _, disconnect := range disconnects {
				disconnect()
			}
			var err error
			for _, id := range ids {
				err = multierr.Append(err, c.EndSession(ctx, id))
			}
			return err
		},
	})
	return c, nil
}

func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.frontend.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}

	c.mu.Lock()
	c.connections[id] = &connection{
		files:     make(map[string]*widget.FileWidget),
		notebooks: make(map[string]*widget.Notebook),
		consoles:  make(map[string]*widget.Console),
	}
	n := len(c.connections)
	c.mu.Unlock()

	c.stats.Gauge("connections").Update(float64(n))
	return id, nil
}

func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	conn, ok := c.connections[id]
	delete(c.connections, id)
	n := len(c.connections)
	c.mu.Unlock()

	var err error
	if c.isActive(id) {
		err = multierr.Append(err, c.service.EndSession(ctx))
	}
	if ok {
		for _, w := range conn.widgets() {
			w.Dispose()
		}
	}
	err = multierr.Append(err, c.frontend.DeregisterClient(ctx, id))

	c.stats.Gauge("connections").Update(float64(n))
	return err
}

func (c *controller) Attach(ctx context.Context, params *model.AttachParams) (*model.AttachResult, error) {
	id, err := c.connectionID(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.service.SetSession(ctx, &entity.Session{ID: id, Name: params.Name}); err != nil {
		return nil, fmt.Errorf("attaching session %q: %w", id, err)
	}
	if err := c.rebind(ctx); err != nil {
		return nil, err
	}

	c.logger.Infow("session attached", zap.Stringer("id", id), zap.String("name", params.Name))
	return &model.AttachResult{SessionID: id.String(), Started: c.service.IsStarted()}, nil
}

func (c *controller) Detach(ctx context.Context) error {
	id, err := c.connectionID(ctx)
	if err != nil {
		return err
	}
	if !c.isActive(id) {
		return nil
	}

	err = c.service.EndSession(ctx)
	return multierr.Append(err, c.rebind(ctx))
}

func (c *controller) DidOpenFile(ctx context.Context, params *model.OpenFileParams) error {
	id, conn, err := c.connection(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	existing, ok := conn.files[params.URI]
	c.mu.Unlock()
	if ok {
		if !params.Watch {
			existing.TextEditor().SetText(params.Text)
		}
		return nil
	}

	text := params.Text
	if params.Watch {
		content, err := c.fs.ReadFile(filehandler.Filename(params.URI))
		if err != nil {
			return fmt.Errorf("reading %q: %w", params.URI, err)
		}
		text = string(content)
	}

	w := widget.NewFileWidget(widgetID(id, params.URI), params.URI, text, _defaultEditorConfig)
	if params.Watch {
		if err := c.watch(w); err != nil {
			w.Dispose()
			return err
		}
	}

	c.mu.Lock()
	conn.files[params.URI] = w
	c.mu.Unlock()

	return c.bind(ctx, id, w)
}

// watch reloads the mirror after every write to its file on disk, until the mirror is disposed.
func (c *controller) watch(w *widget.FileWidget) error {
	if c.watcher == nil {
		return errors.New("file watching is not available")
	}

	path := filehandler.Filename(w.Path())
	cancel, err := c.watcher.Watch(path, func() { c.reload(w, path) })
	if err != nil {
		return err
	}
	w.OnDisposed(cancel)
	return nil
}

func (c *controller) reload(w *widget.FileWidget, path string) {
	if w.IsDisposed() {
		return
	}
	content, err := c.fs.ReadFile(path)
	if err != nil {
		c.logger.Warnw("reloading watched file", zap.String("path", path), zap.Error(err))
		return
	}
	if text := string(content); text != w.TextEditor().Text() {
		w.TextEditor().SetText(text)
	}
}

func (c *controller) DidChangeFile(ctx context.Context, params *model.ChangeFileParams) error {
	w, err := c.file(ctx, params.URI)
	if err != nil {
		return err
	}
	w.TextEditor().SetText(params.Text)
	return nil
}

func (c *controller) DidOpenNotebook(ctx context.Context, params *model.OpenNotebookParams) error {
	id, conn, err := c.connection(ctx)
	if err != nil {
		return err
	}

	nb := widget.NewNotebook(widgetID(id, params.ID), _defaultEditorConfig)
	for i, cell := range params.Cells {
		nb.AddCell(i, mapper.NotebookCellToCellType(cell), cell.Source)
	}

	c.mu.Lock()
	previous := conn.notebooks[params.ID]
	conn.notebooks[params.ID] = nb
	c.mu.Unlock()

	// a reopened notebook replaces the previous mirror
	if previous != nil {
		previous.Dispose()
	}
	return c.bind(ctx, id, nb)
}

func (c *controller) DidChangeCell(ctx context.Context, params *model.ChangeCellParams) error {
	cell, err := c.cell(ctx, params.NotebookID, params.Index)
	if err != nil {
		return err
	}
	cell.TextEditor().SetText(params.Source)
	return nil
}

func (c *controller) DidInsertCell(ctx context.Context, params *model.InsertCellParams) error {
	nb, err := c.notebook(ctx, params.NotebookID)
	if err != nil {
		return err
	}
	if params.Index < 0 || params.Index > nb.Cells().Len() {
		return &errors.CellNotFoundError{NotebookID: params.NotebookID, Index: params.Index}
	}
	nb.AddCell(params.Index, mapper.NotebookCellToCellType(model.NotebookCell{Type: params.Type}), params.Source)
	return nil
}

func (c *controller) DidRemoveCell(ctx context.Context, params *model.CellParams) error {
	nb, err := c.notebook(ctx, params.NotebookID)
	if err != nil {
		return err
	}
	if nb.Cell(params.Index) == nil {
		return &errors.CellNotFoundError{NotebookID: params.NotebookID, Index: params.Index}
	}
	nb.RemoveCell(params.Index)
	return nil
}

func (c *controller) DidMoveCell(ctx context.Context, params *model.MoveCellParams) error {
	nb, err := c.notebook(ctx, params.NotebookID)
	if err != nil {
		return err
	}
	for _, i := range []int{params.From, params.To} {
		if nb.Cell(i) == nil {
			return &errors.CellNotFoundError{NotebookID: params.NotebookID, Index: i}
		}
	}
	nb.MoveCell(params.From, params.To)
	return nil
}

func (c *controller) DidActivateCell(ctx context.Context, params *model.CellParams) error {
	nb, err := c.notebook(ctx, params.NotebookID)
	if err != nil {
		return err
	}
	if nb.Cell(params.Index) == nil {
		return &errors.CellNotFoundError{NotebookID: params.NotebookID, Index: params.Index}
	}
	nb.SetActiveCellIndex(params.Index)
	return nil
}

func (c *controller) DidOpenConsole(ctx context.Context, params *model.OpenConsoleParams) error {
	id, conn, err := c.connection(ctx)
	if err != nil {
		return err
	}

	con := widget.NewConsole(widgetID(id, params.ID), _defaultEditorConfig)

	c.mu.Lock()
	previous := conn.consoles[params.ID]
	conn.consoles[params.ID] = con
	c.mu.Unlock()

	if previous != nil {
		previous.Dispose()
	}
	return c.bind(ctx, id, con)
}

func (c *controller) DidChangePrompt(ctx context.Context, params *model.ChangePromptParams) error {
	con, err := c.console(ctx, params.ConsoleID)
	if err != nil {
		return err
	}
	prompt := con.Prompt()
	if prompt == nil {
		return &errors.WidgetNotFoundError{WidgetID: params.ConsoleID}
	}
	prompt.TextEditor().SetText(params.Source)
	return nil
}

func (c *controller) DidExecute(ctx context.Context, params *model.ExecuteParams) error {
	con, err := c.console(ctx, params.ConsoleID)
	if err != nil {
		return err
	}
	if con.Execute() == nil {
		return &errors.WidgetNotFoundError{WidgetID: params.ConsoleID}
	}
	return nil
}

func (c *controller) DidClose(ctx context.Context, params *model.CloseParams) error {
	_, conn, err := c.connection(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	var w mirror
	if f, ok := conn.files[params.WidgetID]; ok {
		delete(conn.files, params.WidgetID)
		w = f
	} else if nb, ok := conn.notebooks[params.WidgetID]; ok {
		delete(conn.notebooks, params.WidgetID)
		w = nb
	} else if con, ok := conn.consoles[params.WidgetID]; ok {
		delete(conn.consoles, params.WidgetID)
		w = con
	}
	c.mu.Unlock()

	if w == nil {
		return &errors.WidgetNotFoundError{WidgetID: params.WidgetID}
	}
	w.Dispose()
	return nil
}

func (c *controller) ToggleBreakpoint(ctx context.Context, params *model.ToggleBreakpointParams) error {
	id, err := c.connectionID(ctx)
	if err != nil {
		return err
	}
	if !c.isActive(id) {
		return &errors.NoSessionError{}
	}

	editor, err := c.editor(ctx, params.WidgetID, params.Cell)
	if err != nil {
		return err
	}
	if params.Line < 1 || params.Line > editor.LineCount() {
		return &errors.InvalidLineError{SourceID: params.WidgetID, Line: params.Line}
	}
	editor.ClickGutter(params.Line - 1)
	return nil
}

func (c *controller) Breakpoints(ctx context.Context, params *model.BreakpointsParams) (*model.BreakpointsResult, error) {
	if f, err := c.file(ctx, params.WidgetID); err == nil {
		return &model.BreakpointsResult{Editors: []model.EditorBreakpoints{
			editorBreakpoints(0, filehandler.Filename(f.Path()), f.TextEditor()),
		}}, nil
	}

	result := &model.BreakpointsResult{Editors: []model.EditorBreakpoints{}}
	if con, err := c.console(ctx, params.WidgetID); err == nil {
		cells := con.Widgets()
		if prompt := con.PromptCell(); prompt != nil {
			cells = append(cells, prompt)
		}
		for i, cell := range cells {
			result.Editors = append(result.Editors, editorBreakpoints(i, c.service.GetCodeID(cell.Editor().Text()), cell.Editor()))
		}
		return result, nil
	}

	nb, err := c.notebook(ctx, params.WidgetID)
	if err != nil {
		return nil, err
	}
	for i, cell := range nb.Widgets() {
		if cell.Model().Type() != entity.CellTypeCode {
			continue
		}
		text := cell.Editor().Text()
		result.Editors = append(result.Editors, editorBreakpoints(i, c.service.GetCodeID(text), cell.Editor()))
	}
	return result, nil
}

func (c *controller) Stopped(ctx context.Context, params *model.FrameParams) error {
	id, err := c.connectionID(ctx)
	if err != nil {
		return err
	}
	if !c.isActive(id) {
		return &errors.NoSessionError{}
	}
	c.service.SetCurrentFrame(mapper.FrameParamsToFrame(params))
	return nil
}

func (c *controller) Continued(ctx context.Context) error {
	id, err := c.connectionID(ctx)
	if err != nil {
		return err
	}
	if !c.isActive(id) {
		return &errors.NoSessionError{}
	}
	c.service.SetCurrentFrame(nil)
	return nil
}

func (c *controller) onBreakpointsChanged(sourceID string) {
	sess := c.service.Session()
	if sess == nil {
		return
	}
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, sess.ID)
	params := mapper.BreakpointsToBreakpointsChangedParams(sourceID, c.service.GetBreakpoints(sourceID))
	if err := c.frontend.BreakpointsChanged(ctx, params); err != nil {
		c.logger.Warnw("notifying breakpoints change", zap.String("source", sourceID), zap.Error(err))
	}
}

func (c *controller) onCurrentFrameChanged(frame *entity.Frame) {
	sess := c.service.Session()
	if sess == nil {
		return
	}
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, sess.ID)
	if err := c.frontend.CurrentFrameChanged(ctx, mapper.FrameToCurrentFrameChangedParams(frame)); err != nil {
		c.logger.Warnw("notifying current frame", zap.Error(err))
	}
}

// rebind binds the widgets of the active connection and unbinds every other widget.
func (c *controller) rebind(ctx context.Context) error {
	c.mu.Lock()
	widgets := make(map[uuid.UUID][]mirror, len(c.connections))
	for id, conn := range c.connections {
		widgets[id] = conn.widgets()
	}
	c.mu.Unlock()

	var err error
	for id, ws := range widgets {
		for _, w := range ws {
			err = multierr.Append(err, c.bind(ctx, id, w))
		}
	}
	return err
}

// bind updates the binding of w. Widgets of a connection other than the active session are unbound.
func (c *controller) bind(ctx context.Context, id uuid.UUID, w entity.Widget) error {
	sess := c.service.Session()
	if sess == nil || sess.ID != id {
		sess = &entity.Session{ID: id}
	}
	return c.registry.Update(ctx, w, sess)
}

func (c *controller) isActive(id uuid.UUID) bool {
	sess := c.service.Session()
	return sess != nil && sess.ID == id
}

func (c *controller) connectionID(ctx context.Context) (uuid.UUID, error) {
	id, _, err := c.connection(ctx)
	return id, err
}

// connection returns the connection of the request context. Its maps are guarded by c.mu.
func (c *controller) connection(ctx context.Context) (uuid.UUID, *connection, error) {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return uuid.Nil, nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	conn, ok := c.connections[id]
	if !ok {
		return uuid.Nil, nil, &errors.SessionNotFoundError{ID: id}
	}
	return id, conn, nil
}

func (c *controller) file(ctx context.Context, uri string) (*widget.FileWidget, error) {
	_, conn, err := c.connection(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	w, ok := conn.files[uri]
	if !ok {
		return nil, &errors.WidgetNotFoundError{WidgetID: uri}
	}
	return w, nil
}

func (c *controller) notebook(ctx context.Context, notebookID string) (*widget.Notebook, error) {
	_, conn, err := c.connection(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	nb, ok := conn.notebooks[notebookID]
	if !ok {
		return nil, &errors.WidgetNotFoundError{WidgetID: notebookID}
	}
	return nb, nil
}

func (c *controller) console(ctx context.Context, consoleID string) (*widget.Console, error) {
	_, conn, err := c.connection(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	con, ok := conn.consoles[consoleID]
	if !ok {
		return nil, &errors.WidgetNotFoundError{WidgetID: consoleID}
	}
	return con, nil
}

func (c *controller) cell(ctx context.Context, notebookID string, index int) (*widget.Cell, error) {
	nb, err := c.notebook(ctx, notebookID)
	if err != nil {
		return nil, err
	}
	cell := nb.Cell(index)
	if cell == nil {
		return nil, &errors.CellNotFoundError{NotebookID: notebookID, Index: index}
	}
	return cell, nil
}

// editor returns the editor of a file, or of cell index of a notebook or console.
func (c *controller) editor(ctx context.Context, widgetID string, index int) (*texteditor.Editor, error) {
	if f, err := c.file(ctx, widgetID); err == nil {
		return f.TextEditor(), nil
	}
	if con, err := c.console(ctx, widgetID); err == nil {
		cell := con.Cell(index)
		if cell == nil && index == len(con.Widgets()) {
			cell = con.Prompt()
		}
		if cell == nil {
			return nil, &errors.CellNotFoundError{NotebookID: widgetID, Index: index}
		}
		return cell.TextEditor(), nil
	}
	cell, err := c.cell(ctx, widgetID, index)
	if err != nil {
		return nil, err
	}
	return cell.TextEditor(), nil
}

func (conn *connection) widgets() []mirror {
	widgets := make([]mirror, 0, len(conn.files)+len(conn.notebooks)+len(conn.consoles))
	for _, f := range conn.files {
		widgets = append(widgets, f)
	}
	for _, nb := range conn.notebooks {
		widgets = append(widgets, nb)
	}
	for _, con := range conn.consoles {
		widgets = append(widgets, con)
	}
	return widgets
}

// widgetID scopes a frontend widget id to its connection.
func widgetID(id uuid.UUID, frontendID string) string {
	return fmt.Sprintf("%s/%s", id, frontendID)
}

func editorBreakpoints(index int, sourceID string, editor entity.Editor) model.EditorBreakpoints {
	marked := editor.MarkedLines()
	lines := make([]int, 0, len(marked))
	for _, line := range marked {
		lines = append(lines, line+1)
	}
	return model.EditorBreakpoints{Cell: index, SourceID: sourceID, Lines: lines}
}
