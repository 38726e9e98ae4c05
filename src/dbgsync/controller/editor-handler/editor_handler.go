package editorhandler

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	debugservice "github.com/uber/dbg-sync/src/dbgsync/controller/debug-service"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/activity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/clock"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"go.uber.org/zap"
)

const _nameKey = "editor-handler"

// Handler binds one editor to the breakpoint and current frame models of a debug session.
type Handler interface {
	// RefreshBreakpoints repaints the gutter from the breakpoint model.
	RefreshBreakpoints()
	// HighlightLine highlights a 1-based line and scrolls it to the center of the viewport.
	HighlightLine(line int)
	ClearHighlight()
	// SourceID returns the identity the editor's breakpoints are stored under.
	SourceID() string
	Path() string
	Editor() entity.Editor
	IsDisposed() bool
	// Dispose detaches the handler and leaves the editor as it was before binding. Safe to call more than once.
	Dispose()
}

// Params are the parameters to bind a new Handler.
type Params struct {
	Service debugservice.Service
	Editor  entity.Editor
	// Path is the file path of the source, empty for sources identified by their content.
	Path   string
	Clock  clock.Clock
	Logger *zap.SugaredLogger
	Stats  tally.Scope
	// Debounce is the quiet period after the last edit before breakpoints are resynced.
	Debounce time.Duration
}

type handler struct {
	service   debugservice.Service
	editor    entity.Editor
	path      string
	sessionID uuid.UUID
	monitor   *activity.Monitor
	logger    *zap.SugaredLogger
	stats     tally.Scope

	mu          sync.Mutex
	disposed    bool
	disconnects []func()
}

// New binds a Handler to p.Editor: it enables line numbers and the breakpoint gutter,
// paints the current breakpoints and starts listening to the editor and the service.
func New(p Params) (Handler, error) {
	if p.Editor == nil {
		return nil, errors.MissingEditorError
	}
	if p.Service == nil {
		return nil, errors.MissingServiceError
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop().Sugar()
	}
	if p.Stats == nil {
		p.Stats = tally.NoopScope
	}

	h := &handler{
		service: p.Service,
		editor:  p.Editor,
		path:    p.Path,
		logger:  p.Logger.With("handler", _nameKey),
		stats:   p.Stats.SubScope("editor_handler"),
	}
	if s := p.Service.Session(); s != nil {
		h.sessionID = s.ID
	}
	h.monitor = activity.New(activity.Params{
		Clock:   p.Clock,
		Timeout: p.Debounce,
		Action:  h.sendEditorBreakpoints,
	})

	h.editor.SetOption(entity.OptionLineNumbers, true)
	h.editor.SetOption(entity.OptionGutters, []string{entity.GutterBreakpoints})
	h.addBreakpointsToEditor()

	h.disconnects = []func(){
		h.editor.OnContentChanged(h.monitor.Schedule),
		h.editor.OnGutterClick(h.onGutterClick),
		h.service.OnBreakpointsChanged(h.onBreakpointsChanged),
		h.service.OnBreakpointsRestored(h.onBreakpointsRestored),
		h.service.OnCurrentFrameChanged(h.onCurrentFrameChanged),
	}
	return h, nil
}

func (h *handler) RefreshBreakpoints() {
	h.addBreakpointsToEditor()
}

func (h *handler) HighlightLine(line int) {
	if !h.editorAlive() {
		return
	}
	h.editor.HighlightLine(line - 1)
	h.editor.ScrollIntoViewCentered(line - 1)
}

func (h *handler) ClearHighlight() {
	if !h.editorAlive() {
		return
	}
	h.editor.ClearHighlight()
}

func (h *handler) SourceID() string {
	return h.sourceIDOf(h.editor.Text())
}

func (h *handler) Path() string {
	return h.path
}

func (h *handler) Editor() entity.Editor {
	return h.editor
}

func (h *handler) IsDisposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}

func (h *handler) Dispose() {
	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()
		return
	}
	h.disposed = true
	disconnects := h.disconnects
	h.disconnects = nil
	h.mu.Unlock()

	h.monitor.Dispose()
	for _, disconnect := range disconnects {
		disconnect()
	}

	if h.editor.IsDisposed() {
		return
	}
	h.editor.ClearMarkers()
	h.editor.ClearHighlight()
	h.editor.SetOption(entity.OptionLineNumbers, false)
	h.editor.SetOption(entity.OptionGutters, []string{})
}

func (h *handler) onGutterClick(line int) {
	if !h.editorAlive() {
		return
	}
	if !h.sessionValid() {
		h.stats.Counter("stale_events").Inc(1)
		h.logger.Debugw("ignoring gutter click from a stale session", zap.Stringer("session", h.sessionID))
		return
	}
	if line < 0 || line >= h.editor.LineCount() {
		h.logger.Debugw("ignoring gutter click outside the source", zap.Int("line", line))
		return
	}

	if h.monitor.IsPending() {
		// the markers are ahead of the model until the edit is pushed, so the push carries the click
		h.editor.SetLineMarker(line, !entity.HasMarker(h.editor, line))
		return
	}

	code := h.editor.Text()
	bps := h.service.GetBreakpoints(h.sourceIDOf(code))
	switch {
	case entity.HasMarker(h.editor, line):
		bps = bps.WithoutLine(line + 1)
	case !bps.HasLine(line + 1):
		bps = append(bps, h.newBreakpoint(line+1))
	}
	h.push(code, bps)
}

// sendEditorBreakpoints rebuilds the breakpoints from the markers, which have followed
// their lines through the edits, and pushes them under the identity of the current text.
func (h *handler) sendEditorBreakpoints() {
	if !h.editorAlive() || !h.sessionValid() {
		return
	}

	lines := h.editor.MarkedLines()
	bps := make(entity.Breakpoints, 0, len(lines))
	for _, line := range lines {
		bps = append(bps, h.newBreakpoint(line+1))
	}
	h.push(h.editor.Text(), bps)
}

func (h *handler) onBreakpointsChanged(string) {
	// An edit waiting for its quiet period will push the markers it carries. Until then
	// the text has no breakpoints under its new identity and a repaint would drop them.
	if h.monitor.IsPending() {
		return
	}
	h.addBreakpointsToEditor()
}

// onBreakpointsRestored repaints from the restored model. A pending edit is dropped
// so its markers cannot overwrite what the kernel reported.
func (h *handler) onBreakpointsRestored() {
	h.monitor.Cancel()
	h.addBreakpointsToEditor()
}

// addBreakpointsToEditor clears the gutter and paints every breakpoint of the source.
func (h *handler) addBreakpointsToEditor() {
	if !h.editorAlive() || !h.sessionValid() {
		return
	}

	bps := h.service.GetBreakpoints(h.SourceID())
	h.editor.ClearMarkers()
	for _, bp := range bps {
		if !h.editor.SetLineMarker(bp.Line-1, true) {
			h.logger.Debugw("breakpoint outside the source", zap.Int("line", bp.Line))
		}
	}
}

func (h *handler) onCurrentFrameChanged(frame *entity.Frame) {
	h.ClearHighlight()
	if frame == nil || frame.Source.Path == "" {
		return
	}
	if frame.Source.Path == h.SourceID() {
		h.HighlightLine(frame.Line)
	}
}

func (h *handler) push(code string, bps entity.Breakpoints) {
	h.stats.Counter("pushes").Inc(1)
	if err := h.service.UpdateBreakpoints(context.Background(), code, bps, h.path); err != nil {
		h.stats.Counter("push_errors").Inc(1)
		h.logger.Warnw("updating breakpoints", zap.String("path", h.path), zap.Error(err))
	}
}

func (h *handler) newBreakpoint(line int) entity.Breakpoint {
	name := h.path
	if name == "" {
		if s := h.service.Session(); s != nil {
			name = s.Name
		}
	}
	return entity.Breakpoint{
		Line:     line,
		Verified: true,
		Source:   entity.Source{Name: name},
	}
}

func (h *handler) sourceIDOf(code string) string {
	if h.path != "" {
		return h.path
	}
	return h.service.GetCodeID(code)
}

// sessionValid reports whether the session the handler was bound to is still the active one.
func (h *handler) sessionValid() bool {
	s := h.service.Session()
	return s != nil && s.ID == h.sessionID
}

func (h *handler) editorAlive() bool {
	return !h.IsDisposed() && !h.editor.IsDisposed()
}
