package notebookhandler

import (
	"sync"
	"time"

	"github.com/uber-go/tally"
	debugservice "github.com/uber/dbg-sync/src/dbgsync/controller/debug-service"
	editorhandler "github.com/uber/dbg-sync/src/dbgsync/controller/editor-handler"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/clock"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"go.uber.org/zap"
)

const _nameKey = "notebook-handler"

// Handler keeps one editor handler per code cell of a notebook.
type Handler interface {
	// Handlers returns a snapshot of the editor handlers keyed by cell model id.
	Handlers() map[string]editorhandler.Handler
	IsDisposed() bool
	// Dispose disposes every editor handler and restores the cell editors to the notebook configuration.
	Dispose()
}

// Params are the parameters to bind a new Handler.
type Params struct {
	Service  debugservice.Service
	Notebook entity.Notebook
	Clock    clock.Clock
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
	Debounce time.Duration
}

type handler struct {
	notebook entity.Notebook
	cells    *editorhandler.CellMap

	mu          sync.Mutex
	disposed    bool
	disconnects []func()
}

// New binds a Handler to p.Notebook and creates editor handlers for its existing code cells.
func New(p Params) (Handler, error) {
	if p.Notebook == nil {
		return nil, errors.MissingWidgetError
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
		notebook: p.Notebook,
		cells: editorhandler.NewCellMap(editorhandler.Params{
			Service:  p.Service,
			Clock:    p.Clock,
			Logger:   p.Logger.With("handler", _nameKey, "notebook", p.Notebook.ID()),
			Stats:    p.Stats,
			Debounce: p.Debounce,
		}, p.Stats.SubScope("notebook_handler").Gauge("cells")),
	}

	h.disconnects = []func(){
		h.notebook.OnActiveCellChanged(h.onActiveCellChanged),
		h.notebook.Cells().OnChanged(h.onCellsChanged),
		p.Service.OnCurrentFrameChanged(h.onCurrentFrameChanged),
	}
	h.scan()
	return h, nil
}

func (h *handler) Handlers() map[string]editorhandler.Handler {
	return h.cells.Handlers()
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

	for _, disconnect := range disconnects {
		disconnect()
	}
	h.cells.Dispose(h.notebook.EditorConfig())
}

func (h *handler) onCellsChanged(change entity.CellListChange) {
	h.scan()

	if change.Type != entity.CellListMove {
		return
	}
	for _, model := range change.NewValues {
		if eh, ok := h.cells.Get(model.ID()); ok {
			eh.RefreshBreakpoints()
		}
	}
}

func (h *handler) onActiveCellChanged(cell entity.Cell) {
	h.cells.Add(cell)
}

// onCurrentFrameChanged activates the cell the frame stopped in. Highlighting is left to its editor handler.
func (h *handler) onCurrentFrameChanged(frame *entity.Frame) {
	if frame == nil || frame.Source.Path == "" || h.IsDisposed() {
		return
	}

	for i, cell := range h.notebook.Widgets() {
		eh, ok := h.cells.Get(cell.Model().ID())
		if ok && eh.SourceID() == frame.Source.Path {
			h.notebook.SetActiveCellIndex(i)
			return
		}
	}
}

func (h *handler) scan() {
	for _, cell := range h.notebook.Widgets() {
		h.cells.Add(cell)
	}
}
