package consolehandler

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

const _nameKey = "console-handler"

// Handler keeps one editor handler for the prompt cell and each executed code cell of a console.
// Console sources have no path, so their breakpoints are stored under content hashes.
type Handler interface {
	Handlers() map[string]editorhandler.Handler
	IsDisposed() bool
	Dispose()
}

// Params are the parameters to bind a new Handler.
type Params struct {
	Service  debugservice.Service
	Console  entity.Console
	Clock    clock.Clock
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
	Debounce time.Duration
}

type handler struct {
	console entity.Console
	cells   *editorhandler.CellMap

	mu          sync.Mutex
	disposed    bool
	disconnects []func()
}

// New binds a Handler to the prompt and executed cells of p.Console.
func New(p Params) (Handler, error) {
	if p.Console == nil {
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
		console: p.Console,
		cells: editorhandler.NewCellMap(editorhandler.Params{
			Service:  p.Service,
			Clock:    p.Clock,
			Logger:   p.Logger.With("handler", _nameKey, "console", p.Console.ID()),
			Stats:    p.Stats,
			Debounce: p.Debounce,
		}, p.Stats.SubScope("console_handler").Gauge("cells")),
	}

	h.disconnects = []func(){
		h.console.OnPromptCellCreated(h.cells.Add),
		h.console.Cells().OnChanged(h.onCellsChanged),
	}
	h.cells.Add(h.console.PromptCell())
	for _, cell := range h.console.Widgets() {
		h.cells.Add(cell)
	}
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
	h.cells.Dispose(nil)
}

// onCellsChanged binds executed cells. The executed prompt keeps the handler it already had.
func (h *handler) onCellsChanged(change entity.CellListChange) {
	if change.Type != entity.CellListAdd {
		return
	}
	added := make(map[string]struct{}, len(change.NewValues))
	for _, model := range change.NewValues {
		added[model.ID()] = struct{}{}
	}
	for _, cell := range h.console.Widgets() {
		if _, ok := added[cell.Model().ID()]; ok {
			h.cells.Add(cell)
		}
	}
}
