// Package debuggerhandler binds debuggable widgets to the debugger while their session is active.
package debuggerhandler

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	consolehandler "github.com/uber/dbg-sync/src/dbgsync/controller/console-handler"
	debugservice "github.com/uber/dbg-sync/src/dbgsync/controller/debug-service"
	filehandler "github.com/uber/dbg-sync/src/dbgsync/controller/file-handler"
	notebookhandler "github.com/uber/dbg-sync/src/dbgsync/controller/notebook-handler"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/clock"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"go.uber.org/zap"
)

const _nameKey = "debugger-handler"

// Type is the kind of widget a Handler binds.
type Type string

const (
	TypeConsole  Type = "console"
	TypeFile     Type = "file"
	TypeNotebook Type = "notebook"
)

// Handler owns the widget handlers of one widget type, keyed by widget id.
type Handler interface {
	Type() Type
	// Update binds w when session is the started session of the debug service and unbinds it otherwise.
	// A widget bound under another session is rebound.
	Update(ctx context.Context, w entity.Widget, session *entity.Session) error
	// Remove unbinds the widget, if bound.
	Remove(widgetID string)
	Has(widgetID string) bool
	// Dispose unbinds every widget. Later updates are no-ops.
	Dispose()
}

// Params are the parameters to create a new Handler.
type Params struct {
	Type     Type
	Service  debugservice.Service
	Clock    clock.Clock
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
	Debounce time.Duration
}

// widgetHandler is the part of a file, notebook or console handler the owner needs.
type widgetHandler interface {
	IsDisposed() bool
	Dispose()
}

type binding struct {
	sessionID  uuid.UUID
	handler    widgetHandler
	disconnect func()
}

type handler struct {
	typ      Type
	service  debugservice.Service
	clock    clock.Clock
	logger   *zap.SugaredLogger
	stats    tally.Scope
	scope    tally.Scope
	debounce time.Duration

	mu       sync.Mutex
	disposed bool
	bindings map[string]*binding
}

// New creates a Handler for widgets of p.Type.
func New(p Params) (Handler, error) {
	if p.Service == nil {
		return nil, errors.MissingServiceError
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop().Sugar()
	}
	if p.Stats == nil {
		p.Stats = tally.NoopScope
	}

	return &handler{
		typ:      p.Type,
		service:  p.Service,
		clock:    p.Clock,
		logger:   p.Logger.With("handler", _nameKey, "type", string(p.Type)),
		stats:    p.Stats,
		scope:    p.Stats.SubScope("debugger_handler").Tagged(map[string]string{"type": string(p.Type)}),
		debounce: p.Debounce,
		bindings: make(map[string]*binding),
	}, nil
}

func (h *handler) Type() Type {
	return h.typ
}

func (h *handler) Update(ctx context.Context, w entity.Widget, session *entity.Session) error {
	if w == nil {
		return errors.MissingWidgetError
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	id := w.ID()

	if !h.startedFor(session) || w.IsDisposed() {
		h.Remove(id)
		return nil
	}

	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()
		return nil
	}
	existing, ok := h.bindings[id]
	h.mu.Unlock()
	if ok {
		if existing.sessionID == session.ID && !existing.handler.IsDisposed() {
			return nil
		}
		h.Remove(id)
	}

	wh, err := h.bind(w)
	if err != nil {
		return err
	}
	disconnect := w.OnDisposed(func() { h.Remove(id) })

	h.mu.Lock()
	if _, taken := h.bindings[id]; taken || h.disposed {
		h.mu.Unlock()
		disconnect()
		wh.Dispose()
		return nil
	}
	h.bindings[id] = &binding{sessionID: session.ID, handler: wh, disconnect: disconnect}
	n := len(h.bindings)
	h.mu.Unlock()

	if w.IsDisposed() {
		h.Remove(id)
		return nil
	}
	h.scope.Gauge("widgets").Update(float64(n))
	h.logger.Infow("widget bound", zap.String("widget", id), zap.Stringer("session", session.ID))
	return nil
}

func (h *handler) Remove(widgetID string) {
	h.mu.Lock()
	b, ok := h.bindings[widgetID]
	delete(h.bindings, widgetID)
	n := len(h.bindings)
	h.mu.Unlock()
	if !ok {
		return
	}

	b.disconnect()
	b.handler.Dispose()
	h.scope.Gauge("widgets").Update(float64(n))
	h.logger.Infow("widget unbound", zap.String("widget", widgetID))
}

func (h *handler) Has(widgetID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.bindings[widgetID]
	return ok
}

func (h *handler) Dispose() {
	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()
		return
	}
	h.disposed = true
	bindings := h.bindings
	h.bindings = make(map[string]*binding)
	h.mu.Unlock()

	for _, b := range bindings {
		b.disconnect()
		b.handler.Dispose()
	}
	h.scope.Gauge("widgets").Update(0)
}

// startedFor reports whether session is the active, restored session of the debug service.
func (h *handler) startedFor(session *entity.Session) bool {
	if session == nil || !h.service.IsStarted() {
		return false
	}
	active := h.service.Session()
	return active != nil && active.ID == session.ID
}

func (h *handler) bind(w entity.Widget) (widgetHandler, error) {
	unsupported := &errors.UnsupportedWidgetError{WidgetID: w.ID(), HandlerType: string(h.typ)}

	switch h.typ {
	case TypeNotebook:
		nb, ok := w.(entity.Notebook)
		if !ok {
			return nil, unsupported
		}
		return notebookhandler.New(notebookhandler.Params{
			Service:  h.service,
			Notebook: nb,
			Clock:    h.clock,
			Logger:   h.logger,
			Stats:    h.stats,
			Debounce: h.debounce,
		})
	case TypeConsole:
		console, ok := w.(entity.Console)
		if !ok {
			return nil, unsupported
		}
		return consolehandler.New(consolehandler.Params{
			Service:  h.service,
			Console:  console,
			Clock:    h.clock,
			Logger:   h.logger,
			Stats:    h.stats,
			Debounce: h.debounce,
		})
	case TypeFile:
		file, ok := w.(entity.FileWidget)
		if !ok {
			return nil, unsupported
		}
		return filehandler.New(filehandler.Params{
			Service:  h.service,
			Widget:   file,
			Clock:    h.clock,
			Logger:   h.logger,
			Stats:    h.stats,
			Debounce: h.debounce,
		})
	default:
		return nil, unsupported
	}
}

// TypeOf returns the handler type able to bind w.
func TypeOf(w entity.Widget) (Type, bool) {
	switch w.(type) {
	case entity.Notebook:
		return TypeNotebook, true
	case entity.Console:
		return TypeConsole, true
	case entity.FileWidget:
		return TypeFile, true
	default:
		return "", false
	}
}
