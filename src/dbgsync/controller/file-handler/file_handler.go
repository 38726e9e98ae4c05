package filehandler

import (
	"strings"
	"time"

	"github.com/uber-go/tally"
	debugservice "github.com/uber/dbg-sync/src/dbgsync/controller/debug-service"
	editorhandler "github.com/uber/dbg-sync/src/dbgsync/controller/editor-handler"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/clock"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"go.lsp.dev/uri"
	"go.uber.org/zap"
)

const _fileScheme = uri.FileScheme + "://"

// Handler binds the editor of a file widget to the debugger.
type Handler interface {
	RefreshBreakpoints()
	// Path is the filesystem path the breakpoints are stored under.
	Path() string
	IsDisposed() bool
	// Dispose unbinds the editor and restores the widget's editor configuration.
	Dispose()
}

// Params are the parameters to bind a new Handler.
type Params struct {
	Service  debugservice.Service
	Widget   entity.FileWidget
	Clock    clock.Clock
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
	Debounce time.Duration
}

type handler struct {
	widget entity.FileWidget
	editorhandler.Handler
}

// New binds a Handler to the editor of p.Widget.
func New(p Params) (Handler, error) {
	if p.Widget == nil {
		return nil, errors.MissingWidgetError
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop().Sugar()
	}

	path := Filename(p.Widget.Path())
	eh, err := editorhandler.New(editorhandler.Params{
		Service:  p.Service,
		Editor:   p.Widget.Editor(),
		Path:     path,
		Clock:    p.Clock,
		Logger:   p.Logger.With("widget", p.Widget.ID()),
		Stats:    p.Stats,
		Debounce: p.Debounce,
	})
	if err != nil {
		return nil, err
	}
	return &handler{widget: p.Widget, Handler: eh}, nil
}

func (h *handler) Dispose() {
	if h.Handler.IsDisposed() {
		return
	}
	h.Handler.Dispose()
	if editor := h.widget.Editor(); !editor.IsDisposed() {
		editor.SetOptions(h.widget.EditorConfig())
	}
}

// Filename returns the filesystem path of a file widget path, which may be a file URI.
func Filename(path string) string {
	if !strings.HasPrefix(path, _fileScheme) {
		return path
	}
	return uri.New(path).Filename()
}
