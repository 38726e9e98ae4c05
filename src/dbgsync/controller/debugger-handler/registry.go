package debuggerhandler

import (
	"context"
	"fmt"
	"time"

	"github.com/uber-go/tally"
	debugservice "github.com/uber/dbg-sync/src/dbgsync/controller/debug-service"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/activity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/clock"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKeyDebounce = "debugger.debounceMs"

// Registry holds one Handler per widget type.
type Registry interface {
	// Handler returns the Handler of the given type, or nil.
	Handler(t Type) Handler
	// Update routes w to the Handler of its widget type.
	Update(ctx context.Context, w entity.Widget, session *entity.Session) error
	// Remove unbinds the widget from every Handler.
	Remove(widgetID string)
	Dispose()
}

// RegistryParams are inbound parameters to create a Registry.
type RegistryParams struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Service   debugservice.Service
	Clock     clock.Clock
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type registry struct {
	handlers map[Type]Handler
}

// NewRegistry creates a Handler for every widget type. Every widget is unbound when the application stops.
func NewRegistry(p RegistryParams) (Registry, error) {
	if p.Lifecycle == nil || p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	var debounceMs int
	if err := p.Config.Get(_configKeyDebounce).Populate(&debounceMs); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyDebounce, err)
	}
	debounce := activity.DefaultTimeout
	if debounceMs > 0 {
		debounce = time.Duration(debounceMs) * time.Millisecond
	}

	r := &registry{handlers: make(map[Type]Handler, 3)}
	for _, t := range []Type{TypeConsole, TypeFile, TypeNotebook} {
		h, err := New(Params{
			Type:     t,
			Service:  p.Service,
			Clock:    p.Clock,
			Logger:   p.Logger,
			Stats:    p.Stats,
			Debounce: debounce,
		})
		if err != nil {
			return nil, err
		}
		r.handlers[t] = h
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			r.Dispose()
			return nil
		},
	})
	return r, nil
}

func (r *registry) Handler(t Type) Handler {
	return r.handlers[t]
}

func (r *registry) Update(ctx context.Context, w entity.Widget, session *entity.Session) error {
	if w == nil {
		return errors.MissingWidgetError
	}
	t, ok := TypeOf(w)
	if !ok {
		return &errors.UnsupportedWidgetError{WidgetID: w.ID(), HandlerType: "debugger"}
	}
	return r.handlers[t].Update(ctx, w, session)
}

func (r *registry) Remove(widgetID string) {
	for _, h := range r.handlers {
		h.Remove(widgetID)
	}
}

func (r *registry) Dispose() {
	for _, h := range r.handlers {
		h.Dispose()
	}
}
