// Package frontend sends outbound notifications to connected frontends.
package frontend

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"github.com/uber/dbg-sync/src/dbgsync/model"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _errSendToClient = "sending notification to frontend: %w"

// Module provides the frontend Gateway to an fx application.
var Module = fx.Provide(New)

// Gateway is used to send outbound notifications to frontends.
// Every call must include a context with a session UUID, which routes the notification to the correct connection.
type Gateway interface {
	// RegisterClient registers a new connection with the gateway. Should be called each time a frontend connects.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient removes a connection from the gateway. Should be called each time a frontend connection is closed.
	DeregisterClient(ctx context.Context, id uuid.UUID) error

	BreakpointsChanged(ctx context.Context, params *model.BreakpointsChangedParams) error
	CurrentFrameChanged(ctx context.Context, params *model.CurrentFrameChangedParams) error
}

// Params are inbound parameters to create a Gateway.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type gateway struct {
	connections   map[uuid.UUID]jsonrpc2.Conn
	connectionsMu sync.Mutex
	logger        *zap.SugaredLogger
	stats         tally.Scope
}

// New returns a Gateway for sending frontend notifications.
func New(p Params) Gateway {
	return &gateway{
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      p.Logger.With("gateway", "frontend"),
		stats:       p.Stats.SubScope("frontend"),
	}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	if conn == nil || *conn == nil {
		return fmt.Errorf("registering client %q: connection is required", id)
	}

	g.connectionsMu.Lock()
	defer g.connectionsMu.Unlock()

	g.connections[id] = *conn
	g.stats.Gauge("clients").Update(float64(len(g.connections)))
	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.connectionsMu.Lock()
	defer g.connectionsMu.Unlock()

	delete(g.connections, id)
	g.stats.Gauge("clients").Update(float64(len(g.connections)))
	return nil
}

func (g *gateway) BreakpointsChanged(ctx context.Context, params *model.BreakpointsChangedParams) error {
	return g.notify(ctx, model.MethodBreakpointsChanged, params)
}

func (g *gateway) CurrentFrameChanged(ctx context.Context, params *model.CurrentFrameChangedParams) error {
	return g.notify(ctx, model.MethodCurrentFrameChanged, params)
}

func (g *gateway) notify(ctx context.Context, method string, params interface{}) error {
	conn, err := g.getConn(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}

	if err := conn.Notify(ctx, method, params); err != nil {
		g.stats.Tagged(map[string]string{"method": method}).Counter("notify_errors").Inc(1)
		return fmt.Errorf(_errSendToClient, err)
	}
	g.stats.Tagged(map[string]string{"method": method}).Counter("notifications").Inc(1)
	return nil
}

func (g *gateway) getConn(ctx context.Context) (jsonrpc2.Conn, error) {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, err
	}

	g.connectionsMu.Lock()
	defer g.connectionsMu.Unlock()

	conn, ok := g.connections[id]
	if !ok {
		return nil, fmt.Errorf("client with id %q not found", id)
	}
	return conn, nil
}
