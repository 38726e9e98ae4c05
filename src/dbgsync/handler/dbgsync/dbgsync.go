// Package dbgsync implements the JSON-RPC handlers of frontend connections.
package dbgsync

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/controller/workspace"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
)

// Handler tracks frontend connections and provides a Router for each.
type Handler = jsonrpcfx.ConnectionManager

// New constructs a new Handler and registers it with the JSON-RPC module.
func New(ctrl workspace.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, stats tally.Scope) (Handler, error) {
	c := jsonRPCConnectionManager{
		ctrl:  ctrl,
		stats: stats.SubScope("json_rpc"),
	}
	if err := jsonrpcmod.RegisterConnectionManager(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

type jsonRPCConnectionManager struct {
	ctrl  workspace.Controller
	stats tally.Scope
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router jsonrpcfx.Router, err error) {
	id, err := c.ctrl.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	r := jsonRPCRouter{
		workspace: c.ctrl,
		uuid:      id,
		stats:     c.stats,
	}

	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.ctrl.EndSession(ctx, id)
}
