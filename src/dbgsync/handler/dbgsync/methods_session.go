package dbgsync

import (
	"context"

	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"go.lsp.dev/jsonrpc2"
)

// Attach makes the connection the active debug session.
func (r *jsonRPCRouter) Attach(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToAttachParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.workspace.Attach(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}

// Detach ends the debug session of the connection.
func (r *jsonRPCRouter) Detach(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.workspace.Detach(ctx)
	return reply(ctx, nil, err)
}
