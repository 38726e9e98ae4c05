package dbgsync

import (
	"context"

	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"go.lsp.dev/jsonrpc2"
)

// DidInsertCell inserts a cell into a mirrored notebook.
func (r *jsonRPCRouter) DidInsertCell(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToInsertCellParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidInsertCell(ctx, params)
	return reply(ctx, nil, err)
}

// DidRemoveCell removes a cell from a mirrored notebook.
func (r *jsonRPCRouter) DidRemoveCell(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCellParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidRemoveCell(ctx, params)
	return reply(ctx, nil, err)
}

// DidMoveCell moves a notebook cell to a new index.
func (r *jsonRPCRouter) DidMoveCell(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToMoveCellParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidMoveCell(ctx, params)
	return reply(ctx, nil, err)
}

// DidActivateCell makes a notebook cell the active one.
func (r *jsonRPCRouter) DidActivateCell(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCellParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidActivateCell(ctx, params)
	return reply(ctx, nil, err)
}
