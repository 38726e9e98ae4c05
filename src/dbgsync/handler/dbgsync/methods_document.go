package dbgsync

import (
	"context"

	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"go.lsp.dev/jsonrpc2"
)

// DidOpenFile mirrors a file opened in the frontend.
func (r *jsonRPCRouter) DidOpenFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToOpenFileParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidOpenFile(ctx, params)
	return reply(ctx, nil, err)
}

// DidChangeFile replaces the text of a mirrored file.
func (r *jsonRPCRouter) DidChangeFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToChangeFileParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidChangeFile(ctx, params)
	return reply(ctx, nil, err)
}

// DidOpenNotebook mirrors a notebook opened in the frontend.
func (r *jsonRPCRouter) DidOpenNotebook(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToOpenNotebookParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidOpenNotebook(ctx, params)
	return reply(ctx, nil, err)
}

// DidChangeCell replaces the source of a notebook cell.
func (r *jsonRPCRouter) DidChangeCell(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToChangeCellParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidChangeCell(ctx, params)
	return reply(ctx, nil, err)
}

// DidClose closes a mirrored file or notebook.
func (r *jsonRPCRouter) DidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCloseParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidClose(ctx, params)
	return reply(ctx, nil, err)
}
