package dbgsync

import (
	"context"

	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"go.lsp.dev/jsonrpc2"
)

// DidOpenConsole mirrors a console opened in the frontend.
func (r *jsonRPCRouter) DidOpenConsole(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToOpenConsoleParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidOpenConsole(ctx, params)
	return reply(ctx, nil, err)
}

// DidChangePrompt replaces the prompt text of a console.
func (r *jsonRPCRouter) DidChangePrompt(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToChangePromptParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidChangePrompt(ctx, params)
	return reply(ctx, nil, err)
}

// DidExecute moves the prompt of a console to its executed cells.
func (r *jsonRPCRouter) DidExecute(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToExecuteParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.DidExecute(ctx, params)
	return reply(ctx, nil, err)
}
