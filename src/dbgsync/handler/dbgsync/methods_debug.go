package dbgsync

import (
	"context"

	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"go.lsp.dev/jsonrpc2"
)

// ToggleBreakpoint clicks the breakpoint gutter of a mirrored editor.
func (r *jsonRPCRouter) ToggleBreakpoint(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToToggleBreakpointParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.ToggleBreakpoint(ctx, params)
	return reply(ctx, nil, err)
}

// Breakpoints returns the breakpoint markers of a mirrored widget.
func (r *jsonRPCRouter) Breakpoints(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToBreakpointsParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.workspace.Breakpoints(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}

// Stopped reports the frame the kernel stopped at.
func (r *jsonRPCRouter) Stopped(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToFrameParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.workspace.Stopped(ctx, params)
	return reply(ctx, nil, err)
}

// Continued reports that the kernel resumed execution.
func (r *jsonRPCRouter) Continued(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.workspace.Continued(ctx)
	return reply(ctx, nil, err)
}
