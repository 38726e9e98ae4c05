package dbgsync

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/controller/workspace"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/model"
	"go.lsp.dev/jsonrpc2"
)

type jsonRPCRouter struct {
	workspace workspace.Controller
	uuid      uuid.UUID
	stats     tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)
	if r.stats != nil {
		r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)
	}

	switch req.Method() {
	// Session methods.
	case model.MethodAttach:
		return r.Attach(ctx, reply, req)

	case model.MethodDetach:
		return r.Detach(ctx, reply, req)

	// Document methods.
	case model.MethodDidOpenFile:
		return r.DidOpenFile(ctx, reply, req)

	case model.MethodDidChangeFile:
		return r.DidChangeFile(ctx, reply, req)

	case model.MethodDidOpenNotebook:
		return r.DidOpenNotebook(ctx, reply, req)

	case model.MethodDidChangeCell:
		return r.DidChangeCell(ctx, reply, req)

	case model.MethodDidInsertCell:
		return r.DidInsertCell(ctx, reply, req)

	case model.MethodDidRemoveCell:
		return r.DidRemoveCell(ctx, reply, req)

	case model.MethodDidMoveCell:
		return r.DidMoveCell(ctx, reply, req)

	case model.MethodDidActivateCell:
		return r.DidActivateCell(ctx, reply, req)

	case model.MethodDidClose:
		return r.DidClose(ctx, reply, req)

	// Console methods.
	case model.MethodDidOpenConsole:
		return r.DidOpenConsole(ctx, reply, req)

	case model.MethodDidChangePrompt:
		return r.DidChangePrompt(ctx, reply, req)

	case model.MethodDidExecute:
		return r.DidExecute(ctx, reply, req)

	// Debug methods.
	case model.MethodToggleBreakpoint:
		return r.ToggleBreakpoint(ctx, reply, req)

	case model.MethodBreakpoints:
		return r.Breakpoints(ctx, reply, req)

	case model.MethodStopped:
		return r.Stopped(ctx, reply, req)

	case model.MethodContinued:
		return r.Continued(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
