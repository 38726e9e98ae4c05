package handler

import (
	controller "github.com/uber/dbg-sync/src/dbgsync/controller"
	"github.com/uber/dbg-sync/src/dbgsync/controller/workspace"
	handler "github.com/uber/dbg-sync/src/dbgsync/handler/dbgsync"
	"github.com/uber/dbg-sync/src/dbgsync/repository/breakpoints"
	"github.com/uber/dbg-sync/src/dbgsync/repository/session"
	"go.uber.org/fx"
)

// Module provides the dbg-sync JSON-RPC server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(breakpoints.New),
	fx.Provide(handler.New),
	fx.Invoke(outputConnectionInfo),
	fx.Invoke(func(m handler.Handler) {}),
	fx.Invoke(func(c workspace.Controller) {}),
)
