package controller

import (
	debugservice "github.com/uber/dbg-sync/src/dbgsync/controller/debug-service"
	debuggerhandler "github.com/uber/dbg-sync/src/dbgsync/controller/debugger-handler"
	"github.com/uber/dbg-sync/src/dbgsync/controller/workspace"
	"github.com/uber/dbg-sync/src/dbgsync/internal/clock"
	"github.com/uber/dbg-sync/src/dbgsync/internal/filewatch"
	"github.com/uber/dbg-sync/src/dbgsync/internal/sourceid"
	"go.uber.org/fx"
)

var Module = fx.Options(
	clock.Module,
	filewatch.Module,
	sourceid.Module,
	fx.Provide(debugservice.New),
	fx.Provide(debuggerhandler.NewRegistry),
	fx.Provide(workspace.New),
)
