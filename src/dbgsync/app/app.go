package app

import (
	"context"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/gateway"
	"github.com/uber/dbg-sync/src/dbgsync/handler"
	"github.com/uber/dbg-sync/src/dbgsync/internal/core"
	"github.com/uber/dbg-sync/src/dbgsync/internal/fs"
	"github.com/uber/dbg-sync/src/dbgsync/internal/jsonrpcfx"
	"github.com/uber/dbg-sync/src/dbgsync/internal/serverinfofile"
	"go.uber.org/fx"
)

// Module defines the dbg-sync application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "dbg-sync",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)
