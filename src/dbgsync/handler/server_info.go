package handler

import (
	"context"

	"github.com/uber/dbg-sync/src/dbgsync/internal/jsonrpcfx"
	"github.com/uber/dbg-sync/src/dbgsync/internal/serverinfofile"
	"go.uber.org/fx"
)

const _infoFileKeyAddress = "jsonrpc-address"

// outputConnectionInfo publishes the bound JSON-RPC address once the listener is up.
// Its hook is appended after the module's own, so the listener exists when it runs.
func outputConnectionInfo(lc fx.Lifecycle, mod jsonrpcfx.JSONRPCModule, infofile serverinfofile.ServerInfoFile) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := mod.Addr()
			if addr == nil {
				return nil
			}
			return infofile.UpdateField(_infoFileKeyAddress, addr.String())
		},
	})
}
