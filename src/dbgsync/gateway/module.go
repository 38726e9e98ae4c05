package gateway

import (
	"github.com/uber/dbg-sync/src/dbgsync/gateway/frontend"
	"github.com/uber/dbg-sync/src/dbgsync/gateway/kernel"
	"go.uber.org/fx"
)

// Module provides the outbound gateways: the kernel debug client and the frontend notifier.
var Module = fx.Options(
	kernel.Module,
	frontend.Module,
)
