// Package kernel is the outbound JSON-RPC client to the debug endpoint of a kernel.
package kernel

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"github.com/uber/dbg-sync/src/dbgsync/model"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyKernel = "kernel"
	_defaultTimeout  = 10 * time.Second
)

// Methods served by the kernel debug endpoint.
const (
	MethodDumpCell       = "debug/dumpCell"
	MethodSetBreakpoints = "debug/setBreakpoints"
	MethodDebugInfo      = "debug/debugInfo"
)

// Module provides the kernel Gateway to an fx application.
var Module = fx.Provide(New)

// Gateway sends debug requests to the kernel.
type Gateway interface {
	// DumpCell writes code to the kernel's temporary source file and returns its path.
	DumpCell(ctx context.Context, code string) (string, error)
	// SetBreakpoints replaces every breakpoint of a source.
	SetBreakpoints(ctx context.Context, req *model.SetBreakpointsRequest) (*model.SetBreakpointsResponse, error)
	// DebugInfo returns the kernel debugger state, including the breakpoints it holds.
	DebugInfo(ctx context.Context) (*model.DebugInfoResponse, error)
	IsConnected() bool
	Close() error
}

// Params are inbound parameters to create a Gateway.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type kernelConfig struct {
	Address   string `yaml:"address"`
	TimeoutMs int    `yaml:"timeoutMs"`
}

type gateway struct {
	address string
	timeout time.Duration
	logger  *zap.SugaredLogger
	stats   tally.Scope

	mu   sync.Mutex
	conn jsonrpc2.Conn
}

// New creates a Gateway. The connection is opened on application start when an address is configured.
func New(p Params) (Gateway, error) {
	if p.Lifecycle == nil || p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	g := &gateway{
		logger: p.Logger.With("gateway", "kernel"),
		stats:  p.Stats.SubScope("kernel"),
	}
	if err := g.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: g.OnStart,
		OnStop: func(ctx context.Context) error {
			return g.Close()
		},
	})
	return g, nil
}

// OnStart dials the configured kernel address.
func (g *gateway) OnStart(ctx context.Context) error {
	if g.address == "" {
		g.logger.Warn("no kernel address configured, debug requests will fail; the gateway does not redial")
		return nil
	}

	var d net.Dialer
	netConn, err := d.DialContext(ctx, "tcp", g.address)
	if err != nil {
		return fmt.Errorf("dialing kernel at %q: %w", g.address, err)
	}
	g.attach(netConn)
	g.logger.Infow("connected to kernel", zap.String("address", g.address))
	return nil
}

func (g *gateway) DumpCell(ctx context.Context, code string) (string, error) {
	var resp model.DumpCellResponse
	if err := g.call(ctx, MethodDumpCell, &model.DumpCellRequest{Code: code}, &resp); err != nil {
		return "", err
	}
	return resp.SourcePath, nil
}

func (g *gateway) SetBreakpoints(ctx context.Context, req *model.SetBreakpointsRequest) (*model.SetBreakpointsResponse, error) {
	var resp model.SetBreakpointsResponse
	if err := g.call(ctx, MethodSetBreakpoints, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *gateway) DebugInfo(ctx context.Context) (*model.DebugInfoResponse, error) {
	var resp model.DebugInfoResponse
	if err := g.call(ctx, MethodDebugInfo, &model.DebugInfoRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *gateway) IsConnected() bool {
	return g.connection() != nil
}

// Close closes the connection, if any, and waits for it to shut down.
func (g *gateway) Close() error {
	g.mu.Lock()
	conn := g.conn
	g.conn = nil
	g.mu.Unlock()

	if conn == nil {
		return nil
	}
	err := conn.Close()
	<-conn.Done()
	return err
}

// attach starts serving an established connection to the kernel.
func (g *gateway) attach(netConn net.Conn) {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(netConn))
	conn.Go(context.Background(), jsonrpc2.MethodNotFoundHandler)

	g.mu.Lock()
	old := g.conn
	g.conn = conn
	g.mu.Unlock()

	if old != nil {
		old.Close()
		<-old.Done()
	}
}

func (g *gateway) connection() jsonrpc2.Conn {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.conn
}

func (g *gateway) call(ctx context.Context, method string, params, result interface{}) error {
	conn := g.connection()
	if conn == nil {
		return &errors.KernelError{Method: method, Err: errors.NotConnectedError}
	}

	scope := g.stats.Tagged(map[string]string{"method": method})
	scope.Counter("calls").Inc(1)
	sw := scope.Timer("latency").Start()
	defer sw.Stop()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if _, err := conn.Call(ctx, method, params, result); err != nil {
		scope.Counter("errors").Inc(1)
		return &errors.KernelError{Method: method, Err: err}
	}
	return nil
}

// processConfig will parse the configuration for any values required by this gateway.
func (g *gateway) processConfig(cfg config.Provider) error {
	var c kernelConfig
	if err := cfg.Get(_configKeyKernel).Populate(&c); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyKernel, err)
	}

	g.address = c.Address
	g.timeout = _defaultTimeout
	if c.TimeoutMs > 0 {
		g.timeout = time.Duration(c.TimeoutMs) * time.Millisecond
	}
	return nil
}
