// Package sourceid derives the identity under which breakpoints of a source are stored.
package sourceid

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/twmb/murmur3"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"go.uber.org/config"
	"go.uber.org/fx"
)

const _configKey = "debugger.hash"

// Defaults match the temporary file naming of the reference kernel.
const (
	DefaultSeed          uint32 = 0xc70f6907
	DefaultTmpFilePrefix        = "/tmp/ipykernel/"
	DefaultTmpFileSuffix        = ".py"
)

// Module provides the Hasher to an fx application.
var Module = fx.Provide(New)

// Hasher maps source text to a content-derived identity.
type Hasher interface {
	// CodeID returns the identity of code. Identical text always maps to the same id.
	CodeID(code string) string
	// Configure replaces the hash parameters, typically with those reported by a new session.
	Configure(params entity.HashParams)
	Params() entity.HashParams
}

// Params are inbound parameters to create a Hasher.
type Params struct {
	fx.In

	Config config.Provider `optional:"true"`
}

type hashConfig struct {
	Seed          *uint32 `yaml:"seed"`
	TmpFilePrefix string  `yaml:"tmpFilePrefix"`
	TmpFileSuffix string  `yaml:"tmpFileSuffix"`
}

type hasher struct {
	mu     sync.RWMutex
	params entity.HashParams
}

// New creates a Hasher from the "debugger.hash" config block, falling back to the defaults.
func New(p Params) (Hasher, error) {
	params := DefaultParams()
	if p.Config != nil {
		var cfg hashConfig
		if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
			return nil, fmt.Errorf("getting config field %q: %w", _configKey, err)
		}
		if cfg.Seed != nil {
			params.Seed = *cfg.Seed
		}
		if cfg.TmpFilePrefix != "" {
			params.TmpFilePrefix = cfg.TmpFilePrefix
		}
		if cfg.TmpFileSuffix != "" {
			params.TmpFileSuffix = cfg.TmpFileSuffix
		}
	}
	return NewWithParams(params), nil
}

// NewWithParams creates a Hasher with explicit parameters.
func NewWithParams(params entity.HashParams) Hasher {
	return &hasher{params: params}
}

// DefaultParams returns the default hash parameters.
func DefaultParams() entity.HashParams {
	return entity.HashParams{
		Seed:          DefaultSeed,
		TmpFilePrefix: DefaultTmpFilePrefix,
		TmpFileSuffix: DefaultTmpFileSuffix,
	}
}

func (h *hasher) CodeID(code string) string {
	h.mu.RLock()
	p := h.params
	h.mu.RUnlock()

	sum := murmur3.SeedSum32(p.Seed, []byte(code))
	return p.TmpFilePrefix + strconv.FormatUint(uint64(sum), 10) + p.TmpFileSuffix
}

func (h *hasher) Configure(params entity.HashParams) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.params = params
}

func (h *hasher) Params() entity.HashParams {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.params
}

// Resolve returns the breakpoint identity of a source: its path when present, otherwise the hash of code.
func Resolve(h Hasher, path, code string) string {
	if path != "" {
		return path
	}
	return h.CodeID(code)
}
