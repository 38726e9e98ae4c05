// Package serverinfofile publishes how to reach the running service, for editors that discover it on disk.
package serverinfofile

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/uber/dbg-sync/src/dbgsync/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKeyInfoFile = "serverInfoFilePath"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// ServerInfoFile manages the contents of a single JSON info file.
// The file is rewritten on every update and removed when the application stops.
type ServerInfoFile interface {
	UpdateField(key string, value string) error
	Path() string
}

type module struct {
	infofile     string
	fs           fs.DbgSyncFS
	logger       *zap.SugaredLogger
	fileContents map[string]string
	mu           sync.Mutex
}

// Params define values to be used by ServerInfoFile.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	FS        fs.DbgSyncFS
}

// New creates a ServerInfoFile at the configured path.
func New(p Params) (ServerInfoFile, error) {
	m := &module{
		fs:           p.FS,
		logger:       p.Logger,
		fileContents: make(map[string]string),
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: m.OnStop,
	})

	return m, nil
}

func (m *module) Path() string {
	return m.infofile
}

// OnStop removes the info file. A file that was never written is not an error.
func (m *module) OnStop(ctx context.Context) error {
	return m.fs.Remove(m.infofile)
}

func (m *module) UpdateField(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fileContents[key] = value
	jsonOutput, err := json.Marshal(m.fileContents)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.infofile)); err != nil {
		return fmt.Errorf("creating info file directory: %w", err)
	}
	if err := m.fs.WriteFile(m.infofile, string(jsonOutput)); err != nil {
		return fmt.Errorf("creating info file: %w", err)
	}
	m.logger.Infow("connection info saved", zap.String("file", m.infofile), zap.String(key, value))
	return nil
}

func (m *module) processConfig(cfg config.Provider) error {
	if err := cfg.Get(_configKeyInfoFile).Populate(&m.infofile); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyInfoFile, err)
	}

	if m.infofile == "" {
		return fmt.Errorf("missing field %q in config", _configKeyInfoFile)
	}

	return nil
}
