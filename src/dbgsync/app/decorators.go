package app

import (
	"fmt"
	"os"
	"path"

	"github.com/uber/dbg-sync/src/dbgsync/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Context struct {
	Environment        string `yaml:"environment"`
	RuntimeEnvironment string `yaml:"runtimeEnvironment"`
}

const (
	// EnvLocal indicates that the service is running locally.
	EnvLocal = "local"

	// EnvDevelopment indicates that the service is running in a development environment.
	EnvDevelopment = "development"

	_envDbgSyncEnvironment = "DBGSYNC_ENVIRONMENT"
)

// console sinks accepted by zap.Open that are not files
var _stdSinks = map[string]bool{
	"stdout": true,
	"stderr": true,
}

func decorateEnvContext(env Context) Context {
	envValue := EnvLocal
	if os.Getenv(_envDbgSyncEnvironment) == EnvDevelopment {
		envValue = EnvDevelopment
	}

	env.Environment = envValue
	env.RuntimeEnvironment = envValue
	return env
}

// DecorateConfigParams is the set of dependencies required to decorate the config.Provider.
type DecorateConfigParams struct {
	fx.In

	Env Context
	Cfg config.Provider
	FS  fs.DbgSyncFS
}

// decorateConfigProvider runs the startup steps that depend on configuration before anything else reads it.
func decorateConfigProvider(p DecorateConfigParams) (config.Provider, error) {
	combined, err := ensureLogFolder(p.Cfg, p.FS)
	if err != nil {
		return nil, fmt.Errorf("ensuring log folder: %v", err)
	}

	return combined, nil
}

// Ensure that all configured logging output directories exist or create if necessary.
func ensureLogFolder(cfg config.Provider, fs fs.DbgSyncFS) (config.Provider, error) {
	var c zap.Config
	if err := cfg.Get("logging").Populate(&c); err != nil {
		return nil, fmt.Errorf("loading logging config: %v", err)
	}

	for _, outputPath := range c.OutputPaths {
		if _stdSinks[outputPath] {
			continue
		}
		if err := fs.MkdirAll(path.Dir(outputPath)); err != nil {
			return nil, fmt.Errorf("creating logging directory: %v", err)
		}
	}

	return cfg, nil
}
