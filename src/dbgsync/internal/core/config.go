package core

import (
	"fmt"
	"os"
	"path/filepath"

	uber_config "go.uber.org/config"
	"go.uber.org/fx"
)

const (
	_envConfigDir     = "DBGSYNC_CONFIG_DIR"
	_defaultConfigDir = "src/dbgsync/config"
)

// ConfigModule provides the layered YAML configuration.
var ConfigModule = fx.Options(
	fx.Provide(NewConfig),
)

// Config is the configuration provider of the service.
type Config struct {
	provider uber_config.Provider
}

// Get returns the value at path.
func (c Config) Get(path string) uber_config.Value {
	return c.provider.Get(path)
}

// Name returns the provider name.
func (c Config) Name() string {
	return "config"
}

// NewConfig loads meta.yaml from the config directory, then every file it lists that exists, later files overriding earlier ones.
func NewConfig() (uber_config.Provider, error) {
	configDir := getConfigDir()

	metaPath := filepath.Join(configDir, "meta.yaml")
	metaProvider, err := uber_config.NewYAML(
		uber_config.File(metaPath),
		uber_config.Expand(os.LookupEnv),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load meta configuration: %w", err)
	}

	var configFiles []string
	if err := metaProvider.Get("files").Populate(&configFiles); err != nil {
		return nil, fmt.Errorf("failed to read files list from meta.yaml: %w", err)
	}

	var options []uber_config.YAMLOption
	for _, file := range configFiles {
		fullPath := filepath.Join(configDir, file)
		if _, err := os.Stat(fullPath); err == nil {
			options = append(options, uber_config.File(fullPath))
		}
	}

	if len(options) == 0 {
		return nil, fmt.Errorf("no configuration files found in %s", configDir)
	}
	options = append(options, uber_config.Expand(os.LookupEnv))

	provider, err := uber_config.NewYAML(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return Config{provider: provider}, nil
}

// getConfigDir returns the path to the configuration directory.
func getConfigDir() string {
	if configDir := os.Getenv(_envConfigDir); configDir != "" {
		return configDir
	}

	// relative to the workspace root
	return _defaultConfigDir
}
