// Package config builds the viper instance that every benchmark component reads
// its settings from. Values come from an optional config file, overridden by
// environment variables (dots and dashes in keys become underscores).
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const envConfigFile = "CONFIG_FILE"

// viperConfig holds internal configuration options for the Viper module.
type viperConfig struct {
	configPath   *string
	noConfigFile bool
}

// ViperOption is a functional option for configuring the Viper module.
type ViperOption func(*viperConfig)

// WithConfigPath sets a direct path to the configuration file.
// An empty path leaves the CONFIG_FILE lookup in place.
func WithConfigPath(path string) ViperOption {
	return func(cfg *viperConfig) {
		if path != "" {
			cfg.configPath = &path
		}
	}
}

// WithoutConfigFile disables loading of any config file.
// Viper is still provided, backed by environment variables only.
func WithoutConfigFile() ViperOption {
	return func(cfg *viperConfig) {
		cfg.noConfigFile = true
	}
}

// FilePath is the path of the configuration file. Empty means none.
type FilePath string

// NewViperModule creates an fx module providing *viper.Viper.
// By default the config path is taken from the CONFIG_FILE environment variable;
// without it viper is backed by environment variables alone.
func NewViperModule(opts ...ViperOption) fx.Option {
	cfg := &viperConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return fx.Module("viper",
		fx.Supply(resolveConfigPath(cfg)),
		fx.Provide(newViper),
		fx.Invoke(logViperConfig),
	)
}

func logViperConfig(logger *zap.Logger, v *viper.Viper) {
	logger.Debug("Configuration loaded",
		zap.String("configFile", v.ConfigFileUsed()),
		zap.Strings("configKeys", v.AllKeys()),
	)
}

func resolveConfigPath(cfg *viperConfig) FilePath {
	if cfg.noConfigFile {
		return ""
	}
	if cfg.configPath != nil {
		return FilePath(*cfg.configPath)
	}
	return FilePath(os.Getenv(envConfigFile))
}

func newViper(configFile FilePath) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile == "" {
		return v, nil
	}

	v.SetConfigFile(string(configFile))
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file [%s]", configFile)
	}

	return v, nil
}
