package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const defaultDotEnvPath = ".env"

type dotenvConfig struct {
	paths []string
}

// DotEnvOption is a functional option for configuring the dotenv module.
type DotEnvOption func(*dotenvConfig)

// WithDotEnvPath adds an env file. Earlier files win for keys set in several,
// and variables already in the environment are never overwritten.
// The first call replaces the default ".env".
func WithDotEnvPath(path string) DotEnvOption {
	return func(cfg *dotenvConfig) {
		cfg.paths = append(cfg.paths, path)
	}
}

// NewDotEnvModule loads env files into the process environment.
// Loading happens when the module is built, before viper resolves any key.
// Missing files are skipped; a file that fails to parse fails the app.
func NewDotEnvModule(opts ...DotEnvOption) fx.Option {
	cfg := &dotenvConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(cfg.paths) == 0 {
		cfg.paths = []string{defaultDotEnvPath}
	}

	loaded, err := loadDotEnv(cfg.paths)
	if err != nil {
		return fx.Error(err)
	}

	return fx.Module("dotenv",
		fx.Invoke(func(log *zap.Logger) {
			if len(loaded) == 0 {
				log.Debug("No .env file loaded", zap.Strings("paths", cfg.paths))
				return
			}
			log.Info("Loaded .env files", zap.Strings("paths", loaded))
		}),
	)
}

func loadDotEnv(paths []string) ([]string, error) {
	var loaded []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return loaded, errors.Wrapf(err, "failed to stat env file [%s]", path)
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, errors.Wrapf(err, "failed to load env file [%s]", path)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}
