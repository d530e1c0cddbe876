package core

import (
	"github.com/Sokol111/avro-codec-bench/pkg/core/config"
	"github.com/Sokol111/avro-codec-bench/pkg/core/logger"
	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"
)

type coreOptions struct {
	configPath         string
	loggerConfig       *logger.Config
	verbose            bool
	disableDotEnv      bool
	disableViperConfig bool
}

// Option is a functional option for configuring the core module.
type Option func(*coreOptions)

// WithConfigPath reads configuration from path instead of $CONFIG_FILE.
func WithConfigPath(path string) Option {
	return func(opts *coreOptions) {
		opts.configPath = path
	}
}

// WithLoggerConfig provides a static logger Config (useful for tests).
func WithLoggerConfig(cfg logger.Config) Option {
	return func(opts *coreOptions) {
		opts.loggerConfig = &cfg
	}
}

// WithVerbose lowers the log level to Debug.
func WithVerbose(verbose bool) Option {
	return func(opts *coreOptions) {
		opts.verbose = verbose
	}
}

// WithoutEnvFile disables loading of .env file.
func WithoutEnvFile() Option {
	return func(opts *coreOptions) {
		opts.disableDotEnv = true
	}
}

// WithoutConfigFile disables loading of any config file.
func WithoutConfigFile() Option {
	return func(opts *coreOptions) {
		opts.disableViperConfig = true
	}
}

// NewCoreModule provides the ambient pieces every benchmark binary needs:
// .env loading, *viper.Viper and *zap.Logger.
//
// Example usage:
//
//	core.NewCoreModule(core.WithConfigPath(path), core.WithVerbose(true))
//
//	// tests
//	core.NewCoreModule(
//	    core.WithLoggerConfig(logger.Config{...}),
//	    core.WithoutEnvFile(),
//	    core.WithoutConfigFile(),
//	)
func NewCoreModule(opts ...Option) fx.Option {
	cfg := &coreOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	return fx.Options(
		dotEnvModule(cfg),
		viperModule(cfg),
		loggerModule(cfg),
	)
}

func dotEnvModule(cfg *coreOptions) fx.Option {
	if cfg.disableDotEnv {
		return fx.Options()
	}
	return config.NewDotEnvModule()
}

func viperModule(cfg *coreOptions) fx.Option {
	if cfg.disableViperConfig {
		return config.NewViperModule(config.WithoutConfigFile())
	}
	return config.NewViperModule(config.WithConfigPath(cfg.configPath))
}

func loggerModule(cfg *coreOptions) fx.Option {
	var opts []logger.Option
	if cfg.loggerConfig != nil {
		opts = append(opts, logger.WithLoggerConfig(*cfg.loggerConfig))
	}
	if cfg.verbose {
		opts = append(opts, logger.WithLevel(zapcore.DebugLevel))
	}
	return logger.NewZapLoggingModule(opts...)
}
