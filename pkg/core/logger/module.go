package logger

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type moduleOptions struct {
	config *Config
	level  *zapcore.Level
}

// Option configures the logging module.
type Option func(*moduleOptions)

// WithLoggerConfig uses a static Config instead of reading the `logger` section from viper.
func WithLoggerConfig(cfg Config) Option {
	return func(o *moduleOptions) {
		o.config = &cfg
	}
}

// WithLevel overrides the configured level (the --verbose flag sets Debug).
func WithLevel(level zapcore.Level) Option {
	return func(o *moduleOptions) {
		o.level = &level
	}
}

// NewZapLoggingModule provides a configured *zap.Logger and routes fx events through it.
// fx events are raised to Warn so a benchmark run only logs its own progress.
func NewZapLoggingModule(opts ...Option) fx.Option {
	o := &moduleOptions{}
	for _, opt := range opts {
		opt(o)
	}

	return fx.Options(
		fx.Provide(
			func(v *viper.Viper) (Config, error) {
				cfg, err := resolveConfig(o, v)
				if err != nil {
					return Config{}, err
				}
				if o.level != nil {
					cfg.Level = *o.level
				}
				return cfg, nil
			},
			provideLogger,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx").WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))}
		}),
	)
}

func resolveConfig(o *moduleOptions, v *viper.Viper) (Config, error) {
	if o.config != nil {
		return *o.config, nil
	}
	return newConfig(v)
}

func provideLogger(lc fx.Lifecycle, conf Config) (*zap.Logger, error) {
	logger, _, err := newLogger(conf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			err := logger.Sync()
			// Syncing stderr fails with EINVAL on some platforms.
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				return nil
			}
			return err
		},
	})

	return logger, nil
}
