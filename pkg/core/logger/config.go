package logger

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config is the `logger` section of the configuration.
type Config struct {
	// Level is the minimum enabled level.
	Level zapcore.Level

	// Development switches to console encoding and human-readable timestamps.
	// Otherwise JSON is written.
	Development bool

	// OutputPaths are URLs or file paths for log output. Empty means stderr.
	// Stdout is reserved for benchmark results and should not be used here.
	OutputPaths []string

	// ErrorOutputPaths receive internal logger errors. Empty means stderr.
	ErrorOutputPaths []string

	// StacktraceLevel is the minimum level at which stacktraces are captured.
	StacktraceLevel zapcore.Level
}

// DefaultConfig returns Info level JSON logging to stderr.
func DefaultConfig() Config {
	return Config{
		Level:           zapcore.InfoLevel,
		StacktraceLevel: zapcore.ErrorLevel,
	}
}

func (c Config) Validate() error {
	if err := validatePaths(c.OutputPaths, "outputPaths"); err != nil {
		return err
	}
	return validatePaths(c.ErrorOutputPaths, "errorOutputPaths")
}

func validatePaths(paths []string, fieldName string) error {
	for i, path := range paths {
		if strings.TrimSpace(path) == "" {
			return errors.Newf("%s[%d] cannot be empty or whitespace", fieldName, i)
		}
	}
	return nil
}

type rawConfig struct {
	Level            string   `mapstructure:"level"`
	Development      bool     `mapstructure:"development"`
	OutputPaths      []string `mapstructure:"outputPaths"`
	ErrorOutputPaths []string `mapstructure:"errorOutputPaths"`
	StacktraceLevel  string   `mapstructure:"stacktraceLevel"`
}

func newConfig(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()

	sub := v.Sub("logger")
	if sub == nil {
		return cfg, nil
	}

	var raw rawConfig
	if err := sub.Unmarshal(&raw); err != nil {
		return Config{}, errors.Wrap(err, "failed to load logger config")
	}

	if raw.Level != "" {
		level, err := zapcore.ParseLevel(raw.Level)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid log level '%s'", raw.Level)
		}
		cfg.Level = level
	}

	if raw.StacktraceLevel != "" {
		level, err := zapcore.ParseLevel(raw.StacktraceLevel)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid stacktrace level '%s'", raw.StacktraceLevel)
		}
		cfg.StacktraceLevel = level
	}

	cfg.Development = raw.Development
	cfg.OutputPaths = raw.OutputPaths
	cfg.ErrorOutputPaths = raw.ErrorOutputPaths

	return cfg, nil
}
