package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Sokol111/avro-codec-bench/pkg/core/logger"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func testLoggerConfig(t *testing.T) logger.Config {
	t.Helper()

	cfg := logger.DefaultConfig()
	cfg.OutputPaths = []string{filepath.Join(t.TempDir(), "core.log")}
	return cfg
}

func TestNewCoreModule_Provides(t *testing.T) {
	var v *viper.Viper
	var log *zap.Logger

	app := fxtest.New(t,
		NewCoreModule(WithLoggerConfig(testLoggerConfig(t)), WithoutEnvFile(), WithoutConfigFile()),
		fx.Populate(&v, &log),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, v)
	require.NotNil(t, log)
	assert.Empty(t, v.ConfigFileUsed())
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewCoreModule_ConfigPathAndVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench:\n  defaultCount: 7\n"), 0644))
	var v *viper.Viper
	var log *zap.Logger

	app := fxtest.New(t,
		NewCoreModule(
			WithConfigPath(path),
			WithVerbose(true),
			WithLoggerConfig(testLoggerConfig(t)),
			WithoutEnvFile(),
		),
		fx.Populate(&v, &log),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, 7, v.GetInt("bench.defaultCount"))
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
