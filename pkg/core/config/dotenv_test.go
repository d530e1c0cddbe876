package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()

	t.Cleanup(func() {
		for _, key := range keys {
			_ = os.Unsetenv(key)
		}
	})
}

func TestNewDotEnvModule_LoadsFile(t *testing.T) {
	// Arrange
	envFile := writeConfig(t, ".env", "AVROBENCH_DOTENV_TEST=loaded\n")
	unsetAfter(t, "AVROBENCH_DOTENV_TEST")
	core, logs := observer.New(zapcore.DebugLevel)

	// Act
	app := fxtest.New(t,
		fx.Supply(zap.New(core)),
		NewDotEnvModule(WithDotEnvPath(envFile)),
	)
	app.RequireStart()
	defer app.RequireStop()

	// Assert
	assert.Equal(t, "loaded", os.Getenv("AVROBENCH_DOTENV_TEST"))
	assert.Equal(t, 1, logs.FilterMessage("Loaded .env files").Len())
}

func TestNewDotEnvModule_MissingFileIsIgnored(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	app := fxtest.New(t,
		fx.Supply(zap.New(core)),
		NewDotEnvModule(WithDotEnvPath(filepath.Join(t.TempDir(), "missing.env"))),
	)

	app.RequireStart()
	app.RequireStop()
	assert.Equal(t, 1, logs.FilterMessage("No .env file loaded").Len())
}

func TestNewDotEnvModule_MalformedFileFails(t *testing.T) {
	envFile := writeConfig(t, ".env", "BAD-KEY=value\n")

	app := fx.New(
		fx.NopLogger,
		fx.Supply(zap.NewNop()),
		NewDotEnvModule(WithDotEnvPath(envFile)),
	)

	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), "failed to load env file")
}

func TestLoadDotEnv_Precedence(t *testing.T) {
	// Given
	first := writeConfig(t, "first.env", "AVROBENCH_DOTENV_A=first\nAVROBENCH_DOTENV_B=first\n")
	second := writeConfig(t, "second.env", "AVROBENCH_DOTENV_A=second\nAVROBENCH_DOTENV_C=second\n")
	missing := filepath.Join(t.TempDir(), "missing.env")
	t.Setenv("AVROBENCH_DOTENV_B", "process")
	unsetAfter(t, "AVROBENCH_DOTENV_A", "AVROBENCH_DOTENV_C")

	// When
	loaded, err := loadDotEnv([]string{first, missing, second})

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{first, second}, loaded)
	assert.Equal(t, "first", os.Getenv("AVROBENCH_DOTENV_A"))
	assert.Equal(t, "process", os.Getenv("AVROBENCH_DOTENV_B"))
	assert.Equal(t, "second", os.Getenv("AVROBENCH_DOTENV_C"))
}
