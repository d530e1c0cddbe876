package logger

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func viperFromYAML(t *testing.T, content string) *viper.Viper {
	t.Helper()

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	return v
}

func TestNewConfig_MissingSectionUsesDefaults(t *testing.T) {
	cfg, err := newConfig(viper.New())

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewConfig_FullSection(t *testing.T) {
	v := viperFromYAML(t, `
logger:
  level: debug
  development: true
  stacktraceLevel: warn
  outputPaths: ["stderr", "/tmp/avrobench.log"]
  errorOutputPaths: ["stderr"]
`)

	cfg, err := newConfig(v)

	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level)
	assert.True(t, cfg.Development)
	assert.Equal(t, zapcore.WarnLevel, cfg.StacktraceLevel)
	assert.Equal(t, []string{"stderr", "/tmp/avrobench.log"}, cfg.OutputPaths)
	assert.Equal(t, []string{"stderr"}, cfg.ErrorOutputPaths)
}

func TestNewConfig_PartialSectionKeepsDefaults(t *testing.T) {
	v := viperFromYAML(t, "logger:\n  development: true\n")

	cfg, err := newConfig(v)

	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, cfg.Level)
	assert.Equal(t, zapcore.ErrorLevel, cfg.StacktraceLevel)
	assert.True(t, cfg.Development)
}

func TestNewConfig_InvalidLevels(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "level", yaml: "logger:\n  level: loud\n", want: "invalid log level 'loud'"},
		{name: "stacktrace", yaml: "logger:\n  stacktraceLevel: never\n", want: "invalid stacktrace level 'never'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newConfig(viperFromYAML(t, tt.yaml))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: DefaultConfig()},
		{name: "paths", cfg: Config{OutputPaths: []string{"stderr"}, ErrorOutputPaths: []string{"stderr"}}},
		{name: "blank output path", cfg: Config{OutputPaths: []string{"stderr", "  "}}, wantErr: "outputPaths[1]"},
		{name: "empty error path", cfg: Config{ErrorOutputPaths: []string{""}}, wantErr: "errorOutputPaths[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
