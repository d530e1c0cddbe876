package bench

import (
	"os"
	"strings"
	"testing"

	"github.com/Sokol111/avro-codec-bench/pkg/avro/container"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := newConfig(viper.New())

	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.DefaultCount)
	assert.Equal(t, container.CompressionNull, cfg.DefaultCompression)
	assert.Equal(t, os.TempDir(), cfg.TempDir)
	assert.Equal(t, 1000, cfg.BlockLength)
	assert.Equal(t, 10, cfg.WarmupIterations)
	assert.Equal(t, 1000, cfg.WarmupCount)
}

func TestNewConfig_FromFile(t *testing.T) {
	// Arrange
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
bench:
  defaultCount: 250
  defaultCompression: deflate
  tempDir: /var/tmp
  blockLength: 64
  warmupIterations: 3
  warmupCount: 20
`)))

	// Act
	cfg, err := newConfig(v)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Config{
		DefaultCount:       250,
		DefaultCompression: container.CompressionDeflate,
		TempDir:            "/var/tmp",
		BlockLength:        64,
		WarmupIterations:   3,
		WarmupCount:        20,
	}, cfg)
}

func TestNewConfig_UnknownCompressionFallsBack(t *testing.T) {
	v := viper.New()
	v.Set(keyDefaultCompression, "snappy")

	cfg, err := newConfig(v)

	require.NoError(t, err)
	assert.Equal(t, container.CompressionNull, cfg.DefaultCompression)
}

func TestNewConfig_EnvOverride(t *testing.T) {
	t.Setenv("BENCH_DEFAULTCOUNT", "42")
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg, err := newConfig(v)

	require.NoError(t, err)
	assert.Equal(t, 42, cfg.DefaultCount)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value any
		want  string
	}{
		{key: keyDefaultCount, value: -1, want: "defaultCount"},
		{key: keyTempDir, value: "", want: "tempDir"},
		{key: keyBlockLength, value: 0, want: "blockLength"},
		{key: keyWarmupIterations, value: -2, want: "warmupIterations"},
		{key: keyWarmupCount, value: -3, want: "warmupCount"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := newConfig(v)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid bench config")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
