package bench

import (
	"os"

	"github.com/Sokol111/avro-codec-bench/pkg/avro/container"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	keyDefaultCount       = "bench.defaultCount"
	keyDefaultCompression = "bench.defaultCompression"
	keyTempDir            = "bench.tempDir"
	keyBlockLength        = "bench.blockLength"
	keyWarmupIterations   = "bench.warmupIterations"
	keyWarmupCount        = "bench.warmupCount"
)

// Config is the `bench` section of the configuration.
// Positional CLI arguments take precedence over DefaultCount and DefaultCompression.
type Config struct {
	DefaultCount       int
	DefaultCompression container.Compression
	// TempDir holds the container file for the duration of a run.
	TempDir string
	// BlockLength is the number of records per container block.
	BlockLength      int
	WarmupIterations int
	WarmupCount      int
}

func DefaultConfig() Config {
	return Config{
		DefaultCount:       10000,
		DefaultCompression: container.CompressionNull,
		TempDir:            os.TempDir(),
		BlockLength:        container.DefaultBlockLength,
		WarmupIterations:   10,
		WarmupCount:        1000,
	}
}

func (c Config) Validate() error {
	if c.DefaultCount < 0 {
		return errors.Newf("defaultCount must not be negative, got %d", c.DefaultCount)
	}
	if c.TempDir == "" {
		return errors.New("tempDir is required")
	}
	if c.BlockLength <= 0 {
		return errors.Newf("blockLength must be positive, got %d", c.BlockLength)
	}
	if c.WarmupIterations < 0 {
		return errors.Newf("warmupIterations must not be negative, got %d", c.WarmupIterations)
	}
	if c.WarmupCount < 0 {
		return errors.Newf("warmupCount must not be negative, got %d", c.WarmupCount)
	}
	return nil
}

// newConfig reads key by key so that environment overrides such as
// BENCH_DEFAULTCOUNT apply even without a config file.
func newConfig(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()

	if v.IsSet(keyDefaultCount) {
		cfg.DefaultCount = v.GetInt(keyDefaultCount)
	}
	if v.IsSet(keyDefaultCompression) {
		cfg.DefaultCompression = container.ParseCompression(v.GetString(keyDefaultCompression))
	}
	if v.IsSet(keyTempDir) {
		cfg.TempDir = v.GetString(keyTempDir)
	}
	if v.IsSet(keyBlockLength) {
		cfg.BlockLength = v.GetInt(keyBlockLength)
	}
	if v.IsSet(keyWarmupIterations) {
		cfg.WarmupIterations = v.GetInt(keyWarmupIterations)
	}
	if v.IsSet(keyWarmupCount) {
		cfg.WarmupCount = v.GetInt(keyWarmupCount)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid bench config")
	}

	return cfg, nil
}
