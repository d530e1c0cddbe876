package bench

import (
	"github.com/Sokol111/avro-codec-bench/pkg/avro/encoding"
	"github.com/Sokol111/avro-codec-bench/pkg/avro/schema"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CodecFactory builds the codec a program benchmarks.
type CodecFactory func(def *schema.Definition) encoding.Codec

// NewBenchModule provides the parsed schema, the codec built by factory,
// the `bench` Config and the *Driver.
func NewBenchModule(factory CodecFactory) fx.Option {
	return fx.Module("bench",
		fx.Provide(
			schema.New,
			func(def *schema.Definition) encoding.Codec {
				return factory(def)
			},
			newConfig,
			NewDriver,
		),
		fx.Invoke(logSetup),
	)
}

func logSetup(log *zap.Logger, def *schema.Definition, codec encoding.Codec, cfg Config) {
	log.Debug("benchmark configured",
		zap.String("schema", def.FullName()),
		zap.String("codec", codec.Name()),
		zap.Int("defaultCount", cfg.DefaultCount),
		zap.String("tempDir", cfg.TempDir),
	)
}
