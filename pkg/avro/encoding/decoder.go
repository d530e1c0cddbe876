package encoding

import "github.com/Sokol111/avro-codec-bench/pkg/dataset"

// Decoder decodes Avro binary to Person records.
type Decoder interface {
	// Decode parses exactly one datum written with the codec's schema.
	Decode(data []byte) (*dataset.Person, error)
}
