package encoding

import (
	"io"

	"github.com/Sokol111/avro-codec-bench/pkg/avro/container"
	"github.com/Sokol111/avro-codec-bench/pkg/dataset"
	"github.com/cockroachdb/errors"
)

var (
	// ErrTypeMismatch is returned when a value does not have the shape the schema requires.
	ErrTypeMismatch = errors.New("avro type mismatch")
	// ErrTrailingBytes is returned when a buffer holds more than one datum.
	ErrTrailingBytes = errors.New("trailing bytes after avro datum")
)

// Encoder encodes Person records to Avro binary.
type Encoder interface {
	// Encode serializes one record against the codec's schema.
	Encode(p *dataset.Person) ([]byte, error)
}

// Codec is one encode/decode strategy bound to a parsed schema.
type Codec interface {
	Encoder
	Decoder
	// Name identifies the strategy in logs.
	Name() string
}

// ContainerCodec is a Codec that can also write and read Object Container Files.
type ContainerCodec interface {
	Codec
	// WriteContainer writes a complete container file holding people, in order.
	WriteContainer(w io.Writer, people []dataset.Person, opts container.Options) error
	// ReadContainer calls fn for every record of the container file in r.
	// The summary counts the records handed to fn.
	ReadContainer(r io.Reader, fn func(p dataset.Person) error) (container.Summary, error)
}
