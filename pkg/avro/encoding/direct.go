package encoding

import (
	"github.com/Sokol111/avro-codec-bench/pkg/avro/schema"
	"github.com/Sokol111/avro-codec-bench/pkg/dataset"
	"github.com/cockroachdb/errors"
	hambavro "github.com/hamba/avro/v2"
)

// DirectName identifies the direct typed strategy.
const DirectName = "direct"

const defaultReaderBufSize = 512

type directCodec struct {
	api    hambavro.API
	schema hambavro.Schema
	reader *hambavro.Reader
}

// NewDirectCodec creates the direct codec: records are marshalled by hamba/avro
// straight from the typed struct, with no intermediate representation.
//
// Arrays are written with a plain item count (no byte-size header) so the
// output is byte-identical to the generic codec's.
//
// The frozen configuration is built once per codec and reused by every call,
// so its per-type encoder cache amortizes across the run. The codec keeps a
// reusable reader and is not safe for concurrent use.
func NewDirectCodec(def *schema.Definition) Codec {
	api := hambavro.Config{
		TagKey:                 "avro",
		UnionResolutionError:   true,
		DisableBlockSizeHeader: true,
	}.Freeze()

	return &directCodec{
		api:    api,
		schema: def.Schema(),
		reader: hambavro.NewReader(nil, defaultReaderBufSize, hambavro.WithReaderConfig(api)),
	}
}

func (c *directCodec) Name() string {
	return DirectName
}

func (c *directCodec) Encode(p *dataset.Person) ([]byte, error) {
	data, err := c.api.Marshal(c.schema, p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal avro data")
	}
	return data, nil
}

// Decode reads through a reader instead of API.Unmarshal, which treats a
// premature end of input as success.
func (c *directCodec) Decode(data []byte) (*dataset.Person, error) {
	var p dataset.Person

	c.reader.Reset(data)
	c.reader.Error = nil
	c.reader.ReadVal(c.schema, &p)
	if err := c.reader.Error; err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal avro data")
	}

	// Peek leaves Error nil only when unread bytes remain.
	c.reader.Peek()
	if c.reader.Error == nil {
		return nil, errors.Wrap(ErrTrailingBytes, "datum followed by unread bytes")
	}

	return &p, nil
}
