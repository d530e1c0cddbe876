package encoding

import (
	"io"

	"github.com/Sokol111/avro-codec-bench/pkg/avro/container"
	"github.com/Sokol111/avro-codec-bench/pkg/avro/schema"
	"github.com/Sokol111/avro-codec-bench/pkg/dataset"
	"github.com/cockroachdb/errors"
)

// GenericName identifies the intermediate-value strategy.
const GenericName = "generic"

type genericCodec struct {
	def *schema.Definition
}

// NewGenericCodec creates the intermediate-value codec: records are converted to
// a dynamic Value, then serialized by goavro against the schema. It is the only
// strategy that supports container files.
func NewGenericCodec(def *schema.Definition) ContainerCodec {
	return &genericCodec{def: def}
}

func (c *genericCodec) Name() string {
	return GenericName
}

func (c *genericCodec) Encode(p *dataset.Person) ([]byte, error) {
	native := PersonToValue(p).Native()

	data, err := c.def.Codec().BinaryFromNative(nil, native)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal avro data")
	}
	return data, nil
}

func (c *genericCodec) Decode(data []byte) (*dataset.Person, error) {
	native, rest, err := c.def.Codec().NativeFromBinary(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal avro data")
	}
	if len(rest) > 0 {
		return nil, errors.Wrapf(ErrTrailingBytes, "%d bytes left", len(rest))
	}

	p, err := c.fromNative(native)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *genericCodec) WriteContainer(w io.Writer, people []dataset.Person, opts container.Options) error {
	cw, err := container.NewWriter(w, c.def.Codec(), opts)
	if err != nil {
		return err
	}

	for i := range people {
		if err := cw.Append(PersonToValue(&people[i]).Native()); err != nil {
			return err
		}
	}

	return cw.Flush()
}

func (c *genericCodec) ReadContainer(r io.Reader, fn func(p dataset.Person) error) (container.Summary, error) {
	cr, err := container.NewReader(r)
	if err != nil {
		return container.Summary{}, err
	}

	summary := container.Summary{Compression: cr.Compression()}
	for cr.Next() {
		native, err := cr.Value()
		if err != nil {
			return summary, err
		}

		p, err := c.fromNative(native)
		if err != nil {
			return summary, errors.Wrapf(err, "container record %d", summary.Records)
		}

		if err := fn(p); err != nil {
			return summary, err
		}
		summary.Records++
	}

	return summary, cr.Err()
}

func (c *genericCodec) fromNative(native any) (dataset.Person, error) {
	v, err := FromNative(c.def.Schema(), native)
	if err != nil {
		return dataset.Person{}, errors.Wrap(err, "failed to convert avro datum")
	}
	return PersonFromValue(v)
}
