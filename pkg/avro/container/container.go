// Package container reads and writes Avro Object Container Files.
//
// A container file is self-describing: its header embeds the writer schema and
// the block compression codec, followed by framed blocks of encoded records.
// Values are goavro native values (map[string]any records, []any arrays,
// goavro union maps).
package container

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/linkedin/goavro/v2"
)

// DefaultBlockLength is the number of records buffered per container block.
const DefaultBlockLength = 1000

// Options configures a Writer.
type Options struct {
	// Compression is the block codec. Empty means CompressionNull.
	Compression Compression
	// BlockLength is the number of records per block. Non-positive means DefaultBlockLength.
	BlockLength int
}

func (o Options) withDefaults() Options {
	if o.Compression == "" {
		o.Compression = CompressionNull
	}
	if o.BlockLength <= 0 {
		o.BlockLength = DefaultBlockLength
	}
	return o
}

// Writer appends native values to a container file in blocks.
// It is not safe for concurrent use.
type Writer struct {
	buf     *bufio.Writer
	ocf     *goavro.OCFWriter
	pending []any
	opts    Options
}

// NewWriter writes the container header to w and returns a Writer for appending records.
func NewWriter(w io.Writer, codec *goavro.Codec, opts Options) (*Writer, error) {
	opts = opts.withDefaults()
	buf := bufio.NewWriter(w)

	ocf, err := goavro.NewOCFWriter(goavro.OCFConfig{
		W:               buf,
		Codec:           codec,
		CompressionName: opts.Compression.String(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create container writer (compression %s)", opts.Compression)
	}

	return &Writer{
		buf:     buf,
		ocf:     ocf,
		pending: make([]any, 0, opts.BlockLength),
		opts:    opts,
	}, nil
}

// Append buffers one native value, writing a block once BlockLength values are pending.
func (w *Writer) Append(native any) error {
	w.pending = append(w.pending, native)
	if len(w.pending) >= w.opts.BlockLength {
		return w.writeBlock()
	}
	return nil
}

// Flush writes any pending values as a final block and flushes the underlying writer.
func (w *Writer) Flush() error {
	if err := w.writeBlock(); err != nil {
		return err
	}
	if err := w.buf.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush container")
	}
	return nil
}

func (w *Writer) writeBlock() error {
	if len(w.pending) == 0 {
		return nil
	}
	if err := w.ocf.Append(w.pending); err != nil {
		return errors.Wrapf(err, "failed to append block of %d records", len(w.pending))
	}
	w.pending = w.pending[:0]
	return nil
}

// Summary describes a container file after it has been read to the end.
type Summary struct {
	Records     int
	Compression Compression
}

// Reader iterates the native values of a container file in write order.
type Reader struct {
	ocf *goavro.OCFReader
}

// NewReader reads the container header from r.
func NewReader(r io.Reader) (*Reader, error) {
	ocf, err := goavro.NewOCFReader(bufio.NewReader(r))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read container header")
	}
	return &Reader{ocf: ocf}, nil
}

// Next reports whether another value is available.
func (r *Reader) Next() bool {
	return r.ocf.Scan()
}

// Value decodes the current value.
func (r *Reader) Value() (any, error) {
	native, err := r.ocf.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read container record")
	}
	return native, nil
}

// Err returns the first error encountered while scanning.
func (r *Reader) Err() error {
	if err := r.ocf.Err(); err != nil {
		return errors.Wrap(err, "failed to scan container")
	}
	return nil
}

// Compression returns the block codec recorded in the header.
func (r *Reader) Compression() Compression {
	return Compression(r.ocf.CompressionName())
}
