// Package schema holds the fixed Person record schema shared by both codec variants.
//
// The literal is parsed once per run into both library representations:
// a hamba/avro schema (walked by the generic path, marshalled against by the
// direct path) and a goavro codec (the generic path's wire codec).
package schema

import (
	_ "embed"

	"github.com/cockroachdb/errors"
	hambavro "github.com/hamba/avro/v2"
	"github.com/linkedin/goavro/v2"
)

//go:embed person.avsc
var personSchema string

// Definition is an immutable, parsed record schema.
// It is safe to share read-only across all encode and decode calls.
type Definition struct {
	record *hambavro.RecordSchema
	codec  *goavro.Codec
}

// New parses the embedded Person schema.
func New() (*Definition, error) {
	return Parse(personSchema)
}

// Parse parses a record schema literal.
// It fails if the literal is malformed or does not describe a named record.
func Parse(raw string) (*Definition, error) {
	parsed, err := hambavro.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Avro schema")
	}

	record, ok := parsed.(*hambavro.RecordSchema)
	if !ok {
		return nil, errors.Newf("expected record type, got %q", parsed.Type())
	}

	if record.Name() == "" {
		return nil, errors.New("schema name is required")
	}

	codec, err := goavro.NewCodec(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build codec for schema %s", record.FullName())
	}

	return &Definition{
		record: record,
		codec:  codec,
	}, nil
}

// Schema returns the hamba/avro representation.
func (d *Definition) Schema() hambavro.Schema {
	return d.record
}

// Codec returns the goavro codec compiled from the same literal.
func (d *Definition) Codec() *goavro.Codec {
	return d.codec
}

// FullName returns the fully qualified record name (namespace.name).
func (d *Definition) FullName() string {
	return d.record.FullName()
}
