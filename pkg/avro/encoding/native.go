package encoding

import (
	"github.com/cockroachdb/errors"
	hambavro "github.com/hamba/avro/v2"
	"github.com/linkedin/goavro/v2"
)

// Native converts v to the goavro native form:
// records are map[string]any, arrays []any, unions goavro.Union maps and null nil.
func (v Value) Native() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Native()
		}
		return out
	case KindRecord:
		out := make(map[string]any, len(v.fields))
		for _, f := range v.fields {
			out[f.Name] = f.Value.Native()
		}
		return out
	case KindUnion:
		return goavro.Union(v.name, v.inner.Native())
	default:
		return nil
	}
}

// FromNative converts a goavro native datum to a Value, walking s to resolve
// record field order and union branches.
func FromNative(s hambavro.Schema, native any) (Value, error) {
	switch s.Type() {
	case hambavro.Null:
		if native != nil {
			return Value{}, mismatch("null", native)
		}
		return Null(), nil

	case hambavro.Int:
		switch n := native.(type) {
		case int32:
			return Int(n), nil
		case int:
			return Int(int32(n)), nil
		default:
			return Value{}, mismatch("int", native)
		}

	case hambavro.String:
		str, ok := native.(string)
		if !ok {
			return Value{}, mismatch("string", native)
		}
		return String(str), nil

	case hambavro.Array:
		return arrayFromNative(s.(*hambavro.ArraySchema), native)

	case hambavro.Record:
		return recordFromNative(s.(*hambavro.RecordSchema), native)

	case hambavro.Union:
		return unionFromNative(s.(*hambavro.UnionSchema), native)

	default:
		return Value{}, errors.Wrapf(ErrTypeMismatch, "unsupported schema type %s", s.Type())
	}
}

func arrayFromNative(s *hambavro.ArraySchema, native any) (Value, error) {
	raw, ok := native.([]any)
	if !ok {
		return Value{}, mismatch("array", native)
	}

	items := make([]Value, len(raw))
	for i, item := range raw {
		v, err := FromNative(s.Items(), item)
		if err != nil {
			return Value{}, errors.Wrapf(err, "item %d", i)
		}
		items[i] = v
	}
	return Array(items...), nil
}

func recordFromNative(s *hambavro.RecordSchema, native any) (Value, error) {
	raw, ok := native.(map[string]any)
	if !ok {
		return Value{}, mismatch("record "+s.FullName(), native)
	}

	fields := make([]Field, 0, len(s.Fields()))
	for _, f := range s.Fields() {
		fieldNative, present := raw[f.Name()]
		if !present {
			return Value{}, errors.Wrapf(ErrTypeMismatch, "record %s: missing field %q", s.FullName(), f.Name())
		}
		v, err := FromNative(f.Type(), fieldNative)
		if err != nil {
			return Value{}, errors.Wrapf(err, "field %q", f.Name())
		}
		fields = append(fields, Field{Name: f.Name(), Value: v})
	}
	return Record(s.FullName(), fields...), nil
}

func unionFromNative(s *hambavro.UnionSchema, native any) (Value, error) {
	if native == nil {
		if !s.Nullable() {
			return Value{}, errors.Wrap(ErrTypeMismatch, "null for non-nullable union")
		}
		return Null(), nil
	}

	raw, ok := native.(map[string]any)
	if !ok || len(raw) != 1 {
		return Value{}, mismatch("union", native)
	}

	for branch, inner := range raw {
		for _, t := range s.Types() {
			if branchName(t) != branch {
				continue
			}
			v, err := FromNative(t, inner)
			if err != nil {
				return Value{}, errors.Wrapf(err, "union branch %q", branch)
			}
			return Union(branch, v), nil
		}
		return Value{}, errors.Wrapf(ErrTypeMismatch, "union has no branch %q", branch)
	}
	return Value{}, mismatch("union", native)
}

// branchName is the key goavro uses for a union member.
func branchName(s hambavro.Schema) string {
	if named, ok := s.(hambavro.NamedSchema); ok {
		return named.FullName()
	}
	return string(s.Type())
}

func mismatch(want string, got any) error {
	return errors.Wrapf(ErrTypeMismatch, "expected %s, got %T", want, got)
}
