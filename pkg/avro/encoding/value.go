package encoding

import (
	"fmt"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindString
	KindArray
	KindRecord
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindRecord:
		return "record"
	case KindUnion:
		return "union"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a dynamically typed Avro datum: the intermediate form of the
// generic codec path. The zero Value is null.
type Value struct {
	kind   Kind
	i      int32
	s      string
	name   string
	items  []Value
	fields []Field
	inner  *Value
}

// Field is a named record member.
type Field struct {
	Name  string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Int returns an Avro int.
func Int(i int32) Value { return Value{kind: KindInt, i: i} }

// String returns an Avro string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an Avro array of items.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Record returns an Avro record named name with fields in schema order.
func Record(name string, fields ...Field) Value {
	return Value{kind: KindRecord, name: name, fields: fields}
}

// Union returns a non-null union branch. A "null" branch collapses to Null.
func Union(branch string, v Value) Value {
	if branch == "null" {
		return Null()
	}
	return Value{kind: KindUnion, name: branch, inner: &v}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsInt returns the int held by v.
func (v Value) AsInt() (int32, bool) { return v.i, v.kind == KindInt }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// Items returns the array items held by v.
func (v Value) Items() ([]Value, bool) { return v.items, v.kind == KindArray }

// Fields returns the record fields held by v.
func (v Value) Fields() ([]Field, bool) { return v.fields, v.kind == KindRecord }

// Name returns the record name or union branch name.
func (v Value) Name() string { return v.name }

// Field looks up a record field by name.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindRecord {
		return Value{}, false
	}
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Branch returns the selected branch of a non-null union.
func (v Value) Branch() (string, Value, bool) {
	if v.kind != KindUnion {
		return "", Value{}, false
	}
	return v.name, *v.inner, true
}

// Unwrap returns the branch value of a union and v itself otherwise.
func (v Value) Unwrap() Value {
	if v.kind == KindUnion {
		return *v.inner
	}
	return v
}

// String renders v in a JSON-like debug form.
func (v Value) String() string {
	var sb strings.Builder
	v.format(&sb)
	return sb.String()
}

func (v Value) format(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindInt:
		fmt.Fprintf(sb, "%d", v.i)
	case KindString:
		fmt.Fprintf(sb, "%q", v.s)
	case KindArray:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.format(sb)
		}
		sb.WriteByte(']')
	case KindRecord:
		sb.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "%q:", f.Name)
			f.Value.format(sb)
		}
		sb.WriteByte('}')
	case KindUnion:
		fmt.Fprintf(sb, "{%q:", v.name)
		v.inner.format(sb)
		sb.WriteByte('}')
	}
}
