package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroIsNull(t *testing.T) {
	var v Value

	assert.True(t, v.IsNull())
	assert.Equal(t, KindNull, v.Kind())
	assert.Nil(t, v.Native())
}

func TestValue_Accessors(t *testing.T) {
	i, ok := Int(42).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int32(42), i)

	_, ok = Int(42).AsString()
	assert.False(t, ok)

	s, ok := String("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	items, ok := Array(String("a"), String("b")).Items()
	assert.True(t, ok)
	assert.Len(t, items, 2)

	_, ok = String("a").Items()
	assert.False(t, ok)
}

func TestValue_EmptyArrayIsNotNil(t *testing.T) {
	items, ok := Array().Items()

	require.True(t, ok)
	assert.NotNil(t, items)
	assert.Equal(t, []any{}, Array().Native())
}

func TestValue_RecordField(t *testing.T) {
	rec := Record("R", Field{Name: "a", Value: Int(1)}, Field{Name: "b", Value: String("two")})

	a, ok := rec.Field("a")
	require.True(t, ok)
	assert.Equal(t, Int(1), a)

	_, ok = rec.Field("missing")
	assert.False(t, ok)

	_, ok = Int(1).Field("a")
	assert.False(t, ok)

	assert.Equal(t, "R", rec.Name())
}

func TestValue_Union(t *testing.T) {
	u := Union("string", String("x"))

	branch, inner, ok := u.Branch()
	require.True(t, ok)
	assert.Equal(t, "string", branch)
	assert.Equal(t, String("x"), inner)
	assert.Equal(t, String("x"), u.Unwrap())
	assert.Equal(t, map[string]any{"string": "x"}, u.Native())
}

func TestValue_NullBranchCollapses(t *testing.T) {
	u := Union("null", Null())

	assert.True(t, u.IsNull())
	_, _, ok := u.Branch()
	assert.False(t, ok)
}

func TestValue_Native(t *testing.T) {
	rec := Record("Person",
		Field{Name: "name", Value: String("n")},
		Field{Name: "age", Value: Int(3)},
		Field{Name: "email", Value: Null()},
		Field{Name: "phone_numbers", Value: Array(String("p"))},
	)

	assert.Equal(t, map[string]any{
		"name":          "n",
		"age":           int32(3),
		"email":         nil,
		"phone_numbers": []any{"p"},
	}, rec.Native())
}

func TestValue_String(t *testing.T) {
	rec := Record("R",
		Field{Name: "a", Value: Int(1)},
		Field{Name: "b", Value: Union("string", String("x"))},
		Field{Name: "c", Value: Array(Null(), String("y"))},
	)

	assert.Equal(t, `{"a":1,"b":{"string":"x"},"c":[null,"y"]}`, rec.String())
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindNull:   "null",
		KindInt:    "int",
		KindString: "string",
		KindArray:  "array",
		KindRecord: "record",
		KindUnion:  "union",
		Kind(99):   "kind(99)",
	}

	for kind, want := range tests {
		assert.Equal(t, want, kind.String())
	}
}
