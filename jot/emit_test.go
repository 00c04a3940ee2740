package jot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================
// Serializer Tests
// ============================================================

func TestSerialize_Compact(t *testing.T) {
	tests := []struct {
		name  string
		value *Value
		want  string
	}{
		{"null", Null(), "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"integer", Number(42), "42"},
		{"negative", Number(-7), "-7"},
		{"fraction", Number(3.14), "3.14"},
		{"zero", Number(0), "0"},
		{"string", String("hello"), `"hello"`},
		{"empty string", String(""), `""`},
		{"empty array", Array(), "[]"},
		{"empty object", Object(), "{}"},
		{"array", Array(Number(1), Number(2), Number(3)), "[1,2,3]"},
		{"mixed array", Array(Null(), Bool(true), String("x")), `[null,true,"x"]`},
		{
			"object",
			Object(Field("a", Number(1)), Field("b", Number(2))),
			`{"a":1,"b":2}`,
		},
		{
			"nested",
			Object(Field("xs", Array(Number(1), Object(Field("y", Null()))))),
			`{"xs":[1,{"y":null}]}`,
		},
		{"nil value", nil, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.value.Serialize(0))
		})
	}
}

func TestSerialize_Pretty(t *testing.T) {
	v := Object(
		Field("a", Number(1)),
		Field("b", Array(Number(1), Number(2))),
		Field("c", Object(Field("d", String("x")))),
	)

	want := `{
  "a": 1,
  "b": [
    1,
    2
  ],
  "c": {
    "d": "x"
  }
}`
	require.Equal(t, want, v.Serialize(2))
}

func TestSerialize_PrettyWidthFour(t *testing.T) {
	v := Array(Number(1), Array(Number(2)))

	want := `[
    1,
    [
        2
    ]
]`
	require.Equal(t, want, v.Serialize(4))
}

func TestSerialize_PrettyEmptyContainers(t *testing.T) {
	require.Equal(t, "{}", Object().Serialize(2))
	require.Equal(t, "[]", Array().Serialize(2))
	require.Equal(t, `{
  "a": []
}`, Object(Field("a", Array())).Serialize(2))
}

func TestSerialize_StringEscaping(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `c:\temp`, `"c:\\temp"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"backspace", "a\bb", `"a\bb"`},
		{"formfeed", "a\fb", `"a\fb"`},
		{"plain utf8 passes through", "héllo", `"héllo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, String(tt.value).Serialize(0))
		})
	}
}

func TestSerialize_Numbers(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integral", 100, "100"},
		{"shortest fraction", 0.1, "0.1"},
		{"negative fraction", -2.5, "-2.5"},
		{"no exponent for large values", 1e21, "1000000000000000000000"},
		{"nan becomes null", math.NaN(), "null"},
		{"positive infinity becomes null", math.Inf(1), "null"},
		{"negative infinity becomes null", math.Inf(-1), "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Number(tt.in).Serialize(0))
		})
	}
}

func TestSerialize_KeyEscaping(t *testing.T) {
	v := Object(Field(`a"b`, Number(1)))
	require.Equal(t, `{"a\"b":1}`, v.Serialize(0))
}
