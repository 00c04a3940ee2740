package jot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// roundtripCorpus covers every kind and a few pathological shapes.
func roundtripCorpus() map[string]*Value {
	return map[string]*Value{
		"null":         Null(),
		"true":         Bool(true),
		"false":        Bool(false),
		"zero":         Number(0),
		"integer":      Number(1234567),
		"negative":     Number(-42),
		"fraction":     Number(0.125),
		"tiny":         Number(0.0000001),
		"empty string": String(""),
		"plain string": String("hello world"),
		"quoted":       String(`she said "why"`),
		"backslashes":  String(`a\b\\c`),
		"control":      String("line1\nline2\ttabbed\r"),
		"empty array":  Array(),
		"empty object": Object(),
		"flat array":   Array(Number(1), String("two"), Bool(false), Null()),
		"flat object": Object(
			Field("id", Number(9)),
			Field("name", String("ada")),
			Field("active", Bool(true)),
			Field("note", Null()),
		),
		"nested": Object(
			Field("matrix", Array(
				Array(Number(1), Number(2)),
				Array(Number(3), Number(4)),
			)),
			Field("meta", Object(
				Field("tags", Array(String("x"), String("y"))),
				Field("depth", Object(Field("inner", Array(Object())))),
			)),
		),
	}
}

func TestRoundTrip_Compact(t *testing.T) {
	for name, v := range roundtripCorpus() {
		t.Run(name, func(t *testing.T) {
			text := v.Serialize(0)
			back, err := Parse(text)
			require.NoError(t, err, "input: %s", text)
			require.True(t, Equal(v, back), "serialized: %s", text)
		})
	}
}

func TestRoundTrip_PrettyWidths(t *testing.T) {
	for name, v := range roundtripCorpus() {
		t.Run(name, func(t *testing.T) {
			for _, w := range []int{1, 2, 4, 8} {
				text := v.Serialize(w)
				back, err := Parse(text)
				require.NoError(t, err, "width %d input: %s", w, text)
				require.True(t, Equal(v, back), "width %d serialized: %s", w, text)
			}
		})
	}
}

func TestRoundTrip_Idempotence(t *testing.T) {
	for name, v := range roundtripCorpus() {
		t.Run(name, func(t *testing.T) {
			for _, w := range []int{0, 2} {
				once := v.Serialize(w)
				back, err := Parse(once)
				require.NoError(t, err)
				require.Equal(t, once, back.Serialize(w))
			}
		})
	}
}

func TestRoundTrip_PrettyCompactEquivalence(t *testing.T) {
	for name, v := range roundtripCorpus() {
		t.Run(name, func(t *testing.T) {
			fromCompact, err := Parse(v.Serialize(0))
			require.NoError(t, err)
			fromPretty, err := Parse(v.Serialize(2))
			require.NoError(t, err)
			require.True(t, Equal(fromCompact, fromPretty))
		})
	}
}

func TestRoundTrip_ParsedText(t *testing.T) {
	// Starting from text instead of a tree: parse, serialize, parse
	// again, and the trees must agree.
	inputs := []string{
		`{"a":1,"b":[true,null,"x\ny"],"c":{"d":-0.5}}`,
		`[[[]],{},"",0]`,
		` { "k" : [ 1 , 2 , 3 ] } `,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse(input)
			require.NoError(t, err)
			for _, w := range []int{0, 2} {
				again, err := Parse(first.Serialize(w))
				require.NoError(t, err)
				require.True(t, Equal(first, again))
			}
		})
	}
}
