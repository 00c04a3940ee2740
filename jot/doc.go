// Package jot implements a JSON object-tree codec.
//
// jot is centered on an explicit value tree rather than struct
// reflection: Parse turns JSON text into a tree of *Value nodes, the
// tree can be inspected and built up with typed accessors and
// mutators, and Serialize turns it back into text, compact or
// indented.
//
// # Data Model
//
// Scalars: null, bool, number (float64), string
// Containers: array, object
//
// Objects preserve key insertion order. Re-setting an existing key
// replaces its value in place without moving the key. Every child is
// owned by exactly one parent; the tree is always acyclic.
//
// # Example
//
//	v, err := jot.Parse(`{"name":"ada","tags":["math","logic"]}`)
//	if err != nil {
//		// err is a *jot.Error carrying the failure kind and offset
//	}
//	name, _ := v.Get("name").AsString()
//
//	out := v.Serialize(2) // pretty, two spaces per level
//
// # Building Trees
//
//	doc := jot.Object(
//		jot.Field("id", jot.Number(7)),
//		jot.Field("ok", jot.Bool(true)),
//	)
//	doc.Set("note", jot.String("built by hand"))
//
// # Errors
//
// All failures are *Error values discriminated by an ErrorKind. Parse
// errors additionally carry the byte offset of the cursor at the point
// of failure. Parsing never returns a partial tree: the first grammar
// violation aborts the whole call.
//
// # Limitations
//
// Numeric \uXXXX escapes are not decoded; the escaped character passes
// through literally with the backslash discarded. Numbers have no
// exponent form, on input or output. Serialize emits null for
// non-finite numbers.
//
// A fully built tree is safe for concurrent readers. Mutating a tree
// while it is being read is not supported; build first, then share.
package jot
