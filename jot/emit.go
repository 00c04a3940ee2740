package jot

import (
	"math"
	"strconv"
	"strings"
)

// Serialize converts the value tree to JSON text. indent is the unit
// width: 0 produces compact output with no interior whitespace; w > 0
// puts each element on its own line, indented w spaces per nesting
// level, with ": " after keys.
//
// Strings are escaped on output (quote, backslash, and the control
// characters the parser decodes), so serialized text always parses
// back to an Equal tree. Numbers use the shortest decimal form
// without an exponent; NaN and infinities serialize as null.
func (v *Value) Serialize(indent int) string {
	e := &emitter{width: indent}
	e.emit(v, 0)
	return e.sb.String()
}

type emitter struct {
	sb    strings.Builder
	width int
}

func (e *emitter) pretty() bool { return e.width > 0 }

func (e *emitter) emit(v *Value, depth int) {
	if v == nil || v.kind == KindNull {
		e.sb.WriteString("null")
		return
	}

	switch v.kind {
	case KindBool:
		if v.boolVal {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}

	case KindNumber:
		e.emitNumber(v.numVal)

	case KindString:
		e.emitString(v.strVal)

	case KindArray:
		e.emitArray(v, depth)

	case KindObject:
		e.emitObject(v, depth)
	}
}

func (e *emitter) emitNumber(f float64) {
	// NaN and infinities have no textual form in the grammar.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		e.sb.WriteString("null")
		return
	}
	// Shortest representation that round-trips, never an exponent.
	e.sb.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
}

func (e *emitter) emitString(s string) {
	e.sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			e.sb.WriteString(`\"`)
		case '\\':
			e.sb.WriteString(`\\`)
		case '\n':
			e.sb.WriteString(`\n`)
		case '\t':
			e.sb.WriteString(`\t`)
		case '\r':
			e.sb.WriteString(`\r`)
		case '\b':
			e.sb.WriteString(`\b`)
		case '\f':
			e.sb.WriteString(`\f`)
		default:
			e.sb.WriteByte(c)
		}
	}
	e.sb.WriteByte('"')
}

func (e *emitter) emitArray(v *Value, depth int) {
	if len(v.arrVal) == 0 {
		e.sb.WriteString("[]")
		return
	}

	e.sb.WriteByte('[')
	if e.pretty() {
		e.sb.WriteByte('\n')
	}

	for i, elem := range v.arrVal {
		if e.pretty() {
			e.writeIndent(depth + 1)
		}
		e.emit(elem, depth+1)
		if i < len(v.arrVal)-1 {
			e.sb.WriteByte(',')
		}
		if e.pretty() {
			e.sb.WriteByte('\n')
		}
	}

	if e.pretty() {
		e.writeIndent(depth)
	}
	e.sb.WriteByte(']')
}

func (e *emitter) emitObject(v *Value, depth int) {
	if len(v.objVal) == 0 {
		e.sb.WriteString("{}")
		return
	}

	e.sb.WriteByte('{')
	if e.pretty() {
		e.sb.WriteByte('\n')
	}

	for i, m := range v.objVal {
		if e.pretty() {
			e.writeIndent(depth + 1)
		}
		e.emitString(m.Key)
		e.sb.WriteByte(':')
		if e.pretty() {
			e.sb.WriteByte(' ')
		}
		e.emit(m.Value, depth+1)
		if i < len(v.objVal)-1 {
			e.sb.WriteByte(',')
		}
		if e.pretty() {
			e.sb.WriteByte('\n')
		}
	}

	if e.pretty() {
		e.writeIndent(depth)
	}
	e.sb.WriteByte('}')
}

func (e *emitter) writeIndent(depth int) {
	for i := 0; i < depth*e.width; i++ {
		e.sb.WriteByte(' ')
	}
}
