package jot

import (
	"fmt"
	"strconv"
	"strings"
)

// parser reads JSON text with an explicit cursor. The cursor only
// ever moves forward; an error aborts the whole parse, so no
// backtracking is needed.
type parser struct {
	input string
	pos   int
}

// Parse parses JSON text into a value tree. On failure no partial
// tree is returned; the error is a *Error carrying the failure kind
// and the byte offset of the cursor.
func Parse(input string) (*Value, error) {
	p := &parser{input: input}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, p.errorAt(ErrTrailingData, p.pos,
			fmt.Sprintf("unexpected %q after top-level value", p.input[p.pos]))
	}
	return v, nil
}

func (p *parser) errorAt(kind ErrorKind, offset int, detail string) *Error {
	return &Error{Kind: kind, Offset: offset, Detail: detail}
}

// skipSpace advances the cursor past spaces, tabs, CRs, and LFs.
func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// parseValue parses any value.
func (p *parser) parseValue() (*Value, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, p.errorAt(ErrUnexpectedEOF, p.pos, "expected a value")
	}

	switch c := p.input[p.pos]; {
	case c == '{':
		return p.parseObject()

	case c == '[':
		return p.parseArray()

	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return p.parseNumber()

	case c >= 'a' && c <= 'z':
		return p.parseLiteral()

	default:
		return nil, p.errorAt(ErrExpectedToken, p.pos,
			fmt.Sprintf("unexpected %q, expected a value", c))
	}
}

// parseObject parses an object. The opening brace is at the cursor.
func (p *parser) parseObject() (*Value, error) {
	obj := Object()
	p.pos++ // consume '{'
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '}' {
		p.pos++
		return obj, nil
	}

	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, p.errorAt(ErrUnexpectedEOF, p.pos, "expected an object key")
		}
		if p.input[p.pos] != '"' {
			return nil, p.errorAt(ErrExpectedToken, p.pos,
				fmt.Sprintf("unexpected %q, expected a string key", p.input[p.pos]))
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, p.errorAt(ErrUnexpectedEOF, p.pos, "expected ':'")
		}
		if p.input[p.pos] != ':' {
			return nil, p.errorAt(ErrExpectedToken, p.pos,
				fmt.Sprintf("unexpected %q, expected ':'", p.input[p.pos]))
		}
		p.pos++

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)

		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, p.errorAt(ErrUnexpectedEOF, p.pos, "expected ',' or '}'")
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, p.errorAt(ErrExpectedToken, p.pos,
				fmt.Sprintf("unexpected %q, expected ',' or '}'", p.input[p.pos]))
		}
	}
}

// parseArray parses an array. The opening bracket is at the cursor.
func (p *parser) parseArray() (*Value, error) {
	arr := Array()
	p.pos++ // consume '['
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == ']' {
		p.pos++
		return arr, nil
	}

	for {
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Append(elem)

		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, p.errorAt(ErrUnexpectedEOF, p.pos, "expected ',' or ']'")
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.errorAt(ErrExpectedToken, p.pos,
				fmt.Sprintf("unexpected %q, expected ',' or ']'", p.input[p.pos]))
		}
	}
}

// parseString parses a quoted string. The opening quote is at the
// cursor. Recognized escapes map to their control character; any
// other escaped character passes through literally with the backslash
// discarded, so \uXXXX stays as "uXXXX".
func (p *parser) parseString() (string, error) {
	start := p.pos
	p.pos++ // consume opening '"'

	var sb strings.Builder
	for {
		if p.pos >= len(p.input) {
			return "", p.errorAt(ErrUnexpectedEOF, start, "unterminated string")
		}

		c := p.input[p.pos]
		if c == '"' {
			p.pos++
			return sb.String(), nil
		}

		if c == '\\' {
			p.pos++
			if p.pos >= len(p.input) {
				return "", p.errorAt(ErrUnexpectedEOF, start, "unterminated string")
			}
			switch esc := p.input[p.pos]; esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			default:
				sb.WriteByte(esc)
			}
			p.pos++
			continue
		}

		sb.WriteByte(c)
		p.pos++
	}
}

// parseNumber consumes the maximal run of digits, signs, and decimal
// points at the cursor and converts it.
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	for p.pos < len(p.input) && isNumberChar(p.input[p.pos]) {
		p.pos++
	}
	text := p.input[start:p.pos]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorAt(ErrNumberSyntax, start,
			fmt.Sprintf("cannot convert %q to a number", text))
	}
	return Number(f), nil
}

func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

// parseLiteral consumes a bare lowercase word and requires it to be
// exactly true, false, or null.
func (p *parser) parseLiteral() (*Value, error) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= 'a' && p.input[p.pos] <= 'z' {
		p.pos++
	}
	switch word := p.input[start:p.pos]; word {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "null":
		return Null(), nil
	default:
		return nil, p.errorAt(ErrBadLiteral, start,
			fmt.Sprintf("unrecognized literal %q", word))
	}
}
