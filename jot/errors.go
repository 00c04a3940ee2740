package jot

import "fmt"

// ErrorKind classifies jot errors.
type ErrorKind int

const (
	ErrTypeMismatch ErrorKind = iota + 1
	ErrIndexOutOfRange
	ErrUnexpectedEOF
	ErrExpectedToken
	ErrBadLiteral
	ErrNumberSyntax
	ErrTrailingData
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrIndexOutOfRange:
		return "index out of range"
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	case ErrExpectedToken:
		return "expected token"
	case ErrBadLiteral:
		return "unrecognized literal"
	case ErrNumberSyntax:
		return "numeric conversion failure"
	case ErrTrailingData:
		return "trailing characters"
	default:
		return "unknown"
	}
}

// Error carries the failure kind, the byte offset into the input for
// parse errors (-1 for accessor errors), and a human-readable detail.
type Error struct {
	Kind   ErrorKind
	Offset int
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("jot: %v at offset %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("jot: %v: %s", e.Kind, e.Detail)
}

// typeMismatch builds the accessor error for a wrong-variant read.
func typeMismatch(want, got Kind) *Error {
	return &Error{
		Kind:   ErrTypeMismatch,
		Offset: -1,
		Detail: fmt.Sprintf("expected %s, got %s", want, got),
	}
}
