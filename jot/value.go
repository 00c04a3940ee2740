package jot

import "fmt"

// Kind represents JSON value types.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value represents a JSON value. The zero value is null.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal bool
	numVal  float64
	strVal  string

	// Container values
	arrVal []*Value
	objVal []Member
}

// Member represents a key-value pair in an object.
type Member struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Number creates a number value.
func Number(v float64) *Value {
	return &Value{kind: KindNumber, numVal: v}
}

// String creates a string value.
func String(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Array creates an array value from the given elements.
func Array(elems ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: elems}
}

// Object creates an object value from key-value pairs. Later
// duplicates overwrite earlier ones in place, as with Set.
func Object(members ...Member) *Value {
	obj := &Value{kind: KindObject}
	for _, m := range members {
		obj.Set(m.Key, m.Value)
	}
	return obj
}

// Field creates a Member for use in Object construction.
func Field(key string, value *Value) Member {
	return Member{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind. A nil value reads as null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v.Kind() != KindBool {
		return false, typeMismatch(KindBool, v.Kind())
	}
	return v.boolVal, nil
}

// AsNumber returns the number value.
func (v *Value) AsNumber() (float64, error) {
	if v.Kind() != KindNumber {
		return 0, typeMismatch(KindNumber, v.Kind())
	}
	return v.numVal, nil
}

// AsString returns the string value.
func (v *Value) AsString() (string, error) {
	if v.Kind() != KindString {
		return "", typeMismatch(KindString, v.Kind())
	}
	return v.strVal, nil
}

// AsArray returns the array elements. The slice is a borrowed view;
// the array keeps ownership of the elements.
func (v *Value) AsArray() ([]*Value, error) {
	if v.Kind() != KindArray {
		return nil, typeMismatch(KindArray, v.Kind())
	}
	return v.arrVal, nil
}

// AsObject returns the object members in insertion order. The slice
// is a borrowed view; the object keeps ownership of the values.
func (v *Value) AsObject() ([]Member, error) {
	if v.Kind() != KindObject {
		return nil, typeMismatch(KindObject, v.Kind())
	}
	return v.objVal, nil
}

// Len returns the length of an array or object, 0 otherwise.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	default:
		return 0
	}
}

// Get returns the member value for key from an object, or nil when
// the key is absent. Absence is a normal outcome, not an error.
func (v *Value) Get(key string) *Value {
	if v.Kind() != KindObject {
		return nil
	}
	for _, m := range v.objVal {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// Index returns the i-th element of an array.
func (v *Value) Index(i int) (*Value, error) {
	if v.Kind() != KindArray {
		return nil, typeMismatch(KindArray, v.Kind())
	}
	if i < 0 || i >= len(v.arrVal) {
		return nil, &Error{
			Kind:   ErrIndexOutOfRange,
			Offset: -1,
			Detail: fmt.Sprintf("index %d out of range (len=%d)", i, len(v.arrVal)),
		}
	}
	return v.arrVal[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set sets the member value for key on an object. A new key is
// appended to the insertion order; an existing key keeps its position
// and has its value replaced.
func (v *Value) Set(key string, val *Value) {
	if v.Kind() != KindObject {
		panic("jot: Set on non-object value")
	}
	for i := range v.objVal {
		if v.objVal[i].Key == key {
			v.objVal[i].Value = val
			return
		}
	}
	v.objVal = append(v.objVal, Member{Key: key, Value: val})
}

// Append adds an element to the end of an array.
func (v *Value) Append(val *Value) {
	if v.Kind() != KindArray {
		panic("jot: Append on non-array value")
	}
	v.arrVal = append(v.arrVal, val)
}

// ============================================================
// Equality
// ============================================================

// Equal reports structural equality of two trees. Object member order
// is part of the structure, so objects with the same members in a
// different order are unequal. A nil value compares as null.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindNumber:
		return a.numVal == b.numVal
	case KindString:
		return a.strVal == b.strVal
	case KindArray:
		if len(a.arrVal) != len(b.arrVal) {
			return false
		}
		for i := range a.arrVal {
			if !Equal(a.arrVal[i], b.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.objVal) != len(b.objVal) {
			return false
		}
		for i := range a.objVal {
			if a.objVal[i].Key != b.objVal[i].Key {
				return false
			}
			if !Equal(a.objVal[i].Value, b.objVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
