// Package object models the values a compiled code unit carries in its
// constant pool: the singletons, numbers, strings, collections and nested
// code units of the runtime's serialized value format.
//
// Decoding these values from the runtime's own marshal stream is the job of
// an external reader; this package only holds the decoded form and a CBOR
// interchange encoding of it (see wire.go).
package object

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDictMismatch    = errors.New("dict keys and values differ in length")
	ErrUnknownType     = errors.New("unknown object type")
)

// Type is an object's type tag. The values are the type codes of the
// runtime's serialized format.
type Type byte

const (
	TypeNull               Type = '0'
	TypeNone               Type = 'N'
	TypeFalse              Type = 'F'
	TypeTrue               Type = 'T'
	TypeStopIteration      Type = 'S'
	TypeEllipsis           Type = '.'
	TypeInt                Type = 'i'
	TypeLong               Type = 'l'
	TypeFloat              Type = 'f'
	TypeBinaryFloat        Type = 'g'
	TypeComplex            Type = 'x'
	TypeBinaryComplex      Type = 'y'
	TypeString             Type = 's'
	TypeInterned           Type = 't'
	TypeStringRef          Type = 'R'
	TypeUnicode            Type = 'u'
	TypeASCII              Type = 'a'
	TypeASCIIInterned      Type = 'A'
	TypeShortASCII         Type = 'z'
	TypeShortASCIIInterned Type = 'Z'
	TypeTuple              Type = '('
	TypeSmallTuple         Type = ')'
	TypeList               Type = '['
	TypeDict               Type = '{'
	TypeSet                Type = '<'
	TypeFrozenSet          Type = '>'
	TypeCode               Type = 'c'
	TypeCode2              Type = 'C'
)

var typeNames = map[Type]string{
	TypeNull:               "null",
	TypeNone:               "none",
	TypeFalse:              "false",
	TypeTrue:               "true",
	TypeStopIteration:      "stopiteration",
	TypeEllipsis:           "ellipsis",
	TypeInt:                "int",
	TypeLong:               "long",
	TypeFloat:              "float",
	TypeBinaryFloat:        "binary_float",
	TypeComplex:            "complex",
	TypeBinaryComplex:      "binary_complex",
	TypeString:             "string",
	TypeInterned:           "interned",
	TypeStringRef:          "stringref",
	TypeUnicode:            "unicode",
	TypeASCII:              "ascii",
	TypeASCIIInterned:      "ascii_interned",
	TypeShortASCII:         "short_ascii",
	TypeShortASCIIInterned: "short_ascii_interned",
	TypeTuple:              "tuple",
	TypeSmallTuple:         "small_tuple",
	TypeList:               "list",
	TypeDict:               "dict",
	TypeSet:                "set",
	TypeFrozenSet:          "frozenset",
	TypeCode:               "code",
	TypeCode2:              "code2",
}

// String returns a lower-case name for the type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%q)", byte(t))
}

// IsString reports whether t tags a string-like value.
func (t Type) IsString() bool {
	switch t {
	case TypeString, TypeInterned, TypeStringRef, TypeUnicode, TypeASCII,
		TypeASCIIInterned, TypeShortASCII, TypeShortASCIIInterned:
		return true
	}
	return false
}

// Object is a decoded constant-pool value. The set of implementations is
// closed; a type switch over them in this module is exhaustive.
type Object interface {
	Type() Type
	isObject()
}

// ---------------------------------------------------------------------------
// Singletons
// ---------------------------------------------------------------------------

// Singleton is one of the value-less objects.
type Singleton struct {
	typ Type
}

var (
	None          = &Singleton{TypeNone}
	True          = &Singleton{TypeTrue}
	False         = &Singleton{TypeFalse}
	Ellipsis      = &Singleton{TypeEllipsis}
	StopIteration = &Singleton{TypeStopIteration}
)

func (s *Singleton) Type() Type { return s.typ }
func (*Singleton) isObject() {}

// Bool returns True or False.
func Bool(b bool) *Singleton {
	if b {
		return True
	}
	return False
}

// ---------------------------------------------------------------------------
// Numbers
// ---------------------------------------------------------------------------

// Int is a fixed-width 32-bit integer.
type Int struct {
	Value int32
}

func (*Int) Type() Type { return TypeInt }
func (*Int) isObject() {}

// Long is an arbitrary-precision integer, kept in its rendered form.
type Long struct {
	Repr string
}

// NewLong renders v in base 10.
func NewLong(v *big.Int) *Long {
	return &Long{Repr: v.String()}
}

func (*Long) Type() Type { return TypeLong }
func (*Long) isObject() {}

// Float is a float serialized as text.
type Float struct {
	Repr string
}

func (*Float) Type() Type { return TypeFloat }
func (*Float) isObject() {}

// BinaryFloat is a float serialized as an IEEE 754 double.
type BinaryFloat struct {
	Value float64
}

func (*BinaryFloat) Type() Type { return TypeBinaryFloat }
func (*BinaryFloat) isObject() {}

// Complex is a complex number whose parts are serialized as text.
type Complex struct {
	Real string
	Imag string
}

func (*Complex) Type() Type { return TypeComplex }
func (*Complex) isObject() {}

// BinaryComplex is a complex number whose parts are IEEE 754 doubles.
type BinaryComplex struct {
	Real float64
	Imag float64
}

func (*BinaryComplex) Type() Type { return TypeBinaryComplex }
func (*BinaryComplex) isObject() {}

// ---------------------------------------------------------------------------
// Strings
// ---------------------------------------------------------------------------

// String is any string-like value. Kind keeps the serialized tag because
// rendering depends on it: TypeString is a byte string, TypeUnicode a text
// string, and the interned/ASCII tags are text.
type String struct {
	Kind  Type
	Value []byte
}

// NewString returns a string of the given kind. Kind must satisfy
// Type.IsString.
func NewString(kind Type, s string) *String {
	return &String{Kind: kind, Value: []byte(s)}
}

func (s *String) Type() Type { return s.Kind }
func (*String) isObject() {}

// String returns the raw value as a Go string.
func (s *String) String() string { return string(s.Value) }

// ---------------------------------------------------------------------------
// Collections
// ---------------------------------------------------------------------------

// Tuple is an immutable sequence. Small records the compact serialized form.
type Tuple struct {
	Small  bool
	Values []Object
}

// NewTuple returns a tuple of values.
func NewTuple(values ...Object) *Tuple {
	return &Tuple{Values: values}
}

func (t *Tuple) Type() Type {
	if t.Small {
		return TypeSmallTuple
	}
	return TypeTuple
}
func (*Tuple) isObject() {}

// List is a mutable sequence.
type List struct {
	Values []Object
}

// NewList returns a list of values.
func NewList(values ...Object) *List {
	return &List{Values: values}
}

func (*List) Type() Type { return TypeList }
func (*List) isObject() {}

// Set is a set or frozenset, in serialized order.
type Set struct {
	Frozen bool
	Values []Object
}

// NewSet returns a set of values.
func NewSet(values ...Object) *Set {
	return &Set{Values: values}
}

func (s *Set) Type() Type {
	if s.Frozen {
		return TypeFrozenSet
	}
	return TypeSet
}
func (*Set) isObject() {}

// Dict holds keys and values as two parallel sequences of equal length.
type Dict struct {
	Keys   []Object
	Values []Object
}

// NewDict pairs keys with values. The slices must have the same length.
func NewDict(keys, values []Object) (*Dict, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrDictMismatch, len(keys), len(values))
	}
	return &Dict{Keys: keys, Values: values}, nil
}

// Set appends a key/value pair.
func (d *Dict) Set(key, value Object) {
	d.Keys = append(d.Keys, key)
	d.Values = append(d.Values, value)
}

// Len returns the number of pairs.
func (d *Dict) Len() int { return len(d.Keys) }

func (*Dict) Type() Type { return TypeDict }
func (*Dict) isObject() {}
