package object

import (
	"errors"
	"math/big"
	"testing"
)

func TestSingletonTypes(t *testing.T) {
	tests := []struct {
		obj  *Singleton
		want Type
	}{
		{None, TypeNone},
		{True, TypeTrue},
		{False, TypeFalse},
		{Ellipsis, TypeEllipsis},
		{StopIteration, TypeStopIteration},
	}
	for _, tt := range tests {
		if got := tt.obj.Type(); got != tt.want {
			t.Errorf("Type() = %s, want %s", got, tt.want)
		}
	}
	if Bool(true) != True || Bool(false) != False {
		t.Error("Bool should return the shared singletons")
	}
}

func TestTypeString(t *testing.T) {
	if got := TypeShortASCIIInterned.String(); got != "short_ascii_interned" {
		t.Errorf("String() = %q", got)
	}
	if got := Type('?').String(); got != "Type('?')" {
		t.Errorf("unknown type String() = %q", got)
	}
}

func TestIsString(t *testing.T) {
	for _, typ := range []Type{TypeString, TypeInterned, TypeStringRef, TypeUnicode,
		TypeASCII, TypeASCIIInterned, TypeShortASCII, TypeShortASCIIInterned} {
		if !typ.IsString() {
			t.Errorf("%s.IsString() = false", typ)
		}
	}
	for _, typ := range []Type{TypeInt, TypeTuple, TypeCode, TypeNull} {
		if typ.IsString() {
			t.Errorf("%s.IsString() = true", typ)
		}
	}
}

func TestCollectionTypes(t *testing.T) {
	tup := NewTuple(&Int{1})
	if tup.Type() != TypeTuple {
		t.Errorf("tuple type = %s", tup.Type())
	}
	tup.Small = true
	if tup.Type() != TypeSmallTuple {
		t.Errorf("small tuple type = %s", tup.Type())
	}

	set := NewSet(&Int{1})
	if set.Type() != TypeSet {
		t.Errorf("set type = %s", set.Type())
	}
	set.Frozen = true
	if set.Type() != TypeFrozenSet {
		t.Errorf("frozenset type = %s", set.Type())
	}

	s := NewString(TypeUnicode, "hi")
	if s.Type() != TypeUnicode || s.String() != "hi" {
		t.Errorf("string = %s %q", s.Type(), s.String())
	}
}

func TestNewDict(t *testing.T) {
	d, err := NewDict([]Object{&Int{1}, &Int{2}}, []Object{None, True})
	if err != nil {
		t.Fatalf("NewDict: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	d.Set(&Int{3}, False)
	if d.Len() != 3 || len(d.Values) != 3 {
		t.Errorf("after Set: %d keys, %d values", len(d.Keys), len(d.Values))
	}

	_, err = NewDict([]Object{&Int{1}}, nil)
	if !errors.Is(err, ErrDictMismatch) {
		t.Errorf("NewDict mismatch err = %v, want ErrDictMismatch", err)
	}
}

func TestNewLong(t *testing.T) {
	v, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	if got := NewLong(v).Repr; got != "-123456789012345678901234567890" {
		t.Errorf("Repr = %q", got)
	}
}
