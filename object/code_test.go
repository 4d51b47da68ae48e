package object

import (
	"errors"
	"testing"
)

func testCode() *Code {
	inner := &Code{Name: "inner"}
	return &Code{
		Code:     []byte{100, 0, 0, 83},
		Consts:   []Object{None, inner, &Int{7}},
		Names:    []string{"print"},
		VarNames: []string{"x", "y"},
		CellVars: []string{"c"},
		FreeVars: []string{"f1", "f2"},
		Name:     "<module>",
	}
}

func TestCodeLookups(t *testing.T) {
	c := testCode()

	if obj, err := c.Const(2); err != nil || obj.(*Int).Value != 7 {
		t.Errorf("Const(2) = %v, %v", obj, err)
	}
	if name, err := c.NameAt(0); err != nil || name != "print" {
		t.Errorf("NameAt(0) = %q, %v", name, err)
	}
	if name, err := c.VarName(1); err != nil || name != "y" {
		t.Errorf("VarName(1) = %q, %v", name, err)
	}

	cells := []string{"c", "f1", "f2"}
	for i, want := range cells {
		if got, err := c.CellVar(i); err != nil || got != want {
			t.Errorf("CellVar(%d) = %q, %v; want %q", i, got, err, want)
		}
	}
}

func TestCodeLookupOutOfRange(t *testing.T) {
	c := testCode()

	_, errConst := c.Const(3)
	_, errNeg := c.Const(-1)
	_, errName := c.NameAt(1)
	_, errVar := c.VarName(2)
	_, errCell := c.CellVar(3)
	_, errCellNeg := c.CellVar(-1)

	checks := []struct {
		name string
		err  error
	}{
		{"Const", errConst},
		{"Const(-1)", errNeg},
		{"NameAt", errName},
		{"VarName", errVar},
		{"CellVar", errCell},
		{"CellVar(-1)", errCellNeg},
	}
	for _, tt := range checks {
		if !errors.Is(tt.err, ErrIndexOutOfRange) {
			t.Errorf("%s err = %v, want ErrIndexOutOfRange", tt.name, tt.err)
		}
	}
}

func TestCodeNested(t *testing.T) {
	nested := testCode().Nested()
	if len(nested) != 1 || nested[0].Name != "inner" {
		t.Errorf("Nested() = %v", nested)
	}
}

func TestCodeType(t *testing.T) {
	c := &Code{}
	if c.Type() != TypeCode {
		t.Errorf("Type() = %s", c.Type())
	}
	c.Legacy = true
	if c.Type() != TypeCode2 {
		t.Errorf("legacy Type() = %s", c.Type())
	}
}

func TestFlagNames(t *testing.T) {
	tests := []struct {
		flags uint32
		want  string
	}{
		{0, ""},
		{FlagOptimized | FlagNewLocals, "CO_OPTIMIZED | CO_NEWLOCALS"},
		{FlagGenerator | FlagNoFree, "CO_GENERATOR | CO_NOFREE"},
		{FlagFutureDivision | 0x800, "CO_FUTURE_DIVISION | 0x800"},
	}
	for _, tt := range tests {
		if got := FlagNames(tt.flags); got != tt.want {
			t.Errorf("FlagNames(%#x) = %q, want %q", tt.flags, got, tt.want)
		}
	}
}
