package opcode

import (
	"strconv"
	"strings"
	"testing"
)

func TestAllOpcodesHaveNames(t *testing.T) {
	for _, op := range All() {
		name := Name(op)
		if name == "" || strings.HasPrefix(name, "<") {
			t.Errorf("Opcode %d has no name", int(op))
		}
	}
}

func TestOpcodeCount(t *testing.T) {
	if got := len(All()); got != int(NumOpcodes) {
		t.Errorf("len(All()) = %d, want %d", got, NumOpcodes)
	}
	if len(opcodeNames) != int(NumOpcodes) {
		t.Errorf("len(opcodeNames) = %d, want %d", len(opcodeNames), NumOpcodes)
	}
}

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpStopCode, "STOP_CODE"},
		{OpPopTop, "POP_TOP"},
		{OpSlice2, "SLICE_2"},
		{OpLoadConst, "LOAD_CONST"},
		{OpCompareOp, "COMPARE_OP"},
		{OpExtendedArg, "EXTENDED_ARG"},
		{OpListAppend, "LIST_APPEND"},
		{OpListAppendA, "LIST_APPEND"},
		{OpBuildString, "BUILD_STRING"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", int(tt.op), got, tt.want)
		}
	}
}

func TestNameInvalid(t *testing.T) {
	if got := Name(-1); got != InvalidName {
		t.Errorf("Name(-1) = %q, want %q", got, InvalidName)
	}
	if got := Name(OpInvalid); got != "<INVALID>" {
		t.Errorf("Name(OpInvalid) = %q, want <INVALID>", got)
	}
}

func TestNameOutOfRange(t *testing.T) {
	got := Name(NumOpcodes)
	want := "<" + strconv.Itoa(int(NumOpcodes)) + ">"
	if got != want {
		t.Errorf("Name(NumOpcodes) = %q, want %q", got, want)
	}
	if got := Name(1000); got != "<1000>" {
		t.Errorf("Name(1000) = %q, want <1000>", got)
	}
}

func TestHasArg(t *testing.T) {
	noArg := []Op{OpStopCode, OpPopTop, OpReturnValue, OpListAppend, OpSetupAnnotations}
	for _, op := range noArg {
		if op.HasArg() {
			t.Errorf("%s.HasArg() = true, want false", op)
		}
	}

	withArg := []Op{OpStoreName, OpLoadConst, OpExtendedArg, OpListAppendA, OpBuildString}
	for _, op := range withArg {
		if !op.HasArg() {
			t.Errorf("%s.HasArg() = false, want true", op)
		}
	}

	if OpInvalid.HasArg() {
		t.Error("OpInvalid.HasArg() = true, want false")
	}
}

func TestHaveArgThreshold(t *testing.T) {
	if OpHaveArg != OpStoreName {
		t.Errorf("OpHaveArg = %s, want STORE_NAME", OpHaveArg)
	}
	if !(OpSetupAnnotations < OpHaveArg) {
		t.Error("last operand-less opcode must sort below OpHaveArg")
	}
}

func TestValid(t *testing.T) {
	if OpInvalid.Valid() {
		t.Error("OpInvalid.Valid() = true")
	}
	if NumOpcodes.Valid() {
		t.Error("NumOpcodes.Valid() = true")
	}
	if !OpLoadFast.Valid() {
		t.Error("OpLoadFast.Valid() = false")
	}
}
