package opcode

import "testing"

var predicates = []struct {
	name string
	fn   func(Op) bool
}{
	{"IsConstArg", IsConstArg},
	{"IsNameArg", IsNameArg},
	{"IsVarNameArg", IsVarNameArg},
	{"IsCellArg", IsCellArg},
	{"IsJumpOffsetArg", IsJumpOffsetArg},
	{"IsCompareArg", IsCompareArg},
}

func TestPredicatesDisjoint(t *testing.T) {
	for op := OpInvalid; op <= NumOpcodes; op++ {
		var matched []string
		for _, p := range predicates {
			if p.fn(op) {
				matched = append(matched, p.name)
			}
		}
		if len(matched) > 1 {
			t.Errorf("%s matches %v", op, matched)
		}
	}
}

func TestClassifiedOpcodesTakeOperands(t *testing.T) {
	for _, op := range All() {
		if Classify(op) != KindNone && !op.HasArg() {
			t.Errorf("%s is classified %s but takes no operand", op, Classify(op))
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		op   Op
		want OperandKind
	}{
		{OpLoadConst, KindConst},
		{OpReserveFast, KindConst},
		{OpLoadName, KindName},
		{OpStoreAttr, KindName},
		{OpImportFrom, KindName},
		{OpLoadLocal, KindName},
		{OpLoadFast, KindVarName},
		{OpDeleteFast, KindVarName},
		{OpLoadClosure, KindCell},
		{OpStoreDeref, KindCell},
		{OpJumpForward, KindJumpOffset},
		{OpForLoop, KindJumpOffset},
		{OpForIter, KindJumpOffset},
		{OpSetupFinally, KindJumpOffset},
		{OpCompareOp, KindCompare},
		{OpJumpAbsolute, KindNone},
		{OpCallFunction, KindNone},
		{OpPopTop, KindNone},
		{OpInvalid, KindNone},
	}

	for _, tt := range tests {
		if got := Classify(tt.op); got != tt.want {
			t.Errorf("Classify(%s) = %s, want %s", tt.op, got, tt.want)
		}
	}
}

func TestJumpOffsetSet(t *testing.T) {
	var jumps []Op
	for _, op := range All() {
		if IsJumpOffsetArg(op) {
			jumps = append(jumps, op)
		}
	}
	if len(jumps) != 8 {
		t.Errorf("got %d jump-offset opcodes %v, want 8", len(jumps), jumps)
	}
}

func TestCompareOp(t *testing.T) {
	tests := []struct {
		operand int
		want    string
		ok      bool
	}{
		{0, "<", true},
		{2, "==", true},
		{7, "not in", true},
		{10, "<EXCEPTION MATCH>", true},
		{11, "<BAD>", true},
		{12, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := CompareOp(tt.operand)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CompareOp(%d) = %q, %v; want %q, %v", tt.operand, got, ok, tt.want, tt.ok)
		}
	}
	if NumCompareOps != 12 {
		t.Errorf("NumCompareOps = %d, want 12", NumCompareOps)
	}
}

func TestOperandKindString(t *testing.T) {
	if got := KindJumpOffset.String(); got != "jrel" {
		t.Errorf("KindJumpOffset.String() = %q", got)
	}
	if got := OperandKind(99).String(); got != "OperandKind(99)" {
		t.Errorf("OperandKind(99).String() = %q", got)
	}
}
