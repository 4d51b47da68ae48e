package opcode

import "fmt"

// OperandKind says how an instruction's operand must be interpreted.
// Every opcode has exactly one kind, so the Is*Arg predicates below never
// overlap.
type OperandKind uint8

const (
	// KindNone is a bare integer operand, or no operand at all.
	KindNone OperandKind = iota

	// KindConst indexes the code unit's constant pool.
	KindConst

	// KindName indexes the code unit's name table.
	KindName

	// KindVarName indexes the local variable names.
	KindVarName

	// KindCell indexes cell variables, then free variables.
	KindCell

	// KindJumpOffset is relative to the position after the instruction.
	KindJumpOffset

	// KindCompare indexes the comparison operator table.
	KindCompare
)

// String returns a short name for the kind.
func (k OperandKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConst:
		return "const"
	case KindName:
		return "name"
	case KindVarName:
		return "varname"
	case KindCell:
		return "cell"
	case KindJumpOffset:
		return "jrel"
	case KindCompare:
		return "compare"
	default:
		return fmt.Sprintf("OperandKind(%d)", k)
	}
}

// Classify returns the operand kind of a canonical opcode.
//
// This switch is maintained by hand: a new opcode that references a table
// must be added here when it is added to the enumeration.
func Classify(op Op) OperandKind {
	switch op {
	case OpLoadConst, OpReserveFast:
		return KindConst

	case OpDeleteAttr, OpDeleteGlobal, OpDeleteName, OpImportFrom,
		OpImportName, OpLoadAttr, OpLoadGlobal, OpLoadLocal,
		OpLoadName, OpStoreAttr, OpStoreGlobal, OpStoreName:
		return KindName

	case OpDeleteFast, OpLoadFast, OpStoreFast:
		return KindVarName

	case OpLoadClosure, OpLoadDeref, OpStoreDeref:
		return KindCell

	// The target of these is always rendered as position-after-decode plus
	// operand, whether or not the release treats the operand as relative.
	case OpJumpForward, OpJumpIfFalse, OpJumpIfTrue, OpSetupLoop,
		OpSetupFinally, OpSetupExcept, OpForLoop, OpForIter:
		return KindJumpOffset

	case OpCompareOp:
		return KindCompare
	}
	return KindNone
}

// IsConstArg reports whether the operand indexes the constant pool.
func IsConstArg(op Op) bool { return Classify(op) == KindConst }

// IsNameArg reports whether the operand indexes the name table.
func IsNameArg(op Op) bool { return Classify(op) == KindName }

// IsVarNameArg reports whether the operand indexes the local variable names.
func IsVarNameArg(op Op) bool { return Classify(op) == KindVarName }

// IsCellArg reports whether the operand indexes the cell/free variables.
func IsCellArg(op Op) bool { return Classify(op) == KindCell }

// IsJumpOffsetArg reports whether the operand is a relative jump offset.
func IsJumpOffsetArg(op Op) bool { return Classify(op) == KindJumpOffset }

// IsCompareArg reports whether the operand is a comparison operator code.
func IsCompareArg(op Op) bool { return Classify(op) == KindCompare }

var compareOps = [...]string{
	"<", "<=", "==", "!=", ">", ">=", "in", "not in", "is", "is not",
	"<EXCEPTION MATCH>", "<BAD>",
}

// NumCompareOps is the size of the comparison operator table.
const NumCompareOps = len(compareOps)

// CompareOp returns the mnemonic for a COMPARE_OP operand.
// ok is false when the operand is outside the table.
func CompareOp(operand int) (name string, ok bool) {
	if operand < 0 || operand >= len(compareOps) {
		return "", false
	}
	return compareOps[operand], true
}
