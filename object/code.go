package object

import (
	"fmt"
	"strings"
)

// Code is a decoded compiled block: its instruction bytes, the tables its
// instructions index into, and the metadata the runtime stores beside them.
type Code struct {
	ArgCount       int
	KwOnlyArgCount int
	NumLocals      int
	StackSize      int
	Flags          uint32

	Code     []byte
	Consts   []Object
	Names    []string
	VarNames []string
	FreeVars []string
	CellVars []string

	Filename    string
	Name        string
	FirstLineNo int
	LineTable   []byte

	// Legacy marks the code layout of the earliest releases.
	Legacy bool
}

func (c *Code) Type() Type {
	if c.Legacy {
		return TypeCode2
	}
	return TypeCode
}
func (*Code) isObject() {}

// Bytecode returns the raw instruction bytes.
func (c *Code) Bytecode() []byte { return c.Code }

// DisplayName returns the name of the block.
func (c *Code) DisplayName() string { return c.Name }

// Const returns constant i.
func (c *Code) Const(i int) (Object, error) {
	if i < 0 || i >= len(c.Consts) {
		return nil, fmt.Errorf("%w: const %d of %d", ErrIndexOutOfRange, i, len(c.Consts))
	}
	return c.Consts[i], nil
}

// NameAt returns entry i of the name table.
func (c *Code) NameAt(i int) (string, error) {
	if i < 0 || i >= len(c.Names) {
		return "", fmt.Errorf("%w: name %d of %d", ErrIndexOutOfRange, i, len(c.Names))
	}
	return c.Names[i], nil
}

// VarName returns the name of local variable i.
func (c *Code) VarName(i int) (string, error) {
	if i < 0 || i >= len(c.VarNames) {
		return "", fmt.Errorf("%w: varname %d of %d", ErrIndexOutOfRange, i, len(c.VarNames))
	}
	return c.VarNames[i], nil
}

// CellVar returns closure slot i. Cell variables come first, followed by
// free variables.
func (c *Code) CellVar(i int) (string, error) {
	if i >= 0 && i < len(c.CellVars) {
		return c.CellVars[i], nil
	}
	j := i - len(c.CellVars)
	if i < 0 || j >= len(c.FreeVars) {
		return "", fmt.Errorf("%w: cellvar %d of %d", ErrIndexOutOfRange, i, len(c.CellVars)+len(c.FreeVars))
	}
	return c.FreeVars[j], nil
}

// Nested returns the code units in the constant pool, in pool order.
func (c *Code) Nested() []*Code {
	var out []*Code
	for _, obj := range c.Consts {
		if nested, ok := obj.(*Code); ok {
			out = append(out, nested)
		}
	}
	return out
}

// Code flags.
const (
	FlagOptimized             uint32 = 0x1
	FlagNewLocals             uint32 = 0x2
	FlagVarArgs               uint32 = 0x4
	FlagVarKeywords           uint32 = 0x8
	FlagNested                uint32 = 0x10
	FlagGenerator             uint32 = 0x20
	FlagNoFree                uint32 = 0x40
	FlagCoroutine             uint32 = 0x80
	FlagIterableCoroutine     uint32 = 0x100
	FlagAsyncGenerator        uint32 = 0x200
	FlagGeneratorAllowed      uint32 = 0x1000
	FlagFutureDivision        uint32 = 0x2000
	FlagFutureAbsoluteImport  uint32 = 0x4000
	FlagFutureWithStatement   uint32 = 0x8000
	FlagFuturePrintFunction   uint32 = 0x10000
	FlagFutureUnicodeLiterals uint32 = 0x20000
	FlagFutureBarryAsBDFL     uint32 = 0x40000
	FlagFutureGeneratorStop   uint32 = 0x80000
)

var flagNames = []struct {
	bit  uint32
	name string
}{
	{FlagOptimized, "CO_OPTIMIZED"},
	{FlagNewLocals, "CO_NEWLOCALS"},
	{FlagVarArgs, "CO_VARARGS"},
	{FlagVarKeywords, "CO_VARKEYWORDS"},
	{FlagNested, "CO_NESTED"},
	{FlagGenerator, "CO_GENERATOR"},
	{FlagNoFree, "CO_NOFREE"},
	{FlagCoroutine, "CO_COROUTINE"},
	{FlagIterableCoroutine, "CO_ITERABLE_COROUTINE"},
	{FlagAsyncGenerator, "CO_ASYNC_GENERATOR"},
	{FlagGeneratorAllowed, "CO_GENERATOR_ALLOWED"},
	{FlagFutureDivision, "CO_FUTURE_DIVISION"},
	{FlagFutureAbsoluteImport, "CO_FUTURE_ABSOLUTE_IMPORT"},
	{FlagFutureWithStatement, "CO_FUTURE_WITH_STATEMENT"},
	{FlagFuturePrintFunction, "CO_FUTURE_PRINT_FUNCTION"},
	{FlagFutureUnicodeLiterals, "CO_FUTURE_UNICODE_LITERALS"},
	{FlagFutureBarryAsBDFL, "CO_FUTURE_BARRY_AS_BDFL"},
	{FlagFutureGeneratorStop, "CO_FUTURE_GENERATOR_STOP"},
}

// FlagNames renders the known bits of flags as "CO_A | CO_B". Unknown bits
// are appended in hex.
func FlagNames(flags uint32) string {
	var parts []string
	rest := flags
	for _, f := range flagNames {
		if flags&f.bit != 0 {
			parts = append(parts, f.name)
			rest &^= f.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", rest))
	}
	return strings.Join(parts, " | ")
}
