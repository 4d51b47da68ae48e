package opcode

var python10 = newTable(map[byte]Op{
	0:   OpStopCode,
	1:   OpPopTop,
	2:   OpRotTwo,
	3:   OpRotThree,
	4:   OpDupTop,
	10:  OpUnaryPositive,
	11:  OpUnaryNegative,
	12:  OpUnaryNot,
	13:  OpUnaryConvert,
	14:  OpUnaryCall,
	15:  OpUnaryInvert,
	20:  OpBinaryMultiply,
	21:  OpBinaryDivide,
	22:  OpBinaryModulo,
	23:  OpBinaryAdd,
	24:  OpBinarySubtract,
	25:  OpBinarySubscr,
	26:  OpBinaryCall,
	30:  OpSlice0,
	31:  OpSlice1,
	32:  OpSlice2,
	33:  OpSlice3,
	40:  OpStoreSlice0,
	41:  OpStoreSlice1,
	42:  OpStoreSlice2,
	43:  OpStoreSlice3,
	50:  OpDeleteSlice0,
	51:  OpDeleteSlice1,
	52:  OpDeleteSlice2,
	53:  OpDeleteSlice3,
	60:  OpStoreSubscr,
	61:  OpDeleteSubscr,
	62:  OpBinaryLshift,
	63:  OpBinaryRshift,
	64:  OpBinaryAnd,
	65:  OpBinaryXor,
	66:  OpBinaryOr,
	70:  OpPrintExpr,
	71:  OpPrintItem,
	72:  OpPrintNewline,
	80:  OpBreakLoop,
	81:  OpRaiseException,
	82:  OpLoadLocals,
	83:  OpReturnValue,
	84:  OpLoadGlobals,
	85:  OpExecStmt,
	86:  OpBuildFunction,
	87:  OpPopBlock,
	88:  OpEndFinally,
	89:  OpBuildClass,
	90:  OpStoreName,
	91:  OpDeleteName,
	92:  OpUnpackTuple,
	93:  OpUnpackList,
	94:  OpUnpackArg,
	95:  OpStoreAttr,
	96:  OpDeleteAttr,
	97:  OpStoreGlobal,
	98:  OpDeleteGlobal,
	99:  OpUnpackVararg,
	100: OpLoadConst,
	101: OpLoadName,
	102: OpBuildTuple,
	103: OpBuildList,
	104: OpBuildMap,
	105: OpLoadAttr,
	106: OpCompareOp,
	107: OpImportName,
	108: OpImportFrom,
	110: OpJumpForward,
	111: OpJumpIfFalse,
	112: OpJumpIfTrue,
	113: OpJumpAbsolute,
	114: OpForLoop,
	115: OpLoadLocal,
	116: OpLoadGlobal,
	117: OpSetFuncArgs,
	120: OpSetupLoop,
	121: OpSetupExcept,
	122: OpSetupFinally,
	123: OpReserveFast,
	124: OpLoadFast,
	125: OpStoreFast,
	126: OpDeleteFast,
	127: OpSetLineno,
})

// 1.1 adds the access statement.
var python11 = python10.patch(map[byte]Op{
	119: OpAccessMode,
})

// 1.3 replaces the call opcodes with CALL_FUNCTION and MAKE_FUNCTION.
var python13 = python11.patch(map[byte]Op{
	131: OpCallFunction,
	132: OpMakeFunction,
}, 14, 26, 86)

// 1.4 adds the power operator, extended slices and raise with arguments.
var python14 = python13.patch(map[byte]Op{
	19:  OpBinaryPower,
	130: OpRaiseVarargs,
	133: OpBuildSlice,
}, 81, 84)

// 1.5 drops the old argument-unpacking and access machinery.
var python15 = python14.patch(nil, 94, 99, 115, 117, 119, 123)

// 1.6 adds the *args/**kwargs call forms.
var python16 = python15.patch(map[byte]Op{
	140: OpCallFunctionVar,
	141: OpCallFunctionKw,
	142: OpCallFunctionVarKw,
})
