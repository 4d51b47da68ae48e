package opcode

// 2.0 adds augmented assignment, print >>, import * and EXTENDED_ARG, and
// folds tuple/list unpacking into UNPACK_SEQUENCE.
var python20 = python16.patch(map[byte]Op{
	5:   OpRotFour,
	55:  OpInplaceAdd,
	56:  OpInplaceSubtract,
	57:  OpInplaceMultiply,
	58:  OpInplaceDivide,
	59:  OpInplaceModulo,
	67:  OpInplacePower,
	73:  OpPrintItemTo,
	74:  OpPrintNewlineTo,
	75:  OpInplaceLshift,
	76:  OpInplaceRshift,
	77:  OpInplaceAnd,
	78:  OpInplaceXor,
	79:  OpInplaceOr,
	84:  OpImportStar,
	92:  OpUnpackSequence,
	99:  OpDupTopx,
	143: OpExtendedArg,
}, 93)

// 2.1 adds nested scopes.
var python21 = python20.patch(map[byte]Op{
	119: OpContinueLoop,
	134: OpMakeClosure,
	135: OpLoadClosure,
	136: OpLoadDeref,
	137: OpStoreDeref,
})

// 2.2 adds iterators, generators and the division split.
var python22 = python21.patch(map[byte]Op{
	26: OpBinaryFloorDivide,
	27: OpBinaryTrueDivide,
	28: OpInplaceFloorDivide,
	29: OpInplaceTrueDivide,
	68: OpGetIter,
	86: OpYieldValue,
	93: OpForIter,
})

// 2.3 removes FOR_LOOP and SET_LINENO.
var python23 = python22.patch(nil, 114, 127)

var python24 = python23.patch(map[byte]Op{
	9:  OpNop,
	18: OpListAppend,
})

var python25 = python24.patch(map[byte]Op{
	81: OpWithCleanup,
})

var python26 = python25.patch(map[byte]Op{
	54: OpStoreMap,
})

// 2.7 inserts BUILD_SET at 104, shifting the next five opcodes up by one,
// and replaces the conditional jumps.
var python27 = python26.patch(map[byte]Op{
	94:  OpListAppendA,
	104: OpBuildSet,
	105: OpBuildMap,
	106: OpLoadAttr,
	107: OpCompareOp,
	108: OpImportName,
	109: OpImportFrom,
	111: OpJumpIfFalseOrPop,
	112: OpJumpIfTrueOrPop,
	114: OpPopJumpIfFalse,
	115: OpPopJumpIfTrue,
	143: OpSetupWith,
	145: OpExtendedArg,
	146: OpSetAddA,
	147: OpMapAdd,
}, 18)
