package opcode

var python30 = newTable(map[byte]Op{
	0:   OpStopCode,
	1:   OpPopTop,
	2:   OpRotTwo,
	3:   OpRotThree,
	4:   OpDupTop,
	5:   OpRotFour,
	9:   OpNop,
	10:  OpUnaryPositive,
	11:  OpUnaryNegative,
	12:  OpUnaryNot,
	15:  OpUnaryInvert,
	17:  OpSetAdd,
	18:  OpListAppend,
	19:  OpBinaryPower,
	20:  OpBinaryMultiply,
	22:  OpBinaryModulo,
	23:  OpBinaryAdd,
	24:  OpBinarySubtract,
	25:  OpBinarySubscr,
	26:  OpBinaryFloorDivide,
	27:  OpBinaryTrueDivide,
	28:  OpInplaceFloorDivide,
	29:  OpInplaceTrueDivide,
	54:  OpStoreMap,
	55:  OpInplaceAdd,
	56:  OpInplaceSubtract,
	57:  OpInplaceMultiply,
	59:  OpInplaceModulo,
	60:  OpStoreSubscr,
	61:  OpDeleteSubscr,
	62:  OpBinaryLshift,
	63:  OpBinaryRshift,
	64:  OpBinaryAnd,
	65:  OpBinaryXor,
	66:  OpBinaryOr,
	67:  OpInplacePower,
	68:  OpGetIter,
	69:  OpStoreLocals,
	70:  OpPrintExpr,
	71:  OpLoadBuildClass,
	75:  OpInplaceLshift,
	76:  OpInplaceRshift,
	77:  OpInplaceAnd,
	78:  OpInplaceXor,
	79:  OpInplaceOr,
	80:  OpBreakLoop,
	81:  OpWithCleanup,
	83:  OpReturnValue,
	84:  OpImportStar,
	86:  OpYieldValue,
	87:  OpPopBlock,
	88:  OpEndFinally,
	89:  OpPopExcept,
	90:  OpStoreName,
	91:  OpDeleteName,
	92:  OpUnpackSequence,
	93:  OpForIter,
	94:  OpUnpackEx,
	95:  OpStoreAttr,
	96:  OpDeleteAttr,
	97:  OpStoreGlobal,
	98:  OpDeleteGlobal,
	99:  OpDupTopx,
	100: OpLoadConst,
	101: OpLoadName,
	102: OpBuildTuple,
	103: OpBuildList,
	104: OpBuildSet,
	105: OpBuildMap,
	106: OpLoadAttr,
	107: OpCompareOp,
	108: OpImportName,
	109: OpImportFrom,
	110: OpJumpForward,
	111: OpJumpIfFalse,
	112: OpJumpIfTrue,
	113: OpJumpAbsolute,
	116: OpLoadGlobal,
	119: OpContinueLoop,
	120: OpSetupLoop,
	121: OpSetupExcept,
	122: OpSetupFinally,
	124: OpLoadFast,
	125: OpStoreFast,
	126: OpDeleteFast,
	130: OpRaiseVarargs,
	131: OpCallFunction,
	132: OpMakeFunction,
	133: OpBuildSlice,
	134: OpMakeClosure,
	135: OpLoadClosure,
	136: OpLoadDeref,
	137: OpStoreDeref,
	140: OpCallFunctionVar,
	141: OpCallFunctionKw,
	142: OpCallFunctionVarKw,
	143: OpExtendedArg,
})

// 3.1 takes the 2.7 conditional jumps and comprehension opcodes.
var python31 = python30.patch(map[byte]Op{
	111: OpJumpIfFalseOrPop,
	112: OpJumpIfTrueOrPop,
	114: OpPopJumpIfFalse,
	115: OpPopJumpIfTrue,
	145: OpListAppendA,
	146: OpSetAddA,
	147: OpMapAdd,
}, 17, 18)

var python32 = python31.patch(map[byte]Op{
	5:   OpDupTopTwo,
	138: OpDeleteDeref,
	143: OpSetupWith,
	144: OpExtendedArg,
}, 99)

var python33 = python32.patch(map[byte]Op{
	72: OpYieldFrom,
}, 0)

var python34 = python33.patch(map[byte]Op{
	148: OpLoadClassderef,
}, 69)

// 3.5 adds the matrix operator, async/await and the unpacking
// generalizations, and splits WITH_CLEANUP.
var python35 = python34.patch(map[byte]Op{
	16:  OpBinaryMatrixMultiply,
	17:  OpInplaceMatrixMultiply,
	50:  OpGetAiter,
	51:  OpGetAnext,
	52:  OpBeforeAsyncWith,
	69:  OpGetYieldFromIter,
	73:  OpGetAwaitable,
	81:  OpWithCleanupStart,
	82:  OpWithCleanupFinish,
	149: OpBuildListUnpack,
	150: OpBuildMapUnpack,
	151: OpBuildMapUnpackWithCall,
	152: OpBuildTupleUnpack,
	153: OpBuildSetUnpack,
	154: OpSetupAsyncWith,
}, 54)

// 3.6 is the first wordcode release.
var python36 = python35.patch(map[byte]Op{
	85:  OpSetupAnnotations,
	127: OpStoreAnnotation,
	142: OpCallFunctionEx,
	155: OpFormatValue,
	156: OpBuildConstKeyMap,
	157: OpBuildString,
	158: OpBuildTupleUnpackWithCall,
}, 134, 140)
