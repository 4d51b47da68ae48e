package opcode

import "strconv"

// Op is a canonical, version-independent instruction id.
// Raw opcode bytes from a specific runtime release are translated into Op
// values by the per-version maps; everything downstream of the decoder works
// on Op only.
//
// Ops below OpHaveArg take no operand. Ops at or above it carry one.
type Op int

// OpInvalid marks a raw byte that has no meaning in the active version.
const OpInvalid Op = -1

const (
	// ========================================================================
	// Operand-less instructions
	// ========================================================================

	OpStopCode Op = iota // End of code

	OpPopTop                // Discard top of stack
	OpRotTwo                // Swap top two
	OpRotThree              // Rotate top three
	OpDupTop                // Duplicate top
	OpDupTopTwo             // Duplicate top two
	OpRotFour               // Rotate top four
	OpNop                   // No operation
	OpUnaryPositive         // +x
	OpUnaryNegative         // -x
	OpUnaryNot              // not x
	OpUnaryConvert          // `x` (2.x and earlier)
	OpUnaryCall             // x() (early 1.x)
	OpUnaryInvert           // ~x
	OpBinaryPower           // x ** y
	OpBinaryMultiply        // x * y
	OpBinaryMatrixMultiply  // x @ y
	OpBinaryDivide          // x / y, classic division
	OpBinaryModulo          // x % y
	OpBinaryAdd             // x + y
	OpBinarySubtract        // x - y
	OpBinarySubscr          // x[y]
	OpBinaryCall            // x(*y) (early 1.x)
	OpBinaryFloorDivide     // x // y
	OpBinaryTrueDivide      // x / y, true division
	OpSlice0                // x[:]
	OpSlice1                // x[a:]
	OpSlice2                // x[:b]
	OpSlice3                // x[a:b]
	OpStoreSlice0           // x[:] = v
	OpStoreSlice1           // x[a:] = v
	OpStoreSlice2           // x[:b] = v
	OpStoreSlice3           // x[a:b] = v
	OpDeleteSlice0          // del x[:]
	OpDeleteSlice1          // del x[a:]
	OpDeleteSlice2          // del x[:b]
	OpDeleteSlice3          // del x[a:b]
	OpStoreSubscr           // x[y] = v
	OpDeleteSubscr          // del x[y]
	OpBinaryLshift          // x << y
	OpBinaryRshift          // x >> y
	OpBinaryAnd             // x & y
	OpBinaryXor             // x ^ y
	OpBinaryOr              // x | y
	OpInplaceAdd            // x += y
	OpInplaceSubtract       // x -= y
	OpInplaceMultiply       // x *= y
	OpInplaceMatrixMultiply // x @= y
	OpInplaceDivide         // x /= y, classic division
	OpInplaceModulo         // x %= y
	OpInplacePower          // x **= y
	OpInplaceFloorDivide    // x //= y
	OpInplaceTrueDivide     // x /= y, true division
	OpInplaceLshift         // x <<= y
	OpInplaceRshift         // x >>= y
	OpInplaceAnd            // x &= y
	OpInplaceXor            // x ^= y
	OpInplaceOr             // x |= y
	OpStoreMap              // Store a key/value pair into a map
	OpGetIter               // iter(x)
	OpGetYieldFromIter      // Iterator for yield from
	OpGetAiter              // Async iterator
	OpGetAnext              // Awaitable for the next async item
	OpGetAwaitable          // Awaitable for await
	OpBeforeAsyncWith       // Enter an async with block
	OpPrintExpr             // Print an interactive expression
	OpPrintItem             // print x,
	OpPrintNewline          // print
	OpPrintItemTo           // print >>f, x,
	OpPrintNewlineTo        // print >>f
	OpBreakLoop             // break
	OpRaiseException        // raise (1.x)
	OpWithCleanup           // Exit a with block (2.x)
	OpWithCleanupStart      // Exit a with block, first half
	OpWithCleanupFinish     // Exit a with block, second half
	OpLoadLocals            // Push the locals dict
	OpStoreLocals           // Replace the locals dict (1.x)
	OpReturnValue           // return x
	OpLoadGlobals           // Push the globals dict (1.x)
	OpImportStar            // from m import *
	OpExecStmt              // exec statement
	OpBuildFunction         // Make a function (early 1.x)
	OpYieldValue            // yield x
	OpYieldFrom             // yield from x
	OpPopBlock              // Pop a block off the block stack
	OpEndFinally            // End of a finally clause
	OpPopExcept             // Pop an except handler block
	OpBuildClass            // Make a class (2.x and earlier)
	OpLoadBuildClass        // Push __build_class__
	OpListAppend            // Append to a list, no operand
	OpSetAdd                // Add to a set, no operand
	OpSetupAnnotations      // Create __annotations__

	// ========================================================================
	// Instructions with an operand
	// ========================================================================

	OpStoreName                // name = x: Names
	OpDeleteName               // del name: Names
	OpUnpackTuple              // Unpack a tuple of n items (1.x)
	OpUnpackList               // Unpack a list of n items (1.x)
	OpUnpackArg                // Unpack n positional args (1.x)
	OpUnpackVararg             // Unpack args with *rest (1.x)
	OpUnpackSequence           // Unpack a sequence of n items
	OpUnpackEx                 // Unpack with a starred target
	OpStoreAttr                // x.name = v: Names
	OpDeleteAttr               // del x.name: Names
	OpStoreGlobal              // global = x: Names
	OpDeleteGlobal             // del global: Names
	OpDupTopx                  // Duplicate top n items
	OpLoadConst                // Push constant: Consts
	OpLoadName                 // Push name: Names
	OpBuildTuple               // Tuple of n items
	OpBuildList                // List of n items
	OpBuildSet                 // Set of n items
	OpBuildMap                 // Map of n pairs
	OpLoadAttr                 // x.name: Names
	OpCompareOp                // Comparison by table index
	OpImportName               // import name: Names
	OpImportFrom               // from m import name: Names
	OpJumpForward              // Relative jump
	OpJumpIfFalse              // Relative jump if false, no pop
	OpJumpIfTrue               // Relative jump if true, no pop
	OpJumpIfFalseOrPop         // Jump if false, else pop
	OpJumpIfTrueOrPop          // Jump if true, else pop
	OpJumpAbsolute             // Absolute jump
	OpPopJumpIfFalse           // Pop, jump if false
	OpPopJumpIfTrue            // Pop, jump if true
	OpForLoop                  // Counted for loop (2.2 and earlier)
	OpForIter                  // Next item or relative jump
	OpLoadLocal                // Push local by name (1.x)
	OpLoadGlobal               // Push global: Names
	OpSetFuncArgs              // Set function arg count (1.x)
	OpAccessMode               // access statement (1.x)
	OpContinueLoop             // continue inside try
	OpSetupLoop                // Push a loop block
	OpSetupExcept              // Push a try/except block
	OpSetupFinally             // Push a try/finally block
	OpSetupWith                // Enter a with block
	OpSetupAsyncWith           // Enter an async with block
	OpReserveFast              // Reserve fast locals (1.x)
	OpLoadFast                 // Push local: VarNames
	OpStoreFast                // local = x: VarNames
	OpDeleteFast               // del local: VarNames
	OpSetLineno                // Line number marker (1.x)
	OpStoreAnnotation          // Store a variable annotation: Names
	OpRaiseVarargs             // raise with n args
	OpCallFunction             // Call with n args
	OpMakeFunction             // Make a function
	OpBuildSlice               // slice() of n items
	OpMakeClosure              // Make a closure
	OpLoadClosure              // Push a cell: cell/free vars
	OpLoadDeref                // Push cell contents: cell/free vars
	OpStoreDeref               // Store into a cell: cell/free vars
	OpDeleteDeref              // Empty a cell: cell/free vars
	OpLoadClassderef           // Push a class cell: cell/free vars
	OpCallFunctionVar          // Call with *args
	OpCallFunctionKw           // Call with keywords
	OpCallFunctionVarKw        // Call with *args and **kwargs
	OpCallFunctionEx           // Call with an args tuple
	OpExtendedArg              // High bits of the next operand
	OpListAppendA              // Append to a list in a comprehension
	OpSetAddA                  // Add to a set in a comprehension
	OpMapAdd                   // Add to a dict in a comprehension
	OpBuildListUnpack          // [*a, *b]
	OpBuildMapUnpack           // {**a, **b}
	OpBuildMapUnpackWithCall   // **kwargs merge for a call
	OpBuildTupleUnpack         // (*a, *b)
	OpBuildSetUnpack           // {*a, *b}
	OpBuildTupleUnpackWithCall // *args merge for a call
	OpFormatValue              // f-string field
	OpBuildConstKeyMap         // Dict from a constant key tuple
	OpBuildString              // Concatenate n strings

	// NumOpcodes is the number of canonical opcodes. It is not an opcode.
	NumOpcodes
)

// OpHaveArg is the first canonical opcode that carries an operand.
const OpHaveArg = OpStoreName

// opcodeNames holds the display name of every canonical opcode.
// LIST_APPEND and SET_ADD appear twice: once as the operand-less form used by
// older releases and once as the form that takes a stack depth.
var opcodeNames = [...]string{
	OpStopCode:              "STOP_CODE",
	OpPopTop:                "POP_TOP",
	OpRotTwo:                "ROT_TWO",
	OpRotThree:              "ROT_THREE",
	OpDupTop:                "DUP_TOP",
	OpDupTopTwo:             "DUP_TOP_TWO",
	OpRotFour:               "ROT_FOUR",
	OpNop:                   "NOP",
	OpUnaryPositive:         "UNARY_POSITIVE",
	OpUnaryNegative:         "UNARY_NEGATIVE",
	OpUnaryNot:              "UNARY_NOT",
	OpUnaryConvert:          "UNARY_CONVERT",
	OpUnaryCall:             "UNARY_CALL",
	OpUnaryInvert:           "UNARY_INVERT",
	OpBinaryPower:           "BINARY_POWER",
	OpBinaryMultiply:        "BINARY_MULTIPLY",
	OpBinaryMatrixMultiply:  "BINARY_MATRIX_MULTIPLY",
	OpBinaryDivide:          "BINARY_DIVIDE",
	OpBinaryModulo:          "BINARY_MODULO",
	OpBinaryAdd:             "BINARY_ADD",
	OpBinarySubtract:        "BINARY_SUBTRACT",
	OpBinarySubscr:          "BINARY_SUBSCR",
	OpBinaryCall:            "BINARY_CALL",
	OpBinaryFloorDivide:     "BINARY_FLOOR_DIVIDE",
	OpBinaryTrueDivide:      "BINARY_TRUE_DIVIDE",
	OpSlice0:                "SLICE_0",
	OpSlice1:                "SLICE_1",
	OpSlice2:                "SLICE_2",
	OpSlice3:                "SLICE_3",
	OpStoreSlice0:           "STORE_SLICE_0",
	OpStoreSlice1:           "STORE_SLICE_1",
	OpStoreSlice2:           "STORE_SLICE_2",
	OpStoreSlice3:           "STORE_SLICE_3",
	OpDeleteSlice0:          "DELETE_SLICE_0",
	OpDeleteSlice1:          "DELETE_SLICE_1",
	OpDeleteSlice2:          "DELETE_SLICE_2",
	OpDeleteSlice3:          "DELETE_SLICE_3",
	OpStoreSubscr:           "STORE_SUBSCR",
	OpDeleteSubscr:          "DELETE_SUBSCR",
	OpBinaryLshift:          "BINARY_LSHIFT",
	OpBinaryRshift:          "BINARY_RSHIFT",
	OpBinaryAnd:             "BINARY_AND",
	OpBinaryXor:             "BINARY_XOR",
	OpBinaryOr:              "BINARY_OR",
	OpInplaceAdd:            "INPLACE_ADD",
	OpInplaceSubtract:       "INPLACE_SUBTRACT",
	OpInplaceMultiply:       "INPLACE_MULTIPLY",
	OpInplaceMatrixMultiply: "INPLACE_MATRIX_MULTIPLY",
	OpInplaceDivide:         "INPLACE_DIVIDE",
	OpInplaceModulo:         "INPLACE_MODULO",
	OpInplacePower:          "INPLACE_POWER",
	OpInplaceFloorDivide:    "INPLACE_FLOOR_DIVIDE",
	OpInplaceTrueDivide:     "INPLACE_TRUE_DIVIDE",
	OpInplaceLshift:         "INPLACE_LSHIFT",
	OpInplaceRshift:         "INPLACE_RSHIFT",
	OpInplaceAnd:            "INPLACE_AND",
	OpInplaceXor:            "INPLACE_XOR",
	OpInplaceOr:             "INPLACE_OR",
	OpStoreMap:              "STORE_MAP",
	OpGetIter:               "GET_ITER",
	OpGetYieldFromIter:      "GET_YIELD_FROM_ITER",
	OpGetAiter:              "GET_AITER",
	OpGetAnext:              "GET_ANEXT",
	OpGetAwaitable:          "GET_AWAITABLE",
	OpBeforeAsyncWith:       "BEFORE_ASYNC_WITH",
	OpPrintExpr:             "PRINT_EXPR",
	OpPrintItem:             "PRINT_ITEM",
	OpPrintNewline:          "PRINT_NEWLINE",
	OpPrintItemTo:           "PRINT_ITEM_TO",
	OpPrintNewlineTo:        "PRINT_NEWLINE_TO",
	OpBreakLoop:             "BREAK_LOOP",
	OpRaiseException:        "RAISE_EXCEPTION",
	OpWithCleanup:           "WITH_CLEANUP",
	OpWithCleanupStart:      "WITH_CLEANUP_START",
	OpWithCleanupFinish:     "WITH_CLEANUP_FINISH",
	OpLoadLocals:            "LOAD_LOCALS",
	OpStoreLocals:           "STORE_LOCALS",
	OpReturnValue:           "RETURN_VALUE",
	OpLoadGlobals:           "LOAD_GLOBALS",
	OpImportStar:            "IMPORT_STAR",
	OpExecStmt:              "EXEC_STMT",
	OpBuildFunction:         "BUILD_FUNCTION",
	OpYieldValue:            "YIELD_VALUE",
	OpYieldFrom:             "YIELD_FROM",
	OpPopBlock:              "POP_BLOCK",
	OpEndFinally:            "END_FINALLY",
	OpPopExcept:             "POP_EXCEPT",
	OpBuildClass:            "BUILD_CLASS",
	OpLoadBuildClass:        "LOAD_BUILD_CLASS",
	OpListAppend:            "LIST_APPEND",
	OpSetAdd:                "SET_ADD",
	OpSetupAnnotations:      "SETUP_ANNOTATIONS",

	OpStoreName:                "STORE_NAME",
	OpDeleteName:               "DELETE_NAME",
	OpUnpackTuple:              "UNPACK_TUPLE",
	OpUnpackList:               "UNPACK_LIST",
	OpUnpackArg:                "UNPACK_ARG",
	OpUnpackVararg:             "UNPACK_VARARG",
	OpUnpackSequence:           "UNPACK_SEQUENCE",
	OpUnpackEx:                 "UNPACK_EX",
	OpStoreAttr:                "STORE_ATTR",
	OpDeleteAttr:               "DELETE_ATTR",
	OpStoreGlobal:              "STORE_GLOBAL",
	OpDeleteGlobal:             "DELETE_GLOBAL",
	OpDupTopx:                  "DUP_TOPX",
	OpLoadConst:                "LOAD_CONST",
	OpLoadName:                 "LOAD_NAME",
	OpBuildTuple:               "BUILD_TUPLE",
	OpBuildList:                "BUILD_LIST",
	OpBuildSet:                 "BUILD_SET",
	OpBuildMap:                 "BUILD_MAP",
	OpLoadAttr:                 "LOAD_ATTR",
	OpCompareOp:                "COMPARE_OP",
	OpImportName:               "IMPORT_NAME",
	OpImportFrom:               "IMPORT_FROM",
	OpJumpForward:              "JUMP_FORWARD",
	OpJumpIfFalse:              "JUMP_IF_FALSE",
	OpJumpIfTrue:               "JUMP_IF_TRUE",
	OpJumpIfFalseOrPop:         "JUMP_IF_FALSE_OR_POP",
	OpJumpIfTrueOrPop:          "JUMP_IF_TRUE_OR_POP",
	OpJumpAbsolute:             "JUMP_ABSOLUTE",
	OpPopJumpIfFalse:           "POP_JUMP_IF_FALSE",
	OpPopJumpIfTrue:            "POP_JUMP_IF_TRUE",
	OpForLoop:                  "FOR_LOOP",
	OpForIter:                  "FOR_ITER",
	OpLoadLocal:                "LOAD_LOCAL",
	OpLoadGlobal:               "LOAD_GLOBAL",
	OpSetFuncArgs:              "SET_FUNC_ARGS",
	OpAccessMode:               "ACCESS_MODE",
	OpContinueLoop:             "CONTINUE_LOOP",
	OpSetupLoop:                "SETUP_LOOP",
	OpSetupExcept:              "SETUP_EXCEPT",
	OpSetupFinally:             "SETUP_FINALLY",
	OpSetupWith:                "SETUP_WITH",
	OpSetupAsyncWith:           "SETUP_ASYNC_WITH",
	OpReserveFast:              "RESERVE_FAST",
	OpLoadFast:                 "LOAD_FAST",
	OpStoreFast:                "STORE_FAST",
	OpDeleteFast:               "DELETE_FAST",
	OpSetLineno:                "SET_LINENO",
	OpStoreAnnotation:          "STORE_ANNOTATION",
	OpRaiseVarargs:             "RAISE_VARARGS",
	OpCallFunction:             "CALL_FUNCTION",
	OpMakeFunction:             "MAKE_FUNCTION",
	OpBuildSlice:               "BUILD_SLICE",
	OpMakeClosure:              "MAKE_CLOSURE",
	OpLoadClosure:              "LOAD_CLOSURE",
	OpLoadDeref:                "LOAD_DEREF",
	OpStoreDeref:               "STORE_DEREF",
	OpDeleteDeref:              "DELETE_DEREF",
	OpLoadClassderef:           "LOAD_CLASSDEREF",
	OpCallFunctionVar:          "CALL_FUNCTION_VAR",
	OpCallFunctionKw:           "CALL_FUNCTION_KW",
	OpCallFunctionVarKw:        "CALL_FUNCTION_VAR_KW",
	OpCallFunctionEx:           "CALL_FUNCTION_EX",
	OpExtendedArg:              "EXTENDED_ARG",
	OpListAppendA:              "LIST_APPEND",
	OpSetAddA:                  "SET_ADD",
	OpMapAdd:                   "MAP_ADD",
	OpBuildListUnpack:          "BUILD_LIST_UNPACK",
	OpBuildMapUnpack:           "BUILD_MAP_UNPACK",
	OpBuildMapUnpackWithCall:   "BUILD_MAP_UNPACK_WITH_CALL",
	OpBuildTupleUnpack:         "BUILD_TUPLE_UNPACK",
	OpBuildSetUnpack:           "BUILD_SET_UNPACK",
	OpBuildTupleUnpackWithCall: "BUILD_TUPLE_UNPACK_WITH_CALL",
	OpFormatValue:              "FORMAT_VALUE",
	OpBuildConstKeyMap:         "BUILD_CONST_KEY_MAP",
	OpBuildString:              "BUILD_STRING",
}

// The name table must cover the enumeration exactly. A length mismatch in
// either direction makes the constant index below out of range and stops the
// build.
func _() {
	var x [1]struct{}
	_ = x[len(opcodeNames)-int(NumOpcodes)]
}

// InvalidName is returned by Name for negative opcodes.
const InvalidName = "<INVALID>"

// Name returns the display name of a canonical opcode.
// Negative values yield InvalidName; values past the enumeration yield a
// synthesized "<N>" so a listing never fails on an unexpected id.
func Name(op Op) string {
	if op < 0 {
		return InvalidName
	}
	if op < NumOpcodes {
		return opcodeNames[op]
	}
	return "<" + strconv.Itoa(int(op)) + ">"
}

// String returns the display name of the opcode.
func (op Op) String() string {
	return Name(op)
}

// HasArg reports whether the opcode carries an operand.
func (op Op) HasArg() bool {
	return op >= OpHaveArg
}

// Valid reports whether op is inside the canonical enumeration.
func (op Op) Valid() bool {
	return op >= 0 && op < NumOpcodes
}

// All returns every canonical opcode in enumeration order.
func All() []Op {
	ops := make([]Op, 0, NumOpcodes)
	for op := Op(0); op < NumOpcodes; op++ {
		ops = append(ops, op)
	}
	return ops
}

