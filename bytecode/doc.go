// Package bytecode decodes and prints the instruction streams of compiled
// code units.
//
// # Decoding
//
// Decoder walks an instruction buffer one instruction at a time. Two
// encodings exist:
//
//   - Legacy (releases before 3.6): one opcode byte, followed by a 16-bit
//     little-endian operand only when the opcode takes one. EXTENDED_ARG
//     carries the high 16 bits of the next instruction's operand.
//
//   - Wordcode (3.6 on): every instruction is exactly two bytes, opcode and
//     an 8-bit operand. Each EXTENDED_ARG prefix shifts the accumulated
//     operand left by 8 bits.
//
// Raw opcode bytes are mapped to canonical opcodes through package opcode,
// so nothing past the decoder is version-specific.
//
// # Rendering
//
// WriteConst renders constant pool values the way the runtime's own repr
// would, and Disassembler formats one line per instruction:
//
//	<indent><offset, width 7> <name, width 24><operand>
//
// Operands are resolved according to opcode.Classify: constant pool entries
// are rendered, name indexes are looked up, relative jumps show their target
// and comparison codes show their operator.
package bytecode
