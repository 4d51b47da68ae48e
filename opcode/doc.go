// Package opcode defines the canonical instruction set shared by every
// supported runtime release, and the per-release maps that translate raw
// opcode bytes into it.
//
// # Canonical opcodes
//
// Runtime releases renumber their instructions from one version to the next:
// the same byte means different things in 2.6 and 2.7. Op is a single closed
// enumeration covering every mnemonic any supported release has used. Ops
// below OpHaveArg take no operand; the rest carry one.
//
// # Version maps
//
// Each of the 21 supported releases (1.0-1.6, 2.0-2.7, 3.0-3.6) has its own
// table from raw byte to Op. Lookups never fail: an unsupported release or a
// byte the release does not use yields OpInvalid, and callers render it
// opaquely.
//
// # Operand kinds
//
// Classify tells a disassembler how to read an operand: constant pool index,
// name index, local variable index, cell variable index, relative jump, or
// comparison code. The classification is by canonical opcode, so it holds
// across releases.
package opcode
