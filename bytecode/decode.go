package bytecode

import (
	"github.com/chazu/pydis/opcode"
)

// Instruction is one decoded instruction. An EXTENDED_ARG prefix is folded
// into the instruction it extends, so Offset is where the prefix began and
// Size covers both.
type Instruction struct {
	Op      opcode.Op
	Raw     byte // raw opcode byte of Op in its version
	Operand int
	Offset  int
	Size    int
}

// End returns the offset just past the instruction. Relative jumps are
// resolved against it.
func (ins Instruction) End() int { return ins.Offset + ins.Size }

// Decoder reads instructions of one runtime version.
type Decoder struct {
	Version opcode.Version
}

// Next decodes the instruction at the reader's position and advances past
// it. Unknown opcodes decode to opcode.OpInvalid and still consume the bytes
// their encoding implies, so decoding can continue after them.
func (d Decoder) Next(r *Reader) (Instruction, error) {
	ins := Instruction{Offset: r.Pos()}

	raw, err := r.Byte()
	if err != nil {
		return ins, err
	}
	ins.Raw = raw
	ins.Op = d.Version.Opcode(raw)

	if d.Version.Wordcode() {
		err = d.nextWord(r, &ins)
	} else {
		err = d.nextLegacy(r, &ins)
	}
	ins.Size = r.Pos() - ins.Offset
	return ins, err
}

// nextWord reads the operand byte of a wordcode instruction. Every
// EXTENDED_ARG contributes eight more high bits. The operand is an unsigned
// 32-bit value; bits shifted past it by a long chain are dropped.
func (d Decoder) nextWord(r *Reader, ins *Instruction) error {
	arg, err := r.Byte()
	if err != nil {
		return err
	}
	ins.Operand = int(arg)

	for ins.Op == opcode.OpExtendedArg {
		raw, err := r.Byte()
		if err != nil {
			return err
		}
		arg, err := r.Byte()
		if err != nil {
			return err
		}
		ins.Raw = raw
		ins.Op = d.Version.Opcode(raw)
		ins.Operand = int(uint32(ins.Operand)<<8 | uint32(arg))
	}
	return nil
}

// nextLegacy reads the optional 16-bit operand of a legacy instruction. An
// EXTENDED_ARG supplies the high 16 bits and is followed directly by the
// opcode it extends; it does not chain.
func (d Decoder) nextLegacy(r *Reader, ins *Instruction) error {
	if ins.Op == opcode.OpExtendedArg {
		hi, err := r.Uint16()
		if err != nil {
			return err
		}
		raw, err := r.Byte()
		if err != nil {
			return err
		}
		ins.Raw = raw
		ins.Op = d.Version.Opcode(raw)
		ins.Operand = int(hi) << 16
	}

	if ins.Op.HasArg() {
		lo, err := r.Uint16()
		if err != nil {
			return err
		}
		ins.Operand |= int(lo)
	}
	return nil
}

// Decode decodes a whole buffer. On error it returns the instructions
// decoded before the failing one.
func Decode(buf []byte, ver opcode.Version) ([]Instruction, error) {
	r := NewReader(buf)
	dec := Decoder{Version: ver}

	var out []Instruction
	for !r.AtEOF() {
		ins, err := dec.Next(r)
		if err != nil {
			return out, err
		}
		out = append(out, ins)
	}
	return out, nil
}
