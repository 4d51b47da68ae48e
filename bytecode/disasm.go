package bytecode

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/chazu/pydis/object"
	"github.com/chazu/pydis/opcode"
)

var log = commonlog.GetLogger("pydis.bytecode")

// indentUnit is written once per indent level.
const indentUnit = "    "

// Disassembler writes instruction listings of code units to W.
type Disassembler struct {
	W       io.Writer
	Version opcode.Version

	// Recurse lists nested code units from the constant pool after their
	// parent, one indent level deeper.
	Recurse bool

	// Header writes the code unit's metadata and tables before its listing.
	Header bool
}

// Disassemble writes one line per instruction of code to w. It is the
// Disassembler without header or recursion.
func Disassemble(w io.Writer, code *object.Code, ver opcode.Version, indent int) error {
	d := &Disassembler{W: w, Version: ver}
	return d.Disassemble(code, indent)
}

// Disassemble writes the listing of code at the given indent level. It stops
// at the first instruction that cannot be decoded or whose operand does not
// resolve; lines already written stay written.
func (d *Disassembler) Disassemble(code *object.Code, indent int) error {
	if d.Header {
		if err := d.writeHeader(code, indent); err != nil {
			return err
		}
	}

	if err := d.writeListing(code, indent); err != nil {
		return err
	}

	if !d.Recurse {
		return nil
	}
	for _, nested := range code.Nested() {
		if !d.Header {
			if err := d.writeLine(appendIndent(nil, indent), CodeMarker, " ", nested.Name); err != nil {
				return err
			}
		}
		if err := d.Disassemble(nested, indent+1); err != nil {
			return err
		}
	}
	return nil
}

func (d *Disassembler) writeListing(code *object.Code, indent int) error {
	r := NewReader(code.Bytecode())
	dec := Decoder{Version: d.Version}

	var line []byte
	for !r.AtEOF() {
		ins, err := dec.Next(r)
		if err != nil {
			return fmt.Errorf("%s: offset %d: %w", code.Name, ins.Offset, err)
		}

		line = appendIndent(line[:0], indent)
		line, err = d.appendInstruction(line, code, ins)
		if err != nil {
			return fmt.Errorf("%s: offset %d: %s: %w", code.Name, ins.Offset, ins.Op, err)
		}
		line = append(line, '\n')
		if _, err := d.W.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// appendInstruction formats one instruction: its offset, its name and,
// for opcodes that take one, the operand resolved by kind.
func (d *Disassembler) appendInstruction(dst []byte, code *object.Code, ins Instruction) ([]byte, error) {
	dst = fmt.Appendf(dst, "%-7d %-24s", ins.Offset, ins.Op)
	if ins.Op == opcode.OpInvalid {
		log.Debugf("%s: unknown opcode %d at offset %d for version %s", code.Name, ins.Raw, ins.Offset, d.Version)
	}
	return appendOperand(dst, code, ins, d.Version.Major)
}

// FormatOperand returns the operand of ins as the listing shows it, or ""
// for opcodes without one.
func FormatOperand(code *object.Code, ins Instruction, major int) (string, error) {
	b, err := appendOperand(nil, code, ins, major)
	return string(b), err
}

func appendOperand(dst []byte, code *object.Code, ins Instruction, major int) ([]byte, error) {
	if !ins.Op.HasArg() {
		return dst, nil
	}

	switch opcode.Classify(ins.Op) {
	case opcode.KindConst:
		obj, err := code.Const(ins.Operand)
		if err != nil {
			return dst, err
		}
		dst = fmt.Appendf(dst, "%d: ", ins.Operand)
		return appendConst(dst, obj, major, 0), nil

	case opcode.KindName:
		return appendNamed(dst, ins.Operand, code.NameAt)
	case opcode.KindVarName:
		return appendNamed(dst, ins.Operand, code.VarName)
	case opcode.KindCell:
		return appendNamed(dst, ins.Operand, code.CellVar)

	case opcode.KindJumpOffset:
		return fmt.Appendf(dst, "%d (to %d)", ins.Operand, ins.End()+ins.Operand), nil

	case opcode.KindCompare:
		name, ok := opcode.CompareOp(ins.Operand)
		if !ok {
			log.Debugf("%s: unknown comparison %d at offset %d", code.Name, ins.Operand, ins.Offset)
			name = "UNKNOWN"
		}
		return fmt.Appendf(dst, "%d (%s)", ins.Operand, name), nil
	}
	return fmt.Appendf(dst, "%d", ins.Operand), nil
}

func appendNamed(dst []byte, i int, lookup func(int) (string, error)) ([]byte, error) {
	name, err := lookup(i)
	if err != nil {
		return dst, err
	}
	return fmt.Appendf(dst, "%d: %s", i, name), nil
}

func appendIndent(dst []byte, indent int) []byte {
	for range indent {
		dst = append(dst, indentUnit...)
	}
	return dst
}

func (d *Disassembler) writeLine(prefix []byte, parts ...string) error {
	line := prefix
	for _, p := range parts {
		line = append(line, p...)
	}
	line = append(line, '\n')
	_, err := d.W.Write(line)
	return err
}
