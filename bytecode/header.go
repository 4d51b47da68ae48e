package bytecode

import (
	"fmt"

	"github.com/chazu/pydis/object"
)

// writeHeader writes the metadata block of a code unit:
//
//	[Code] <name>
//	    File Name: mod.py
//	    Arg Count: 0
//	    ...
//	    [Names]
//	        'print'
//	    [Constants]
//	        0: None
//	    [Disassembly]
//
// The listing that follows is at the same indent as the "[Code]" line.
func (d *Disassembler) writeHeader(code *object.Code, indent int) error {
	outer := appendIndent(nil, indent)
	inner := appendIndent(nil, indent+1)

	hw := headerWriter{d: d}
	hw.printf(outer, "[Code] %s", code.Name)
	hw.printf(inner, "File Name: %s", code.Filename)
	hw.printf(inner, "Object Name: %s", code.Name)
	hw.printf(inner, "Arg Count: %d", code.ArgCount)
	if d.Version.Major >= 3 {
		hw.printf(inner, "KW Only Arg Count: %d", code.KwOnlyArgCount)
	}
	hw.printf(inner, "Locals: %d", code.NumLocals)
	hw.printf(inner, "Stack Size: %d", code.StackSize)
	if names := object.FlagNames(code.Flags); names != "" {
		hw.printf(inner, "Flags: 0x%08X (%s)", code.Flags, names)
	} else {
		hw.printf(inner, "Flags: 0x%08X", code.Flags)
	}
	hw.printf(inner, "First Line: %d", code.FirstLineNo)

	hw.names(inner, indent+2, "Names", code.Names)
	hw.names(inner, indent+2, "Var Names", code.VarNames)
	hw.names(inner, indent+2, "Free Vars", code.FreeVars)
	hw.names(inner, indent+2, "Cell Vars", code.CellVars)

	if len(code.Consts) > 0 {
		hw.printf(inner, "[Constants]")
		entry := appendIndent(nil, indent+2)
		for i, c := range code.Consts {
			line := fmt.Appendf(entry[:len(entry):len(entry)], "%d: ", i)
			hw.write(appendConst(line, c, d.Version.Major, 0))
		}
	}
	hw.printf(inner, "[Disassembly]")
	return hw.err
}

// headerWriter keeps the first write error and skips every write after it.
type headerWriter struct {
	d   *Disassembler
	err error
}

func (hw *headerWriter) write(line []byte) {
	if hw.err != nil {
		return
	}
	_, hw.err = hw.d.W.Write(append(line, '\n'))
}

func (hw *headerWriter) printf(prefix []byte, format string, args ...any) {
	hw.write(fmt.Appendf(prefix[:len(prefix):len(prefix)], format, args...))
}

func (hw *headerWriter) names(prefix []byte, indent int, title string, names []string) {
	if len(names) == 0 {
		return
	}
	hw.printf(prefix, "[%s]", title)
	entry := appendIndent(nil, indent)
	for _, name := range names {
		hw.write(appendQuoted(entry[:len(entry):len(entry)], []byte(name), true))
	}
}
