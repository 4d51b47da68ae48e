package bytecode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/chazu/pydis/object"
)

// MaxConstDepth is how deep WriteConst descends into nested collections.
// Anything deeper renders as DepthMarker.
const MaxConstDepth = 64

// Markers for values that have no literal form.
const (
	NullMarker  = "<NULL>"
	DepthMarker = "<...>"
	CodeMarker  = "<CODE>"
)

// WriteConst renders a constant pool value to w. major is the major version
// of the runtime the value came from; it picks the string prefixes.
func WriteConst(w io.Writer, obj object.Object, major int) error {
	_, err := w.Write(AppendConst(nil, obj, major))
	return err
}

// RenderConst returns the rendered form of a constant pool value.
func RenderConst(obj object.Object, major int) string {
	return string(AppendConst(nil, obj, major))
}

// AppendConst appends the rendered form of a constant pool value to dst.
func AppendConst(dst []byte, obj object.Object, major int) []byte {
	return appendConst(dst, obj, major, 0)
}

func appendConst(dst []byte, obj object.Object, major, depth int) []byte {
	if obj == nil {
		return append(dst, NullMarker...)
	}
	if depth > MaxConstDepth {
		return append(dst, DepthMarker...)
	}

	switch o := obj.(type) {
	case *object.Singleton:
		return append(dst, singletonText(o)...)
	case *object.Int:
		return strconv.AppendInt(dst, int64(o.Value), 10)
	case *object.Long:
		return append(dst, o.Repr...)
	case *object.Float:
		return append(dst, o.Repr...)
	case *object.BinaryFloat:
		return appendFloat(dst, o.Value)
	case *object.Complex:
		return fmt.Appendf(dst, "(%s+%sj)", o.Real, o.Imag)
	case *object.BinaryComplex:
		dst = append(dst, '(')
		dst = appendFloat(dst, o.Real)
		dst = append(dst, '+')
		dst = appendFloat(dst, o.Imag)
		return append(dst, "j)"...)
	case *object.String:
		return appendString(dst, o, major)
	case *object.Tuple:
		dst = append(dst, '(')
		dst = appendSeq(dst, o.Values, major, depth)
		if len(o.Values) == 1 {
			dst = append(dst, ',')
		}
		return append(dst, ')')
	case *object.List:
		dst = append(dst, '[')
		dst = appendSeq(dst, o.Values, major, depth)
		return append(dst, ']')
	case *object.Set:
		dst = append(dst, '{')
		dst = appendSeq(dst, o.Values, major, depth)
		return append(dst, '}')
	case *object.Dict:
		dst = append(dst, '{')
		for i, k := range o.Keys {
			if i > 0 {
				dst = append(dst, ", "...)
			}
			dst = appendConst(dst, k, major, depth+1)
			dst = append(dst, ": "...)
			var v object.Object
			if i < len(o.Values) {
				v = o.Values[i]
			}
			dst = appendConst(dst, v, major, depth+1)
		}
		return append(dst, '}')
	case *object.Code:
		dst = append(dst, CodeMarker...)
		dst = append(dst, ' ')
		return append(dst, o.Name...)
	}
	return fmt.Appendf(dst, "<%s>", obj.Type())
}

func appendSeq(dst []byte, values []object.Object, major, depth int) []byte {
	for i, v := range values {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = appendConst(dst, v, major, depth+1)
	}
	return dst
}

func singletonText(s *object.Singleton) string {
	switch s.Type() {
	case object.TypeNone:
		return "None"
	case object.TypeTrue:
		return "True"
	case object.TypeFalse:
		return "False"
	case object.TypeEllipsis:
		return "..."
	case object.TypeStopIteration:
		return "StopIteration"
	}
	return "<" + s.Type().String() + ">"
}

func appendFloat(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', -1, 64)
}

// appendString quotes a string the way the runtime's repr does. Byte strings
// get a "b" prefix on 3.x and text strings a "u" prefix before it.
func appendString(dst []byte, s *object.String, major int) []byte {
	text := isText(s.Kind, major)
	switch {
	case s.Kind == object.TypeString && major >= 3:
		dst = append(dst, 'b')
	case s.Kind == object.TypeUnicode && major < 3:
		dst = append(dst, 'u')
	}
	return appendQuoted(dst, s.Value, text)
}

// isText reports whether a string's bytes are UTF-8 text rather than raw
// bytes. Interned strings are byte strings before 3.0.
func isText(kind object.Type, major int) bool {
	switch kind {
	case object.TypeString:
		return false
	case object.TypeInterned, object.TypeStringRef:
		return major >= 3
	}
	return true
}

const hexDigits = "0123456789abcdef"

// appendQuoted picks double quotes only when the value contains a single
// quote and no double quote. Control bytes are escaped; high bytes pass
// through in text and are escaped in byte strings.
func appendQuoted(dst []byte, b []byte, text bool) []byte {
	quote := byte('\'')
	for _, c := range b {
		if c == '\'' {
			quote = '"'
		} else if c == '"' {
			quote = '\''
			break
		}
	}

	dst = append(dst, quote)
	for _, c := range b {
		switch {
		case c == '\r':
			dst = append(dst, `\r`...)
		case c == '\n':
			dst = append(dst, `\n`...)
		case c == '\t':
			dst = append(dst, `\t`...)
		case c < 0x20 || c == 0x7f:
			dst = append(dst, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
		case c >= 0x80 && !text:
			dst = append(dst, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
		case c >= 0x80:
			dst = append(dst, c)
		case c == quote:
			dst = append(dst, '\\', c)
		case c == '\\':
			dst = append(dst, `\\`...)
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, quote)
}
