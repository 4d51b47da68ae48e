package bytecode

import (
	"strings"
	"testing"

	"github.com/chazu/pydis/object"
)

func mustDict(t *testing.T, keys, values []object.Object) *object.Dict {
	t.Helper()
	d, err := object.NewDict(keys, values)
	if err != nil {
		t.Fatalf("NewDict: %v", err)
	}
	return d
}

func TestRenderConst(t *testing.T) {
	str := func(kind object.Type, s string) *object.String { return object.NewString(kind, s) }

	tests := []struct {
		name  string
		obj   object.Object
		major int
		want  string
	}{
		{"null", nil, 3, "<NULL>"},
		{"none", object.None, 2, "None"},
		{"true", object.True, 2, "True"},
		{"false", object.False, 2, "False"},
		{"ellipsis", object.Ellipsis, 3, "..."},
		{"stopiteration", object.StopIteration, 3, "StopIteration"},
		{"int", &object.Int{Value: -42}, 2, "-42"},
		{"long", &object.Long{Repr: "12345678901234567890"}, 2, "12345678901234567890"},
		{"float", &object.Float{Repr: "2.5"}, 2, "2.5"},
		{"binary float", &object.BinaryFloat{Value: 0.1}, 3, "0.1"},
		{"binary float exponent", &object.BinaryFloat{Value: 1e21}, 3, "1e+21"},
		{"complex", &object.Complex{Real: "1", Imag: "2.5"}, 2, "(1+2.5j)"},
		{"binary complex", &object.BinaryComplex{Real: 0, Imag: 1.5}, 3, "(0+1.5j)"},
		{"code", &object.Code{Name: "helper"}, 3, "<CODE> helper"},

		{"empty tuple", object.NewTuple(), 3, "()"},
		{"one tuple", object.NewTuple(&object.Int{Value: 5}), 3, "(5,)"},
		{"two tuple", object.NewTuple(&object.Int{Value: 5}, &object.Int{Value: 6}), 3, "(5, 6)"},
		{"small tuple", &object.Tuple{Small: true, Values: []object.Object{object.None}}, 3, "(None,)"},
		{"list", object.NewList(&object.Int{Value: 1}), 3, "[1]"},
		{"empty list", object.NewList(), 3, "[]"},
		{"set", object.NewSet(&object.Int{Value: 1}, &object.Int{Value: 2}), 3, "{1, 2}"},
		{"frozenset", &object.Set{Frozen: true, Values: []object.Object{&object.Int{Value: 1}}}, 3, "{1}"},
		{"dict", mustDict(t,
			[]object.Object{&object.Int{Value: 1}, &object.Int{Value: 2}},
			[]object.Object{str(object.TypeShortASCII, "a"), str(object.TypeShortASCII, "b")},
		), 3, "{1: 'a', 2: 'b'}"},
		{"nested", object.NewList(object.NewTuple(object.NewTuple()), nil), 3, "[((),), <NULL>]"},

		{"bytes on 3", str(object.TypeString, "ab"), 3, "b'ab'"},
		{"bytes on 2", str(object.TypeString, "ab"), 2, "'ab'"},
		{"unicode on 3", str(object.TypeUnicode, "ab"), 3, "'ab'"},
		{"unicode on 2", str(object.TypeUnicode, "ab"), 2, "u'ab'"},
		{"interned", str(object.TypeInterned, "name"), 2, "'name'"},
		{"ascii", str(object.TypeASCII, "x"), 3, "'x'"},
		{"stringref", str(object.TypeStringRef, "x"), 2, "'x'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderConst(tt.obj, tt.major); got != tt.want {
				t.Errorf("RenderConst() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderStringQuoting(t *testing.T) {
	tests := []struct {
		name string
		kind object.Type
		in   string
		want string
	}{
		{"plain", object.TypeUnicode, "hi", `'hi'`},
		{"single quote", object.TypeUnicode, "it's", `"it's"`},
		{"double quote", object.TypeUnicode, `say "x"`, `'say "x"'`},
		{"both quotes", object.TypeUnicode, `it's "x"`, `'it\'s "x"'`},
		{"double then single", object.TypeUnicode, `"a" 'b'`, `'"a" \'b\''`},
		{"backslash", object.TypeUnicode, `a\b`, `'a\\b'`},
		{"control", object.TypeUnicode, "a\nb\tc\rd", `'a\nb\tc\rd'`},
		{"other control", object.TypeUnicode, "\x00\x1f\x7f", `'\x00\x1f\x7f'`},
		{"utf8 text", object.TypeUnicode, "caf\xc3\xa9", "'caf\xc3\xa9'"},
		{"high bytes", object.TypeString, "\xc3\xa9", `b'\xc3\xa9'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderConst(object.NewString(tt.kind, tt.in), 3)
			if got != tt.want {
				t.Errorf("RenderConst(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderInternedBytesOnLegacy(t *testing.T) {
	s := object.NewString(object.TypeInterned, "\xff")
	if got := RenderConst(s, 2); got != `'\xff'` {
		t.Errorf("legacy interned = %s", got)
	}
	if got := RenderConst(s, 3); got != "'\xff'" {
		t.Errorf("3.x interned = %q", got)
	}
}

func TestRenderDepthCap(t *testing.T) {
	var obj object.Object = &object.Int{Value: 1}
	for range MaxConstDepth + 10 {
		obj = object.NewList(obj)
	}

	got := RenderConst(obj, 3)
	if !strings.Contains(got, DepthMarker) {
		t.Fatalf("deep nesting not capped: %.80s...", got)
	}
	if strings.Contains(got, "1") {
		t.Error("value below the cap was rendered")
	}
	if n := strings.Count(got, "["); n != MaxConstDepth+1 {
		t.Errorf("rendered %d levels, want %d", n, MaxConstDepth+1)
	}
}

func TestWriteConst(t *testing.T) {
	var sb strings.Builder
	if err := WriteConst(&sb, object.NewTuple(&object.Int{Value: 5}), 3); err != nil {
		t.Fatalf("WriteConst: %v", err)
	}
	if sb.String() != "(5,)" {
		t.Errorf("WriteConst wrote %q", sb.String())
	}
}
