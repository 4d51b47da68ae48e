package object

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ErrCorruptData is returned when an interchange record cannot be turned back
// into an object.
var ErrCorruptData = errors.New("corrupt object data")

// maxNestedLevels bounds CBOR nesting on decode. Each object level costs two
// CBOR levels (the record and its item array), so this admits constant pools
// nested a few hundred deep and rejects anything that could exhaust the stack.
const maxNestedLevels = 1024

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("object: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em

	dm, err := cbor.DecOptions{MaxNestedLevels: maxNestedLevels}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("object: failed to create CBOR dec mode: %v", err))
	}
	cborDecMode = dm
}

// Module is the interchange envelope: one top-level code unit and the
// runtime release that produced it. Major is zero when the producer did not
// record a version.
type Module struct {
	Major int
	Minor int
	Code  *Code
}

// wireObject is the CBOR form of every Object. Which payload fields are set
// depends on Type.
type wireObject struct {
	Type   byte         `cbor:"1,keyasint"`
	Int    int64        `cbor:"2,keyasint,omitempty"`
	Bytes  []byte       `cbor:"3,keyasint,omitempty"` // string payload
	Text   string       `cbor:"4,keyasint,omitempty"` // long, float, complex real part
	Imag   string       `cbor:"5,keyasint,omitempty"` // complex imaginary part
	Real   float64      `cbor:"6,keyasint"`
	ImagF  float64      `cbor:"7,keyasint"`
	Items  []wireObject `cbor:"8,keyasint,omitempty"` // sequence items, dict keys
	Values []wireObject `cbor:"9,keyasint,omitempty"` // dict values
	Code   *wireCode    `cbor:"10,keyasint,omitempty"`
}

type wireCode struct {
	ArgCount       int          `cbor:"1,keyasint"`
	KwOnlyArgCount int          `cbor:"2,keyasint,omitempty"`
	NumLocals      int          `cbor:"3,keyasint"`
	StackSize      int          `cbor:"4,keyasint"`
	Flags          uint32       `cbor:"5,keyasint"`
	Code           []byte       `cbor:"6,keyasint"`
	Consts         []wireObject `cbor:"7,keyasint,omitempty"`
	Names          []string     `cbor:"8,keyasint,omitempty"`
	VarNames       []string     `cbor:"9,keyasint,omitempty"`
	FreeVars       []string     `cbor:"10,keyasint,omitempty"`
	CellVars       []string     `cbor:"11,keyasint,omitempty"`
	Filename       string       `cbor:"12,keyasint,omitempty"`
	Name           string       `cbor:"13,keyasint"`
	FirstLineNo    int          `cbor:"14,keyasint,omitempty"`
	LineTable      []byte       `cbor:"15,keyasint,omitempty"`
	Legacy         bool         `cbor:"16,keyasint,omitempty"`
}

type wireModule struct {
	Major int        `cbor:"1,keyasint"`
	Minor int        `cbor:"2,keyasint"`
	Code  wireObject `cbor:"3,keyasint"`
}

// Marshal serializes an object to CBOR bytes.
func Marshal(obj Object) ([]byte, error) {
	w, err := toWire(obj)
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(w)
}

// Unmarshal deserializes an object from CBOR bytes.
func Unmarshal(data []byte) (Object, error) {
	var w wireObject
	if err := cborDecMode.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("object: unmarshal: %w", err)
	}
	return fromWire(&w)
}

// MarshalModule serializes a module envelope to CBOR bytes.
func MarshalModule(m *Module) ([]byte, error) {
	if m.Code == nil {
		return nil, fmt.Errorf("object: marshal module: %w: no code", ErrCorruptData)
	}
	w, err := toWire(m.Code)
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(&wireModule{Major: m.Major, Minor: m.Minor, Code: w})
}

// UnmarshalModule deserializes a module envelope from CBOR bytes.
func UnmarshalModule(data []byte) (*Module, error) {
	var w wireModule
	if err := cborDecMode.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("object: unmarshal module: %w", err)
	}
	obj, err := fromWire(&w.Code)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: module holds no code", ErrCorruptData)
	}
	code, ok := obj.(*Code)
	if !ok {
		return nil, fmt.Errorf("%w: module holds %s, not code", ErrCorruptData, obj.Type())
	}
	return &Module{Major: w.Major, Minor: w.Minor, Code: code}, nil
}

func toWire(obj Object) (wireObject, error) {
	if obj == nil {
		return wireObject{Type: byte(TypeNull)}, nil
	}

	w := wireObject{Type: byte(obj.Type())}
	var err error
	switch o := obj.(type) {
	case *Singleton:
	case *Int:
		w.Int = int64(o.Value)
	case *Long:
		w.Text = o.Repr
	case *Float:
		w.Text = o.Repr
	case *BinaryFloat:
		w.Real = o.Value
	case *Complex:
		w.Text, w.Imag = o.Real, o.Imag
	case *BinaryComplex:
		w.Real, w.ImagF = o.Real, o.Imag
	case *String:
		w.Bytes = o.Value
	case *Tuple:
		w.Items, err = toWireSlice(o.Values)
	case *List:
		w.Items, err = toWireSlice(o.Values)
	case *Set:
		w.Items, err = toWireSlice(o.Values)
	case *Dict:
		if len(o.Keys) != len(o.Values) {
			return w, fmt.Errorf("%w: %d keys, %d values", ErrDictMismatch, len(o.Keys), len(o.Values))
		}
		if w.Items, err = toWireSlice(o.Keys); err == nil {
			w.Values, err = toWireSlice(o.Values)
		}
	case *Code:
		w.Code, err = toWireCode(o)
	default:
		return w, fmt.Errorf("%w: %T", ErrUnknownType, obj)
	}
	return w, err
}

func toWireSlice(objs []Object) ([]wireObject, error) {
	out := make([]wireObject, len(objs))
	for i, obj := range objs {
		w, err := toWire(obj)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func toWireCode(c *Code) (*wireCode, error) {
	consts, err := toWireSlice(c.Consts)
	if err != nil {
		return nil, fmt.Errorf("code %s: %w", c.Name, err)
	}
	return &wireCode{
		ArgCount:       c.ArgCount,
		KwOnlyArgCount: c.KwOnlyArgCount,
		NumLocals:      c.NumLocals,
		StackSize:      c.StackSize,
		Flags:          c.Flags,
		Code:           c.Code,
		Consts:         consts,
		Names:          c.Names,
		VarNames:       c.VarNames,
		FreeVars:       c.FreeVars,
		CellVars:       c.CellVars,
		Filename:       c.Filename,
		Name:           c.Name,
		FirstLineNo:    c.FirstLineNo,
		LineTable:      c.LineTable,
		Legacy:         c.Legacy,
	}, nil
}

func fromWire(w *wireObject) (Object, error) {
	t := Type(w.Type)
	switch t {
	case TypeNull:
		return nil, nil
	case TypeNone:
		return None, nil
	case TypeTrue:
		return True, nil
	case TypeFalse:
		return False, nil
	case TypeEllipsis:
		return Ellipsis, nil
	case TypeStopIteration:
		return StopIteration, nil
	case TypeInt:
		if w.Int < -1<<31 || w.Int > 1<<31-1 {
			return nil, fmt.Errorf("%w: int %d overflows 32 bits", ErrCorruptData, w.Int)
		}
		return &Int{Value: int32(w.Int)}, nil
	case TypeLong:
		return &Long{Repr: w.Text}, nil
	case TypeFloat:
		return &Float{Repr: w.Text}, nil
	case TypeBinaryFloat:
		return &BinaryFloat{Value: w.Real}, nil
	case TypeComplex:
		return &Complex{Real: w.Text, Imag: w.Imag}, nil
	case TypeBinaryComplex:
		return &BinaryComplex{Real: w.Real, Imag: w.ImagF}, nil
	case TypeTuple, TypeSmallTuple:
		values, err := fromWireSlice(w.Items)
		if err != nil {
			return nil, err
		}
		return &Tuple{Small: t == TypeSmallTuple, Values: values}, nil
	case TypeList:
		values, err := fromWireSlice(w.Items)
		if err != nil {
			return nil, err
		}
		return &List{Values: values}, nil
	case TypeSet, TypeFrozenSet:
		values, err := fromWireSlice(w.Items)
		if err != nil {
			return nil, err
		}
		return &Set{Frozen: t == TypeFrozenSet, Values: values}, nil
	case TypeDict:
		keys, err := fromWireSlice(w.Items)
		if err != nil {
			return nil, err
		}
		values, err := fromWireSlice(w.Values)
		if err != nil {
			return nil, err
		}
		return NewDict(keys, values)
	case TypeCode, TypeCode2:
		if w.Code == nil {
			return nil, fmt.Errorf("%w: code object without body", ErrCorruptData)
		}
		return fromWireCode(w.Code)
	}

	if t.IsString() {
		return &String{Kind: t, Value: w.Bytes}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
}

func fromWireSlice(ws []wireObject) ([]Object, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	out := make([]Object, len(ws))
	for i := range ws {
		obj, err := fromWire(&ws[i])
		if err != nil {
			return nil, err
		}
		out[i] = obj
	}
	return out, nil
}

func fromWireCode(w *wireCode) (*Code, error) {
	consts, err := fromWireSlice(w.Consts)
	if err != nil {
		return nil, fmt.Errorf("code %s: %w", w.Name, err)
	}
	return &Code{
		ArgCount:       w.ArgCount,
		KwOnlyArgCount: w.KwOnlyArgCount,
		NumLocals:      w.NumLocals,
		StackSize:      w.StackSize,
		Flags:          w.Flags,
		Code:           w.Code,
		Consts:         consts,
		Names:          w.Names,
		VarNames:       w.VarNames,
		FreeVars:       w.FreeVars,
		CellVars:       w.CellVars,
		Filename:       w.Filename,
		Name:           w.Name,
		FirstLineNo:    w.FirstLineNo,
		LineTable:      w.LineTable,
		Legacy:         w.Legacy,
	}, nil
}
