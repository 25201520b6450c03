package paramtype

import (
	"strconv"
	"strings"
)

// Kind enumerates the supported ABI type variants.
type Kind uint8

// ABI type kinds.
const (
	AddressTy Kind = iota
	BoolTy
	StringTy
	BytesTy
	FixedBytesTy
	IntTy
	UintTy
	ArrayTy
	FixedArrayTy
	TupleTy
)

var kindNames = [...]string{
	AddressTy:    "address",
	BoolTy:       "bool",
	StringTy:     "string",
	BytesTy:      "bytes",
	FixedBytesTy: "fixedbytes",
	IntTy:        "int",
	UintTy:       "uint",
	ArrayTy:      "array",
	FixedArrayTy: "fixedarray",
	TupleTy:      "tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Type is a parsed ABI parameter type.
//
// Size holds the byte count of FixedBytes, the bit width of Int and Uint
// and the length of FixedArray. Elem is set for Array and FixedArray,
// Elems for Tuple. A Type must not be modified once built, nested values
// may be shared between types. Build values with the constructors: an
// array without Elem is invalid, Equal and String only tolerate it.
type Type struct {
	Kind  Kind
	Size  int
	Elem  *Type
	Elems []Type
}

// Address returns the address type.
func Address() Type { return Type{Kind: AddressTy} }

// Bool returns the bool type.
func Bool() Type { return Type{Kind: BoolTy} }

// String returns the dynamic string type.
func String() Type { return Type{Kind: StringTy} }

// Bytes returns the dynamic bytes type.
func Bytes() Type { return Type{Kind: BytesTy} }

// FixedBytes returns bytes<n>.
func FixedBytes(n int) Type { return Type{Kind: FixedBytesTy, Size: n} }

// Int returns int<bits>.
func Int(bits int) Type { return Type{Kind: IntTy, Size: bits} }

// Uint returns uint<bits>.
func Uint(bits int) Type { return Type{Kind: UintTy, Size: bits} }

// Array returns a dynamic array of elem.
func Array(elem Type) Type {
	return Type{Kind: ArrayTy, Elem: &elem}
}

// FixedArray returns an array of elem with the given length.
func FixedArray(elem Type, length int) Type {
	return Type{Kind: FixedArrayTy, Size: length, Elem: &elem}
}

// Tuple returns a tuple of the given element types.
func Tuple(elems ...Type) Type {
	return Type{Kind: TupleTy, Elems: append([]Type{}, elems...)}
}

// IsTuple tells if t is a tuple.
func (t Type) IsTuple() bool {
	return t.Kind == TupleTy
}

// IsArray tells if t is a dynamic or fixed size array.
func (t Type) IsArray() bool {
	return t.Kind == ArrayTy || t.Kind == FixedArrayTy
}

// Base strips all array wrappers and returns the innermost element type.
func (t Type) Base() Type {
	for t.IsArray() && t.Elem != nil {
		t = *t.Elem
	}

	return t
}

// WithBase returns a copy of t whose innermost element type,
// below all array wrappers, is replaced by base.
func (t Type) WithBase(base Type) Type {
	if t.Elem == nil {
		return base
	}

	switch t.Kind {
	case ArrayTy:
		return Array(t.Elem.WithBase(base))
	case FixedArrayTy:
		return FixedArray(t.Elem.WithBase(base), t.Size)
	default:
		return base
	}
}

// Equal reports whether t and other describe the same type.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}

	switch t.Kind {
	case FixedBytesTy, IntTy, UintTy:
		return t.Size == other.Size
	case ArrayTy:
		return elemEqual(t.Elem, other.Elem)
	case FixedArrayTy:
		return t.Size == other.Size && elemEqual(t.Elem, other.Elem)
	case TupleTy:
		if len(t.Elems) != len(other.Elems) {
			return false
		}
		for i := range t.Elems {
			if !t.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func elemEqual(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}

// String returns the canonical type name, e.g. "uint256[3][]" or "(address,bool)".
func (t Type) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t Type) write(sb *strings.Builder) {
	switch t.Kind {
	case AddressTy, BoolTy, StringTy, BytesTy:
		sb.WriteString(t.Kind.String())
	case FixedBytesTy:
		sb.WriteString("bytes")
		sb.WriteString(strconv.Itoa(t.Size))
	case IntTy, UintTy:
		sb.WriteString(t.Kind.String())
		sb.WriteString(strconv.Itoa(t.Size))
	case ArrayTy:
		t.writeElem(sb)
		sb.WriteString("[]")
	case FixedArrayTy:
		t.writeElem(sb)
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(t.Size))
		sb.WriteByte(']')
	case TupleTy:
		sb.WriteByte('(')
		for i, elem := range t.Elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			elem.write(sb)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString(t.Kind.String())
	}
}

func (t Type) writeElem(sb *strings.Builder) {
	if t.Elem == nil {
		sb.WriteString("<nil>")
		return
	}

	t.Elem.write(sb)
}
