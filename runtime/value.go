package cbor

import "bytes"

// Type identifies which of CBORValue's nine variants is active.
//
// The zero value, InvalidType, doubles as "never explicitly
// constructed" — a zero-value CBORValue reports Type() == SimpleType
// and Simple() == (23, true), the CBOR "undefined" simple value
// (encoded as the byte 0xf7), matching the default
// described by CBORValue's doc comment, without requiring callers to
// go through a constructor just to get a valid zero value.
type Type byte

const (
	InvalidType Type = iota
	UintType
	NintType
	BstrType
	TstrType
	ArrayType
	MapType
	TagType
	SimpleType
	FloatType
)

func (t Type) String() string {
	switch t {
	case UintType:
		return "uint"
	case NintType:
		return "nint"
	case BstrType:
		return "bstr"
	case TstrType:
		return "tstr"
	case ArrayType:
		return "array"
	case MapType:
		return "map"
	case TagType:
		return "tag"
	case SimpleType:
		return "simple"
	case FloatType:
		return "float"
	default:
		return "<invalid>"
	}
}

// MapPair is one key/value pair of a CBOR map, in the order it was
// decoded. CBORValue performs no deduplication: see
// CheckDuplicateKeys in duplicate.go for an opt-in check.
type MapPair struct {
	Key   CBORValue
	Value CBORValue
}

// CBORValue is a CBOR data item: one of UInt, NInt, Bstr, Tstr, Array,
// Map, Tag, Simple, or Float. Exactly one variant is active at a time.
//
// Array and Map own their elements; Tag owns its one child value
// through a pointer indirection (the type is recursive). There are no
// cyclic values: a value can only ever be built bottom-up by the
// Parser or by the New* constructors below.
//
// Array and Map values do not record whether they were encoded with a
// definite or an indefinite length: both wire forms decode to the same
// value, and Diag renders both without the "_" indefinite marker.
//
// The zero value is CBOR's "undefined" (simple value 23, encoded as
// 0xf7); see Type's doc comment.
type CBORValue struct {
	typ        Type
	u64        U64
	simple     byte
	floatWidth int // FloatType only: on-wire width in bytes (2, 4, or 8)
	bytes      []byte
	items      []CBORValue
	pairs      []MapPair
	tagChild   *CBORValue
}

// Undefined returns CBOR's undefined value, simple value 23 (encoded
// as 0xf7). It is
// equivalent to the zero value of CBORValue; this constructor exists
// for call sites where writing that out explicitly reads better than
// a bare CBORValue{}.
func Undefined() CBORValue { return CBORValue{} }

// NewUint constructs a non-negative integer value 0..2^64-1.
func NewUint(n U64) CBORValue { return CBORValue{typ: UintType, u64: n} }

// NewNint constructs a negative integer value. The stored magnitude n
// represents -1-n, so NewNint(0) is -1 and NewNint(2^64-1) is -2^64.
func NewNint(n U64) CBORValue { return CBORValue{typ: NintType, u64: n} }

// NewBstr constructs a byte-string value. The slice is stored as
// given, not copied.
func NewBstr(b []byte) CBORValue { return CBORValue{typ: BstrType, bytes: b} }

// NewTstr constructs a text-string value from raw bytes. The bytes are
// not validated as UTF-8; see Tstr's doc comment.
func NewTstr(b []byte) CBORValue { return CBORValue{typ: TstrType, bytes: b} }

// NewArray constructs an array value owning the given elements. The
// slice is stored as given, not copied.
func NewArray(items []CBORValue) CBORValue { return CBORValue{typ: ArrayType, items: items} }

// NewMap constructs a map value owning the given pairs, in insertion
// order. The slice is stored as given, not copied.
func NewMap(pairs []MapPair) CBORValue { return CBORValue{typ: MapType, pairs: pairs} }

// NewTag constructs a tagged value. The child is copied onto the heap
// so that the tag exclusively owns it.
func NewTag(number U64, child CBORValue) CBORValue {
	c := child
	return CBORValue{typ: TagType, u64: number, tagChild: &c}
}

// NewSimple constructs a simple value (the CBOR major-type-7
// small-integer space, 0-255; 24-31 are reserved per RFC 8949 and are
// accepted here without interpretation).
func NewSimple(b byte) CBORValue { return CBORValue{typ: SimpleType, simple: b} }

// NewFloat constructs a float value from its raw bit pattern and its
// on-wire width in bytes (2, 4, or 8). The bits are stored exactly as
// scanned; decoding them to a native float is the caller's
// responsibility — see floatbits.go.
func NewFloat(bits U64, width int) CBORValue {
	return CBORValue{typ: FloatType, u64: bits, floatWidth: width}
}

// Type reports which variant is active. A zero-value CBORValue
// reports SimpleType (see Type's doc comment).
func (v CBORValue) Type() Type {
	if v.typ == InvalidType {
		return SimpleType
	}
	return v.typ
}

func (v CBORValue) IsUint() bool   { return v.Type() == UintType }
func (v CBORValue) IsNint() bool   { return v.Type() == NintType }
func (v CBORValue) IsBstr() bool   { return v.Type() == BstrType }
func (v CBORValue) IsTstr() bool   { return v.Type() == TstrType }
func (v CBORValue) IsArray() bool  { return v.Type() == ArrayType }
func (v CBORValue) IsMap() bool    { return v.Type() == MapType }
func (v CBORValue) IsTag() bool    { return v.Type() == TagType }
func (v CBORValue) IsSimple() bool { return v.Type() == SimpleType }
func (v CBORValue) IsFloat() bool  { return v.Type() == FloatType }

// Uint returns the value's magnitude if it is a UInt.
func (v CBORValue) Uint() (U64, bool) {
	if v.typ != UintType {
		return U64{}, false
	}
	return v.u64, true
}

// Nint returns the value's stored magnitude if it is an NInt. The
// represented integer is -1-n; see NewNint.
func (v CBORValue) Nint() (U64, bool) {
	if v.typ != NintType {
		return U64{}, false
	}
	return v.u64, true
}

// Bstr returns a copy of the byte-string content if v is a Bstr.
func (v CBORValue) Bstr() ([]byte, bool) {
	if v.typ != BstrType {
		return nil, false
	}
	out := make([]byte, len(v.bytes))
	copy(out, v.bytes)
	return out, true
}

// BstrBytes returns a shared reference to the byte-string content if v
// is a Bstr. The caller must not retain it beyond v's lifetime if v is
// later moved out of with TakeBstr.
func (v CBORValue) BstrBytes() ([]byte, bool) {
	if v.typ != BstrType {
		return nil, false
	}
	return v.bytes, true
}

// TakeBstr moves the byte-string content out of v, leaving v holding
// Undefined(). Calling it again is a no-op that returns (nil, false).
func (v *CBORValue) TakeBstr() ([]byte, bool) {
	if v.typ != BstrType {
		return nil, false
	}
	b := v.bytes
	*v = Undefined()
	return b, true
}

// Tstr returns a copy of the text-string content, as a string, if v is
// a Tstr. The bytes are not validated as UTF-8.
func (v CBORValue) Tstr() (string, bool) {
	if v.typ != TstrType {
		return "", false
	}
	return string(v.bytes), true
}

// TstrBytes returns a shared reference to the text-string content if v
// is a Tstr.
func (v CBORValue) TstrBytes() ([]byte, bool) {
	if v.typ != TstrType {
		return nil, false
	}
	return v.bytes, true
}

// TakeTstr moves the text-string content out of v, leaving v holding
// Undefined(). Calling it again is a no-op that returns (nil, false).
func (v *CBORValue) TakeTstr() ([]byte, bool) {
	if v.typ != TstrType {
		return nil, false
	}
	b := v.bytes
	*v = Undefined()
	return b, true
}

// Array returns a copy of the element slice if v is an Array.
func (v CBORValue) Array() ([]CBORValue, bool) {
	if v.typ != ArrayType {
		return nil, false
	}
	out := make([]CBORValue, len(v.items))
	copy(out, v.items)
	return out, true
}

// ArrayItems returns a shared reference to the element slice if v is
// an Array.
func (v CBORValue) ArrayItems() ([]CBORValue, bool) {
	if v.typ != ArrayType {
		return nil, false
	}
	return v.items, true
}

// TakeArray moves the element slice out of v, leaving v holding
// Undefined(). Calling it again is a no-op that returns (nil, false).
func (v *CBORValue) TakeArray() ([]CBORValue, bool) {
	if v.typ != ArrayType {
		return nil, false
	}
	items := v.items
	*v = Undefined()
	return items, true
}

// Map returns a copy of the pair slice if v is a Map.
func (v CBORValue) Map() ([]MapPair, bool) {
	if v.typ != MapType {
		return nil, false
	}
	out := make([]MapPair, len(v.pairs))
	copy(out, v.pairs)
	return out, true
}

// MapPairs returns a shared reference to the pair slice if v is a Map.
func (v CBORValue) MapPairs() ([]MapPair, bool) {
	if v.typ != MapType {
		return nil, false
	}
	return v.pairs, true
}

// TakeMap moves the pair slice out of v, leaving v holding Undefined().
// Calling it again is a no-op that returns (nil, false).
func (v *CBORValue) TakeMap() ([]MapPair, bool) {
	if v.typ != MapType {
		return nil, false
	}
	pairs := v.pairs
	*v = Undefined()
	return pairs, true
}

// Tag returns the tag number and a copy of the child value if v is a
// Tag.
func (v CBORValue) Tag() (U64, CBORValue, bool) {
	if v.typ != TagType {
		return U64{}, CBORValue{}, false
	}
	return v.u64, *v.tagChild, true
}

// TagChild returns the tag number and a shared reference to the child
// value if v is a Tag.
func (v CBORValue) TagChild() (U64, *CBORValue, bool) {
	if v.typ != TagType {
		return U64{}, nil, false
	}
	return v.u64, v.tagChild, true
}

// TakeTag moves the child value out of v, leaving v holding
// Undefined(). Calling it again is a no-op that returns
// (zero, Undefined(), false).
func (v *CBORValue) TakeTag() (U64, CBORValue, bool) {
	if v.typ != TagType {
		return U64{}, CBORValue{}, false
	}
	number, child := v.u64, *v.tagChild
	*v = Undefined()
	return number, child, true
}

// Simple returns the small-integer payload if v is a Simple.
func (v CBORValue) Simple() (byte, bool) {
	if v.Type() != SimpleType {
		return 0, false
	}
	if v.typ == InvalidType {
		return simpleUndefined, true
	}
	return v.simple, true
}

// Float returns the raw bit pattern and on-wire width (in bytes: 2, 4,
// or 8) if v is a Float; see NewFloat and floatbits.go for decoding
// the bits to a native float.
func (v CBORValue) Float() (bits U64, width int, ok bool) {
	if v.typ != FloatType {
		return U64{}, 0, false
	}
	return v.u64, v.floatWidth, true
}

// CompareInt orders the integer represented by v against the integer
// represented by other. Both must be UInt or NInt; CompareInt reports
// ok=false otherwise.
//
// Every NInt compares less than every UInt. Within NInt, a larger
// stored magnitude represents a smaller integer (NInt(n) represents
// -1-n), so the stored-magnitude ordering is reversed.
func (v CBORValue) CompareInt(other CBORValue) (cmp int, ok bool) {
	switch {
	case v.typ == UintType && other.typ == UintType:
		return v.u64.Compare(other.u64), true
	case v.typ == NintType && other.typ == NintType:
		return other.u64.Compare(v.u64), true
	case v.typ == NintType && other.typ == UintType:
		return -1, true
	case v.typ == UintType && other.typ == NintType:
		return 1, true
	default:
		return 0, false
	}
}

// Equal reports whether v and other hold the same variant and the
// same recursive content.
func (v CBORValue) Equal(other CBORValue) bool {
	if v.Type() != other.Type() {
		return false
	}
	switch v.Type() {
	case UintType, NintType:
		return v.u64.Equal(other.u64)
	case BstrType, TstrType:
		return bytes.Equal(v.bytes, other.bytes)
	case ArrayType:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case MapType:
		if len(v.pairs) != len(other.pairs) {
			return false
		}
		for i := range v.pairs {
			if !v.pairs[i].Key.Equal(other.pairs[i].Key) || !v.pairs[i].Value.Equal(other.pairs[i].Value) {
				return false
			}
		}
		return true
	case TagType:
		if !v.u64.Equal(other.u64) {
			return false
		}
		vChild, otherChild := v.tagChild, other.tagChild
		if vChild == nil || otherChild == nil {
			return vChild == otherChild
		}
		return vChild.Equal(*otherChild)
	case SimpleType:
		vs, _ := v.Simple()
		os, _ := other.Simple()
		return vs == os
	case FloatType:
		return v.u64.Equal(other.u64) && v.floatWidth == other.floatWidth
	default:
		return true
	}
}
