package cbor

import (
	"math"

	"github.com/x448/float16"
)

// CBORValue's Float variant stores the raw bit pattern the Scanner
// read off the wire plus the width that pattern arrived in; it does
// not itself decode to a native float. These helpers do that decoding
// for callers who want it, widening everything to float64 the way
// RFC 8949's own diagnostic notation does.

// Widen decodes v's raw bits to float64 according to the width
// recorded when it was scanned (2, 4, or 8 bytes).
func (v CBORValue) Widen() (float64, bool) {
	bits, width, ok := v.Float()
	if !ok {
		return 0, false
	}
	f, err := FloatWiden(bits, width)
	return f, err == nil
}

// FloatWiden decodes bits to float64 given an on-wire width in bytes
// (2, 4, or 8); see Widen for the CBORValue-level convenience.
func FloatWiden(bits U64, width int) (float64, error) {
	switch width {
	case 2:
		return float64(float16.Frombits(uint16(bits.Uint64())).Float32()), nil
	case 4:
		return float64(math.Float32frombits(uint32(bits.Uint64()))), nil
	case 8:
		return math.Float64frombits(bits.Uint64()), nil
	default:
		return 0, UnexpectedError{Message: "invalid float width"}
	}
}

// EncodeFloat16Bits rounds f to the nearest IEEE 754 binary16
// representation and returns its raw bit pattern, for callers
// constructing Float values (e.g. diagnostic-notation round trips and
// tests) rather than decoding them off the wire.
func EncodeFloat16Bits(f float64) uint64 {
	return uint64(float16.Fromfloat32(float32(f)).Bits())
}
