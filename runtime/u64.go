package cbor

// U64 wraps an unsigned 64-bit quantity used throughout the CBOR value
// and token models. It exists as a distinct type — rather than a bare
// uint64 — to keep NInt's "represents -1-n" encoding from being
// confused with a plain magnitude at call sites; see CBORValue's NInt
// variant.
type U64 struct {
	v uint64
}

// NewU64 constructs a U64 from a uint64.
func NewU64(v uint64) U64 { return U64{v: v} }

// Uint64 returns the wrapped value.
func (u U64) Uint64() uint64 { return u.v }

// Less reports whether u is less than other, ordering on the raw
// 64-bit magnitude (not the represented CBOR integer — see
// CBORValue.CompareInt for that).
func (u U64) Less(other U64) bool { return u.v < other.v }

// Equal reports whether u and other wrap the same magnitude.
func (u U64) Equal(other U64) bool { return u.v == other.v }

// Compare returns -1, 0, or 1 as u is less than, equal to, or greater
// than other, ordering on the raw 64-bit magnitude.
func (u U64) Compare(other U64) int {
	switch {
	case u.v < other.v:
		return -1
	case u.v > other.v:
		return 1
	default:
		return 0
	}
}
