// Package cbor implements a streaming decoder for Concise Binary Object
// Representation (CBOR, RFC 8949): a resumable byte-level Scanner that
// turns an arbitrarily chunked byte stream into Tokens, and a Parser
// that turns a Token stream into a recursive CBORValue tree.
//
// The package deliberately does not implement encoding, canonical
// re-encoding, or tag-semantic interpretation; see the package-level
// Non-goals discussed in the Scanner and Parser doc comments.
package cbor

// CBOR major types (top 3 bits of the initial byte).
const (
	majorUint   = 0 // unsigned integer
	majorNint   = 1 // negative integer
	majorBstr   = 2 // byte string
	majorTstr   = 3 // text string (UTF-8, unvalidated)
	majorArray  = 4 // array
	majorMap    = 5 // map
	majorTag    = 6 // semantic tag
	majorSimple = 7 // simple value / float / break
)

// Additional information values (bottom 5 bits of the initial byte).
const (
	aiDirectMax  = 23 // 0..23 carry the value directly
	aiUint8      = 24 // 1-byte argument follows
	aiUint16     = 25 // 2-byte argument follows
	aiUint32     = 26 // 4-byte argument follows
	aiUint64     = 27 // 8-byte argument follows
	aiIndefinite = 31 // indefinite length, or Break for major type 7
)

// Simple values within major type 7.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
)

// majorType extracts the major type from a CBOR initial byte.
func majorType(b byte) uint8 { return b >> 5 }

// addInfo extracts the additional information from a CBOR initial byte.
func addInfo(b byte) uint8 { return b & 0x1f }

// argWidth reports the number of big-endian argument bytes that follow
// an additional-information value of 24..27, or 0 if ai does not open
// an argument (ai <= 23, or ai is 28..31).
func argWidth(ai uint8) int {
	switch ai {
	case aiUint8:
		return 1
	case aiUint16:
		return 2
	case aiUint32:
		return 4
	case aiUint64:
		return 8
	default:
		return 0
	}
}
