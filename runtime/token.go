package cbor

// TokenKind identifies one of the fourteen terminal symbols the
// Scanner emits.
type TokenKind int

const (
	TokenUint TokenKind = iota
	TokenNint
	TokenBstrX // opens an indefinite-length byte string
	TokenBstr
	TokenTstrX // opens an indefinite-length text string
	TokenTstr
	TokenArrayX // opens an indefinite-length array
	TokenArray
	TokenMapX // opens an indefinite-length map
	TokenMap
	TokenTag
	TokenSimple
	TokenFloat
	TokenBreak // terminates an indefinite-length container
)

func (k TokenKind) String() string {
	switch k {
	case TokenUint:
		return "Uint"
	case TokenNint:
		return "Nint"
	case TokenBstrX:
		return "BstrX"
	case TokenBstr:
		return "Bstr"
	case TokenTstrX:
		return "TstrX"
	case TokenTstr:
		return "Tstr"
	case TokenArrayX:
		return "ArrayX"
	case TokenArray:
		return "Array"
	case TokenMapX:
		return "MapX"
	case TokenMap:
		return "Map"
	case TokenTag:
		return "Tag"
	case TokenSimple:
		return "Simple"
	case TokenFloat:
		return "Float"
	case TokenBreak:
		return "Break"
	default:
		return "<invalid token>"
	}
}

// Token is a terminal symbol emitted by the Scanner and consumed by
// the Parser. Which fields are meaningful depends on Kind:
//
//   - Uint, Nint, Array, Map, Tag carry their argument in U64.
//   - Float carries its raw bit pattern in U64 and its on-wire width in
//     bytes (2, 4, or 8) in Width.
//   - Simple carries its payload in Byte.
//   - Bstr, Tstr carry their already-materialized payload in Bytes.
//   - BstrX, TstrX, ArrayX, MapX, Break carry no payload.
type Token struct {
	Kind  TokenKind
	U64   U64
	Byte  byte
	Width int
	Bytes []byte
}

func tokUint(n uint64) Token { return Token{Kind: TokenUint, U64: NewU64(n)} }
func tokNint(n uint64) Token { return Token{Kind: TokenNint, U64: NewU64(n)} }
func tokBstrX() Token { return Token{Kind: TokenBstrX} }
func tokBstr(b []byte) Token { return Token{Kind: TokenBstr, Bytes: b} }
func tokTstrX() Token { return Token{Kind: TokenTstrX} }
func tokTstr(b []byte) Token { return Token{Kind: TokenTstr, Bytes: b} }
func tokArrayX() Token { return Token{Kind: TokenArrayX} }
func tokArray(n uint64) Token { return Token{Kind: TokenArray, U64: NewU64(n)} }
func tokMapX() Token { return Token{Kind: TokenMapX} }
func tokMap(n uint64) Token { return Token{Kind: TokenMap, U64: NewU64(n)} }
func tokTag(n uint64) Token { return Token{Kind: TokenTag, U64: NewU64(n)} }
func tokSimple(b byte) Token { return Token{Kind: TokenSimple, Byte: b} }
func tokFloat(n uint64, width int) Token {
	return Token{Kind: TokenFloat, U64: NewU64(n), Width: width}
}
func tokBreak() Token { return Token{Kind: TokenBreak} }
