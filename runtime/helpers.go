package cbor

import "unicode/utf8"

// NextTokenKind reports the TokenKind the Scanner will emit first for
// b, without running the Scanner, by inspecting only the initial
// byte. It is useful for callers branching on shape before committing
// to a full scan, and returns ok=false for an empty slice or a head
// byte RFC 8949 assigns no meaning to.
func NextTokenKind(b []byte) (kind TokenKind, ok bool) {
	if len(b) == 0 {
		return 0, false
	}
	mt := majorType(b[0])
	ai := addInfo(b[0])
	if (ai >= 28 && ai < aiIndefinite) || (ai == aiIndefinite && (mt == majorUint || mt == majorNint || mt == majorTag)) {
		return 0, false
	}
	switch mt {
	case majorUint:
		return TokenUint, true
	case majorNint:
		return TokenNint, true
	case majorBstr:
		if ai == aiIndefinite {
			return TokenBstrX, true
		}
		return TokenBstr, true
	case majorTstr:
		if ai == aiIndefinite {
			return TokenTstrX, true
		}
		return TokenTstr, true
	case majorArray:
		if ai == aiIndefinite {
			return TokenArrayX, true
		}
		return TokenArray, true
	case majorMap:
		if ai == aiIndefinite {
			return TokenMapX, true
		}
		return TokenMap, true
	case majorTag:
		return TokenTag, true
	case majorSimple:
		switch {
		case ai == aiIndefinite:
			return TokenBreak, true
		case ai == aiUint16 || ai == aiUint32 || ai == aiUint64:
			return TokenFloat, true
		case ai <= aiUint8:
			return TokenSimple, true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}

// IsLikelyJSON reports whether b looks like JSON text rather than
// CBOR. It is a heuristic, not a formal discriminator: it requires
// valid UTF-8 and a first non-whitespace byte from the JSON value
// grammar (object/array/string/number/true/false/null). Most CBOR
// payloads fail one of these checks and are classified as non-JSON.
func IsLikelyJSON(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ', '\n', '\r', '\t':
			i++
			continue
		}
		break
	}
	if i >= len(b) {
		return false
	}
	switch ch := b[i]; {
	case ch == '{' || ch == '[' || ch == '"' || ch == '-':
		return true
	case ch >= '0' && ch <= '9':
		return true
	case ch == 't' || ch == 'f' || ch == 'n':
		return true
	default:
		return false
	}
}
