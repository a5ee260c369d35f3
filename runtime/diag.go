package cbor

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Diag renders v in RFC 8949 §8 diagnostic notation: the human
// readable text form used throughout the RFC's own examples (e.g.
// `{1: "a", 2: [1, 2, 3]}`), not a wire format.
func Diag(v CBORValue) string {
	var b strings.Builder
	writeDiag(&b, v)
	return b.String()
}

func writeDiag(b *strings.Builder, v CBORValue) {
	switch v.Type() {
	case UintType:
		n, _ := v.Uint()
		b.WriteString(strconv.FormatUint(n.Uint64(), 10))
	case NintType:
		n, _ := v.Nint()
		b.WriteString(strconv.FormatInt(-1-int64(n.Uint64()), 10))
	case BstrType:
		raw, _ := v.BstrBytes()
		b.WriteString("h'")
		b.WriteString(hex.EncodeToString(raw))
		b.WriteString("'")
	case TstrType:
		s, _ := v.Tstr()
		b.WriteString(strconv.Quote(s))
	case ArrayType:
		items, _ := v.ArrayItems()
		b.WriteString("[")
		for i, item := range items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDiag(b, item)
		}
		b.WriteString("]")
	case MapType:
		pairs, _ := v.MapPairs()
		b.WriteString("{")
		for i, p := range pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDiag(b, p.Key)
			b.WriteString(": ")
			writeDiag(b, p.Value)
		}
		b.WriteString("}")
	case TagType:
		num, child, _ := v.TagChild()
		b.WriteString(strconv.FormatUint(num.Uint64(), 10))
		b.WriteString("(")
		writeDiag(b, *child)
		b.WriteString(")")
	case SimpleType:
		s, _ := v.Simple()
		writeDiagSimple(b, s)
	case FloatType:
		f, ok := v.Widen()
		if !ok {
			b.WriteString("NaN")
			return
		}
		b.WriteString(formatFloatDiag(f))
	default:
		b.WriteString("undefined")
	}
}

func writeDiagSimple(b *strings.Builder, s byte) {
	switch s {
	case simpleFalse:
		b.WriteString("false")
	case simpleTrue:
		b.WriteString("true")
	case simpleNull:
		b.WriteString("null")
	case simpleUndefined:
		b.WriteString("undefined")
	default:
		b.WriteString("simple(")
		b.WriteString(strconv.Itoa(int(s)))
		b.WriteString(")")
	}
}

// formatFloatDiag matches the RFC examples' preference for
// fixed-point notation at ordinary magnitudes, falling back to
// scientific notation only once the fixed-point form would be
// unwieldy.
func formatFloatDiag(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, +1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	af := math.Abs(f)
	if af == 0 || af < 1e15 {
		return trimTrailingZerosDot(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func trimTrailingZerosDot(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}
