package cbor

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
)

// ToJSON projects v onto JSON text. The mapping is lossy and
// necessarily so, since JSON has no byte-string, tag, or undefined
// type and only one integer/float number type:
//
//   - Uint/Nint become JSON numbers (losing the NInt/UInt distinction
//     RFC 8949 itself treats as purely a wire-encoding optimization).
//   - Bstr becomes a JSON string of standard base64, matching the
//     convention used by encoding/json's own []byte handling.
//   - Tag becomes {"tag": N, "value": <projected child>}; this package
//     does not interpret tag semantics (see the package doc comment),
//     so there is no special-casing of well-known tags here.
//   - Simple(false/true/null/undefined) become their JSON equivalents
//     (undefined maps to null, JSON having no fourth nil-like value);
//     any other simple value becomes a JSON number of its payload.
//   - Map keys that are not Tstr are projected through Diag and used
//     as the JSON object key, since JSON object keys must be strings.
func ToJSON(v CBORValue) string {
	var b strings.Builder
	writeJSON(&b, v)
	return b.String()
}

func writeJSON(b *strings.Builder, v CBORValue) {
	switch v.Type() {
	case UintType:
		n, _ := v.Uint()
		b.WriteString(strconv.FormatUint(n.Uint64(), 10))
	case NintType:
		n, _ := v.Nint()
		b.WriteString(strconv.FormatInt(-1-int64(n.Uint64()), 10))
	case BstrType:
		raw, _ := v.BstrBytes()
		writeJSONString(b, base64.StdEncoding.EncodeToString(raw))
	case TstrType:
		s, _ := v.Tstr()
		writeJSONString(b, s)
	case ArrayType:
		items, _ := v.ArrayItems()
		b.WriteString("[")
		for i, item := range items {
			if i > 0 {
				b.WriteString(",")
			}
			writeJSON(b, item)
		}
		b.WriteString("]")
	case MapType:
		pairs, _ := v.MapPairs()
		b.WriteString("{")
		for i, p := range pairs {
			if i > 0 {
				b.WriteString(",")
			}
			writeJSON(b, jsonKey(p.Key))
			b.WriteString(":")
			writeJSON(b, p.Value)
		}
		b.WriteString("}")
	case TagType:
		num, child, _ := v.TagChild()
		b.WriteString(`{"tag":`)
		b.WriteString(strconv.FormatUint(num.Uint64(), 10))
		b.WriteString(`,"value":`)
		writeJSON(b, *child)
		b.WriteString("}")
	case SimpleType:
		s, _ := v.Simple()
		switch s {
		case simpleFalse:
			b.WriteString("false")
		case simpleTrue:
			b.WriteString("true")
		case simpleNull, simpleUndefined:
			b.WriteString("null")
		default:
			b.WriteString(strconv.Itoa(int(s)))
		}
	case FloatType:
		f, ok := v.Widen()
		if !ok {
			b.WriteString("null")
			return
		}
		writeJSONFloat(b, f)
	default:
		b.WriteString("null")
	}
}

// jsonKey coerces a non-Tstr map key to a Tstr so it can serve as a
// JSON object key, rendering it through Diag for a readable, if lossy,
// string form.
func jsonKey(k CBORValue) CBORValue {
	if k.IsTstr() {
		return k
	}
	return NewTstr([]byte(Diag(k)))
}

func writeJSONString(b *strings.Builder, s string) {
	out, _ := json.Marshal(s)
	b.Write(out)
}

func writeJSONFloat(b *strings.Builder, f float64) {
	out, err := json.Marshal(f)
	if err != nil {
		// NaN/Inf have no JSON representation; null is the closest fit.
		b.WriteString("null")
		return
	}
	b.Write(out)
}
