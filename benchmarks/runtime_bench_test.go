package benchmarks

import (
	"testing"

	cbor "github.com/glvi/cbor/runtime"
)

// Decode microbenchmarks over representative shapes: a scalar, a flat
// array, and a map, plus a worst-case byte-at-a-time feed to measure
// the Scanner's per-byte overhead in isolation from Parser cost.

func BenchmarkDecodeUint(b *testing.B) {
	msg := []byte{0x1a, 0x00, 0x01, 0x00, 0x00} // uint32(65536)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cbor.Decode(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeArray(b *testing.B) {
	msg := buildArray(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cbor.Decode(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeMap(b *testing.B) {
	msg := buildMap(50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cbor.Decode(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScanByteAtATime(b *testing.B) {
	msg := buildArray(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := cbor.NewScanner(cbor.DefaultScannerLimits())
		for _, c := range msg {
			if _, _, err := s.Feed(c); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// buildArray hand-assembles a definite-length array of n small uints,
// avoiding any dependency on an encoder this package doesn't have.
func buildArray(n int) []byte {
	out := arrayHeader(n)
	for i := 0; i < n; i++ {
		out = append(out, uintItem(uint64(i))...)
	}
	return out
}

func buildMap(n int) []byte {
	out := mapHeader(n)
	for i := 0; i < n; i++ {
		out = append(out, uintItem(uint64(i))...)
		out = append(out, uintItem(uint64(i*2))...)
	}
	return out
}

func arrayHeader(n int) []byte { return countHeader(0x80, n) }
func mapHeader(n int) []byte   { return countHeader(0xa0, n) }

func countHeader(major byte, n int) []byte {
	if n <= 23 {
		return []byte{major | byte(n)}
	}
	return []byte{major | 24, byte(n)}
}

func uintItem(n uint64) []byte {
	if n <= 23 {
		return []byte{byte(n)}
	}
	return []byte{24, byte(n)}
}
