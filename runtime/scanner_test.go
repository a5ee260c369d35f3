package cbor

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// scanOne drives a fresh Scanner over b one byte at a time and
// returns the first completed token plus how many bytes it consumed.
func scanOne(t *testing.T, b []byte) (Token, int) {
	t.Helper()
	s := NewScanner(DefaultScannerLimits())
	for i, c := range b {
		tok, complete, err := s.Feed(c)
		if err != nil {
			t.Fatalf("Feed error at byte %d: %v", i, err)
		}
		if complete {
			return tok, i + 1
		}
	}
	t.Fatalf("scanner never completed a token over %x", b)
	return Token{}, 0
}

func TestScannerDirectValues(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		kind TokenKind
		n    uint64
	}{
		{"uint-direct", "00", TokenUint, 0},
		{"uint-23", "17", TokenUint, 23},
		{"uint8", "1818", TokenUint, 24},
		{"uint16", "190100", TokenUint, 256},
		{"uint32", "1a00010000", TokenUint, 65536},
		{"uint64", "1b0000000100000000", TokenUint, 1 << 32},
		{"nint-minus-1", "20", TokenNint, 0},
		{"nint-minus-24", "37", TokenNint, 23},
		{"tag-epoch", "c1", TokenTag, 1},
		{"simple-false", "f4", TokenSimple, 20},
		{"simple-true", "f5", TokenSimple, 21},
		{"array0", "80", TokenArray, 0},
		{"map0", "a0", TokenMap, 0},
		{"bstr0", "40", TokenBstr, 0},
		{"tstr0", "60", TokenTstr, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tok, n := scanOne(t, mustHex(t, c.hex))
			if tok.Kind != c.kind {
				t.Fatalf("kind = %v, want %v", tok.Kind, c.kind)
			}
			if n != len(mustHex(t, c.hex)) {
				t.Fatalf("consumed %d bytes, want %d", n, len(mustHex(t, c.hex)))
			}
			switch c.kind {
			case TokenUint, TokenNint, TokenTag, TokenArray, TokenMap:
				if tok.U64.Uint64() != c.n {
					t.Fatalf("value = %d, want %d", tok.U64.Uint64(), c.n)
				}
			case TokenSimple:
				if uint64(tok.Byte) != c.n {
					t.Fatalf("simple = %d, want %d", tok.Byte, c.n)
				}
			}
		})
	}
}

func TestScannerBstrPayload(t *testing.T) {
	tok, n := scanOne(t, mustHex(t, "43010203"))
	if tok.Kind != TokenBstr {
		t.Fatalf("kind = %v", tok.Kind)
	}
	if !bytes.Equal(tok.Bytes, []byte{1, 2, 3}) {
		t.Fatalf("bytes = %x", tok.Bytes)
	}
	if n != 4 {
		t.Fatalf("consumed %d bytes", n)
	}
}

func TestScannerTstrPayload(t *testing.T) {
	tok, _ := scanOne(t, mustHex(t, "6161"))
	if tok.Kind != TokenTstr || string(tok.Bytes) != "a" {
		t.Fatalf("tok = %+v", tok)
	}
}

func TestScannerIndefiniteOpeners(t *testing.T) {
	cases := []struct {
		hex  string
		kind TokenKind
	}{
		{"5f", TokenBstrX},
		{"7f", TokenTstrX},
		{"9f", TokenArrayX},
		{"bf", TokenMapX},
		{"ff", TokenBreak},
	}
	for _, c := range cases {
		tok, n := scanOne(t, mustHex(t, c.hex))
		if tok.Kind != c.kind || n != 1 {
			t.Fatalf("%s: tok = %+v, n = %d", c.hex, tok, n)
		}
	}
}

func TestScannerFloatWidths(t *testing.T) {
	cases := []struct {
		hex   string
		width int
	}{
		{"f93c00", 2}, // 1.0 as float16
		{"fa3f800000", 4},
		{"fb3ff0000000000000", 8},
	}
	for _, c := range cases {
		tok, _ := scanOne(t, mustHex(t, c.hex))
		if tok.Kind != TokenFloat {
			t.Fatalf("%s: kind = %v", c.hex, tok.Kind)
		}
		if tok.Width != c.width {
			t.Fatalf("%s: width = %d, want %d", c.hex, tok.Width, c.width)
		}
	}
}

func TestScannerUnexpectedHead(t *testing.T) {
	s := NewScanner(DefaultScannerLimits())
	_, _, err := s.Feed(0x1c) // major 0, additional info 28: reserved
	if err == nil {
		t.Fatal("expected an error")
	}
	var headErr UnexpectedHeadError
	if !asUnexpectedHead(err, &headErr) {
		t.Fatalf("error = %v, want UnexpectedHeadError", err)
	}
	// the scanner resets to Head after an error
	if s.State() != (ScanState{}) {
		t.Fatalf("scanner state not reset after error")
	}
}

func asUnexpectedHead(err error, out *UnexpectedHeadError) bool {
	e, ok := err.(UnexpectedHeadError)
	if ok {
		*out = e
	}
	return ok
}

func TestScannerExcessiveCap(t *testing.T) {
	limits := ScannerLimits{MaxBstrLen: 2}
	s := NewScanner(limits)
	b := mustHex(t, "43010203") // bstr of length 3
	var gotErr error
	for _, c := range b {
		_, _, err := s.Feed(c)
		if err != nil {
			gotErr = err
			break
		}
	}
	if gotErr == nil {
		t.Fatal("expected ExcessiveError")
	}
	if _, ok := gotErr.(ExcessiveError); !ok {
		t.Fatalf("error = %v, want ExcessiveError", gotErr)
	}
}

// TestScanStepChunkInvariance checks that scanning the same bytes
// produces the same sequence of tokens regardless of how the input is
// split across Scan calls — the core resumability property the
// Scanner exists to guarantee.
func TestScanStepChunkInvariance(t *testing.T) {
	msg := mustHex(t, "a26161016162820203") // {"a": 1, "b": [2, 3]}

	whole := scanAll(t, msg, len(msg)+1)
	oneAtATime := scanAll(t, msg, 1)

	if len(whole) != len(oneAtATime) {
		t.Fatalf("token count differs: %d vs %d", len(whole), len(oneAtATime))
	}
	for i := range whole {
		if whole[i].Kind != oneAtATime[i].Kind {
			t.Fatalf("token %d kind differs: %v vs %v", i, whole[i].Kind, oneAtATime[i].Kind)
		}
		if whole[i].U64.Uint64() != oneAtATime[i].U64.Uint64() {
			t.Fatalf("token %d value differs", i)
		}
		if !bytes.Equal(whole[i].Bytes, oneAtATime[i].Bytes) {
			t.Fatalf("token %d bytes differ", i)
		}
	}
}

// scanAll scans msg to completion using a Scanner fed chunkSize bytes
// at a time, returning every token produced.
func scanAll(t *testing.T, msg []byte, chunkSize int) []Token {
	t.Helper()
	s := NewScanner(DefaultScannerLimits())
	var toks []Token
	for len(msg) > 0 {
		n := chunkSize
		if n > len(msg) {
			n = len(msg)
		}
		chunk := msg[:n]
		msg = msg[n:]
		for len(chunk) > 0 {
			tok, rest, complete, err := s.Scan(chunk)
			if err != nil {
				t.Fatalf("scan error: %v", err)
			}
			chunk = rest
			if complete {
				toks = append(toks, tok)
			}
		}
	}
	return toks
}
