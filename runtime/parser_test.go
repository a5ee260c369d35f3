package cbor

import "testing"

// feedAll drives tokens through a fresh Parser and returns the
// completed top-level value.
func feedAll(t *testing.T, limits ParserLimits, toks []Token) CBORValue {
	t.Helper()
	p := NewParser(limits)
	for i, tok := range toks {
		v, done, err := p.Consume(tok)
		if err != nil {
			t.Fatalf("token %d (%v): %v", i, tok.Kind, err)
		}
		if done {
			if i != len(toks)-1 {
				t.Fatalf("parser completed early at token %d of %d", i, len(toks))
			}
			return v
		}
	}
	t.Fatalf("parser never completed over %d tokens", len(toks))
	return CBORValue{}
}

func TestParserScalar(t *testing.T) {
	v := feedAll(t, DefaultParserLimits(), []Token{tokUint(42)})
	n, ok := v.Uint()
	if !ok || n.Uint64() != 42 {
		t.Fatalf("v = %+v", v)
	}
}

func TestParserDefiniteArray(t *testing.T) {
	toks := []Token{tokArray(3), tokUint(1), tokUint(2), tokUint(3)}
	v := feedAll(t, DefaultParserLimits(), toks)
	items, ok := v.ArrayItems()
	if !ok || len(items) != 3 {
		t.Fatalf("v = %+v", v)
	}
	for i, item := range items {
		n, _ := item.Uint()
		if n.Uint64() != uint64(i+1) {
			t.Fatalf("items[%d] = %+v", i, item)
		}
	}
}

func TestParserDefiniteMap(t *testing.T) {
	toks := []Token{
		tokMap(2),
		tokTstr([]byte("a")), tokUint(1),
		tokTstr([]byte("b")), tokUint(2),
	}
	v := feedAll(t, DefaultParserLimits(), toks)
	pairs, ok := v.MapPairs()
	if !ok || len(pairs) != 2 {
		t.Fatalf("v = %+v", v)
	}
	k0, _ := pairs[0].Key.Tstr()
	val0, _ := pairs[0].Value.Uint()
	if k0 != "a" || val0.Uint64() != 1 {
		t.Fatalf("pairs[0] = %+v", pairs[0])
	}
}

func TestParserNestedTag(t *testing.T) {
	toks := []Token{tokTag(1), tokUint(1363896240)}
	v := feedAll(t, DefaultParserLimits(), toks)
	num, child, ok := v.Tag()
	if !ok || num.Uint64() != 1 {
		t.Fatalf("v = %+v", v)
	}
	n, _ := child.Uint()
	if n.Uint64() != 1363896240 {
		t.Fatalf("child = %+v", child)
	}
}

func TestParserIndefiniteArray(t *testing.T) {
	toks := []Token{tokArrayX(), tokUint(1), tokUint(2), tokBreak()}
	v := feedAll(t, DefaultParserLimits(), toks)
	items, ok := v.ArrayItems()
	if !ok || len(items) != 2 {
		t.Fatalf("v = %+v", v)
	}
}

func TestParserIndefiniteMap(t *testing.T) {
	toks := []Token{tokMapX(), tokTstr([]byte("a")), tokUint(1), tokBreak()}
	v := feedAll(t, DefaultParserLimits(), toks)
	pairs, ok := v.MapPairs()
	if !ok || len(pairs) != 1 {
		t.Fatalf("v = %+v", v)
	}
}

func TestParserIndefiniteStringChunks(t *testing.T) {
	toks := []Token{tokBstrX(), tokBstr([]byte{1, 2}), tokBstr([]byte{3}), tokBreak()}
	v := feedAll(t, DefaultParserLimits(), toks)
	raw, ok := v.BstrBytes()
	if !ok {
		t.Fatalf("v = %+v", v)
	}
	want := []byte{1, 2, 3}
	if len(raw) != len(want) {
		t.Fatalf("raw = %v, want %v", raw, want)
	}
	for i := range want {
		if raw[i] != want[i] {
			t.Fatalf("raw = %v, want %v", raw, want)
		}
	}
}

func TestParserNestedContainers(t *testing.T) {
	// {"a": [1, 2]}
	toks := []Token{
		tokMap(1),
		tokTstr([]byte("a")),
		tokArray(2), tokUint(1), tokUint(2),
	}
	v := feedAll(t, DefaultParserLimits(), toks)
	pairs, _ := v.MapPairs()
	items, ok := pairs[0].Value.ArrayItems()
	if !ok || len(items) != 2 {
		t.Fatalf("v = %+v", v)
	}
}

func TestParserBreakWithoutContext(t *testing.T) {
	p := NewParser(DefaultParserLimits())
	_, _, err := p.Consume(tokBreak())
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParserTrailingInput(t *testing.T) {
	p := NewParser(DefaultParserLimits())
	_, done, err := p.Consume(tokUint(1))
	if err != nil || !done {
		t.Fatalf("first token: done=%v err=%v", done, err)
	}
	_, _, err = p.Consume(tokUint(2))
	if _, ok := err.(TrailingInputError); !ok {
		t.Fatalf("error = %v, want TrailingInputError", err)
	}
}

func TestParserStackLimit(t *testing.T) {
	p := NewParser(ParserLimits{MaxContextStack: 1})
	_, _, err := p.Consume(tokArray(1))
	if err != nil {
		t.Fatalf("first array: %v", err)
	}
	_, _, err = p.Consume(tokArray(1))
	if _, ok := err.(InsufficientStackSizeError); !ok {
		t.Fatalf("error = %v, want InsufficientStackSizeError", err)
	}
}

func TestParserMismatchedStringChunk(t *testing.T) {
	p := NewParser(DefaultParserLimits())
	if _, _, err := p.Consume(tokBstrX()); err != nil {
		t.Fatalf("open: %v", err)
	}
	_, _, err := p.Consume(tokTstr([]byte("oops")))
	if _, ok := err.(UnexpectedTokenError); !ok {
		t.Fatalf("error = %v, want UnexpectedTokenError", err)
	}
}
