package cbor

// DecodeValue is the package's whole-buffer convenience entry point:
// it drives a fresh Scanner and Parser over b, stopping as soon as one
// top-level CBORValue is complete, and returns that value along with
// the unconsumed remainder of b. It is built entirely on the exported
// Scanner/Parser API below; callers with their own chunking or
// resumption needs should drive those directly instead.
func DecodeValue(b []byte, scanLimits ScannerLimits, parseLimits ParserLimits) (CBORValue, []byte, error) {
	scanner := NewScanner(scanLimits)
	parser := NewParser(parseLimits)

	for {
		tok, rest, complete, err := scanner.Scan(b)
		if err != nil {
			if se, ok := err.(ScanError); ok {
				return CBORValue{}, b, ScannerError{Cause: se}
			}
			return CBORValue{}, b, err
		}
		if !complete {
			return CBORValue{}, b, UnexpectedEOFError{}
		}
		b = rest

		v, done, err := parser.Consume(tok)
		if err != nil {
			return CBORValue{}, b, err
		}
		if done {
			return v, b, nil
		}
	}
}

// Decode decodes exactly one CBOR data item from b using the default
// limits, and reports TrailingInputError if bytes remain afterward.
// Use DecodeValue directly to decode one item out of a larger buffer
// (e.g. a CBOR sequence) without that check.
func Decode(b []byte) (CBORValue, error) {
	v, rest, err := DecodeValue(b, DefaultScannerLimits(), DefaultParserLimits())
	if err != nil {
		return CBORValue{}, err
	}
	if len(rest) != 0 {
		return CBORValue{}, TrailingInputError{}
	}
	return v, nil
}

// DecodeSequence decodes b as a CBOR sequence (RFC 8742): zero or more
// concatenated top-level data items with no envelope between them. An
// empty b decodes to a zero-length, non-nil slice.
func DecodeSequence(b []byte) ([]CBORValue, error) {
	values := make([]CBORValue, 0)
	for len(b) > 0 {
		v, rest, err := DecodeValue(b, DefaultScannerLimits(), DefaultParserLimits())
		if err != nil {
			return values, err
		}
		values = append(values, v)
		b = rest
	}
	return values, nil
}
