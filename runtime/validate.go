package cbor

// ValidateWellFormed reports whether b is exactly one well-formed CBOR
// data item and nothing else: it drives a Scanner and Parser to
// completion and fails if any trailing bytes remain. It performs no
// canonical-encoding checks (shortest-form arguments, sorted map
// keys) — only RFC 8949's well-formedness, i.e. that the byte stream
// parses to a complete value at all.
func ValidateWellFormed(b []byte) error {
	_, rest, err := DecodeValue(b, DefaultScannerLimits(), DefaultParserLimits())
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return TrailingInputError{}
	}
	return nil
}
