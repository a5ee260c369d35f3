package cbor

// Int64 returns the represented integer as an int64 if v is a Uint or
// NInt and the value fits, an IntOverflow error if it does not fit,
// or a TypeError if v is any other variant.
func (v CBORValue) Int64() (int64, error) {
	switch v.Type() {
	case UintType:
		n, _ := v.Uint()
		u := n.Uint64()
		if u > 1<<63-1 {
			return 0, IntOverflow{Value: int64(u), FailedBitSize: 64}
		}
		return int64(u), nil
	case NintType:
		n, _ := v.Nint()
		u := n.Uint64()
		if u >= 1<<63 {
			return 0, IntOverflow{FailedBitSize: 64}
		}
		return -1 - int64(u), nil
	default:
		return 0, TypeError{Method: NintType, Actual: v.Type()}
	}
}

// Uint64 returns the represented integer as a uint64 if v is a Uint,
// or a TypeError if v is an NInt (NInt never represents a
// non-negative integer) or any other variant.
func (v CBORValue) Uint64() (uint64, error) {
	n, ok := v.Uint()
	if !ok {
		return 0, TypeError{Method: UintType, Actual: v.Type()}
	}
	return n.Uint64(), nil
}

// Int32 returns the represented integer as an int32 if it fits.
func (v CBORValue) Int32() (int32, error) {
	n, err := v.Int64()
	if err != nil {
		return 0, err
	}
	if n < -(1<<31) || n > 1<<31-1 {
		return 0, IntOverflow{Value: n, FailedBitSize: 32}
	}
	return int32(n), nil
}

// Uint32 returns the represented integer as a uint32 if it fits.
func (v CBORValue) Uint32() (uint32, error) {
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if n > 1<<32-1 {
		return 0, UintOverflow{Value: n, FailedBitSize: 32}
	}
	return uint32(n), nil
}
