package cbor

// DuplicateKeyError reports that CheckDuplicateKeys found two pairs in
// a Map sharing an equal key. CBORValue itself performs no
// deduplication at parse time (see MapPair's doc comment); this is an
// opt-in check for callers who want canonical-map validation.
type DuplicateKeyError struct {
	Key CBORValue
}

func (e DuplicateKeyError) Error() string { return "cbor: duplicate map key " + Diag(e.Key) }
func (e DuplicateKeyError) Resumable() bool { return true }

// CheckDuplicateKeys walks v and every value nested within it,
// reporting the first Map pair whose key equals an earlier pair's key
// in the same map. Comparison is by CBORValue.Equal, so a Uint(0) key
// and a distinct Uint(0) key collide, but Uint(0) and NInt-that-also-
// represents-zero (there is no such NInt encoding) never would.
func CheckDuplicateKeys(v CBORValue) error {
	switch v.Type() {
	case MapType:
		pairs, _ := v.MapPairs()
		for j := range pairs {
			for i := 0; i < j; i++ {
				if pairs[i].Key.Equal(pairs[j].Key) {
					return DuplicateKeyError{Key: pairs[j].Key}
				}
			}
			if err := CheckDuplicateKeys(pairs[j].Value); err != nil {
				return err
			}
		}
		for _, p := range pairs {
			if err := CheckDuplicateKeys(p.Key); err != nil {
				return err
			}
		}
	case ArrayType:
		items, _ := v.ArrayItems()
		for _, item := range items {
			if err := CheckDuplicateKeys(item); err != nil {
				return err
			}
		}
	case TagType:
		_, child, _ := v.TagChild()
		return CheckDuplicateKeys(*child)
	}
	return nil
}
