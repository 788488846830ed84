package domain

import "strings"

// NoSKUSentinel stands in for a missing or blank SKU so that such variants
// still get a stable identity. All blank-SKU variants of the same handle
// deliberately collapse to one identity.
const NoSKUSentinel = "NO_SKU"

// VariantKey is the deduplication identity of a variant row. Two rows with
// the same key are the same logical variant regardless of every other
// field, including price, which is computed rather than copied.
type VariantKey struct {
	Handle string
	SKU    string
}

// NewVariantKey builds a key from a handle and a raw SKU. Both sides are
// trimmed; a blank SKU becomes NoSKUSentinel.
func NewVariantKey(handle, sku string) VariantKey {
	s := strings.TrimSpace(sku)
	if s == "" {
		s = NoSKUSentinel
	}
	return VariantKey{Handle: strings.TrimSpace(handle), SKU: s}
}

// String renders the key in the "handle::sku" form used in log output.
func (k VariantKey) String() string {
	return k.Handle + "::" + k.SKU
}

// KeySet is the set of variant keys already persisted in a table.
type KeySet map[VariantKey]struct{}

// Contains reports whether the key is in the set.
func (s KeySet) Contains(k VariantKey) bool {
	_, ok := s[k]
	return ok
}

// Add inserts the key into the set.
func (s KeySet) Add(k VariantKey) {
	s[k] = struct{}{}
}
