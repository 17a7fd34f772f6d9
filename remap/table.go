// Package remap provides the content-addressed deduplicating caches
// behind the scene baker. Every cache maps a 64-bit fingerprint to a
// dense index assigned in first-insertion order.
package remap

// Table is a content-addressed cache. Equal fingerprints are treated as
// equal payloads with no fallback comparison; a 64-bit collision
// aliases two objects (accepted risk).
type Table[T any] struct {
	index map[Hash]uint32
	items []T
}

// Intern returns the index of the payload with the given fingerprint,
// constructing it on first insertion. The factory runs only on a miss.
func (t *Table[T]) Intern(h Hash, create func() T) uint32 {
	if i, ok := t.index[h]; ok {
		return i
	}
	if t.index == nil {
		t.index = make(map[Hash]uint32)
	}
	i := uint32(len(t.items))
	t.items = append(t.items, create())
	t.index[h] = i
	return i
}

// Lookup reports the index for a fingerprint without inserting.
func (t *Table[T]) Lookup(h Hash) (uint32, bool) {
	i, ok := t.index[h]
	return i, ok
}

func (t *Table[T]) Len() int {
	return len(t.items)
}

// At returns a pointer into the table, valid until the next Intern.
func (t *Table[T]) At(i uint32) *T {
	return &t.items[i]
}

// Items exposes the payloads in insertion order.
func (t *Table[T]) Items() []T {
	return t.items
}
