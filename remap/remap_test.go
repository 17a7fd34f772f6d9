package remap

import "testing"

func TestTableInternAssignsDenseIndices(t *testing.T) {
	var table Table[string]

	values := []struct {
		hash Hash
		in   string
		out  uint32
	}{
		{1, "a", 0},
		{2, "b", 1},
		{1, "ignored", 0},
		{3, "c", 2},
		{2, "ignored", 1},
	}

	for _, test := range values {
		index := table.Intern(test.hash, func() string { return test.in })
		if index != test.out {
			t.Errorf("Intern(%d)=%d; expected %d", test.hash, index, test.out)
		}
	}

	if table.Len() != 3 {
		t.Errorf("Len()=%d; expected 3", table.Len())
	}
	expected := []string{"a", "b", "c"}
	for i, item := range table.Items() {
		if item != expected[i] {
			t.Errorf("Items()[%d]=%q; expected %q", i, item, expected[i])
		}
	}
}

func TestTableFactoryRunsOnlyOnMiss(t *testing.T) {
	var table Table[int]
	calls := 0
	create := func() int { calls++; return calls }

	table.Intern(7, create)
	table.Intern(7, create)
	if calls != 1 {
		t.Errorf("factory ran %d times; expected 1", calls)
	}
}

func TestHasherFieldOrderMatters(t *testing.T) {
	a := NewHasher()
	a.U32(1)
	a.U32(2)
	b := NewHasher()
	b.U32(2)
	b.U32(1)
	if a.Sum() == b.Sum() {
		t.Error("swapped field order produced the same fingerprint")
	}
}

func TestHasherSeparatorsPreventAliasing(t *testing.T) {
	// Without separators, ("ab", "c") and ("a", "bc") would hash the
	// same byte stream.
	a := NewHasher()
	a.Data([]byte("ab"))
	a.U32(0xff)
	a.Data([]byte("c"))

	b := NewHasher()
	b.Data([]byte("a"))
	b.U32(0xff)
	b.Data([]byte("bc"))

	if a.Sum() == b.Sum() {
		t.Error("separator did not split the concatenated streams")
	}
}

func TestHasherStringsAreLengthPrefixed(t *testing.T) {
	a := NewHasher()
	a.Str("ab")
	a.Str("c")

	b := NewHasher()
	b.Str("a")
	b.Str("bc")

	if a.Sum() == b.Sum() {
		t.Error("adjacent strings aliased each other")
	}
}

func TestHasherDeterminism(t *testing.T) {
	build := func() Hash {
		h := NewHasher()
		h.U32(42)
		h.F32(1.5)
		h.Bool(true)
		h.Str("granite")
		h.Data([]byte{1, 2, 3})
		return h.Sum()
	}
	if build() != build() {
		t.Error("identical field streams produced different fingerprints")
	}
}
