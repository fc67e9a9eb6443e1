package bits

import "testing"

func TestInventory_HasAddRemove(t *testing.T) {
	inv := New(64)
	if inv.Has(Day) {
		t.Fatal("fresh inventory should have no bits set")
	}

	inv.Add(Day)
	if !inv.Has(Day) {
		t.Fatal("Add should set the bit")
	}

	inv.Remove(Day)
	if inv.Has(Day) {
		t.Fatal("Remove should clear the bit")
	}
}

func TestInventory_WithWithoutAreValueOps(t *testing.T) {
	base := New(64)
	withDay := base.With(Day)

	if base.Has(Day) {
		t.Fatal("With must not mutate the receiver")
	}
	if !withDay.Has(Day) {
		t.Fatal("With must set the bit on the returned value")
	}

	withoutDay := withDay.Without(Day)
	if !withDay.Has(Day) {
		t.Fatal("Without must not mutate the receiver")
	}
	if withoutDay.Has(Day) {
		t.Fatal("Without must clear the bit on the returned value")
	}
}

func TestInventory_UnionIntersect(t *testing.T) {
	a := New(64).With(Day).With(Banned)
	b := New(64).With(Night).With(Banned)

	union := a.Union(b)
	for _, id := range []ID{Day, Night, Banned} {
		if !union.Has(id) {
			t.Errorf("union missing bit %d", id)
		}
	}

	inter := a.Intersect(b)
	if !inter.Has(Banned) {
		t.Error("intersection missing shared bit Banned")
	}
	if inter.Has(Day) || inter.Has(Night) {
		t.Error("intersection should not contain bits unique to one operand")
	}
}

func TestInventory_Subset(t *testing.T) {
	small := New(64).With(Day)
	big := New(64).With(Day).With(Night)

	if !small.Subset(big) {
		t.Error("small should be a subset of big")
	}
	if big.Subset(small) {
		t.Error("big should not be a subset of small")
	}

	equalA := New(64).With(Day)
	equalB := New(64).With(Day)
	if !equalA.Subset(equalB) || !equalB.Subset(equalA) {
		t.Error("equal inventories must be mutual subsets")
	}
}

func TestInventory_Equal(t *testing.T) {
	a := New(64).With(Day).With(Night)
	b := New(64).With(Night).With(Day)
	c := New(64).With(Day)

	if !a.Equal(b) {
		t.Error("inventories with the same bits, added in different order, must be equal")
	}
	if a.Equal(c) {
		t.Error("inventories with different bits must not be equal")
	}
}

func TestInventory_CloneIsIndependent(t *testing.T) {
	a := New(64).With(Day)
	b := a.Clone()
	b.Add(Night)

	if a.Has(Night) {
		t.Fatal("mutating a clone must not affect the original")
	}
	if !b.Has(Day) || !b.Has(Night) {
		t.Fatal("clone should retain original bits plus the new one")
	}
}

func TestInventory_EachAndSlice(t *testing.T) {
	inv := New(64).With(Day).With(Everything).With(HintBypass)

	seen := map[ID]bool{}
	inv.Each(func(id ID) { seen[id] = true })

	for _, id := range []ID{Day, Everything, HintBypass} {
		if !seen[id] {
			t.Errorf("Each did not visit bit %d", id)
		}
	}
	if len(seen) != 3 {
		t.Errorf("Each visited %d bits, want 3", len(seen))
	}

	slice := inv.Slice()
	if len(slice) != 3 {
		t.Errorf("Slice() = %v, want 3 elements", slice)
	}
	for i := 1; i < len(slice); i++ {
		if slice[i-1] >= slice[i] {
			t.Errorf("Slice() not sorted: %v", slice)
		}
	}
}

func TestInventory_CountLen(t *testing.T) {
	inv := New(128)
	if inv.Len() != 128 {
		t.Errorf("Len() = %d, want 128", inv.Len())
	}
	inv.Add(Day)
	inv.Add(Night)
	if inv.Count() != 2 {
		t.Errorf("Count() = %d, want 2", inv.Count())
	}
}
