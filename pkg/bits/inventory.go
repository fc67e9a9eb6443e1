package bits

import (
	"github.com/bits-and-blooms/bitset"
)

// Inventory is a fixed-width bitset over a Registry's bits, representing
// obtained items, reached areas, time-of-day, and enabled options
// uniformly. Inventories are values with structural equality: two
// Inventory values are Equal iff they contain the same set of bits,
// regardless of how each was constructed.
//
// The zero value is not usable; construct one with New.
type Inventory struct {
	set *bitset.BitSet
}

// New returns an empty Inventory sized to hold n bits (typically
// Registry.Len() of a frozen registry).
func New(n int) Inventory {
	return Inventory{set: bitset.New(uint(n))}
}

// Has reports whether bit is present in the inventory. This is the O(1)
// membership test spec.md §4.1 requires.
func (inv Inventory) Has(bit ID) bool {
	return inv.set.Test(uint(bit))
}

// With returns a new Inventory equal to inv with bit added. inv itself is
// left unchanged.
func (inv Inventory) With(bit ID) Inventory {
	out := inv.set.Clone()
	out.Set(uint(bit))
	return Inventory{set: out}
}

// Without returns a new Inventory equal to inv with bit removed. inv
// itself is left unchanged.
func (inv Inventory) Without(bit ID) Inventory {
	out := inv.set.Clone()
	out.Clear(uint(bit))
	return Inventory{set: out}
}

// Add mutates inv in place, setting bit. Callers that need value
// semantics should use With; Add exists for the fixed-point solver's hot
// loop, which owns its working inventory exclusively and would otherwise
// pay an O(n) clone per newly-derived bit.
func (inv Inventory) Add(bit ID) {
	inv.set.Set(uint(bit))
}

// Remove mutates inv in place, clearing bit. See Add for why a mutating
// variant exists alongside the value-returning Without.
func (inv Inventory) Remove(bit ID) {
	inv.set.Clear(uint(bit))
}

// Union returns a new Inventory containing every bit set in inv or in
// other.
func (inv Inventory) Union(other Inventory) Inventory {
	return Inventory{set: inv.set.Union(other.set)}
}

// Intersect returns a new Inventory containing only the bits set in both
// inv and other.
func (inv Inventory) Intersect(other Inventory) Inventory {
	return Inventory{set: inv.set.Intersection(other.set)}
}

// Subset reports whether inv ⊆ other, i.e. every bit set in inv is also
// set in other, defined as inv|other == other; computing it that way
// (rather than trusting a library IsSuperSet, whose exact polarity is
// easy to get backwards) keeps the semantics unambiguous.
func (inv Inventory) Subset(other Inventory) bool {
	return inv.set.Union(other.set).Equal(other.set)
}

// Equal reports structural equality: inv and other contain exactly the
// same bits.
func (inv Inventory) Equal(other Inventory) bool {
	return inv.set.Equal(other.set)
}

// Clone returns an independent copy of inv.
func (inv Inventory) Clone() Inventory {
	return Inventory{set: inv.set.Clone()}
}

// Len returns the width of the inventory (the registry size it was built
// against).
func (inv Inventory) Len() int {
	return int(inv.set.Len())
}

// Count returns the number of bits currently set.
func (inv Inventory) Count() int {
	return int(inv.set.Count())
}

// Each calls fn once for every set bit, in ascending order. It is the
// iteration primitive used by aggregation and hint queries; callers on a
// hot path should prefer Has for single-bit tests.
func (inv Inventory) Each(fn func(ID)) {
	for i, ok := inv.set.NextSet(0); ok; i, ok = inv.set.NextSet(i + 1) {
		fn(ID(i))
		if i == ^uint(0) {
			break
		}
	}
}

// Slice returns the set bits as a sorted slice. Prefer Each when only
// iterating; Slice is for callers (tests, hint oracle snapshots) that need
// a concrete, orderable collection.
func (inv Inventory) Slice() []ID {
	out := make([]ID, 0, inv.Count())
	inv.Each(func(id ID) { out = append(out, id) })
	return out
}
