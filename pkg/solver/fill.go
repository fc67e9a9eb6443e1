package solver

import (
	"github.com/dshills/logicrando/pkg/bits"
	"github.com/dshills/logicrando/pkg/reqs"
)

// FillInventory computes the least fixed point above start: repeat until
// a pass makes no change, adding every bit i not yet present whose
// requirement R[i] is satisfied by the inventory so far (spec.md §4.4).
// The naive O(bits × disjuncts) loop is the implementation spec.md
// explicitly says is acceptable at this size.
func FillInventory(vec *reqs.Vector, start bits.Inventory) bits.Inventory {
	full := start.Clone()
	width := vec.Len()

	for {
		changed := false
		for i := 0; i < width; i++ {
			id := bits.ID(i)
			if full.Has(id) {
				continue
			}
			if vec.Get(id).Eval(full) {
				full.Add(id)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return full
}

// AggregateRequiredItems computes fill_inventory(R, I) and then unions
// every disjunct of every reached bit's requirement (spec.md §4.4): the
// set of conjuncts that could plausibly have contributed to reachability,
// used to detect whether a specific item influences it at all.
func AggregateRequiredItems(vec *reqs.Vector, start bits.Inventory) bits.Inventory {
	full := FillInventory(vec, start)
	agg := bits.New(vec.Len())

	full.Each(func(id bits.ID) {
		for _, c := range vec.Get(id).Disjuncts() {
			agg = agg.Union(c)
		}
	})

	return agg
}
