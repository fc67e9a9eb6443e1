package world

import (
	"sort"

	"github.com/dshills/logicrando/pkg/bits"
)

// EntrancesInPool returns every entrance name whose EntranceDef.Pool
// equals pool, in registry insertion order — the candidate set the
// entrance randomizer (C8) shuffles and pairs with ExitsInPool(pool)
// (spec.md §4.8).
func (w *World) EntrancesInPool(pool string) []string {
	var out []string
	for name, info := range w.Entrances {
		if info.Pool == pool {
			out = append(out, name)
		}
	}
	// A Both entrance is registered as "Name (Day)"/"Name (Night)", not
	// under its plain name, so order by each entrance's first bit.
	firstBit := func(name string) bits.ID {
		info := w.Entrances[name]
		if info.Time == NightOnly {
			return info.NightBit
		}
		return info.DayBit
	}
	sort.Slice(out, func(i, j int) bool { return firstBit(out[i]) < firstBit(out[j]) })
	return out
}

// ExitsInPool returns every map-exit name whose ExitInfo.Pool equals
// pool, in registry insertion order.
func (w *World) ExitsInPool(pool string) []string {
	var out []string
	for name, info := range w.Exits {
		if info.Pool == pool {
			out = append(out, name)
		}
	}
	sortByRegistryOrder(w, out)
	return out
}

// sortByRegistryOrder pins names to the frozen registry's insertion
// order, matching spec.md §4.9's "iteration orders are pinned" rule —
// map iteration above is otherwise non-deterministic.
func sortByRegistryOrder(w *World, names []string) {
	sort.Slice(names, func(i, j int) bool {
		bi, _ := w.Registry.Lookup(names[i])
		bj, _ := w.Registry.Lookup(names[j])
		return bi < bj
	})
}
