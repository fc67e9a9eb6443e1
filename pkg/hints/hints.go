package hints

import (
	"fmt"
	"sort"

	"github.com/dshills/logicrando/pkg/bits"
	"github.com/dshills/logicrando/pkg/logic"
	"github.com/dshills/logicrando/pkg/reqs"
	"github.com/dshills/logicrando/pkg/solver"
)

// DefaultTarget is the goal bit spec.md §4.10 names as get_sots_items'
// default argument. Callers pass "" to GetSotSItems to mean this.
const DefaultTarget = "Demise"

// BarrenReport is GetBarrenRegions' result: regions with no useful item
// for target but reachable, split from regions that are outright
// unreachable (spec.md §4.10: "minus regions that are outright
// inaccessible; split as (useful-absent-and-reachable, inaccessible)").
type BarrenReport struct {
	Barren       []string
	Inaccessible []string
}

func itemBits(l *logic.Logic) bits.Inventory {
	width := l.Vector().Len()
	out := bits.New(width)
	for _, copies := range l.Items() {
		for _, id := range copies {
			out.Add(id)
		}
	}
	return out
}

// GetSotSItems implements spec.md §4.10's get_sots_items (spheres of the
// way): for each item the finished placement has actually made obtainable
// (i.e. currently in full_inventory), test whether target becomes
// unreachable once that item's own bit is forced unobtainable everywhere
// — not merely absent from the starting inventory, since the item's own
// check would simply re-derive it on the very next solver pass otherwise.
// "Removing it" is a restricted_test (spec.md §4.4): the item's bit is
// set Impossible in a cloned Vector, then FillInventory runs from the
// current granted inventory with Banned and HintBypass force-added — the
// "no-ban view" (spec.md's Banned-bit mechanic note: oracles opt in to
// seeing banned checks by adding the bit to the query inventory) with
// HintBypass added per the Advanced-trial-hint Open Question (§9)
// resolution. Returns names in stable (registry bit id) order. Unlike
// pkg/solver.Solver.RestrictedTest, this does not memoize: GetSotSItems
// runs once per finished placement, not inside the fill hot loop, so the
// LRU cache's bookkeeping would cost more than it saves.
func GetSotSItems(l *logic.Logic, target string) ([]string, error) {
	if target == "" {
		target = DefaultTarget
	}
	reg := l.Registry()
	targetID, ok := reg.Lookup(target)
	if !ok {
		return nil, fmt.Errorf("hints: unknown SotS target %q", target)
	}
	width := l.Vector().Len()

	base := l.Inventory().Clone()
	base.Add(bits.Banned)
	base.Add(bits.HintBypass)

	items := itemBits(l)
	full := l.FullInventory()
	var candidates []bits.ID
	full.Each(func(id bits.ID) {
		if items.Has(id) {
			candidates = append(candidates, id)
		}
	})

	var out []string
	for _, id := range candidates {
		restricted := l.Vector().Clone()
		restricted.Set(id, reqs.Impossible(width))
		probe := solver.FillInventory(restricted, base)
		if !probe.Has(targetID) {
			out = append(out, reg.Name(id))
		}
	}
	return out, nil
}

// GetUsefulItems implements spec.md §4.10's get_useful_items: the
// aggregate union of conjuncts used to reach target from full_inventory,
// intersected with inventory items. Unlike pkg/solver.AggregateRequiredItems
// (which unions the disjuncts of every bit full_inventory has reached,
// regardless of target), this walks only the closure of bits target's own
// satisfied conjuncts actually depend on — recursing into each bit named
// by a satisfied conjunct and unioning its own satisfied conjuncts in
// turn — so two different targets (e.g. Demise vs. a specific trial's
// song check) can report different useful sets. A visited-set guards the
// recursion against the cyclic requirement graphs spec.md §9 calls out
// (entrance↔exit, sleep day↔night), matching the same "track visited, stay
// opaque on that branch" approach used elsewhere instead of a topological
// simplification.
func GetUsefulItems(l *logic.Logic, target string) ([]string, error) {
	reg := l.Registry()
	targetID, ok := reg.Lookup(target)
	if !ok {
		return nil, fmt.Errorf("hints: unknown target %q", target)
	}

	full := l.FullInventory()
	vec := l.Vector()
	width := vec.Len()
	agg := bits.New(width)
	visited := make(map[bits.ID]bool)

	var visit func(id bits.ID)
	visit = func(id bits.ID) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, conjunct := range vec.Get(id).Disjuncts() {
			if !conjunct.Subset(full) {
				continue
			}
			agg = agg.Union(conjunct)
			conjunct.Each(func(sub bits.ID) {
				if sub != id {
					visit(sub)
				}
			})
		}
	}
	visit(targetID)

	useful := agg.Intersect(itemBits(l))
	var out []string
	useful.Each(func(id bits.ID) {
		out = append(out, reg.Name(id))
	})
	return out, nil
}

// GetBarrenRegions implements spec.md §4.10's get_barren_regions: groups
// checks by their declared hint_region tag (World.HintRegion), then for
// each region reports whether it is outright unreachable, or reachable
// but holding no item GetUsefulItems(target) considers useful.
func GetBarrenRegions(l *logic.Logic, target string) (*BarrenReport, error) {
	useful, err := GetUsefulItems(l, target)
	if err != nil {
		return nil, err
	}
	usefulSet := make(map[string]bool, len(useful))
	for _, name := range useful {
		usefulSet[name] = true
	}

	checks := l.Checks()
	regionOf := l.HintRegions()
	full := l.FullInventory()

	type regionState struct {
		reachable bool
		hasUseful bool
	}
	states := make(map[string]*regionState)
	var order []string

	for checkName, region := range regionOf {
		if region == "" {
			continue
		}
		st, ok := states[region]
		if !ok {
			st = &regionState{}
			states[region] = st
			order = append(order, region)
		}
		if id, ok := checks[checkName]; ok && full.Has(id) {
			st.reachable = true
		}
		if item, ok := l.Placement().ItemAt(checkName); ok && usefulSet[item] {
			st.hasUseful = true
		}
	}
	sort.Strings(order)

	report := &BarrenReport{}
	for _, region := range order {
		st := states[region]
		if !st.reachable {
			report.Inaccessible = append(report.Inaccessible, region)
			continue
		}
		if !st.hasUseful {
			report.Barren = append(report.Barren, region)
		}
	}
	return report, nil
}

// CalculatePlaythroughProgressionSpheres implements spec.md §4.10's
// calculate_playthrough_progression_spheres: starting from the currently
// granted (non-derived) inventory, advances full_inventory one BFS wave
// at a time, collecting each wave's newly-satisfied checks, until a wave
// finds nothing new. Mirrors pkg/solver.FillInventory's saturation loop
// but reports the per-wave frontier instead of only the final fixed
// point.
func CalculatePlaythroughProgressionSpheres(l *logic.Logic) [][]string {
	vec := l.Vector()
	width := vec.Len()
	checks := l.Checks()

	nameByCheck := make(map[bits.ID]string, len(checks))
	for name, id := range checks {
		nameByCheck[id] = name
	}

	inv := l.Inventory().Clone()
	var spheres [][]string

	for {
		var newly []bits.ID
		for i := 0; i < width; i++ {
			id := bits.ID(i)
			if inv.Has(id) {
				continue
			}
			if vec.Get(id).Eval(inv) {
				newly = append(newly, id)
			}
		}
		if len(newly) == 0 {
			break
		}

		var names []string
		for _, id := range newly {
			inv.Add(id)
			if name, ok := nameByCheck[id]; ok {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			sort.Slice(names, func(i, j int) bool {
				return checks[names[i]] < checks[names[j]]
			})
			spheres = append(spheres, names)
		}
	}

	return spheres
}
