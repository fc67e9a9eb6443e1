package logic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/logicrando/pkg/bits"
	"github.com/dshills/logicrando/pkg/placement"
	"github.com/dshills/logicrando/pkg/reqs"
	"github.com/dshills/logicrando/pkg/solver"
	"github.com/dshills/logicrando/pkg/world"
)

// Logic is the mutable façade spec.md §4.6 describes: a requirement
// vector cloned from a frozen World, the inventory of items currently
// granted, a monotonically re-saturated full_inventory cache, and the
// Placement store every location/item/exit/entrance mutation keeps in
// lock-step.
type Logic struct {
	w         *world.World
	vec       *reqs.Vector
	inventory bits.Inventory
	full      bits.Inventory
	placement *placement.Placement
}

// New builds a Logic over w, seeded with p's starting items and granting
// them immediately (spec.md §4.6's mutators assume full_inventory is
// always up to date).
func New(w *world.World, p *placement.Placement) *Logic {
	width := w.Registry.Len()
	l := &Logic{
		w:         w,
		vec:       w.Vector.Clone(),
		inventory: bits.New(width),
		placement: p,
	}
	for _, item := range p.StartingItems() {
		if id, ok := w.Registry.Lookup(item); ok {
			l.inventory.Add(id)
		}
	}
	l.resaturate()
	return l
}

// Registry exposes the frozen bit registry backing this Logic's World, for
// callers (pkg/fill) that need to resolve a name to a bit directly.
func (l *Logic) Registry() *bits.Registry { return l.w.Registry }

// Vector exposes the live requirement vector, for read-only queries
// (pkg/hints, pkg/fill, pkg/invariants) and pkg/rando's direct Set/Or
// overrides of free and end-game bits.
func (l *Logic) Vector() *reqs.Vector { return l.vec }

// Placement exposes the live placement store.
func (l *Logic) Placement() *placement.Placement { return l.placement }

// Checks exposes the frozen "Area/Location" → bit address space, for
// callers (pkg/hints) that need to name checks directly from a bit id
// rather than only query accessibility by prefix.
func (l *Logic) Checks() map[string]bits.ID { return l.w.Checks }

// Items exposes the frozen item-name → copy-bits table, for callers
// (pkg/hints) that need to tell an item bit apart from a location, area,
// or option bit.
func (l *Logic) Items() map[string][]bits.ID { return l.w.Items }

// HintRegions exposes each check's declared hint_region tag, for
// pkg/hints' barren-region query.
func (l *Logic) HintRegions() map[string]string { return l.w.HintRegion }

// Exits exposes the frozen map-exit table, for callers (pkg/invariants)
// checking that every shuffled exit belongs to a randomization pool.
func (l *Logic) Exits() map[string]world.ExitInfo { return l.w.Exits }

// Entrances exposes the frozen entrance table, for callers
// (pkg/invariants) checking that every shuffled entrance belongs to a
// randomization pool.
func (l *Logic) Entrances() map[string]world.EntranceInfo { return l.w.Entrances }

// FullInventory returns the current cached fill_inventory(R, I).
func (l *Logic) FullInventory() bits.Inventory { return l.full }

// Inventory returns the currently granted (non-derived) items.
func (l *Logic) Inventory() bits.Inventory { return l.inventory }

func (l *Logic) resaturate() {
	l.full = solver.FillInventory(l.vec, l.inventory)
}

func (l *Logic) bitFor(name string) (bits.ID, error) {
	id, ok := l.w.Registry.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("logic: unknown bit %q", name)
	}
	return id, nil
}

// AddItem grants item to the inventory and re-saturates full_inventory.
func (l *Logic) AddItem(item string) error {
	id, err := l.bitFor(item)
	if err != nil {
		return err
	}
	l.inventory.Add(id)
	l.resaturate()
	return nil
}

// RemoveItem revokes item from the inventory and re-saturates
// full_inventory from scratch (a removal can shrink full_inventory, so the
// fresh fill must start from the current inventory alone, not the stale
// cached one).
func (l *Logic) RemoveItem(item string) error {
	id, err := l.bitFor(item)
	if err != nil {
		return err
	}
	l.inventory.Remove(id)
	l.resaturate()
	return nil
}

// PlaceItem installs a fresh location assignment loc ← item (spec.md
// §4.6): it fails with the Placement store's AlreadyTaken/AlreadyPlaced
// errors if either side is already occupied. On success, item's bit
// requirement becomes "reachable exactly when loc's check bit is", its
// opaque flag clears, and full_inventory is re-saturated.
func (l *Logic) PlaceItem(loc, item string) error {
	if err := l.placement.PlaceItem(loc, item); err != nil {
		return err
	}
	return l.installAssignment(loc, item)
}

// ReplaceItem atomically evicts whatever item previously occupied loc (and
// whatever location item previously occupied) before installing the new
// loc ← item assignment. The evicted item's bit reverts to Impossible and
// opaque (spec.md §4.6: "restore R[item] = Impossible before reapplying"),
// since it is once again unplaced.
func (l *Logic) ReplaceItem(loc, item string) error {
	evicted, hadPrior := l.placement.ItemAt(loc)
	l.placement.ReplaceItem(loc, item)

	if hadPrior && evicted != item {
		evictedBit, err := l.bitFor(evicted)
		if err != nil {
			return err
		}
		width := l.vec.Len()
		l.vec.Set(evictedBit, reqs.Impossible(width))
		l.vec.SetOpaque(evictedBit, true)
	}
	return l.installAssignment(loc, item)
}

func (l *Logic) installAssignment(loc, item string) error {
	locBit, err := l.bitFor(loc)
	if err != nil {
		return err
	}
	itemBit, err := l.bitFor(item)
	if err != nil {
		return err
	}
	width := l.vec.Len()
	l.vec.Set(itemBit, reqs.Atom(width, locBit))
	l.vec.SetOpaque(itemBit, false)
	l.resaturate()
	return nil
}

// PlaceJunk records a logic-irrelevant duplicable item at loc (spec.md
// §4.9 step 4). Unlike PlaceItem, it does not touch the requirement vector
// or re-saturate: junk items carry no bit identity, so they cannot gate
// anything.
func (l *Logic) PlaceJunk(loc, item string) error {
	return l.placement.PlaceJunk(loc, item)
}

// LinkExit installs an entrance pairing exit → entrance (spec.md §4.6): it
// computes the gated day/night disjunct(s) from the time-of-day matrix and
// ORs them into the entrance's bit requirement(s), clearing opaque on
// whichever entrance bit(s) gained a disjunct. It fails with the
// Placement store's AlreadyTaken/AlreadyPlaced errors if either side is
// already linked.
func (l *Logic) LinkExit(exit, entrance string) error {
	if err := l.placement.LinkExit(exit, entrance); err != nil {
		return err
	}
	return l.installLink(exit, entrance)
}

// ReplaceExit atomically unlinks whatever pairing previously touched
// either exit or entrance before installing the new exit → entrance
// pairing. The newly vacated entrance bit(s) are not reset to Impossible:
// unlike items, an entrance that loses its exit simply keeps whatever
// other disjuncts (from other exits) it has already accumulated, since
// §4.6 never describes entrance bits as exclusively owned by one exit.
func (l *Logic) ReplaceExit(exit, entrance string) error {
	l.placement.ReplaceExit(exit, entrance)
	return l.installLink(exit, entrance)
}

func (l *Logic) installLink(exit, entrance string) error {
	exitInfo, ok := l.w.Exits[exit]
	if !ok {
		return fmt.Errorf("logic: unknown exit %q", exit)
	}
	entInfo, ok := l.w.Entrances[entrance]
	if !ok {
		return fmt.Errorf("logic: unknown entrance %q", entrance)
	}

	width := l.vec.Len()
	exitAtom := reqs.Atom(width, exitInfo.Bit)
	area, ok := l.w.Areas[exitInfo.AreaName]
	if !ok {
		return fmt.Errorf("logic: exit %q rooted in unknown area %q", exit, exitInfo.AreaName)
	}

	for _, disjunct := range timeMatrix(area, entInfo, exitAtom, exitInfo.Abstract, width) {
		l.vec.Or(disjunct.bit, disjunct.req)
		l.vec.SetOpaque(disjunct.bit, false)
	}

	l.resaturate()
	return nil
}

type linkDisjunct struct {
	bit bits.ID
	req reqs.Requirement
}

// timeMatrix implements spec.md §4.6's time-of-day matrix exactly: given
// the exit's owning area's time mode tA and the entrance's allowed time
// tE, produce the disjunct(s) to OR into the entrance's bit(s). Abstract
// areas (no physical day/night distinction) skip the area-bit conjunct
// entirely, matching world.Build's own withAreaTime treatment; everywhere
// else the area's own day/night bit is ANDed in explicitly, exactly as
// the matrix's "{area-bit-of-A & exit}" cells specify.
func timeMatrix(area world.AreaTimeBits, ent world.EntranceInfo, exitAtom reqs.Requirement, abstract bool, width int) []linkDisjunct {
	var out []linkDisjunct

	gate := func(areaBit bits.ID) reqs.Requirement {
		if abstract {
			return exitAtom
		}
		return reqs.And(reqs.Atom(width, areaBit), exitAtom)
	}

	switch area.Time {
	case world.Both:
		if ent.Time != world.NightOnly {
			out = append(out, linkDisjunct{ent.DayBit, gate(area.DayBit)})
		}
		if ent.Time != world.DayOnly {
			out = append(out, linkDisjunct{ent.NightBit, gate(area.NightBit)})
		}
	case world.DayOnly:
		if ent.Time != world.NightOnly {
			out = append(out, linkDisjunct{ent.DayBit, gate(area.DayBit)})
		}
	case world.NightOnly:
		if ent.Time != world.DayOnly {
			out = append(out, linkDisjunct{ent.NightBit, gate(area.NightBit)})
		}
	}

	return out
}

// Ban ANDs the Banned bit into bit's current requirement (spec.md §4.6),
// making it reachable only once Banned is in the inventory — the
// mechanism for excluding dungeons/locations without removing them from
// the graph. Banned is granted via AddItem("Banned") only once the
// backward-fill algorithm's main placement pass has finished (spec.md
// §4.9 step 3), so a Ban holds until then.
func (l *Logic) Ban(name string) error {
	id, err := l.bitFor(name)
	if err != nil {
		return err
	}
	width := l.vec.Len()
	l.vec.And(id, reqs.Atom(width, bits.Banned))
	l.resaturate()
	return nil
}

// AccessibleChecks enumerates check bits whose full name starts with
// areaPrefix and which are set in full_inventory (spec.md §4.6).
func (l *Logic) AccessibleChecks(areaPrefix string) []string {
	return l.accessibleWithPrefix(areaPrefix, l.w.Checks)
}

// AccessibleExits is AccessibleChecks restricted to exit bits in pool.
func (l *Logic) AccessibleExits(pool map[string]world.ExitInfo) []string {
	bitsByName := make(map[string]bits.ID, len(pool))
	for name, info := range pool {
		bitsByName[name] = info.Bit
	}
	return l.accessibleWithPrefix("", bitsByName)
}

// accessibleWithPrefix filters names to those starting with prefix and set
// in full_inventory, returned in registry bit-ID order — pinned, not raw Go
// map iteration, per spec.md §4.9's determinism requirement ("map iteration
// is explicit sorted or snapshot-shuffled").
func (l *Logic) accessibleWithPrefix(prefix string, names map[string]bits.ID) []string {
	var out []string
	for name, id := range names {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		if l.full.Has(id) {
			out = append(out, name)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return names[out[i]] < names[out[j]]
	})
	return out
}
