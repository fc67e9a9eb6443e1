package invariants

import (
	"strings"

	"github.com/dshills/logicrando/pkg/bits"
	"github.com/dshills/logicrando/pkg/logic"
	"github.com/dshills/logicrando/pkg/solver"
)

// CheckCompleteness implements spec.md §8's Completeness property: the
// final fill_inventory(R, starting_inventory ∪ {Banned}) must contain the
// reserved Everything bit and demiseTarget's check bit. Banned is added to
// the probe inventory deliberately — spec.md's Banned-bit mechanic only
// restricts what fill is willing to place during generation, not what
// must remain winnable once banned locations' contents are accounted for
// (the same "no-ban view" pkg/hints' GetSotSItems opts into for its own
// probes). Everything is a reserved bit (bits.Everything), not a
// registry-name lookup (spec.md §3: "Reserved semantic bits include: Day,
// Night, Banned, Everything, HintBypass"); demiseTarget is the finished
// world's full "Area/Location" address for its Demise-equivalent goal
// check (pkg/hints.DefaultTarget names the bare convention; callers here
// must pass the fully-qualified address, same as pkg/hints' test fixtures
// do).
func CheckCompleteness(l *logic.Logic, demiseTarget string) ConstraintResult {
	if demiseTarget == "" {
		demiseTarget = "Demise"
	}
	reg := l.Registry()
	demiseID, hasDemise := reg.Lookup(demiseTarget)

	probe := l.Inventory().Clone()
	probe.Add(bits.Banned)
	full := solver.FillInventory(l.Vector(), probe)

	missing := []string{}
	if !full.Has(bits.Everything) {
		missing = append(missing, "Everything")
	}
	if hasDemise && !full.Has(demiseID) {
		missing = append(missing, demiseTarget)
	}
	if len(missing) > 0 {
		return NewConstraintResult("Completeness", false,
			"unreachable even with Banned granted: "+strings.Join(missing, ", "))
	}
	return NewConstraintResult("Completeness", true, "Everything and "+demiseTarget+" are both reachable")
}

// CheckBijectivity implements spec.md §8's entrance-pairing property: for
// every (exit, entrance) placement.Links() entry, the reverse lookup must
// agree, and both names must belong to some randomization pool (an empty
// Pool means the exit/entrance was never a shuffle candidate and should
// never appear in Links at all).
func CheckBijectivity(l *logic.Logic) ConstraintResult {
	links := l.Placement().Links()
	exits := l.Exits()
	entrances := l.Entrances()

	violations := []string{}
	for exit, entrance := range links {
		back, ok := l.Placement().ExitFor(entrance)
		if !ok || back != exit {
			violations = append(violations, "non-bijective pairing at "+exit)
			continue
		}
		if info, ok := exits[exit]; !ok || info.Pool == "" {
			violations = append(violations, exit+" is not in any randomization pool")
		}
		if info, ok := entrances[entrance]; !ok || info.Pool == "" {
			violations = append(violations, entrance+" is not in any randomization pool")
		}
	}
	if len(violations) > 0 {
		return NewConstraintResult("Bijectivity", false, strings.Join(violations, "; "))
	}
	return NewConstraintResult("Bijectivity", true, "every entrance pairing is bijective and pool-eligible")
}

// CheckPlacementLimit implements spec.md §8's placement-limit property:
// for every item carrying an area-prefix restriction, its assigned
// location's full address must start with that prefix.
func CheckPlacementLimit(l *logic.Logic) ConstraintResult {
	p := l.Placement()
	violations := []string{}
	for loc, item := range p.Locations() {
		prefix, ok := p.AreaPrefix(item)
		if !ok {
			continue
		}
		if !strings.HasPrefix(loc, prefix) {
			violations = append(violations, item+" limited to "+prefix+" but placed at "+loc)
		}
	}
	if len(violations) > 0 {
		return NewConstraintResult("PlacementLimit", false, strings.Join(violations, "; "))
	}
	return NewConstraintResult("PlacementLimit", true, "every area-prefix restriction honored")
}

// CheckStartingItemsUntouched implements spec.md §8's property that items
// listed in starting_items are never assigned to any location.
func CheckStartingItemsUntouched(l *logic.Logic) ConstraintResult {
	p := l.Placement()
	violations := []string{}
	for _, item := range p.StartingItems() {
		if loc, ok := p.LocationOf(item); ok {
			violations = append(violations, item+" is a starting item but was also placed at "+loc)
		}
	}
	if len(violations) > 0 {
		return NewConstraintResult("StartingItemsUntouched", false, strings.Join(violations, "; "))
	}
	return NewConstraintResult("StartingItemsUntouched", true, "no starting item was also placed")
}

// CheckUnplacedItemsAbsent implements spec.md §8's property that items
// spec.md calls unplaced (e.g. maps when map-mode=Removed) never appear
// as a value in placement.locations.
func CheckUnplacedItemsAbsent(l *logic.Logic) ConstraintResult {
	p := l.Placement()
	placedItems := make(map[string]bool)
	for _, item := range p.Locations() {
		placedItems[item] = true
	}
	violations := []string{}
	for _, item := range p.UnplacedItems() {
		if placedItems[item] {
			violations = append(violations, item)
		}
	}
	if len(violations) > 0 {
		return NewConstraintResult("UnplacedItemsAbsent", false,
			"unplaced items appeared in a location anyway: "+strings.Join(violations, ", "))
	}
	return NewConstraintResult("UnplacedItemsAbsent", true, "no unplaced item appears in any location")
}

// CheckBanRespected implements spec.md §8's ban property: no progression
// item is assigned to a location in bans. A successful run (one that did
// not raise GenerationFailed) already implies fill never placed anything
// there through normal reachability-gated placement; this check instead
// catches a forced pre-placement (spec.md §4.7) that bypassed the Banned
// bit's requirement gating entirely. progressionItems is the same
// must-be-placed item set pkg/fill.Config names — junk items placed at a
// banned location (e.g. a banned rupee check) are not a violation, only
// progression items are.
func CheckBanRespected(l *logic.Logic, bans []string, progressionItems []string) ConstraintResult {
	progression := make(map[string]bool, len(progressionItems))
	for _, item := range progressionItems {
		progression[item] = true
	}

	p := l.Placement()
	violations := []string{}
	for _, loc := range bans {
		item, ok := p.ItemAt(loc)
		if ok && progression[item] {
			violations = append(violations, item+" at banned location "+loc)
		}
	}
	if len(violations) > 0 {
		return NewConstraintResult("BanRespected", false, strings.Join(violations, "; "))
	}
	return NewConstraintResult("BanRespected", true, "no progression item occupies a banned location")
}
