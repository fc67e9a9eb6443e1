package placement

import "fmt"

// Placement is the bookkeeping store spec.md §4.5 describes: the
// location/item and exit/entrance maps kept in lock-step, the starting-item
// set, the unplaced-item set, and the item→area-prefix restriction table
// used by item_placement_limit. It holds no reachability logic of its own —
// pkg/logic is the invariant-preserving layer that drives it.
type Placement struct {
	locToItem      map[string]string
	itemToLoc      map[string]string
	exitToEntrance map[string]string
	entranceToExit map[string]string

	itemAreaPrefix map[string]string
	startingItems  map[string]struct{}
	unplaced       map[string]struct{}
}

// New returns an empty Placement with every name in items marked unplaced.
func New(items []string) *Placement {
	p := &Placement{
		locToItem:      make(map[string]string),
		itemToLoc:      make(map[string]string),
		exitToEntrance: make(map[string]string),
		entranceToExit: make(map[string]string),
		itemAreaPrefix: make(map[string]string),
		startingItems:  make(map[string]struct{}),
		unplaced:       make(map[string]struct{}, len(items)),
	}
	for _, item := range items {
		p.unplaced[item] = struct{}{}
	}
	return p
}

// PlaceItem assigns item to loc. It fails with ErrAlreadyTaken if loc
// already holds an item, or ErrAlreadyPlaced if item is already assigned to
// some other location.
func (p *Placement) PlaceItem(loc, item string) error {
	if existing, ok := p.locToItem[loc]; ok {
		return fmt.Errorf("place %s at %s: %w (holds %s)", item, loc, ErrAlreadyTaken, existing)
	}
	if existing, ok := p.itemToLoc[item]; ok {
		return fmt.Errorf("place %s at %s: %w (already at %s)", item, loc, ErrAlreadyPlaced, existing)
	}
	p.locToItem[loc] = item
	p.itemToLoc[item] = loc
	delete(p.unplaced, item)
	return nil
}

// ReplaceItem atomically removes whatever item loc previously held (and
// whatever location item was previously assigned to, if any) before
// installing the new loc↔item pairing. Unlike PlaceItem it never fails on
// AlreadyTaken/AlreadyPlaced — that is the point of "replace".
func (p *Placement) ReplaceItem(loc, item string) {
	if prior, ok := p.locToItem[loc]; ok {
		delete(p.itemToLoc, prior)
		p.unplaced[prior] = struct{}{}
	}
	if priorLoc, ok := p.itemToLoc[item]; ok {
		delete(p.locToItem, priorLoc)
	}
	p.locToItem[loc] = item
	p.itemToLoc[item] = loc
	delete(p.unplaced, item)
}

// PlaceJunk records an unranked, logic-irrelevant item at loc — unlike
// PlaceItem, item carries no unique placement identity and may be recorded
// at many locations (the duplicable-item bag of spec.md §4.9 step 4: a
// flavor name like "Rupee (Green)" is not 1:1 with a single location). It
// only fails with ErrAlreadyTaken if loc already holds something; it never
// touches itemToLoc or the unplaced set.
func (p *Placement) PlaceJunk(loc, item string) error {
	if existing, ok := p.locToItem[loc]; ok {
		return fmt.Errorf("place junk %s at %s: %w (holds %s)", item, loc, ErrAlreadyTaken, existing)
	}
	p.locToItem[loc] = item
	return nil
}

// UnplaceItem removes item from wherever it was assigned, returning the
// vacated location and whether item had been placed at all.
func (p *Placement) UnplaceItem(item string) (loc string, ok bool) {
	loc, ok = p.itemToLoc[item]
	if !ok {
		return "", false
	}
	delete(p.itemToLoc, item)
	delete(p.locToItem, loc)
	p.unplaced[item] = struct{}{}
	return loc, true
}

// ItemAt reports the item assigned to loc, if any.
func (p *Placement) ItemAt(loc string) (string, bool) {
	item, ok := p.locToItem[loc]
	return item, ok
}

// LocationOf reports the location item is assigned to, if any.
func (p *Placement) LocationOf(item string) (string, bool) {
	loc, ok := p.itemToLoc[item]
	return loc, ok
}

// IsUnplaced reports whether item has not yet been assigned a location.
func (p *Placement) IsUnplaced(item string) bool {
	_, ok := p.unplaced[item]
	return ok
}

// Locations returns a copy of the full location→item map, for callers
// (pkg/invariants) that must enumerate every assignment rather than look
// one up at a time.
func (p *Placement) Locations() map[string]string {
	out := make(map[string]string, len(p.locToItem))
	for k, v := range p.locToItem {
		out[k] = v
	}
	return out
}

// Links returns a copy of the full exit→entrance map, for callers
// (pkg/invariants) verifying bijectivity across every pairing at once.
func (p *Placement) Links() map[string]string {
	out := make(map[string]string, len(p.exitToEntrance))
	for k, v := range p.exitToEntrance {
		out[k] = v
	}
	return out
}

// UnplacedItems returns the current unplaced-item set as a slice. Order is
// unspecified; callers that need determinism should sort it.
func (p *Placement) UnplacedItems() []string {
	out := make([]string, 0, len(p.unplaced))
	for item := range p.unplaced {
		out = append(out, item)
	}
	return out
}

// AddStartingItem marks item as part of the starting inventory. Starting
// items are never placed at a location; they are granted directly.
func (p *Placement) AddStartingItem(item string) {
	p.startingItems[item] = struct{}{}
	delete(p.unplaced, item)
}

// IsStartingItem reports whether item was marked as a starting item.
func (p *Placement) IsStartingItem(item string) bool {
	_, ok := p.startingItems[item]
	return ok
}

// StartingItems returns the starting-item set as a slice. Order is
// unspecified.
func (p *Placement) StartingItems() []string {
	out := make([]string, 0, len(p.startingItems))
	for item := range p.startingItems {
		out = append(out, item)
	}
	return out
}

// SetAreaPrefix records item's item_placement_limit restriction (spec.md
// §4.5): the fill algorithm must only consider locations whose full name
// starts with prefix when placing item.
func (p *Placement) SetAreaPrefix(item, prefix string) {
	p.itemAreaPrefix[item] = prefix
}

// AreaPrefix reports item's area-prefix restriction, if any.
func (p *Placement) AreaPrefix(item string) (string, bool) {
	prefix, ok := p.itemAreaPrefix[item]
	return prefix, ok
}

// LinkExit pairs exit with entrance. It fails with ErrAlreadyTaken if
// entrance already has an exit linked to it, or ErrAlreadyPlaced if exit is
// already linked to some other entrance.
func (p *Placement) LinkExit(exit, entrance string) error {
	if existing, ok := p.entranceToExit[entrance]; ok {
		return fmt.Errorf("link %s -> %s: %w (holds %s)", exit, entrance, ErrAlreadyTaken, existing)
	}
	if existing, ok := p.exitToEntrance[exit]; ok {
		return fmt.Errorf("link %s -> %s: %w (already -> %s)", exit, entrance, ErrAlreadyPlaced, existing)
	}
	p.exitToEntrance[exit] = entrance
	p.entranceToExit[entrance] = exit
	return nil
}

// ReplaceExit atomically unlinks whatever exit/entrance pairing previously
// touched either side before installing the new exit→entrance pairing.
func (p *Placement) ReplaceExit(exit, entrance string) {
	if priorEntrance, ok := p.exitToEntrance[exit]; ok {
		delete(p.entranceToExit, priorEntrance)
	}
	if priorExit, ok := p.entranceToExit[entrance]; ok {
		delete(p.exitToEntrance, priorExit)
	}
	p.exitToEntrance[exit] = entrance
	p.entranceToExit[entrance] = exit
}

// EntranceFor reports the entrance exit is linked to, if any.
func (p *Placement) EntranceFor(exit string) (string, bool) {
	entrance, ok := p.exitToEntrance[exit]
	return entrance, ok
}

// ExitFor reports the exit linked to entrance, if any.
func (p *Placement) ExitFor(entrance string) (string, bool) {
	exit, ok := p.entranceToExit[entrance]
	return exit, ok
}

// Clone returns a deep copy, so callers can speculatively mutate a
// placement (e.g. during fill backtracking) without disturbing the
// original.
func (p *Placement) Clone() *Placement {
	c := &Placement{
		locToItem:      make(map[string]string, len(p.locToItem)),
		itemToLoc:      make(map[string]string, len(p.itemToLoc)),
		exitToEntrance: make(map[string]string, len(p.exitToEntrance)),
		entranceToExit: make(map[string]string, len(p.entranceToExit)),
		itemAreaPrefix: make(map[string]string, len(p.itemAreaPrefix)),
		startingItems:  make(map[string]struct{}, len(p.startingItems)),
		unplaced:       make(map[string]struct{}, len(p.unplaced)),
	}
	for k, v := range p.locToItem {
		c.locToItem[k] = v
	}
	for k, v := range p.itemToLoc {
		c.itemToLoc[k] = v
	}
	for k, v := range p.exitToEntrance {
		c.exitToEntrance[k] = v
	}
	for k, v := range p.entranceToExit {
		c.entranceToExit[k] = v
	}
	for k, v := range p.itemAreaPrefix {
		c.itemAreaPrefix[k] = v
	}
	for k := range p.startingItems {
		c.startingItems[k] = struct{}{}
	}
	for k := range p.unplaced {
		c.unplaced[k] = struct{}{}
	}
	return c
}

// Union merges p and other into a new Placement, failing with ErrConflict
// if the two disagree on the assignment of any shared location, item,
// exit, or entrance key (spec.md §4.5: "Union (A | B) is defined only if
// the two placements disagree on no key").
func Union(p, other *Placement) (*Placement, error) {
	merged := p.Clone()

	for loc, item := range other.locToItem {
		if existing, ok := merged.locToItem[loc]; ok && existing != item {
			return nil, fmt.Errorf("union: %w at location %s (%s vs %s)", ErrConflict, loc, existing, item)
		}
		merged.locToItem[loc] = item
	}
	for item, loc := range other.itemToLoc {
		if existing, ok := merged.itemToLoc[item]; ok && existing != loc {
			return nil, fmt.Errorf("union: %w for item %s (%s vs %s)", ErrConflict, item, existing, loc)
		}
		merged.itemToLoc[item] = loc
	}
	for exit, entrance := range other.exitToEntrance {
		if existing, ok := merged.exitToEntrance[exit]; ok && existing != entrance {
			return nil, fmt.Errorf("union: %w at exit %s (%s vs %s)", ErrConflict, exit, existing, entrance)
		}
		merged.exitToEntrance[exit] = entrance
	}
	for entrance, exit := range other.entranceToExit {
		if existing, ok := merged.entranceToExit[entrance]; ok && existing != exit {
			return nil, fmt.Errorf("union: %w at entrance %s (%s vs %s)", ErrConflict, entrance, existing, exit)
		}
		merged.entranceToExit[entrance] = exit
	}
	for item, prefix := range other.itemAreaPrefix {
		if existing, ok := merged.itemAreaPrefix[item]; ok && existing != prefix {
			return nil, fmt.Errorf("union: %w on item_placement_limit for %s (%s vs %s)", ErrConflict, item, existing, prefix)
		}
		merged.itemAreaPrefix[item] = prefix
	}
	for item := range other.startingItems {
		merged.startingItems[item] = struct{}{}
		delete(merged.unplaced, item)
	}
	for item := range other.unplaced {
		if _, placed := merged.itemToLoc[item]; placed {
			continue
		}
		if _, starting := merged.startingItems[item]; starting {
			continue
		}
		merged.unplaced[item] = struct{}{}
	}

	return merged, nil
}
