package fill

import (
	"fmt"

	"github.com/dshills/logicrando/pkg/logic"
	"github.com/dshills/logicrando/pkg/rng"
	"github.com/dshills/logicrando/pkg/solver"
)

// Config bundles the three item sets spec.md §4.9 names: must_be_placed_items
// (progress + non-progress + keys + maps), may_be_placed_items (consumables
// whose failure to place is tolerated), and duplicable_items (the junk bag
// used to fill whatever is left over).
type Config struct {
	MustBePlaced []string
	MayBePlaced  []string
	Duplicable   []string
}

// Result reports what the run actually did, for pkg/rando's logging and
// pkg/invariants' post-hoc checks.
type Result struct {
	// TrulyProgress is the subset of MustBePlaced step 1 determined
	// actually gates some reachable bit, in the shuffled order they were
	// placed.
	TrulyProgress []string
	// SkippedMayBe lists may-be items that could not be placed (tolerated
	// failures, spec.md §4.9 step 3).
	SkippedMayBe []string
}

// Run executes spec.md §4.9's four steps against l, using r for every
// random choice. l's placement and inventory are mutated in place; on
// error the caller should discard l and reseed (spec.md §4.8/§4.9: "the
// caller may reseed").
func Run(r *rng.RNG, l *logic.Logic, cfg Config) (*Result, error) {
	for _, name := range cfg.MustBePlaced {
		if err := l.AddItem(name); err != nil {
			return nil, fmt.Errorf("fill: granting assumed-fill baseline item %q: %w", name, err)
		}
	}

	progress, err := trulyProgressItems(l, cfg.MustBePlaced)
	if err != nil {
		return nil, err
	}
	shuffle(r, progress)

	for _, item := range progress {
		if err := placeOne(r, l, item, make(map[string]bool)); err != nil {
			return nil, fmt.Errorf("fill: placing progress item %q: %w", item, err)
		}
	}

	if err := l.AddItem("Banned"); err != nil {
		return nil, fmt.Errorf("fill: admitting Banned bit: %w", err)
	}

	placedAsProgress := make(map[string]bool, len(progress))
	for _, item := range progress {
		placedAsProgress[item] = true
	}
	for _, item := range cfg.MustBePlaced {
		if placedAsProgress[item] {
			continue
		}
		if err := placeOne(r, l, item, make(map[string]bool)); err != nil {
			return nil, fmt.Errorf("fill: placing required item %q (must not fail): %w", item, err)
		}
	}

	mayBe := append([]string(nil), cfg.MayBePlaced...)
	shuffle(r, mayBe)
	var skipped []string
	for _, item := range mayBe {
		if err := placeOne(r, l, item, make(map[string]bool)); err != nil {
			skipped = append(skipped, item)
		}
	}

	if err := fillDuplicable(r, l, cfg.Duplicable); err != nil {
		return nil, err
	}

	return &Result{TrulyProgress: progress, SkippedMayBe: skipped}, nil
}

// trulyProgressItems implements spec.md §4.9 step 1:
// aggregate_required_items(R, starting_inventory) ∩ must_be_placed_items.
// Callers must have already granted every must-be-placed item into l's
// inventory (the assumed-fill baseline) before calling this, or the
// aggregate will be near-empty — see DESIGN.md's Open Question note.
func trulyProgressItems(l *logic.Logic, mustBePlaced []string) ([]string, error) {
	agg := solver.AggregateRequiredItems(l.Vector(), l.Inventory())
	reg := l.Registry()

	var out []string
	for _, name := range mustBePlaced {
		id, ok := reg.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("fill: unknown must-be-placed item %q", name)
		}
		if agg.Has(id) {
			out = append(out, name)
		}
	}
	return out, nil
}

// placeOne implements spec.md §4.9 step 2's place_one(item): place item at
// a uniformly random currently-accessible, currently-empty location if one
// exists; otherwise evict whatever occupies a uniformly random accessible
// location and recurse on the evicted item. chain tracks items already
// evicted once in this call stack, failing with ErrUnplaceable on a repeat
// rather than looping forever.
func placeOne(r *rng.RNG, l *logic.Logic, item string, chain map[string]bool) error {
	if chain[item] {
		return fmt.Errorf("%w: %q re-evicted in the same placement chain", ErrUnplaceable, item)
	}
	chain[item] = true

	prefix, _ := l.Placement().AreaPrefix(item)
	accessible := l.AccessibleChecks(prefix)
	empty := emptyLocations(l, accessible)

	if len(empty) > 0 {
		loc := empty[r.Choice(len(empty))]
		if err := l.PlaceItem(loc, item); err != nil {
			return err
		}
		return l.RemoveItem(item)
	}

	if len(accessible) == 0 {
		return fmt.Errorf("%w: %q has no accessible location", ErrUnplaceable, item)
	}

	loc := accessible[r.Choice(len(accessible))]
	evicted, _ := l.Placement().ItemAt(loc)
	if err := l.ReplaceItem(loc, item); err != nil {
		return err
	}
	if err := l.RemoveItem(item); err != nil {
		return err
	}
	return placeOne(r, l, evicted, chain)
}

func emptyLocations(l *logic.Logic, locs []string) []string {
	var out []string
	for _, loc := range locs {
		if _, ok := l.Placement().ItemAt(loc); !ok {
			out = append(out, loc)
		}
	}
	return out
}

// fillDuplicable implements spec.md §4.9 step 4: every still-empty
// accessible location gets a random element of bag, with replacement.
func fillDuplicable(r *rng.RNG, l *logic.Logic, bag []string) error {
	if len(bag) == 0 {
		return nil
	}
	for _, loc := range l.AccessibleChecks("") {
		if _, ok := l.Placement().ItemAt(loc); ok {
			continue
		}
		name := bag[r.Choice(len(bag))]
		if err := l.PlaceJunk(loc, name); err != nil {
			return fmt.Errorf("fill: junk fill at %q: %w", loc, err)
		}
	}
	return nil
}

func shuffle(r *rng.RNG, s []string) {
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
