package options

import (
	"fmt"

	"github.com/dshills/logicrando/pkg/bits"
	"github.com/dshills/logicrando/pkg/reqs"
	"github.com/dshills/logicrando/pkg/world"
)

// Settings is the compiled form of Options against a concrete World: plain
// name lists and maps, ready for pkg/rando to feed straight into
// pkg/logic/pkg/placement without any further option-surface knowledge
// (spec.md §3 LogicSettings).
type Settings struct {
	// StartingInventory are item names to grant immediately, expanded from
	// Options.StartingItemCounts into concrete copy-bit names.
	StartingInventory []string

	// Frees are bit names whose requirement should be forced Trivial
	// (enabled logic options and tricks), independent of ordinary
	// inventory state.
	Frees []string

	// Bans are bit names to AND with the Banned bit (excluded-type-tag
	// locations, unrequired-dungeon entrances, trial relics when
	// treasuresanity is off).
	Bans []string

	// PrePlacements are location -> item forced assignments, applied before
	// the backward-fill algorithm runs.
	PrePlacements map[string]string

	// ItemPlacementLimits are item -> area-prefix restrictions.
	ItemPlacementLimits map[string]string

	// EndGameRequirements are bit name -> additional parsed requirement to
	// OR into that bit's current requirement.
	EndGameRequirements map[string]reqs.Requirement
}

// Compile translates o against w into concrete, name-resolved Settings.
// Every name o references must already exist in w's frozen registry;
// Compile returns an error naming the first one that does not, matching
// spec.md §7's ConfigError taxonomy.
func Compile(o *Options, w *world.World) (*Settings, error) {
	s := &Settings{
		PrePlacements:       make(map[string]string, len(o.PrePlacements)),
		ItemPlacementLimits: make(map[string]string, len(o.ItemPlacementLimits)),
		EndGameRequirements: make(map[string]reqs.Requirement, len(o.EndGameRequirements)),
	}

	for name, enabled := range o.LogicOptions {
		if !enabled {
			continue
		}
		if _, ok := w.Registry.Lookup(name); !ok {
			return nil, fmt.Errorf("options: unknown logic option bit %q", name)
		}
		s.Frees = append(s.Frees, name)
	}
	for _, name := range o.Tricks {
		if _, ok := w.Registry.Lookup(name); !ok {
			return nil, fmt.Errorf("options: unknown trick bit %q", name)
		}
		s.Frees = append(s.Frees, name)
	}

	if err := compileBans(o, w, s); err != nil {
		return nil, err
	}

	for name, count := range o.StartingItemCounts {
		copies, ok := w.Items[name]
		if !ok {
			return nil, fmt.Errorf("options: unknown starting item %q", name)
		}
		if count > len(copies) {
			return nil, fmt.Errorf("options: starting_item_counts[%q] = %d exceeds %d available copies", name, count, len(copies))
		}
		for i := 0; i < count; i++ {
			s.StartingInventory = append(s.StartingInventory, w.Registry.Name(copies[i]))
		}
	}

	for loc, item := range o.PrePlacements {
		if _, ok := w.Checks[loc]; !ok {
			return nil, fmt.Errorf("options: pre-placement names unknown location %q", loc)
		}
		if _, ok := w.Items[item]; !ok {
			return nil, fmt.Errorf("options: pre-placement names unknown item %q", item)
		}
		s.PrePlacements[loc] = item
	}

	for item, prefix := range o.ItemPlacementLimits {
		if _, ok := w.Items[item]; !ok {
			return nil, fmt.Errorf("options: item placement limit names unknown item %q", item)
		}
		s.ItemPlacementLimits[item] = prefix
	}

	res := &worldResolver{w: w}
	width := w.Registry.Len()
	for name, expr := range o.EndGameRequirements {
		if _, ok := w.Registry.Lookup(name); !ok {
			return nil, fmt.Errorf("options: end-game requirement names unknown bit %q", name)
		}
		r, err := reqs.Parse(width, expr, res)
		if err != nil {
			return nil, fmt.Errorf("options: end-game requirement %q: %w", name, err)
		}
		s.EndGameRequirements[name] = r
	}

	// Everything is not a per-run option: it is always the conjunction of
	// every check bit in the world, unconditionally, overriding whatever
	// an options file happened to set for it above.
	s.EndGameRequirements[w.Registry.Name(bits.Everything)] = everythingRequirement(w)

	return s, nil
}

// everythingRequirement builds the single-conjunct Requirement satisfied
// exactly when every check bit in w is simultaneously held.
func everythingRequirement(w *world.World) reqs.Requirement {
	width := w.Registry.Len()
	conjunct := bits.New(width)
	for _, id := range w.Checks {
		conjunct.Add(id)
	}
	return reqs.FromConjunct(conjunct)
}

// compileBans appends every banned name to s.Bans: locations tagged with
// any of o.BanTags, every entrance of a non-required dungeon when
// o.EmptyUnrequiredDungeons is set, and every location tagged "trial relic"
// when o.TreasuresanityInSilentRealms is false (spec.md §4.7).
func compileBans(o *Options, w *world.World, s *Settings) error {
	if len(o.BanTags) > 0 {
		banSet := make(map[string]bool, len(o.BanTags))
		for _, t := range o.BanTags {
			banSet[t] = true
		}
		for loc, tags := range w.LocationTags {
			for _, t := range tags {
				if banSet[t] {
					s.Bans = append(s.Bans, loc)
					break
				}
			}
		}
	}

	if o.EmptyUnrequiredDungeons {
		for name, info := range w.Entrances {
			if info.Pool == "dungeon" && !info.Required {
				s.Bans = append(s.Bans, name)
			}
		}
	}

	if !o.TreasuresanityInSilentRealms {
		for loc, tags := range w.LocationTags {
			for _, t := range tags {
				if t == "trial relic" {
					s.Bans = append(s.Bans, loc)
					break
				}
			}
		}
	}

	return nil
}

// worldResolver implements reqs.Resolver against a frozen World, for
// parsing option-derived requirement strings (end-game requirement
// overrides) after world construction has already completed.
type worldResolver struct {
	w *world.World
}

func (r *worldResolver) Resolve(name string) (bits.ID, bool) {
	return r.w.Registry.Lookup(name)
}

func (r *worldResolver) CopyBits(name string) ([]bits.ID, bool) {
	copies, ok := r.w.Items[name]
	if !ok || len(copies) <= 1 {
		return nil, false
	}
	return copies, true
}
