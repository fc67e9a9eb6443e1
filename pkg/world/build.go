package world

import (
	"fmt"

	"github.com/dshills/logicrando/pkg/bits"
	"github.com/dshills/logicrando/pkg/reqs"
)

// ExitInfo is everything downstream components (C6, C8) need to know
// about a map-exit: the bit it occupies and the area it is rooted in,
// used by the time-of-day matrix of spec.md §4.6.
type ExitInfo struct {
	Name     string
	AreaName string
	AreaTime TimeMode
	// Abstract mirrors the owning area's Abstract flag: an abstract area
	// has no physical day/night distinction, so spec.md §4.6's time-of-day
	// matrix skips the area-bit conjunct entirely for exits rooted there.
	Abstract bool
	Pool     string
	Bit      bits.ID
}

// EntranceInfo is the bit(s) an entrance occupies, plus its own allowed
// time of day — independent of the area it is rooted in.
type EntranceInfo struct {
	Name     string
	Time     TimeMode
	DayBit   bits.ID // valid unless Time == NightOnly
	NightBit bits.ID // valid unless Time == DayOnly
	Pool     string
	Required bool
}

// World is the immutable, world-build-time template: a frozen registry,
// a requirement vector every Logic instance clones before mutating
// (spec.md §4.6), and the auxiliary lookup tables C6/C8 need.
type World struct {
	Registry  *bits.Registry
	Vector    *reqs.Vector
	Exits     map[string]ExitInfo
	Entrances map[string]EntranceInfo
	// Synonyms maps an alternate full address resolved by SearchArea to
	// the first-declared canonical address for the same query (spec.md §9
	// "name resolution is not unique").
	Synonyms map[string]string
	// Items maps each item's declared name to its copy bit(s), in
	// declaration order, so C5/C9 can tell how many of an item exist and
	// which bit a given copy occupies.
	Items map[string][]bits.ID
	// Checks maps "Area/Location" to its bit, the address space C5/C9
	// place items into.
	Checks map[string]bits.ID
	// Areas maps each area's name to its time-of-day bit(s), used by C6's
	// entrance-linkage matrix.
	Areas map[string]AreaTimeBits
	// LocationTags mirrors each "Area/Location"'s declared Tags, for C7's
	// excluded-type ban rule.
	LocationTags map[string][]string
	// HintRegion mirrors each "Area/Location"'s declared HintRegion, for
	// C10's barren-region query.
	HintRegion map[string]string
}

// AreaTimeBits holds the bit(s) representing "area A is currently
// reachable", split by time of day for Both areas. It is exported so C6
// can compute the time-of-day linkage matrix of spec.md §4.6 against the
// owning area's actual bits.
type AreaTimeBits struct {
	Time     TimeMode
	DayBit   bits.ID
	NightBit bits.ID
}

type builder struct {
	reg          *bits.Registry
	vec          *reqs.Vector
	itemCopies   map[string][]bits.ID
	areaBits     map[string]AreaTimeBits
	exits        map[string]ExitInfo
	entrances    map[string]EntranceInfo
	checkBits    map[string]bits.ID // "Area/Location" -> bit
	locationTags map[string][]string
	hintRegion   map[string]string
}

// Build assembles the frozen bit registry and requirement vector from
// cat, following the build order of spec.md §4.1 exactly, then compiles
// every parsed requirement expression in the tree (spec.md §4.3).
func Build(cat Catalog) (*World, error) {
	if cat.Root == nil {
		return nil, fmt.Errorf("world: Catalog.Root is nil")
	}

	b := &builder{
		reg:          bits.NewRegistry(),
		itemCopies:   make(map[string][]bits.ID),
		areaBits:     make(map[string]AreaTimeBits),
		exits:        make(map[string]ExitInfo),
		entrances:    make(map[string]EntranceInfo),
		checkBits:    make(map[string]bits.ID),
		locationTags: make(map[string][]string),
		hintRegion:   make(map[string]string),
	}

	// Step 2: item copies, counted up in insertion order.
	itemBit := make(map[string]bits.ID) // only populated for count<=1 items
	for _, it := range cat.Items {
		if it.Count <= 1 {
			id := b.reg.Add(it.Name)
			itemBit[it.Name] = id
			b.itemCopies[it.Name] = []bits.ID{id}
			continue
		}
		copies := make([]bits.ID, it.Count)
		for i := 0; i < it.Count; i++ {
			copies[i] = b.reg.Add(fmt.Sprintf("%s #%d", it.Name, i+1))
		}
		b.itemCopies[it.Name] = copies
	}

	// Step 3: option bits and trick bits.
	for _, name := range cat.OptionBits {
		b.reg.Add(name)
	}
	for _, name := range cat.TrickBits {
		b.reg.Add(name)
	}

	// Step 4: events — a location name that does not resolve to an
	// already-registered item bit gets a fresh bit here; a location whose
	// name collides with an item reuses that item's bit.
	b.walkAreas(cat.Root, func(area *AreaDef) {
		for _, loc := range area.Locations {
			full := area.Name + "/" + loc.Name
			if len(loc.Tags) > 0 {
				b.locationTags[full] = loc.Tags
			}
			if loc.HintRegion != "" {
				b.hintRegion[full] = loc.HintRegion
			}
			if id, ok := itemBit[loc.Name]; ok {
				b.checkBits[full] = id
				continue
			}
			b.checkBits[full] = b.reg.Add(full)
		}
	})

	// Step 5: area time bits. Abstract areas are pure grouping nodes with
	// no physical day/night distinction (spec.md §4.1 "abstract areas do
	// not generate their own time bits") and register no bit at all; an
	// entry still goes into b.areaBits so downstream lookups (installLink
	// rooting an exit in its owning area) resolve, but its DayBit/NightBit
	// stay the zero ID and must never be read — withAreaTime and
	// timeMatrix both special-case area.Abstract before touching them.
	b.walkAreas(cat.Root, func(area *AreaDef) {
		if area.Abstract {
			b.areaBits[area.Name] = AreaTimeBits{Time: area.Time}
			return
		}
		if area.Time == Both {
			b.areaBits[area.Name] = AreaTimeBits{
				Time:     Both,
				DayBit:   b.reg.Add(area.Name + " (Day)"),
				NightBit: b.reg.Add(area.Name + " (Night)"),
			}
			return
		}
		id := b.reg.Add(area.Name)
		bt := AreaTimeBits{Time: area.Time}
		if area.Time == NightOnly {
			bt.NightBit = id
		} else {
			bt.DayBit = id
		}
		b.areaBits[area.Name] = bt
	})

	// Step 6: map-exits, then entrances (two bits each if Both).
	b.walkAreas(cat.Root, func(area *AreaDef) {
		for _, me := range area.MapExits {
			full := area.Name + "::" + me.Name
			id := b.reg.Add(full)
			b.exits[full] = ExitInfo{Name: full, AreaName: area.Name, AreaTime: area.Time, Abstract: area.Abstract, Pool: me.Pool, Bit: id}
		}
	})
	b.walkAreas(cat.Root, func(area *AreaDef) {
		for _, en := range area.Entrances {
			info := EntranceInfo{Name: en.Name, Time: en.Time, Pool: en.Pool, Required: en.Required}
			if en.Time == Both {
				info.DayBit = b.reg.Add(en.Name + " (Day)")
				info.NightBit = b.reg.Add(en.Name + " (Night)")
			} else if en.Time == NightOnly {
				info.NightBit = b.reg.Add(en.Name)
			} else {
				info.DayBit = b.reg.Add(en.Name)
			}
			b.entrances[en.Name] = info
		}
	})

	b.reg.Freeze()
	b.vec = reqs.NewVector(b.reg.Len())

	for _, copies := range b.itemCopies {
		for _, c := range copies {
			b.vec.SetOpaque(c, true)
		}
	}
	// Entrance bits start opaque: they have no requirement until an exit
	// is paired with them (spec.md §4.6 "clear opaque for those entrance
	// bits" on install).
	for _, info := range b.entrances {
		if info.Time != NightOnly {
			b.vec.SetOpaque(info.DayBit, true)
		}
		if info.Time != DayOnly {
			b.vec.SetOpaque(info.NightBit, true)
		}
	}

	res := &resolver{b: b}

	var walkErr error
	b.walkAreas(cat.Root, func(area *AreaDef) {
		if walkErr != nil {
			return
		}
		if err := b.compileArea(area, res); err != nil {
			walkErr = err
		}
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return &World{
		Registry:     b.reg,
		Vector:       b.vec,
		Exits:        b.exits,
		Entrances:    b.entrances,
		Synonyms:     make(map[string]string),
		Items:        b.itemCopies,
		Checks:       b.checkBits,
		Areas:        b.areaBits,
		LocationTags: b.locationTags,
		HintRegion:   b.hintRegion,
	}, nil
}

func (b *builder) walkAreas(area *AreaDef, fn func(*AreaDef)) {
	fn(area)
	for _, sub := range area.SubAreas {
		b.walkAreas(sub, fn)
	}
}

// compileArea installs the sleep self-loop, every local location, every
// logical exit's contribution to its target, every map-exit, and every
// rooted entrance's contribution to the area — all per spec.md §4.3.
func (b *builder) compileArea(area *AreaDef, res reqs.Resolver) error {
	width := b.reg.Len()
	abits := b.areaBits[area.Name]

	if area.CanSleep && area.Time == Both && !area.Abstract {
		b.vec.Or(abits.DayBit, reqs.Atom(width, abits.NightBit))
		b.vec.Or(abits.NightBit, reqs.Atom(width, abits.DayBit))
	}

	for _, loc := range area.Locations {
		full := area.Name + "/" + loc.Name
		bit := b.checkBits[full]
		r, err := reqs.Parse(width, loc.Requirement, res)
		if err != nil {
			return fmt.Errorf("world: location %s: %w", full, err)
		}
		b.vec.Set(bit, b.withAreaTime(area, abits, r))
	}

	for _, ex := range area.Exits {
		target, ok := b.areaBits[ex.Target]
		if !ok {
			return fmt.Errorf("world: exit from %s targets unknown area %q", area.Name, ex.Target)
		}
		r, err := reqs.Parse(width, ex.Requirement, res)
		if err != nil {
			return fmt.Errorf("world: exit %s -> %s: %w", area.Name, ex.Target, err)
		}
		gated := b.withAreaTime(area, abits, r)

		// Project onto whichever of the target's time bits is compatible
		// with the source area's time; a source/target pair with no
		// overlapping time (e.g. DayOnly -> NightOnly) contributes no
		// disjunct at all.
		switch area.Time {
		case Both:
			if target.Time != NightOnly {
				b.vec.Or(target.DayBit, gated)
			}
			if target.Time != DayOnly {
				b.vec.Or(target.NightBit, gated)
			}
		case DayOnly:
			if target.Time != NightOnly {
				b.vec.Or(target.DayBit, gated)
			}
		case NightOnly:
			if target.Time != DayOnly {
				b.vec.Or(target.NightBit, gated)
			}
		}
	}

	for _, me := range area.MapExits {
		full := area.Name + "::" + me.Name
		bit := b.exits[full].Bit
		r, err := reqs.Parse(width, me.Requirement, res)
		if err != nil {
			return fmt.Errorf("world: map-exit %s: %w", full, err)
		}
		b.vec.Set(bit, b.withAreaTime(area, abits, r))
	}

	for _, en := range area.Entrances {
		if area.Abstract {
			break
		}
		info := b.entrances[en.Name]
		if info.Time != NightOnly && abits.Time != NightOnly {
			b.vec.Or(abits.DayBit, reqs.Atom(width, info.DayBit))
		}
		if info.Time != DayOnly && abits.Time != DayOnly {
			b.vec.Or(abits.NightBit, reqs.Atom(width, info.NightBit))
		}
	}

	return nil
}

// withAreaTime projects r per area's time mode and ANDs in the owning
// area's time-bit(s), per spec.md §4.3. Abstract areas skip the time
// conjunct entirely (spec.md §4.3 final paragraph).
func (b *builder) withAreaTime(area *AreaDef, abits AreaTimeBits, r reqs.Requirement) reqs.Requirement {
	if area.Abstract {
		return r
	}
	width := b.reg.Len()
	switch area.Time {
	case DayOnly:
		return reqs.And(r.DayOnly(), reqs.Atom(width, abits.DayBit))
	case NightOnly:
		return reqs.And(r.NightOnly(), reqs.Atom(width, abits.NightBit))
	default: // Both
		dayView := reqs.And(r.DayOnly(), reqs.Atom(width, abits.DayBit))
		nightView := reqs.And(r.NightOnly(), reqs.Atom(width, abits.NightBit))
		return reqs.Or(dayView, nightView)
	}
}
