package main

import "github.com/dshills/logicrando/pkg/world"

// buildFixtureCatalog returns a small, hand-built world standing in for
// the out-of-scope world-description parser (SPEC_FULL.md §5 Non-goals:
// "cmd/randomize... uses a small embedded world fixture in place of the
// out-of-scope parser, exactly as a caller would hand pkg/world an
// already-parsed description"). The shape echoes the flavor of
// original_source/ (a starting province gating a single required
// dungeon, itself gating the final boss check) without reproducing any
// of its data wholesale.
func buildFixtureCatalog() world.Catalog {
	skyview := &world.AreaDef{
		Name: "Skyview Temple",
		Time: world.DayOnly,
		Locations: []world.LocationDef{
			{Name: "Entrance Chest", Requirement: "Nothing"},
			{Name: "Boss Key Chest", Requirement: "Beetle"},
			{Name: "Ghirahim 1", Requirement: "Beetle & Progressive Sword x 1", Tags: []string{"boss"}, HintRegion: "Skyview Temple"},
		},
		Entrances: []world.EntranceDef{
			{Name: "Skyview Temple Entrance", Time: world.DayOnly, Pool: "dungeon", Required: true},
		},
	}

	faronWoods := &world.AreaDef{
		Name: "Faron Woods",
		Time: world.DayOnly,
		Locations: []world.LocationDef{
			{Name: "Deep Woods Chest", Requirement: "Nothing", HintRegion: "Faron Woods"},
			{Name: "Lake Floria Goddess Chest", Requirement: "Progressive Sword x 1", Tags: []string{"goddess cube"}, HintRegion: "Faron Woods"},
		},
		MapExits: []world.MapExitDef{
			{Name: "Skyview Temple Gate", Requirement: "Nothing", Pool: "dungeon"},
		},
	}

	skyloft := &world.AreaDef{
		Name:     "Skyloft",
		Time:     world.Both,
		CanSleep: true,
		Locations: []world.LocationDef{
			{Name: "Sparring Hall Chest", Requirement: "Nothing", HintRegion: "Skyloft"},
			{Name: "Demise", Requirement: "Ghirahim 1 & Progressive Sword x 3", Tags: []string{"finale"}},
		},
		Exits: []world.ExitDef{
			{Target: "Faron Woods", Requirement: "Nothing"},
		},
		Entrances: []world.EntranceDef{
			{Name: "Skyloft Start", Time: world.Both, Pool: "start"},
		},
	}

	root := &world.AreaDef{
		Name:     "The Surface",
		Abstract: true,
		SubAreas: []*world.AreaDef{skyloft, faronWoods, skyview},
	}

	return world.Catalog{
		Items: []world.ItemDef{
			{Name: "Progressive Sword", Count: 3},
			{Name: "Beetle", Count: 1},
		},
		OptionBits: []string{"Open Thunderhead"},
		Root:       root,
	}
}

// fixtureMustBePlaced names every individual copy bit the item catalog
// produced (world.Build names a Count>1 item's copies "NAME #1", "NAME
// #2", ... in insertion order — spec.md §4.1 build order step 2), the
// set the backward-fill algorithm (C9) must place before anything else.
func fixtureMustBePlaced() []string {
	return []string{
		"Progressive Sword #1", "Progressive Sword #2", "Progressive Sword #3",
		"Beetle",
	}
}
