package rando_test

import (
	"context"
	"testing"

	"github.com/dshills/logicrando/pkg/fill"
	"github.com/dshills/logicrando/pkg/options"
	"github.com/dshills/logicrando/pkg/pfile"
	"github.com/dshills/logicrando/pkg/rando"
	"github.com/dshills/logicrando/pkg/world"
)

func fixtureWorld(t *testing.T) *world.World {
	t.Helper()
	dungeon := &world.AreaDef{
		Name: "Dungeon",
		Time: world.DayOnly,
		Locations: []world.LocationDef{
			{Name: "Chest", Requirement: "Nothing"},
			{Name: "Demise", Requirement: "Clawshots"},
		},
		Entrances: []world.EntranceDef{
			{Name: "Dungeon Entrance", Time: world.DayOnly, Pool: "dungeon", Required: true},
		},
	}
	hub := &world.AreaDef{
		Name: "Hub",
		Time: world.DayOnly,
		MapExits: []world.MapExitDef{
			{Name: "Gate", Requirement: "Nothing", Pool: "dungeon"},
		},
	}
	root := &world.AreaDef{
		Name:     "Root",
		Abstract: true,
		SubAreas: []*world.AreaDef{hub, dungeon},
	}
	w, err := world.Build(world.Catalog{
		Items: []world.ItemDef{{Name: "Clawshots", Count: 1}},
		Root:  root,
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return w
}

func fixtureConfig(t *testing.T, seed uint64) *rando.Config {
	t.Helper()
	return &rando.Config{
		Seed:  seed,
		World: fixtureWorld(t),
		Options: &options.Options{
			Seed:         seed,
			LogicOptions: map[string]bool{"Hub": true},
			DungeonPool:  "all",
			// Everything is derived automatically by options.Compile from
			// every check bit in the built world (Dungeon/Chest and
			// Dungeon/Demise here), so no override is supplied for it.
			// Confines Clawshots to Dungeon/Chest so the backward-fill
			// algorithm cannot place it at Dungeon/Demise itself, which
			// would wire a self-referential Clawshots<->Demise cycle.
			ItemPlacementLimits: map[string]string{"Clawshots": "Dungeon/Chest"},
		},
		FillConfig: fill.Config{
			MustBePlaced: []string{"Clawshots"},
		},
		DemiseTarget: "Dungeon/Demise",
		Permalink:    "test-permalink",
		Version:      "0.1.0-test",
	}
}

func TestGenerateProducesAPassingResult(t *testing.T) {
	r := rando.New()
	result, err := r.Generate(context.Background(), fixtureConfig(t, 1))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !result.Invariants.Passed {
		t.Fatalf("expected a passing invariant report, got: %v", result.Invariants.Errors)
	}
	if result.PlacementFile.Hash == "" {
		t.Error("expected a non-empty placement-file hash")
	}
	if _, ok := result.PlacementFile.EntranceConns["Hub::Gate"]; !ok {
		t.Errorf("expected Hub::Gate to be linked, got: %v", result.PlacementFile.EntranceConns)
	}
	placedAt, ok := result.Logic.Placement().LocationOf("Clawshots")
	if !ok {
		t.Fatal("expected Clawshots to be placed somewhere")
	}
	if placedAt != "Dungeon/Chest" {
		t.Errorf("expected Clawshots confined to Dungeon/Chest by its area-prefix limit, got %s", placedAt)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	r := rando.New()
	result1, err := r.Generate(context.Background(), fixtureConfig(t, 42))
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	result2, err := r.Generate(context.Background(), fixtureConfig(t, 42))
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}

	encoded1, err := pfile.Encode(result1.PlacementFile)
	if err != nil {
		t.Fatalf("encoding first placement file: %v", err)
	}
	encoded2, err := pfile.Encode(result2.PlacementFile)
	if err != nil {
		t.Fatalf("encoding second placement file: %v", err)
	}
	if string(encoded1) != string(encoded2) {
		t.Errorf("expected byte-identical placement files for the same seed, got:\n%s\nvs\n%s", encoded1, encoded2)
	}
}

func TestGenerateRejectsNilWorld(t *testing.T) {
	cfg := fixtureConfig(t, 1)
	cfg.World = nil
	r := rando.New()
	if _, err := r.Generate(context.Background(), cfg); err == nil {
		t.Fatal("expected an error for a nil World")
	}
}

func TestGenerateRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := rando.New()
	if _, err := r.Generate(ctx, fixtureConfig(t, 1)); err == nil {
		t.Fatal("expected a cancellation error")
	}
}
