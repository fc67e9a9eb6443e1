package hints

import (
	"testing"

	"github.com/dshills/logicrando/pkg/logic"
	"github.com/dshills/logicrando/pkg/placement"
	"github.com/dshills/logicrando/pkg/world"
)

// fixtureWorld builds a small chain: Sky is always accessible; Demise
// requires Clawshots (via the Boss check) and Key (via the Vault check).
// Clawshots and Key both live in region "Sky Lower" (useful); ChestB, an
// item-less event check, is the sole member of region "Sky Upper" (holds
// no useful item, but is reachable — the barren case); region
// "Locked Grove" is gated behind a bit nothing ever grants (the
// inaccessible case).
func fixtureWorld(t *testing.T) *world.World {
	t.Helper()
	sky := &world.AreaDef{
		Name: "Sky",
		Time: world.DayOnly,
		Locations: []world.LocationDef{
			{Name: "ChestA", Requirement: "Nothing", HintRegion: "Sky Lower"},
			{Name: "ChestB", Requirement: "Nothing", HintRegion: "Sky Upper"},
			{Name: "ChestC", Requirement: "Nothing", HintRegion: "Sky Lower"},
			{Name: "Boss", Requirement: "Clawshots", HintRegion: "Sky Lower"},
			{Name: "Vault", Requirement: "Key", HintRegion: "Sky Lower"},
			{Name: "Demise", Requirement: "Sky/Boss & Sky/Vault"},
			{Name: "Grove", Requirement: "Impossible", HintRegion: "Locked Grove"},
		},
	}
	w, err := world.Build(world.Catalog{
		Items: []world.ItemDef{
			{Name: "Clawshots", Count: 1},
			{Name: "Key", Count: 1},
		},
		Root: sky,
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return w
}

func newLogic(t *testing.T) *logic.Logic {
	t.Helper()
	w := fixtureWorld(t)
	l := logic.New(w, placement.New(nil))
	if err := l.AddItem("Sky"); err != nil {
		t.Fatalf("AddItem(Sky) failed: %v", err)
	}
	if err := l.PlaceItem("Sky/ChestA", "Clawshots"); err != nil {
		t.Fatalf("placing Clawshots: %v", err)
	}
	if err := l.PlaceItem("Sky/ChestC", "Key"); err != nil {
		t.Fatalf("placing Key: %v", err)
	}
	return l
}

func TestGetSotSItemsFindsBothGatingItems(t *testing.T) {
	l := newLogic(t)

	sots, err := GetSotSItems(l, "Sky/Demise")
	if err != nil {
		t.Fatalf("GetSotSItems failed: %v", err)
	}
	if len(sots) != 2 {
		t.Fatalf("expected 2 SotS items, got %v", sots)
	}
	seen := map[string]bool{}
	for _, name := range sots {
		seen[name] = true
	}
	if !seen["Clawshots"] || !seen["Key"] {
		t.Errorf("expected Clawshots and Key, got %v", sots)
	}
}

func TestGetUsefulItemsMatchesSotS(t *testing.T) {
	l := newLogic(t)

	useful, err := GetUsefulItems(l, "Sky/Demise")
	if err != nil {
		t.Fatalf("GetUsefulItems failed: %v", err)
	}
	if len(useful) != 2 {
		t.Errorf("expected 2 useful items, got %v", useful)
	}
}

func TestGetBarrenRegionsClassifiesEachRegion(t *testing.T) {
	l := newLogic(t)

	report, err := GetBarrenRegions(l, "Sky/Demise")
	if err != nil {
		t.Fatalf("GetBarrenRegions failed: %v", err)
	}

	foundUpper := false
	for _, r := range report.Barren {
		if r == "Sky Upper" {
			foundUpper = true
		}
		if r == "Sky Lower" {
			t.Errorf("Sky Lower holds Clawshots and Key, both useful — must not be barren")
		}
	}
	if !foundUpper {
		t.Errorf("expected Sky Upper (reachable, holds no useful item) to be barren, got %v", report.Barren)
	}

	foundLocked := false
	for _, r := range report.Inaccessible {
		if r == "Locked Grove" {
			foundLocked = true
		}
	}
	if !foundLocked {
		t.Errorf("expected Locked Grove to be inaccessible, got %v", report.Inaccessible)
	}
}

func TestCalculatePlaythroughProgressionSpheresAdvancesInWaves(t *testing.T) {
	l := newLogic(t)

	spheres := CalculatePlaythroughProgressionSpheres(l)
	if len(spheres) == 0 {
		t.Fatal("expected at least one sphere")
	}
	// Every check should show up in exactly one sphere.
	seen := map[string]bool{}
	for _, wave := range spheres {
		for _, name := range wave {
			if seen[name] {
				t.Errorf("check %q appeared in more than one sphere", name)
			}
			seen[name] = true
		}
	}
	if !seen["Sky/Demise"] {
		t.Error("expected Sky/Demise to eventually appear in some sphere")
	}
}
