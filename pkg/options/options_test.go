package options

import (
	"strings"
	"testing"
)

func TestLoadOptionsFromBytesGeneratesSeed(t *testing.T) {
	o, err := LoadOptionsFromBytes([]byte(`logic_options:
  Open Thunderhead: true
`))
	if err != nil {
		t.Fatalf("LoadOptionsFromBytes failed: %v", err)
	}
	if o.Seed == 0 {
		t.Error("expected a generated non-zero seed")
	}
	if !o.LogicOptions["Open Thunderhead"] {
		t.Error("expected Open Thunderhead to decode true")
	}
}

func TestLoadOptionsFromBytesKeepsExplicitSeed(t *testing.T) {
	o, err := LoadOptionsFromBytes([]byte("seed: 42\n"))
	if err != nil {
		t.Fatalf("LoadOptionsFromBytes failed: %v", err)
	}
	if o.Seed != 42 {
		t.Errorf("expected seed 42, got %d", o.Seed)
	}
}

func TestValidateRejectsBadDungeonPool(t *testing.T) {
	o := &Options{DungeonPool: "bogus"}
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for invalid dungeon_pool")
	}
}

func TestValidateRejectsNegativeStartingItemCount(t *testing.T) {
	o := &Options{StartingItemCounts: map[string]int{"Bow": -1}}
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for negative starting item count")
	}
}

func TestHashIsStableAndSensitiveToContent(t *testing.T) {
	a := &Options{Seed: 1, LogicOptions: map[string]bool{"X": true}}
	b := &Options{Seed: 1, LogicOptions: map[string]bool{"X": true}}
	c := &Options{Seed: 1, LogicOptions: map[string]bool{"X": false}}

	if string(a.Hash()) != string(b.Hash()) {
		t.Error("identical options should hash identically")
	}
	if string(a.Hash()) == string(c.Hash()) {
		t.Error("differing options should hash differently")
	}
}

func TestToYAMLRoundTrips(t *testing.T) {
	o := &Options{Seed: 7, Tricks: []string{"Skip Fire Sanctuary Block"}}
	data, err := o.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	if !strings.Contains(string(data), "Skip Fire Sanctuary Block") {
		t.Errorf("expected YAML to contain the trick name, got %q", data)
	}

	back, err := LoadOptionsFromBytes(data)
	if err != nil {
		t.Fatalf("LoadOptionsFromBytes(ToYAML()) failed: %v", err)
	}
	if back.Seed != 7 || len(back.Tricks) != 1 || back.Tricks[0] != "Skip Fire Sanctuary Block" {
		t.Errorf("round trip mismatch: %+v", back)
	}
}
