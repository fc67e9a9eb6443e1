package pfile

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := New()
	p.Version = "1.0.0"
	p.Permalink = "AQAAAAAAAAAAAAAAAAAA"
	p.Hash = "Ancient Bow Demise"
	p.StartingItems = []string{"Progressive Sword", "Progressive Sword"}
	p.RequiredDungeons = []string{"Skyview", "Earth Temple"}
	p.ItemLocations = map[string]string{
		"Sky/Chest": "Clawshots",
		"Faron/Key": "Small Key",
	}
	p.GossipStoneHints = map[string][]string{
		"Sky - Stone": {"Sky/Chest"},
	}
	p.TrialHints = map[string][]string{
		"Skyloft Silent Realm": {"Faron/Key"},
	}
	p.EntranceConns = map[string]string{"Skyview Entrance": "Skyview"}
	p.TrialConns = map[string]string{"Skyloft Trial Gate": "Skyloft Silent Realm"}

	data, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got.Version != p.Version || got.Permalink != p.Permalink || got.Hash != p.Hash {
		t.Errorf("scalar fields did not round-trip: %+v", got)
	}
	if len(got.StartingItems) != 2 || got.StartingItems[0] != "Progressive Sword" {
		t.Errorf("starting-items did not round-trip: %v", got.StartingItems)
	}
	if got.ItemLocations["Sky/Chest"] != "Clawshots" {
		t.Errorf("item-locations did not round-trip: %v", got.ItemLocations)
	}
	if len(got.GossipStoneHints["Sky - Stone"]) != 1 {
		t.Errorf("gossip-stone-hints did not round-trip: %v", got.GossipStoneHints)
	}
	if got.EntranceConns["Skyview Entrance"] != "Skyview" {
		t.Errorf("entrance-connections did not round-trip: %v", got.EntranceConns)
	}
}

func TestEncodeUsesExactKeySet(t *testing.T) {
	data, err := Encode(New())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []string{
		`"version"`, `"permalink"`, `"hash"`, `"starting-items"`,
		`"required-dungeons"`, `"item-locations"`, `"gossip-stone-hints"`,
		`"trial-hints"`, `"entrance-connections"`, `"trial-connections"`,
	}
	s := string(data)
	for _, key := range want {
		if !strings.Contains(s, key) {
			t.Errorf("expected key %s in encoded output", key)
		}
	}
}
