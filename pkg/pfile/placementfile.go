package pfile

import "encoding/json"

// PlacementFile is the exact JSON schema spec.md §6 names: "a JSON
// document with exactly the keys version, permalink, hash, starting-items,
// required-dungeons, item-locations, gossip-stone-hints, trial-hints,
// entrance-connections, trial-connections." Field order and key spelling
// here are load-bearing — they are the wire contract with the
// game-patcher, not a style choice. Grounded on the original
// PlacementFile.to_json_str/_read_from_json key set, one-for-one.
type PlacementFile struct {
	Version          string              `json:"version"`
	Permalink        string              `json:"permalink"`
	Hash             string              `json:"hash"`
	StartingItems    []string            `json:"starting-items"`
	RequiredDungeons []string            `json:"required-dungeons"`
	ItemLocations    map[string]string   `json:"item-locations"`
	GossipStoneHints map[string][]string `json:"gossip-stone-hints"`
	TrialHints       map[string][]string `json:"trial-hints"`
	EntranceConns    map[string]string   `json:"entrance-connections"`
	TrialConns       map[string]string   `json:"trial-connections"`
}

// New returns a PlacementFile with every map/slice field initialized
// empty, so Encode never emits a JSON `null` for an unused field.
func New() *PlacementFile {
	return &PlacementFile{
		StartingItems:    []string{},
		RequiredDungeons: []string{},
		ItemLocations:    map[string]string{},
		GossipStoneHints: map[string][]string{},
		TrialHints:       map[string][]string{},
		EntranceConns:    map[string]string{},
		TrialConns:       map[string]string{},
	}
}

// Encode serializes p to indented JSON.
func Encode(p *PlacementFile) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// EncodeCompact serializes p to JSON without indentation, for storage or
// transmission — mirrors export.ExportJSONCompact.
func EncodeCompact(p *PlacementFile) ([]byte, error) {
	return json.Marshal(p)
}

// Decode parses data into a PlacementFile. Decode(Encode(p)) reproduces p
// field-for-field (spec.md §6's round-trip fidelity requirement) — the
// seed itself is never a placement-file field, so there is nothing to
// strip ("modulo seed removal" is automatic here, not a manual step).
func Decode(data []byte) (*PlacementFile, error) {
	p := New()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}
