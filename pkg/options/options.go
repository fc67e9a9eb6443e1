package options

import (
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/logicrando/pkg/rerr"
)

// Options is the decoded option surface (spec.md §4.7): generic,
// catalog-driven toggles that the compiler (Compile) turns into the
// concrete starting-inventory, ban, pre-placement, and item-placement-limit
// sets that pkg/logic and pkg/placement already expose hooks for. Decoding
// a permalink or a CLI/GUI surface into this struct is out of scope
// (spec.md §1 Non-goals); Options is always loaded from YAML.
type Options struct {
	// Seed is the master seed for the whole run. Zero means "generate one".
	Seed uint64 `yaml:"seed"`

	// LogicOptions are boolean logic-option bits, e.g. "Open Thunderhead",
	// keyed by their exact bit name in the world's OptionBits catalog. An
	// enabled option is granted as a free bit (spec.md §3 LogicSettings.frees)
	// rather than added to starting_inventory, since it must stay available
	// even if some future operation revokes ordinary inventory items.
	LogicOptions map[string]bool `yaml:"logic_options"`

	// Tricks are enabled trick bit names, treated identically to enabled
	// logic options: granted as free bits.
	Tricks []string `yaml:"tricks"`

	// BanTags excludes every location whose world.LocationTags entry
	// intersects this set (spec.md §4.7 "excluded-type tag locations"),
	// e.g. "goddess cube", "rupee".
	BanTags []string `yaml:"ban_tags"`

	// EmptyUnrequiredDungeons bans every dungeon-pool entrance whose
	// world.EntranceInfo has Required == false, when set (spec.md §4.7).
	EmptyUnrequiredDungeons bool `yaml:"empty_unrequired_dungeons"`

	// TreasuresanityInSilentRealms, when false, bans every location tagged
	// "trial relic" (spec.md §4.7).
	TreasuresanityInSilentRealms bool `yaml:"treasuresanity_in_silent_realms"`

	// StartingItemCounts grants count copies of name as starting items, up
	// to however many copies name actually has in the world (spec.md §4.7
	// "starting items": progressive swords, tablets, bottles, etc.).
	StartingItemCounts map[string]int `yaml:"starting_item_counts"`

	// PrePlacements forces location -> item immediately, before the
	// backward-fill algorithm runs (spec.md §4.7 "pre-placements": vanilla
	// crystals, shops, keys, maps, triforces, tadtones).
	PrePlacements map[string]string `yaml:"pre_placements"`

	// ItemPlacementLimits restricts item to locations whose "Area/Location"
	// name starts with areaPrefix (spec.md §4.7 "item placement limits"),
	// fed to placement.SetAreaPrefix.
	ItemPlacementLimits map[string]string `yaml:"item_placement_limits"`

	// DungeonPool selects which dungeon entrances are eligible for the
	// entrance randomizer's (C8) dungeon pool, e.g. "required", "all",
	// "none".
	DungeonPool string `yaml:"dungeon_pool"`

	// ShuffleTrials, when true, includes the trial-gate pool in the
	// entrance randomizer.
	ShuffleTrials bool `yaml:"shuffle_trials"`

	// RandomStartEntrance, when true, includes the start pool in the
	// entrance randomizer.
	RandomStartEntrance bool `yaml:"random_start_entrance"`

	// EndGameRequirements overrides named abstract bits' requirements with
	// an extra OR'd-in disjunct (spec.md §3 LogicSettings.runtime_requirements),
	// e.g. "GoT_raising_requirement", "GoT_opening_requirement",
	// "horde_door_requirement" gated on counted-item thresholds expressed as
	// parseable requirement strings (spec.md §6 grammar). "Everything" is
	// not settable here: Compile always derives it from every check bit in
	// the built world, ignoring any entry under that name.
	EndGameRequirements map[string]string `yaml:"end_game_requirements"`
}

// LoadOptions reads and decodes path as YAML, auto-generating a seed if
// none was given, then validates the result.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("options: reading %s: %w", path, err)
	}
	return LoadOptionsFromBytes(data)
}

// LoadOptionsFromBytes decodes data as YAML, auto-generating a seed if none
// was given, then validates the result.
func LoadOptionsFromBytes(data []byte) (*Options, error) {
	o := &Options{}
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("options: parsing YAML: %w", err)
	}
	if o.Seed == 0 {
		o.Seed = generateSeed()
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("options: invalid: %w", err)
	}
	return o, nil
}

func generateSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Validate checks internal consistency of the decoded option surface.
func (o *Options) Validate() error {
	switch o.DungeonPool {
	case "", "required", "all", "none":
	default:
		return rerr.NewConfigError("dungeon_pool", fmt.Errorf("must be one of required|all|none, got %q", o.DungeonPool))
	}
	for name, count := range o.StartingItemCounts {
		if count < 0 {
			return rerr.NewConfigError(fmt.Sprintf("starting_item_counts[%q]", name), fmt.Errorf("must be >= 0, got %d", count))
		}
	}
	return nil
}

// ToYAML re-serializes o, for persisting alongside a generated seed.
func (o *Options) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("options: marshaling YAML: %w", err)
	}
	return data, nil
}

// Hash returns a stable content hash of o, used to derive per-stage RNG
// seeds (pkg/rng.NewRNG's configHash). The placement file's hash string
// (pkg/pfile) does not use it. Falls back to hashing just the seed if YAML
// marshaling fails.
func (o *Options) Hash() []byte {
	data, err := o.ToYAML()
	if err != nil {
		sum := sha256.Sum256([]byte(fmt.Sprintf("%d", o.Seed)))
		return sum[:]
	}
	sum := sha256.Sum256(data)
	return sum[:]
}
