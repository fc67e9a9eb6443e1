package rando

import (
	"fmt"

	"github.com/dshills/logicrando/pkg/fill"
	"github.com/dshills/logicrando/pkg/options"
	"github.com/dshills/logicrando/pkg/rerr"
	"github.com/dshills/logicrando/pkg/world"
)

// Config bundles everything one Generate call needs: the already-built
// World (spec.md §1 Non-goals: parsing world-description data is an
// external collaborator's job), the decoded option surface, the master
// seed, the three item sets the backward-fill algorithm (C9) needs, and
// the bookkeeping fields the placement file (§6) and the Completeness
// check (§8) need to name their targets.
type Config struct {
	// Seed is the master seed threading every per-stage PRNG (spec.md §5:
	// "owned by the Rando instance... never pulled from process-global
	// state").
	Seed uint64

	// World is the frozen build-time template (C3's output). Treated as
	// read-only for the lifetime of this Generate call.
	World *world.World

	// Options is the decoded option surface (C7's input).
	Options *options.Options

	// FillConfig names the must-be-placed, may-be-placed, and duplicable
	// item sets the backward-fill algorithm (C9) needs; this is game-data
	// the option surface alone cannot derive.
	FillConfig fill.Config

	// UnplacedItems seeds the Placement store's unplaced-item set (e.g.
	// maps under a removed-map-mode style setting) — items that must
	// never be assigned to any location. Optional; nil means none.
	UnplacedItems []string

	// DemiseTarget is the finished world's fully-qualified "Area/Location"
	// address for its Demise-equivalent goal check, fed to
	// pkg/invariants.CheckCompleteness and pkg/hints' SotS/useful/barren
	// queries. Empty defaults to the bare "Demise" convention those
	// packages already fall back to.
	DemiseTarget string

	// Permalink and Version feed the placement file's hash-string
	// derivation (spec.md §6: md5(seed ∥ permalink ∥ version)) and its
	// own version/permalink fields.
	Permalink string
	Version   string
}

// Validate checks the structural preconditions Generate relies on before
// doing any work, failing fast on a malformed Config.
func (c *Config) Validate() error {
	if c.World == nil {
		return rerr.NewConfigError("world", fmt.Errorf("must not be nil"))
	}
	if c.Options == nil {
		return rerr.NewConfigError("options", fmt.Errorf("must not be nil"))
	}
	return nil
}

// Hash returns a stable content hash of the run's option surface, used to
// derive every per-stage rng.NewRNG seed (master seed + stage name +
// config hash). It deliberately hashes only Options, not World: World is
// a structural, code-level input rather than something a run's options
// vary.
func (c *Config) Hash() []byte {
	return c.Options.Hash()
}
