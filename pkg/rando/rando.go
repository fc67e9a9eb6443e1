package rando

import (
	"context"
	"fmt"

	"github.com/dshills/logicrando/pkg/entrance"
	"github.com/dshills/logicrando/pkg/fill"
	"github.com/dshills/logicrando/pkg/hints"
	"github.com/dshills/logicrando/pkg/invariants"
	"github.com/dshills/logicrando/pkg/logic"
	"github.com/dshills/logicrando/pkg/options"
	"github.com/dshills/logicrando/pkg/pfile"
	"github.com/dshills/logicrando/pkg/placement"
	"github.com/dshills/logicrando/pkg/reqs"
	"github.com/dshills/logicrando/pkg/rerr"
	"github.com/dshills/logicrando/pkg/rng"
)

// entrancePools lists the builtin pool names Generate drives, in the
// order spec.md §4.8 discusses them: dungeon entrances first, then the
// optional silent-realm trial gates, then the optional starting
// province. A pool absent from the registry (entrance.Get returns nil)
// is simply skipped, so a caller that never imported pkg/entrance's
// builtins still gets a working, pool-free run.
var entrancePools = []string{"dungeon", "trial", "start"}

// Result is everything one Generate call produced: the mutated Logic (for
// a caller that wants an SVG debug dump via pkg/pfile), the compiled
// Settings, the fill and hint-query results, the invariant report, and
// the finished placement file ready for pkg/pfile.Encode.
type Result struct {
	Logic         *logic.Logic
	Settings      *options.Settings
	Fill          *fill.Result
	SotSItems     []string
	UsefulItems   []string
	Barren        *hints.BarrenReport
	Spheres       [][]string
	Invariants    *invariants.Report
	PlacementFile *pfile.PlacementFile
}

// Rando is the stateless top-level orchestrator. It carries no injectable
// per-stage strategies of its own: the one swappable-strategy point this
// domain has, entrance pool construction, is already an open registry
// (pkg/entrance.Register), not a constructor-time dependency.
type Rando struct{}

// New returns a ready-to-use Rando.
func New() *Rando {
	return &Rando{}
}

// Generate drives one attempt of the full randomize pipeline against cfg.
// It makes exactly one attempt with the one seed cfg.Seed names: a
// GenerationFailed error puts reseeding in the caller's hands, not this
// call's — Generate never retries internally.
func (g *Rando) Generate(ctx context.Context, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configHash := cfg.Hash()
	entranceRNG := rng.NewRNG(cfg.Seed, "entrance", configHash)
	fillRNG := rng.NewRNG(cfg.Seed, "fill", configHash)

	settings, err := options.Compile(cfg.Options, cfg.World)
	if err != nil {
		return nil, rerr.NewConfigError("options", err)
	}

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	p := placement.New(cfg.UnplacedItems)
	for _, item := range settings.StartingInventory {
		p.AddStartingItem(item)
	}
	for item, prefix := range settings.ItemPlacementLimits {
		p.SetAreaPrefix(item, prefix)
	}

	l := logic.New(cfg.World, p)

	if err := applyFrees(l, settings.Frees); err != nil {
		return nil, err
	}
	applyEndGameRequirements(l, settings.EndGameRequirements)
	if err := applyBans(l, settings.Bans); err != nil {
		return nil, err
	}
	if err := applyPrePlacements(l, settings.PrePlacements); err != nil {
		return nil, err
	}

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	entranceConns, err := shuffleEntrances(entranceRNG, l, cfg)
	if err != nil {
		return nil, err
	}

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	fillResult, err := fill.Run(fillRNG, l, cfg.FillConfig)
	if err != nil {
		return nil, rerr.AsGenerationFailed("backward-fill", err)
	}

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	demiseTarget := cfg.DemiseTarget
	if demiseTarget == "" {
		demiseTarget = hints.DefaultTarget
	}

	sots, err := hints.GetSotSItems(l, demiseTarget)
	if err != nil {
		return nil, rerr.NewNameResolutionFailure(demiseTarget, err)
	}
	useful, err := hints.GetUsefulItems(l, demiseTarget)
	if err != nil {
		return nil, rerr.NewNameResolutionFailure(demiseTarget, err)
	}
	barren, err := hints.GetBarrenRegions(l, demiseTarget)
	if err != nil {
		return nil, rerr.NewNameResolutionFailure(demiseTarget, err)
	}
	spheres := hints.CalculatePlaythroughProgressionSpheres(l)

	report, err := invariants.Validate(l, demiseTarget, settings.Bans, cfg.FillConfig.MustBePlaced)
	if err != nil {
		return nil, err
	}

	pf := buildPlacementFile(cfg, l, settings, entranceConns)

	return &Result{
		Logic:         l,
		Settings:      settings,
		Fill:          fillResult,
		SotSItems:     sots,
		UsefulItems:   useful,
		Barren:        barren,
		Spheres:       spheres,
		Invariants:    report,
		PlacementFile: pf,
	}, nil
}

func checkDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return rerr.AsGenerationFailed("context cancelled", ctx.Err())
	default:
		return nil
	}
}

// applyFrees forces every name in frees Trivial (spec.md §4.7: enabled
// logic options and tricks are granted as free bits, independent of
// ordinary inventory state).
func applyFrees(l *logic.Logic, frees []string) error {
	width := l.Vector().Len()
	for _, name := range frees {
		id, ok := l.Registry().Lookup(name)
		if !ok {
			return rerr.NewConfigError(name, fmt.Errorf("free bit not found in world registry"))
		}
		l.Vector().Set(id, reqs.Trivial(width))
	}
	return nil
}

// applyEndGameRequirements ORs each compiled override requirement into
// its named bit's current requirement (spec.md §3 LogicSettings.
// runtime_requirements). Names were already validated to exist in the
// registry by options.Compile, so a missing lookup here would indicate a
// pkg/options bug, not bad user input; it is silently skipped rather than
// treated as fatal, mirroring applyBans/applyPrePlacements's trust in an
// already-compiled Settings.
func applyEndGameRequirements(l *logic.Logic, overrides map[string]reqs.Requirement) {
	for name, req := range overrides {
		if id, ok := l.Registry().Lookup(name); ok {
			l.Vector().Or(id, req)
		}
	}
}

func applyBans(l *logic.Logic, bans []string) error {
	for _, name := range bans {
		if err := l.Ban(name); err != nil {
			return rerr.NewConfigError(name, err)
		}
	}
	return nil
}

// applyPrePlacements forces every location -> item assignment before the
// backward-fill algorithm runs (spec.md §4.7). A conflict here (two
// pre-placements naming the same location, or a location already
// occupied some other way) is fatal configuration error, not a
// fill-time evict-and-recurse situation (spec.md §7: PlacementConflict
// "in plando or during validation, fatal").
func applyPrePlacements(l *logic.Logic, prePlacements map[string]string) error {
	for loc, item := range prePlacements {
		if err := l.PlaceItem(loc, item); err != nil {
			return rerr.NewPlacementConflict(loc, err)
		}
	}
	return nil
}

// shuffleEntrances runs every registered builtin pool builder (spec.md
// §4.8), in entrancePools order, building then shuffling each one, and
// returns the union of every pool's committed exit -> entrance pairs.
func shuffleEntrances(r *rng.RNG, l *logic.Logic, cfg *Config) (map[string]string, error) {
	conns := make(map[string]string)
	poolSettings := entrance.Settings{
		DungeonPool:         cfg.Options.DungeonPool,
		ShuffleTrials:       cfg.Options.ShuffleTrials,
		RandomStartEntrance: cfg.Options.RandomStartEntrance,
	}
	for _, name := range entrancePools {
		builder := entrance.Get(name)
		if builder == nil {
			continue
		}
		pool, err := builder.Build(cfg.World, poolSettings)
		if err != nil {
			return nil, rerr.NewConfigError(name, err)
		}
		pairs, err := entrance.Shuffle(r, l, cfg.World, pool)
		if err != nil {
			return nil, rerr.AsGenerationFailed("entrance shuffle: "+name, err)
		}
		for exit, ent := range pairs {
			conns[exit] = ent
		}
	}
	return conns, nil
}

// buildPlacementFile assembles the finished pfile.PlacementFile (spec.md
// §6) from the mutated Logic and the entrance pairs this run committed.
// Trial connections are split out from ordinary entrance connections by
// checking the trial pool builder's own Entrances list, so a caller
// consuming the placement file sees the same two-table split the
// original graph_logic.PlacementFile carries.
func buildPlacementFile(cfg *Config, l *logic.Logic, settings *options.Settings, entranceConns map[string]string) *pfile.PlacementFile {
	pf := pfile.New()
	pf.Version = cfg.Version
	pf.Permalink = cfg.Permalink
	pf.Hash = pfile.ComputeHash(cfg.Seed, cfg.Permalink, cfg.Version)
	pf.StartingItems = append([]string(nil), settings.StartingInventory...)
	pf.ItemLocations = l.Placement().Locations()

	trialEntrances := make(map[string]bool)
	if builder := entrance.Get("trial"); builder != nil {
		if pool, err := builder.Build(cfg.World, entrance.Settings{ShuffleTrials: cfg.Options.ShuffleTrials}); err == nil {
			for _, name := range pool.Entrances {
				trialEntrances[name] = true
			}
		}
	}
	for exit, ent := range entranceConns {
		if trialEntrances[ent] {
			pf.TrialConns[exit] = ent
			continue
		}
		pf.EntranceConns[exit] = ent
	}

	for name, info := range l.Entrances() {
		if info.Required {
			pf.RequiredDungeons = append(pf.RequiredDungeons, name)
		}
	}

	return pf
}
