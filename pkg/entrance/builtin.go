package entrance

import "github.com/dshills/logicrando/pkg/world"

func init() {
	Register(dungeonPoolBuilder{})
	Register(trialPoolBuilder{})
	Register(startPoolBuilder{})
}

// dungeonPoolBuilder implements spec.md §4.8's dungeon-entrance pool: all
// seven dungeons, the six "regular" (required) dungeons only, or none
// (vanilla, an empty no-op pool).
type dungeonPoolBuilder struct{}

func (dungeonPoolBuilder) Name() string { return "dungeon" }

func (dungeonPoolBuilder) Build(w *world.World, s Settings) (*Pool, error) {
	p := &Pool{Name: "dungeon"}
	switch s.DungeonPool {
	case "none":
		return p, nil
	case "required":
		var required []string
		for _, name := range w.EntrancesInPool("dungeon") {
			if w.Entrances[name].Required {
				required = append(required, name)
			}
		}
		exits := w.ExitsInPool("dungeon")
		if len(exits) > len(required) {
			exits = exits[:len(required)]
		}
		p.Entrances = required
		p.Exits = exits
	default: // "all", and "" defaults to the full pool
		p.Entrances = w.EntrancesInPool("dungeon")
		p.Exits = w.ExitsInPool("dungeon")
	}
	return p, nil
}

// trialPoolBuilder implements the silent-realm trial-gate pool, active
// only when ShuffleTrials is set.
type trialPoolBuilder struct{}

func (trialPoolBuilder) Name() string { return "trial" }

func (trialPoolBuilder) Build(w *world.World, s Settings) (*Pool, error) {
	p := &Pool{Name: "trial"}
	if !s.ShuffleTrials {
		return p, nil
	}
	p.Entrances = w.EntrancesInPool("trial")
	p.Exits = w.ExitsInPool("trial")
	return p, nil
}

// startPoolBuilder implements the optional random-starting-province pool,
// active only when RandomStartEntrance is set.
type startPoolBuilder struct{}

func (startPoolBuilder) Name() string { return "start" }

func (startPoolBuilder) Build(w *world.World, s Settings) (*Pool, error) {
	p := &Pool{Name: "start"}
	if !s.RandomStartEntrance {
		return p, nil
	}
	p.Entrances = w.EntrancesInPool("start")
	p.Exits = w.ExitsInPool("start")
	return p, nil
}
