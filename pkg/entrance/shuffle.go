package entrance

import (
	"errors"
	"fmt"

	"github.com/dshills/logicrando/pkg/logic"
	"github.com/dshills/logicrando/pkg/rng"
	"github.com/dshills/logicrando/pkg/world"
)

// ErrInsufficientExits is returned when a pool has more unassigned
// entrances than currently-accessible exits to pair them with — spec.md
// §4.8's "if a later pairing cannot satisfy start-reachability, the run
// fails (the caller retries with a new seed)".
var ErrInsufficientExits = errors.New("entrance: not enough accessible exits to fill pool")

// Shuffle runs one pool's shuffle-and-pair algorithm: snapshot the
// unassigned entrances and the currently-accessible, unassigned exits in
// p, shuffle the exit list with r, then pair entrance[i] with the
// shuffled exit[i] and commit each pairing via l.LinkExit. No on-line
// swap or backtrack is attempted. Returns the committed exit -> entrance
// pairs.
func Shuffle(r *rng.RNG, l *logic.Logic, w *world.World, p *Pool) (map[string]string, error) {
	unassignedEntrances := make([]string, 0, len(p.Entrances))
	for _, name := range p.Entrances {
		if _, linked := l.Placement().ExitFor(name); !linked {
			unassignedEntrances = append(unassignedEntrances, name)
		}
	}
	if len(unassignedEntrances) == 0 {
		return nil, nil
	}

	exitSubset := make(map[string]world.ExitInfo, len(p.Exits))
	for _, name := range p.Exits {
		if _, linked := l.Placement().EntranceFor(name); linked {
			continue
		}
		exitSubset[name] = w.Exits[name]
	}
	accessible := l.AccessibleExits(exitSubset)
	if len(accessible) < len(unassignedEntrances) {
		return nil, fmt.Errorf("%w: pool %q needs %d, has %d", ErrInsufficientExits, p.Name, len(unassignedEntrances), len(accessible))
	}

	r.Shuffle(len(accessible), func(i, j int) {
		accessible[i], accessible[j] = accessible[j], accessible[i]
	})

	pairs := make(map[string]string, len(unassignedEntrances))
	for i, entranceName := range unassignedEntrances {
		exitName := accessible[i]
		if err := l.LinkExit(exitName, entranceName); err != nil {
			return nil, fmt.Errorf("entrance: linking %s -> %s: %w", exitName, entranceName, err)
		}
		pairs[exitName] = entranceName
	}

	return pairs, nil
}
