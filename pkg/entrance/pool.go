package entrance

import (
	"fmt"
	"sync"

	"github.com/dshills/logicrando/pkg/world"
)

// Pool is a named shuffle candidate set: the entrances to fill and the
// exits eligible to fill them (spec.md §4.8).
type Pool struct {
	Name      string
	Entrances []string
	Exits     []string
}

// Settings is the subset of a compiled options.Settings/options.Options
// the builtin pool builders need, kept narrow so pkg/entrance does not
// import pkg/options (avoiding a dependency cycle risk and keeping the
// builder interface pool-shaped, not option-shaped).
type Settings struct {
	DungeonPool         string // "", "required", "all", "none"
	ShuffleTrials       bool
	RandomStartEntrance bool
}

// PoolBuilder constructs one named Pool against a built World and the
// compiled run Settings (spec.md §9: pool construction is the extensible
// half of the entrance randomizer; fill-time constraint enforcement is
// explicitly not attempted).
type PoolBuilder interface {
	Name() string
	Build(w *world.World, s Settings) (*Pool, error)
}

var (
	mu       sync.RWMutex
	builders = make(map[string]PoolBuilder)
)

// Register adds b to the global registry. Panics if its name is already
// registered.
func Register(b PoolBuilder) {
	mu.Lock()
	defer mu.Unlock()
	name := b.Name()
	if _, exists := builders[name]; exists {
		panic(fmt.Sprintf("entrance: pool builder %q already registered", name))
	}
	builders[name] = b
}

// Get retrieves a registered PoolBuilder by name, or nil if not found.
func Get(name string) PoolBuilder {
	mu.RLock()
	defer mu.RUnlock()
	return builders[name]
}

// List returns every registered pool builder name.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	return names
}
