// Package entrance implements the entrance randomizer: pool partitioning
// over a built world.World, shuffle-and-pair assignment driven by an
// injected pkg/rng.RNG, and LinkExit installation through pkg/logic.
// Pool construction is extensible via a registered PoolBuilder strategy
// registry.
package entrance
