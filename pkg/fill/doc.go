// Package fill implements the backward-fill algorithm (spec.md C9, §4.9):
// truly-progress detection, place-or-evict-and-recurse placement, a
// failure-tolerant may-be pass, and final duplicable-junk fill. Every
// random choice is drawn from a single injected pkg/rng.RNG, and every
// slice it chooses among is already pinned to a deterministic order by
// pkg/logic's accessibility queries.
package fill
