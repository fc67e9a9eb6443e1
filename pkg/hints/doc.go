// Package hints implements the hint oracle (spec.md C10, §4.10): a
// pure read-side set of queries over a finished placement — spheres of
// the way, useful items, barren regions, and playthrough progression
// spheres. Nothing here mutates the Logic it queries, and none of it
// produces hint *text* or gossip-stone placement, both explicitly out of
// scope (spec.md Non-goals).
package hints
