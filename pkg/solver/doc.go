// Package solver implements the fixed-point reachability solver (spec.md
// component C4): FillInventory saturates a starting inventory with
// everything derivable from a requirement vector; AggregateRequiredItems
// and RestrictedTest build on it to answer "what does reachability depend
// on" and "is target still reachable under these bans" queries, the
// latter memoized with an LRU cache as spec.md §4.4 requires.
package solver
