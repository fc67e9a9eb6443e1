// Package invariants checks the post-randomize properties spec.md §7
// (InvariantViolation) and §8 (Testable Properties) name: Completeness,
// Bijectivity of entrance pairings, Placement-limit honored, starting
// items untouched, unplaced items absent, and ban respected. Determinism
// and the DNF/solver algebraic laws are not checked here — they are
// per-run/per-call properties exercised by pkg/rando and pkg/reqs/
// pkg/solver's own test suites, not a property of one finished Logic.
package invariants
