// Package rando is the top-level orchestrator: the Rando instance that
// owns the seed, threads per-stage derived PRNGs through every
// randomized call, and drives the pipeline World (already built) →
// Options → Logic → Entrance → Fill → Hints → Invariants, returning a
// Result.
//
// A single Generate(ctx, cfg) call runs every stage, checking for
// context cancellation between stages and deriving a per-stage
// rng.NewRNG(seed, stageName, configHash) independently for each
// randomized step.
package rando
