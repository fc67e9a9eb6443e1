// Package rng provides deterministic random number generation for the
// randomizer's logic engine.
//
// # Overview
//
// The RNG type ensures reproducible randomization by deriving stage-specific
// seeds from a master seed. This allows each pipeline stage (entrance
// shuffling, backward-fill placement, hash-string rendering) to have
// independent random sequences while the overall run stays deterministic
// for a given (options, seed) pair.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: the run's top-level seed
//   - stageName: pipeline stage identifier (e.g., "entrance_shuffle")
//   - configHash: hash of the decoded option surface
//
// This ensures:
//  1. Same inputs always produce the same RNG sequence (determinism).
//  2. Different stages get independent random sequences (isolation).
//  3. Option changes result in different sequences (sensitivity).
//
// # Usage
//
// Create an RNG for each pipeline stage:
//
//	optHash := opts.Hash()
//	entranceRNG := rng.NewRNG(masterSeed, "entrance_shuffle", optHash)
//	fillRNG := rng.NewRNG(masterSeed, "backward_fill", optHash)
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. The logic engine is single-threaded
// and cooperative (see spec.md §5): one RNG is owned by the Rando instance
// and threaded explicitly through every randomized call, never pulled from
// process-global state.
package rng
