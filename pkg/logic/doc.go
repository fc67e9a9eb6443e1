// Package logic implements the Logic façade (spec.md C6, §4.6): the
// mutable layer that couples the requirement algebra (pkg/reqs), the
// fixed-point solver (pkg/solver), and the placement store (pkg/placement)
// behind invariant-preserving mutators. A Logic starts as a clone of a
// frozen world.World's requirement vector and diverges from it as items
// are granted, locations are assigned, exits are paired with entrances,
// and bits are banned.
package logic
