// Package bits implements the bit registry and Inventory of the
// reachability engine (spec.md §4.1, component C1).
//
// Every distinguishable fact the logic engine reasons about — an item
// copy, an area-with-time-of-day, an option toggle, a trick, an event, an
// entrance/exit — is assigned one densely-numbered, non-negative integer
// id: a bit. The Registry assigns these ids in the fixed build order
// spec.md mandates and is frozen once built; after freezing, bit ids
// never move. Inventory is a bitset over the frozen registry with the
// usual set operations.
package bits
