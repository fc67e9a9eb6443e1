package fill

import "errors"

// ErrUnplaceable is returned when an item cannot be placed anywhere —
// spec.md §4.9's "if both are empty: fail (unplaceable); the caller may
// reseed" — or when the evict-and-recurse chain revisits an item it has
// already evicted once (a cycle the naive recursion cannot resolve).
var ErrUnplaceable = errors.New("fill: item cannot be placed")
