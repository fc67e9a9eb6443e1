package bits

import (
	"fmt"
	"sort"
	"strings"
)

// ID is a densely assigned, non-negative bit identifier. Every bit has a
// canonical name recorded in the owning Registry.
type ID uint32

// Reserved semantic bits. Build order (spec.md §4.1) always assigns these
// five first, in this order, so their ids are stable across every
// Registry: NewRegistry wires them in before returning.
const (
	Day ID = iota
	Night
	Banned
	Everything
	HintBypass
)

var reservedNames = [...]string{
	Day:         "Day",
	Night:       "Night",
	Banned:      "Banned",
	Everything:  "Everything",
	HintBypass:  "HintBypass",
}

// Registry assigns a dense integer id to every distinguishable fact the
// logic engine tracks and exposes forward (name→id) and reverse (id→name)
// lookups. It is built in one pass, in the order spec.md §4.1 mandates,
// and Freeze must be called before any Inventory is constructed over it.
type Registry struct {
	names  []string
	byName map[string]ID
	frozen bool
}

// NewRegistry creates a Registry pre-seeded with the five reserved bits
// (Day, Night, Banned, Everything, HintBypass), matching build-order step
// 1 of spec.md §4.1.
func NewRegistry() *Registry {
	r := &Registry{
		names:  make([]string, 0, 256),
		byName: make(map[string]ID, 256),
	}
	for _, name := range reservedNames {
		r.mustAdd(name)
	}
	return r
}

// Add assigns the next free id to name and returns it. It panics if the
// registry is frozen or name is already registered — both are programmer
// errors in the world builder, not runtime conditions callers should
// recover from.
func (r *Registry) Add(name string) ID {
	if r.frozen {
		panic(fmt.Sprintf("bits: cannot add %q to a frozen registry", name))
	}
	return r.mustAdd(name)
}

func (r *Registry) mustAdd(name string) ID {
	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("bits: duplicate bit name %q", name))
	}
	id := ID(len(r.names))
	r.names = append(r.names, name)
	r.byName[name] = id
	return id
}

// Freeze finalizes the registry. After Freeze, Len and Name/Lookup never
// change and it is safe to build Inventory/Requirement values sized to
// Len().
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Len returns the number of registered bits.
func (r *Registry) Len() int {
	return len(r.names)
}

// Name returns the canonical name of id. It panics on an out-of-range id,
// since an invalid id indicates a caller bug (a stale id from a different
// registry, or one obtained before Freeze).
func (r *Registry) Name(id ID) string {
	if int(id) >= len(r.names) {
		panic(fmt.Sprintf("bits: id %d out of range (registry has %d bits)", id, len(r.names)))
	}
	return r.names[id]
}

// Lookup resolves a canonical name to its id.
func (r *Registry) Lookup(name string) (ID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// AllWithPrefix returns every bit whose canonical name starts with prefix,
// in ascending id order. It is useful for unique-item grouping and region
// queries but is not on any hot path.
func (r *Registry) AllWithPrefix(prefix string) []ID {
	var out []ID
	for id, name := range r.names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, ID(id))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
