package world

import "github.com/dshills/logicrando/pkg/bits"

// resolver implements reqs.Resolver against a builder's in-progress
// registry. Every category of name the requirement grammar can reference
// (items, options, tricks, events/checks, single-time areas, map-exits,
// single-time entrances) was registered under its literal name, so plain
// lookup covers all of them; only "NAME x N" needs the copy-bit table.
type resolver struct {
	b *builder
}

func (r *resolver) Resolve(name string) (bits.ID, bool) {
	return r.b.reg.Lookup(name)
}

func (r *resolver) CopyBits(name string) ([]bits.ID, bool) {
	copies, ok := r.b.itemCopies[name]
	if !ok || len(copies) < 2 {
		return nil, false
	}
	return copies, true
}
