package reqs

import "github.com/dshills/logicrando/pkg/bits"

// Requirement is a disjunction of conjunctions of bits (a DNF formula).
// Each conjunction is represented as a bits.Inventory whose set bits are
// exactly the bits the conjunct requires; the Requirement is the set of
// such conjuncts (its "disjuncts").
//
// Contracts (spec.md §3):
//   - Impossible: the empty set of disjuncts. Never satisfied.
//   - Trivial: the single disjunct {∅}. Always satisfied.
//
// Requirement values, once constructed, are treated as immutable: And, Or,
// Remove, DayOnly and NightOnly all return new values rather than
// mutating the receiver. This lets a Vector share disjunct Inventories
// across clones without aliasing bugs, as long as callers never call
// Inventory.Add/Remove on a disjunct obtained from a Requirement.
type Requirement struct {
	width     int
	disjuncts []bits.Inventory
}

// Impossible returns the Requirement that is never satisfied.
func Impossible(width int) Requirement {
	return Requirement{width: width}
}

// Trivial returns the Requirement that is always satisfied.
func Trivial(width int) Requirement {
	return Requirement{width: width, disjuncts: []bits.Inventory{bits.New(width)}}
}

// Atom returns the Requirement satisfied exactly when bit is present.
func Atom(width int, bit bits.ID) Requirement {
	return Requirement{width: width, disjuncts: []bits.Inventory{bits.New(width).With(bit)}}
}

// FromConjunct returns the single-disjunct Requirement satisfied exactly
// when every bit set in conjunct is present. It is the building block the
// "NAME x N" atom compiles into: one FromConjunct per N-subset of copy
// bits, Or'd together.
func FromConjunct(conjunct bits.Inventory) Requirement {
	return Requirement{width: conjunct.Len(), disjuncts: []bits.Inventory{conjunct}}
}

// IsImpossible reports whether r has no disjuncts.
func (r Requirement) IsImpossible() bool {
	return len(r.disjuncts) == 0
}

// IsTrivial reports whether r contains the empty conjunct (always
// satisfied), regardless of what else it contains.
func (r Requirement) IsTrivial() bool {
	for _, c := range r.disjuncts {
		if c.Count() == 0 {
			return true
		}
	}
	return false
}

// Disjuncts returns the requirement's conjuncts. Callers must not mutate
// the returned Inventory values in place (see the Requirement doc
// comment); treat them as read-only.
func (r Requirement) Disjuncts() []bits.Inventory {
	return r.disjuncts
}

// Width returns the bit-registry width this requirement was built
// against.
func (r Requirement) Width() int {
	return r.width
}

// Eval reports whether inventory I satisfies r: ∃ c ∈ r: c ⊆ I.
func (r Requirement) Eval(inv bits.Inventory) bool {
	for _, c := range r.disjuncts {
		if c.Subset(inv) {
			return true
		}
	}
	return false
}

// Or returns a ∨ b with absorption applied: the union of both operands'
// disjuncts, then pruning any disjunct that is a (non-strict) superset of
// another kept disjunct.
func Or(a, b Requirement) Requirement {
	width := pickWidth(a, b)
	merged := make([]bits.Inventory, 0, len(a.disjuncts)+len(b.disjuncts))
	merged = append(merged, a.disjuncts...)
	merged = append(merged, b.disjuncts...)
	return Requirement{width: width, disjuncts: absorb(merged)}
}

// And returns a ∧ b, implemented as distribution over Or: the Cartesian
// product of both operands' conjuncts (pairwise union), then absorption.
func And(a, b Requirement) Requirement {
	width := pickWidth(a, b)
	if len(a.disjuncts) == 0 || len(b.disjuncts) == 0 {
		return Requirement{width: width}
	}
	merged := make([]bits.Inventory, 0, len(a.disjuncts)*len(b.disjuncts))
	for _, ca := range a.disjuncts {
		for _, cb := range b.disjuncts {
			merged = append(merged, ca.Union(cb))
		}
	}
	return Requirement{width: width, disjuncts: absorb(merged)}
}

// Remove returns r with every disjunct that mentions bit dropped. This is
// used when an item copy is taken out of circulation (spec.md §4.2).
func (r Requirement) Remove(bit bits.ID) Requirement {
	out := make([]bits.Inventory, 0, len(r.disjuncts))
	for _, c := range r.disjuncts {
		if !c.Has(bit) {
			out = append(out, c)
		}
	}
	return Requirement{width: r.width, disjuncts: out}
}

// DayOnly projects r onto the "it is day" view: disjuncts mentioning
// bits.Night are dropped (incompatible), and bits.Day is stripped from the
// surviving disjuncts (it is now ambient truth, not something that still
// needs satisfying).
func (r Requirement) DayOnly() Requirement {
	return r.timeProject(bits.Night, bits.Day)
}

// NightOnly projects r onto the "it is night" view, symmetric to DayOnly.
func (r Requirement) NightOnly() Requirement {
	return r.timeProject(bits.Day, bits.Night)
}

func (r Requirement) timeProject(opposite, ambient bits.ID) Requirement {
	out := make([]bits.Inventory, 0, len(r.disjuncts))
	for _, c := range r.disjuncts {
		if c.Has(opposite) {
			continue
		}
		out = append(out, c.Without(ambient))
	}
	return Requirement{width: r.width, disjuncts: out}
}

func pickWidth(a, b Requirement) int {
	if a.width != 0 {
		return a.width
	}
	return b.width
}

// absorb removes every disjunct that is a (non-strict) superset of
// another disjunct in the set, per spec.md §3's Or contract: "if a ⊆ b
// both present, drop b".
func absorb(disjuncts []bits.Inventory) []bits.Inventory {
	var kept []bits.Inventory
	for _, c := range disjuncts {
		dominated := false
		for _, d := range kept {
			if d.Subset(c) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}
		filtered := kept[:0:0]
		for _, d := range kept {
			if !c.Subset(d) {
				filtered = append(filtered, d)
			}
		}
		kept = append(filtered, c)
	}
	return kept
}
