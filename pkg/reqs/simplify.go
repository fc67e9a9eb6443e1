package reqs

import "github.com/dshills/logicrando/pkg/bits"

// Simplify normalizes r by re-running absorption over its disjuncts. Or
// and And already absorb their results, so Simplify is mostly useful for
// Requirement values assembled by hand (e.g. directly from FromConjunct
// calls) and for the idempotence property spec.md §8 requires:
// Simplify(Simplify(r)) must equal Simplify(r).
func Simplify(r Requirement) Requirement {
	return Requirement{width: r.width, disjuncts: absorb(append([]bits.Inventory(nil), r.disjuncts...))}
}

// maxInlineRounds bounds ShallowSimplify/DeepSimplify's fixed-point
// iteration. Deep simplification's termination on pathological cycles is
// asserted but not proved by spec.md §9; this visit-counter guard is the
// implementation's answer to that open question.
const maxInlineRounds = 32

// ShallowSimplify returns a new Vector equivalent in Eval semantics to v,
// with forced single-disjunct implication chains inlined into every other
// bit's conjuncts that mention them (spec.md §4.2). Opaque bits are never
// used as inlining sources, and a substitution that would make a bit's
// requirement reference itself is skipped rather than applied — both per
// spec.md's explicit rules.
//
// The returned Vector is a snapshot: it reflects v at the moment
// ShallowSimplify was called. Simplification is never applied to the live
// Vector the logic façade mutates during fill, since a later override to
// an already-inlined bit would otherwise silently fail to propagate. The
// fixed-point solver always evaluates the authoritative, un-simplified
// Vector directly; ShallowSimplify/DeepSimplify exist purely as read-side
// optimizations and debugging aids.
func ShallowSimplify(v *Vector) *Vector {
	out := v.Clone()
	shallowPass(out)
	return out
}

// shallowPass runs one inlining pass over out in place and reports whether
// anything changed.
func shallowPass(out *Vector) bool {
	changedAny := false
	width := out.Len()
	for b := 0; b < width; b++ {
		bid := bits.ID(b)
		if out.Opaque(bid) {
			continue
		}
		chain := out.Get(bid)
		if len(chain.Disjuncts()) != 1 {
			continue
		}
		chainConjunct := chain.Disjuncts()[0]
		if chainConjunct.Has(bid) {
			continue // trivially self-referential
		}

		for o := 0; o < width; o++ {
			if o == b {
				continue
			}
			oid := bits.ID(o)
			oreq := out.Get(oid)
			newDisjuncts := make([]bits.Inventory, 0, len(oreq.Disjuncts()))
			changed := false
			for _, c := range oreq.Disjuncts() {
				if !c.Has(bid) {
					newDisjuncts = append(newDisjuncts, c)
					continue
				}
				merged := c.Without(bid).Union(chainConjunct)
				if merged.Has(oid) {
					// Inlining would make oid's requirement depend on
					// itself; leave this disjunct untouched.
					newDisjuncts = append(newDisjuncts, c)
					continue
				}
				changed = true
				newDisjuncts = append(newDisjuncts, merged)
			}
			if changed {
				out.Set(oid, Requirement{width: oreq.Width(), disjuncts: absorb(newDisjuncts)})
				changedAny = true
			}
		}
	}
	return changedAny
}

// DeepSimplify repeatedly applies ShallowSimplify's inlining pass until it
// reaches a fixed point or maxInlineRounds is exhausted, whichever comes
// first — the "visit in topological order where possible, leave cycle
// participants as-is" behavior spec.md §4.2 asks for, implemented without
// needing an explicit topological sort: bits outside any cycle converge
// within a few rounds, and cycle participants simply stop changing once
// every remaining substitution would be self-referential.
func DeepSimplify(v *Vector) *Vector {
	out := v.Clone()
	for i := 0; i < maxInlineRounds; i++ {
		if !shallowPass(out) {
			break
		}
	}
	return out
}
