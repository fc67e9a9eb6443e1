package reqs

import "github.com/dshills/logicrando/pkg/bits"

// Vector holds one Requirement per bit, plus an opaque flag per bit
// (spec.md §3 RequirementVector). An opaque bit is terminal: the solver
// and the simplifier treat it as a free variable and never expand it —
// this is how an unassigned location's bit stays a placeholder until
// something is placed there.
type Vector struct {
	width  int
	reqs   []Requirement
	opaque []bool
}

// NewVector returns a Vector sized to width bits, every bit initialized to
// Impossible and non-opaque.
func NewVector(width int) *Vector {
	v := &Vector{
		width:  width,
		reqs:   make([]Requirement, width),
		opaque: make([]bool, width),
	}
	for i := range v.reqs {
		v.reqs[i] = Impossible(width)
	}
	return v
}

// Len returns the number of bits the vector covers.
func (v *Vector) Len() int {
	return v.width
}

// Get returns the current requirement for bit.
func (v *Vector) Get(id bits.ID) Requirement {
	return v.reqs[id]
}

// Set replaces the requirement for bit.
func (v *Vector) Set(id bits.ID, r Requirement) {
	v.reqs[id] = r
}

// Or extends the requirement for bit with an additional disjunct: it is
// how runtime overrides (spec.md LogicSettings.runtime_requirements) and
// entrance-pairing fix-ups OR new disjuncts into an existing bit.
func (v *Vector) Or(id bits.ID, extra Requirement) {
	v.reqs[id] = Or(v.reqs[id], extra)
}

// And ANDs an additional requirement into bit's current requirement. Used
// to AND the Banned bit into a banned location's requirement without
// removing it from the graph (spec.md §9 "Banned bit mechanic").
func (v *Vector) And(id bits.ID, extra Requirement) {
	v.reqs[id] = And(v.reqs[id], extra)
}

// Opaque reports whether bit is currently opaque.
func (v *Vector) Opaque(id bits.ID) bool {
	return v.opaque[id]
}

// SetOpaque sets bit's opaque flag.
func (v *Vector) SetOpaque(id bits.ID, opaque bool) {
	v.opaque[id] = opaque
}

// Clone returns an independent copy of v. Requirement values are treated
// as immutable (see the Requirement doc comment), so copying the slice of
// Requirement values is sufficient — no deep copy of each disjunct is
// needed as long as nobody mutates a disjunct Inventory obtained from a
// Requirement in place.
func (v *Vector) Clone() *Vector {
	out := &Vector{
		width:  v.width,
		reqs:   make([]Requirement, len(v.reqs)),
		opaque: make([]bool, len(v.opaque)),
	}
	copy(out.reqs, v.reqs)
	copy(out.opaque, v.opaque)
	return out
}
