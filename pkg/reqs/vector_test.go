package reqs

import (
	"testing"

	"github.com/dshills/logicrando/pkg/bits"
)

func TestNewVectorStartsImpossibleAndNonOpaque(t *testing.T) {
	v := NewVector(8)
	if v.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		id := bits.ID(i)
		if !v.Get(id).IsImpossible() {
			t.Errorf("bit %d should start Impossible", i)
		}
		if v.Opaque(id) {
			t.Errorf("bit %d should start non-opaque", i)
		}
	}
}

func TestVectorSetGet(t *testing.T) {
	v := NewVector(8)
	r := Atom(8, 3)
	v.Set(3, r)
	if !v.Get(3).Eval(bits.New(8).With(3)) {
		t.Error("Set then Get should round-trip the requirement")
	}
}

func TestVectorOrExtends(t *testing.T) {
	v := NewVector(8)
	v.Set(0, FromConjunct(conjOf(1)))
	v.Or(0, FromConjunct(conjOf(2)))

	r := v.Get(0)
	if !r.Eval(bits.New(8).With(1)) || !r.Eval(bits.New(8).With(2)) {
		t.Errorf("Or should extend the requirement with the new disjunct, got %v", r.Disjuncts())
	}
}

func TestVectorAndRestricts(t *testing.T) {
	v := NewVector(8)
	v.Set(0, Or(FromConjunct(conjOf(1)), FromConjunct(conjOf(2))))
	v.And(0, FromConjunct(conjOf(3)))

	r := v.Get(0)
	if r.Eval(bits.New(8).With(1)) {
		t.Error("And should restrict the requirement, bit 1 alone should no longer satisfy")
	}
	if !r.Eval(bits.New(8).With(1).With(3)) {
		t.Error("And should still be satisfiable alongside the ANDed requirement")
	}
}

func TestVectorOpaqueFlag(t *testing.T) {
	v := NewVector(8)
	v.SetOpaque(4, true)
	if !v.Opaque(4) {
		t.Error("SetOpaque(true) should mark the bit opaque")
	}
	v.SetOpaque(4, false)
	if v.Opaque(4) {
		t.Error("SetOpaque(false) should clear opaque")
	}
}

func TestVectorCloneIsIndependent(t *testing.T) {
	v := NewVector(8)
	v.Set(0, Atom(8, 1))
	v.SetOpaque(2, true)

	clone := v.Clone()
	clone.Set(0, Atom(8, 5))
	clone.SetOpaque(2, false)

	if !v.Get(0).Eval(bits.New(8).With(1)) {
		t.Error("mutating a clone's requirement must not affect the original")
	}
	if !v.Opaque(2) {
		t.Error("mutating a clone's opaque flag must not affect the original")
	}
}
