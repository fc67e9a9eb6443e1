// Package reqs implements the DNF requirement algebra of spec.md §4.2
// (component C2): a Requirement is a disjunction of conjunctions of bits
// ("a DNF requirement"), with the property that an Inventory I satisfies a
// Requirement R iff some disjunct of R is a subset of I.
//
// Package reqs also implements the requirement expression language of
// spec.md §6 — the small boolean grammar ("Nothing", "Impossible", "NAME",
// "NAME x N", "|", "&", parentheses) that the world builder compiles into
// Requirement values.
package reqs
