// Package world implements the world builder (spec.md component C3): it
// turns a parsed area tree plus item/option/trick catalogs (the "already
// parsed" external-collaborator boundary spec.md §1 excludes from scope)
// into the flat bit registry and per-bit requirement vector the rest of
// the system operates on, and provides search_area name resolution.
package world
