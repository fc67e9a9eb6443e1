package world

import (
	"fmt"
	"strings"
)

// SearchArea resolves a partial address to a full registered name
// (spec.md §4.3 search_area): it consumes base (if non-empty) then
// matches partial against the suffix of every registered name, in
// registry declaration order. The first hit is canonical; any further
// hits are recorded in w.Synonyms as equivalents of the canonical name
// (spec.md §9 "name resolution is not unique").
func (w *World) SearchArea(base, partial string) (canonical string, all []string, err error) {
	query := partial
	if base != "" {
		query = base + " - " + partial
	}

	ids := w.Registry.AllWithPrefix("")
	for _, id := range ids {
		name := w.Registry.Name(id)
		if matchesQuery(name, query, partial) {
			all = append(all, name)
		}
	}
	if len(all) == 0 {
		return "", nil, fmt.Errorf("world: search_area(%q, %q): no match", base, partial)
	}

	canonical = all[0]
	for _, alt := range all[1:] {
		w.Synonyms[alt] = canonical
	}
	return canonical, all, nil
}

func matchesQuery(name, query, partial string) bool {
	if name == query {
		return true
	}
	if strings.HasSuffix(name, " - "+partial) {
		return true
	}
	if strings.HasSuffix(name, "/"+partial) {
		return true
	}
	return false
}
