package solver

import (
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/dshills/logicrando/pkg/bits"
	"github.com/dshills/logicrando/pkg/reqs"
)

// Solver owns the memoization cache restricted reachability tests share
// (spec.md §4.4: "results must be cached keyed by (frozen-set(banned),
// I₀)"). A Solver is not safe for concurrent use from multiple Logic
// instances simultaneously mutating the same underlying Vector, matching
// spec.md §5's single-threaded model; each Rando/Logic owns its own.
type Solver struct {
	cache *lru.Cache
}

// New returns a Solver whose restricted-fill cache holds up to cacheSize
// entries.
func New(cacheSize int) (*Solver, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	return &Solver{cache: cache}, nil
}

// RestrictedTest reports whether target is reachable from start once
// every bit in banned has its requirement forced to Impossible (spec.md
// §4.4 restricted_test). The underlying saturated inventory for
// (banned, start) is cached, so repeated tests against different targets
// under the same restriction reuse one fill_inventory computation.
func (s *Solver) RestrictedTest(vec *reqs.Vector, start bits.Inventory, banned []bits.ID, target bits.ID) bool {
	return s.restrictedFill(vec, start, banned).Has(target)
}

func (s *Solver) restrictedFill(vec *reqs.Vector, start bits.Inventory, banned []bits.ID) bits.Inventory {
	key := cacheKey(vec.Len(), banned, start)
	if v, ok := s.cache.Get(key); ok {
		return v.(bits.Inventory)
	}

	restricted := vec.Clone()
	for _, b := range banned {
		restricted.Set(b, reqs.Impossible(restricted.Len()))
	}
	full := FillInventory(restricted, start)

	s.cache.Add(key, full)
	return full
}

// cacheKey canonicalizes banned into a set (dedup + sort, via Inventory's
// own bitset) before rendering the key, so two calls that list the same
// banned bits in different orders or with duplicates hit the same cache
// entry.
func cacheKey(width int, banned []bits.ID, start bits.Inventory) string {
	bannedSet := bits.New(width)
	for _, b := range banned {
		bannedSet.Add(b)
	}

	var sb strings.Builder
	sb.WriteString("b:")
	for _, id := range bannedSet.Slice() {
		sb.WriteString(strconv.Itoa(int(id)))
		sb.WriteByte(',')
	}
	sb.WriteString("|s:")
	for _, id := range start.Slice() {
		sb.WriteString(strconv.Itoa(int(id)))
		sb.WriteByte(',')
	}
	return sb.String()
}
