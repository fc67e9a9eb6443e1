package pfile

import (
	"crypto/md5"
	"strconv"
	"strings"

	"github.com/dshills/logicrando/pkg/rng"
)

// flavorNames is the fixed word list the hash string draws from,
// analogous to the original's names.txt. Three are picked (with
// replacement) and rendered space-separated.
var flavorNames = []string{
	"Ancient", "Arrow", "Beetle", "Bird", "Bokoblin", "Bomb", "Bow",
	"Cave", "Cloud", "Clawshot", "Crystal", "Demise", "Desert", "Dowsing",
	"Dragon", "Earth", "Ember", "Fan", "Fire", "Floria", "Gate", "Gondo",
	"Goddess", "Groosenator", "Harp", "Hero", "Horde", "Isle", "Key",
	"Lanayru", "Lava", "Lumpy", "Mogma", "Moldarach", "Nayru", "Owlan",
	"Quill", "Relic", "Rupee", "Sacred", "Scrapper", "Scrap", "Shield",
	"Silent", "Skipper", "Skyloft", "Skyward", "Sparring", "Spiral",
	"Spirit", "Statue", "Storm", "Sword", "Tablet", "Temple", "Thunder",
	"Tumbleweed", "Volcano", "Whip", "Wing", "Woods", "Zephyros",
}

// ComputeHash derives the hash string spec.md §6 specifies:
// md5(seed ∥ permalink ∥ version), seeding a secondary PRNG that picks
// three tokens from a fixed name list, rendered space-separated.
// Grounded on the original's _get_rando_hash (md5 over the three fields
// in that exact order, then a freshly-seeded PRNG choosing three
// names.txt entries with replacement) and on pkg/rng.NewRNG's own
// "first 8 bytes of a SHA/MD5-family digest become the derived seed"
// convention, reused here rather than hand-rolling a second derivation
// scheme for the one PRNG the rest of the pipeline doesn't already own.
func ComputeHash(seed uint64, permalink, version string) string {
	sum := md5.New()
	sum.Write([]byte(strconv.FormatUint(seed, 10)))
	sum.Write([]byte(permalink))
	sum.Write([]byte(version))
	digest := sum.Sum(nil)

	r := rng.NewRNG(0, "pfile-hash", digest)

	words := make([]string, 3)
	for i := range words {
		words[i] = flavorNames[r.Intn(len(flavorNames))]
	}
	return strings.Join(words, " ")
}
