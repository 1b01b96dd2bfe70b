package setup

import (
	"hash/fnv"
	"math/rand"
)

// seedInt64 folds an arbitrary seed string into an int64 RNG seed via
// FNV-1a, since math/rand.NewSource wants an integer but spec.md's seeds
// are strings.
func seedInt64(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}

// shuffle performs an in-place Fisher-Yates shuffle seeded deterministically
// by seed, the same backward-swap pattern as the teacher engine's
// GameState.ShuffleDeck, adapted to a string seed via a math/rand source
// instead of a hand-rolled LCG.
func shuffle(ids []string, seed string) {
	rng := rand.New(rand.NewSource(seedInt64(seed)))
	for i := len(ids) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}
