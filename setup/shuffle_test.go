package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffleIsDeterministic(t *testing.T) {
	a := []string{"p1.a.a", "p1.a.b", "p1.a.c", "p1.a.d", "p1.a.e"}
	b := append([]string{}, a...)

	shuffle(a, "seed1")
	shuffle(b, "seed1")

	assert.Equal(t, a, b)
}

func TestShuffleDiffersAcrossSeeds(t *testing.T) {
	a := []string{"p1.a.a", "p1.a.b", "p1.a.c", "p1.a.d", "p1.a.e"}
	b := append([]string{}, a...)

	shuffle(a, "seed1")
	shuffle(b, "seed2")

	assert.NotEqual(t, a, b)
}

func TestShufflePreservesElements(t *testing.T) {
	original := []string{"p1.a.a", "p1.a.b", "p1.a.c"}
	ids := append([]string{}, original...)
	shuffle(ids, "anything")
	assert.ElementsMatch(t, original, ids)
}
