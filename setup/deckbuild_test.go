package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeckSimpleModeShufflesAllCopies(t *testing.T) {
	distinct := []DistinctCard{{Name: "dust_imp", Count: 3}, {Name: "mickey", Count: 2}}
	seed, err := ParseSeed("ab12cd34")
	require.NoError(t, err)

	deck, err := BuildDeck("p1", distinct, seed, "_p1")
	require.NoError(t, err)
	require.Len(t, deck, 5)
	assert.ElementsMatch(t, Copies("p1", distinct), deck)
}

func TestBuildDeckHandSpecModePullsExactCopies(t *testing.T) {
	distinct := []DistinctCard{{Name: "dust_imp", Count: 4}, {Name: "mickey", Count: 4}}
	// p1 hand spec "0000000" -> 7 copies of distinct[0] (dust_imp), but
	// only 4 exist, so this must fail with copy exhaustion.
	seed, err := ParseSeed("0000000.1111111.xy")
	require.NoError(t, err)

	_, err = BuildDeck("p1", distinct, seed, "_p1")
	require.Error(t, err)
}

func TestBuildDeckHandSpecModeSucceeds(t *testing.T) {
	distinct := []DistinctCard{{Name: "dust_imp", Count: 4}, {Name: "mickey", Count: 4}}
	// p1 hand spec "0101010" -> 4 dust_imp + 3 mickey = 7, exactly enough.
	seed, err := ParseSeed("0101010.1010101.xy")
	require.NoError(t, err)

	deck, err := BuildDeck("p1", distinct, seed, "_p1")
	require.NoError(t, err)
	require.Len(t, deck, 8)

	hand := deck[:7]
	dustImps, mickeys := 0, 0
	for _, id := range hand {
		switch id {
		case "p1.dust_imp.a", "p1.dust_imp.b", "p1.dust_imp.c", "p1.dust_imp.d":
			dustImps++
		default:
			mickeys++
		}
	}
	assert.Equal(t, 4, dustImps)
	assert.Equal(t, 3, mickeys)
}

func TestBuildDeckHandSpecOutOfRangeIndex(t *testing.T) {
	distinct := []DistinctCard{{Name: "dust_imp", Count: 4}}
	seed, err := ParseSeed("1111111.0000000.xy")
	require.NoError(t, err)

	_, err = BuildDeck("p1", distinct, seed, "_p1")
	require.Error(t, err)
}
