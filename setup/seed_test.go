package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSeedSegment(t *testing.T) {
	assert.True(t, IsSeedSegment("ab12cd34"))
	assert.True(t, IsSeedSegment("a1b2c3d.e4f5g6h.ij"))
	assert.False(t, IsSeedSegment("a1")) // an action-id segment, not a seed
	assert.False(t, IsSeedSegment(""))
}

func TestParseSeedSimpleMode(t *testing.T) {
	seed, err := ParseSeed("ab12cd34")
	require.NoError(t, err)
	assert.False(t, seed.HandSpec)
	assert.Equal(t, "ab12cd34", seed.Raw)
}

func TestParseSeedHandSpecMode(t *testing.T) {
	seed, err := ParseSeed("0123456.789abcd.xy")
	require.NoError(t, err)
	require.True(t, seed.HandSpec)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, seed.P1Hand)
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12, 13}, seed.P2Hand)
}

func TestParseSeedBadCharFallsBackToSimpleMode(t *testing.T) {
	_, err := ParseSeed("012345!.789abcd.xy")
	require.NoError(t, err) // doesn't match hand-spec shape at all, falls back to simple mode
}

func TestCharToIndex(t *testing.T) {
	idx, ok := charToIndex('0')
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = charToIndex('z')
	assert.True(t, ok)
	assert.Equal(t, 35, idx)

	_, ok = charToIndex('!')
	assert.False(t, ok)
}
