package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchupHashIsDeterministicAndShort(t *testing.T) {
	h1 := MatchupHash("deck1", "deck2")
	h2 := MatchupHash("deck1", "deck2")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 4)
}

func TestMatchupHashOrderSensitive(t *testing.T) {
	assert.NotEqual(t, MatchupHash("deck1", "deck2"), MatchupHash("deck2", "deck1"))
}
