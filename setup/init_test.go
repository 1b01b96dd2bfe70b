package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/mechanics"
	"github.com/signalnine/lorcana-engine/state"
)

const deckText = "4 Dust Imp\n4 Sturdy Shieldbearer\n4 Minor Madcap\n4 Mickey Mouse - Brave Little Tailor\n4 Elsa - Snow Queen\n"

func TestBuildInitialStateDealsHandsAndReachesMain(t *testing.T) {
	db := carddb.Builtin()
	s, err := BuildInitialState(db, deckText, deckText, "ab12cd34")
	require.NoError(t, err)

	assert.Len(t, s.CardsInZone(state.P1, state.ZoneHand), 7)
	assert.Len(t, s.CardsInZone(state.P2, state.ZoneHand), 7)
	assert.Equal(t, state.P1, s.ActivePlayer())
	assert.NotEmpty(t, mechanics.ActionTypes(s))
}

func TestBuildInitialStateUnknownCardFails(t *testing.T) {
	db := carddb.Builtin()
	_, err := BuildInitialState(db, "4 Not A Real Card\n", deckText, "ab12cd34")
	require.Error(t, err)
}

func TestBuildInitialStateDeterministicForSameSeed(t *testing.T) {
	db := carddb.Builtin()
	s1, err := BuildInitialState(db, deckText, deckText, "ab12cd34")
	require.NoError(t, err)
	s2, err := BuildInitialState(db, deckText, deckText, "ab12cd34")
	require.NoError(t, err)

	assert.Equal(t, s1.CardsInZone(state.P1, state.ZoneHand), s2.CardsInZone(state.P1, state.ZoneHand))
}

func TestSkeletonHasNoCurrentTurnEdge(t *testing.T) {
	s := Skeleton(carddb.Builtin())
	assert.Equal(t, "", s.ActivePlayer())
	assert.Equal(t, int64(0), s.Graph.MustNode("game").GetInt("turn"))
}
