package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/graph"
)

func newTestState(db *carddb.DB) *State {
	g := graph.New()
	g.AddNode("game", graph.NodeGame, map[string]graph.Value{
		"turn": graph.Int(1), "game_over": graph.Bool(false), "winner": graph.Str(""),
	})
	g.AddNode(P1, graph.NodePlayer, map[string]graph.Value{
		"lore": graph.Int(0), "ink_drops": graph.Int(1), "ink_total": graph.Int(0), "ink_available": graph.Int(0),
	})
	g.AddNode(P2, graph.NodePlayer, map[string]graph.Value{
		"lore": graph.Int(0), "ink_drops": graph.Int(1), "ink_total": graph.Int(0), "ink_available": graph.Int(0),
	})
	return New(g, []string{"p1.dust_imp.a", "p1.dust_imp.b"}, []string{"p2.dust_imp.a"}, db)
}

func TestDrawCreatesHandCards(t *testing.T) {
	s := newTestState(carddb.Builtin())
	s.Draw(P1, 2)

	assert.Equal(t, []string{"p1.dust_imp.a", "p1.dust_imp.b"}, s.CardsInZone(P1, ZoneHand))
	assert.True(t, s.DeckEmpty(P1))
	n := s.Graph.MustNode("p1.dust_imp.a")
	assert.Equal(t, "dust_imp", n.GetStr("label"))
	assert.Equal(t, int64(1), n.GetInt("cost"))
}

func TestDrawStopsWhenDeckEmpty(t *testing.T) {
	s := newTestState(carddb.Builtin())
	s.Draw(P1, 10)
	assert.Len(t, s.CardsInZone(P1, ZoneHand), 2)
}

func TestMoveCardRemovesAbilitiesOnLeavingPlay(t *testing.T) {
	s := newTestState(carddb.Builtin())
	s.Draw(P1, 1)
	cardID := "p1.dust_imp.a"
	require.NoError(t, s.MoveCard(cardID, ZonePlay))
	ability := s.Graph.AddNode("rush.t1.0", graph.NodeAbility, nil)
	s.Graph.AddEdge(ability.ID, cardID, "source", nil)
	s.Graph.AddEdge(ability.ID, cardID, "rush", nil)

	require.NoError(t, s.MoveCard(cardID, ZoneDiscard))

	assert.Equal(t, ZoneDiscard, s.Graph.MustNode(cardID).GetStr("zone"))
	assert.False(t, s.Graph.HasNode("rush.t1.0"))
}

func TestDamageCardAccumulates(t *testing.T) {
	s := newTestState(carddb.Builtin())
	s.Draw(P1, 1)
	cardID := "p1.dust_imp.a"
	require.NoError(t, s.DamageCard(cardID, 2))
	require.NoError(t, s.DamageCard(cardID, 1))
	assert.Equal(t, int64(3), s.Graph.MustNode(cardID).GetInt("damage"))
}

func TestAddLoreEndsGameAtThreshold(t *testing.T) {
	s := newTestState(carddb.Builtin())
	s.AddLore(P1, 17)
	assert.False(t, s.IsGameOver())

	s.AddLore(P1, 3)
	assert.True(t, s.IsGameOver())
	assert.Equal(t, P1, s.Winner())
}

func TestEndGameWinnerImmutable(t *testing.T) {
	s := newTestState(carddb.Builtin())
	s.AddLore(P1, 20)
	require.True(t, s.IsGameOver())

	s.EndGame(P2)
	assert.Equal(t, P1, s.Winner(), "winner must not change once the game has ended")
}

func TestActivePlayerAndOpponent(t *testing.T) {
	s := newTestState(carddb.Builtin())
	assert.Equal(t, "", s.ActivePlayer())
	s.Graph.AddEdge("game", P1, "current_turn", nil)
	assert.Equal(t, P1, s.ActivePlayer())
	assert.Equal(t, P2, s.Opponent(P1))
	assert.Equal(t, P1, s.Opponent(P2))
}

func TestCloneDoesNotAlias(t *testing.T) {
	s := newTestState(carddb.Builtin())
	s.Draw(P1, 1)
	clone := s.Clone()
	require.NoError(t, clone.MoveCard("p1.dust_imp.a", ZonePlay))

	assert.Equal(t, ZoneHand, s.Graph.MustNode("p1.dust_imp.a").GetStr("zone"))
	assert.Equal(t, ZonePlay, clone.Graph.MustNode("p1.dust_imp.a").GetStr("zone"))
	assert.Len(t, s.Decks[P1], 1)
	clone.Decks[P1] = nil
	assert.Len(t, s.Decks[P1], 1)
}
