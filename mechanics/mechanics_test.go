package mechanics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/state"
)

// newActiveState builds a minimal turn-1 state with active to move,
// having already run ready/set/draw/main for it (spec.md §4.3).
func newActiveState(db *carddb.DB, active, opponent string) *state.State {
	g := graph.New()
	g.AddNode("game", graph.NodeGame, map[string]graph.Value{
		"turn": graph.Int(1), "game_over": graph.Bool(false), "winner": graph.Str(""),
		"starting_player": graph.Str(active),
	})
	for _, p := range []string{active, opponent} {
		g.AddNode(p, graph.NodePlayer, map[string]graph.Value{
			"lore": graph.Int(0), "ink_drops": graph.Int(1), "ink_total": graph.Int(3), "ink_available": graph.Int(3),
		})
	}
	s := state.New(g, nil, nil, db)
	s.Graph.AddEdge("game", active, "current_turn", nil)
	RunPhaseSequence(s, active)
	return s
}

// putInPlay creates a card node already resolved into the play zone,
// entered on enteredTurn, and wires its printed-keyword ability nodes.
func putInPlay(s *state.State, id, label string, enteredTurn int64, exerted bool) {
	rec, err := s.DB.Lookup(label)
	if err != nil {
		panic(err)
	}
	ex := int64(0)
	if exerted {
		ex = 1
	}
	s.Graph.AddNode(id, graph.NodeCard, map[string]graph.Value{
		"label": graph.Str(label), "zone": graph.Str(state.ZonePlay),
		"exerted": graph.Int(ex), "damage": graph.Int(0), "entered_play": graph.Int(enteredTurn),
		"cost": graph.Int(int64(rec.Cost)), "strength": graph.Int(int64(rec.Strength)),
		"willpower": graph.Int(int64(rec.Willpower)), "lore": graph.Int(int64(rec.Lore)),
	})
	createAbilities(s, id, enteredTurn)
}

// (a) Quest gives lore.
func TestQuestGivesLore(t *testing.T) {
	db := carddb.Builtin()
	s := newActiveState(db, state.P1, state.P2)
	putInPlay(s, "p1.mickey_mouse_brave_little_tailor.a", "Mickey Mouse - Brave Little Tailor", 0, false)

	edges := Quest{}.Enumerate(s)
	require.Len(t, edges, 1)
	e := s.Graph.AddEdge(edges[0].Src, edges[0].Dst, edges[0].ActionType, nil)
	require.NoError(t, Quest{}.Execute(s, e))

	assert.Equal(t, int64(1), s.Graph.MustNode("p1.mickey_mouse_brave_little_tailor.a").GetInt("exerted"))
	assert.Equal(t, int64(2), s.Graph.MustNode(state.P1).GetInt("lore"))
	assert.False(t, s.IsGameOver())
}

// (b) Lethal damage banishes.
func TestLethalDamageBanishes(t *testing.T) {
	db := carddb.Builtin()
	s := newActiveState(db, state.P1, state.P2)
	putInPlay(s, "p1.mickey_mouse_brave_little_tailor.a", "Mickey Mouse - Brave Little Tailor", 0, false) // strength 4
	putInPlay(s, "p2.bodyguard_golem.a", "Bodyguard Golem", 0, true)                                      // willpower 6, strength 3
	require.NoError(t, s.DamageCard("p2.bodyguard_golem.a", 2))

	e := s.Graph.AddEdge("p1.mickey_mouse_brave_little_tailor.a", "p2.bodyguard_golem.a", ActionCanChallenge, nil)
	require.NoError(t, Challenge{}.Execute(s, e))
	RunStateBasedEffects(s)

	assert.Equal(t, state.ZoneDiscard, s.Graph.MustNode("p2.bodyguard_golem.a").GetStr("zone"))
	assert.False(t, s.Graph.HasIncomingLabel("p2.bodyguard_golem.a", "bodyguard"))
	attacker := s.Graph.MustNode("p1.mickey_mouse_brave_little_tailor.a")
	assert.Equal(t, int64(1), attacker.GetInt("exerted"))
	assert.Equal(t, int64(3), attacker.GetInt("damage")) // defender's strength
}

// (c) Winning at 20.
func TestWinningAtTwenty(t *testing.T) {
	db := carddb.Builtin()
	s := newActiveState(db, state.P1, state.P2)
	s.Graph.MustNode(state.P1).Set("lore", graph.Int(17))
	putInPlay(s, "p1.elsa_snow_queen.a", "Elsa - Snow Queen", 0, false) // lore 3

	edges := Quest{}.Enumerate(s)
	require.Len(t, edges, 1)
	e := s.Graph.AddEdge(edges[0].Src, edges[0].Dst, edges[0].ActionType, nil)
	require.NoError(t, Quest{}.Execute(s, e))

	assert.Equal(t, int64(20), s.Graph.MustNode(state.P1).GetInt("lore"))
	assert.True(t, s.IsGameOver())
	assert.Equal(t, state.P1, s.Winner())

	Recompute(s)
	assert.Empty(t, ActionTypes(s))
}

// (d) Deck-out during draw step: P2 passes, handing the turn to P1, whose
// deck is empty -- P1 loses the draw step and P2 wins.
func TestDeckOutDuringDrawStep(t *testing.T) {
	db := carddb.Builtin()
	s := newActiveState(db, state.P2, state.P1)
	s.Decks[state.P1] = nil

	AdvanceTurn(s)

	assert.True(t, s.IsGameOver())
	assert.Equal(t, state.P2, s.Winner())
}

// (e) Evasive gate.
func TestEvasiveGate(t *testing.T) {
	db := carddb.Builtin()
	s := newActiveState(db, state.P1, state.P2)
	putInPlay(s, "p2.evasive_windrunner.a", "Evasive Windrunner", 0, true)
	putInPlay(s, "p1.mickey_mouse_brave_little_tailor.a", "Mickey Mouse - Brave Little Tailor", 0, false)

	assert.Empty(t, Challenge{}.Enumerate(s))

	putInPlay(s, "p1.alert_sentry.a", "Alert Sentry", 0, false)
	edges := Challenge{}.Enumerate(s)
	require.Len(t, edges, 1)
	assert.Equal(t, "p1.alert_sentry.a", edges[0].Src)
	assert.Equal(t, "p2.evasive_windrunner.a", edges[0].Dst)
}

// (f) Bodyguard forces target.
func TestBodyguardForcesTarget(t *testing.T) {
	db := carddb.Builtin()
	s := newActiveState(db, state.P1, state.P2)
	putInPlay(s, "p1.mickey_mouse_brave_little_tailor.a", "Mickey Mouse - Brave Little Tailor", 0, false)
	putInPlay(s, "p2.bodyguard_golem.a", "Bodyguard Golem", 0, true)
	putInPlay(s, "p2.dust_imp.a", "Dust Imp", 0, true)

	edges := Challenge{}.Enumerate(s)
	require.Len(t, edges, 1)
	assert.Equal(t, "p2.bodyguard_golem.a", edges[0].Dst)

	s.Graph.MustNode("p2.bodyguard_golem.a").Set("exerted", graph.Int(0))
	edges = Challenge{}.Enumerate(s)
	require.Len(t, edges, 1)
	assert.Equal(t, "p2.dust_imp.a", edges[0].Dst)
}

func TestInkMechanic(t *testing.T) {
	db := carddb.Builtin()
	s := newActiveState(db, state.P1, state.P2)
	s.Graph.AddNode("p1.dust_imp.a", graph.NodeCard, map[string]graph.Value{
		"label": graph.Str("Dust Imp"), "zone": graph.Str(state.ZoneHand),
		"exerted": graph.Int(0), "damage": graph.Int(0), "entered_play": graph.Int(-1),
		"cost": graph.Int(1), "strength": graph.Int(1), "willpower": graph.Int(1), "lore": graph.Int(1),
	})
	s.Graph.MustNode(state.P1).Set("ink_total", graph.Int(0))
	s.Graph.MustNode(state.P1).Set("ink_available", graph.Int(0))

	edges := Ink{}.Enumerate(s)
	require.Len(t, edges, 1)
	e := s.Graph.AddEdge(edges[0].Src, edges[0].Dst, edges[0].ActionType, nil)
	require.NoError(t, Ink{}.Execute(s, e))

	p := s.Graph.MustNode(state.P1)
	assert.Equal(t, int64(0), p.GetInt("ink_drops"))
	assert.Equal(t, int64(1), p.GetInt("ink_total"))
	assert.Equal(t, int64(1), p.GetInt("ink_available"))
	assert.Equal(t, state.ZoneInk, s.Graph.MustNode("p1.dust_imp.a").GetStr("zone"))
	assert.Empty(t, Ink{}.Enumerate(s))
}

func TestRecomputeAssignsKnownActionTypes(t *testing.T) {
	db := carddb.Builtin()
	s := newActiveState(db, state.P1, state.P2)
	putInPlay(s, "p1.mickey_mouse_brave_little_tailor.a", "Mickey Mouse - Brave Little Tailor", 0, false)

	Recompute(s)

	ids := ActionTypes(s)
	assert.NotEmpty(t, ids)
	for id, typ := range ids {
		switch typ {
		case ActionCanPass, ActionCanInk, ActionCanPlay, ActionCanQuest, ActionCanChallenge:
		default:
			t.Fatalf("action %s has unexpected type %q", id, typ)
		}
	}
}

func TestApplyActionUnknownID(t *testing.T) {
	db := carddb.Builtin()
	s := newActiveState(db, state.P1, state.P2)
	Recompute(s)
	_, _, err := ApplyAction(s, "zz")
	require.Error(t, err)
}
