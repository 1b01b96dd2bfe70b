package setup

import (
	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/lorcanaerr"
	"github.com/signalnine/lorcana-engine/mechanics"
	"github.com/signalnine/lorcana-engine/state"
)

const startingHandSize = 7

// BuildInitialState constructs the canonical initial State (spec.md
// §4.9): builds both decks from decklist text under the given seed,
// validates every card name against db, deals the opening 7-card hands,
// and runs player one's first ready/set/draw/main sequence (turn 1's
// draw step is skipped for the starting player).
func BuildInitialState(db *carddb.DB, deck1Text, deck2Text, seedStr string) (*state.State, error) {
	p1Distinct, err := ParseDecklist(deck1Text)
	if err != nil {
		return nil, err
	}
	p2Distinct, err := ParseDecklist(deck2Text)
	if err != nil {
		return nil, err
	}
	if err := validateNames(db, p1Distinct); err != nil {
		return nil, err
	}
	if err := validateNames(db, p2Distinct); err != nil {
		return nil, err
	}

	seed, err := ParseSeed(seedStr)
	if err != nil {
		return nil, err
	}

	deck1, err := BuildDeck(state.P1, p1Distinct, seed, "_p1")
	if err != nil {
		return nil, err
	}
	deck2, err := BuildDeck(state.P2, p2Distinct, seed, "_p2")
	if err != nil {
		return nil, err
	}

	g := graph.New()
	g.AddNode("game", graph.NodeGame, map[string]graph.Value{
		"turn":            graph.Int(1),
		"game_over":       graph.Bool(false),
		"winner":          graph.Str(""),
		"starting_player": graph.Str(state.P1),
	})
	g.AddNode(state.P1, graph.NodePlayer, map[string]graph.Value{
		"lore": graph.Int(0), "ink_drops": graph.Int(0),
		"ink_total": graph.Int(0), "ink_available": graph.Int(0),
	})
	g.AddNode(state.P2, graph.NodePlayer, map[string]graph.Value{
		"lore": graph.Int(0), "ink_drops": graph.Int(0),
		"ink_total": graph.Int(0), "ink_available": graph.Int(0),
	})
	g.AddEdge("game", state.P1, "current_turn", nil)

	s := state.New(g, deck1, deck2, db)
	s.Draw(state.P1, startingHandSize)
	s.Draw(state.P2, startingHandSize)

	mechanics.RunPhaseSequence(s, state.P1)
	mechanics.Recompute(s)

	return s, nil
}

func validateNames(db *carddb.DB, distinct []DistinctCard) error {
	for _, c := range distinct {
		if !db.Has(c.Name) {
			return lorcanaerr.Wrap(lorcanaerr.ErrUnknownCard, "card %q", c.Name)
		}
	}
	return nil
}
