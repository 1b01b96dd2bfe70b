package setup

import (
	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/state"
)

// Skeleton builds the pre-shuffle matchup-level state (spec.md §6.2:
// "game.dot -- pre-shuffle initial state"): game/player nodes exist, but
// no seed has been chosen yet, so there is no current_turn/current_step
// edge and both decks are empty. It exists purely so `init` has
// something to render and `shuffle` has something to diff its real
// initial state against.
func Skeleton(db *carddb.DB) *state.State {
	g := graph.New()
	g.AddNode("game", graph.NodeGame, map[string]graph.Value{
		"turn": graph.Int(0), "game_over": graph.Bool(false), "winner": graph.Str(""),
	})
	g.AddNode(state.P1, graph.NodePlayer, map[string]graph.Value{
		"lore": graph.Int(0), "ink_drops": graph.Int(0),
		"ink_total": graph.Int(0), "ink_available": graph.Int(0),
	})
	g.AddNode(state.P2, graph.NodePlayer, map[string]graph.Value{
		"lore": graph.Int(0), "ink_drops": graph.Int(0),
		"ink_total": graph.Int(0), "ink_available": graph.Int(0),
	})
	return state.New(g, nil, nil, db)
}
