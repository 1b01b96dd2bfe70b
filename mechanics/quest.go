package mechanics

import (
	"fmt"

	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/state"
)

// Quest implements spec.md §4.4.3.
type Quest struct{}

func (Quest) Enumerate(s *state.State) []ActionEdge {
	player := s.ActivePlayer()
	if player == "" {
		return nil
	}
	var out []ActionEdge
	for _, c := range s.CardsInZone(player, state.ZonePlay) {
		n := s.Graph.MustNode(c)
		if n.GetInt("exerted") != 0 {
			continue
		}
		if !isDry(s, c) {
			continue
		}
		if s.Graph.HasIncomingLabel(c, "cant_quest") {
			continue
		}
		out = append(out, ActionEdge{
			Src:         c,
			Dst:         player,
			ActionType:  ActionCanQuest,
			Description: fmt.Sprintf("quest %s", c),
		})
	}
	return out
}

func (Quest) Execute(s *state.State, e *graph.Edge) error {
	card := e.Src
	player := e.Dst
	s.Graph.MustNode(card).Set("exerted", graph.Int(1))
	rec, _ := cardRecord(s, card)
	s.AddLore(player, int64(rec.Lore))
	return nil
}
