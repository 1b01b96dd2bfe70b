package mechanics

import (
	"fmt"

	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/state"
)

// Ink implements spec.md §4.4.1: once per turn, place an inkable hand
// card into the inkwell.
type Ink struct{}

func (Ink) Enumerate(s *state.State) []ActionEdge {
	player := s.ActivePlayer()
	if player == "" || s.Graph.MustNode(player).GetInt("ink_drops") < 1 {
		return nil
	}
	var out []ActionEdge
	for _, c := range s.CardsInZone(player, state.ZoneHand) {
		rec, ok := cardRecord(s, c)
		if !ok || !rec.Inkwell {
			continue
		}
		out = append(out, ActionEdge{
			Src:         c,
			Dst:         player,
			ActionType:  ActionCanInk,
			Description: fmt.Sprintf("ink %s", c),
		})
	}
	return out
}

func (Ink) Execute(s *state.State, e *graph.Edge) error {
	card := e.Src
	player := e.Dst
	if err := s.MoveCard(card, state.ZoneInk); err != nil {
		return err
	}
	p := s.Graph.MustNode(player)
	p.Set("ink_drops", graph.Int(p.GetInt("ink_drops")-1))
	p.Set("ink_total", graph.Int(p.GetInt("ink_total")+1))
	p.Set("ink_available", graph.Int(p.GetInt("ink_available")+1))
	return nil
}
