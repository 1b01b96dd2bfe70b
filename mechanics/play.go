package mechanics

import (
	"fmt"

	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/state"
)

// Play implements spec.md §4.4.2, including the Bodyguard exerted
// variant.
type Play struct{}

func (Play) Enumerate(s *state.State) []ActionEdge {
	player := s.ActivePlayer()
	if player == "" {
		return nil
	}
	available := s.Graph.MustNode(player).GetInt("ink_available")
	var out []ActionEdge
	for _, c := range s.CardsInZone(player, state.ZoneHand) {
		rec, ok := cardRecord(s, c)
		if !ok || int64(rec.Cost) > available {
			continue
		}
		out = append(out, ActionEdge{
			Src:         c,
			Dst:         player,
			ActionType:  ActionCanPlay,
			Description: fmt.Sprintf("play %s", c),
		})
		if rec.HasKeyword(carddb.KeywordBodyguard) {
			out = append(out, ActionEdge{
				Src:         c,
				Dst:         player,
				ActionType:  ActionCanPlay,
				Description: fmt.Sprintf("play %s exerted", c),
				Metadata:    map[string]graph.Value{"exerted": graph.Bool(true)},
			})
		}
	}
	return out
}

func (Play) Execute(s *state.State, e *graph.Edge) error {
	card := e.Src
	player := e.Dst
	rec, ok := cardRecord(s, card)
	if !ok {
		return nil
	}
	p := s.Graph.MustNode(player)
	p.Set("ink_available", graph.Int(p.GetInt("ink_available")-int64(rec.Cost)))

	if rec.Type == carddb.TypeAction {
		return s.MoveCard(card, state.ZoneDiscard)
	}

	if err := s.MoveCard(card, state.ZonePlay); err != nil {
		return err
	}
	turn := s.Graph.MustNode("game").GetInt("turn")
	n := s.Graph.MustNode(card)
	n.Set("entered_play", graph.Int(turn))
	exerted := e.GetBool("exerted")
	if exerted {
		n.Set("exerted", graph.Int(1))
	} else {
		n.Set("exerted", graph.Int(0))
	}
	createAbilities(s, card, turn)
	return nil
}
