package mechanics

import "github.com/signalnine/lorcana-engine/state"

// RunStateBasedEffects implements spec.md §4.4.5: banish every character
// in either player's play zone whose damage has reached its willpower.
// One pass is sufficient (moving to discard cannot itself cause further
// lethal damage).
func RunStateBasedEffects(s *state.State) {
	for _, player := range []string{state.P1, state.P2} {
		for _, c := range s.CardsInZone(player, state.ZonePlay) {
			rec, ok := cardRecord(s, c)
			if !ok {
				continue
			}
			n := s.Graph.MustNode(c)
			if n.GetInt("damage") >= int64(rec.Willpower) {
				s.MoveCard(c, state.ZoneDiscard)
			}
		}
	}
}
