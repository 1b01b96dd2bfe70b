package mechanics

import (
	"fmt"

	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/state"
)

// Challenge implements spec.md §4.4.4, including the Evasive gate and the
// Bodyguard defender restriction.
type Challenge struct{}

func (Challenge) Enumerate(s *state.State) []ActionEdge {
	player := s.ActivePlayer()
	if player == "" {
		return nil
	}
	opponent := s.Opponent(player)

	var attackers []string
	for _, a := range s.CardsInZone(player, state.ZonePlay) {
		n := s.Graph.MustNode(a)
		if n.GetInt("exerted") != 0 {
			continue
		}
		if isDry(s, a) || hasKeyword(s, a, string(carddb.KeywordRush)) {
			attackers = append(attackers, a)
		}
	}
	if len(attackers) == 0 {
		return nil
	}

	var exertedDefenders []string
	var bodyguardDefenders []string
	for _, d := range s.CardsInZone(opponent, state.ZonePlay) {
		if s.Graph.MustNode(d).GetInt("exerted") == 0 {
			continue
		}
		exertedDefenders = append(exertedDefenders, d)
		if hasKeyword(s, d, string(carddb.KeywordBodyguard)) {
			bodyguardDefenders = append(bodyguardDefenders, d)
		}
	}

	defenders := exertedDefenders
	if len(bodyguardDefenders) > 0 {
		defenders = bodyguardDefenders
	}

	var out []ActionEdge
	for _, a := range attackers {
		for _, d := range defenders {
			if hasKeyword(s, d, string(carddb.KeywordEvasive)) {
				if !hasKeyword(s, a, string(carddb.KeywordEvasive)) && !hasKeyword(s, a, string(carddb.KeywordAlert)) {
					continue
				}
			}
			out = append(out, ActionEdge{
				Src:         a,
				Dst:         d,
				ActionType:  ActionCanChallenge,
				Description: fmt.Sprintf("%s challenges %s", a, d),
			})
		}
	}
	return out
}

func (Challenge) Execute(s *state.State, e *graph.Edge) error {
	attacker, defender := e.Src, e.Dst
	s.Graph.MustNode(attacker).Set("exerted", graph.Int(1))
	aRec, _ := cardRecord(s, attacker)
	dRec, _ := cardRecord(s, defender)
	if err := s.DamageCard(defender, int64(aRec.Strength)); err != nil {
		return err
	}
	if err := s.DamageCard(attacker, int64(dRec.Strength)); err != nil {
		return err
	}
	return nil
}
