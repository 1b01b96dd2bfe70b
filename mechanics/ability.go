package mechanics

import (
	"fmt"

	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/state"
)

// keywordLabel lowercases a carddb.Keyword to its edge-label form; the
// two already agree, but this keeps the mechanics package from depending
// on carddb's string representation staying lowercase by accident.
func keywordLabel(k carddb.Keyword) string { return string(k) }

// createAbilities implements spec.md §4.6: for each printed keyword on a
// card entering play on turn t, allocate a fresh ability node and wire
// its source/keyword (and, for Reckless, cant_quest) edges.
func createAbilities(s *state.State, cardID string, turn int64) {
	rec, ok := cardRecord(s, cardID)
	if !ok {
		return
	}
	for _, a := range rec.Abilities {
		label := keywordLabel(a.Keyword)
		id := freshAbilityID(s, label, turn)
		s.Graph.AddNode(id, graph.NodeAbility, nil)
		s.Graph.AddEdge(id, cardID, "source", nil)
		s.Graph.AddEdge(id, cardID, label, nil)
		if a.Keyword == carddb.KeywordReckless {
			s.Graph.AddEdge(id, cardID, "cant_quest", nil)
		}
	}
}

// freshAbilityID finds the smallest positive k making
// "{keyword}.t{turn}.{k}" an unused node id (spec.md §4.6).
func freshAbilityID(s *state.State, keyword string, turn int64) string {
	for k := 1; ; k++ {
		id := fmt.Sprintf("%s.t%d.%d", keyword, turn, k)
		if !s.Graph.HasNode(id) {
			return id
		}
	}
}
