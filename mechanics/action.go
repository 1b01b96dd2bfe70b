// Package mechanics implements the pure enumerate/execute pairs of
// spec.md §4.3-§4.6: Ink, Play, Quest, Challenge, Turn (pass/advance),
// state-based effects, printed-ability creation, and the action-edge
// recompute pass that ties them together.
package mechanics

import (
	"sort"
	"strconv"

	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/lorcanaerr"
	"github.com/signalnine/lorcana-engine/state"
)

// Action type tags (spec.md §3.2).
const (
	ActionCanPass      = "can_pass"
	ActionCanInk       = "can_ink"
	ActionCanPlay      = "can_play"
	ActionCanQuest     = "can_quest"
	ActionCanChallenge = "can_challenge"
)

// ActionEdge is the pure-function return value of every mechanic's
// Enumerate: a candidate edge not yet written into the graph.
type ActionEdge struct {
	Src         string
	Dst         string
	ActionType  string
	Description string
	Metadata    map[string]graph.Value
}

// Enumerator is implemented by every turn-action mechanic.
type Enumerator interface {
	Enumerate(s *state.State) []ActionEdge
}

// Executor applies a previously-enumerated action edge, already written
// into the graph with its action_id, to the state.
type Executor interface {
	Execute(s *state.State, e *graph.Edge) error
}

// hasKeyword reports whether a card currently in play carries a given
// printed keyword, via the ability-edge scheme of spec.md §3.2/§4.6.
func hasKeyword(s *state.State, cardID, keyword string) bool {
	return s.Graph.HasIncomingLabel(cardID, keyword)
}

// cardRecord looks up the CardDB record for a card node's label.
func cardRecord(s *state.State, cardID string) (carddb.Record, bool) {
	n, ok := s.Graph.Node(cardID)
	if !ok {
		return carddb.Record{}, false
	}
	rec, err := s.DB.Lookup(n.GetStr("label"))
	if err != nil {
		return carddb.Record{}, false
	}
	return rec, true
}

// isDry reports whether a character in play is not drying (spec.md
// GLOSSARY: entered_play == game.turn means drying).
func isDry(s *state.State, cardID string) bool {
	turn := s.Graph.MustNode("game").GetInt("turn")
	n := s.Graph.MustNode(cardID)
	return n.GetInt("entered_play") < turn
}

// base36 renders i in lowercase base-36 (spec.md §4.5: "0,1,...,z,10,11,...").
func base36(i int) string {
	return strconv.FormatInt(int64(i), 36)
}

// Recompute implements ActionCompute (spec.md §4.5): clear stale action
// edges, stop if the game is over, else enumerate every mechanic, sort
// deterministically, and assign action ids.
func Recompute(s *state.State) {
	s.Graph.RemoveEdgesWithAttr("action_type")
	if s.IsGameOver() {
		return
	}

	var all []ActionEdge
	all = append(all, Turn{}.Enumerate(s)...)
	all = append(all, Ink{}.Enumerate(s)...)
	all = append(all, Play{}.Enumerate(s)...)
	all = append(all, Quest{}.Enumerate(s)...)
	all = append(all, Challenge{}.Enumerate(s)...)

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.ActionType != b.ActionType {
			return a.ActionType < b.ActionType
		}
		if a.Src != b.Src {
			return a.Src < b.Src
		}
		return a.Dst < b.Dst
	})

	for i, ae := range all {
		attrs := map[string]graph.Value{
			"action_type": graph.Str(ae.ActionType),
			"action_id":   graph.Str(base36(i)),
			"description": graph.Str(ae.Description),
		}
		for k, v := range ae.Metadata {
			attrs[k] = v
		}
		s.Graph.AddEdge(ae.Src, ae.Dst, ae.ActionType, attrs)
	}
}

// ActionTypes maps every currently-available action_id to its
// action_type, used by rollout/tree code that needs to distinguish
// can_pass from the rest without re-deriving descriptions.
func ActionTypes(s *state.State) map[string]string {
	out := make(map[string]string)
	for _, e := range s.Graph.AllEdges() {
		idVal, ok := e.Get("action_id")
		if !ok {
			continue
		}
		out[idVal.AsStr()] = e.GetStr("action_type")
	}
	return out
}

// FindAction looks up the action edge carrying the given action_id.
func FindAction(s *state.State, id string) (*graph.Edge, bool) {
	for _, e := range s.Graph.AllEdges() {
		if v, ok := e.Get("action_id"); ok && v.AsStr() == id {
			return e, true
		}
	}
	return nil, false
}

// executorFor resolves the mechanic responsible for an action edge's
// action_type.
func executorFor(actionType string) Executor {
	switch actionType {
	case ActionCanPass:
		return Turn{}
	case ActionCanInk:
		return Ink{}
	case ActionCanPlay:
		return Play{}
	case ActionCanQuest:
		return Quest{}
	case ActionCanChallenge:
		return Challenge{}
	default:
		return nil
	}
}

// ApplyAction executes the action edge carrying the given action_id:
// dispatches to its mechanic's Execute, runs state-based effects, then
// recomputes the next state's action edges (spec.md §4.5, §4.7). It
// returns the executed edge's action_type and description for callers
// that need to log the applied action (e.g. FileStore's actions.txt).
func ApplyAction(s *state.State, actionID string) (actionType, description string, err error) {
	e, ok := FindAction(s, actionID)
	if !ok {
		return "", "", lorcanaerr.Wrap(lorcanaerr.ErrUnknownAction, "action_id %q", actionID)
	}
	actionType = e.GetStr("action_type")
	description = e.GetStr("description")
	exec := executorFor(actionType)
	if exec == nil {
		return "", "", lorcanaerr.Wrap(lorcanaerr.ErrUnknownAction, "action_id %q", actionID)
	}
	if err := exec.Execute(s, e); err != nil {
		return "", "", err
	}
	RunStateBasedEffects(s)
	Recompute(s)
	return actionType, description, nil
}
