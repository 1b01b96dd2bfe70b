package mechanics

import (
	"fmt"

	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/state"
)

// Phase values a step node's "step" attribute may hold (spec.md §4.3).
const (
	PhaseReady = "ready"
	PhaseSet   = "set"
	PhaseDraw  = "draw"
	PhaseMain  = "main"
	PhaseEnd   = "end"
)

// Turn implements spec.md §4.3: the only interactive step is main, where
// Turn contributes a single can_pass action (alongside the other
// mechanics' actions); executing it runs the rest of the phase sequence
// as one atomic block.
type Turn struct{}

func (Turn) Enumerate(s *state.State) []ActionEdge {
	game := s.Graph.MustNode("game")
	if game.GetBool("game_over") {
		return nil
	}
	step, ok := currentStep(s)
	if !ok || step.GetStr("step") != PhaseMain {
		return nil
	}
	player := s.ActivePlayer()
	return []ActionEdge{{
		Src:         "game",
		Dst:         player,
		ActionType:  ActionCanPass,
		Description: fmt.Sprintf("end %s's turn", player),
	}}
}

func (Turn) Execute(s *state.State, e *graph.Edge) error {
	AdvanceTurn(s)
	return nil
}

// currentStep returns the node targeted by the game's current_step edge.
func currentStep(s *state.State) (*graph.Node, bool) {
	edges := s.Graph.EdgesFromByLabel("game", "current_step")
	if len(edges) == 0 {
		return nil, false
	}
	return s.Graph.Node(edges[0].Dst)
}

// setStep moves the current_step edge to the given player/phase step
// node, creating it on first use.
func setStep(s *state.State, player, phase string) {
	id := fmt.Sprintf("step.%s.%s", player, phase)
	if !s.Graph.HasNode(id) {
		s.Graph.AddNode(id, graph.NodeStep, map[string]graph.Value{
			"player": graph.Str(player),
			"step":   graph.Str(phase),
		})
	}
	for _, e := range s.Graph.EdgesFromByLabel("game", "current_step") {
		s.Graph.RemoveEdge(e.ID)
	}
	s.Graph.AddEdge("game", id, "current_step", nil)
}

// readyPhase sets exerted=0 for every card in P's play zone.
func readyPhase(s *state.State, player string) {
	for _, c := range s.CardsInZone(player, state.ZonePlay) {
		s.Graph.MustNode(c).Set("exerted", graph.Int(0))
	}
}

// setPhase refills ink_drops and ink_available.
func setPhase(s *state.State, player string) {
	p := s.Graph.MustNode(player)
	p.Set("ink_drops", graph.Int(1))
	p.Set("ink_available", p.Attrs["ink_total"])
}

// drawPhase implements the deck-out-ends-the-game rule: the starting
// player's very first draw step (turn 1) is skipped entirely.
func drawPhase(s *state.State, player string) {
	game := s.Graph.MustNode("game")
	startingPlayer := game.GetStr("starting_player")
	turn := game.GetInt("turn")
	if player == startingPlayer && turn == 1 {
		return
	}
	if s.DeckEmpty(player) {
		s.EndGame(s.Opponent(player))
		return
	}
	s.Draw(player, 1)
}

// AdvanceTurn runs end(P), switches the active player, increments
// game.turn, then runs ready->set->draw->main for the new active player
// (spec.md §4.3). Setup drives player one's first ready/set/draw/main
// sequence through RunPhaseSequence directly, not through AdvanceTurn.
func AdvanceTurn(s *state.State) {
	game := s.Graph.MustNode("game")
	current := s.ActivePlayer()
	// end(P) is a reserved no-op (spec.md §4.3).

	next := s.Opponent(current)
	for _, e := range s.Graph.EdgesFromByLabel("game", "current_turn") {
		s.Graph.RemoveEdge(e.ID)
	}
	s.Graph.AddEdge("game", next, "current_turn", nil)
	game.Set("turn", graph.Int(game.GetInt("turn")+1))

	RunPhaseSequence(s, next)
}

// RunPhaseSequence executes ready->set->draw->main for player, stopping
// at main (used both by AdvanceTurn and by setup for game start).
func RunPhaseSequence(s *state.State, player string) {
	readyPhase(s, player)
	setStep(s, player, PhaseReady)

	setPhase(s, player)
	setStep(s, player, PhaseSet)

	drawPhase(s, player)
	setStep(s, player, PhaseDraw)

	setStep(s, player, PhaseMain)
}
