package store

import (
	"sort"

	"github.com/signalnine/lorcana-engine/lorcanaerr"
	"github.com/signalnine/lorcana-engine/state"
)

// MemoryStore is the in-memory StateStore backend: plain hash maps, no
// persistence, used by the CLI's play command under --store=memory and
// by tests (spec.md §6.1).
type MemoryStore struct {
	states   map[string]*state.State
	outcomes map[string]*PathOutcomes
	terminal map[string]Outcome
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states:   make(map[string]*state.State),
		outcomes: make(map[string]*PathOutcomes),
		terminal: make(map[string]Outcome),
	}
}

func (m *MemoryStore) LoadState(path string) (*state.State, error) {
	s, ok := m.states[path]
	if !ok {
		return nil, lorcanaerr.Wrap(lorcanaerr.ErrMissingState, "path %q", path)
	}
	return s.Clone(), nil
}

func (m *MemoryStore) SaveState(s *state.State, path string, _ SaveOptions) error {
	m.states[path] = s.Clone()
	return nil
}

func (m *MemoryStore) StateExists(path string) bool {
	_, ok := m.states[path]
	return ok
}

func (m *MemoryStore) GetActions(path string) ([]ActionSummary, error) {
	s, ok := m.states[path]
	if !ok {
		return nil, lorcanaerr.Wrap(lorcanaerr.ErrMissingState, "path %q", path)
	}
	return collectActions(s), nil
}

func (m *MemoryStore) SaveOutcome(path string, firstAction string, suffix *string, o Outcome) error {
	if suffix == nil {
		m.terminal[path] = o
		return nil
	}
	po, ok := m.outcomes[path]
	if !ok {
		po = &PathOutcomes{Outcomes: make(map[string]ActionOutcome)}
		m.outcomes[path] = po
	}
	acc := po.Outcomes[firstAction]
	if o.Winner == state.P1 {
		acc.P1Wins++
		po.P1Wins = append(po.P1Wins, *suffix)
	} else {
		acc.P2Wins++
		po.P2Wins = append(po.P2Wins, *suffix)
	}
	po.Outcomes[firstAction] = acc
	return nil
}

func (m *MemoryStore) GetOutcomes(path string) (*PathOutcomes, error) {
	po, ok := m.outcomes[path]
	if !ok {
		return &PathOutcomes{Outcomes: make(map[string]ActionOutcome)}, nil
	}
	return po, nil
}

// collectActions reads every action-typed edge out of s's graph and
// returns them sorted by action_id (ids are already assigned in sorted
// order by mechanics.Recompute, but callers of GetActions should not
// depend on graph edge iteration order).
func collectActions(s *state.State) []ActionSummary {
	var out []ActionSummary
	for _, e := range s.Graph.AllEdges() {
		idVal, ok := e.Get("action_id")
		if !ok {
			continue
		}
		desc := e.GetStr("description")
		out = append(out, ActionSummary{ID: idVal.AsStr(), Description: desc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
