// Package tree implements the path-addressed game tree and Session
// navigation of spec.md §4.7: apply_action/goto/reset, random rollout
// helpers, and outcome backpropagation (§4.8) up to the seed boundary.
// The backpropagation walk is grounded in the teacher's MCTS node/parent
// traversal idiom (mcts/node.go), repurposed from UCB1 node statistics
// to path-keyed win counters -- no search policy survives here, since
// anything beyond uniform random rollout is explicitly out of scope.
package tree

import (
	"strings"

	"github.com/signalnine/lorcana-engine/lorcanaerr"
	"github.com/signalnine/lorcana-engine/mechanics"
	"github.com/signalnine/lorcana-engine/state"
	"github.com/signalnine/lorcana-engine/store"
)

// Session wraps a StateStore with a cursor ("current") over one explored
// tree, rooted at rootKey (spec.md §4.7).
type Session struct {
	store   store.StateStore
	rootKey string
	current string
}

// New stores the initial state at rootKey and positions current there.
func New(st store.StateStore, initial *state.State, rootKey string) (*Session, error) {
	if err := st.SaveState(initial, rootKey, store.SaveOptions{}); err != nil {
		return nil, err
	}
	return &Session{store: st, rootKey: rootKey, current: rootKey}, nil
}

// Attach positions a Session at rootKey without saving -- for callers
// that already persisted the root state themselves (e.g. the `shuffle`
// CLI command, which needs to pass a Parent for diffing before a
// Session exists).
func Attach(st store.StateStore, rootKey string) *Session {
	return &Session{store: st, rootKey: rootKey, current: rootKey}
}

// GetPath returns the cursor's current path.
func (s *Session) GetPath() string { return s.current }

// Reset returns the cursor to the root.
func (s *Session) Reset() { s.current = s.rootKey }

// Goto moves the cursor to a previously-visited path.
func (s *Session) Goto(key string) error {
	if !s.store.StateExists(key) {
		return lorcanaerr.Wrap(lorcanaerr.ErrMissingState, "path %q", key)
	}
	s.current = key
	return nil
}

// GetState loads the state at the current cursor.
func (s *Session) GetState() (*state.State, error) {
	return s.store.LoadState(s.current)
}

// GetActions lists the current state's available actions.
func (s *Session) GetActions() ([]store.ActionSummary, error) {
	return s.store.GetActions(s.current)
}

// IsGameOver reports whether the current state is terminal.
func (s *Session) IsGameOver() (bool, error) {
	st, err := s.GetState()
	if err != nil {
		return false, err
	}
	return st.IsGameOver(), nil
}

// GetWinner returns the current state's winner ("", "p1", or "p2").
func (s *Session) GetWinner() (string, error) {
	st, err := s.GetState()
	if err != nil {
		return "", err
	}
	return st.Winner(), nil
}

// ApplyAction executes the action with the given id against the current
// state, saves the resulting state at current/id, moves the cursor
// there, and -- if the result is terminal -- backpropagates the outcome
// up to the seed boundary (spec.md §4.7, §4.8).
func (s *Session) ApplyAction(actionID string) error {
	before, err := s.GetState()
	if err != nil {
		return err
	}
	after := before.Clone()
	_, description, err := mechanics.ApplyAction(after, actionID)
	if err != nil {
		return err
	}

	newPath := s.current + "/" + actionID
	if err := s.store.SaveState(after, newPath, store.SaveOptions{Parent: before, ActionTaken: description}); err != nil {
		return err
	}
	s.current = newPath

	if after.IsGameOver() {
		if err := s.backpropagate(newPath, after.Winner(), after.Graph.MustNode(state.P1).GetInt("lore"), after.Graph.MustNode(state.P2).GetInt("lore")); err != nil {
			return err
		}
	}
	return nil
}

// actionsAfterRoot splits a descendant path into its action-id segments
// relative to the session's root.
func (s *Session) actionsAfterRoot(path string) []string {
	rest := strings.TrimPrefix(path, s.rootKey+"/")
	if rest == path || rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

// backpropagate implements spec.md §4.8: walk from the seed directory
// down to (but not past) the terminal state, recording a win under each
// ancestor's first-action-taken id plus the full remaining path suffix,
// then write the terminal leaf outcome record.
func (s *Session) backpropagate(terminalPath, winner string, p1Lore, p2Lore int64) error {
	o := store.Outcome{Winner: winner, P1Lore: p1Lore, P2Lore: p2Lore}
	actions := s.actionsAfterRoot(terminalPath)
	for j := 0; j < len(actions); j++ {
		ancestor := s.rootKey
		if j > 0 {
			ancestor = s.rootKey + "/" + strings.Join(actions[:j], "/")
		}
		firstAction := actions[j]
		suffix := strings.Join(actions[j:], "")
		if err := s.store.SaveOutcome(ancestor, firstAction, &suffix, o); err != nil {
			return err
		}
	}
	return s.store.SaveOutcome(terminalPath, "", nil, o)
}
