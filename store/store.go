// Package store implements the StateStore contract of spec.md §6.1: two
// backends, an in-memory hash-map store and a directory-tree FileStore,
// both satisfying the same interface so Session/GameTree code is
// store-agnostic.
package store

import "github.com/signalnine/lorcana-engine/state"

// ActionSummary is one entry of GetActions: the minimal information a
// caller needs to choose and apply an action.
type ActionSummary struct {
	ID          string
	Description string
}

// Outcome is a terminal state's recorded result (spec.md §6.2
// outcome.txt).
type Outcome struct {
	Winner string
	P1Lore int64
	P2Lore int64
}

// PathOutcomes is an ancestor directory's accumulated backpropagation
// record (spec.md §6.2 outcomes.json).
type PathOutcomes struct {
	Outcomes map[string]ActionOutcome `json:"outcomes"`
	P1Wins   []string                 `json:"p1_wins"`
	P2Wins   []string                 `json:"p2_wins"`
}

// ActionOutcome is the per-first-action win tally within a PathOutcomes.
type ActionOutcome struct {
	P1Wins int `json:"p1_wins"`
	P2Wins int `json:"p2_wins"`
}

// SaveOptions carries the two optional save_state parameters of spec.md
// §6.1's pseudocode signature: the parent state (for diffing) and the
// human-readable description of the action that produced this state.
// Both are empty/nil for an initial (root) save.
type SaveOptions struct {
	Parent      *state.State
	ActionTaken string
}

// StateStore is the contract of spec.md §6.1.
type StateStore interface {
	LoadState(path string) (*state.State, error)
	SaveState(s *state.State, path string, opts SaveOptions) error
	StateExists(path string) bool
	GetActions(path string) ([]ActionSummary, error)
	// SaveOutcome records an outcome at path. A nil suffix means path
	// itself is the terminal leaf; a non-nil suffix means path is an
	// ancestor recording a win under the given first-action id with the
	// given trailing suffix string.
	SaveOutcome(path string, firstAction string, suffix *string, o Outcome) error
	GetOutcomes(path string) (*PathOutcomes, error)
}
