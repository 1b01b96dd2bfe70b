package tree

import (
	"strings"

	"github.com/signalnine/lorcana-engine/lorcanaerr"
	"github.com/signalnine/lorcana-engine/mechanics"
	"github.com/signalnine/lorcana-engine/state"
	"github.com/signalnine/lorcana-engine/store"
)

// Materialize reconstructs the state at path, recursively applying
// parent actions as needed (spec.md §4.7: "to materialize a path, ensure
// parent is materialized, then apply the named action"). Reads are
// idempotent: a path that already exists on the store is loaded
// directly, never recomputed.
func Materialize(st store.StateStore, path string) (*state.State, error) {
	if st.StateExists(path) {
		return st.LoadState(path)
	}
	parent, actionID, ok := splitLast(path)
	if !ok {
		return nil, lorcanaerr.Wrap(lorcanaerr.ErrMissingState, "root path %q has no saved state", path)
	}
	parentState, err := Materialize(st, parent)
	if err != nil {
		return nil, err
	}
	child := parentState.Clone()
	_, description, err := mechanics.ApplyAction(child, actionID)
	if err != nil {
		return nil, err
	}
	if err := st.SaveState(child, path, store.SaveOptions{Parent: parentState, ActionTaken: description}); err != nil {
		return nil, err
	}
	return child, nil
}

// splitLast drops the last "/"-separated segment of path, returning
// (parent, lastSegment, ok). ok is false only for the empty root path;
// a single segment such as "0" has the root "" as its parent.
func splitLast(path string) (parent, last string, ok bool) {
	if path == "" {
		return "", "", false
	}
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", path, true
	}
	return path[:idx], path[idx+1:], true
}
