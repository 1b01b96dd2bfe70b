// Package lorcanaerr defines the sentinel error kinds of spec.md §7 as
// plain values, wrapped with call-site context via github.com/pkg/errors
// (errors.Is/errors.Cause unwrap back to the sentinel).
package lorcanaerr

import "github.com/pkg/errors"

var (
	// ErrInvalidSeed: hand-spec regex fails, a hand index is out of
	// range, or hand-spec draw exhausts a card's copies.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrUnknownCard: a card id in a deck or state has a label not
	// present in CardDB.
	ErrUnknownCard = errors.New("unknown card")

	// ErrMissingState: FileStore asked to load a path lacking game.dot,
	// or MemoryStore asked to load an unknown key.
	ErrMissingState = errors.New("missing state")

	// ErrUnknownAction: apply_action(id) found no matching action edge.
	ErrUnknownAction = errors.New("unknown action")

	// ErrIO wraps filesystem errors encountered during save/load.
	ErrIO = errors.New("io error")
)

// Wrap attaches call-site context to a sentinel kind while keeping it
// discoverable via errors.Is.
func Wrap(kind error, format string, args ...interface{}) error {
	return errors.Wrapf(kind, format, args...)
}
