// Package setup builds the canonical initial State from two decklists
// and a seed (spec.md §4.9): matchup hashing, deterministic shuffling
// with an optional hand-spec opening-hand constraint, and the initial
// draw/turn setup that hands control to player one's main phase.
package setup

import (
	"crypto/md5"
	"encoding/hex"
)

// MatchupHash returns the first 4 hex digits of MD5(deck1Text+deck2Text),
// used only to name the matchup directory (spec.md §4.9, §9 open
// question: collisions are possible and accepted -- this is a path
// fragment, not a content guarantee).
func MatchupHash(deck1Text, deck2Text string) string {
	sum := md5.Sum([]byte(deck1Text + deck2Text))
	return hex.EncodeToString(sum[:])[:4]
}
