package setup

import (
	"regexp"

	"github.com/signalnine/lorcana-engine/lorcanaerr"
)

// handSpecPattern and simplePattern detect the two seed formats of
// spec.md §4.9 / §4.8 ("Seed detection").
var (
	handSpecPattern = regexp.MustCompile(`^[a-z0-9]{7}\.[a-z0-9]{7}\.[a-z]{2}$`)
	simplePattern   = regexp.MustCompile(`^[a-z0-9]{8}$`)
)

// IsSeedSegment reports whether s matches either recognized seed shape
// (used by the outcome-backpropagation walk to find the seed boundary).
func IsSeedSegment(s string) bool {
	return handSpecPattern.MatchString(s) || simplePattern.MatchString(s)
}

// ParsedSeed is the decoded form of a hand-spec seed.
type ParsedSeed struct {
	HandSpec bool
	P1Hand   []int // 7 indices into the distinct-card list, only if HandSpec
	P2Hand   []int
	Raw      string
}

// ParseSeed decodes seed into its hand-spec fields if it matches that
// shape; otherwise it is treated as an opaque simple-mode RNG seed.
func ParseSeed(seed string) (ParsedSeed, error) {
	if !handSpecPattern.MatchString(seed) {
		return ParsedSeed{HandSpec: false, Raw: seed}, nil
	}
	p1Spec := seed[0:7]
	p2Spec := seed[8:15]
	p1Hand := make([]int, 7)
	p2Hand := make([]int, 7)
	for i := 0; i < 7; i++ {
		idx, ok := charToIndex(p1Spec[i])
		if !ok {
			return ParsedSeed{}, lorcanaerr.Wrap(lorcanaerr.ErrInvalidSeed, "bad p1 hand char in %q", seed)
		}
		p1Hand[i] = idx
		idx, ok = charToIndex(p2Spec[i])
		if !ok {
			return ParsedSeed{}, lorcanaerr.Wrap(lorcanaerr.ErrInvalidSeed, "bad p2 hand char in %q", seed)
		}
		p2Hand[i] = idx
	}
	return ParsedSeed{HandSpec: true, P1Hand: p1Hand, P2Hand: p2Hand, Raw: seed}, nil
}

// charToIndex maps '0'-'9' -> 0..9, 'a'-'z' -> 10..35 (spec.md §4.9).
func charToIndex(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	default:
		return 0, false
	}
}
