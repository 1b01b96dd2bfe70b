package setup

import "github.com/signalnine/lorcana-engine/lorcanaerr"

// BuildDeck constructs one player's full ordered deck (spec.md §4.9):
// in simple-mode, every copy is shuffled by an RNG seeded with
// seed+"_p1"/"_p2"; in hand-spec mode, 7 cards are pulled out by index to
// become the opening hand and the remainder is shuffled by the raw seed
// string.
func BuildDeck(player string, distinct []DistinctCard, seed ParsedSeed, suffixTag string) ([]string, error) {
	if !seed.HandSpec {
		copies := Copies(player, distinct)
		shuffle(copies, seed.Raw+suffixTag)
		return copies, nil
	}

	handIdx := seed.P1Hand
	if suffixTag == "_p2" {
		handIdx = seed.P2Hand
	}

	copiesPerCard := make([][]string, len(distinct))
	for i, c := range distinct {
		for k := 0; k < c.Count; k++ {
			copiesPerCard[i] = append(copiesPerCard[i], player+"."+c.Name+"."+suffixFor(k))
		}
	}

	used := make([]int, len(distinct))
	hand := make([]string, 0, 7)
	for _, idx := range handIdx {
		if idx < 0 || idx >= len(distinct) {
			return nil, lorcanaerr.Wrap(lorcanaerr.ErrInvalidSeed, "hand index %d out of range (%d distinct cards)", idx, len(distinct))
		}
		if used[idx] >= len(copiesPerCard[idx]) {
			return nil, lorcanaerr.Wrap(lorcanaerr.ErrInvalidSeed, "hand index %d: copies exhausted", idx)
		}
		hand = append(hand, copiesPerCard[idx][used[idx]])
		used[idx]++
	}

	var remaining []string
	for i, cards := range copiesPerCard {
		remaining = append(remaining, cards[used[i]:]...)
	}
	shuffle(remaining, seed.Raw)

	return append(hand, remaining...), nil
}
