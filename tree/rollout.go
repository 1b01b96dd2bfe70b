package tree

import (
	"math/rand"

	"github.com/signalnine/lorcana-engine/mechanics"
	"github.com/signalnine/lorcana-engine/store"
)

// PlayRandomAction chooses uniformly among the current state's available
// actions, filtering out can_pass when preferNonPass is set and a
// non-pass action exists, then applies it (spec.md §4.7).
func (s *Session) PlayRandomAction(rng *rand.Rand, preferNonPass bool) (string, error) {
	st, err := s.GetState()
	if err != nil {
		return "", err
	}
	actions, err := s.GetActions()
	if err != nil {
		return "", err
	}
	if len(actions) == 0 {
		return "", nil
	}

	candidates := actions
	if preferNonPass {
		types := mechanics.ActionTypes(st)
		var nonPass []store.ActionSummary
		for _, a := range actions {
			if types[a.ID] != mechanics.ActionCanPass {
				nonPass = append(nonPass, a)
			}
		}
		if len(nonPass) > 0 {
			candidates = nonPass
		}
	}

	chosen := candidates[rng.Intn(len(candidates))]
	if err := s.ApplyAction(chosen.ID); err != nil {
		return "", err
	}
	return chosen.ID, nil
}

// PlayUntilGameOver repeatedly applies random actions until the game
// ends or maxActions is exhausted. On exhaustion it returns the current
// path without having set game_over (spec.md §4.7, §5).
func (s *Session) PlayUntilGameOver(rng *rand.Rand, maxActions int, preferNonPass bool) (string, bool, error) {
	for i := 0; i < maxActions; i++ {
		over, err := s.IsGameOver()
		if err != nil {
			return s.current, false, err
		}
		if over {
			return s.current, true, nil
		}
		if _, err := s.PlayRandomAction(rng, preferNonPass); err != nil {
			return s.current, false, err
		}
	}
	over, err := s.IsGameOver()
	if err != nil {
		return s.current, false, err
	}
	return s.current, over, nil
}
