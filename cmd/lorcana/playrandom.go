package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/state"
	"github.com/signalnine/lorcana-engine/store"
	"github.com/signalnine/lorcana-engine/tree"
)

const defaultMaxActions = 500

func runPlayRandom(args []string) error {
	fs := flag.NewFlagSet("play-random", flag.ExitOnError)
	preferNonPass := fs.Bool("prefer-non-pass", true, "avoid passing when a non-pass action is available")
	maxActions := fs.Int("max-actions", defaultMaxActions, "rollout length cap before giving up")
	seed := fs.Int64("seed", 1, "base RNG seed")
	cfgPath := fs.String("config", "", "optional YAML config file")
	cardsPath := fs.String("cards", "", "optional card set file (.json or .yaml), overrides config's card_set_path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		return errors.New("usage: lorcana play-random <initial_state_path> [count]")
	}
	count := 1
	if len(rest) == 2 {
		n, err := strconv.Atoi(rest[1])
		if err != nil {
			return errors.Wrap(err, "play-random: parse count")
		}
		count = n
	}

	seedRoot, relPath, err := locateSeedRoot(rest[0])
	if err != nil {
		return errors.Wrap(err, "play-random")
	}
	db, err := loadCardDB(*cfgPath, *cardsPath)
	if err != nil {
		return errors.Wrap(err, "play-random")
	}
	st := store.NewFileStore(seedRoot, db)
	initial, err := tree.Materialize(st, relPath)
	if err != nil {
		return errors.Wrap(err, "play-random: materialize initial state")
	}

	p1Wins, p2Wins, unterminated := 0, 0, 0
	for i := 0; i < count; i++ {
		sess := tree.Attach(st, relPath)
		rng := rand.New(rand.NewSource(*seed + int64(i)))
		path, terminated, err := sess.PlayUntilGameOver(rng, *maxActions, *preferNonPass)
		if err != nil {
			return errors.Wrap(err, "play-random: rollout")
		}
		if !terminated {
			unterminated++
			fmt.Printf("rollout %d: did not terminate within %d actions (stopped at %s)\n", i, *maxActions, path)
			continue
		}
		winner, err := sess.GetWinner()
		if err != nil {
			return err
		}
		switch winner {
		case state.P1:
			p1Wins++
		case state.P2:
			p2Wins++
		}
		fmt.Printf("rollout %d: winner=%s path=%s\n", i, winner, path)
	}

	fmt.Printf("total=%d p1_wins=%d p2_wins=%d unterminated=%d\n", count, p1Wins, p2Wins, unterminated)
	return nil
}
