package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/setup"
	"github.com/signalnine/lorcana-engine/store"
	"github.com/signalnine/lorcana-engine/tree"
)

func runShuffle(args []string) error {
	fs := flag.NewFlagSet("shuffle", flag.ExitOnError)
	cfgPath := fs.String("config", "", "optional YAML config file")
	cardsPath := fs.String("cards", "", "optional card set file (.json or .yaml), overrides config's card_set_path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return errors.New("usage: lorcana shuffle <matchdir> <seed>")
	}
	matchdir, seed := rest[0], rest[1]

	deck1Text, err := os.ReadFile(filepath.Join(matchdir, "deck1.txt"))
	if err != nil {
		return errors.Wrap(err, "shuffle: read deck1.txt")
	}
	deck2Text, err := os.ReadFile(filepath.Join(matchdir, "deck2.txt"))
	if err != nil {
		return errors.Wrap(err, "shuffle: read deck2.txt")
	}

	db, err := loadCardDB(*cfgPath, *cardsPath)
	if err != nil {
		return errors.Wrap(err, "shuffle")
	}
	initial, err := setup.BuildInitialState(db, string(deck1Text), string(deck2Text), seed)
	if err != nil {
		return err
	}

	seedDir := filepath.Join(matchdir, seed)
	st := store.NewFileStore(seedDir, db)
	parent := setup.Skeleton(db)
	if err := st.SaveState(initial, "", store.SaveOptions{Parent: parent, ActionTaken: "shuffle"}); err != nil {
		return errors.Wrap(err, "shuffle: save initial state")
	}
	_ = tree.Attach(st, "")

	fmt.Println(seed)
	return nil
}
