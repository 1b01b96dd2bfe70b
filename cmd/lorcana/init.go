package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/setup"
)

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	cfgPath := fs.String("config", "", "optional YAML config file")
	cardsPath := fs.String("cards", "", "optional card set file (.json or .yaml), overrides config's card_set_path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return errors.New("usage: lorcana init <deck1.txt> <deck2.txt>")
	}

	deck1Text, err := os.ReadFile(rest[0])
	if err != nil {
		return errors.Wrap(err, "init: read deck1")
	}
	deck2Text, err := os.ReadFile(rest[1])
	if err != nil {
		return errors.Wrap(err, "init: read deck2")
	}

	hash := setup.MatchupHash(string(deck1Text), string(deck2Text))
	matchdir := filepath.Join("output", hash)
	if err := os.MkdirAll(matchdir, 0o755); err != nil {
		return errors.Wrap(err, "init: mkdir")
	}
	if err := os.WriteFile(filepath.Join(matchdir, "deck1.txt"), deck1Text, 0o644); err != nil {
		return errors.Wrap(err, "init: write deck1.txt")
	}
	if err := os.WriteFile(filepath.Join(matchdir, "deck2.txt"), deck2Text, 0o644); err != nil {
		return errors.Wrap(err, "init: write deck2.txt")
	}

	db, err := loadCardDB(*cfgPath, *cardsPath)
	if err != nil {
		return errors.Wrap(err, "init")
	}
	skeleton := setup.Skeleton(db)
	dotStr, err := graph.RenderDOT(skeleton.Graph)
	if err != nil {
		return errors.Wrap(err, "init: render game.dot")
	}
	if err := os.WriteFile(filepath.Join(matchdir, "game.dot"), []byte(dotStr), 0o644); err != nil {
		return errors.Wrap(err, "init: write game.dot")
	}

	fmt.Println(hash)
	return nil
}
