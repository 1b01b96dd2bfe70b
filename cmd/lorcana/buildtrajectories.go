package main

import (
	"flag"
	"fmt"

	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/trajectories"
)

func runBuildTrajectories(args []string) error {
	fs := flag.NewFlagSet("build-trajectories", flag.ExitOnError)
	cfgPath := fs.String("config", "", "optional YAML config file")
	cardsPath := fs.String("cards", "", "optional card set file (.json or .yaml), overrides config's card_set_path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return errors.New("usage: lorcana build-trajectories <matchdir>")
	}

	db, err := loadCardDB(*cfgPath, *cardsPath)
	if err != nil {
		return errors.Wrap(err, "build-trajectories")
	}
	numCards, totalRows, err := trajectories.Build(rest[0], db)
	if err != nil {
		return errors.Wrap(err, "build-trajectories")
	}
	fmt.Printf("wrote %d rows across %d card files\n", totalRows, numCards)
	return nil
}
