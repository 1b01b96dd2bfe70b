package main

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/config"
)

// loadCardDB resolves the CLI's card set for one invocation: a built-in
// table, optionally overwritten by cards loaded from cfgPath's
// card_set_path (or cardsFlag, which wins when both are set). A card set
// is merged on top of Builtin rather than replacing it, so a partial
// custom file only needs to name the cards it's adding or overriding.
func loadCardDB(cfgPath, cardsFlag string) (*carddb.DB, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.FromYAML(cfgPath)
		if err != nil {
			return nil, errors.Wrap(err, "load config")
		}
		cfg = loaded
	}

	cardsPath := cfg.CardSetPath
	if cardsFlag != "" {
		cardsPath = cardsFlag
	}

	db := carddb.Builtin()
	if cardsPath == "" {
		return db, nil
	}

	var extra *carddb.DB
	var err error
	if strings.HasSuffix(cardsPath, ".yaml") || strings.HasSuffix(cardsPath, ".yml") {
		extra, err = carddb.LoadYAMLFile(cardsPath)
	} else {
		extra, err = carddb.LoadJSONFile(cardsPath)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load card set %s", cardsPath)
	}
	db.Merge(extra)
	return db, nil
}
