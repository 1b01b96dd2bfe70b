package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/state"
	"github.com/signalnine/lorcana-engine/store"
	"github.com/signalnine/lorcana-engine/tree"
)

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	storeKind := fs.String("store", "file", "state store backend: file or memory")
	cfgPath := fs.String("config", "", "optional YAML config file")
	cardsPath := fs.String("cards", "", "optional card set file (.json or .yaml), overrides config's card_set_path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return errors.New("usage: lorcana play <path> [--store=file|memory]")
	}
	if *storeKind != "file" && *storeKind != "memory" {
		return errors.Errorf("play: unknown --store=%s (want file or memory)", *storeKind)
	}

	seedRoot, relPath, err := locateSeedRoot(rest[0])
	if err != nil {
		return errors.Wrap(err, "play")
	}

	db, err := loadCardDB(*cfgPath, *cardsPath)
	if err != nil {
		return errors.Wrap(err, "play")
	}
	fileStore := store.NewFileStore(seedRoot, db)
	var st store.StateStore = fileStore
	if *storeKind == "memory" {
		root, err := fileStore.LoadState("")
		if err != nil {
			return errors.Wrap(err, "play: load seed state")
		}
		st = store.NewMemoryStore()
		if err := st.SaveState(root, "", store.SaveOptions{}); err != nil {
			return errors.Wrap(err, "play: seed memory store")
		}
	}
	s, err := tree.Materialize(st, relPath)
	if err != nil {
		return errors.Wrap(err, "play: materialize")
	}

	printSummary(s)

	actions, err := st.GetActions(relPath)
	if err != nil {
		return errors.Wrap(err, "play: get actions")
	}
	if len(actions) == 0 {
		fmt.Println("(no actions available)")
		return nil
	}
	for _, a := range actions {
		fmt.Printf("%s: %s\n", a.ID, a.Description)
	}
	return nil
}

func printSummary(s *state.State) {
	for _, p := range []string{state.P1, state.P2} {
		n := s.Graph.MustNode(p)
		fmt.Printf("%s: lore=%d ink=%d/%d hand=%d play=%d discard=%d\n",
			p, n.GetInt("lore"), n.GetInt("ink_available"), n.GetInt("ink_total"),
			len(s.CardsInZone(p, state.ZoneHand)), len(s.CardsInZone(p, state.ZonePlay)), len(s.CardsInZone(p, state.ZoneDiscard)))
	}
	if s.IsGameOver() {
		fmt.Printf("game over: winner=%s\n", s.Winner())
	}
}

// locateSeedRoot splits a materialization target's filesystem path into
// the FileStore root (the seed directory created by `shuffle`) and the
// store-relative path beneath it, by walking up from path until it finds
// the matchdir -- identified as the first ancestor holding deck1.txt,
// the plaintext decklist `init` writes only at the matchdir level (seed
// and deeper directories hold deck1.dek instead).
func locateSeedRoot(path string) (seedRoot, relPath string, err error) {
	node := filepath.Clean(path)
	var segments []string
	for {
		parent := filepath.Dir(node)
		if parent == node {
			return "", "", errors.Errorf("could not locate a matchdir (deck1.txt) above %q", path)
		}
		if _, statErr := os.Stat(filepath.Join(parent, "deck1.txt")); statErr == nil {
			return node, strings.Join(segments, "/"), nil
		}
		segments = append([]string{filepath.Base(node)}, segments...)
		node = parent
	}
}
