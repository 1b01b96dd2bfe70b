package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/graph"
)

func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return errors.New("usage: lorcana show <game.dot>")
	}

	dotBytes, err := os.ReadFile(rest[0])
	if err != nil {
		return errors.Wrap(err, "show: read game.dot")
	}
	g, err := graph.ParseDOT(string(dotBytes))
	if err != nil {
		return errors.Wrap(err, "show: parse game.dot")
	}

	var ids []string
	descriptions := make(map[string]string)
	for _, e := range g.AllEdges() {
		v, ok := e.Get("action_id")
		if !ok {
			continue
		}
		id := v.AsStr()
		ids = append(ids, id)
		descriptions[id] = e.GetStr("description")
	}
	sort.Strings(ids)

	if len(ids) == 0 {
		fmt.Println("(no actions available)")
		return nil
	}
	for _, id := range ids {
		fmt.Printf("%s: %s\n", id, descriptions[id])
	}
	return nil
}
