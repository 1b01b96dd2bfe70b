// Command lorcana is the CLI surface of spec.md §6.3: init, shuffle,
// show, play, play-random, build-trajectories. Subcommands are dispatched
// by hand over stdlib flag.NewFlagSet, one set per verb.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "init":
		err = runInit(os.Args[2:])
	case "shuffle":
		err = runShuffle(os.Args[2:])
	case "show":
		err = runShow(os.Args[2:])
	case "play":
		err = runPlay(os.Args[2:])
	case "play-random":
		err = runPlayRandom(os.Args[2:])
	case "build-trajectories":
		err = runBuildTrajectories(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "lorcana:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: lorcana <command> [args]

commands:
  init <deck1.txt> <deck2.txt> [--config=...] [--cards=...]
  shuffle <matchdir> <seed> [--config=...] [--cards=...]
  show <game.dot>
  play <path> [--store=file|memory] [--config=...] [--cards=...]
  play-random <initial_state_path> [count] [--config=...] [--cards=...]
  build-trajectories <matchdir> [--config=...] [--cards=...]`)
}
