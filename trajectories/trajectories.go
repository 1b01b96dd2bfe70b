// Package trajectories implements the build-trajectories CLI command
// (grounded on original_source's bin/build-trajectories.py): walk every already-explored seed's game
// tree, and for each card mentioned in an action's description or its
// diff, emit one row of its current feature values into a per-card
// tab-separated file.
package trajectories

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/diff"
	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/state"
	"github.com/signalnine/lorcana-engine/store"
	"github.com/signalnine/lorcana-engine/tree"
)

// columns lists every trajectory row's fields, in write order.
var columns = []string{
	"card_id", "card_name", "owner", "zone", "exerted", "damage",
	"turn", "current_player", "action", "path", "diff", "score",
}

// row is one card's observation at one explored state.
type row map[string]string

// Build walks matchdir for seed subdirectories (a directory containing
// game.dot whose name is not itself a short base-36 action segment),
// replays each seed's persisted tree, and writes matchdir/trajectories/
// {card_name}.txt.
func Build(matchdir string, db *carddb.DB) (int, int, error) {
	entries, err := os.ReadDir(matchdir)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "trajectories: read %s", matchdir)
	}

	var seedDirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if !isSeedDir(filepath.Join(matchdir, e.Name())) {
			continue
		}
		seedDirs = append(seedDirs, e.Name())
	}
	if len(seedDirs) == 0 {
		if isSeedDir(matchdir) {
			seedDirs = []string{""}
		}
	}
	sort.Strings(seedDirs)

	trajectories := make(map[string][]row)
	for _, seedName := range seedDirs {
		seedDir := matchdir
		if seedName != "" {
			seedDir = filepath.Join(matchdir, seedName)
		}
		if err := traverseSeed(seedDir, db, trajectories); err != nil {
			return 0, 0, err
		}
	}

	if err := write(matchdir, trajectories); err != nil {
		return 0, 0, err
	}

	total := 0
	for _, rows := range trajectories {
		total += len(rows)
	}
	return len(trajectories), total, nil
}

// isSeedDir mirrors the Python is_seed_dir check: has game.dot and its
// own base name (not an ancestor's relative path) is longer than a
// two-character action-id segment.
func isSeedDir(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "game.dot"))
	if err != nil {
		return false
	}
	name := filepath.Base(dir)
	return len(name) > 2
}

func isActionDirName(name string) bool {
	if len(name) == 0 || len(name) > 2 {
		return false
	}
	c := name[0]
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z')
}

func traverseSeed(seedDir string, db *carddb.DB, out map[string][]row) error {
	st := store.NewFileStore(seedDir, db)
	initial, err := st.LoadState("")
	if err != nil {
		return err
	}
	sess, err := tree.New(st, initial, "")
	if err != nil {
		return err
	}
	return traverse(sess, st, seedDir, "initial", "", "", out)
}

func traverse(sess *tree.Session, st store.StateStore, fsPath, action, gamePath, diffText string, out map[string][]row) error {
	s, err := sess.GetState()
	if err != nil {
		return err
	}

	for _, r := range extractAllCards(s) {
		cardID := r["card_id"]
		if !strings.Contains(action, cardID) && !strings.Contains(diffText, cardID) {
			continue
		}
		r["action"] = action
		r["path"] = gamePath
		r["diff"] = diffText
		r["score"] = score(st, gamePath, r["owner"])
		out[r["card_name"]] = append(out[r["card_name"]], r)
	}

	entries, err := os.ReadDir(fsPath)
	if err != nil {
		return errors.Wrapf(err, "trajectories: read %s", fsPath)
	}
	var children []string
	for _, e := range entries {
		if e.IsDir() && isActionDirName(e.Name()) {
			children = append(children, e.Name())
		}
	}
	sort.Strings(children)

	actions, err := sess.GetActions()
	if err != nil {
		return err
	}
	descByID := make(map[string]string, len(actions))
	for _, a := range actions {
		descByID[a.ID] = a.Description
	}

	parentPath := sess.GetPath()
	for _, actionID := range children {
		before, err := sess.GetState()
		if err != nil {
			return err
		}
		if err := sess.ApplyAction(actionID); err != nil {
			return err
		}
		after, err := sess.GetState()
		if err != nil {
			return err
		}
		ops := diff.Diff(before.Graph, after.Graph)
		lines := make([]string, len(ops))
		for i, op := range ops {
			lines[i] = op.String()
		}
		childDiff := strings.Join(lines, "; ")

		childPath := actionID
		if gamePath != "" {
			childPath = gamePath + "/" + actionID
		}
		childFSPath := filepath.Join(fsPath, actionID)

		desc := descByID[actionID]
		if desc == "" {
			desc = fmt.Sprintf("action:%s", actionID)
		}
		if err := traverse(sess, st, childFSPath, desc, childPath, childDiff, out); err != nil {
			return err
		}
		if err := sess.Goto(parentPath); err != nil {
			return err
		}
	}
	return nil
}

// score reports owner's observed win rate from the outcomes.json of the
// state at gamePath itself (the tally of terminal outcomes reached below
// it), or "" if that state has none recorded; ancestors' tallies are not
// consulted. gamePath is the store-relative path key ("", "a1",
// "a1/a2", ...).
func score(st store.StateStore, gamePath, owner string) string {
	po, err := st.GetOutcomes(gamePath)
	if err != nil {
		return ""
	}
	total := len(po.P1Wins) + len(po.P2Wins)
	if total == 0 {
		return ""
	}
	wins := len(po.P2Wins)
	if owner == state.P1 {
		wins = len(po.P1Wins)
	}
	return fmt.Sprintf("%.2f", float64(wins)/float64(total))
}

func extractAllCards(s *state.State) []row {
	var out []row
	turn := s.Graph.MustNode("game").GetInt("turn")
	currentPlayer := s.ActivePlayer()
	for _, id := range s.Graph.NodesByType(graph.NodeCard) {
		n := s.Graph.MustNode(id)
		owner := state.P1
		if strings.HasPrefix(id, state.P2+".") {
			owner = state.P2
		}
		out = append(out, row{
			"card_id":         id,
			"card_name":       n.GetStr("label"),
			"owner":           owner,
			"zone":            n.GetStr("zone"),
			"exerted":         fmt.Sprintf("%d", n.GetInt("exerted")),
			"damage":          fmt.Sprintf("%d", n.GetInt("damage")),
			"turn":            fmt.Sprintf("%d", turn),
			"current_player":  currentPlayer,
		})
	}
	return out
}

func write(matchdir string, trajectories map[string][]row) error {
	dir := filepath.Join(matchdir, "trajectories")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "trajectories: mkdir %s", dir)
	}
	for cardName, rows := range trajectories {
		var b strings.Builder
		b.WriteString(strings.Join(columns, "\t"))
		b.WriteString("\n")
		for _, r := range rows {
			vals := make([]string, len(columns))
			for i, c := range columns {
				vals[i] = r[c]
			}
			b.WriteString(strings.Join(vals, "\t"))
			b.WriteString("\n")
		}
		path := filepath.Join(dir, cardName+".txt")
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			return errors.Wrapf(err, "trajectories: write %s", path)
		}
	}
	return nil
}
