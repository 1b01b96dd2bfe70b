package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/diff"
	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/lorcanaerr"
	"github.com/signalnine/lorcana-engine/state"
)

const (
	dotFile      = "game.dot"
	deck1File    = "deck1.dek"
	deck2File    = "deck2.dek"
	actionsFile  = "actions.txt"
	diffFile     = "diff.txt"
	outcomeFile  = "outcome.txt"
	outcomesFile = "outcomes.json"
)

// FileStore is the directory-tree StateStore backend of spec.md §6.2: one
// subdirectory per explored path segment, deck files symlink-compressed
// against their parent when identical, plus a per-process deep-copy
// cache keyed by path (spec.md §5: "FileStore also uses a per-process
// state cache... invalidation is by overwrite of that key").
type FileStore struct {
	root  string
	db    *carddb.DB
	cache map[string]*state.State
}

// NewFileStore opens a FileStore rooted at dir (the matchup or seed
// directory under which state subdirectories are created).
func NewFileStore(dir string, db *carddb.DB) *FileStore {
	return &FileStore{root: dir, db: db, cache: make(map[string]*state.State)}
}

func (fs *FileStore) dirFor(path string) string {
	if path == "" {
		return fs.root
	}
	return filepath.Join(fs.root, filepath.FromSlash(path))
}

// parentPath drops the last "/"-separated segment; "" has no parent.
func parentPath(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", true
	}
	return path[:idx], true
}

func (fs *FileStore) LoadState(path string) (*state.State, error) {
	if cached, ok := fs.cache[path]; ok {
		return cached.Clone(), nil
	}
	dir := fs.dirFor(path)
	dotBytes, err := os.ReadFile(filepath.Join(dir, dotFile))
	if err != nil {
		return nil, lorcanaerr.Wrap(lorcanaerr.ErrMissingState, "path %q: %v", path, err)
	}
	g, err := graph.ParseDOT(string(dotBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "filestore: parse %s", path)
	}
	deck1, err := readDeckFile(filepath.Join(dir, deck1File))
	if err != nil {
		return nil, errors.Wrapf(err, "filestore: read deck1 at %s", path)
	}
	deck2, err := readDeckFile(filepath.Join(dir, deck2File))
	if err != nil {
		return nil, errors.Wrapf(err, "filestore: read deck2 at %s", path)
	}
	s := state.New(g, deck1, deck2, fs.db)
	fs.cache[path] = s.Clone()
	return s, nil
}

func readDeckFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	text := strings.TrimRight(string(b), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

func deckContent(ids []string) string {
	return strings.Join(ids, "\n") + "\n"
}

func (fs *FileStore) SaveState(s *state.State, path string, opts SaveOptions) error {
	dir := fs.dirFor(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return lorcanaerr.Wrap(lorcanaerr.ErrIO, "mkdir %s: %v", dir, err)
	}

	dotStr, err := graph.RenderDOT(s.Graph)
	if err != nil {
		return errors.Wrapf(err, "filestore: render dot at %s", path)
	}
	if err := os.WriteFile(filepath.Join(dir, dotFile), []byte(dotStr), 0o644); err != nil {
		return lorcanaerr.Wrap(lorcanaerr.ErrIO, "write game.dot at %s: %v", path, err)
	}

	var parentDir string
	if parent, hasParent := parentPath(path); hasParent {
		parentDir = fs.dirFor(parent)
	}
	if err := fs.writeDeckFile(dir, parentDir, deck1File, deckContent(s.Decks[state.P1])); err != nil {
		return err
	}
	if err := fs.writeDeckFile(dir, parentDir, deck2File, deckContent(s.Decks[state.P2])); err != nil {
		return err
	}

	if err := fs.writeActionsFile(dir, s); err != nil {
		return err
	}

	if opts.Parent != nil {
		ops := diff.Diff(opts.Parent.Graph, s.Graph)
		headers := diff.HeadersFor(s, opts.ActionTaken)
		text := diff.RenderText(headers, ops)
		if err := os.WriteFile(filepath.Join(dir, diffFile), []byte(text), 0o644); err != nil {
			return lorcanaerr.Wrap(lorcanaerr.ErrIO, "write diff.txt at %s: %v", path, err)
		}
	}

	fs.cache[path] = s.Clone()
	return nil
}

// writeDeckFile writes content at dir/name, or -- when parentDir is
// non-empty and its copy of name has identical content -- a relative
// symlink to the parent's file instead (spec.md §5, §6.2).
func (fs *FileStore) writeDeckFile(dir, parentDir, name, content string) error {
	target := filepath.Join(dir, name)
	if parentDir != "" {
		parentFile := filepath.Join(parentDir, name)
		if existing, err := os.ReadFile(parentFile); err == nil && string(existing) == content {
			_ = os.Remove(target)
			rel, relErr := filepath.Rel(dir, parentFile)
			if relErr == nil {
				if err := os.Symlink(rel, target); err == nil {
					return nil
				}
			}
		}
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return lorcanaerr.Wrap(lorcanaerr.ErrIO, "write %s: %v", target, err)
	}
	return nil
}

func (fs *FileStore) writeActionsFile(dir string, s *state.State) error {
	var b strings.Builder
	for _, a := range collectActions(s) {
		fmt.Fprintf(&b, "%s: %s\n", a.ID, a.Description)
	}
	if err := os.WriteFile(filepath.Join(dir, actionsFile), []byte(b.String()), 0o644); err != nil {
		return lorcanaerr.Wrap(lorcanaerr.ErrIO, "write actions.txt: %v", err)
	}
	return nil
}

func (fs *FileStore) StateExists(path string) bool {
	_, err := os.Stat(filepath.Join(fs.dirFor(path), dotFile))
	return err == nil
}

func (fs *FileStore) GetActions(path string) ([]ActionSummary, error) {
	b, err := os.ReadFile(filepath.Join(fs.dirFor(path), actionsFile))
	if err != nil {
		return nil, lorcanaerr.Wrap(lorcanaerr.ErrMissingState, "actions.txt at %q: %v", path, err)
	}
	var out []ActionSummary
	for _, line := range strings.Split(strings.TrimRight(string(b), "\n"), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ": ", 2)
		if len(parts) != 2 {
			continue
		}
		out = append(out, ActionSummary{ID: parts[0], Description: parts[1]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (fs *FileStore) SaveOutcome(path string, firstAction string, suffix *string, o Outcome) error {
	dir := fs.dirFor(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return lorcanaerr.Wrap(lorcanaerr.ErrIO, "mkdir %s: %v", dir, err)
	}
	if suffix == nil {
		var b strings.Builder
		fmt.Fprintf(&b, "winner: %s\n", o.Winner)
		fmt.Fprintf(&b, "p1_lore: %d\n", o.P1Lore)
		fmt.Fprintf(&b, "p2_lore: %d\n", o.P2Lore)
		return os.WriteFile(filepath.Join(dir, outcomeFile), []byte(b.String()), 0o644)
	}

	po, err := fs.readOutcomesFile(dir)
	if err != nil {
		return err
	}
	acc := po.Outcomes[firstAction]
	if o.Winner == state.P1 {
		acc.P1Wins++
		po.P1Wins = append(po.P1Wins, *suffix)
	} else {
		acc.P2Wins++
		po.P2Wins = append(po.P2Wins, *suffix)
	}
	po.Outcomes[firstAction] = acc
	return fs.writeOutcomesFile(dir, po)
}

func (fs *FileStore) readOutcomesFile(dir string) (*PathOutcomes, error) {
	b, err := os.ReadFile(filepath.Join(dir, outcomesFile))
	if os.IsNotExist(err) {
		return &PathOutcomes{Outcomes: make(map[string]ActionOutcome)}, nil
	}
	if err != nil {
		return nil, lorcanaerr.Wrap(lorcanaerr.ErrIO, "read outcomes.json: %v", err)
	}
	var po PathOutcomes
	if err := json.Unmarshal(b, &po); err != nil {
		return nil, errors.Wrap(err, "filestore: decode outcomes.json")
	}
	if po.Outcomes == nil {
		po.Outcomes = make(map[string]ActionOutcome)
	}
	return &po, nil
}

func (fs *FileStore) writeOutcomesFile(dir string, po *PathOutcomes) error {
	b, err := json.MarshalIndent(po, "", "  ")
	if err != nil {
		return errors.Wrap(err, "filestore: encode outcomes.json")
	}
	if err := os.WriteFile(filepath.Join(dir, outcomesFile), b, 0o644); err != nil {
		return lorcanaerr.Wrap(lorcanaerr.ErrIO, "write outcomes.json: %v", err)
	}
	return nil
}

func (fs *FileStore) GetOutcomes(path string) (*PathOutcomes, error) {
	return fs.readOutcomesFile(fs.dirFor(path))
}
