// Package carddb provides the static, read-only mapping from a normalized
// card name to its attributes and printed abilities (spec.md §4.1). It is
// process-wide immutable after first load, lazily initialized by the
// caller via New/Builtin, mirroring the teacher's genome package's
// typed-struct-plus-JSON-intermediate approach (genome/schema.go,
// genome/serialization.go) adapted from "the rules of an evolved card
// game" to "the attributes of one named card".
package carddb

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/lorcanaerr"
)

// CardType enumerates the four printed card types spec.md §4.1 names.
type CardType string

const (
	TypeCharacter CardType = "character"
	TypeAction    CardType = "action"
	TypeItem      CardType = "item"
	TypeLocation  CardType = "location"
)

// Keyword enumerates the five keywords this engine implements (spec.md §1).
type Keyword string

const (
	KeywordRush      Keyword = "rush"
	KeywordEvasive   Keyword = "evasive"
	KeywordAlert     Keyword = "alert"
	KeywordBodyguard Keyword = "bodyguard"
	KeywordReckless  Keyword = "reckless"
)

// Ability is one printed keyword ability on a card record.
type Ability struct {
	Keyword Keyword `json:"keyword"`
}

// Record is the complete set of static attributes for one normalized
// card name (spec.md §4.1).
type Record struct {
	Name      string    `json:"name"`
	Cost      int       `json:"cost"`
	Type      CardType  `json:"type"`
	Strength  int       `json:"strength"`
	Willpower int       `json:"willpower"`
	Lore      int       `json:"lore"`
	Inkwell   bool      `json:"inkwell"`
	Abilities []Ability `json:"abilities"`
}

// HasKeyword reports whether this record carries the given printed
// keyword.
func (r Record) HasKeyword(k Keyword) bool {
	for _, a := range r.Abilities {
		if a.Keyword == k {
			return true
		}
	}
	return false
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lowercases a card name and collapses "-"/" "/"_" runs into a
// single "_" (spec.md §4.1).
func Normalize(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.Trim(nonAlnum.ReplaceAllString(lower, "_"), "_")
}

// DB is the process-wide card database: a read-only mapping once built,
// though construction itself supports incremental registration from
// multiple sources (spec.md §4.1, SPEC_FULL.md §4.1 supplement).
type DB struct {
	records map[string]Record
}

// New returns an empty database; use Register/LoadJSON/merge Builtin() to
// populate it.
func New() *DB {
	return &DB{records: make(map[string]Record)}
}

// Register adds one record under its normalized name. If a record with
// that name is already present, it is kept and r is ignored: multiple
// printings of the same name collapse to the first registered one
// (spec.md §4.1). RegisterOverwrite and Merge are the replacing forms.
func (db *DB) Register(r Record) {
	key := Normalize(r.Name)
	if _, exists := db.records[key]; exists {
		return
	}
	db.records[key] = r
}

// RegisterOverwrite force-registers r even if key already exists; used by
// later-loaded sources (JSON file, programmatic overrides) that are
// allowed to win over the built-in table.
func (db *DB) RegisterOverwrite(r Record) {
	db.records[Normalize(r.Name)] = r
}

// Lookup fails fast: a card id or label not present in the DB is an
// ErrUnknownCard (spec.md §4.1, §7).
func (db *DB) Lookup(label string) (Record, error) {
	key := Normalize(label)
	r, ok := db.records[key]
	if !ok {
		return Record{}, lorcanaerr.Wrap(lorcanaerr.ErrUnknownCard, "card %q", label)
	}
	return r, nil
}

// Has reports presence without erroring.
func (db *DB) Has(label string) bool {
	_, ok := db.records[Normalize(label)]
	return ok
}

// Merge copies every record of other into db, with other's entries
// winning on collision (later source wins, per SPEC_FULL.md §4.1).
func (db *DB) Merge(other *DB) {
	for _, r := range other.records {
		db.RegisterOverwrite(r)
	}
}

// Validate aggregates every malformed record into a single multierror so
// a deck/card-set author sees all problems in one pass (SPEC_FULL.md §4.1,
// grounded in the teacher's hashicorp/go-multierror usage in agent.go).
func (db *DB) Validate() error {
	var result error
	for _, r := range db.records {
		if r.Cost < 0 {
			result = multierror.Append(result, errors.Errorf("card %q: negative cost", r.Name))
		}
		if r.Strength < 0 || r.Willpower < 0 || r.Lore < 0 {
			result = multierror.Append(result, errors.Errorf("card %q: negative stat", r.Name))
		}
		switch r.Type {
		case TypeCharacter, TypeAction, TypeItem, TypeLocation:
		default:
			result = multierror.Append(result, errors.Errorf("card %q: unknown type %q", r.Name, r.Type))
		}
		for _, a := range r.Abilities {
			switch a.Keyword {
			case KeywordRush, KeywordEvasive, KeywordAlert, KeywordBodyguard, KeywordReckless:
			default:
				result = multierror.Append(result, errors.Errorf("card %q: unknown keyword %q", r.Name, a.Keyword))
			}
		}
	}
	return result
}

// Len returns the number of distinct card names registered.
func (db *DB) Len() int { return len(db.records) }
