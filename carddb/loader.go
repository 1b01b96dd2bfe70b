package carddb

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// jsonFile is the on-disk shape a card set JSON file takes: an object
// whose "cards" key holds an array of records, mirroring the teacher's genome/serialization.go pattern of
// decoding into a plain intermediate type before building the typed
// in-memory structure.
type jsonFile struct {
	Cards []Record `json:"cards"`
}

// yamlFile mirrors jsonFile for the YAML card-set format -- yaml.v3
// matches fields to lowercased Go names when no yaml tag is present, so
// it reads the same "cards: [...]" shape the JSON loader does.
type yamlFile struct {
	Cards []Record `yaml:"cards"`
}

// LoadJSON reads a card set from r and registers every record, later
// entries in the file overwriting earlier ones with the same normalized
// name.
func LoadJSON(r io.Reader) (*DB, error) {
	var f jsonFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "carddb: decode json")
	}
	db := New()
	for _, rec := range f.Cards {
		db.RegisterOverwrite(rec)
	}
	if err := db.Validate(); err != nil {
		return nil, errors.Wrap(err, "carddb: validate")
	}
	return db, nil
}

// LoadJSONFile opens path and delegates to LoadJSON.
func LoadJSONFile(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "carddb: open %s", path)
	}
	defer f.Close()
	return LoadJSON(f)
}

// LoadYAML reads a card set from r in the same shape as LoadJSON, for
// callers who'd rather hand-author a card set as YAML than JSON.
func LoadYAML(r io.Reader) (*DB, error) {
	var f yamlFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "carddb: decode yaml")
	}
	db := New()
	for _, rec := range f.Cards {
		db.RegisterOverwrite(rec)
	}
	if err := db.Validate(); err != nil {
		return nil, errors.Wrap(err, "carddb: validate")
	}
	return db, nil
}

// LoadYAMLFile opens path and delegates to LoadYAML.
func LoadYAMLFile(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "carddb: open %s", path)
	}
	defer f.Close()
	return LoadYAML(f)
}
