package carddb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	const doc = `{"cards": [
		{"name": "Custom Hero", "cost": 3, "type": "character", "strength": 2, "willpower": 3, "lore": 1,
		 "abilities": [{"keyword": "evasive"}]}
	]}`

	db, err := LoadJSON(strings.NewReader(doc))
	require.NoError(t, err)

	rec, err := db.Lookup("Custom Hero")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Cost)
	assert.True(t, rec.HasKeyword(KeywordEvasive))
}

func TestLoadJSONRejectsInvalidRecords(t *testing.T) {
	const doc = `{"cards": [{"name": "Broken", "cost": -5, "type": "character"}]}`
	_, err := LoadJSON(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestLoadJSONMalformed(t *testing.T) {
	_, err := LoadJSON(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	const doc = "cards:\n  - name: Custom Hero\n    cost: 3\n    type: character\n    strength: 2\n    willpower: 3\n    lore: 1\n    abilities:\n      - keyword: evasive\n"

	db, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	rec, err := db.Lookup("Custom Hero")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Cost)
	assert.True(t, rec.HasKeyword(KeywordEvasive))
}

func TestLoadYAMLRejectsInvalidRecords(t *testing.T) {
	const doc = "cards:\n  - name: Broken\n    cost: -5\n    type: character\n"
	_, err := LoadYAML(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}
