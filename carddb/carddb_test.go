package carddb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "mickey_mouse_brave_little_tailor", Normalize("Mickey Mouse - Brave Little Tailor"))
	assert.Equal(t, "elsa_snow_queen", Normalize("  Elsa -- Snow Queen  "))
	assert.Equal(t, "a_b", Normalize("a_b"))
}

func TestRegisterFirstWins(t *testing.T) {
	db := New()
	db.Register(Record{Name: "Dust Imp", Cost: 1})
	db.Register(Record{Name: "Dust Imp", Cost: 99})

	rec, err := db.Lookup("dust imp")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Cost)
}

func TestRegisterOverwriteLaterWins(t *testing.T) {
	db := New()
	db.Register(Record{Name: "Dust Imp", Cost: 1})
	db.RegisterOverwrite(Record{Name: "Dust Imp", Cost: 99})

	rec, err := db.Lookup("Dust Imp")
	require.NoError(t, err)
	assert.Equal(t, 99, rec.Cost)
}

func TestLookupUnknownCard(t *testing.T) {
	db := New()
	_, err := db.Lookup("nobody")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nobody"))
}

func TestMergeLaterSourceWins(t *testing.T) {
	base := New()
	base.Register(Record{Name: "Dust Imp", Cost: 1})

	override := New()
	override.Register(Record{Name: "Dust Imp", Cost: 2})
	override.Register(Record{Name: "New Card", Cost: 3})

	base.Merge(override)

	rec, err := base.Lookup("Dust Imp")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Cost)
	assert.True(t, base.Has("New Card"))
	assert.Equal(t, 2, base.Len())
}

func TestValidateAggregatesErrors(t *testing.T) {
	db := New()
	db.RegisterOverwrite(Record{Name: "Bad Cost", Cost: -1, Type: TypeCharacter})
	db.RegisterOverwrite(Record{Name: "Bad Type", Cost: 1, Type: "spell"})
	db.RegisterOverwrite(Record{Name: "Fine", Cost: 1, Type: TypeCharacter})

	err := db.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "Bad Cost")
	assert.Contains(t, msg, "Bad Type")
	assert.NotContains(t, msg, `"Fine"`)
}

func TestBuiltinCoversAllKeywords(t *testing.T) {
	db := Builtin()
	for _, k := range []Keyword{KeywordRush, KeywordEvasive, KeywordAlert, KeywordBodyguard, KeywordReckless} {
		found := false
		for _, r := range db.records {
			if r.HasKeyword(k) {
				found = true
				break
			}
		}
		assert.Truef(t, found, "expected at least one builtin card with keyword %q", k)
	}
}
