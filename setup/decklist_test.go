package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecklistMergesDuplicateNames(t *testing.T) {
	text := "2 Dust Imp\n1 Mickey Mouse - Brave Little Tailor\n2 dust imp\n"
	cards, err := ParseDecklist(text)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "dust_imp", cards[0].Name)
	assert.Equal(t, 4, cards[0].Count)
	assert.Equal(t, "mickey_mouse_brave_little_tailor", cards[1].Name)
}

func TestParseDecklistRejectsMalformedLine(t *testing.T) {
	_, err := ParseDecklist("not a count line")
	require.Error(t, err)
}

func TestCopiesUsesSpreadsheetSuffixes(t *testing.T) {
	ids := Copies("p1", []DistinctCard{{Name: "dust_imp", Count: 3}})
	assert.Equal(t, []string{"p1.dust_imp.a", "p1.dust_imp.b", "p1.dust_imp.c"}, ids)
}

func TestSuffixForBeyondZ(t *testing.T) {
	assert.Equal(t, "z", suffixFor(25))
	assert.Equal(t, "aa", suffixFor(26))
	assert.Equal(t, "ab", suffixFor(27))
}
