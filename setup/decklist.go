package setup

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/signalnine/lorcana-engine/carddb"
)

// DistinctCard is one decklist line's parsed form: a normalized name plus
// how many copies it specifies.
type DistinctCard struct {
	Name  string
	Count int
}

// ParseDecklist parses `{count} {name}` lines, preserving first-seen
// order (spec.md §4.9: "unique name... in order").
func ParseDecklist(text string) ([]DistinctCard, error) {
	var out []DistinctCard
	seen := make(map[string]int)
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("setup: malformed decklist line %q", line)
		}
		count, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, errors.Wrapf(err, "setup: bad count in %q", line)
		}
		name := carddb.Normalize(parts[1])
		if idx, ok := seen[name]; ok {
			out[idx].Count += count
			continue
		}
		seen[name] = len(out)
		out = append(out, DistinctCard{Name: name, Count: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "setup: scan decklist")
	}
	return out, nil
}

// Copies expands a distinct-card list into ordered "{player}.{name}.{suffix}"
// card ids, suffix ∈ {a,b,c,...} per distinct name (spec.md §4.9).
func Copies(player string, cards []DistinctCard) []string {
	var out []string
	for _, c := range cards {
		for i := 0; i < c.Count; i++ {
			out = append(out, player+"."+c.Name+"."+suffixFor(i))
		}
	}
	return out
}

// suffixFor renders 0,1,2,... as a,b,c,...,z,aa,ab,... (spreadsheet-
// column style), matching spec.md's "{a,b,c,...}" copy suffix scheme.
func suffixFor(i int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	if i < 26 {
		return string(alphabet[i])
	}
	s := ""
	i++
	for i > 0 {
		i--
		s = string(alphabet[i%26]) + s
		i /= 26
	}
	return s
}
