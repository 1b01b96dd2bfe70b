package diff

import (
	"fmt"
	"strings"

	"github.com/signalnine/lorcana-engine/state"
)

// Headers holds the four summary lines diff.txt prefixes every op list
// with (spec.md §6.2).
type Headers struct {
	Turn          int64
	CurrentPlayer string
	P1Lore        int64
	P2Lore        int64
	Action        string
}

// HeadersFor derives the header block from a post-action state.
func HeadersFor(s *state.State, action string) Headers {
	return Headers{
		Turn:          s.Graph.MustNode("game").GetInt("turn"),
		CurrentPlayer: s.ActivePlayer(),
		P1Lore:        s.Graph.MustNode(state.P1).GetInt("lore"),
		P2Lore:        s.Graph.MustNode(state.P2).GetInt("lore"),
		Action:        action,
	}
}

// RenderText renders the full diff.txt body: four "# header" lines, a
// blank line, then one line per op.
func RenderText(h Headers, ops []Op) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# turn: %d\n", h.Turn)
	fmt.Fprintf(&b, "# current_player: %s\n", h.CurrentPlayer)
	fmt.Fprintf(&b, "# lore: p1=%d p2=%d\n", h.P1Lore, h.P2Lore)
	fmt.Fprintf(&b, "# action: %s\n", h.Action)
	b.WriteString("\n")
	for _, op := range ops {
		b.WriteString(op.Line)
		b.WriteString("\n")
	}
	return b.String()
}
