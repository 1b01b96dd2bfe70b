package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/state"
)

func TestRenderTextIncludesHeadersAndOps(t *testing.T) {
	g := graph.New()
	g.AddNode("game", graph.NodeGame, map[string]graph.Value{"turn": graph.Int(2)})
	g.AddNode(state.P1, graph.NodePlayer, map[string]graph.Value{"lore": graph.Int(3)})
	g.AddNode(state.P2, graph.NodePlayer, map[string]graph.Value{"lore": graph.Int(0)})
	g.AddEdge("game", state.P1, "current_turn", nil)
	s := state.New(g, nil, nil, nil)

	h := HeadersFor(s, "quest p1.mickey.a")
	text := RenderText(h, []Op{{Kind: SetNode, Line: "set node p1 lore=3"}})

	assert.True(t, strings.HasPrefix(text, "# turn: 2\n"))
	assert.Contains(t, text, "# current_player: p1\n")
	assert.Contains(t, text, "# lore: p1=3 p2=0\n")
	assert.Contains(t, text, "# action: quest p1.mickey.a\n")
	assert.Contains(t, text, "set node p1 lore=3")
}
