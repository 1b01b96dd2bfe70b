// Package state wraps a graph.Graph together with the two players'
// remaining decks and exposes the mutation primitives of spec.md §4.2:
// draw, move_card, damage_card, add_lore. Mutations never recompute
// action edges themselves; that is the mechanics package's job, run by
// the session layer after each top-level action.
package state

import (
	"github.com/signalnine/lorcana-engine/carddb"
	"github.com/signalnine/lorcana-engine/graph"
	"github.com/signalnine/lorcana-engine/lorcanaerr"
)

// Zone values a card node's "zone" attribute may hold.
const (
	ZoneHand    = "hand"
	ZonePlay    = "play"
	ZoneInk     = "ink"
	ZoneDiscard = "discard"
	ZoneDeck    = "deck"
	ZoneUnknown = "unknown"
)

// Player ids.
const (
	P1 = "p1"
	P2 = "p2"
)

// WinLore is the lore threshold that ends the game (spec.md §3.1, §4.2).
const WinLore = 20

// State is the pair (graph, remaining decks) of spec.md's GLOSSARY.
type State struct {
	Graph *graph.Graph
	Decks map[string][]string // player -> remaining card ids, front = next draw
	DB    *carddb.DB
}

// New wraps an already-populated graph and decks (used by the setup
// package once the game/player/step nodes and starting hands exist).
func New(g *graph.Graph, deck1, deck2 []string, db *carddb.DB) *State {
	return &State{
		Graph: g,
		Decks: map[string][]string{
			P1: append([]string{}, deck1...),
			P2: append([]string{}, deck2...),
		},
		DB: db,
	}
}

func (s *State) opponent(player string) string {
	if player == P1 {
		return P2
	}
	return P1
}

// Draw pops up to n ids from player's remaining deck, creating a card
// node in zone=hand for each (spec.md §4.2). If the deck empties before
// n pops are satisfied, draw stops silently; deck-out-during-the-draw-
// step game-ending is the turn mechanic's responsibility (spec.md §4.3),
// not this primitive's.
func (s *State) Draw(player string, n int) {
	deck := s.Decks[player]
	for i := 0; i < n && len(deck) > 0; i++ {
		id := deck[0]
		deck = deck[1:]
		label := baseName(id)
		rec, _ := s.DB.Lookup(label)
		attrs := map[string]graph.Value{
			"label":        graph.Str(label),
			"zone":         graph.Str(ZoneHand),
			"exerted":      graph.Int(0),
			"damage":       graph.Int(0),
			"entered_play": graph.Int(-1),
			"cost":         graph.Int(int64(rec.Cost)),
			"strength":     graph.Int(int64(rec.Strength)),
			"willpower":    graph.Int(int64(rec.Willpower)),
			"lore":         graph.Int(int64(rec.Lore)),
		}
		s.Graph.AddNode(id, graph.NodeCard, attrs)
	}
	s.Decks[player] = deck
}

// DeckEmpty reports whether player has no cards left to draw.
func (s *State) DeckEmpty(player string) bool {
	return len(s.Decks[player]) == 0
}

// baseName strips the "{player}.{normalized_name}.{suffix}" card id down
// to its normalized_name component (spec.md §3.1).
func baseName(cardID string) string {
	parts := splitDot(cardID)
	if len(parts) != 3 {
		return cardID
	}
	return parts[1]
}

func splitDot(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// MoveCard sets a card's zone. Moving out of play deletes every ability
// node whose source edge points at this card, and all of that ability's
// other edges (spec.md §4.2, §4.6).
func (s *State) MoveCard(cardID, zone string) error {
	n, ok := s.Graph.Node(cardID)
	if !ok {
		return lorcanaerr.Wrap(lorcanaerr.ErrMissingState, "move_card: no such card %q", cardID)
	}
	wasPlay := n.GetStr("zone") == ZonePlay
	n.Set("zone", graph.Str(zone))
	if wasPlay && zone != ZonePlay {
		s.Graph.RemoveAbilitiesSourcedAt(cardID)
	}
	return nil
}

// DamageCard adds n to a card's damage total (spec.md §4.2). Banishing on
// lethal damage is a state-based effect, not this primitive.
func (s *State) DamageCard(cardID string, n int64) error {
	node, ok := s.Graph.Node(cardID)
	if !ok {
		return lorcanaerr.Wrap(lorcanaerr.ErrMissingState, "damage_card: no such card %q", cardID)
	}
	node.Set("damage", graph.Int(node.GetInt("damage")+n))
	return nil
}

// AddLore increments a player's lore and ends the game at the win
// threshold (spec.md §4.2).
func (s *State) AddLore(player string, n int64) {
	p := s.Graph.MustNode(player)
	p.Set("lore", graph.Int(p.GetInt("lore")+n))
	if p.GetInt("lore") >= WinLore {
		s.endGame(player)
	}
}

func (s *State) endGame(winner string) {
	game := s.Graph.MustNode("game")
	if game.GetBool("game_over") {
		return // winner is immutable once set (spec.md §3.4 invariant 6)
	}
	game.Set("game_over", graph.Bool(true))
	game.Set("winner", graph.Str(winner))
}

// EndGame is the exported form used by the turn mechanic for deck-out
// endings (spec.md §4.3).
func (s *State) EndGame(winner string) { s.endGame(winner) }

// IsGameOver reports the game node's game_over attribute.
func (s *State) IsGameOver() bool {
	return s.Graph.MustNode("game").GetBool("game_over")
}

// Winner returns "", "p1", or "p2".
func (s *State) Winner() string {
	return s.Graph.MustNode("game").GetStr("winner")
}

// ActivePlayer returns the target of the current_turn edge.
func (s *State) ActivePlayer() string {
	edges := s.Graph.EdgesFromByLabel("game", "current_turn")
	if len(edges) == 0 {
		return ""
	}
	return edges[0].Dst
}

// Opponent returns the non-active player id for a given player id.
func (s *State) Opponent(player string) string { return s.opponent(player) }

// CardsInZone returns ids of player's cards currently in the given zone,
// in graph node-insertion order (stable, deterministic).
func (s *State) CardsInZone(player, zone string) []string {
	var out []string
	prefix := player + "."
	for _, id := range s.Graph.NodesByType(graph.NodeCard) {
		if !hasPrefix(id, prefix) {
			continue
		}
		if s.Graph.MustNode(id).GetStr("zone") == zone {
			out = append(out, id)
		}
	}
	return out
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// Clone deep-copies the graph and deck slices so mutating the clone never
// aliases the original (spec.md §5).
func (s *State) Clone() *State {
	decks := make(map[string][]string, len(s.Decks))
	for k, v := range s.Decks {
		decks[k] = append([]string{}, v...)
	}
	return &State{Graph: s.Graph.Clone(), Decks: decks, DB: s.DB}
}
