package graph

import (
	"sort"

	"github.com/pkg/errors"
)

// NodeType tags the five node kinds of spec.md §3.1.
type NodeType string

const (
	NodeGame    NodeType = "game"
	NodePlayer  NodeType = "player"
	NodeCard    NodeType = "card"
	NodeStep    NodeType = "step"
	NodeAbility NodeType = "ability"
)

// Node is one vertex of the attributed multigraph.
type Node struct {
	ID    string
	Type  NodeType
	Attrs map[string]Value
}

func (n *Node) Get(key string) (Value, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

func (n *Node) GetInt(key string) int64   { return n.Attrs[key].AsInt() }
func (n *Node) GetBool(key string) bool   { return n.Attrs[key].AsBool() }
func (n *Node) GetStr(key string) string  { return n.Attrs[key].AsStr() }
func (n *Node) Set(key string, v Value)   { n.Attrs[key] = v }

// Edge is one labeled, directed arc. Parallel edges between the same pair
// of nodes are allowed (e.g. two action edges, or ability + keyword edges
// that share source and target).
type Edge struct {
	ID    int64
	Src   string
	Dst   string
	Label string
	Attrs map[string]Value
}

func (e *Edge) Get(key string) (Value, bool) {
	v, ok := e.Attrs[key]
	return v, ok
}

func (e *Edge) GetStr(key string) string { return e.Attrs[key].AsStr() }
func (e *Edge) GetInt(key string) int64  { return e.Attrs[key].AsInt() }
func (e *Edge) GetBool(key string) bool  { return e.Attrs[key].AsBool() }

// Graph is the typed node/edge multigraph backing a game state. It is
// deliberately not a generic graph library type: nodes and edges carry
// the tagged-struct shape spec.md's design notes call for, indexed by
// adjacency lists for O(1) out/in-edge lookup.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[int64]*Edge
	out       map[string][]int64
	in        map[string][]int64
	nextEdge  int64
}

func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[int64]*Edge),
		out:   make(map[string][]int64),
		in:    make(map[string][]int64),
	}
}

// AddNode inserts a node with the given id/type/attrs. Re-adding an
// existing id overwrites its type and attributes but preserves edges.
func (g *Graph) AddNode(id string, typ NodeType, attrs map[string]Value) *Node {
	if attrs == nil {
		attrs = make(map[string]Value)
	}
	n, exists := g.nodes[id]
	if !exists {
		n = &Node{ID: id, Type: typ, Attrs: attrs}
		g.nodes[id] = n
		g.nodeOrder = append(g.nodeOrder, id)
		return n
	}
	n.Type = typ
	n.Attrs = attrs
	return n
}

func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) MustNode(id string) *Node {
	n, ok := g.nodes[id]
	if !ok {
		panic(errors.Errorf("graph: no such node %q", id))
	}
	return n
}

func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeIDs returns node ids in insertion order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// NodesByType returns node ids of the given type, in insertion order.
func (g *Graph) NodesByType(typ NodeType) []string {
	var out []string
	for _, id := range g.nodeOrder {
		if g.nodes[id].Type == typ {
			out = append(out, id)
		}
	}
	return out
}

// AddEdge appends a new labeled edge and returns it. Parallel edges are
// permitted; no dedup is performed.
func (g *Graph) AddEdge(src, dst, label string, attrs map[string]Value) *Edge {
	if attrs == nil {
		attrs = make(map[string]Value)
	}
	id := g.nextEdge
	g.nextEdge++
	e := &Edge{ID: id, Src: src, Dst: dst, Label: label, Attrs: attrs}
	g.edges[id] = e
	g.out[src] = append(g.out[src], id)
	g.in[dst] = append(g.in[dst], id)
	return e
}

// RemoveEdge deletes a single edge by id.
func (g *Graph) RemoveEdge(id int64) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	delete(g.edges, id)
	g.out[e.Src] = removeID(g.out[e.Src], id)
	g.in[e.Dst] = removeID(g.in[e.Dst], id)
}

func removeID(ids []int64, target int64) []int64 {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// EdgesFrom returns edges whose Src == id, in creation order.
func (g *Graph) EdgesFrom(id string) []*Edge {
	return g.resolve(g.out[id])
}

// EdgesTo returns edges whose Dst == id, in creation order.
func (g *Graph) EdgesTo(id string) []*Edge {
	return g.resolve(g.in[id])
}

func (g *Graph) resolve(ids []int64) []*Edge {
	out := make([]*Edge, 0, len(ids))
	for _, id := range ids {
		if e, ok := g.edges[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// EdgesFromByLabel filters EdgesFrom by label.
func (g *Graph) EdgesFromByLabel(id, label string) []*Edge {
	var out []*Edge
	for _, e := range g.EdgesFrom(id) {
		if e.Label == label {
			out = append(out, e)
		}
	}
	return out
}

// EdgesToByLabel filters EdgesTo by label.
func (g *Graph) EdgesToByLabel(id, label string) []*Edge {
	var out []*Edge
	for _, e := range g.EdgesTo(id) {
		if e.Label == label {
			out = append(out, e)
		}
	}
	return out
}

// HasIncomingLabel reports whether any edge labeled `label` points at id
// -- this is how "card c has keyword K" is tested (spec.md design note:
// "a card has keyword K iff any live ability node points at it with edge
// label K").
func (g *Graph) HasIncomingLabel(id, label string) bool {
	return len(g.EdgesToByLabel(id, label)) > 0
}

// AllEdges returns every edge in the graph, in creation order.
func (g *Graph) AllEdges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	ids := make([]int64, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		out = append(out, g.edges[id])
	}
	return out
}

// RemoveEdgesWithAttr deletes every edge carrying the given attribute key
// (used to clear stale action edges at the start of each recompute).
func (g *Graph) RemoveEdgesWithAttr(key string) {
	var toRemove []int64
	for id, e := range g.edges {
		if _, ok := e.Attrs[key]; ok {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		g.RemoveEdge(id)
	}
}

// RemoveAbilitiesSourcedAt deletes every ability node whose "source" edge
// points at cardID, along with all of that ability's own edges (spec.md
// §4.2/§4.6).
func (g *Graph) RemoveAbilitiesSourcedAt(cardID string) {
	var abilities []string
	for _, e := range g.EdgesTo(cardID) {
		if e.Label == "source" {
			if n, ok := g.Node(e.Src); ok && n.Type == NodeAbility {
				abilities = append(abilities, n.ID)
			}
		}
	}
	for _, abilityID := range abilities {
		for _, e := range g.EdgesFrom(abilityID) {
			g.RemoveEdge(e.ID)
		}
		delete(g.nodes, abilityID)
		g.nodeOrder = removeStr(g.nodeOrder, abilityID)
	}
}

func removeStr(ids []string, target string) []string {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Clone deep-copies the graph: new node/edge maps and attribute maps, so
// mutating the clone never affects the original (spec.md §5's "no
// cross-state aliasing").
func (g *Graph) Clone() *Graph {
	out := New()
	out.nextEdge = g.nextEdge
	for _, id := range g.nodeOrder {
		n := g.nodes[id]
		attrs := make(map[string]Value, len(n.Attrs))
		for k, v := range n.Attrs {
			attrs[k] = v
		}
		out.nodes[id] = &Node{ID: n.ID, Type: n.Type, Attrs: attrs}
		out.nodeOrder = append(out.nodeOrder, id)
	}
	for id, e := range g.edges {
		attrs := make(map[string]Value, len(e.Attrs))
		for k, v := range e.Attrs {
			attrs[k] = v
		}
		out.edges[id] = &Edge{ID: e.ID, Src: e.Src, Dst: e.Dst, Label: e.Label, Attrs: attrs}
	}
	for k, v := range g.out {
		out.out[k] = append([]int64{}, v...)
	}
	for k, v := range g.in {
		out.in[k] = append([]int64{}, v...)
	}
	return out
}
