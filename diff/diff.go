// Package diff computes the semantic node/edge delta between two graph
// snapshots, in the line-oriented format spec.md §6.2 describes for
// diff.txt: add/remove/set over nodes and edges.
package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/signalnine/lorcana-engine/graph"
)

// OpKind tags one diff line's operation.
type OpKind string

const (
	AddNode    OpKind = "add node"
	RemoveNode OpKind = "remove node"
	SetNode    OpKind = "set node"
	AddEdge    OpKind = "add edge"
	RemoveEdge OpKind = "remove edge"
	SetEdge    OpKind = "set edge"
)

// Op is one rendered diff line.
type Op struct {
	Kind  OpKind
	Line  string
}

// String renders the op as it appears in diff.txt.
func (o Op) String() string { return o.Line }

// Diff computes the ops taking `before` to `after`. Node and edge
// attribute maps are compared key-by-key; a node/edge present in both
// with identical attributes produces no line.
func Diff(before, after *graph.Graph) []Op {
	var ops []Op
	ops = append(ops, diffNodes(before, after)...)
	ops = append(ops, diffEdges(before, after)...)
	return ops
}

func diffNodes(before, after *graph.Graph) []Op {
	var ops []Op
	beforeIDs := make(map[string]bool)
	for _, id := range before.NodeIDs() {
		beforeIDs[id] = true
	}
	afterIDs := make(map[string]bool)
	for _, id := range after.NodeIDs() {
		afterIDs[id] = true
	}

	for _, id := range after.NodeIDs() {
		n := after.MustNode(id)
		if !beforeIDs[id] {
			ops = append(ops, Op{Kind: AddNode, Line: fmt.Sprintf("add node %s type=%s %s", id, n.Type, attrString(n.Attrs))})
			continue
		}
		old := before.MustNode(id)
		if changed := changedAttrs(old.Attrs, n.Attrs); len(changed) > 0 || old.Type != n.Type {
			ops = append(ops, Op{Kind: SetNode, Line: fmt.Sprintf("set node %s %s", id, attrString(changed))})
		}
	}
	var removedIDs []string
	for _, id := range before.NodeIDs() {
		if !afterIDs[id] {
			removedIDs = append(removedIDs, id)
		}
	}
	sort.Strings(removedIDs)
	for _, id := range removedIDs {
		ops = append(ops, Op{Kind: RemoveNode, Line: fmt.Sprintf("remove node %s", id)})
	}
	return ops
}

func diffEdges(before, after *graph.Graph) []Op {
	var ops []Op
	beforeByID := make(map[int64]*graph.Edge)
	for _, e := range before.AllEdges() {
		beforeByID[e.ID] = e
	}
	afterByID := make(map[int64]*graph.Edge)
	for _, e := range after.AllEdges() {
		afterByID[e.ID] = e
	}

	for _, e := range after.AllEdges() {
		old, existed := beforeByID[e.ID]
		if !existed {
			ops = append(ops, Op{Kind: AddEdge, Line: fmt.Sprintf("add edge %s -> %s %s %s", e.Src, e.Dst, e.Label, attrString(e.Attrs))})
			continue
		}
		if changed := changedAttrs(old.Attrs, e.Attrs); len(changed) > 0 || old.Label != e.Label || old.Src != e.Src || old.Dst != e.Dst {
			ops = append(ops, Op{Kind: SetEdge, Line: fmt.Sprintf("set edge %d %s -> %s %s %s", e.ID, e.Src, e.Dst, e.Label, attrString(changed))})
		}
	}
	var removedIDs []int64
	for id := range beforeByID {
		if _, ok := afterByID[id]; !ok {
			removedIDs = append(removedIDs, id)
		}
	}
	sort.Slice(removedIDs, func(i, j int) bool { return removedIDs[i] < removedIDs[j] })
	for _, id := range removedIDs {
		e := beforeByID[id]
		ops = append(ops, Op{Kind: RemoveEdge, Line: fmt.Sprintf("remove edge %d %s -> %s %s", e.ID, e.Src, e.Dst, e.Label)})
	}
	return ops
}

// changedAttrs returns the key/value pairs present in `after` that are
// absent from, or differ from, `before`.
func changedAttrs(before, after map[string]graph.Value) map[string]graph.Value {
	changed := make(map[string]graph.Value)
	for k, v := range after {
		if old, ok := before[k]; !ok || !old.Equal(v) {
			changed[k] = v
		}
	}
	return changed
}

// attrString renders attrs sorted by key, "k=v" space-separated.
func attrString(attrs map[string]graph.Value) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, attrs[k].AsStr()))
	}
	return strings.Join(parts, " ")
}
