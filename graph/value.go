// Package graph implements the typed attributed multigraph that backs
// game states: tagged node/edge structs indexed by adjacency lists, per
// spec.md's design note on graph library vs hand-rolled structures.
package graph

import (
	"strconv"

	"github.com/pkg/errors"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	KindInt ValueKind = iota
	KindStr
	KindBool
)

// Value is a typed node/edge attribute. The source system serializes
// attributes as stringified ints because its writer is text-first; here
// we hold a typed tagged union in memory and only stringify at the DOT
// codec boundary (graph/dot.go).
type Value struct {
	Kind ValueKind
	I    int64
	S    string
	B    bool
}

func Int(i int64) Value  { return Value{Kind: KindInt, I: i} }
func Str(s string) Value { return Value{Kind: KindStr, S: s} }
func Bool(b bool) Value  { return Value{Kind: KindBool, B: b} }

func (v Value) AsInt() int64 {
	switch v.Kind {
	case KindInt:
		return v.I
	case KindBool:
		if v.B {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (v Value) AsBool() bool {
	switch v.Kind {
	case KindBool:
		return v.B
	case KindInt:
		return v.I != 0
	default:
		return v.S != ""
	}
}

func (v Value) AsStr() string {
	switch v.Kind {
	case KindStr:
		return v.S
	case KindInt:
		return strconv.FormatInt(v.I, 10)
	case KindBool:
		if v.B {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}

func (v Value) Equal(o Value) bool {
	return v.Kind == o.Kind && v.I == o.I && v.S == o.S && v.B == o.B
}

// parseValue recovers a typed Value from its DOT-quoted string form.
// Booleans and ints round-trip as ints (the DOT format itself is
// text-first and does not distinguish them); callers that need a bool
// use AsBool, which treats any nonzero int as true.
func parseValue(raw string) Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i)
	}
	return Str(raw)
}

var errMissingAttr = errors.New("graph: missing attribute")
