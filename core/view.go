// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating renderings and comparisons (String, Equal).
// Determinism:
//   - String() output depends only on graph contents and insertion order.
// Concurrency:
//   - Read locks only; the graph is never mutated here.

package core

import (
	"fmt"
	"strings"
)

// String renders the graph for debugging:
//
//	vertices: [a b c]
//	edges:
//	  a -> b (2)
//	  b -> a (1)
//
// Vertices are listed in insertion order; edges as in Edges().
func (g *Graph[V]) String() string {
	vs := g.Vertices()
	es := g.Edges()

	var sb strings.Builder
	sb.WriteString("vertices: [")
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString("]\nedges:")
	if len(es) == 0 {
		sb.WriteString(" none")
	}
	for _, e := range es {
		fmt.Fprintf(&sb, "\n  %v -> %v (%d)", e.From, e.To, e.Weight)
	}

	return sb.String()
}

// Equal reports whether g and other have the same vertex set and the same
// weight on every ordered pair. Enumeration order is not compared.
//
// Complexity: O(V + E).
func (g *Graph[V]) Equal(other *Graph[V]) bool {
	if g == other {
		return true
	}
	if other == nil {
		return false
	}
	if g.VertexCount() != other.VertexCount() || g.EdgeCount() != other.EdgeCount() {
		return false
	}
	for _, v := range g.Vertices() {
		if !other.HasVertex(v) {
			return false
		}
	}
	for _, e := range g.Edges() {
		if other.Weight(e.From, e.To) != e.Weight {
			return false
		}
	}

	return true
}
