// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and sentinel error declarations plus the NewGraph constructor.
// Determinism:
//   - Vertex catalog and every adjacency bucket are insertion-ordered maps.
// Concurrency:
//   - A single sync.RWMutex (mu) guards the catalog and all adjacency buckets.

package core

import (
	"errors"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeWeight indicates SetEdge was called with weight < 0.
	// Weight 0 is legal and means "remove the edge".
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is a read-only snapshot of one directed, positively weighted edge.
type Edge[V comparable] struct {
	// From is the source vertex.
	From V

	// To is the target vertex.
	To V

	// Weight is strictly positive for every Edge returned by the graph.
	Weight int
}

// adjacency holds the weighted edges incident to one vertex.
// out[to] is the weight of v→to, in[from] is the weight of from→v.
// Both buckets store only positive weights; a zero weight is never stored.
type adjacency[V comparable] struct {
	out *orderedmap.OrderedMap[V, int]
	in  *orderedmap.OrderedMap[V, int]
}

func newAdjacency[V comparable]() *adjacency[V] {
	return &adjacency[V]{
		out: orderedmap.New[V, int](),
		in:  orderedmap.New[V, int](),
	}
}

// Graph is a directed graph over comparable vertices with at most one edge per
// ordered pair. Repeated observations of the same pair are folded into the
// edge weight rather than stored as parallel edges.
//
// The zero value is not usable; construct with NewGraph.
type Graph[V comparable] struct {
	mu sync.RWMutex // guards vertices, every adjacency bucket and edgeCount

	// vertices[v] is v's adjacency; iteration order is vertex insertion order.
	vertices *orderedmap.OrderedMap[V, *adjacency[V]]

	// edgeCount is the number of stored (positive weight) edges.
	edgeCount int
}

// GraphOption configures a Graph before first use.
type GraphOption[V comparable] func(g *Graph[V])

// WithVertices pre-registers vertices in the given order.
func WithVertices[V comparable](vs ...V) GraphOption[V] {
	return func(g *Graph[V]) {
		for _, v := range vs {
			g.addVertexLocked(v)
		}
	}
}

// NewGraph creates an empty Graph and applies opts left to right.
// Complexity: O(len(opts)) plus whatever the options do.
func NewGraph[V comparable](opts ...GraphOption[V]) *Graph[V] {
	g := &Graph[V]{
		vertices: orderedmap.New[V, *adjacency[V]](),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
