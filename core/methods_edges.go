// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge mutation (SetEdge) and edge queries (Weight, HasEdge, Targets,
//       Sources, Edges, EdgeCount).
// Determinism:
//   - Targets/Sources enumerate in the order each edge was first created.
//   - Edges() enumerates by source insertion order, then target order.
// Concurrency:
//   - SetEdge under mu write lock; all queries under mu read lock.

package core

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SetEdge sets the weight of the directed edge from→to and returns the weight
// it replaced.
//
// Implementation:
//   - Stage 1: Reject weight < 0 with ErrNegativeWeight (graph untouched).
//   - Stage 2: Implicitly add from and to as vertices.
//   - Stage 3: weight == 0 ⇒ delete the edge from both buckets;
//     otherwise overwrite it in both buckets.
//
// Behavior highlights:
//   - Overwriting keeps the edge at its original enumeration position.
//   - Removing and later re-adding an edge moves it to the end.
//   - SetEdge(v, v, w) creates a self-loop.
//
// Returns:
//   - int: the previous weight, 0 if no edge existed.
//   - error: ErrNegativeWeight (wrapped with the offending value).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[V]) SetEdge(from, to V, weight int) (int, error) {
	if weight < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeWeight, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	src, _ := g.vertices.Get(from)
	dst, _ := g.vertices.Get(to)

	if weight == 0 {
		prev, existed := src.out.Delete(to)
		if existed {
			dst.in.Delete(from)
			g.edgeCount--
		}

		return prev, nil
	}

	prev, existed := src.out.Set(to, weight)
	dst.in.Set(from, weight)
	if !existed {
		g.edgeCount++
	}

	return prev, nil
}

// Weight returns the weight of from→to, or 0 when there is no such edge
// (including when either endpoint is absent).
func (g *Graph[V]) Weight(from, to V) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.vertices.Get(from)
	if !ok {
		return 0
	}
	w, _ := adj.out.Get(to)

	return w
}

// HasEdge reports whether from→to exists with positive weight.
func (g *Graph[V]) HasEdge(from, to V) bool {
	return g.Weight(from, to) > 0
}

// Targets returns the outgoing edges of v as target → weight.
//
// The result is a fresh insertion-ordered copy: mutating it never touches the
// graph. A vertex with no outgoing edges, or an absent vertex, yields an empty
// (non-nil) map.
//
// Complexity: O(deg⁺(v)).
func (g *Graph[V]) Targets(v V) *orderedmap.OrderedMap[V, int] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.vertices.Get(v)
	if !ok {
		return orderedmap.New[V, int]()
	}

	return copyBucket(adj.out)
}

// Sources returns the incoming edges of v as source → weight.
// Same ownership and ordering rules as Targets.
func (g *Graph[V]) Sources(v V) *orderedmap.OrderedMap[V, int] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.vertices.Get(v)
	if !ok {
		return orderedmap.New[V, int]()
	}

	return copyBucket(adj.in)
}

// Edges returns a snapshot of all edges, grouped by source in vertex insertion
// order and, within a source, in target enumeration order.
//
// Complexity: O(V + E).
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[V], 0, g.edgeCount)
	for vp := g.vertices.Oldest(); vp != nil; vp = vp.Next() {
		for ep := vp.Value.out.Oldest(); ep != nil; ep = ep.Next() {
			out = append(out, Edge[V]{From: vp.Key, To: ep.Key, Weight: ep.Value})
		}
	}

	return out
}

// EdgeCount returns |E|. Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// copyBucket duplicates an adjacency bucket preserving order. Caller holds mu.
func copyBucket[V comparable](src *orderedmap.OrderedMap[V, int]) *orderedmap.OrderedMap[V, int] {
	dst := orderedmap.New[V, int]()
	for p := src.Oldest(); p != nil; p = p.Next() {
		dst.Set(p.Key, p.Value)
	}

	return dst
}
