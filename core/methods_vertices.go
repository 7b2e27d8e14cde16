// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
//
// Concurrency:
//   - Mutators take mu for writing, queries take mu for reading.

package core

// AddVertex inserts v if it is not yet present.
//
// Returns:
//   - bool: true iff v was newly added; false means the call was a no-op.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[V]) AddVertex(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(v)
}

// addVertexLocked registers v with empty adjacency buckets. Caller holds mu.
func (g *Graph[V]) addVertexLocked(v V) bool {
	if _, ok := g.vertices.Get(v); ok {
		return false
	}
	g.vertices.Set(v, newAdjacency[V]())

	return true
}

// HasVertex reports whether v is a vertex of the graph.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices.Get(v)

	return ok
}

// RemoveVertex deletes v together with every incident edge.
//
// Implementation:
//   - Stage 1: Look up v; absent ⇒ return false.
//   - Stage 2: Drop v from the incoming bucket of each of its targets.
//   - Stage 3: Drop v from the outgoing bucket of each of its sources.
//   - Stage 4: Delete v from the catalog.
//
// Behavior highlights:
//   - A self-loop v→v lives in both of v's own buckets and is counted once.
//   - Insertion order of the remaining vertices and edges is preserved.
//
// Returns:
//   - bool: true iff v was present.
//
// Complexity:
//   - Time O(deg⁺(v) + deg⁻(v)), Space O(1).
func (g *Graph[V]) RemoveVertex(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	adj, ok := g.vertices.Get(v)
	if !ok {
		return false
	}

	for p := adj.out.Oldest(); p != nil; p = p.Next() {
		g.edgeCount--
		if p.Key == v {
			continue // self-loop; v's own buckets are discarded below
		}
		if target, found := g.vertices.Get(p.Key); found {
			target.in.Delete(v)
		}
	}
	for p := adj.in.Oldest(); p != nil; p = p.Next() {
		if p.Key == v {
			continue // already counted on the outgoing side
		}
		g.edgeCount--
		if source, found := g.vertices.Get(p.Key); found {
			source.out.Delete(v)
		}
	}
	g.vertices.Delete(v)

	return true
}

// Vertices returns every vertex in insertion order.
// The result is a fresh slice owned by the caller.
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, 0, g.vertices.Len())
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Len()
}
