// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a graph (Stats).
// Policy:
//   - No mutation, no hidden state.

package core

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	VertexCount int // number of vertices
	EdgeCount   int // number of positive-weight edges
	TotalWeight int // sum of all edge weights
	SelfLoops   int // edges v→v
	Sinks       int // vertices with no outgoing edge
}

// Stats produces a deterministic snapshot of catalog sizes and weight totals.
//
// Implementation:
//   - Stage 1: Acquire mu read lock.
//   - Stage 2: One pass over vertices and their outgoing buckets.
//
// Returns:
//   - GraphStats: value snapshot; later mutations of g do not affect it.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph[V]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: g.vertices.Len(),
		EdgeCount:   g.edgeCount,
	}
	for vp := g.vertices.Oldest(); vp != nil; vp = vp.Next() {
		if vp.Value.out.Len() == 0 {
			stats.Sinks++
		}
		for ep := vp.Value.out.Oldest(); ep != nil; ep = ep.Next() {
			stats.TotalWeight += ep.Value
			if ep.Key == vp.Key {
				stats.SelfLoops++
			}
		}
	}

	return stats
}
