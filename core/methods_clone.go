// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone reproduces vertex and edge enumeration order exactly.
// Concurrency:
//   - Clone holds the source read lock; Clear holds the write lock.

package core

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Clone returns a deep copy of the graph: same vertices, same edge weights,
// same enumeration order, and no shared mutable state with g.
//
// Implementation:
//   - Stage 1: Walk the catalog in insertion order.
//   - Stage 2: Copy each vertex's out and in buckets value by value, so both
//     Targets and Sources enumerate exactly as they do on g.
//
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph[V]()
	for vp := g.vertices.Oldest(); vp != nil; vp = vp.Next() {
		clone.vertices.Set(vp.Key, &adjacency[V]{
			out: copyBucket(vp.Value.out),
			in:  copyBucket(vp.Value.in),
		})
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes every vertex and edge.
func (g *Graph[V]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = orderedmap.New[V, *adjacency[V]]()
	g.edgeCount = 0
}
