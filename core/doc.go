// SPDX-License-Identifier: MIT

// Package core provides a generic, weighted, directed graph with at most one
// edge per ordered vertex pair.
//
// The Graph G = (V,E) is parameterized over any comparable vertex type:
//
//   - Vertices are unique; AddVertex is idempotent and reports novelty.
//   - Each ordered pair (from,to) carries one int weight ≥ 0.
//     Weight 0 means "no edge": SetEdge(from, to, 0) removes the edge and
//     zero-weight edges are never enumerated.
//   - SetEdge implicitly adds missing endpoints and returns the previous weight.
//   - Negative weights are rejected with ErrNegativeWeight.
//
// Determinism:
//
// Vertices(), Edges(), Targets() and Sources() enumerate in insertion order.
// Algorithms that pick "the first match" over a neighborhood therefore give
// reproducible answers for a given construction sequence.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V) bool                       // O(1)
//	HasVertex(v V) bool                       // O(1)
//	RemoveVertex(v V) bool                    // O(deg(v))
//
//	// Edge lifecycle
//	SetEdge(from, to V, w int) (int, error)   // O(1), returns previous weight
//	Weight(from, to V) int                    // O(1)
//	HasEdge(from, to V) bool                  // O(1)
//
//	// Query
//	Vertices() []V                            // O(V)
//	Targets(v V) *OrderedMap[V, int]          // O(deg⁺(v)), fresh copy
//	Sources(v V) *OrderedMap[V, int]          // O(deg⁻(v)), fresh copy
//	Edges() []Edge[V]                         // O(V+E)
//	VertexCount(), EdgeCount() int            // O(1)
//	Stats() GraphStats                        // O(V+E)
//
//	// Copies & rendering
//	Clone() *Graph[V]                         // O(V+E), deep copy
//	Clear()                                   // O(1)
//	Equal(other *Graph[V]) bool               // O(V+E)
//	String() string                           // O(V+E)
//
// Concurrency:
//
// A single sync.RWMutex guards each Graph. Mutations are serialized and reads
// may proceed concurrently; a graph that is no longer mutated can be shared
// freely between goroutines.
package core
