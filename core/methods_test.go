// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in vertex/edge lifecycle semantics (idempotent add, previous-weight
//     return, zero-weight removal, negative-weight rejection).
//   - Provide ordering anchors for Vertices/Targets/Sources/Edges.
//   - Prove Clone and Targets/Sources results share nothing with the graph.

package core_test

import (
	"testing"

	"github.com/katalvlaran/graphpoet/core"
)

// TestGraph_AddRemoveVertex VERIFIES AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph[string]()

	MustEqualBool(t, g.AddVertex(VertexA), true, "AddVertex(a) first")
	MustEqualBool(t, g.AddVertex(VertexA), false, "AddVertex(a) duplicate")
	MustEqualBool(t, g.HasVertex(VertexA), true, "HasVertex(a)")
	MustEqualInt(t, g.VertexCount(), 1, "VertexCount after duplicate add")

	MustEqualBool(t, g.RemoveVertex(VertexX), false, "RemoveVertex(x missing)")
	MustEqualBool(t, g.RemoveVertex(VertexA), true, "RemoveVertex(a)")
	MustEqualBool(t, g.HasVertex(VertexA), false, "HasVertex(a) after removal")
	MustEqualInt(t, g.VertexCount(), 0, "VertexCount after removal")
}

// TestGraph_SetEdgeReturnsPrevious VERIFIES overwrite semantics and the previous-weight result.
func TestGraph_SetEdgeReturnsPrevious(t *testing.T) {
	g := core.NewGraph[string]()

	MustEqualInt(t, MustSet(t, g, VertexA, VertexB, Weight2), Weight0, "SetEdge(a,b,2) on empty")
	MustEqualBool(t, g.HasVertex(VertexA), true, "source implicitly added")
	MustEqualBool(t, g.HasVertex(VertexB), true, "target implicitly added")

	MustEqualInt(t, MustSet(t, g, VertexA, VertexB, Weight5), Weight2, "SetEdge(a,b,5) overwrite")
	MustEqualInt(t, g.Weight(VertexA, VertexB), Weight5, "Weight(a,b)")
	MustEqualInt(t, g.Weight(VertexB, VertexA), Weight0, "reverse direction untouched")
	MustEqualInt(t, g.EdgeCount(), 1, "overwrite must not add an edge")
}

// TestGraph_SetEdgeZeroRemoves VERIFIES that weight 0 is edge absence.
func TestGraph_SetEdgeZeroRemoves(t *testing.T) {
	g := core.NewGraph[string]()
	MustSet(t, g, VertexA, VertexB, Weight3)

	MustEqualInt(t, MustSet(t, g, VertexA, VertexB, Weight0), Weight3, "SetEdge(a,b,0)")
	MustEqualBool(t, g.HasEdge(VertexA, VertexB), false, "HasEdge after removal")
	MustEqualInt(t, g.Targets(VertexA).Len(), 0, "Targets(a) after removal")
	MustEqualInt(t, g.Sources(VertexB).Len(), 0, "Sources(b) after removal")
	MustEqualInt(t, g.EdgeCount(), 0, "EdgeCount after removal")
	MustEqualInt(t, g.VertexCount(), 2, "vertices survive edge removal")

	// Removing an edge that never existed still reports 0 and adds the endpoints.
	MustEqualInt(t, MustSet(t, g, VertexC, VertexD, Weight0), Weight0, "SetEdge(c,d,0) absent")
	MustEqualSlice(t, g.Vertices(), []string{VertexA, VertexB, VertexC, VertexD}, "Vertices after zero set")
}

// TestGraph_SetEdgeNegative VERIFIES negative weights fail fast and leave the graph untouched.
func TestGraph_SetEdgeNegative(t *testing.T) {
	g := core.NewGraph[string]()
	MustSet(t, g, VertexA, VertexB, Weight1)

	prev, err := g.SetEdge(VertexA, VertexB, -1)
	MustErrorIs(t, err, core.ErrNegativeWeight, "SetEdge(a,b,-1)")
	MustEqualInt(t, prev, Weight0, "previous weight on error")
	MustEqualInt(t, g.Weight(VertexA, VertexB), Weight1, "weight unchanged after error")

	_, err = g.SetEdge(VertexC, VertexD, -7)
	MustErrorIs(t, err, core.ErrNegativeWeight, "SetEdge(c,d,-7)")
	MustEqualBool(t, g.HasVertex(VertexC), false, "no implicit vertex on error")
}

// TestGraph_TargetsSourcesOrder VERIFIES enumeration follows edge creation order.
func TestGraph_TargetsSourcesOrder(t *testing.T) {
	g := core.NewGraph[string]()
	MustSet(t, g, VertexA, VertexD, Weight1)
	MustSet(t, g, VertexA, VertexB, Weight2)
	MustSet(t, g, VertexA, VertexC, Weight3)
	MustSet(t, g, VertexC, VertexB, Weight5)

	MustEqualSlice(t, Pairs(g.Targets(VertexA)), []Pair[string]{
		{VertexD, Weight1}, {VertexB, Weight2}, {VertexC, Weight3},
	}, "Targets(a)")
	MustEqualSlice(t, Pairs(g.Sources(VertexB)), []Pair[string]{
		{VertexA, Weight2}, {VertexC, Weight5},
	}, "Sources(b)")

	// Overwrite keeps position; remove + re-add moves to the end.
	MustSet(t, g, VertexA, VertexD, Weight5)
	MustSet(t, g, VertexA, VertexB, Weight0)
	MustSet(t, g, VertexA, VertexB, Weight1)
	MustEqualSlice(t, Pairs(g.Targets(VertexA)), []Pair[string]{
		{VertexD, Weight5}, {VertexC, Weight3}, {VertexB, Weight1},
	}, "Targets(a) after overwrite and re-add")
}

// TestGraph_TargetsMissingVertex VERIFIES absent vertices yield empty, non-nil maps.
func TestGraph_TargetsMissingVertex(t *testing.T) {
	g := core.NewGraph[string]()

	targets := g.Targets(VertexX)
	if targets == nil {
		t.Fatal("Targets(x) must not be nil")
	}
	MustEqualInt(t, targets.Len(), 0, "Targets(x)")
	MustEqualInt(t, g.Sources(VertexX).Len(), 0, "Sources(x)")
	MustEqualBool(t, g.HasVertex(VertexX), false, "queries must not add vertices")
}

// TestGraph_TargetsIsCopy VERIFIES that mutating a query result never reaches the graph.
func TestGraph_TargetsIsCopy(t *testing.T) {
	g := NewDiamond(t)

	targets := g.Targets(VertexA)
	targets.Set(VertexX, Weight5)
	targets.Delete(VertexB)

	MustEqualInt(t, g.Weight(VertexA, VertexB), Weight1, "a->b still present")
	MustEqualBool(t, g.HasEdge(VertexA, VertexX), false, "a->x not leaked")
}

// TestGraph_RemoveVertexIncidentEdges VERIFIES incoming, outgoing and loop edges vanish.
func TestGraph_RemoveVertexIncidentEdges(t *testing.T) {
	g := NewDiamond(t)
	MustSet(t, g, VertexB, VertexB, Weight2)
	MustSet(t, g, VertexD, VertexB, Weight1)
	MustEqualInt(t, g.EdgeCount(), 6, "EdgeCount before removal")

	MustEqualBool(t, g.RemoveVertex(VertexB), true, "RemoveVertex(b)")

	MustEqualInt(t, g.EdgeCount(), 2, "EdgeCount after removal")
	MustEqualSlice(t, g.Vertices(), []string{VertexA, VertexC, VertexD}, "Vertices after removal")
	MustEqualSlice(t, Pairs(g.Targets(VertexA)), []Pair[string]{{VertexC, Weight2}}, "Targets(a)")
	MustEqualSlice(t, Pairs(g.Sources(VertexD)), []Pair[string]{{VertexC, Weight5}}, "Sources(d)")
	MustEqualInt(t, g.Targets(VertexD).Len(), 0, "Targets(d)")
}

// TestGraph_SelfLoop VERIFIES a loop is one edge visible from both sides.
func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph[string]()
	MustSet(t, g, VertexA, VertexA, Weight1)

	MustEqualInt(t, g.VertexCount(), 1, "VertexCount")
	MustEqualInt(t, g.EdgeCount(), 1, "EdgeCount")
	MustEqualSlice(t, Pairs(g.Targets(VertexA)), []Pair[string]{{VertexA, Weight1}}, "Targets(a)")
	MustEqualSlice(t, Pairs(g.Sources(VertexA)), []Pair[string]{{VertexA, Weight1}}, "Sources(a)")
	MustEqualInt(t, g.Stats().SelfLoops, 1, "Stats().SelfLoops")

	MustEqualBool(t, g.RemoveVertex(VertexA), true, "RemoveVertex(a)")
	MustEqualInt(t, g.EdgeCount(), 0, "EdgeCount after loop removal")
}

// TestGraph_EdgesAndString VERIFIES deterministic enumeration and rendering.
func TestGraph_EdgesAndString(t *testing.T) {
	g := NewDiamond(t)

	MustEqualSlice(t, g.Edges(), []core.Edge[string]{
		{From: VertexA, To: VertexB, Weight: Weight1},
		{From: VertexA, To: VertexC, Weight: Weight2},
		{From: VertexB, To: VertexD, Weight: Weight3},
		{From: VertexC, To: VertexD, Weight: Weight5},
	}, "Edges()")

	want := "vertices: [a b c d]\n" +
		"edges:\n" +
		"  a -> b (1)\n" +
		"  a -> c (2)\n" +
		"  b -> d (3)\n" +
		"  c -> d (5)"
	MustEqualString(t, g.String(), want, "String()")
	MustEqualString(t, core.NewGraph[string]().String(), "vertices: []\nedges: none", "String() empty")
}

// TestGraph_CloneIndependent VERIFIES Clone is deep and order-preserving.
func TestGraph_CloneIndependent(t *testing.T) {
	g := NewDiamond(t)
	clone := g.Clone()

	MustEqualBool(t, clone.Equal(g), true, "clone equals source")
	MustEqualString(t, clone.String(), g.String(), "clone renders identically")
	MustEqualSlice(t, Pairs(clone.Sources(VertexD)), Pairs(g.Sources(VertexD)), "Sources(d) order")

	MustSet(t, clone, VertexA, VertexB, Weight5)
	clone.AddVertex(VertexX)
	clone.RemoveVertex(VertexC)

	MustEqualInt(t, g.Weight(VertexA, VertexB), Weight1, "source weight after clone mutation")
	MustEqualBool(t, g.HasVertex(VertexX), false, "source vertices after clone AddVertex")
	MustEqualBool(t, g.HasVertex(VertexC), true, "source vertices after clone RemoveVertex")
	MustEqualBool(t, clone.Equal(g), false, "mutated clone differs")

	MustSet(t, g, VertexD, VertexA, Weight2)
	MustEqualBool(t, clone.HasEdge(VertexD, VertexA), false, "clone after source mutation")
}

// TestGraph_Equal VERIFIES Equal ignores enumeration order but not weights.
func TestGraph_Equal(t *testing.T) {
	g1 := core.NewGraph[string]()
	MustSet(t, g1, VertexA, VertexB, Weight1)
	MustSet(t, g1, VertexB, VertexC, Weight2)

	g2 := core.NewGraph(core.WithVertices(VertexC, VertexB, VertexA))
	MustSet(t, g2, VertexB, VertexC, Weight2)
	MustSet(t, g2, VertexA, VertexB, Weight1)

	MustEqualBool(t, g1.Equal(g2), true, "same content, different order")
	MustEqualBool(t, g1.Equal(nil), false, "Equal(nil)")

	MustSet(t, g2, VertexA, VertexB, Weight3)
	MustEqualBool(t, g1.Equal(g2), false, "different weight")
}

// TestGraph_StatsAndClear VERIFIES summary counters and Clear.
func TestGraph_StatsAndClear(t *testing.T) {
	g := NewDiamond(t)

	stats := g.Stats()
	MustEqualInt(t, stats.VertexCount, 4, "VertexCount")
	MustEqualInt(t, stats.EdgeCount, 4, "EdgeCount")
	MustEqualInt(t, stats.TotalWeight, 11, "TotalWeight")
	MustEqualInt(t, stats.Sinks, 1, "Sinks")

	g.Clear()
	MustEqualInt(t, g.VertexCount(), 0, "VertexCount after Clear")
	MustEqualInt(t, g.EdgeCount(), 0, "EdgeCount after Clear")
	MustEqualBool(t, g.AddVertex(VertexA), true, "usable after Clear")
}

// TestGraph_GenericVertex VERIFIES non-string vertex types.
func TestGraph_GenericVertex(t *testing.T) {
	type point struct{ X, Y int }

	g := core.NewGraph[point]()
	p, q := point{0, 0}, point{1, 2}
	MustSet(t, g, p, q, Weight2)

	MustEqualInt(t, g.Weight(p, q), Weight2, "Weight(p,q)")
	MustEqualString(t, g.String(), "vertices: [{0 0} {1 2}]\nedges:\n  {0 0} -> {1 2} (2)", "String()")
}
