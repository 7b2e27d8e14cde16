// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.Graph.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities.
//   - Keep core tests stdlib-only.
//   - No *testing.T usage inside goroutines; workers report through channels.

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphpoet/core"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "a"
	VertexB = "b"
	VertexC = "c"
	VertexD = "d"
	VertexX = "x"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
)

// Common concurrency sizes.
const (
	NReaders = 50
	NWriters = 20
	NRounds  = 100
)

// NewDiamond returns a → {b, c} → d with weights 1, 2, 3, 5 in that order.
func NewDiamond(t *testing.T) *core.Graph[string] {
	t.Helper()

	g := core.NewGraph[string]()
	MustSet(t, g, VertexA, VertexB, Weight1)
	MustSet(t, g, VertexA, VertexC, Weight2)
	MustSet(t, g, VertexB, VertexD, Weight3)
	MustSet(t, g, VertexC, VertexD, Weight5)

	return g
}

// MustSet calls SetEdge and fails the test on error. Returns the previous weight.
func MustSet[V comparable](t *testing.T, g *core.Graph[V], from, to V, w int) int {
	t.Helper()

	prev, err := g.SetEdge(from, to, w)
	MustNoError(t, err, "SetEdge")

	return prev
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs FAILS the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, op string) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("%s: want error %v, got %v", op, target, err)
	}
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}

// MustEqualString FAILS the test if got != want.
func MustEqualString(t *testing.T, got, want, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s:\n got: %q\nwant: %q", op, got, want)
	}
}

// MustEqualSlice FAILS the test unless got and want hold the same elements in the same order.
func MustEqualSlice[V comparable](t *testing.T, got, want []V, op string) {
	t.Helper()

	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}

// Pairs flattens an ordered map into "key:weight" pairs in enumeration order.
func Pairs[V comparable](m *orderedmap.OrderedMap[V, int]) []Pair[V] {
	out := make([]Pair[V], 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		out = append(out, Pair[V]{Key: p.Key, Weight: p.Value})
	}

	return out
}

// Pair is a comparable (key, weight) tuple for order-sensitive assertions.
type Pair[V comparable] struct {
	Key    V
	Weight int
}

// MustNoErrorsFromChan drains errCh and fails on the first non-nil error.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err != nil {
			t.Fatalf("%s: %v", op, err)
		}
	}
}
