package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfujimura/kobon/arrangement"
)

func triangleFixture() arrangement.LineSet {
	ls := arrangement.LineSet{{A: 1, B: 0, C: -1}, {A: 0, B: 1, C: -1}, {A: 1, B: 1, C: -3}}
	ls.Normalize()
	return ls
}

func TestIntersectionGraphOfTriangle(t *testing.T) {
	g := IntersectionGraph(triangleFixture())

	nodes := g.Nodes()
	count := 0
	for nodes.Next() {
		assert.Equal(t, 2, degree(g, nodes.Node().ID()), "every crossing of a 3-line triangle has two neighbors")
		count++
	}
	assert.Equal(t, 3, count)
}

func TestIntersectionGraphSkipsParallelPairs(t *testing.T) {
	ls := arrangement.LineSet{{A: 1, B: 0, C: -1}, {A: 1, B: 0, C: -5}, {A: 0, B: 1, C: -1}}
	g := IntersectionGraph(ls)

	nodes := g.Nodes()
	count := 0
	for nodes.Next() {
		count++
	}
	assert.Equal(t, 2, count, "only the two crossings with the transversal exist")
	assert.Equal(t, 1, g.Edges().Len(), "they are adjacent along the transversal")
}

func TestCanonicalHashInvariance(t *testing.T) {
	ls := arrangement.LineSet{
		{A: 1, B: 0.2, C: -1},
		{A: 0.1, B: 1, C: -2},
		{A: 1, B: -0.8, C: 0.5},
		{A: 0.6, B: 0.5, C: 1.2},
	}
	ls.Normalize()
	base := CanonicalHash(ls)

	t.Run("stable across calls", func(t *testing.T) {
		assert.Equal(t, base, CanonicalHash(ls))
	})

	t.Run("invariant under line relabeling", func(t *testing.T) {
		perm := arrangement.LineSet{ls[3], ls[1], ls[0], ls[2]}
		assert.Equal(t, base, CanonicalHash(perm))
	})

	t.Run("invariant under coefficient rescaling", func(t *testing.T) {
		scaled := make(arrangement.LineSet, len(ls))
		for i, l := range ls {
			scaled[i] = arrangement.Line{A: -2 * l.A, B: -2 * l.B, C: -2 * l.C}
		}
		assert.Equal(t, base, CanonicalHash(scaled))
	})

	t.Run("distinguishes different topologies", func(t *testing.T) {
		require.NotEqual(t, CanonicalHash(triangleFixture()),
			CanonicalHash(arrangement.LineSet{{A: 1, B: 0, C: -1}, {A: 1, B: 0, C: -5}, {A: 0, B: 1, C: -1}}))
	})
}
