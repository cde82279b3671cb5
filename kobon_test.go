package kobon

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are tested in their own packages.

func TestEvaluate(t *testing.T) {
	score, tris := Evaluate(LineSet{{A: 1, B: 0, C: -1}, {A: 0, B: 1, C: -1}, {A: 1, B: 1, C: -3}})
	assert.Equal(t, 1, score)
	require.Len(t, tris, 1)
	assert.Equal(t, Triangle{I: 0, J: 1, K: 2}, tris[0])
}

func TestOptimize(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	initial := Random(5, rng)
	initialScore, _ := Evaluate(initial)

	best, bestScore, err := Optimize(initial, 300, 1.0, 0.001, rng)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, bestScore, initialScore)
	assert.Len(t, best, 5)

	t.Run("rejects bad parameters", func(t *testing.T) {
		_, _, err := Optimize(Random(2, rng), 10, 1.0, 0.001, rng)
		assert.Error(t, err)
		_, _, err = Optimize(initial, 10, 0.001, 1.0, rng)
		assert.Error(t, err)
	})
}
