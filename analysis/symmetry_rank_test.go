package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfujimura/kobon/arrangement"
)

func TestNormalizePoints(t *testing.T) {
	pts := []arrangement.Point{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4}}
	norm := NormalizePoints(pts)
	require.Len(t, norm, 4)

	var cx, cy, meanDist float64
	for _, p := range norm {
		cx += p.X
		cy += p.Y
		meanDist += math.Hypot(p.X, p.Y)
	}
	assert.InDelta(t, 0, cx/4, 1e-12, "centered on the origin")
	assert.InDelta(t, 0, cy/4, 1e-12)
	assert.InDelta(t, 1, meanDist/4, 1e-12, "mean distance to origin is 1")

	assert.Nil(t, NormalizePoints(nil))
}

func TestTransformErrorOnSymmetricCloud(t *testing.T) {
	// A square centered at the origin is invariant under both mirrors and
	// a half turn.
	square := []arrangement.Point{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}
	for name, tf := range CandidateTransforms() {
		err := TransformError(square, tf)
		switch name {
		case "mirror_x", "mirror_y", "rot_180":
			assert.InDelta(t, 0, err, 1e-12, name)
		default:
			assert.Greater(t, err, 0.1, name)
		}
	}
}

func TestRankSymmetries(t *testing.T) {
	// An arrangement that is exactly mirror-symmetric across the Y axis
	ls := arrangement.LineSet{
		{A: 1, B: 1, C: -1},
		{A: -1, B: 1, C: -1},
		{A: 1, B: 2, C: -3},
		{A: -1, B: 2, C: -3},
		{A: 0, B: 1, C: 0.5},
	}
	ls.Normalize()

	scores := RankSymmetries(ls)
	require.Len(t, scores, 5)

	for i := 1; i < len(scores); i++ {
		assert.LessOrEqual(t, scores[i-1].Error, scores[i].Error, "sorted best first")
	}
	assert.Equal(t, "mirror_y", scores[0].Name)
	assert.InDelta(t, 0, scores[0].Error, 1e-9)
}
