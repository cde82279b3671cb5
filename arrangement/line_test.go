package arrangement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalized(t *testing.T) {
	l := Line{3, 4, 10}.Normalized()
	assert.InDelta(t, 0.6, l.A, 1e-12)
	assert.InDelta(t, 0.8, l.B, 1e-12)
	assert.InDelta(t, 2.0, l.C, 1e-12)

	t.Run("is idempotent", func(t *testing.T) {
		again := l.Normalized()
		assert.InDelta(t, l.A, again.A, 1e-12)
		assert.InDelta(t, l.B, again.B, 1e-12)
		assert.InDelta(t, l.C, again.C, 1e-12)
	})

	t.Run("leaves a degenerate normal alone", func(t *testing.T) {
		d := Line{0, 0, 5}.Normalized()
		assert.Equal(t, Line{0, 0, 5}, d)
	})
}

func TestCanonical(t *testing.T) {
	t.Run("flips a negative a", func(t *testing.T) {
		l := Line{-1, 0, 3}.Canonical()
		assert.InDelta(t, 1, l.A, 1e-12)
		assert.InDelta(t, 0, l.B, 1e-12)
		assert.InDelta(t, -3, l.C, 1e-12)
	})

	t.Run("breaks a ties by b", func(t *testing.T) {
		l := Line{0, -2, 4}.Canonical()
		assert.InDelta(t, 0, l.A, 1e-12)
		assert.InDelta(t, 1, l.B, 1e-12)
		assert.InDelta(t, -2, l.C, 1e-12)
	})

	t.Run("is a no-op on a canonical line", func(t *testing.T) {
		l := Line{math.Sqrt2 / 2, math.Sqrt2 / 2, 1}
		got := l.Canonical()
		assert.InDelta(t, l.A, got.A, 1e-12)
		assert.InDelta(t, l.B, got.B, 1e-12)
		assert.InDelta(t, l.C, got.C, 1e-12)
	})
}

func TestLineSetCanonicalSortsAndIgnoresOrder(t *testing.T) {
	a := LineSet{{0, 1, -1}, {1, 0, -1}, {1, 1, -3}}
	b := LineSet{{1, 1, -3}, {0, 1, -1}, {1, 0, -1}}
	ca := a.Canonical()
	cb := b.Canonical()
	for i := range ca {
		assert.InDelta(t, ca[i].A, cb[i].A, 1e-12)
		assert.InDelta(t, ca[i].B, cb[i].B, 1e-12)
		assert.InDelta(t, ca[i].C, cb[i].C, 1e-12)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	ls := LineSet{{1, 0, 0}, {0, 1, 0}}
	c := ls.Clone()
	c[0].A = 99
	assert.Equal(t, 1.0, ls[0].A)
}

func TestReflectY(t *testing.T) {
	assert.Equal(t, Line{-1, 2, 3}, Line{1, 2, 3}.ReflectY())
	// Reflecting twice is the identity
	assert.Equal(t, Line{1, 2, 3}, Line{1, 2, 3}.ReflectY().ReflectY())
}

func TestEvalIsSignedDistanceForUnitNormal(t *testing.T) {
	l := Line{1, 0, -2} // x = 2
	assert.InDelta(t, -2, l.Eval(Point{0, 5}), 1e-12)
	assert.InDelta(t, 1, l.Eval(Point{3, -1}), 1e-12)
	assert.InDelta(t, 0, l.Eval(Point{2, 7}), 1e-12)
}
