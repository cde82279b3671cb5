// Package arrangement models a finite arrangement of straight lines in the
// plane and answers the one geometric question the rest of the project is
// built around: which triples of lines bound a Kobon triangle, i.e. a triangle
// whose interior no other line of the arrangement passes through.
package arrangement

import "math"

// A Line is the locus ax + by + c = 0. The normal vector is (a, b); a line is
// degenerate only when (a, b) = (0, 0), which never occurs in a valid
// configuration but is tolerated defensively (such a line intersects nothing).
type Line struct {
	A, B, C float64
}

// A LineSet is an ordered arrangement of lines. Order carries no geometric
// meaning; it only fixes the indices used to name intersections and triangles.
type LineSet []Line

// Normalized scales the coefficients so that a^2 + b^2 = 1. With a unit
// normal, c is the signed distance from the origin, which keeps the three
// parameters comparable when we perturb them all with the same noise. A
// degenerate normal is left untouched rather than divided by ~0.
func (l Line) Normalized() Line {
	n := math.Hypot(l.A, l.B)
	if n < normEps {
		return l
	}
	return Line{l.A / n, l.B / n, l.C / n}
}

// Canonical returns the unique representative among the two scalings
// {l, -l} of a normalized line: flip so that a > 0, breaking a ≈ 0 ties by
// b > 0. Only comparison code needs this; the evaluator is sign-agnostic.
func (l Line) Canonical() Line {
	l = l.Normalized()
	if l.A < -normEps || (math.Abs(l.A) < normEps && l.B < -normEps) {
		return Line{-l.A, -l.B, -l.C}
	}
	return l
}

// ReflectY mirrors the line across the Y axis:
// ax + by + c = 0 becomes a(-x) + by + c = 0, that is (-a, b, c).
func (l Line) ReflectY() Line {
	return Line{-l.A, l.B, l.C}
}

// Eval is the signed line function ax + by + c at a point. For a normalized
// line this is the signed distance; its sign tells which side p is on.
func (l Line) Eval(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// Clone returns an independent copy. The annealer relies on this: the
// candidate it perturbs must never alias the current state.
func (ls LineSet) Clone() LineSet {
	out := make(LineSet, len(ls))
	copy(out, ls)
	return out
}

// Normalize re-imposes a^2 + b^2 = 1 on every line, in place.
func (ls LineSet) Normalize() {
	for i := range ls {
		ls[i] = ls[i].Normalized()
	}
}

// Canonical returns a copy in canonical form: every line normalized and
// sign-fixed, then the set sorted lexicographically by (a, b, c). Two
// arrangements describing the same geometry compare equal in this form
// regardless of line order or coefficient scaling.
func (ls LineSet) Canonical() LineSet {
	out := make(LineSet, len(ls))
	for i, l := range ls {
		out[i] = l.Canonical()
	}
	// Insertion sort; N is small and this keeps the package dependency-free.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].less(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func (l Line) less(m Line) bool {
	if l.A != m.A {
		return l.A < m.A
	}
	if l.B != m.B {
		return l.B < m.B
	}
	return l.C < m.C
}
