// A search engine for the Kobon triangle problem.
//
// Given N straight lines in the plane, a Kobon triangle is a triangle bounded
// by three of the lines whose interior no other line crosses. This package
// evaluates arrangements (how many Kobon triangles does this one have?) and
// searches for good ones by simulated annealing. The interesting machinery
// lives in the arrangement and anneal packages; this file is the small
// surface most callers need.
package kobon

import (
	"math/rand"

	"github.com/mfujimura/kobon/anneal"
	"github.com/mfujimura/kobon/arrangement"
)

type Line = arrangement.Line
type LineSet = arrangement.LineSet
type Triangle = arrangement.Triangle

// Evaluate scores an arrangement: the Kobon triangle count and the triangles
// themselves, each an ascending triple of line indices. Deterministic, pure,
// and tolerant of degenerate input (a zero-normal line simply never forms a
// triangle).
func Evaluate(lines LineSet) (int, []Triangle) {
	tris := arrangement.FindTriangles(lines, nil)
	return len(tris), tris
}

// Optimize runs a single simulated-annealing trajectory from the given
// arrangement and returns the best arrangement seen and its score. The
// trajectory uses Gaussian perturbations with sigma proportional to an
// exponentially cooling temperature, Metropolis acceptance, and a fixed
// iteration budget.
//
// Requirements: at least 3 lines, iterations >= 0, 0 < tEnd <= tStart.
// rng may be nil for a nondeterministic run.
func Optimize(initial LineSet, iterations int, tStart, tEnd float64, rng *rand.Rand) (LineSet, int, error) {
	return anneal.Optimize(initial, iterations, tStart, tEnd, rng)
}

// Random returns a random normalized arrangement of n lines, the usual
// starting point for an independent search run.
func Random(n int, rng *rand.Rand) LineSet {
	return anneal.RandomLineSet(n, rng)
}
