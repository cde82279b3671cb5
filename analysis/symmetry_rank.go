package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mfujimura/kobon/arrangement"
)

// Symmetry ranking works on the intersection point cloud rather than the
// line coefficients: apply a candidate symmetry transform to the normalized
// cloud and measure how far each transformed point lands from its nearest
// original. A cloud invariant under the transform scores near zero.

// A Transform maps a point to a point.
type Transform func(arrangement.Point) arrangement.Point

// SymmetryScore names a transform and its mean nearest-neighbor error.
type SymmetryScore struct {
	Name  string
	Error float64
}

// CandidateTransforms are the symmetries worth testing for Kobon records:
// the two mirror axes and the small rotation groups that show up in known
// optimal arrangements.
func CandidateTransforms() map[string]Transform {
	return map[string]Transform{
		"mirror_x": func(p arrangement.Point) arrangement.Point { return arrangement.Point{X: p.X, Y: -p.Y} },
		"mirror_y": func(p arrangement.Point) arrangement.Point { return arrangement.Point{X: -p.X, Y: p.Y} },
		"rot_72":   rotation(2 * math.Pi / 5),
		"rot_120":  rotation(2 * math.Pi / 3),
		"rot_180":  rotation(math.Pi),
	}
}

func rotation(theta float64) Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	return func(p arrangement.Point) arrangement.Point {
		return arrangement.Point{X: c*p.X - s*p.Y, Y: s*p.X + c*p.Y}
	}
}

// NormalizePoints centers the cloud on its centroid and scales so the mean
// distance to the center is 1, making symmetry errors comparable across
// configurations of different extent.
func NormalizePoints(pts []arrangement.Point) []arrangement.Point {
	if len(pts) == 0 {
		return nil
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	cx := stat.Mean(xs, nil)
	cy := stat.Mean(ys, nil)

	dists := make([]float64, len(pts))
	for i := range pts {
		dists[i] = math.Hypot(xs[i]-cx, ys[i]-cy)
	}
	scale := stat.Mean(dists, nil)
	if scale < 1e-9 {
		scale = 1
	}

	out := make([]arrangement.Point, len(pts))
	for i := range pts {
		out[i] = arrangement.Point{X: (xs[i] - cx) / scale, Y: (ys[i] - cy) / scale}
	}
	return out
}

// TransformError is the mean distance from each transformed point to its
// nearest original point.
func TransformError(pts []arrangement.Point, tf Transform) float64 {
	if len(pts) == 0 {
		return math.Inf(1)
	}
	minDists := make([]float64, len(pts))
	for i, p := range pts {
		q := tf(p)
		best := math.Inf(1)
		for _, orig := range pts {
			if d := math.Hypot(q.X-orig.X, q.Y-orig.Y); d < best {
				best = d
			}
		}
		minDists[i] = best
	}
	return floats.Sum(minDists) / float64(len(minDists))
}

// RankSymmetries scores every candidate transform against the arrangement's
// intersection cloud and returns them best (lowest error) first.
func RankSymmetries(ls arrangement.LineSet) []SymmetryScore {
	pts := NormalizePoints(arrangement.Intersections(ls).ValidPoints())
	var scores []SymmetryScore
	for name, tf := range CandidateTransforms() {
		scores = append(scores, SymmetryScore{Name: name, Error: TransformError(pts, tf)})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Error != scores[j].Error {
			return scores[i].Error < scores[j].Error
		}
		return scores[i].Name < scores[j].Name
	})
	return scores
}
