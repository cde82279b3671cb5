package anneal

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mfujimura/kobon/arrangement"
)

// The breather scan is a one-dimensional probe of a record configuration:
// the lines nearest the origin (the "inner" half, ranked by |c| with unit
// normals) are moved in and out together by scaling their c, and the
// arrangement is rescored at each step. Good configurations sometimes hide a
// better one along exactly this direction.

// BreatherScan sweeps scale factors over [lo, hi) with the given step. It
// returns the scales probed, the score at each, and the best (scale, score)
// found. The sweep stops early as soon as a score strictly above the starting
// score appears.
func BreatherScan(ls arrangement.LineSet, lo, hi, step float64) (scales, scores []float64, bestScale float64, bestScore int, err error) {
	if step <= 0 || hi <= lo {
		return nil, nil, 0, 0, errors.Errorf("invalid sweep [%g, %g) step %g", lo, hi, step)
	}
	base := ls.Clone()
	base.Normalize()

	inner := innerLineIndices(base)
	baseline := arrangement.Score(base)
	bestScore = -1

	for s := lo; s < hi; s += step {
		cand := base.Clone()
		for _, i := range inner {
			cand[i].C *= s
		}
		score := arrangement.Score(cand)
		scales = append(scales, s)
		scores = append(scores, float64(score))
		if score > bestScore {
			bestScore = score
			bestScale = s
		}
		if score > baseline {
			break
		}
	}
	return scales, scores, bestScale, bestScore, nil
}

// BreatherAt applies a single scale factor to the inner lines and returns the
// resulting arrangement. Useful once the scan has located a promising scale.
func BreatherAt(ls arrangement.LineSet, scale float64) arrangement.LineSet {
	out := ls.Clone()
	out.Normalize()
	for _, i := range innerLineIndices(out) {
		out[i].C *= scale
	}
	return out
}

// innerLineIndices returns the half of the lines closest to the origin.
// With unit normals, |c| is exactly that distance.
func innerLineIndices(ls arrangement.LineSet) []int {
	idx := make([]int, len(ls))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return math.Abs(ls[idx[a]].C) < math.Abs(ls[idx[b]].C)
	})
	return idx[:len(ls)/2]
}

// PlotBreatherScan writes a score-vs-scale figure for a completed sweep.
func PlotBreatherScan(scales, scores []float64, baseline int, path string) error {
	if len(scales) != len(scores) {
		return errors.Errorf("mismatched series: %d scales, %d scores", len(scales), len(scores))
	}
	p := plot.New()
	p.Title.Text = "Breather scan"
	p.X.Label.Text = "scale factor (inner lines)"
	p.Y.Label.Text = "triangle count"

	pts := make(plotter.XYs, len(scales))
	for i := range scales {
		pts[i].X = scales[i]
		pts[i].Y = scores[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "building scan series")
	}
	p.Add(line)

	ref := plotter.NewFunction(func(x float64) float64 { return float64(baseline) })
	ref.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(ref)

	return errors.Wrapf(p.Save(8*vg.Inch, 5*vg.Inch, path), "saving %s", path)
}
