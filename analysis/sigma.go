package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mfujimura/kobon/arrangement"
)

// SigmaReport relates a perturbation sigma to the magnitude of the parameters
// it perturbs. A sigma that moves c by 1% is a gentle nudge for (a, b) on the
// unit circle but can be much more violent when intercepts have drifted
// small, so the two are reported separately.
type SigmaReport struct {
	MeanAbsA       float64
	MeanAbsB       float64
	MeanAbsC       float64
	OverallMeanAbs float64
	MeanNormAB     float64

	Sigma float64
	// Relative perturbation in percent, overall and on c alone.
	RelativeOverall float64
	RelativeC       float64
}

// AnalyzeSigma summarizes the parameter magnitudes of an arrangement and the
// relative size of the given perturbation sigma against them.
func AnalyzeSigma(ls arrangement.LineSet, sigma float64) SigmaReport {
	absA := make([]float64, len(ls))
	absB := make([]float64, len(ls))
	absC := make([]float64, len(ls))
	norms := make([]float64, len(ls))
	all := make([]float64, 0, 3*len(ls))
	for i, l := range ls {
		absA[i] = math.Abs(l.A)
		absB[i] = math.Abs(l.B)
		absC[i] = math.Abs(l.C)
		norms[i] = math.Hypot(l.A, l.B)
		all = append(all, absA[i], absB[i], absC[i])
	}

	r := SigmaReport{
		MeanAbsA:       stat.Mean(absA, nil),
		MeanAbsB:       stat.Mean(absB, nil),
		MeanAbsC:       stat.Mean(absC, nil),
		OverallMeanAbs: stat.Mean(all, nil),
		MeanNormAB:     stat.Mean(norms, nil),
		Sigma:          sigma,
	}
	if r.OverallMeanAbs > 0 {
		r.RelativeOverall = sigma / r.OverallMeanAbs * 100
	}
	if r.MeanAbsC > 0 {
		r.RelativeC = sigma / r.MeanAbsC * 100
	}
	return r
}
