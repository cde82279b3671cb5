package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfujimura/kobon/arrangement"
)

func TestAnalyzeSigma(t *testing.T) {
	ls := arrangement.LineSet{
		{A: 1, B: 0, C: -2},
		{A: 0, B: 1, C: 4},
	}
	r := AnalyzeSigma(ls, 0.01)

	assert.InDelta(t, 0.5, r.MeanAbsA, 1e-12)
	assert.InDelta(t, 0.5, r.MeanAbsB, 1e-12)
	assert.InDelta(t, 3.0, r.MeanAbsC, 1e-12)
	assert.InDelta(t, (1+0+2+0+1+4)/6.0, r.OverallMeanAbs, 1e-12)
	assert.InDelta(t, 1.0, r.MeanNormAB, 1e-12)

	assert.InDelta(t, 0.01/r.OverallMeanAbs*100, r.RelativeOverall, 1e-12)
	assert.InDelta(t, 0.01/3.0*100, r.RelativeC, 1e-12)
	assert.Equal(t, 0.01, r.Sigma)
}

func TestAnalyzeSigmaZeroSafe(t *testing.T) {
	// All-zero coefficients must not divide by zero
	r := AnalyzeSigma(arrangement.LineSet{{}, {}}, 0.01)
	assert.Equal(t, 0.0, r.RelativeOverall)
	assert.Equal(t, 0.0, r.RelativeC)
}
