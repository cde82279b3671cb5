package anneal

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/mfujimura/kobon/arrangement"
)

// The record configurations tend to sit near a mirror symmetry across the Y
// axis. The two searches in this file exploit that: the forced variant
// optimizes only half the lines and mirrors them, the soft variant optimizes
// the full set with an asymmetry penalty folded into the objective.

// A Pair names two line indices believed to be mirror images of one another.
// A line may pair with itself when it is (nearly) its own reflection.
type Pair struct {
	I, J int
}

// lineDist measures how far apart two normalized lines are, treating l and -l
// as the same line.
func lineDist(a, b arrangement.Line) float64 {
	d1 := math.Sqrt(sq(a.A-b.A) + sq(a.B-b.B) + sq(a.C-b.C))
	d2 := math.Sqrt(sq(a.A+b.A) + sq(a.B+b.B) + sq(a.C+b.C))
	return math.Min(d1, d2)
}

func sq(x float64) float64 { return x * x }

// DetectPairs greedily matches each line with the remaining line closest to
// its Y-axis reflection. Matches are forced even when the distance is large;
// the caller judges quality via SymmetryError.
func DetectPairs(ls arrangement.LineSet) []Pair {
	canon := make(arrangement.LineSet, len(ls))
	for i, l := range ls {
		canon[i] = l.Canonical()
	}
	used := make([]bool, len(ls))
	var pairs []Pair
	for i := range canon {
		if used[i] {
			continue
		}
		target := canon[i].ReflectY().Canonical()
		bestJ := -1
		bestDist := math.Inf(1)
		for j := i; j < len(canon); j++ {
			if used[j] {
				continue
			}
			if d := lineDist(canon[j], target); d < bestDist {
				bestDist = d
				bestJ = j
			}
		}
		if bestJ != -1 {
			pairs = append(pairs, Pair{i, bestJ})
			used[i] = true
			used[bestJ] = true
		}
	}
	return pairs
}

// SymmetryError sums, over the pairs, the squared distance between each
// line's reflection and its partner. Zero means a perfectly mirror-symmetric
// arrangement.
func SymmetryError(ls arrangement.LineSet, pairs []Pair) float64 {
	err := 0.0
	for _, p := range pairs {
		li := ls[p.I].Canonical()
		lj := ls[p.J].Canonical()
		d := lineDist(li.ReflectY().Canonical(), lj)
		err += d * d
	}
	return err
}

// Symmetrize collapses a (nearly) mirror-symmetric arrangement into its
// master half: each mirror pair is averaged into one representative line.
// The full arrangement is recovered with ExpandMirror. If the pairing does
// not come out even, the first half of the input is returned as a fallback.
func Symmetrize(ls arrangement.LineSet) arrangement.LineSet {
	canon := make(arrangement.LineSet, len(ls))
	for i, l := range ls {
		canon[i] = l.Canonical()
	}
	used := make([]bool, len(canon))
	var masters arrangement.LineSet
	for i := range canon {
		if used[i] {
			continue
		}
		target := canon[i].ReflectY().Canonical()
		bestJ := -1
		bestDist := math.Inf(1)
		for j := i + 1; j < len(canon); j++ {
			if used[j] {
				continue
			}
			if d := lineDist(canon[j], target); d < bestDist {
				bestDist = d
				bestJ = j
			}
		}
		if bestJ == -1 {
			continue
		}
		used[i] = true
		used[bestJ] = true

		// Align the partner's reflection with this line sign-wise before
		// averaging, or the mean could cancel instead of smooth.
		ref := canon[bestJ].ReflectY()
		if lineDistRaw(canon[i], ref) > lineDistRaw(canon[i], neg(ref)) {
			ref = neg(ref)
		}
		m := arrangement.Line{
			A: (canon[i].A + ref.A) / 2,
			B: (canon[i].B + ref.B) / 2,
			C: (canon[i].C + ref.C) / 2,
		}
		masters = append(masters, m.Canonical())
	}
	if len(masters) != len(ls)/2 {
		return canon[:len(ls)/2].Clone()
	}
	return masters
}

func lineDistRaw(a, b arrangement.Line) float64 {
	return math.Sqrt(sq(a.A-b.A) + sq(a.B-b.B) + sq(a.C-b.C))
}

func neg(l arrangement.Line) arrangement.Line {
	return arrangement.Line{A: -l.A, B: -l.B, C: -l.C}
}

// ExpandMirror interleaves each master line with its Y-axis reflection,
// doubling the arrangement.
func ExpandMirror(masters arrangement.LineSet) arrangement.LineSet {
	full := make(arrangement.LineSet, 0, 2*len(masters))
	for _, m := range masters {
		full = append(full, m, m.ReflectY())
	}
	return full
}

// OptimizeForcedSymmetry anneals only the master half of a mirror-symmetric
// arrangement; every candidate is scored after expansion, so the search can
// never leave the symmetric subspace. Returns the best masters and the score
// of their expansion.
func OptimizeForcedSymmetry(masters arrangement.LineSet, steps int, rng *rand.Rand) (arrangement.LineSet, int, error) {
	if len(masters) < 2 {
		return nil, 0, errors.Errorf("need at least 2 master lines, got %d", len(masters))
	}
	an := &Annealer{
		Objective: func(m arrangement.LineSet) float64 {
			return float64(arrangement.Score(ExpandMirror(m)))
		},
		Propose: func(cur arrangement.LineSet, temp float64, rng *rand.Rand) arrangement.LineSet {
			cand := cur.Clone()
			sigma := 0.05 * temp
			for i := range cand {
				cand[i].A += rng.NormFloat64() * sigma
				cand[i].B += rng.NormFloat64() * sigma
				cand[i].C += rng.NormFloat64() * sigma
				cand[i] = cand[i].Canonical()
			}
			return cand
		},
		Schedule: Multiplicative{Start: 0.5, Alpha: 0.995, Floor: 0.001},
		RNG:      rng,
	}
	best, obj, err := an.Run(masters, steps)
	if err != nil {
		return nil, 0, err
	}
	return best, int(obj), nil
}

// SoftSymmetryResult carries the two states a soft-symmetry run tracks: the
// arrangement with the best raw score, and the one with the best combined
// energy (the most symmetric arrangement at that score level).
type SoftSymmetryResult struct {
	Best          arrangement.LineSet
	BestScore     int
	MostSymmetric arrangement.LineSet
}

const (
	softScoreWeight    = 1000
	softSymmetryWeight = 10
)

// OptimizeSoftSymmetry anneals the full arrangement under the combined
// objective score*1000 - symmetryError*10, so the search prefers more
// triangles first and more symmetry second. Pairs are detected once up front
// and held fixed for the whole run.
func OptimizeSoftSymmetry(initial arrangement.LineSet, steps int, goalScore int, rng *rand.Rand) (*SoftSymmetryResult, error) {
	pairs := DetectPairs(initial)
	energy := func(ls arrangement.LineSet) float64 {
		score := float64(arrangement.Score(ls))
		return score*softScoreWeight - SymmetryError(ls, pairs)*softSymmetryWeight
	}

	res := &SoftSymmetryResult{
		Best:          initial.Clone(),
		BestScore:     arrangement.Score(initial),
		MostSymmetric: initial.Clone(),
	}
	bestEnergy := energy(initial)

	an := &Annealer{
		Objective: energy,
		Propose:   GaussianProposal(0.02),
		Schedule:  Exponential{Start: 1.0, End: 0.001},
		RNG:       rng,
	}
	if goalScore > 0 {
		// The goal is on the raw score, not the penalized objective.
		an.Stop = func(best arrangement.LineSet, _ float64) bool {
			return arrangement.Score(best) >= goalScore
		}
	}
	an.OnAccept = func(iter int, accepted arrangement.LineSet, obj, temp float64) {
		if score := arrangement.Score(accepted); score > res.BestScore {
			res.BestScore = score
			res.Best = accepted.Clone()
		}
		if obj > bestEnergy {
			bestEnergy = obj
			res.MostSymmetric = accepted.Clone()
		}
	}

	_, _, err := an.Run(initial, steps)
	if err != nil {
		return nil, err
	}
	return res, nil
}
