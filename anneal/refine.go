package anneal

import (
	"math/rand"

	"github.com/mfujimura/kobon/analysis"
	"github.com/mfujimura/kobon/arrangement"
)

// A Kick pairs a perturbation sigma with its selection weight. Mixing scales
// matters: big kicks escape the incumbent basin, small ones polish it.
type Kick struct {
	Sigma  float64
	Weight float64
}

// DefaultKicks is the mixture the refinement runs were tuned with.
var DefaultKicks = []Kick{
	{Sigma: 0.5, Weight: 0.3},
	{Sigma: 0.1, Weight: 0.4},
	{Sigma: 0.01, Weight: 0.3},
}

// A Refiner digs around a known-good arrangement: each round it kicks the
// incumbent best with Gaussian noise at a randomly chosen sigma, then runs a
// short annealing from there with T_start tied to the kick size. Improvements
// replace the incumbent; non-improving results that still reach ScoreFloor
// are collected as variants when geometrically distinct from everything seen
// so far.
type Refiner struct {
	Kicks        int
	PerKick      int
	Mixture      []Kick
	ScoreFloor   int
	Goal         int
	RNG          *rand.Rand
	OnImprove    func(ls arrangement.LineSet, score int)
	OnVariant    func(ls arrangement.LineSet, index int)
	OnKickDone   func(kick, score, best int, sigma float64)
}

// Result of a refinement run: the best arrangement plus every distinct
// floor-score variant encountered along the way.
type RefineResult struct {
	Best     arrangement.LineSet
	Score    int
	Variants []arrangement.LineSet
}

// Refine runs the kick loop starting from an arrangement whose score is
// already known. It stops early once Goal is reached.
func (r *Refiner) Refine(start arrangement.LineSet, startScore int) (*RefineResult, error) {
	rng := r.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	mixture := r.Mixture
	if len(mixture) == 0 {
		mixture = DefaultKicks
	}

	best := start.Clone()
	bestScore := startScore
	known := []arrangement.LineSet{start.Clone()}
	var variants []arrangement.LineSet

	for kick := 0; kick < r.Kicks; kick++ {
		sigma := pickSigma(mixture, rng)

		state := best.Clone()
		for i := range state {
			state[i].A += rng.NormFloat64() * sigma
			state[i].B += rng.NormFloat64() * sigma
			state[i].C += rng.NormFloat64() * sigma
		}
		state.Normalize()

		an := &Annealer{
			Objective: CountObjective,
			Propose:   GaussianProposal(0.1),
			Schedule:  Exponential{Start: sigma, End: 1e-4},
			RNG:       rng,
			Goal:      float64(r.Goal),
		}
		final, obj, err := an.Run(state, r.PerKick)
		if err != nil {
			return nil, err
		}
		score := int(obj)

		if r.OnKickDone != nil {
			r.OnKickDone(kick, score, bestScore, sigma)
		}

		if score > bestScore {
			bestScore = score
			best = final.Clone()
			known = append(known, final.Clone())
			if r.OnImprove != nil {
				r.OnImprove(best, bestScore)
			}
			if r.Goal > 0 && bestScore >= r.Goal {
				break
			}
			continue
		}

		if r.ScoreFloor > 0 && score == r.ScoreFloor && analysis.Distinct(final, known, analysis.DefaultDistinctThreshold) {
			known = append(known, final.Clone())
			variants = append(variants, final.Clone())
			if r.OnVariant != nil {
				r.OnVariant(final, len(variants))
			}
		}
	}

	return &RefineResult{Best: best, Score: bestScore, Variants: variants}, nil
}

func pickSigma(mixture []Kick, rng *rand.Rand) float64 {
	total := 0.0
	for _, k := range mixture {
		total += k.Weight
	}
	u := rng.Float64() * total
	for _, k := range mixture {
		u -= k.Weight
		if u < 0 {
			return k.Sigma
		}
	}
	return mixture[len(mixture)-1].Sigma
}
