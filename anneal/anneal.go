// Package anneal drives simulated-annealing searches over line arrangements.
// One loop serves every search variant in the project; the variants differ
// only in their proposal distribution and objective, which are parameters.
package anneal

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/mfujimura/kobon/arrangement"
)

// Objective scores a candidate arrangement; higher is better. The standard
// search maximizes the raw triangle count, the soft-symmetry search folds an
// asymmetry penalty into the same number.
type Objective func(ls arrangement.LineSet) float64

// Proposal produces a fresh candidate near the current state. It must not
// mutate or alias its input; the loop keeps the current state if the
// candidate is rejected.
type Proposal func(cur arrangement.LineSet, temp float64, rng *rand.Rand) arrangement.LineSet

// Hook is invoked after every accepted move. Used by searches that track more
// than the best objective (the soft-symmetry search watches the raw score
// separately from the combined energy).
type Hook func(iter int, accepted arrangement.LineSet, obj, temp float64)

// An Annealer runs a single trajectory. All state is owned by Run; an
// Annealer value is cheap and reusable.
type Annealer struct {
	Objective Objective
	Propose   Proposal
	Schedule  Schedule
	RNG       *rand.Rand

	// Goal stops the run early once the best objective reaches it. Zero or
	// negative means run the full budget (all real objectives here are
	// positive).
	Goal float64

	// Stop, when set, is consulted after every improvement and ends the run
	// when it returns true. For goals richer than a single objective
	// threshold, e.g. a raw-score target under a penalized objective.
	Stop func(best arrangement.LineSet, obj float64) bool

	// OnImprove fires whenever a new best is recorded. This is where drivers
	// hang persistence; it stays out of the rejected-move hot path.
	OnImprove func(best arrangement.LineSet, obj float64, iter int)

	// OnAccept fires on every accepted move, improvement or not. Optional.
	OnAccept Hook
}

// Run anneals from initial for the given iteration budget and returns the
// best arrangement seen and its objective. The trajectory itself may wander
// below the returned value; the best-seen sequence is non-decreasing by
// construction.
//
// Acceptance is the Metropolis criterion: an improving move is always taken,
// a worsening move with probability exp(delta/T) against a uniform draw.
func (an *Annealer) Run(initial arrangement.LineSet, iterations int) (arrangement.LineSet, float64, error) {
	if len(initial) == 0 {
		return nil, 0, errors.New("empty initial arrangement")
	}
	if iterations < 0 {
		return nil, 0, errors.Errorf("negative iteration budget %d", iterations)
	}
	rng := an.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	sched := an.Schedule
	if sched == nil {
		sched = Exponential{Start: 1.0, End: 1e-3}
	}

	current := initial.Clone()
	currentObj := an.Objective(current)
	best := current.Clone()
	bestObj := currentObj

	for i := 0; i < iterations; i++ {
		if an.Goal > 0 && bestObj >= an.Goal {
			break
		}
		temp := sched.Temperature(i, iterations)
		candidate := an.Propose(current, temp, rng)
		candObj := an.Objective(candidate)

		delta := candObj - currentObj
		if delta > 0 || rng.Float64() < math.Exp(delta/temp) {
			current = candidate
			currentObj = candObj
			if an.OnAccept != nil {
				an.OnAccept(i, current, currentObj, temp)
			}
			if currentObj > bestObj {
				bestObj = currentObj
				best = current.Clone()
				if an.OnImprove != nil {
					an.OnImprove(best, bestObj, i)
				}
				if an.Stop != nil && an.Stop(best, bestObj) {
					break
				}
			}
		}
	}
	return best, bestObj, nil
}

// GaussianProposal perturbs every coefficient with independent Gaussian noise
// of standard deviation scale*T, then re-imposes the unit-normal invariant.
// Perturbation happens in raw coefficient space; renormalizing afterwards
// keeps the parameters bounded and comparable across iterations.
func GaussianProposal(scale float64) Proposal {
	return func(cur arrangement.LineSet, temp float64, rng *rand.Rand) arrangement.LineSet {
		cand := cur.Clone()
		sigma := scale * temp
		for i := range cand {
			cand[i].A += rng.NormFloat64() * sigma
			cand[i].B += rng.NormFloat64() * sigma
			cand[i].C += rng.NormFloat64() * sigma
		}
		cand.Normalize()
		return cand
	}
}

// RandomLineSet draws n lines with standard-normal coefficients and
// normalizes them. This is the standard search's initial state.
func RandomLineSet(n int, rng *rand.Rand) arrangement.LineSet {
	ls := make(arrangement.LineSet, n)
	for i := range ls {
		ls[i] = arrangement.Line{
			A: rng.NormFloat64(),
			B: rng.NormFloat64(),
			C: rng.NormFloat64(),
		}
	}
	ls.Normalize()
	return ls
}

// CountObjective is the plain triangle count as a float64.
func CountObjective(ls arrangement.LineSet) float64 {
	return float64(arrangement.Score(ls))
}

// Optimize is the standard search: Gaussian proposals with sigma 0.1*T over
// an exponential schedule, maximizing the triangle count. It validates the
// schedule endpoints, which are caller-supplied configuration.
func Optimize(initial arrangement.LineSet, iterations int, tStart, tEnd float64, rng *rand.Rand) (arrangement.LineSet, int, error) {
	if len(initial) < 3 {
		return nil, 0, errors.Errorf("need at least 3 lines, got %d", len(initial))
	}
	if tEnd <= 0 || tEnd > tStart {
		return nil, 0, errors.Errorf("invalid temperature range [%g, %g]: need 0 < T_end <= T_start", tEnd, tStart)
	}
	an := &Annealer{
		Objective: CountObjective,
		Propose:   GaussianProposal(0.1),
		Schedule:  Exponential{Start: tStart, End: tEnd},
		RNG:       rng,
	}
	best, obj, err := an.Run(initial, iterations)
	if err != nil {
		return nil, 0, err
	}
	return best, int(obj), nil
}
