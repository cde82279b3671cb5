package anneal

import "math"

// A Schedule maps an iteration index to a temperature for a run of the given
// total length.
type Schedule interface {
	Temperature(iter, total int) float64
}

// Exponential decays geometrically from Start at iteration 0 to roughly End
// at the end of the budget: T(t) = Start * (End/Start)^(t/total). Strictly
// decreasing whenever End < Start.
type Exponential struct {
	Start float64
	End   float64
}

func (e Exponential) Temperature(iter, total int) float64 {
	if total <= 0 {
		return e.End
	}
	return e.Start * math.Pow(e.End/e.Start, float64(iter)/float64(total))
}

// Multiplicative cools by a constant factor each iteration, clamped at Floor.
// The forced-symmetry search uses this with Alpha 0.995: it never fully
// freezes, which suits digging around an already-good configuration.
type Multiplicative struct {
	Start float64
	Alpha float64
	Floor float64
}

func (m Multiplicative) Temperature(iter, total int) float64 {
	t := m.Start * math.Pow(m.Alpha, float64(iter))
	if t < m.Floor {
		return m.Floor
	}
	return t
}
