// Package analysis examines record configurations after the fact: telling
// variants apart, ranking their symmetries, classifying their topology, and
// sizing perturbations against the parameter scale. Nothing here runs in the
// optimizer's hot path.
package analysis

import (
	"math"

	"github.com/mfujimura/kobon/arrangement"
)

// DefaultDistinctThreshold is the canonical-distance cutoff below which two
// configurations are considered the same local optimum dressed differently.
const DefaultDistinctThreshold = 0.1

// Distance measures how far apart two arrangements are geometrically: both
// are put in canonical form (unit normals, fixed signs, sorted) and the
// Frobenius distance between the coefficient matrices is taken. Arrangements
// of different sizes are infinitely far apart.
func Distance(a, b arrangement.LineSet) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	ca := a.Canonical()
	cb := b.Canonical()
	sum := 0.0
	for i := range ca {
		da := ca[i].A - cb[i].A
		db := ca[i].B - cb[i].B
		dc := ca[i].C - cb[i].C
		sum += da*da + db*db + dc*dc
	}
	return math.Sqrt(sum)
}

// Distinct reports whether ls sits farther than threshold from every known
// configuration. This is parameter-space clustering; see CanonicalHash for
// the topological notion.
func Distinct(ls arrangement.LineSet, known []arrangement.LineSet, threshold float64) bool {
	for _, k := range known {
		if Distance(ls, k) < threshold {
			return false
		}
	}
	return true
}
