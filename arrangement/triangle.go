package arrangement

// A Triangle names the three lines bounding a Kobon triangle. Indices are
// always stored sorted, so a triple found as (3, 1, 2) and one found as
// (1, 2, 3) are the same value; callers diffing triangle sets between
// configurations rely on this.
type Triangle struct {
	I, J, K int
}

// Vertices looks up the triangle's corner points in the table.
func (tr Triangle) Vertices(t *IntersectionTable) (Point, Point, Point) {
	a, _ := t.At(tr.I, tr.J)
	b, _ := t.At(tr.J, tr.K)
	c, _ := t.At(tr.K, tr.I)
	return a, b, c
}

// FindTriangles enumerates all C(N,3) line triples and returns those bounding
// a Kobon triangle. tbl may be nil, in which case the table is computed here.
//
// A triple (i, j, k) qualifies when:
//   - all three pairwise intersections exist (no parallel pair among them),
//   - the three vertices are pairwise distinct (coincident vertices mean the
//     lines are concurrent and bound nothing), and
//   - no other line separates the vertices: line m cuts the interior exactly
//     when its signed values at the three vertices land strictly on both
//     sides of the ±separationEps dead zone. Touching a vertex does not
//     invalidate the triangle.
//
// This is the O(N^4) inner loop of the whole search; one call per annealing
// iteration. It allocates only for the result slice.
func FindTriangles(ls LineSet, tbl *IntersectionTable) []Triangle {
	if tbl == nil {
		tbl = Intersections(ls)
	}
	n := len(ls)
	var out []Triangle
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !tbl.Valid(i, j) {
				continue
			}
			for k := j + 1; k < n; k++ {
				if !tbl.Valid(j, k) || !tbl.Valid(k, i) {
					continue
				}
				v1, _ := tbl.At(i, j)
				v2, _ := tbl.At(j, k)
				v3, _ := tbl.At(k, i)
				if coincide(v1, v2) || coincide(v2, v3) || coincide(v3, v1) {
					continue
				}
				if interiorClear(ls, i, j, k, v1, v2, v3) {
					out = append(out, Triangle{i, j, k})
				}
			}
		}
	}
	return out
}

// Score counts the Kobon triangles of an arrangement. This is the objective
// the optimizer maximizes.
func Score(ls LineSet) int {
	return len(FindTriangles(ls, nil))
}

func coincide(p, q Point) bool {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx+dy*dy < coincidenceEps*coincidenceEps
}

// interiorClear runs the separation test: true when no line outside the
// triple passes through the triangle's interior.
func interiorClear(ls LineSet, i, j, k int, v1, v2, v3 Point) bool {
	for m := range ls {
		if m == i || m == j || m == k {
			continue
		}
		e1 := ls[m].Eval(v1)
		e2 := ls[m].Eval(v2)
		e3 := ls[m].Eval(v3)
		min, max := e1, e1
		if e2 < min {
			min = e2
		} else if e2 > max {
			max = e2
		}
		if e3 < min {
			min = e3
		} else if e3 > max {
			max = e3
		}
		if min < -separationEps && max > separationEps {
			return false
		}
	}
	return true
}
