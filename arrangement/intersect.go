package arrangement

import "math"

type Point struct {
	X float64
	Y float64
}

// An IntersectionTable holds every pairwise intersection of an arrangement:
// entry (i, j) is where line i meets line j, with a validity flag that is
// false on the diagonal and for parallel pairs. The table is derived data,
// recomputed in full whenever the arrangement changes; it is never patched
// incrementally.
type IntersectionTable struct {
	n      int
	points []Point
	valid  []bool
}

// Intersections computes the full table in one O(N^2) pass.
//
// Each line is read as the homogeneous vector (a, b, c); the intersection of
// lines i and j is the cross product (x', y', w'), with Cartesian coordinates
// (x'/w', y'/w'). w' = a_i*b_j - b_i*a_j is the determinant of the two
// direction vectors, so |w'| <= parallelEps marks the pair parallel. Division
// for an invalid pair is guarded by substituting 1.0, so invalid entries hold
// defined-but-ignored values instead of NaN or Inf.
func Intersections(ls LineSet) *IntersectionTable {
	n := len(ls)
	t := &IntersectionTable{
		n:      n,
		points: make([]Point, n*n),
		valid:  make([]bool, n*n),
	}
	for i := 0; i < n; i++ {
		li := ls[i]
		for j := i + 1; j < n; j++ {
			lj := ls[j]
			w := li.A*lj.B - li.B*lj.A
			ok := math.Abs(w) > parallelEps
			if !ok {
				w = 1.0
			}
			p := Point{
				X: (li.B*lj.C - li.C*lj.B) / w,
				Y: (li.C*lj.A - li.A*lj.C) / w,
			}
			t.points[i*n+j] = p
			t.points[j*n+i] = p
			t.valid[i*n+j] = ok
			t.valid[j*n+i] = ok
		}
	}
	return t
}

// At returns the intersection of lines i and j. The point is meaningful only
// when ok is true.
func (t *IntersectionTable) At(i, j int) (p Point, ok bool) {
	return t.points[i*t.n+j], t.valid[i*t.n+j]
}

// Valid reports whether lines i and j intersect.
func (t *IntersectionTable) Valid(i, j int) bool {
	return t.valid[i*t.n+j]
}

// Len returns the number of lines the table was built for.
func (t *IntersectionTable) Len() int {
	return t.n
}

// ValidPoints collects the distinct intersection points, one per unordered
// valid pair. This is the point cloud the symmetry analysis works on.
func (t *IntersectionTable) ValidPoints() []Point {
	var pts []Point
	for i := 0; i < t.n; i++ {
		for j := i + 1; j < t.n; j++ {
			if t.valid[i*t.n+j] {
				pts = append(pts, t.points[i*t.n+j])
			}
		}
	}
	return pts
}
