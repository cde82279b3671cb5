package arrangement

// The three tolerances below jointly define what counts as a valid Kobon
// triangle, so they live together even though they are consumed in different
// files.
//
// Note the inconsistent orders of magnitude: a pair of lines is "parallel"
// within 1e-10, vertices "coincide" within 1e-6, and a line "cuts" a triangle
// only beyond 1e-9. The original tuning predates this port and it is not
// clear whether the spread is deliberate or an oversight; they are kept as
// three independent constants rather than unified so the behavior is
// preserved exactly. TODO: confirm with a maintainer whether coincidenceEps
// can be tightened toward the other two.
const (
	// parallelEps bounds the homogeneous cross product's w component, the
	// determinant of the two direction vectors. Below it, the pair is treated
	// as parallel and has no intersection.
	parallelEps = 1e-10

	// coincidenceEps bounds the distance between two candidate triangle
	// vertices. Closer than this means three concurrent lines, which bound no
	// triangle.
	coincidenceEps = 1e-6

	// separationEps is the dead zone of the separation test. A line whose
	// signed values at the three vertices stay within ±separationEps on one
	// side only touches the triangle and does not invalidate it.
	separationEps = 1e-9

	// normEps guards normalization and sign fixing against a degenerate
	// (0, 0) normal.
	normEps = 1e-9
)
