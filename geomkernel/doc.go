// Package geomkernel provides the numeric kernel consumed by package
// geodesic: 2D/3D points, segments, rays, triangles, triangle unfolding,
// triangle projection, segment/ray intersection, parametric position
// along a segment, squared distance, and the saddle-vertex predicate.
//
// # Role
//
// geomkernel is the concrete implementation of the "Geometry Kernel"
// capability the engine depends on: the engine itself never reaches
// into X/Y/Z components directly, it calls
// through the small set of constructors and predicates this package
// exposes. A caller with access to an exact-arithmetic kernel (e.g. a
// CGAL-style Cartesian<Exact> kernel via cgo) can supply an alternate
// implementation satisfying the same function shapes; this package is
// the inexact-but-fast float64 default.
//
// # Vector arithmetic
//
// Point2 and Point3 are thin named types over gonum.org/v1/gonum's
// spatial/r2.Vec and spatial/r3.Vec; all additions, subtractions, scalar
// scaling, and dot products route through those packages rather than
// hand-rolled component arithmetic. The barycentric-sum check and the
// equal-parameter tests in the intersection helpers use
// gonum.org/v1/gonum/floats.EqualWithinAbs; degenerate-triangle
// rejection compares lengths against Tolerance directly, and parametric
// clamping clamps to [0,1] without a tolerance.
//
// # Errors
//
//	ErrDegenerateTriangle - a triangle's three corners are collinear
//	                        (zero signed area) where a nondegenerate
//	                        triangle is required.
//	ErrNoIntersection     - declared for callers that need a sentinel for
//	                        a missing intersection; the intersection
//	                        functions here do not return it and report
//	                        a miss as Kind == NoResult with a nil error.
package geomkernel
