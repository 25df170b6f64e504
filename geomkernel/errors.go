package geomkernel

import "errors"

// Sentinel errors returned by geomkernel predicates and constructions.
var (
	// ErrDegenerateTriangle indicates the three corners of a triangle
	// are collinear (the unfolded or projected triangle has zero area).
	ErrDegenerateTriangle = errors.New("geomkernel: degenerate (zero-area) triangle")

	// ErrNoIntersection names a segment/ray or segment/line query that
	// found no intersection. IntersectSegmentRay and
	// IntersectSegmentLine do not return it; they report a miss as
	// Kind == NoResult with a nil error.
	ErrNoIntersection = errors.New("geomkernel: no intersection")

	// ErrBadBarycentric indicates a barycentric triple does not sum to
	// one (within tolerance) or has a negative component.
	ErrBadBarycentric = errors.New("geomkernel: barycentric triple invalid")
)
