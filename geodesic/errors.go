package geodesic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// Sentinel errors returned by the engine.
var (
	// ErrNonTriangulatedMesh indicates a face did not have exactly 3
	// halfedges; surfaced here too since geodesic is the first caller
	// to traverse a mesh that may not yet have been validated.
	ErrNonTriangulatedMesh = errors.New("geodesic: mesh face is not a triangle")

	// ErrUnreachable indicates a queried vertex or location has no
	// occupier: no source's propagation ever reached it. Returned as
	// an explicit error, never as an out-of-range sentinel distance.
	ErrUnreachable = errors.New("geodesic: location unreachable from any source")

	// ErrDegeneratePropagation indicates an internal invariant was
	// violated: a kernel intersection the propagation invariants
	// guarantee must exist did not occur. This is a fatal internal
	// inconsistency, not a caller error.
	ErrDegeneratePropagation = errors.New("geodesic: degenerate propagation (internal invariant violated)")

	// errNumericOverflow names the failure of the kernel to build an
	// offset point. No function in this package returns or checks it:
	// the Kernel interface has no construction that reports this
	// failure.
	errNumericOverflow = errors.New("geodesic: numeric overflow constructing offset point")
)

// InvalidFaceLocationError reports that a barycentric triple was not a
// valid location on the given face: it is negative in some component
// or does not sum to one within kernel tolerance. The face index itself
// is not range-checked; an out-of-range face is not reported through
// this error.
type InvalidFaceLocationError struct {
	Face trimesh.FaceID
	Bary geomkernel.Barycentric
	Err  error
}

func (e *InvalidFaceLocationError) Error() string {
	return fmt.Sprintf("geodesic: invalid face location (face=%d, bary=%+v): %v", e.Face, e.Bary, e.Err)
}

func (e *InvalidFaceLocationError) Unwrap() error { return e.Err }
