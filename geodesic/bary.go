package geodesic

import (
	"math"

	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// BaryKind is the result shape of classifyBarycentric.
type BaryKind int

const (
	// Internal: all three components are strictly positive.
	Internal BaryKind = iota
	// OnEdge: exactly one component is (within tolerance) zero; Index
	// names that component.
	OnEdge
	// AtVertex: exactly two components are zero; Index names the
	// single nonzero one.
	AtVertex
)

// BaryClass is the classification of a barycentric triple relative to
// a face's halfedge cycle starting at FaceHalfedge(face): component i
// corresponds to the i-th halfedge's source corner.
type BaryClass struct {
	Kind  BaryKind
	Index int // meaningful for OnEdge and AtVertex
}

// classifyBarycentric implements. It rejects (returns
// InvalidFaceLocationError-wrapped error) a triple with a negative
// component or one that does not sum to one within kernel tolerance.
func classifyBarycentric(face trimesh.FaceID, b geomkernel.Barycentric) (BaryClass, error) {
	if err := geomkernel.ValidateBarycentric(b); err != nil {
		return BaryClass{}, &InvalidFaceLocationError{Face: face, Bary: b, Err: err}
	}

	comps := [3]float64{b.B0, b.B1, b.B2}
	zeroCount := 0
	zeroIdx := [3]int{}
	nonzeroIdx := 0
	for i, v := range comps {
		if math.Abs(v) <= geomkernel.Tolerance {
			zeroIdx[zeroCount] = i
			zeroCount++
		} else {
			nonzeroIdx = i
		}
	}

	switch zeroCount {
	case 0:
		return BaryClass{Kind: Internal}, nil
	case 1:
		return BaryClass{Kind: OnEdge, Index: zeroIdx[0]}, nil
	case 2:
		return BaryClass{Kind: AtVertex, Index: nonzeroIdx}, nil
	default:
		// All three zero: cannot sum to one, already rejected above.
		return BaryClass{}, &InvalidFaceLocationError{Face: face, Bary: b, Err: geomkernel.ErrBadBarycentric}
	}
}
