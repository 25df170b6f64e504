package geomkernel

import "math"

// ProjectTriangle3ToTriangle2 projects a 3D triangle into its own
// supporting plane, laying corner 0 at the 2D origin and corner 1 on
// the positive X axis. This is the base case used to seed a face-root
// cone: the projection has no "parent" triangle to share an edge image
// with.
//
// Grounded on other_examples/8113d765_zacharyelston-go-unfold (flatten
// a 3D face into a local 2D frame before walking its neighbors).
func ProjectTriangle3ToTriangle2(tri Triangle3) (Triangle2, error) {
	e01 := tri.P1.Sub(tri.P0)
	e02 := tri.P2.Sub(tri.P0)
	len01 := math.Sqrt(e01.Dot(e01))
	if len01 <= Tolerance {
		return Triangle2{}, ErrDegenerateTriangle
	}

	ux := e01.Scale(1 / len01)
	normal := ux.Cross(e02)
	normLen := math.Sqrt(normal.Dot(normal))
	if normLen <= Tolerance {
		return Triangle2{}, ErrDegenerateTriangle
	}
	uz := normal.Scale(1 / normLen)
	uy := uz.Cross(ux)

	p0 := NewPoint2(0, 0)
	p1 := NewPoint2(len01, 0)
	p2 := NewPoint2(e02.Dot(ux), e02.Dot(uy))
	return Triangle2{P0: p0, P1: p1, P2: p2}, nil
}

// FlattenTriangle3AlongSegment2 unfolds a 3D triangle into the plane
// already containing segment2, which is the 2D image of edgeIndex's
// endpoints. edgeIndex selects which edge of tri (0: P0-P1, 1: P1-P2,
// 2: P2-P0) is identified with segment2; the function rotates the
// triangle rigidly about that shared edge so the remaining corner
// lands on the side of segment2 opposite the caller's existing layout,
// matching a face-adjacency rotation-about-shared-edge technique
// (BuildFaceAdjacency + per-edge rotation).
//
// The two endpoints of segment2 are assumed already in the same
// winding order as edgeIndex's two endpoints (segment2.A corresponds
// to the edge's source corner, segment2.B to its target corner); this
// matches how geodesic lays out entry edges (corner 0 = source, corner
// 2 = target).
func FlattenTriangle3AlongSegment2(tri Triangle3, edgeIndex int, segment2 Segment2) (Triangle2, error) {
	var a3, b3, c3 Point3
	switch edgeIndex {
	case 0:
		a3, b3, c3 = tri.P0, tri.P1, tri.P2
	case 1:
		a3, b3, c3 = tri.P1, tri.P2, tri.P0
	case 2:
		a3, b3, c3 = tri.P2, tri.P0, tri.P1
	default:
		a3, b3, c3 = tri.P0, tri.P1, tri.P2
	}

	edge3 := b3.Sub(a3)
	edgeLen3 := math.Sqrt(edge3.Dot(edge3))
	if edgeLen3 <= Tolerance {
		return Triangle2{}, ErrDegenerateTriangle
	}

	edge2 := segment2.B.Sub(segment2.A)
	edgeLen2 := math.Sqrt(edge2.Dot(edge2))
	if edgeLen2 <= Tolerance {
		return Triangle2{}, ErrDegenerateTriangle
	}
	ux := edge2.Scale(1 / edgeLen2)
	// perpendicular, rotated 90 degrees counter-clockwise
	uy := NewPoint2(-ux.Y(), ux.X())

	// Project c3 into the (edge3-direction, perpendicular) frame of the
	// original 3D triangle, then re-express those same scalar offsets
	// in the 2D frame anchored at segment2.
	e3 := edge3.Scale(1 / edgeLen3)
	ac3 := c3.Sub(a3)
	alongLen := ac3.Dot(e3)
	perp3 := ac3.Sub(e3.Scale(alongLen))
	perpLen := math.Sqrt(perp3.Dot(perp3))

	along2 := alongLen / edgeLen3 * edgeLen2
	perp2 := perpLen / edgeLen3 * edgeLen2

	c2 := segment2.A.Add(ux.Scale(along2)).Add(uy.Scale(perp2))

	switch edgeIndex {
	case 0:
		return Triangle2{P0: segment2.A, P1: segment2.B, P2: c2}, nil
	case 1:
		return Triangle2{P0: c2, P1: segment2.A, P2: segment2.B}, nil
	case 2:
		return Triangle2{P0: segment2.B, P1: c2, P2: segment2.A}, nil
	default:
		return Triangle2{P0: segment2.A, P1: segment2.B, P2: c2}, nil
	}
}

// ConstructTriangleLocation2 evaluates bary against tri2.
func ConstructTriangleLocation2(tri Triangle2, bary Barycentric) Point2 { return bary.At2(tri) }

// ConstructTriangleLocation3 evaluates bary against tri3.
func ConstructTriangleLocation3(tri Triangle3, bary Barycentric) Point3 { return bary.At3(tri) }
