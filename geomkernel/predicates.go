package geomkernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ValidateBarycentric checks that b's components sum to one (within
// Tolerance) and that none is negative beyond Tolerance. It does not
// classify the triple (see package geodesic's barycentric classifier);
// it only rejects inputs the rest of the kernel cannot handle safely.
func ValidateBarycentric(b Barycentric) error {
	if b.B0 < -Tolerance || b.B1 < -Tolerance || b.B2 < -Tolerance {
		return ErrBadBarycentric
	}
	if !floats.EqualWithinAbs(b.B0+b.B1+b.B2, 1, Tolerance) {
		return ErrBadBarycentric
	}
	return nil
}

// TriangleCornerAngle returns the interior angle (radians) of tri at
// corner index c (0, 1, or 2), via the law of cosines on the triangle's
// three 3D edge lengths. Used to test the saddle-vertex predicate: a
// vertex is a saddle iff the sum of its incident faces' corner angles
// at that vertex exceeds 2*pi.
func TriangleCornerAngle(tri Triangle3, c int) float64 {
	var p, q, r Point3
	switch c {
	case 0:
		p, q, r = tri.P0, tri.P1, tri.P2
	case 1:
		p, q, r = tri.P1, tri.P2, tri.P0
	default:
		p, q, r = tri.P2, tri.P0, tri.P1
	}
	u := q.Sub(p)
	v := r.Sub(p)
	uLen := math.Sqrt(u.Dot(u))
	vLen := math.Sqrt(v.Dot(v))
	if uLen <= Tolerance || vLen <= Tolerance {
		return 0
	}
	cosTheta := u.Dot(v) / (uLen * vLen)
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	return math.Acos(cosTheta)
}

// IsSaddleVertex reports whether the sum of a vertex's incident corner
// angles exceeds 2*pi. angleSum is computed by the caller (package
// trimesh) by summing TriangleCornerAngle over every incident face;
// this function is the kernel-side predicate boundary, split so the
// kernel need not depend on the mesh package.
func IsSaddleVertex(angleSum float64) bool {
	return angleSum > 2*math.Pi+1e-6
}
