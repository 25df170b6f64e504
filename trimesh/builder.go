package trimesh

import (
	"math"

	"github.com/katalvlaran/geocut/geomkernel"
)

// Canonical mesh fixtures shared by package geodesic's test suite,
// adapted from builder.PlatonicSolid's deterministic vertex/edge
// emission scheme (there: abstract combinatorial shells; here:
// embedded 3D triangulations with outward-oriented faces).

// Tetrahedron builds the unit tetrahedron: A=(0,0,0), B=(1,0,0),
// C=(0,1,0), D=(0,0,1), vertex indices 0..3 in that order, a closed
// (boundary-free) 4-face mesh.
func Tetrahedron() (*Mesh, error) {
	points := []geomkernel.Point3{
		geomkernel.NewPoint3(0, 0, 0), // A
		geomkernel.NewPoint3(1, 0, 0), // B
		geomkernel.NewPoint3(0, 1, 0), // C
		geomkernel.NewPoint3(0, 0, 1), // D
	}
	triangles := [][3]int{
		{1, 2, 3}, // BCD, opposite A
		{0, 3, 2}, // ADC, opposite B
		{0, 1, 3}, // ABD, opposite C
		{0, 2, 1}, // ACB, opposite D
	}
	return NewFromTriangles(points, triangles)
}

// FlatSquare builds the two-triangle unit square: A=(0,0,0),
// B=(1,0,0), C=(1,1,0), D=(0,1,0), split along diagonal A-C, boundary
// on all four outer edges.
func FlatSquare() (*Mesh, error) {
	points := []geomkernel.Point3{
		geomkernel.NewPoint3(0, 0, 0), // A
		geomkernel.NewPoint3(1, 0, 0), // B
		geomkernel.NewPoint3(1, 1, 0), // C
		geomkernel.NewPoint3(0, 1, 0), // D
	}
	triangles := [][3]int{
		{0, 1, 2}, // ABC
		{0, 2, 3}, // ACD
	}
	return NewFromTriangles(points, triangles)
}

// Cube builds the unit cube's surface as 8 vertices and 12
// outward-oriented triangles (2 per face), closed (boundary-free).
func Cube() (*Mesh, error) {
	points := []geomkernel.Point3{
		geomkernel.NewPoint3(0, 0, 0), // 0
		geomkernel.NewPoint3(1, 0, 0), // 1
		geomkernel.NewPoint3(1, 1, 0), // 2
		geomkernel.NewPoint3(0, 1, 0), // 3
		geomkernel.NewPoint3(0, 0, 1), // 4
		geomkernel.NewPoint3(1, 0, 1), // 5
		geomkernel.NewPoint3(1, 1, 1), // 6
		geomkernel.NewPoint3(0, 1, 1), // 7
	}
	triangles := [][3]int{
		{0, 3, 2}, {0, 2, 1}, // bottom (z=0)
		{4, 5, 6}, {4, 6, 7}, // top (z=1)
		{0, 1, 5}, {0, 5, 4}, // front (y=0)
		{3, 7, 6}, {3, 6, 2}, // back (y=1)
		{0, 4, 7}, {0, 7, 3}, // left (x=0)
		{1, 2, 6}, {1, 6, 5}, // right (x=1)
	}
	return NewFromTriangles(points, triangles)
}

// OpenDisk builds a flat hexagonal fan (a center vertex plus a ring of
// six): a 6-triangle mesh whose ring vertices (indices 1..6) are
// boundary vertices, and whose center (index 0) is an ordinary flat
// interior vertex (angle sum exactly 2*pi).
func OpenDisk() (*Mesh, error) {
	points := make([]geomkernel.Point3, 0, 7)
	points = append(points, geomkernel.NewPoint3(0, 0, 0))
	for k := 0; k < 6; k++ {
		theta := float64(k) * math.Pi / 3
		points = append(points, geomkernel.NewPoint3(math.Cos(theta), math.Sin(theta), 0))
	}

	triangles := make([][3]int, 0, 6)
	for k := 0; k < 6; k++ {
		a := 1 + k
		b := 1 + (k+1)%6
		triangles = append(triangles, [3]int{0, a, b})
	}
	return NewFromTriangles(points, triangles)
}

// SaddleCone builds an 8-triangle fan whose center vertex (index 0) is
// a non-convex saddle: ring vertices alternate z=+1/-1, which widens
// each wedge's true 3D angle well past its 45-degree planar spacing, so
// the incident angle sum exceeds 2*pi. Ring vertices (indices 1..8) are boundary.
func SaddleCone() (*Mesh, error) {
	const n = 8
	points := make([]geomkernel.Point3, 0, n+1)
	points = append(points, geomkernel.NewPoint3(0, 0, 0))
	for k := 0; k < n; k++ {
		theta := float64(k) * 2 * math.Pi / n
		z := 1.0
		if k%2 == 1 {
			z = -1.0
		}
		points = append(points, geomkernel.NewPoint3(math.Cos(theta), math.Sin(theta), z))
	}

	triangles := make([][3]int, 0, n)
	for k := 0; k < n; k++ {
		a := 1 + k
		b := 1 + (k+1)%n
		triangles = append(triangles, [3]int{0, a, b})
	}
	return NewFromTriangles(points, triangles)
}
