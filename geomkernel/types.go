package geomkernel

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tolerance is the default absolute tolerance used by barycentric-sum,
// degenerate-triangle, and parametric-clamp comparisons throughout this
// package. It is intentionally generous (float64 geometry on meshes
// with coordinates in the 0..1e3 range loses several bits of precision
// across a handful of unfoldings).
const Tolerance = 1e-9

// Point2 is a point (or free vector) in the unfolded plane.
type Point2 struct {
	V r2.Vec
}

// NewPoint2 builds a Point2 from Cartesian coordinates.
func NewPoint2(x, y float64) Point2 { return Point2{V: r2.Vec{X: x, Y: y}} }

// X returns the point's first coordinate.
func (p Point2) X() float64 { return p.V.X }

// Y returns the point's second coordinate.
func (p Point2) Y() float64 { return p.V.Y }

// Add returns p+q.
func (p Point2) Add(q Point2) Point2 { return Point2{V: r2.Add(p.V, q.V)} }

// Sub returns p-q.
func (p Point2) Sub(q Point2) Point2 { return Point2{V: r2.Sub(p.V, q.V)} }

// Scale returns f*p.
func (p Point2) Scale(f float64) Point2 { return Point2{V: r2.Scale(f, p.V)} }

// Dot returns the dot product of p and q.
func (p Point2) Dot(q Point2) float64 { return r2.Dot(p.V, q.V) }

// Cross returns the scalar 2D cross product (z-component of p x q).
func (p Point2) Cross(q Point2) float64 { return p.V.X*q.V.Y - p.V.Y*q.V.X }

// Point3 is a point (or free vector) in 3D, on or off the mesh surface.
type Point3 struct {
	V r3.Vec
}

// NewPoint3 builds a Point3 from Cartesian coordinates.
func NewPoint3(x, y, z float64) Point3 { return Point3{V: r3.Vec{X: x, Y: y, Z: z}} }

// X returns the point's first coordinate.
func (p Point3) X() float64 { return p.V.X }

// Y returns the point's second coordinate.
func (p Point3) Y() float64 { return p.V.Y }

// Z returns the point's third coordinate.
func (p Point3) Z() float64 { return p.V.Z }

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 { return Point3{V: r3.Add(p.V, q.V)} }

// Sub returns p-q.
func (p Point3) Sub(q Point3) Point3 { return Point3{V: r3.Sub(p.V, q.V)} }

// Scale returns f*p.
func (p Point3) Scale(f float64) Point3 { return Point3{V: r3.Scale(f, p.V)} }

// Dot returns the dot product of p and q.
func (p Point3) Dot(q Point3) float64 { return r3.Dot(p.V, q.V) }

// Cross returns the 3D cross product p x q.
func (p Point3) Cross(q Point3) Point3 { return Point3{V: r3.Cross(p.V, q.V)} }

// Segment2 is the closed segment [A, B] in the unfolded plane.
type Segment2 struct {
	A, B Point2
}

// Ray2 is the ray starting at Origin and passing through Through.
type Ray2 struct {
	Origin, Through Point2
}

// Direction returns the (unnormalized) direction vector of the ray.
func (r Ray2) Direction() Point2 { return r.Through.Sub(r.Origin) }

// Line2 is the infinite line through A and B.
type Line2 struct {
	A, B Point2
}

// Triangle2 is a triangle in the unfolded plane with corners in the
// same cyclic order as the Triangle3 it was produced from.
type Triangle2 struct {
	P0, P1, P2 Point2
}

// Triangle3 is a triangle embedded in 3D, corners in halfedge-cycle order.
type Triangle3 struct {
	P0, P1, P2 Point3
}

// Barycentric is a convex-combination triple over a triangle's three
// corners, in the same corner order as the triangle it locates.
type Barycentric struct {
	B0, B1, B2 float64
}

// At2 evaluates the barycentric combination against a 2D triangle.
func (b Barycentric) At2(t Triangle2) Point2 {
	return t.P0.Scale(b.B0).Add(t.P1.Scale(b.B1)).Add(t.P2.Scale(b.B2))
}

// At3 evaluates the barycentric combination against a 3D triangle.
func (b Barycentric) At3(t Triangle3) Point3 {
	return t.P0.Scale(b.B0).Add(t.P1.Scale(b.B1)).Add(t.P2.Scale(b.B2))
}
