package geodesic

import (
	"context"

	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// Kernel is the numeric capability the engine requires.
// geomkernel.EuclideanKernel is the default implementation; a caller
// with an exact-arithmetic kernel may supply an alternate one
// satisfying the same shape.
type Kernel interface {
	ProjectTriangle3ToTriangle2(tri geomkernel.Triangle3) (geomkernel.Triangle2, error)
	FlattenTriangle3AlongSegment2(tri geomkernel.Triangle3, edgeIndex int, seg geomkernel.Segment2) (geomkernel.Triangle2, error)
	ConstructTriangleLocation2(tri geomkernel.Triangle2, b geomkernel.Barycentric) geomkernel.Point2
	ConstructTriangleLocation3(tri geomkernel.Triangle3, b geomkernel.Barycentric) geomkernel.Point3
	IntersectSegmentRay(seg geomkernel.Segment2, ray geomkernel.Ray2) (geomkernel.IntersectResult2, error)
	IntersectSegmentLine(seg geomkernel.Segment2, line geomkernel.Line2) (geomkernel.IntersectResult2, error)
	SquaredDistance2(p, q geomkernel.Point2) float64
	ParametricDistanceAlongSegment2(a, b, p geomkernel.Point2) float64
	CompareRelativeIntersectionAlongSegment2(seg1 geomkernel.Segment2, line1 geomkernel.Line2, seg2 geomkernel.Segment2, line2 geomkernel.Line2) geomkernel.RelativeOrder
}

// Mesh is the directed-halfedge capability the engine requires.
// *trimesh.Mesh satisfies it directly.
type Mesh interface {
	VertexCount() int
	FaceCount() int
	HalfedgeCount() int
	Next(h trimesh.HalfedgeID) trimesh.HalfedgeID
	Opposite(h trimesh.HalfedgeID) trimesh.HalfedgeID
	Source(h trimesh.HalfedgeID) trimesh.VertexID
	Target(h trimesh.HalfedgeID) trimesh.VertexID
	Face(h trimesh.HalfedgeID) trimesh.FaceID
	FaceHalfedge(f trimesh.FaceID) trimesh.HalfedgeID
	HalfedgeIndexInFace(h trimesh.HalfedgeID) int
	FaceTriangle(f trimesh.FaceID) geomkernel.Triangle3
	VertexPoint(v trimesh.VertexID) geomkernel.Point3
	OutgoingRing(v trimesh.VertexID) []trimesh.HalfedgeID
	IsBoundaryVertex(v trimesh.VertexID) bool
	IsSaddleVertex(v trimesh.VertexID) bool
}

// Location is a face location: a face handle plus a barycentric triple
// summing to one over its three corners.
type Location struct {
	Face trimesh.FaceID
	Bary geomkernel.Barycentric
}

// Options configures a single ComputeShortestPaths invocation.
type Options struct {
	// Ctx is checked cooperatively at the top of the main event loop
	// and the root-expansion loop; a long construction over a very
	// large mesh can be aborted via cancellation or deadline, the same
	// convention as flow.FlowOptions.Ctx.
	Ctx context.Context

	// FaceCountHint is accepted for callers that know the mesh size in
	// advance. The engine does not read it: every per-face,
	// per-vertex and per-halfedge table is sized from the mesh's own
	// counts on each ComputeShortestPaths call.
	FaceCountHint int
}

// DefaultOptions returns production-safe defaults: a background
// context and no preallocation hint, matching flow.DefaultOptions().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

func (o Options) normalize() Options {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	return o
}

// NodeKind classifies a cone-tree node.
type NodeKind int

const (
	// Root is the synthetic parent of a source's initial fan/pair of
	// children; it holds no geometric cone of its own.
	Root NodeKind = iota
	// FaceSource is an initial child of a face root.
	FaceSource
	// EdgeSource is an initial child of an edge root.
	EdgeSource
	// VertexSource is a pseudo-source fan child (vertex root, or a
	// saddle/boundary vertex reached during propagation).
	VertexSource
	// Interval is an ordinary child produced by unfolding across an
	// edge.
	Interval
)

// String renders a NodeKind for diagnostics.
func (k NodeKind) String() string {
	switch k {
	case Root:
		return "ROOT"
	case FaceSource:
		return "FACE_SOURCE"
	case EdgeSource:
		return "EDGE_SOURCE"
	case VertexSource:
		return "VERTEX_SOURCE"
	case Interval:
		return "INTERVAL"
	default:
		return "UNKNOWN"
	}
}

// PathEventKind distinguishes path-reconstruction events delivered to
// a Visitor.
type PathEventKind int

const (
	// EdgeCrossing is an edge(halfedge, t) event.
	EdgeCrossing PathEventKind = iota
	// VertexStop is a vertex(v) event.
	VertexStop
	// FaceTermination is the terminal face(face, bary) event.
	FaceTermination
)

// PathEvent is one step of a reconstructed geodesic path, emitted in
// order from the query point back toward the source.
type PathEvent struct {
	Kind     PathEventKind
	Halfedge trimesh.HalfedgeID // valid when Kind == EdgeCrossing
	T        float64            // valid when Kind == EdgeCrossing, in [0,1]
	Vertex   trimesh.VertexID   // valid when Kind == VertexStop
	Face     trimesh.FaceID     // valid when Kind == FaceTermination
	Bary     geomkernel.Barycentric
}

// Visitor receives a reconstructed geodesic path's feature sequence.
type Visitor interface {
	OnEdge(h trimesh.HalfedgeID, t float64)
	OnVertex(v trimesh.VertexID)
	OnFace(f trimesh.FaceID, b geomkernel.Barycentric)
}
