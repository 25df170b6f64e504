package geodesic

import (
	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// ShortestPathToVertex implements/6's
// shortest_path_sequence(v, visitor): reconstruct the feature-level path
// from v back to its source.
func (e *Engine) ShortestPathToVertex(v trimesh.VertexID, visitor Visitor) error {
	known, _ := e.closestVertex.lookup(v)
	if !known {
		return ErrUnreachable
	}
	owner := e.closestVertex[v].node
	n := e.nodes.get(owner)

	switch n.kind {
	case Root:
		// v is itself a vertex-rooted source: distance zero, no edges
		// crossed.
		visitor.OnVertex(v)
		return nil
	case FaceSource:
		// v is one of the source face's own corners: a single straight
		// shot, no edge crossed along the way, so v is followed directly
		// by the terminal source location.
		visitor.OnVertex(v)
		visitor.OnFace(n.currentFace, n.storedBary)
		return nil
	case VertexSource:
		// owner's own apex already equals v; reconstruct's VERTEX_SOURCE
		// branch emits it on the first iteration.
		return e.reconstruct(owner, n.sourceImage, visitor)
	default:
		// Interval or EDGE_SOURCE: v is owner's apex but owner itself
		// does not natively emit it, so emit it once up front before
		// walking owner's own entry-edge crossing.
		visitor.OnVertex(v)
		return e.reconstruct(owner, n.layoutFace.P1, visitor)
	}
}

// ShortestPathToLocation implements shortest_path_sequence((face, bary), visitor).
func (e *Engine) ShortestPathToLocation(face trimesh.FaceID, bary geomkernel.Barycentric, visitor Visitor) error {
	winner, image, _, err := e.locateWinner(face, bary)
	if err != nil {
		return err
	}
	return e.reconstruct(winner, image, visitor)
}

// reconstruct implements walk: starting at start node/image,
// follow parent links, turning each INTERVAL/EDGE_SOURCE crossing of
// entry_segment into an edge(halfedge, t) event, each VERTEX_SOURCE into
// a vertex(v) event, and stopping at a FACE_SOURCE's terminal
// face(face, stored_bary) event or at the root.
func (e *Engine) reconstruct(start nodeIndex, startImage geomkernel.Point2, visitor Visitor) error {
	idx := start
	loc := startImage

	for {
		n := e.nodes.get(idx)
		switch n.kind {
		case FaceSource:
			visitor.OnFace(n.currentFace, n.storedBary)
			return nil

		case VertexSource:
			v := n.targetVertexApex(e.mesh)
			visitor.OnVertex(v)
			parentN := e.nodes.get(n.parent)
			if parentN.kind == Root {
				return nil
			}
			loc = parentN.layoutFace.P1
			idx = n.parent

		case Interval, EdgeSource:
			entrySeg := geomkernel.Segment2{A: n.layoutFace.P0, B: n.layoutFace.P2}
			line := geomkernel.Line2{A: n.sourceImage, B: loc}
			res, err := e.kernel.IntersectSegmentLine(entrySeg, line)
			if err != nil || res.Kind != geomkernel.PointResult {
				return ErrDegeneratePropagation
			}
			t := e.kernel.ParametricDistanceAlongSegment2(entrySeg.A, entrySeg.B, res.Point)
			visitor.OnEdge(n.entryEdge, t)

			parentN := e.nodes.get(n.parent)
			if parentN.kind == Root {
				return nil
			}
			aImg, bImg := e.crossedEdgeBaseImages(parentN, n.entryEdge)
			loc = aImg.Add(bImg.Sub(aImg).Scale(t))
			idx = n.parent

		default:
			return ErrDegeneratePropagation
		}
	}
}

// pointVisitor decorates a Visitor with 3D coordinates: edge
// crossings linearly blend the edge's two endpoint points by t, vertex
// stops use the vertex's own point, and face terminations evaluate the
// barycentric location in 3D.
type pointVisitor struct {
	mesh Mesh
	sink func(p geomkernel.Point3)
}

func (p *pointVisitor) OnEdge(h trimesh.HalfedgeID, t float64) {
	a := p.mesh.VertexPoint(p.mesh.Source(h))
	b := p.mesh.VertexPoint(p.mesh.Target(h))
	p.sink(a.Add(b.Sub(a).Scale(t)))
}

func (p *pointVisitor) OnVertex(v trimesh.VertexID) {
	p.sink(p.mesh.VertexPoint(v))
}

func (p *pointVisitor) OnFace(f trimesh.FaceID, b geomkernel.Barycentric) {
	p.sink(b.At3(p.mesh.FaceTriangle(f)))
}

// ShortestPathPointsToVertex implements shortest_path_points(v, visitor):
// the 3D-polyline decorator over ShortestPathToVertex. sink receives
// each reconstructed point in order from v back toward its source.
func (e *Engine) ShortestPathPointsToVertex(v trimesh.VertexID, sink func(geomkernel.Point3)) error {
	return e.ShortestPathToVertex(v, &pointVisitor{mesh: e.mesh, sink: sink})
}

// ShortestPathPointsToLocation walks the 3D path to the winning
// occupier of (face, bary), emitting each crossing point to sink.
func (e *Engine) ShortestPathPointsToLocation(face trimesh.FaceID, bary geomkernel.Barycentric, sink func(geomkernel.Point3)) error {
	return e.ShortestPathToLocation(face, bary, &pointVisitor{mesh: e.mesh, sink: sink})
}
