package geodesic

import (
	"math"

	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// ShortestDistanceToVertex returns closest_at_vertex[v].distance, or
// ErrUnreachable if v was never reached by any source's propagation.
func (e *Engine) ShortestDistanceToVertex(v trimesh.VertexID) (float64, error) {
	known, dist := e.closestVertex.lookup(v)
	if !known {
		return 0, ErrUnreachable
	}
	return dist, nil
}

// ShortestDistanceToLocation scans face_occupiers[face] ascending by
// distance_from_source_to_root, finding the cone whose
// unfolded image of bary lies inside its window and return the minimum
// of d + ||I - image(bary)||, early-out once the running best is
// already no larger than the next candidate's own d (a lower bound on
// that candidate's total).
func (e *Engine) ShortestDistanceToLocation(face trimesh.FaceID, bary geomkernel.Barycentric) (float64, error) {
	_, _, dist, err := e.locateWinner(face, bary)
	return dist, err
}

// locateWinner is the shared search behind ShortestDistanceToLocation
// and path reconstruction from a face location: it additionally returns
// the winning node and the query point's image in that node's frame, so
// reconstruction does not repeat the scan.
func (e *Engine) locateWinner(face trimesh.FaceID, bary geomkernel.Barycentric) (nodeIndex, geomkernel.Point2, float64, error) {
	if _, err := classifyBarycentric(face, bary); err != nil {
		return invalidNode, geomkernel.Point2{}, 0, err
	}

	best := math.Inf(1)
	winner := invalidNode
	var winnerImage geomkernel.Point2
	for _, idx := range e.faceOccupiers[face] {
		n := e.nodes.get(idx)
		if winner != invalidNode && best <= n.distToRoot+geomkernel.Tolerance {
			break
		}
		image, ok := e.imageOfFaceLocation(n, bary)
		if !ok {
			continue
		}
		d := n.distToRoot + math.Sqrt(e.kernel.SquaredDistance2(n.sourceImage, image))
		if d < best {
			best = d
			winner = idx
			winnerImage = image
		}
	}
	if winner == invalidNode {
		return invalidNode, geomkernel.Point2{}, 0, ErrUnreachable
	}
	return winner, winnerImage, best, nil
}

// GetFaceLocation evaluates a barycentric triple directly against
// face's own 3D triangle, with no propagation lookup involved.
func (e *Engine) GetFaceLocation(face trimesh.FaceID, bary geomkernel.Barycentric) (geomkernel.Point3, error) {
	if _, err := classifyBarycentric(face, bary); err != nil {
		return geomkernel.Point3{}, err
	}
	tri := e.mesh.FaceTriangle(face)
	return e.kernel.ConstructTriangleLocation3(tri, bary), nil
}

// imageOfFaceLocation maps a query location given in face's natural
// corner order into node n's own relabeled layout frame (n.currentFace
// == face is a precondition met by every face_occupiers[face] entry),
// then reports whether the resulting image lies inside n's window.
func (e *Engine) imageOfFaceLocation(n *node, bary geomkernel.Barycentric) (geomkernel.Point2, bool) {
	k := e.mesh.HalfedgeIndexInFace(n.entryEdge)
	rb := relabelBaryForEntry(bary, k)
	image := e.kernel.ConstructTriangleLocation2(n.layoutFace, rb)
	if !pointInWindow(n.sourceImage, n.windowLeft, n.windowRight, image) {
		return geomkernel.Point2{}, false
	}
	return image, true
}

// pointInWindow reports whether p lies within the angular window swept
// from windowLeft to windowRight as seen from sourceImage, using the
// sign of the 2D cross product against each boundary ray (the same
// orientation test clipWindowToBase's rays rely on).
func pointInWindow(sourceImage, windowLeft, windowRight, p geomkernel.Point2) bool {
	vL := windowLeft.Sub(sourceImage)
	vR := windowRight.Sub(sourceImage)
	vP := p.Sub(sourceImage)

	span := vL.Cross(vR)
	if math.Abs(span) <= geomkernel.Tolerance {
		return true // degenerate (zero-width) window: treat as a match
	}

	crossLP := vL.Cross(vP)
	crossPR := vP.Cross(vR)
	if span > 0 {
		return crossLP >= -geomkernel.Tolerance && crossPR >= -geomkernel.Tolerance
	}
	return crossLP <= geomkernel.Tolerance && crossPR <= geomkernel.Tolerance
}
