package geodesic

import (
	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// relabelForEntry3 rewrites a face's natural corner order (as returned
// by Mesh.FaceTriangle, cycle-start at FaceHalfedge) into the per-node
// convention: corner 0 = source of the edge at cycle-position k,
// corner 1 = the third ("apex") corner, corner 2 = target of that edge.
func relabelForEntry3(nat geomkernel.Triangle3, k int) geomkernel.Triangle3 {
	p := [3]geomkernel.Point3{nat.P0, nat.P1, nat.P2}
	return geomkernel.Triangle3{P0: p[k%3], P1: p[(k+2)%3], P2: p[(k+1)%3]}
}

// projectEntryLayout builds the root-case layout_face for entry: the
// natural 3D triangle of entry's face, relabeled to the entry-edge
// convention, then projected flat.
func projectEntryLayout(k Kernel, m Mesh, entry trimesh.HalfedgeID) (geomkernel.Triangle2, error) {
	idx := m.HalfedgeIndexInFace(entry)
	nat3 := m.FaceTriangle(m.Face(entry))
	return k.ProjectTriangle3ToTriangle2(relabelForEntry3(nat3, idx))
}

// unfoldAcrossEdge builds an INTERVAL/child node's layout_face: the
// natural 3D triangle of childEntry's face, relabeled to the
// entry-edge convention and rigidly flattened so its entry edge shares
// the 2D images (sourceImg, targetImg) already established in the
// parent's frame.
//
// kernel.FlattenTriangle3AlongSegment2's edgeIndex-2 case is defined to
// consume (segment2.A, segment2.B) = (image of the *relabeled* tri's
// corner 2, corner 0) = (targetImg, sourceImg) and return a Triangle2
// already in corner0=source/corner1=apex/corner2=target order, so no
// further relabeling of the result is needed.
func unfoldAcrossEdge(k Kernel, m Mesh, childEntry trimesh.HalfedgeID, sourceImg, targetImg geomkernel.Point2) (geomkernel.Triangle2, error) {
	idx := m.HalfedgeIndexInFace(childEntry)
	nat3 := m.FaceTriangle(m.Face(childEntry))
	rel3 := relabelForEntry3(nat3, idx)
	return k.FlattenTriangle3AlongSegment2(rel3, 2, geomkernel.Segment2{A: targetImg, B: sourceImg})
}

// relabelBaryForEntry carries a face-root query's barycentric triple
// (given in the face's natural corner order) into the same corner 0 =
// source/1 = apex/2 = target relabeling relabelForEntry3 applies to the
// triangle itself, so ConstructTriangleLocation2(layout, ...) recovers
// the same 3D point inside a FaceSource child's relabeled layout.
func relabelBaryForEntry(b geomkernel.Barycentric, k int) geomkernel.Barycentric {
	c := [3]float64{b.B0, b.B1, b.B2}
	return geomkernel.Barycentric{B0: c[k%3], B1: c[(k+2)%3], B2: c[(k+1)%3]}
}
