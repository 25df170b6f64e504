package geodesic

import (
	"math"

	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// dominanceCheck is one of the three Xin-Wang certificates.
type dominanceCheck struct {
	vertex trimesh.VertexID
	image  geomkernel.Point2
	probe  geomkernel.Point2
}

// filterDominated implements the Xin-Wang distance filter. crossedEdge
// is the child's prospective entry edge (left_child_edge or
// right_child_edge); v1 := source(crossedEdge), v3 := target(crossedEdge)
// uniformly for both sides (their 3D identities already differ between
// left and right children, so no additional "roles swap" step is
// needed; see DESIGN.md for the reasoning). v2 is the parent face's
// corner not touching crossedEdge. a, b are the clipped window
// endpoints, a nearer crossedEdge's source, b nearer its target.
func (e *Engine) filterDominated(n *node, crossedEdge trimesh.HalfedgeID, v2 trimesh.VertexID, v2Image geomkernel.Point2, a, b geomkernel.Point2) bool {
	v1 := e.mesh.Source(crossedEdge)
	v3 := e.mesh.Target(crossedEdge)

	checks := [3]dominanceCheck{
		{vertex: v1, image: a /* placeholder, overwritten below */, probe: b},
		{vertex: v2, image: v2Image, probe: a},
		{vertex: v3, image: b /* placeholder, overwritten below */, probe: a},
	}
	// v1's own image is the base segment's source-side endpoint before
	// clipping narrowed it; reuse the uniform base segment directly.
	baseA, baseB := e.crossedEdgeBaseImages(n, crossedEdge)
	checks[0].image = baseA
	checks[2].image = baseB

	d := n.distToRoot
	i := n.sourceImage
	for _, c := range checks {
		known, dist := e.closestVertex.lookup(c.vertex)
		if !known {
			continue
		}
		lhs := d + math.Sqrt(geomkernel.ComputeSquaredDistance2(i, c.probe))
		rhs := dist + math.Sqrt(geomkernel.ComputeSquaredDistance2(c.image, c.probe))
		if lhs > rhs+geomkernel.Tolerance {
			return true
		}
	}
	return false
}

// crossedEdgeBaseImages returns the 2D images of source(crossedEdge) and
// target(crossedEdge) in n's own layout frame, i.e. the unclipped base
// segment endpoints for whichever side crossedEdge is.
func (e *Engine) crossedEdgeBaseImages(n *node, crossedEdge trimesh.HalfedgeID) (geomkernel.Point2, geomkernel.Point2) {
	if crossedEdge == n.leftChildEdgeOf(e.mesh) {
		return n.layoutFace.P1, n.layoutFace.P2
	}
	return n.layoutFace.P0, n.layoutFace.P1
}
