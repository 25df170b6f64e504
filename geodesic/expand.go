package geodesic

import (
	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// clipWindowToBase intersects base (the crossed edge's own 2D segment)
// with the two rays from sourceImage
// through windowLeft/windowRight, and return the portion of base lying
// inside the cone. The two endpoints are returned ordered along base
// (a reversed pair is swapped). ok is false when the clip collapses to
// an empty interval, in which case the child carries no geometry and
// must be dropped.
func clipWindowToBase(k Kernel, sourceImage, windowLeft, windowRight geomkernel.Point2, base geomkernel.Segment2) (left, right geomkernel.Point2, ok bool) {
	rayL := geomkernel.Ray2{Origin: sourceImage, Through: windowLeft}
	rayR := geomkernel.Ray2{Origin: sourceImage, Through: windowRight}

	left, right = base.A, base.B
	if pt, err := k.IntersectSegmentRay(base, rayL); err == nil && pt.Kind == geomkernel.PointResult {
		left = pt.Point
	}
	if pt, err := k.IntersectSegmentRay(base, rayR); err == nil && pt.Kind == geomkernel.PointResult {
		right = pt.Point
	}

	tL := k.ParametricDistanceAlongSegment2(base.A, base.B, left)
	tR := k.ParametricDistanceAlongSegment2(base.A, base.B, right)
	if tL > tR {
		left, right = right, left
		tL, tR = tR, tL
	}
	if tR-tL <= geomkernel.Tolerance {
		return geomkernel.Point2{}, geomkernel.Point2{}, false
	}
	return left, right, true
}

// expandLeftChild builds the left child: crossedEdge =
// opposite(next(entry_edge)), base segment = (apex image, target image).
func (e *Engine) expandLeftChild(parent nodeIndex) error {
	n := e.nodes.get(parent)
	crossed := n.leftChildEdgeOf(e.mesh)
	return e.expandChild(parent, crossed, n.layoutFace.P1, n.layoutFace.P2, e.mesh.Source(n.entryEdge), true)
}

// expandRightChild builds the right child: crossedEdge =
// opposite(next(next(entry_edge))), base segment = (source image, apex image).
func (e *Engine) expandRightChild(parent nodeIndex) error {
	n := e.nodes.get(parent)
	crossed := n.rightChildEdgeOf(e.mesh)
	return e.expandChild(parent, crossed, n.layoutFace.P0, n.layoutFace.P1, e.mesh.Target(n.entryEdge), false)
}

// expandChild is the shared body of expandLeftChild/expandRightChild.
// opposingCornerVertex/opposingCornerImage is v2: the parent
// face corner not touching crossedEdge.
func (e *Engine) expandChild(parent nodeIndex, crossed trimesh.HalfedgeID, baseA, baseB geomkernel.Point2, opposingCornerVertex trimesh.VertexID, isLeft bool) error {
	n := e.nodes.get(parent)

	if e.mesh.Face(crossed) == trimesh.NullFace {
		return nil // a child is not created across a boundary (mesh) edge
	}

	base := geomkernel.Segment2{A: baseA, B: baseB}
	clipLeft, clipRight, ok := clipWindowToBase(e.kernel, n.sourceImage, n.windowLeft, n.windowRight, base)
	if !ok {
		return nil
	}

	var opposingImage geomkernel.Point2
	if isLeft {
		opposingImage = n.layoutFace.P0
	} else {
		opposingImage = n.layoutFace.P2
	}
	if e.filterDominated(n, crossed, opposingCornerVertex, opposingImage, clipLeft, clipRight) {
		return nil
	}

	childLayout, err := unfoldAcrossEdge(e.kernel, e.mesh, crossed, base.A, base.B)
	if err != nil {
		return err
	}

	child := e.nodes.alloc(node{
		kind:         Interval,
		entryEdge:    crossed,
		currentFace:  e.mesh.Face(crossed),
		layoutFace:   childLayout,
		sourceImage:  n.sourceImage,
		distToRoot:   n.distToRoot,
		windowLeft:   clipLeft,
		windowRight:  clipRight,
		parent:       parent,
		leftChild:    invalidNode,
		rightChild:   invalidNode,
		pendingLeft:  invalidEvent,
		pendingRight: invalidEvent,
		pendingMiddle: invalidEvent,
		level:        n.level + 1,
	})
	// n may be stale: alloc can reallocate the node arena's backing
	// slice, so re-fetch the parent by index before writing through it.
	n = e.nodes.get(parent)
	if isLeft {
		n.leftChild = child
	} else {
		n.rightChild = child
	}
	return e.processNode(child, false)
}
