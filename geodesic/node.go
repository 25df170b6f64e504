package geodesic

import (
	"math"

	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// nodeIndex is a stable index into Engine.nodes. Indices are never
// reused within one ComputeShortestPaths call, so a nodeIndex remains
// valid (though possibly "not alive") until the next call resets the
// arena and starts numbering from zero again, matching Design Notes 9's "arena + stable indices"
// prescription for breaking the node<->event cyclic back-pointer
// without shared ownership.
type nodeIndex int32

// invalidNode is the sentinel "no node" reference.
const invalidNode nodeIndex = -1

// eventIndex is a stable index into Engine.events. See nodeIndex.
type eventIndex int32

// invalidEvent is the sentinel "no event" reference.
const invalidEvent eventIndex = -1

// node is one cone-tree node. Unexported: callers interact
// with the tree only through Engine's query/visitor surface.
type node struct {
	kind NodeKind

	entryEdge   trimesh.HalfedgeID
	currentFace trimesh.FaceID

	layoutFace   geomkernel.Triangle2
	sourceImage  geomkernel.Point2
	distToRoot   float64 // distance_from_source_to_root
	windowLeft   geomkernel.Point2
	windowRight  geomkernel.Point2
	storedBary   geomkernel.Barycentric // meaningful for FaceSource terminal nodes

	parent         nodeIndex
	leftChild      nodeIndex
	rightChild     nodeIndex
	middleChildren []nodeIndex

	pendingLeft   eventIndex
	pendingRight  eventIndex
	pendingMiddle eventIndex

	level int
	alive bool
}

// targetVertexApex is the triangle corner opposite entryEdge, i.e. the
// apex of currentFace as seen from entryEdge: target(next(entryEdge)).
func (n *node) targetVertexApex(m Mesh) trimesh.VertexID {
	return m.Source(m.Next(m.Next(n.entryEdge)))
}

// leftChildEdgeOf is opposite(next(entryEdge)).
func (n *node) leftChildEdgeOf(m Mesh) trimesh.HalfedgeID {
	return m.Opposite(m.Next(n.entryEdge))
}

// rightChildEdgeOf is opposite(next(next(entryEdge))).
func (n *node) rightChildEdgeOf(m Mesh) trimesh.HalfedgeID {
	return m.Opposite(m.Next(m.Next(n.entryEdge)))
}

// distanceFromTargetToRoot is distToRoot + ||sourceImage - image(targetVertex)||.
// The apex's 2D image is layoutFace.P1 by the corner-0/1/2 convention.
func (n *node) distanceFromTargetToRoot(k Kernel) float64 {
	d2 := k.SquaredDistance2(n.sourceImage, n.layoutFace.P1)
	return n.distToRoot + math.Sqrt(d2)
}

// nodeArena owns all cone-tree nodes created during one
// ComputeShortestPaths call.
type nodeArena struct {
	nodes []node
}

func (a *nodeArena) reset() { a.nodes = a.nodes[:0] }

func (a *nodeArena) alloc(n node) nodeIndex {
	n.alive = true
	idx := nodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return idx
}

func (a *nodeArena) get(i nodeIndex) *node { return &a.nodes[i] }

// destroy marks n and, recursively, every descendant as not alive, and
// cancels every pending event referenced anywhere in the subtree.
func (a *nodeArena) destroy(i nodeIndex, events *eventArena) {
	if i == invalidNode || !a.nodes[i].alive {
		return
	}
	n := &a.nodes[i]
	n.alive = false
	events.cancel(n.pendingLeft)
	events.cancel(n.pendingRight)
	events.cancel(n.pendingMiddle)
	n.pendingLeft, n.pendingRight, n.pendingMiddle = invalidEvent, invalidEvent, invalidEvent

	if n.leftChild != invalidNode {
		a.destroy(n.leftChild, events)
		n.leftChild = invalidNode
	}
	if n.rightChild != invalidNode {
		a.destroy(n.rightChild, events)
		n.rightChild = invalidNode
	}
	for _, c := range n.middleChildren {
		a.destroy(c, events)
	}
	n.middleChildren = nil
}
