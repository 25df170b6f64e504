package geodesic

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// occupierEntry is one slot of Engine.occupier, keyed by halfedge: the
// node whose window currently owns propagation across that halfedge.
type occupierEntry struct {
	set      bool
	node     nodeIndex
	distance float64
}

// vertexEntry is one slot of Engine.closestVertex, keyed by vertex.
type vertexEntry struct {
	set      bool
	node     nodeIndex
	distance float64
}

// vertexTable is Engine.closestVertex's storage type; it exists solely
// to carry the lookup helper used by filter.go.
type vertexTable []vertexEntry

func (s vertexTable) lookup(v trimesh.VertexID) (bool, float64) {
	e := s[v]
	return e.set, e.distance
}

// Engine owns the cone-tree construction and answers queries against
// it, mirroring a runner-struct pattern: a single mutable struct built
// fresh per ComputeShortestPaths call and driven by one synchronous
// main loop with single-threaded cooperative execution.
type Engine struct {
	mesh   Mesh
	kernel Kernel
	opts   Options

	nodes  nodeArena
	events eventArena
	queue  *eventQueue

	occupier       []occupierEntry
	closestVertex  vertexTable
	isPseudoSource []bool

	roots         []nodeIndex
	faceOccupiers [][]nodeIndex
}

// NewEngine constructs an engine bound to mesh and kernel for
// repeated ComputeShortestPaths calls; per-vertex/per-halfedge index
// tables are derived internally from mesh's own
// VertexCount/FaceCount/HalfedgeCount rather than passed separately,
// since *trimesh.Mesh already owns stable indices.
func NewEngine(mesh Mesh, kernel Kernel) *Engine {
	return &Engine{mesh: mesh, kernel: kernel}
}

// ComputeShortestPaths builds the cone tree from sources.
// Calling it again on the same Engine resets all internal state first.
func (e *Engine) ComputeShortestPaths(sources []Location, opts Options) error {
	if err := e.validateMesh(); err != nil {
		return err
	}

	e.opts = opts.normalize()
	e.reset()

	for _, s := range sources {
		if err := e.opts.Ctx.Err(); err != nil {
			return err
		}
		if err := e.expandRoot(s.Face, s.Bary); err != nil {
			return err
		}
	}

	for {
		if err := e.opts.Ctx.Err(); err != nil {
			return err
		}
		idx := e.queue.pop()
		if idx == invalidEvent {
			break
		}
		ev := e.events.get(idx)
		if ev.cancelled {
			continue
		}
		if err := e.dispatchEvent(ev); err != nil {
			return err
		}
	}

	e.buildFaceOccupiers()
	return nil
}

func (e *Engine) dispatchEvent(ev *event) error {
	n := e.nodes.get(ev.node)
	if !n.alive {
		return nil
	}
	switch ev.kind {
	case leftChildEvent:
		return e.expandLeftChild(ev.node)
	case rightChildEvent:
		return e.expandRightChild(ev.node)
	case pseudoSourceEvent:
		return e.expandPseudoSource(ev.node)
	default:
		return nil
	}
}

// validateMesh walks each real face's Next cycle back to its own
// FaceHalfedge, the first traversal every face gets, since a Mesh is
// an externally-implementable interface and NewFromTriangles's own
// fixed-size-3 input cannot produce a malformed face itself. A face
// whose cycle does not close in exactly 3 steps, or whose halfedges
// disagree about which face owns them, is not a triangle.
func (e *Engine) validateMesh() error {
	for f := 0; f < e.mesh.FaceCount(); f++ {
		fid := trimesh.FaceID(f)
		start := e.mesh.FaceHalfedge(fid)
		h := start
		for k := 0; k < 3; k++ {
			if e.mesh.Face(h) != fid {
				return fmt.Errorf("geodesic: face %d: %w", f, ErrNonTriangulatedMesh)
			}
			h = e.mesh.Next(h)
		}
		if h != start {
			return fmt.Errorf("geodesic: face %d: %w", f, ErrNonTriangulatedMesh)
		}
	}
	return nil
}

// reset implements re-invocation contract: drop every
// container and resize per-vertex/per-halfedge tables to the current
// mesh.
func (e *Engine) reset() {
	e.nodes.reset()
	e.events.reset()
	e.queue = newEventQueue(&e.events)
	e.roots = e.roots[:0]

	e.occupier = make([]occupierEntry, e.mesh.HalfedgeCount())
	e.closestVertex = make([]vertexEntry, e.mesh.VertexCount())
	e.isPseudoSource = make([]bool, e.mesh.VertexCount())
	e.faceOccupiers = make([][]nodeIndex, e.mesh.FaceCount())

	// Every vertex starts tagged as a pseudo-source candidate or not.
	for v := 0; v < e.mesh.VertexCount(); v++ {
		vid := trimesh.VertexID(v)
		e.isPseudoSource[v] = e.mesh.IsSaddleVertex(vid) || e.mesh.IsBoundaryVertex(vid)
	}
}

func (e *Engine) occupierOf(h trimesh.HalfedgeID) *occupierEntry { return &e.occupier[h] }

// processNode implements arbitration. forceBothSides bypasses
// the non-INTERVAL "suppress right propagation" rule; edge-root seeding
// (root.go) and pseudo-source fan children (pseudo.go) set it, since
// each of those seeds is the only node covering its face, so both of
// the face's non-entry edges must be reached from it (see DESIGN.md's
// discussion of the edge-root and pseudo-source fan open questions).
func (e *Engine) processNode(idx nodeIndex, forceBothSides bool) error {
	n := e.nodes.get(idx)
	if n.level >= e.mesh.FaceCount() {
		return nil // level bound exceeded: safety cap only
	}

	leftEdge := n.leftChildEdgeOf(e.mesh)
	rightEdge := n.rightChildEdgeOf(e.mesh)
	leftExists := e.mesh.Face(leftEdge) != trimesh.NullFace
	rightExists := e.mesh.Face(rightEdge) != trimesh.NullFace

	isSource := n.kind != Interval
	bothSidesExist := leftExists && rightExists
	targetContainment := isSource || bothSidesExist

	propagateLeft, propagateRight, propagateMiddle := false, false, false

	if targetContainment {
		h := n.entryEdge
		occ := e.occupierOf(h)
		dNew := n.distanceFromTargetToRoot(e.kernel)

		if !occ.set || occ.distance > dNew+geomkernel.Tolerance {
			isLeftOfCurrent := e.isLeftOfCurrent(idx, occ)

			propagateLeft, propagateRight = true, true
			if isSource && !forceBothSides {
				propagateRight = false
			}

			if occ.set {
				e.evictSide(occ.node, isLeftOfCurrent)
			}
			occ.set, occ.node, occ.distance = true, idx, dNew

			target := n.targetVertexApex(e.mesh)
			cv := &e.closestVertex[target]
			if !cv.set || dNew < cv.distance-geomkernel.Tolerance {
				if e.isPseudoSource[target] {
					if cv.set {
						e.evictMiddleFan(cv.node)
					}
					propagateMiddle = true
				}
				cv.set, cv.node, cv.distance = true, idx, dNew
			}
		} else {
			isLeftOfCurrent := e.isLeftOfCurrent(idx, occ)
			if isLeftOfCurrent {
				propagateLeft = true
			} else if !isSource {
				propagateRight = true
			}
		}
	} else {
		propagateLeft = leftExists
		propagateRight = rightExists
	}

	if propagateLeft && leftExists {
		e.pushLeftChild(idx)
	}
	if propagateRight && rightExists {
		e.pushRightChild(idx)
	}
	if propagateMiddle {
		e.pushMiddleChild(idx)
	}
	return nil
}

// isLeftOfCurrent implements tie-break: vertex nodes break
// ties by fiat (a newly arriving VERTEX_SOURCE goes right of whatever
// is there; a newcomer meeting an existing occupier that is itself a
// VERTEX_SOURCE goes left of it); otherwise the relative order of the two
// entry-segment intersections with their own rays-to-target-vertex
// decides, SMALLER meaning left.
func (e *Engine) isLeftOfCurrent(idx nodeIndex, occ *occupierEntry) bool {
	n := e.nodes.get(idx)
	if n.kind == VertexSource {
		return false
	}
	if occ.set && e.nodes.get(occ.node).kind == VertexSource {
		return true
	}
	if !occ.set {
		return true
	}
	cur := e.nodes.get(occ.node)
	seg1 := geomkernel.Segment2{A: n.layoutFace.P0, B: n.layoutFace.P2}
	line1 := geomkernel.Line2{A: n.sourceImage, B: n.layoutFace.P1}
	seg2 := geomkernel.Segment2{A: cur.layoutFace.P0, B: cur.layoutFace.P2}
	line2 := geomkernel.Line2{A: cur.sourceImage, B: cur.layoutFace.P1}
	order := e.kernel.CompareRelativeIntersectionAlongSegment2(seg1, line1, seg2, line2)
	return order == geomkernel.Smaller
}

// evictSide destroys the loser's child/cancels its pending event on the
// named side.
func (e *Engine) evictSide(loser nodeIndex, left bool) {
	n := e.nodes.get(loser)
	if left {
		if n.leftChild != invalidNode {
			e.nodes.destroy(n.leftChild, &e.events)
			n.leftChild = invalidNode
		}
		e.events.cancel(n.pendingLeft)
		n.pendingLeft = invalidEvent
	} else {
		if n.rightChild != invalidNode {
			e.nodes.destroy(n.rightChild, &e.events)
			n.rightChild = invalidNode
		}
		e.events.cancel(n.pendingRight)
		n.pendingRight = invalidEvent
	}
}

// evictMiddleFan destroys a pseudo-source's entire fan of middle
// children.
func (e *Engine) evictMiddleFan(owner nodeIndex) {
	n := e.nodes.get(owner)
	for _, c := range n.middleChildren {
		e.nodes.destroy(c, &e.events)
	}
	n.middleChildren = nil
	e.events.cancel(n.pendingMiddle)
	n.pendingMiddle = invalidEvent
}

// pushLeftChild materializes a pending leftChildEvent for idx, clipping
// its window against the left child's far edge before estimating its
// priority.
func (e *Engine) pushLeftChild(idx nodeIndex) {
	n := e.nodes.get(idx)
	edge := n.leftChildEdgeOf(e.mesh)
	if e.mesh.Face(edge) == trimesh.NullFace {
		return
	}
	base := geomkernel.Segment2{A: n.layoutFace.P1, B: n.layoutFace.P2}
	clipLeft, clipRight, ok := clipWindowToBase(e.kernel, n.sourceImage, n.windowLeft, n.windowRight, base)
	if !ok {
		return
	}
	estimate := e.distanceToRootEstimate(n, clipLeft, clipRight)
	evIdx := e.events.alloc(event{node: idx, kind: leftChildEvent, priority: estimate})
	n.pendingLeft = evIdx
	e.queue.push(evIdx, estimate)
}

// pushRightChild is pushLeftChild's mirror image for the right side.
func (e *Engine) pushRightChild(idx nodeIndex) {
	n := e.nodes.get(idx)
	edge := n.rightChildEdgeOf(e.mesh)
	if e.mesh.Face(edge) == trimesh.NullFace {
		return
	}
	base := geomkernel.Segment2{A: n.layoutFace.P0, B: n.layoutFace.P1}
	clipLeft, clipRight, ok := clipWindowToBase(e.kernel, n.sourceImage, n.windowLeft, n.windowRight, base)
	if !ok {
		return
	}
	estimate := e.distanceToRootEstimate(n, clipLeft, clipRight)
	evIdx := e.events.alloc(event{node: idx, kind: rightChildEvent, priority: estimate})
	n.pendingRight = evIdx
	e.queue.push(evIdx, estimate)
}

// pushMiddleChild implements pseudo-source fan re-push.
func (e *Engine) pushMiddleChild(idx nodeIndex) {
	n := e.nodes.get(idx)
	estimate := n.distanceFromTargetToRoot(e.kernel)
	evIdx := e.events.alloc(event{node: idx, kind: pseudoSourceEvent, priority: estimate})
	n.pendingMiddle = evIdx
	e.queue.push(evIdx, estimate)
}

func (e *Engine) distanceToRootEstimate(n *node, p1, p2 geomkernel.Point2) float64 {
	d1 := n.distToRoot + math.Sqrt(geomkernel.ComputeSquaredDistance2(n.sourceImage, p1))
	d2 := n.distToRoot + math.Sqrt(geomkernel.ComputeSquaredDistance2(n.sourceImage, p2))
	if d1 < d2 {
		return d1
	}
	return d2
}

// buildFaceOccupiers is the post-termination indexing step: every live
// non-root node not on the null face registers under its current face,
// then each bucket is sorted by distance-from-source-to-root ascending.
func (e *Engine) buildFaceOccupiers() {
	for i := range e.faceOccupiers {
		e.faceOccupiers[i] = e.faceOccupiers[i][:0]
	}
	for r := range e.nodes.nodes {
		n := &e.nodes.nodes[r]
		if !n.alive || n.kind == Root {
			continue
		}
		if n.currentFace == trimesh.NullFace {
			continue
		}
		e.faceOccupiers[n.currentFace] = append(e.faceOccupiers[n.currentFace], nodeIndex(r))
	}
	for f := range e.faceOccupiers {
		list := e.faceOccupiers[f]
		sort.Slice(list, func(i, j int) bool {
			return e.nodes.get(list[i]).distToRoot < e.nodes.get(list[j]).distToRoot
		})
	}
}
