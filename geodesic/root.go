package geodesic

import (
	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// expandRoot classifies the source's face location and dispatches to
// the matching root-seeding strategy.
func (e *Engine) expandRoot(face trimesh.FaceID, bary geomkernel.Barycentric) error {
	cls, err := classifyBarycentric(face, bary)
	if err != nil {
		return err
	}

	switch cls.Kind {
	case Internal:
		return e.faceRoot(face, bary)
	case OnEdge:
		// The edge where component i is zero connects corners (i+1)%3
		// and (i+2)%3, i.e. halfedge index (i+1)%3 in the face cycle
		// (h_k runs corner k -> corner k+1); the fraction toward its
		// target is the other nonzero component, b[(i+2)%3].
		hIdx := (cls.Index + 1) % 3
		h := e.nthFaceHalfedge(face, hIdx)
		comps := [3]float64{bary.B0, bary.B1, bary.B2}
		t := comps[(cls.Index+2)%3]
		return e.edgeRoot(h, t)
	case AtVertex:
		h := e.nthFaceHalfedge(face, cls.Index)
		return e.vertexRoot(e.mesh.Source(h))
	default:
		return nil
	}
}

// nthFaceHalfedge walks k steps of Next from face's own FaceHalfedge,
// matching the "component i corresponds to the i-th halfedge's source
// corner" convention documented on BaryClass.
func (e *Engine) nthFaceHalfedge(face trimesh.FaceID, k int) trimesh.HalfedgeID {
	h := e.mesh.FaceHalfedge(face)
	for i := 0; i < k; i++ {
		h = e.mesh.Next(h)
	}
	return h
}

// faceRoot handles the internal-location case: a Root node with three
// FaceSource children, one per halfedge of face, each carrying the
// query point's image in its own relabeled layout.
func (e *Engine) faceRoot(face trimesh.FaceID, bary geomkernel.Barycentric) error {
	root := e.nodes.alloc(node{
		kind: Root, entryEdge: -1, currentFace: face,
		parent: invalidNode, leftChild: invalidNode, rightChild: invalidNode,
		pendingLeft: invalidEvent, pendingRight: invalidEvent, pendingMiddle: invalidEvent,
	})
	e.roots = append(e.roots, root)

	for k := 0; k < 3; k++ {
		entry := e.nthFaceHalfedge(face, k)
		layout, err := projectEntryLayout(e.kernel, e.mesh, entry)
		if err != nil {
			return err
		}
		relBary := relabelBaryForEntry(bary, k)
		src := e.kernel.ConstructTriangleLocation2(layout, relBary)

		child := e.nodes.alloc(node{
			kind:          FaceSource,
			entryEdge:     entry,
			currentFace:   face,
			layoutFace:    layout,
			sourceImage:   src,
			distToRoot:    0,
			windowLeft:    layout.P0,
			windowRight:   layout.P2,
			storedBary:    bary,
			parent:        root,
			leftChild:     invalidNode,
			rightChild:    invalidNode,
			pendingLeft:   invalidEvent,
			pendingRight:  invalidEvent,
			pendingMiddle: invalidEvent,
			level:         0,
		})
		// alloc may have reallocated the node arena; re-fetch root by
		// index before writing through it.
		rootN := e.nodes.get(root)
		rootN.middleChildren = append(rootN.middleChildren, child)

		if err := e.processNode(child, false); err != nil {
			return err
		}
	}
	return nil
}

// edgeRoot handles the on-edge case: h is the face's own halfedge for
// the located edge, t is the fraction from source(h) to
// target(h). One EdgeSource node is materialized per incident non-null
// face (h's own face, and opposite(h)'s face when it exists), each
// forced to propagate on both sides via processNode's forceBothSides,
// since an edge seed's two base segments both already lie on real
// geometry rather than needing the generic source's single-direction
// suppression (see DESIGN.md).
func (e *Engine) edgeRoot(h trimesh.HalfedgeID, t float64) error {
	root := e.nodes.alloc(node{
		kind: Root, entryEdge: -1,
		parent: invalidNode, leftChild: invalidNode, rightChild: invalidNode,
		pendingLeft: invalidEvent, pendingRight: invalidEvent, pendingMiddle: invalidEvent,
	})
	e.roots = append(e.roots, root)

	type seed struct {
		entry trimesh.HalfedgeID
		t     float64
	}
	seeds := []seed{{h, t}}
	if opp := e.mesh.Opposite(h); e.mesh.Face(opp) != trimesh.NullFace {
		seeds = append(seeds, seed{opp, 1 - t})
	}

	for _, s := range seeds {
		if e.mesh.Face(s.entry) == trimesh.NullFace {
			continue
		}
		layout, err := projectEntryLayout(e.kernel, e.mesh, s.entry)
		if err != nil {
			return err
		}
		src := layout.P0.Add(layout.P2.Sub(layout.P0).Scale(s.t))

		child := e.nodes.alloc(node{
			kind:          EdgeSource,
			entryEdge:     s.entry,
			currentFace:   e.mesh.Face(s.entry),
			layoutFace:    layout,
			sourceImage:   src,
			distToRoot:    0,
			windowLeft:    layout.P0,
			windowRight:   layout.P2,
			parent:        root,
			leftChild:     invalidNode,
			rightChild:    invalidNode,
			pendingLeft:   invalidEvent,
			pendingRight:  invalidEvent,
			pendingMiddle: invalidEvent,
			level:         0,
		})
		rootN := e.nodes.get(root)
		rootN.middleChildren = append(rootN.middleChildren, child)

		if err := e.processNode(child, true); err != nil {
			return err
		}
	}
	return nil
}

// vertexRoot handles the at-vertex case: a Root node with no geometric
// cone of its own, seeding closest_at_vertex[v]
// directly at distance zero and immediately firing the pseudo-source
// fan that ordinarily only re-fires during propagation.
func (e *Engine) vertexRoot(v trimesh.VertexID) error {
	root := e.nodes.alloc(node{
		kind: Root, entryEdge: -1,
		parent: invalidNode, leftChild: invalidNode, rightChild: invalidNode,
		pendingLeft: invalidEvent, pendingRight: invalidEvent, pendingMiddle: invalidEvent,
	})
	e.roots = append(e.roots, root)
	e.closestVertex[v] = vertexEntry{set: true, node: root, distance: 0}

	return e.expandPseudoSourceFan(root, v, 0)
}
