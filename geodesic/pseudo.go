package geodesic

import "github.com/katalvlaran/geocut/trimesh"

// expandPseudoSource re-emits p's target_vertex as a fan of
// VERTEX_SOURCE children, one per face incident to it.
func (e *Engine) expandPseudoSource(pIdx nodeIndex) error {
	p := e.nodes.get(pIdx)
	v := p.targetVertexApex(e.mesh)
	dRoot := p.distanceFromTargetToRoot(e.kernel)

	if err := e.expandPseudoSourceFan(pIdx, v, dRoot); err != nil {
		return err
	}

	p = e.nodes.get(pIdx)
	p.pendingMiddle = invalidEvent
	return nil
}

// expandPseudoSourceFan is the shared fan-construction body used both
// by expandPseudoSource (re-expansion when a better closest-at-vertex
// arrives during propagation) and vertexRoot (the initial fan of a
// source placed exactly at a vertex). A ring halfedge h outgoing from v
// has its incident face's one edge not touching v at next(h); that edge
// becomes the new node's entry edge, so v lands at the relabeled
// layout's apex (corner 1) and the full far edge is the initial window,
// matching "window spanning the far edge (the two non-incident
// corners)".
//
// Each fan child is pushed with forceBothSides, the same override
// edge_root uses: unlike FACE_SOURCE's three siblings (which
// collectively tile their face with one direction each), a vertex's fan
// has exactly one child per incident face, so nothing else covers that
// face's other direction. On a closed vertex ring this only duplicates
// work the occupier table already discards; on an open (boundary)
// ring, without it a ring-adjacent vertex whose only viable edge is the
// suppressed one is never reached at all.
func (e *Engine) expandPseudoSourceFan(parent nodeIndex, v trimesh.VertexID, dRoot float64) error {
	p := e.nodes.get(parent)

	for _, h := range e.mesh.OutgoingRing(v) {
		if e.mesh.Face(h) == trimesh.NullFace {
			continue // boundary ring halfedge: no incident face, no cone possible
		}
		entry := e.mesh.Next(h)
		if e.mesh.Face(entry) == trimesh.NullFace {
			continue
		}

		layout, err := projectEntryLayout(e.kernel, e.mesh, entry)
		if err != nil {
			continue // degenerate triangle: skip this ring face, do not fail the whole fan
		}

		child := e.nodes.alloc(node{
			kind:          VertexSource,
			entryEdge:     entry,
			currentFace:   e.mesh.Face(entry),
			layoutFace:    layout,
			sourceImage:   layout.P1,
			distToRoot:    dRoot,
			windowLeft:    layout.P0,
			windowRight:   layout.P2,
			parent:        parent,
			leftChild:     invalidNode,
			rightChild:    invalidNode,
			pendingLeft:   invalidEvent,
			pendingRight:  invalidEvent,
			pendingMiddle: invalidEvent,
			level:         p.level + 1,
		})
		// alloc may have reallocated the node arena; re-fetch p by index
		// before writing through it.
		p = e.nodes.get(parent)
		p.middleChildren = append(p.middleChildren, child)
		if err := e.processNode(child, true); err != nil {
			return err
		}
	}

	return nil
}
