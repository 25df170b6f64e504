package trimesh

import (
	"fmt"

	"github.com/katalvlaran/geocut/geomkernel"
)

// VertexID indexes Mesh.vertices.
type VertexID int

// HalfedgeID indexes Mesh.halfedges.
type HalfedgeID int

// FaceID indexes Mesh.faces, or NullFace for a boundary halfedge's
// outer side.
type FaceID int

// NullFace is the sentinel face returned by Face(h) for a boundary
// halfedge.
const NullFace FaceID = -1

type halfedge struct {
	origin   VertexID
	face     FaceID
	next     HalfedgeID
	opposite HalfedgeID
}

// Mesh is a directed halfedge triangulation with stable indices.
// Zero value is not usable; construct via NewFromTriangles or one of
// the canonical fixtures in builder.go.
type Mesh struct {
	points     []geomkernel.Point3
	halfedges  []halfedge
	faceHE     []HalfedgeID // one representative halfedge per real face
	firstOut   []HalfedgeID // one outgoing halfedge per vertex, for ring walks
	angleSum   []float64    // cached sum of incident corner angles, per vertex
	isBoundary []bool       // cached per vertex
}

// NewFromTriangles builds a Mesh from a vertex point list and a list of
// triangles, each a triple of indices into points, in CCW winding as
// seen from the triangle's outward normal.
//
// Steps (a numbered-step doc-comment convention used throughout this
// module, e.g. flow.Dinic):
//  1. Validate indices and allocate three halfedges per triangle.
//  2. Pair interior halfedges via a (origin,target) -> halfedge map.
//  3. Synthesize boundary twins for any halfedge left unpaired, with
//     Face() == NullFace.
//  4. Link each boundary twin's Next pointer by walking the hole it
//     belongs to, one vertex at a time.
//  5. Precompute each vertex's incident-angle sum and boundary flag,
//     used by IsSaddleVertex/IsBoundaryVertex.
func NewFromTriangles(points []geomkernel.Point3, triangles [][3]int) (*Mesh, error) {
	m := &Mesh{points: append([]geomkernel.Point3(nil), points...)}

	type edgeKey struct{ u, v VertexID }
	edgeToHE := make(map[edgeKey]HalfedgeID, len(triangles)*3)

	for fi, tri := range triangles {
		var corners [3]VertexID
		for k, idx := range tri {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("trimesh: face %d corner %d: %w", fi, k, ErrVertexIndex)
			}
			corners[k] = VertexID(idx)
		}

		base := HalfedgeID(len(m.halfedges))
		for k := 0; k < 3; k++ {
			m.halfedges = append(m.halfedges, halfedge{
				origin:   corners[k],
				face:     FaceID(fi),
				next:     base + HalfedgeID((k+1)%3),
				opposite: -1,
			})
		}
		m.faceHE = append(m.faceHE, base)

		for k := 0; k < 3; k++ {
			u, v := corners[k], corners[(k+1)%3]
			key := edgeKey{u, v}
			if _, exists := edgeToHE[key]; exists {
				return nil, fmt.Errorf("trimesh: face %d: %w", fi, ErrNonManifoldEdge)
			}
			edgeToHE[key] = base + HalfedgeID(k)
		}
	}

	// Pair interior opposites.
	for key, h := range edgeToHE {
		rev := edgeKey{key.v, key.u}
		if rh, ok := edgeToHE[rev]; ok {
			m.halfedges[h].opposite = rh
		}
	}

	// Synthesize boundary twins for unpaired interior halfedges.
	boundaryByOrigin := make(map[VertexID]HalfedgeID)
	numInterior := len(m.halfedges)
	for h := 0; h < numInterior; h++ {
		if m.halfedges[h].opposite != -1 {
			continue
		}
		u := m.halfedges[h].origin
		v := m.Target(HalfedgeID(h))
		b := HalfedgeID(len(m.halfedges))
		m.halfedges = append(m.halfedges, halfedge{
			origin:   v,
			face:     NullFace,
			next:     -1,
			opposite: HalfedgeID(h),
		})
		m.halfedges[h].opposite = b
		boundaryByOrigin[v] = b
		_ = u
	}

	// Link boundary Next pointers: b's Next starts at Target(b).
	for h := numInterior; h < len(m.halfedges); h++ {
		b := HalfedgeID(h)
		next, ok := boundaryByOrigin[m.Target(b)]
		if !ok {
			return nil, fmt.Errorf("trimesh: %w (unmatched boundary loop)", ErrNonManifoldEdge)
		}
		m.halfedges[b].next = next
	}

	m.firstOut = make([]HalfedgeID, len(points))
	for v := range m.firstOut {
		m.firstOut[v] = -1
	}
	for h := range m.halfedges {
		o := m.halfedges[h].origin
		if m.firstOut[o] == -1 {
			m.firstOut[o] = HalfedgeID(h)
		}
	}

	m.precomputeVertexClassification()
	return m, nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.points) }

// FaceCount returns the number of real (non-null) faces.
func (m *Mesh) FaceCount() int { return len(m.faceHE) }

// HalfedgeCount returns the total number of halfedges, including
// boundary twins.
func (m *Mesh) HalfedgeCount() int { return len(m.halfedges) }

// Next returns the next halfedge around h's face (or boundary loop).
func (m *Mesh) Next(h HalfedgeID) HalfedgeID { return m.halfedges[h].next }

// Opposite returns h's twin halfedge.
func (m *Mesh) Opposite(h HalfedgeID) HalfedgeID { return m.halfedges[h].opposite }

// Source returns the vertex h points away from.
func (m *Mesh) Source(h HalfedgeID) VertexID { return m.halfedges[h].origin }

// Target returns the vertex h points to.
func (m *Mesh) Target(h HalfedgeID) VertexID { return m.halfedges[m.halfedges[h].opposite].origin }

// Face returns h's incident face, or NullFace if h is a boundary twin.
//
// Note: when an interior halfedge has not yet had its opposite wired
// (only possible transiently during construction), Face still reports
// correctly since Face reads h's own stored face, not its opposite's.
func (m *Mesh) Face(h HalfedgeID) FaceID { return m.halfedges[h].face }

// FaceHalfedge returns a representative halfedge of real face f.
func (m *Mesh) FaceHalfedge(f FaceID) HalfedgeID { return m.faceHE[f] }

// HalfedgeIndexInFace returns h's position (0, 1, or 2) in the
// next-cycle of its own face, starting from FaceHalfedge(Face(h)).
// Used by geodesic's child-expansion unfolding to select which of the
// neighbor face's three edges corresponds to the crossed halfedge.
func (m *Mesh) HalfedgeIndexInFace(h HalfedgeID) int {
	start := m.faceHE[m.halfedges[h].face]
	cur := start
	for k := 0; k < 3; k++ {
		if cur == h {
			return k
		}
		cur = m.Next(cur)
	}
	return 0
}

// VertexPoint returns v's embedded 3D position.
func (m *Mesh) VertexPoint(v VertexID) geomkernel.Point3 { return m.points[v] }

// FaceTriangle returns f's three corners in halfedge-cycle order,
// starting at FaceHalfedge(f)'s origin.
func (m *Mesh) FaceTriangle(f FaceID) geomkernel.Triangle3 {
	h0 := m.faceHE[f]
	h1 := m.Next(h0)
	h2 := m.Next(h1)
	return geomkernel.Triangle3{
		P0: m.VertexPoint(m.Source(h0)),
		P1: m.VertexPoint(m.Source(h1)),
		P2: m.VertexPoint(m.Source(h2)),
	}
}

// OutgoingRing returns every halfedge whose Source is v, walking the
// ring via Next(Opposite(h)) starting from v's stored first outgoing
// halfedge. This is the walk geodesic's pseudo-source fan expansion
// relies on to enumerate v's incident faces.
func (m *Mesh) OutgoingRing(v VertexID) []HalfedgeID {
	start := m.firstOutgoing(v)
	if start == -1 {
		return nil
	}
	ring := []HalfedgeID{start}
	h := m.Next(m.Opposite(start))
	for h != start {
		ring = append(ring, h)
		h = m.Next(m.Opposite(h))
	}
	return ring
}

func (m *Mesh) firstOutgoing(v VertexID) HalfedgeID { return m.firstOut[v] }

// IsBoundaryVertex reports whether v lies on the mesh boundary: any
// halfedge in its outgoing ring, or that halfedge's opposite, has a
// null face.
func (m *Mesh) IsBoundaryVertex(v VertexID) bool { return m.isBoundary[v] }

// IsSaddleVertex reports whether v's incident corner angles sum to
// more than 2*pi, via geomkernel.IsSaddleVertex on the precomputed
// angle sum. Boundary vertices are pseudo-sources regardless of this
// predicate; see Engine's vertex-type initialization.
func (m *Mesh) IsSaddleVertex(v VertexID) bool {
	return geomkernel.IsSaddleVertex(m.angleSum[v])
}

func (m *Mesh) precomputeVertexClassification() {
	m.angleSum = make([]float64, len(m.points))
	m.isBoundary = make([]bool, len(m.points))

	for f := range m.faceHE {
		tri := m.FaceTriangle(FaceID(f))
		h0 := m.faceHE[f]
		h1 := m.Next(h0)
		h2 := m.Next(h1)
		m.angleSum[m.Source(h0)] += geomkernel.TriangleCornerAngle(tri, 0)
		m.angleSum[m.Source(h1)] += geomkernel.TriangleCornerAngle(tri, 1)
		m.angleSum[m.Source(h2)] += geomkernel.TriangleCornerAngle(tri, 2)
	}

	for h := range m.halfedges {
		if m.halfedges[h].face == NullFace {
			m.isBoundary[m.halfedges[h].origin] = true
			m.isBoundary[m.Target(HalfedgeID(h))] = true
		}
	}
}
