package trimesh

import "errors"

// Sentinel errors returned while building or querying a Mesh.
//
// There is no ErrNonTriangulatedMesh or ErrEmptyMesh here: both would
// require NewFromTriangles to detect a face with a corner count other
// than 3, but its triangles parameter is typed [][3]int, so every
// element already has exactly 3 corners by construction and an empty
// triangle list produces a valid, merely empty, Mesh. A Mesh built
// through a different constructor (the Mesh interface is externally
// implementable) could still violate this, which is why package
// geodesic carries its own ErrNonTriangulatedMesh and validates any
// Mesh it is handed before traversing it.
var (
	// ErrVertexIndex indicates a face referenced a vertex index outside
	// [0, vertex count).
	ErrVertexIndex = errors.New("trimesh: vertex index out of range")

	// ErrNonManifoldEdge indicates an edge is shared by more than two
	// triangles, which the halfedge representation cannot express.
	ErrNonManifoldEdge = errors.New("trimesh: non-manifold edge")
)
