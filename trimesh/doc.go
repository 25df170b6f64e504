// Package trimesh provides the directed halfedge mesh consumed by
// package geodesic: stable per-vertex, per-halfedge, and per-face
// indices; the traversal primitives next/opposite/source/target/face
// and the halfedge-ring walk around a vertex; and a sentinel null face
// for boundary halfedges, satisfying geodesic's Mesh interface.
//
// # Representation
//
// Every edge of the input triangulation is represented by exactly two
// halfedges pointing in opposite directions, mirroring the standard
// doubly-connected-edge-list (DCEL) technique. Boundary edges are no
// exception: the halfedge on the mesh's interior side has a real Face;
// its twin has Face() == NullFace and is linked into a boundary loop
// via Next, so geodesic's propagation code never needs a nil check —
// every Next/Opposite call returns a valid halfedge index.
//
// Storage follows the adjacency-map technique of core.Graph (stable
// incremental indices, slice-backed tables) adapted from an undirected
// weighted multigraph to a directed triangulated halfedge structure.
//
// # Canonical fixtures
//
// Tetrahedron, Cube, and OpenDisk build small, deterministic meshes
// used across package geodesic's test suite, adapted from
// builder.PlatonicSolid's canonical deterministic vertex/edge emission
// (there: abstract graph shells; here: embedded 3D triangulations).
//
// # Errors
//
//	ErrNonManifoldEdge - an edge is shared by more than 2 triangles.
//	ErrVertexIndex     - a face referenced a vertex index out of range.
//
// NewFromTriangles cannot itself produce a non-triangular face (its
// input is typed [][3]int), so there is no ErrNonTriangulatedMesh
// here; see package geodesic's own sentinel of that name for the
// traversal-time check against a Mesh built some other way.
package trimesh
