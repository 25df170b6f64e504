// Package geocut (geocut) computes exact geodesic shortest-path
// distances on triangulated polyhedral surfaces.
//
// 🚀 What is geocut?
//
//	A geometry engine that brings together:
//
//	  • A directed halfedge mesh representation with boundary support
//	  • A Euclidean geometry kernel (2D/3D points, unfolding, intersection)
//	  • The Chen-Han O(n^2) exact geodesic algorithm with Xin-Wang
//	    pruning (the "cone tree"/"window tree" construction)
//
// ✨ Why choose geocut?
//
//   - Exact             — no approximation or graph-shortest-path shortcut;
//     distances are computed on the continuous surface itself
//   - Multi-source      — seed any number of sources at once, each a
//     face-interior point, an edge point, or a vertex
//   - Extensible        — a Kernel/Mesh capability-interface boundary lets
//     a caller supply its own exact-arithmetic kernel or mesh backend
//   - Pure Go           — no cgo; gonum for vector/tolerance arithmetic
//
// Under the hood, everything is organized under three subpackages:
//
//	trimesh/    — directed halfedge mesh, canonical fixture builders
//	geomkernel/ — 2D/3D geometry kernel consumed by geodesic
//	geodesic/   — the propagation engine, queries, and path reconstruction
//
// Quick example:
//
//	mesh, _ := trimesh.Tetrahedron()
//	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
//	_ = eng.ComputeShortestPaths(
//		[]geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B0: 1}}},
//		geodesic.DefaultOptions(),
//	)
//	dist, _ := eng.ShortestDistanceToVertex(2)
//
// See each subpackage's own doc.go for algorithm shape, error surface,
// and integration details.
package geocut
