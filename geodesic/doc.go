// Package geodesic computes exact geodesic shortest-path distances on
// a triangulated polyhedral surface (package trimesh) under a Euclidean
// metric kernel (package geomkernel), via the Chen-Han O(n^2) algorithm
// with Xin-Wang pruning (the "cone tree"/"window tree" construction
// described in the package's design notes).
//
// # Usage
//
//	mesh, _ := trimesh.Tetrahedron()
//	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
//	err := eng.ComputeShortestPaths([]geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B0: 1}}}, geodesic.DefaultOptions())
//	dist, err := eng.ShortestDistanceToVertex(2)
//
// # Algorithm shape
//
// Sources seed "root" cone-tree nodes (face/edge/vertex roots). Each
// node propagates across its current triangle's two non-entry edges as
// LEFT_CHILD/RIGHT_CHILD events, or, at a saddle/boundary vertex, fans
// out as a PSEUDO_SOURCE event across every incident face. Events sit
// in a min-priority-queue ordered by a lower-bound distance estimate,
// support lazy cancellation (an evicted node's queued events are
// flagged, not removed), and are processed one at a time: this engine
// has no internal concurrency (see Options.Ctx for external
// cancellation only).
//
// Arbitration ("who owns propagation across halfedge h") and a
// per-vertex closest-known-distance table together bound the number of
// nodes ever created; a triangle-inequality dominance filter (Xin-Wang)
// prunes subtrees that provably cannot improve on an already-known
// distance before they are ever unfolded.
//
// # Errors
//
//	InvalidFaceLocationError - a source/query barycentric triple was
//	                            rejected by the kernel or classifier.
//	ErrNonTriangulatedMesh    - a face's halfedge cycle did not close in
//	                            exactly 3 steps, checked once at the
//	                            start of ComputeShortestPaths.
//	ErrUnreachable            - a query target has no occupier (no path
//	                            from any source reaches it).
//	ErrDegeneratePropagation  - an internal invariant was violated (a
//	                            kernel intersection the propagation
//	                            invariants guarantee did not occur).
//
// # Options
//
// Options.Ctx is checked cooperatively at the top of the main event
// loop and the root-expansion loop; there is no internal parallelism to
// cancel, only a potentially long synchronous computation to abort
// early.
package geodesic
