package geodesic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geocut/geodesic"
	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// Scenario 1: a single vertex-rooted source at A=(0,0,0) on the
// unit tetrahedron must report distance exactly 1 to each of its three
// direct neighbors (each connected to A by a unit-length mesh edge) and
// distance 0 to itself.
func TestTetrahedron_VertexSource_UnitEdgesToNeighbors(t *testing.T) {
	mesh, err := trimesh.Tetrahedron()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	sources := []geodesic.Location{{Face: 1, Bary: geomkernel.Barycentric{B0: 1}}}
	require.NoError(t, eng.ComputeShortestPaths(sources, geodesic.DefaultOptions()))

	dA, err := eng.ShortestDistanceToVertex(0)
	require.NoError(t, err)
	assert.InDelta(t, 0, dA, 1e-6)

	for _, v := range []trimesh.VertexID{1, 2, 3} {
		d, err := eng.ShortestDistanceToVertex(v)
		require.NoError(t, err)
		assert.InDelta(t, 1, d, 1e-6, "vertex %d", v)
	}
}

func TestTetrahedron_SelfDistanceAtSourceFaceIsZero(t *testing.T) {
	mesh, err := trimesh.Tetrahedron()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	bary := geomkernel.Barycentric{B0: 0.2, B1: 0.3, B2: 0.5}
	sources := []geodesic.Location{{Face: 0, Bary: bary}}
	require.NoError(t, eng.ComputeShortestPaths(sources, geodesic.DefaultOptions()))

	d, err := eng.ShortestDistanceToLocation(0, bary)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-6)
}

// Round-trip law: the 3D polyline reconstructed for a query
// vertex's shortest path must have total length equal to the reported
// scalar distance, up to tolerance.
func TestTetrahedron_PathLengthMatchesReportedDistance(t *testing.T) {
	mesh, err := trimesh.Tetrahedron()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	sources := []geodesic.Location{{Face: 1, Bary: geomkernel.Barycentric{B0: 1}}}
	require.NoError(t, eng.ComputeShortestPaths(sources, geodesic.DefaultOptions()))

	dist, err := eng.ShortestDistanceToVertex(2)
	require.NoError(t, err)

	var points []geomkernel.Point3
	err = eng.ShortestPathPointsToVertex(2, func(p geomkernel.Point3) {
		points = append(points, p)
	})
	require.NoError(t, err)
	require.NotEmpty(t, points)

	total := 0.0
	for i := 1; i < len(points); i++ {
		d := points[i].Sub(points[i-1])
		total += math.Sqrt(d.Dot(d))
	}
	assert.InDelta(t, dist, total, 1e-6)
}

func TestTetrahedron_InvalidBarycentricRejected(t *testing.T) {
	mesh, err := trimesh.Tetrahedron()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	sources := []geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B0: 0.5, B1: 0.5, B2: 0.5}}}
	err = eng.ComputeShortestPaths(sources, geodesic.DefaultOptions())
	require.Error(t, err)
	var invalid *geodesic.InvalidFaceLocationError
	assert.ErrorAs(t, err, &invalid)
}
