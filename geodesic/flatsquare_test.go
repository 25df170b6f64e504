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

// Scenario 2: a flat, zero-curvature square has no wrapping or
// unfolding distortion — geodesic distance from corner A equals plain
// Euclidean distance to its edge-adjacent corners B and D.
func TestFlatSquare_VertexSource_MatchesEuclideanDistance(t *testing.T) {
	mesh, err := trimesh.FlatSquare()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	sources := []geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B0: 1}}}
	require.NoError(t, eng.ComputeShortestPaths(sources, geodesic.DefaultOptions()))

	expected := map[trimesh.VertexID]float64{
		1: 1, // B = (1,0,0)
		3: 1, // D = (0,1,0)
	}
	for v, want := range expected {
		d, err := eng.ShortestDistanceToVertex(v)
		require.NoError(t, err, "vertex %d", v)
		assert.InDelta(t, want, d, 1e-6, "vertex %d", v)
	}
}

// Round-trip law, exercised on an adjacent-vertex query whose
// straight-line path in 3D is easy to hand-check.
func TestFlatSquare_PathPointsSumToReportedDistance(t *testing.T) {
	mesh, err := trimesh.FlatSquare()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	sources := []geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B0: 1}}}
	require.NoError(t, eng.ComputeShortestPaths(sources, geodesic.DefaultOptions()))

	dist, err := eng.ShortestDistanceToVertex(1)
	require.NoError(t, err)

	var points []geomkernel.Point3
	err = eng.ShortestPathPointsToVertex(1, func(p geomkernel.Point3) {
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

// Boundary behavior: every corner of a two-triangle open
// square is a mesh boundary vertex.
func TestFlatSquare_AllVerticesAreBoundary(t *testing.T) {
	mesh, err := trimesh.FlatSquare()
	require.NoError(t, err)
	for v := trimesh.VertexID(0); v < 4; v++ {
		assert.True(t, mesh.IsBoundaryVertex(v))
	}
}
