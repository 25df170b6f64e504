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

// Scenario 3: the shortest surface path between two
// space-diagonal-opposite corners of a unit cube (vertex 0 and vertex
// 6) crosses exactly two faces and has length sqrt(5), the classic
// "spider and fly" result.
func TestCube_OppositeCornersSqrt5(t *testing.T) {
	mesh, err := trimesh.Cube()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	sources := []geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B0: 1}}}
	require.NoError(t, eng.ComputeShortestPaths(sources, geodesic.DefaultOptions()))

	d, err := eng.ShortestDistanceToVertex(6)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5), d, 1e-6)
}

// Monotone refinement: adding a second, closer source can only
// shrink (never grow) a previously computed distance.
func TestCube_MultiSourceTakesMinimum(t *testing.T) {
	mesh, err := trimesh.Cube()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	single := []geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B0: 1}}}
	require.NoError(t, eng.ComputeShortestPaths(single, geodesic.DefaultOptions()))
	dSingle, err := eng.ShortestDistanceToVertex(6)
	require.NoError(t, err)

	// Face 2 = {4,5,6}, corner0 = vertex 4, directly connected to vertex
	// 6 by the top face's diagonal mesh edge (length sqrt(2)), much
	// closer than going the long way round from vertex 0.
	both := []geodesic.Location{
		{Face: 0, Bary: geomkernel.Barycentric{B0: 1}},
		{Face: 2, Bary: geomkernel.Barycentric{B0: 1}},
	}
	require.NoError(t, eng.ComputeShortestPaths(both, geodesic.DefaultOptions()))
	dBoth, err := eng.ShortestDistanceToVertex(6)
	require.NoError(t, err)

	assert.LessOrEqual(t, dBoth, dSingle+1e-9)
	assert.InDelta(t, math.Sqrt2, dBoth, 1e-6)
}

// Idempotence: re-invoking ComputeShortestPaths on the same
// Engine with identical sources resets all containers and reproduces
// identical results.
func TestCube_ComputeShortestPathsIsIdempotent(t *testing.T) {
	mesh, err := trimesh.Cube()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	sources := []geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B0: 1}}}

	require.NoError(t, eng.ComputeShortestPaths(sources, geodesic.DefaultOptions()))
	d1, err := eng.ShortestDistanceToVertex(6)
	require.NoError(t, err)

	require.NoError(t, eng.ComputeShortestPaths(sources, geodesic.DefaultOptions()))
	d2, err := eng.ShortestDistanceToVertex(6)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}
