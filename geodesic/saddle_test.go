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

// Scenario 4: a source on a saddle cone's ring reaches the
// saddle center via the direct mesh edge between them (a straight 3D
// segment already lying on the surface, so no unfolding can shorten
// it), and reaches a non-adjacent ring vertex only by routing through
// that center (the ring itself is not triangulated, only fans through
// the apex).
func TestSaddleCone_RingSourceReachesCenterAtEdgeLength(t *testing.T) {
	mesh, err := trimesh.SaddleCone()
	require.NoError(t, err)
	require.True(t, mesh.IsSaddleVertex(0))

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	// Face 0 = {0, 1, 2}; corner 1 is ring vertex 1.
	sources := []geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B1: 1}}}
	require.NoError(t, eng.ComputeShortestPaths(sources, geodesic.DefaultOptions()))

	dCenter, err := eng.ShortestDistanceToVertex(0)
	require.NoError(t, err)
	wantCenter := mesh.VertexPoint(1).Sub(mesh.VertexPoint(0))
	assert.InDelta(t, math.Sqrt(wantCenter.Dot(wantCenter)), dCenter, 1e-6)

	// Vertex 5 sits on the opposite side of the ring; any path to it
	// must pass through the saddle, but it must still be finite and
	// reachable.
	dFar, err := eng.ShortestDistanceToVertex(5)
	require.NoError(t, err)
	assert.Greater(t, dFar, dCenter)
	assert.False(t, math.IsInf(dFar, 0))
}
