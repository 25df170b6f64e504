package geodesic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geocut/geodesic"
	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

// Scenario 6: a flat hexagonal fan has zero curvature at its
// center (angle sum exactly 2*pi), so a path crossing the disk from one
// boundary vertex to the opposite one is the straight Euclidean chord
// through the interior.
func TestOpenDisk_OppositeRingVerticesGetStraightChord(t *testing.T) {
	mesh, err := trimesh.OpenDisk()
	require.NoError(t, err)
	require.False(t, mesh.IsSaddleVertex(0))

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	// Face 0 = {0, 1, 2}; corner 1 is ring vertex 1.
	sources := []geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B1: 1}}}
	require.NoError(t, eng.ComputeShortestPaths(sources, geodesic.DefaultOptions()))

	// Ring vertex 4 sits diametrically opposite ring vertex 1 on the
	// unit-radius hexagon: a straight chord of length 2.
	d, err := eng.ShortestDistanceToVertex(4)
	require.NoError(t, err)
	assert.InDelta(t, 2, d, 1e-6)
}

func TestOpenDisk_RingVerticesAreBoundaryCenterIsNot(t *testing.T) {
	mesh, err := trimesh.OpenDisk()
	require.NoError(t, err)
	assert.False(t, mesh.IsBoundaryVertex(0))
	for v := trimesh.VertexID(1); v < 7; v++ {
		assert.True(t, mesh.IsBoundaryVertex(v))
	}
}
