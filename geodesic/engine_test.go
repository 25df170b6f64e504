package geodesic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geocut/geodesic"
	"github.com/katalvlaran/geocut/geomkernel"
	"github.com/katalvlaran/geocut/trimesh"
)

func TestGetFaceLocation_EvaluatesBarycentricIn3D(t *testing.T) {
	mesh, err := trimesh.Tetrahedron()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	bary := geomkernel.Barycentric{B0: 1}
	p, err := eng.GetFaceLocation(1, bary)
	require.NoError(t, err)
	// Face 1 = {0,3,2}; corner 0 is vertex A = (0,0,0).
	assert.Equal(t, mesh.VertexPoint(0), p)
}

func TestGetFaceLocation_RejectsInvalidBarycentric(t *testing.T) {
	mesh, err := trimesh.Tetrahedron()
	require.NoError(t, err)

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	_, err = eng.GetFaceLocation(0, geomkernel.Barycentric{B0: 2, B1: -1})
	require.Error(t, err)
	var invalid *geodesic.InvalidFaceLocationError
	assert.ErrorAs(t, err, &invalid)
}

func TestComputeShortestPaths_RespectsCancelledContext(t *testing.T) {
	mesh, err := trimesh.Tetrahedron()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := geodesic.NewEngine(mesh, geomkernel.EuclideanKernel{})
	sources := []geodesic.Location{{Face: 0, Bary: geomkernel.Barycentric{B0: 1}}}
	err = eng.ComputeShortestPaths(sources, geodesic.Options{Ctx: ctx})
	assert.ErrorIs(t, err, context.Canceled)
}
