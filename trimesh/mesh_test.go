package trimesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geocut/trimesh"
)

func TestTetrahedron_ClosedManifold(t *testing.T) {
	m, err := trimesh.Tetrahedron()
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 12, m.HalfedgeCount()) // 3 per face, no boundary twins

	for v := trimesh.VertexID(0); v < 4; v++ {
		assert.False(t, m.IsBoundaryVertex(v), "tetrahedron has no boundary")
		assert.False(t, m.IsSaddleVertex(v), "tetrahedron vertices are convex")
	}
}

func TestFlatSquare_BoundaryOnPerimeter(t *testing.T) {
	m, err := trimesh.FlatSquare()
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.FaceCount())
	// 6 directed interior halfedges + 4 boundary twins (4 perimeter
	// edges have no partner triangle; the diagonal A-C does).
	assert.Equal(t, 10, m.HalfedgeCount())

	for v := trimesh.VertexID(0); v < 4; v++ {
		assert.True(t, m.IsBoundaryVertex(v))
	}
}

func TestCube_ClosedManifold(t *testing.T) {
	m, err := trimesh.Cube()
	require.NoError(t, err)
	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 12, m.FaceCount())
	assert.Equal(t, 36, m.HalfedgeCount())
	for v := trimesh.VertexID(0); v < 8; v++ {
		assert.False(t, m.IsBoundaryVertex(v))
	}
}

func TestOpenDisk_RingIsBoundaryCenterIsNot(t *testing.T) {
	m, err := trimesh.OpenDisk()
	require.NoError(t, err)
	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, 6, m.FaceCount())
	assert.False(t, m.IsBoundaryVertex(0))
	for v := trimesh.VertexID(1); v < 7; v++ {
		assert.True(t, m.IsBoundaryVertex(v))
	}
}

func TestSaddleCone_CenterIsSaddleRingIsBoundary(t *testing.T) {
	m, err := trimesh.SaddleCone()
	require.NoError(t, err)
	assert.Equal(t, 9, m.VertexCount())
	assert.Equal(t, 8, m.FaceCount())
	assert.True(t, m.IsSaddleVertex(0), "alternating ring heights push the angle sum past 2*pi")
	assert.False(t, m.IsBoundaryVertex(0))
	for v := trimesh.VertexID(1); v < 9; v++ {
		assert.True(t, m.IsBoundaryVertex(v))
	}
}

func TestOutgoingRing_VisitsAllIncidentFaces(t *testing.T) {
	m, err := trimesh.Tetrahedron()
	require.NoError(t, err)
	ring := m.OutgoingRing(0)
	assert.Len(t, ring, 3, "each tetrahedron vertex has degree 3")
	for _, h := range ring {
		assert.Equal(t, trimesh.VertexID(0), m.Source(h))
	}
}

func TestFaceTriangle_MatchesVertexPoints(t *testing.T) {
	m, err := trimesh.Tetrahedron()
	require.NoError(t, err)
	tri := m.FaceTriangle(0) // BCD
	assert.Equal(t, m.VertexPoint(1), tri.P0)
	assert.Equal(t, m.VertexPoint(2), tri.P1)
	assert.Equal(t, m.VertexPoint(3), tri.P2)
}

func TestNewFromTriangles_RejectsBadVertexIndex(t *testing.T) {
	_, err := trimesh.NewFromTriangles(nil, [][3]int{{0, 1, 2}})
	assert.ErrorIs(t, err, trimesh.ErrVertexIndex)
}
