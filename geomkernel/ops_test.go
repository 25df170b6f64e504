package geomkernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geocut/geomkernel"
)

func TestProjectTriangle3ToTriangle2_RightIsosceles(t *testing.T) {
	tri := geomkernel.Triangle3{
		P0: geomkernel.NewPoint3(0, 0, 0),
		P1: geomkernel.NewPoint3(1, 0, 0),
		P2: geomkernel.NewPoint3(0, 1, 0),
	}
	tri2, err := geomkernel.ProjectTriangle3ToTriangle2(tri)
	require.NoError(t, err)

	assert.InDelta(t, 0, tri2.P0.X(), geomkernel.Tolerance)
	assert.InDelta(t, 0, tri2.P0.Y(), geomkernel.Tolerance)
	assert.InDelta(t, 1, tri2.P1.X(), geomkernel.Tolerance)
	assert.InDelta(t, 0, tri2.P1.Y(), geomkernel.Tolerance)

	d01 := geomkernel.ComputeSquaredDistance2(tri2.P0, tri2.P1)
	d02 := geomkernel.ComputeSquaredDistance2(tri2.P0, tri2.P2)
	d12 := geomkernel.ComputeSquaredDistance2(tri2.P1, tri2.P2)
	assert.InDelta(t, 1, d01, 1e-9)
	assert.InDelta(t, 1, d02, 1e-9)
	assert.InDelta(t, 2, d12, 1e-9)
}

func TestProjectTriangle3ToTriangle2_Degenerate(t *testing.T) {
	tri := geomkernel.Triangle3{
		P0: geomkernel.NewPoint3(0, 0, 0),
		P1: geomkernel.NewPoint3(1, 0, 0),
		P2: geomkernel.NewPoint3(2, 0, 0),
	}
	_, err := geomkernel.ProjectTriangle3ToTriangle2(tri)
	assert.ErrorIs(t, err, geomkernel.ErrDegenerateTriangle)
}

func TestFlattenTriangle3AlongSegment2_PreservesEdgeLengths(t *testing.T) {
	tri := geomkernel.Triangle3{
		P0: geomkernel.NewPoint3(0, 0, 0),
		P1: geomkernel.NewPoint3(2, 0, 0),
		P2: geomkernel.NewPoint3(0, 0, 3),
	}
	seg := geomkernel.Segment2{A: geomkernel.NewPoint2(0, 0), B: geomkernel.NewPoint2(2, 0)}
	tri2, err := geomkernel.FlattenTriangle3AlongSegment2(tri, 0, seg)
	require.NoError(t, err)

	assert.InDelta(t, 4, geomkernel.ComputeSquaredDistance2(tri2.P0, tri2.P1), 1e-9)
	assert.InDelta(t, 9, geomkernel.ComputeSquaredDistance2(tri2.P0, tri2.P2), 1e-9)
}

func TestIntersectSegmentRay_Basic(t *testing.T) {
	seg := geomkernel.Segment2{A: geomkernel.NewPoint2(-1, 1), B: geomkernel.NewPoint2(1, 1)}
	ray := geomkernel.Ray2{Origin: geomkernel.NewPoint2(0, 0), Through: geomkernel.NewPoint2(0, 1)}
	res, err := geomkernel.IntersectSegmentRay(seg, ray)
	require.NoError(t, err)
	require.Equal(t, geomkernel.PointResult, res.Kind)
	assert.InDelta(t, 0, res.Point.X(), 1e-9)
	assert.InDelta(t, 1, res.Point.Y(), 1e-9)
}

func TestIntersectSegmentRay_Miss(t *testing.T) {
	seg := geomkernel.Segment2{A: geomkernel.NewPoint2(5, 1), B: geomkernel.NewPoint2(6, 1)}
	ray := geomkernel.Ray2{Origin: geomkernel.NewPoint2(0, 0), Through: geomkernel.NewPoint2(0, 1)}
	res, err := geomkernel.IntersectSegmentRay(seg, ray)
	require.NoError(t, err)
	assert.Equal(t, geomkernel.NoResult, res.Kind)
}

func TestParametricDistanceAlongSegment2_ClampsToExtent(t *testing.T) {
	a := geomkernel.NewPoint2(0, 0)
	b := geomkernel.NewPoint2(10, 0)
	assert.InDelta(t, 0.5, geomkernel.ParametricDistanceAlongSegment2(a, b, geomkernel.NewPoint2(5, 3)), 1e-9)
	assert.Equal(t, 0.0, geomkernel.ParametricDistanceAlongSegment2(a, b, geomkernel.NewPoint2(-5, 0)))
	assert.Equal(t, 1.0, geomkernel.ParametricDistanceAlongSegment2(a, b, geomkernel.NewPoint2(50, 0)))
}

func TestIsSaddleVertex(t *testing.T) {
	assert.False(t, geomkernel.IsSaddleVertex(2*math.Pi-0.1))
	assert.True(t, geomkernel.IsSaddleVertex(2*math.Pi+0.1))
}

func TestValidateBarycentric(t *testing.T) {
	require.NoError(t, geomkernel.ValidateBarycentric(geomkernel.Barycentric{B0: 0.2, B1: 0.3, B2: 0.5}))
	assert.ErrorIs(t, geomkernel.ValidateBarycentric(geomkernel.Barycentric{B0: 0.2, B1: 0.3, B2: 0.4}), geomkernel.ErrBadBarycentric)
	assert.ErrorIs(t, geomkernel.ValidateBarycentric(geomkernel.Barycentric{B0: -0.1, B1: 0.6, B2: 0.5}), geomkernel.ErrBadBarycentric)
}
