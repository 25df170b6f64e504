package geomkernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// IntersectResultKind distinguishes the shape of an intersection result.
type IntersectResultKind int

const (
	// NoResult: the geometries do not meet.
	NoResult IntersectResultKind = iota
	// PointResult: the geometries meet at exactly one point.
	PointResult
	// SegmentResult: the geometries overlap along a sub-segment
	// (collinear overlap).
	SegmentResult
)

// IntersectResult2 is the tagged-union result of a 2D intersection query.
type IntersectResult2 struct {
	Kind    IntersectResultKind
	Point   Point2
	Segment Segment2
}

// IntersectSegmentRay intersects a closed segment with a ray. Used by
// window clipping to clip a candidate window against a cone boundary
// ray.
func IntersectSegmentRay(seg Segment2, ray Ray2) (IntersectResult2, error) {
	d := ray.Direction()
	e := seg.B.Sub(seg.A)
	denom := d.Cross(e)

	originToA := seg.A.Sub(ray.Origin)
	if math.Abs(denom) <= Tolerance {
		// Parallel: collinear overlap, or no intersection at all.
		if math.Abs(d.Cross(originToA)) > Tolerance {
			return IntersectResult2{Kind: NoResult}, nil
		}
		return intersectCollinearRay(seg, ray)
	}

	t := originToA.Cross(e) / denom // position along ray: ray.Origin + t*d
	u := originToA.Cross(d) / denom // position along segment: seg.A + u*e

	if t < -Tolerance || u < -Tolerance || u > 1+Tolerance {
		return IntersectResult2{Kind: NoResult}, nil
	}
	return IntersectResult2{Kind: PointResult, Point: ray.Origin.Add(d.Scale(t))}, nil
}

// IntersectSegmentLine intersects a closed segment with an infinite line.
func IntersectSegmentLine(seg Segment2, line Line2) (IntersectResult2, error) {
	d := line.B.Sub(line.A)
	e := seg.B.Sub(seg.A)
	denom := d.Cross(e)

	originToA := seg.A.Sub(line.A)
	if math.Abs(denom) <= Tolerance {
		if math.Abs(d.Cross(originToA)) > Tolerance {
			return IntersectResult2{Kind: NoResult}, nil
		}
		// Collinear: the whole segment lies on the line.
		return IntersectResult2{Kind: SegmentResult, Segment: seg}, nil
	}

	u := originToA.Cross(d) / denom
	if u < -Tolerance || u > 1+Tolerance {
		return IntersectResult2{Kind: NoResult}, nil
	}
	return IntersectResult2{Kind: PointResult, Point: seg.A.Add(e.Scale(u))}, nil
}

func intersectCollinearRay(seg Segment2, ray Ray2) (IntersectResult2, error) {
	d := ray.Direction()
	dLen := math.Sqrt(d.Dot(d))
	if dLen <= Tolerance {
		return IntersectResult2{Kind: NoResult}, nil
	}
	u := d.Scale(1 / dLen)

	tA := seg.A.Sub(ray.Origin).Dot(u)
	tB := seg.B.Sub(ray.Origin).Dot(u)
	lo, hi := tA, tB
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi < -Tolerance {
		return IntersectResult2{Kind: NoResult}, nil
	}
	if lo < 0 {
		lo = 0
	}
	if floats.EqualWithinAbs(lo, hi, Tolerance) {
		return IntersectResult2{Kind: PointResult, Point: ray.Origin.Add(u.Scale(lo))}, nil
	}
	return IntersectResult2{
		Kind:    SegmentResult,
		Segment: Segment2{A: ray.Origin.Add(u.Scale(lo)), B: ray.Origin.Add(u.Scale(hi))},
	}, nil
}

// ComputeSquaredDistance2 returns the squared Euclidean distance
// between p and q in the unfolded plane.
func ComputeSquaredDistance2(p, q Point2) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// ParametricDistanceAlongSegment2 returns t in [0,1] such that
// a + t*(b-a) is the closest point on segment [a,b] to p, clamped to
// the segment's extent. Used by path reconstruction to turn
// a crossing point back into an edge(halfedge, t) event.
func ParametricDistanceAlongSegment2(a, b, p Point2) float64 {
	e := b.Sub(a)
	denom := e.Dot(e)
	if denom <= Tolerance {
		return 0
	}
	t := p.Sub(a).Dot(e) / denom
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// RelativeOrder orders two values as SMALLER/EQUAL/LARGER at Tolerance
// resolution.
type RelativeOrder int

const (
	// Smaller indicates the first quantity is strictly less.
	Smaller RelativeOrder = -1
	// Equal indicates the two quantities are equal within tolerance.
	Equal RelativeOrder = 0
	// Larger indicates the first quantity is strictly greater.
	Larger RelativeOrder = 1
)

// CompareRelativeIntersectionAlongSegment2 compares where line1 crosses
// seg1 with where line2 crosses seg2, each measured as a parameter along
// its own segment. seg1 and seg2 are two 2D images (one per cone) of the
// same entry edge, both running from the edge's source to its target,
// so the two parameters are directly comparable. seg1/line1 belong to
// the first cone, seg2/line2 to the second. Used by process_node's
// is_left_of_current tie-break.
func CompareRelativeIntersectionAlongSegment2(seg1 Segment2, line1 Line2, seg2 Segment2, line2 Line2) RelativeOrder {
	p1, err1 := IntersectSegmentLine(seg1, line1)
	p2, err2 := IntersectSegmentLine(seg2, line2)
	if err1 != nil || err2 != nil || p1.Kind != PointResult || p2.Kind != PointResult {
		return Equal
	}
	t1 := ParametricDistanceAlongSegment2(seg1.A, seg1.B, p1.Point)
	t2 := ParametricDistanceAlongSegment2(seg2.A, seg2.B, p2.Point)
	switch {
	case floats.EqualWithinAbs(t1, t2, Tolerance):
		return Equal
	case t1 < t2:
		return Smaller
	default:
		return Larger
	}
}
