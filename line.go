package flat

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// parallelEpsilon is the small-denominator threshold used by the closest
// point queries to detect (near-)parallel segments. Intersects deliberately
// does not use it, see the note on that method.
const parallelEpsilon = 1e-8

// Line is a 2D segment between From and To. A zero-length line is tolerated:
// its normal is the zero vector and callers of axis queries must accept a
// zero axis for it.
type Line struct {
	From mgl64.Vec2
	To   mgl64.Vec2
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.To.Sub(l.From).Len()
}

// LengthSqr returns the squared segment length.
func (l Line) LengthSqr() float64 {
	return l.To.Sub(l.From).LenSqr()
}

// Normal returns the unit normal of the segment, or the zero vector for a
// zero-length segment.
func (l Line) Normal() mgl64.Vec2 {
	return normalizeOrZero(perpendicular(l.To.Sub(l.From)))
}

// Bounds returns the axis-aligned bounding rectangle of the segment.
func (l Line) Bounds() Rect {
	left := math.Min(l.From.X(), l.To.X())
	top := math.Min(l.From.Y(), l.To.Y())

	return Rect{
		X:      left,
		Y:      top,
		Width:  math.Max(l.From.X(), l.To.X()) - left,
		Height: math.Max(l.From.Y(), l.To.Y()) - top,
	}
}

// Translate returns the segment moved by delta.
func (l Line) Translate(delta mgl64.Vec2) Line {
	return Line{From: l.From.Add(delta), To: l.To.Add(delta)}
}

// Intersects solves the parametric intersection of the two segments,
// returning the intersection point when t and u both land in [0, 1].
//
// Parallel segments report no intersection, including the collinear
// overlapping case. The parallelism test is an exact zero check on the
// determinant; segments that are nearly parallel due to floating-point noise
// can still take the general branch and produce a far-away clamped miss.
func (l Line) Intersects(other Line) (mgl64.Vec2, bool) {
	b := l.To.Sub(l.From)
	d := other.To.Sub(other.From)

	bDotDPerp := b.X()*d.Y() - b.Y()*d.X()
	if bDotDPerp == 0 {
		return mgl64.Vec2{}, false
	}

	c := other.From.Sub(l.From)

	t := (c.X()*d.Y() - c.Y()*d.X()) / bDotDPerp
	if t < 0 || t > 1 {
		return mgl64.Vec2{}, false
	}

	u := (c.X()*b.Y() - c.Y()*b.X()) / bDotDPerp
	if u < 0 || u > 1 {
		return mgl64.Vec2{}, false
	}

	return l.From.Add(b.Mul(t)), true
}

// ClosestPoint returns the point on the segment closest to the given point.
func (l Line) ClosestPoint(point mgl64.Vec2) mgl64.Vec2 {
	edge := l.To.Sub(l.From)

	lengthSqr := edge.LenSqr()
	if lengthSqr == 0 {
		return l.From
	}

	t := mgl64.Clamp(point.Sub(l.From).Dot(edge)/lengthSqr, 0, 1)

	return l.From.Add(edge.Mul(t))
}

// ClosestPoints returns the pair of points, one on each segment, minimizing
// the distance between the two segments. The general case solves the
// two-variable least-squares system and clamps both parameters to [0, 1];
// (near-)parallel segments, detected by a denominator below parallelEpsilon,
// fall back to projecting an endpoint.
func (l Line) ClosestPoints(other Line) (onSelf, onOther mgl64.Vec2) {
	d1 := l.To.Sub(l.From)
	d2 := other.To.Sub(other.From)
	r := l.From.Sub(other.From)

	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	// Both segments degenerate to points
	if a <= parallelEpsilon && e <= parallelEpsilon {
		return l.From, other.From
	}

	var s, t float64

	if a <= parallelEpsilon {
		t = mgl64.Clamp(f/e, 0, 1)
	} else {
		c := d1.Dot(r)

		if e <= parallelEpsilon {
			s = mgl64.Clamp(-c/a, 0, 1)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b

			if denom > parallelEpsilon {
				s = mgl64.Clamp((b*f-c*e)/denom, 0, 1)
			}

			t = (b*s + f) / e

			if t < 0 {
				t = 0
				s = mgl64.Clamp(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = mgl64.Clamp((b-c)/a, 0, 1)
			}
		}
	}

	return l.From.Add(d1.Mul(s)), other.From.Add(d2.Mul(t))
}

// Points implements ConvexShape.
func (l Line) Points() int { return 2 }

// Point returns From for index 0 and To for index 1.
func (l Line) Point(index int) mgl64.Vec2 {
	switch index {
	case 0:
		return l.From
	case 1:
		return l.To
	default:
		panic(fmt.Sprintf("flat: line point index %d out of range [0, 2)", index))
	}
}

// Axes implements ConvexShape. A segment exposes its single edge normal.
func (l Line) Axes() int { return 1 }

// Axis returns the segment normal for index 0.
func (l Line) Axis(index int) mgl64.Vec2 {
	if index != 0 {
		panic(fmt.Sprintf("flat: line axis index %d out of range [0, 1)", index))
	}

	return l.Normal()
}

// Project implements Projectable.
func (l Line) Project(axis mgl64.Vec2) (min, max float64) {
	return projectPoints(l, axis)
}
