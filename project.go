package flat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projectable is anything that can project its extent onto a 1D axis.
//
// The axis does not have to be unit length for pairwise overlap tests, since
// the same axis is used for both shapes and the magnitude cancels in the
// comparisons. Callers that interpret the resulting amounts as real-world
// distances must pass unit-length axes.
type Projectable interface {
	// Project returns the [min, max] interval covering the shape along axis.
	Project(axis mgl64.Vec2) (min, max float64)
}

// ConvexShape is a convex shape expressible as an ordered point set together
// with a finite set of separating-axis candidates (typically edge normals).
// Any implementation can participate in the generic SAT overlap engine.
type ConvexShape interface {
	Projectable

	// Points returns the number of vertices.
	Points() int
	// Point returns the vertex at index. It panics when index is outside
	// [0, Points).
	Point(index int) mgl64.Vec2
	// Axes returns the number of separating-axis candidates.
	Axes() int
	// Axis returns the axis candidate at index. It panics when index is
	// outside [0, Axes).
	Axis(index int) mgl64.Vec2
}

// AxisOverlaps projects a and b onto axis and reports whether the two
// intervals overlap. amount is the signed displacement of a along axis that
// separates the intervals by the shortest distance: the smaller in magnitude
// of pushing a's max down to b's min, or a's min up to b's max.
//
// A false result means axis is a separating axis, which by the SAT proves
// the shapes do not overlap at all.
func AxisOverlaps(a, b Projectable, axis mgl64.Vec2) (amount float64, overlaps bool) {
	minA, maxA := a.Project(axis)
	minB, maxB := b.Project(axis)

	if math.Abs(minB-maxA) < math.Abs(maxB-minA) {
		amount = minB - maxA
	} else {
		amount = maxB - minA
	}

	return amount, minA < maxB && maxA > minB
}

// Overlaps runs the SAT overlap test between two convex shapes.
//
// Every axis of a is tested in index order, then every axis of b. The first
// separating axis found ends the test with no overlap. Otherwise the axis
// with the strictly smallest absolute overlap wins (first such axis on ties,
// making the result deterministic), and pushout is the displacement to apply
// to a so the shapes no longer overlap.
//
// A shape exposing zero axes (a degenerate point) contributes no tests;
// overlap is then decided entirely by the other shape's axes.
func Overlaps[A, B ConvexShape](a A, b B) (pushout mgl64.Vec2, ok bool) {
	amount := math.MaxFloat64

	for i := 0; i < a.Axes(); i++ {
		axis := a.Axis(i)

		p, overlaps := AxisOverlaps(a, b, axis)
		if !overlaps {
			return mgl64.Vec2{}, false
		}

		if math.Abs(p) < math.Abs(amount) {
			amount = p
			pushout = axis.Mul(amount)
		}
	}

	for i := 0; i < b.Axes(); i++ {
		axis := b.Axis(i)

		p, overlaps := AxisOverlaps(a, b, axis)
		if !overlaps {
			return mgl64.Vec2{}, false
		}

		if math.Abs(p) < math.Abs(amount) {
			amount = p
			pushout = axis.Mul(amount)
		}
	}

	return pushout, true
}

// OverlapsCircle tests a convex shape against a circle. pushout is the
// displacement to apply to s, the negation of the circle's own pushout.
func OverlapsCircle[S ConvexShape](s S, c Circle) (pushout mgl64.Vec2, ok bool) {
	p, overlaps := c.Overlaps(s)
	if !overlaps {
		return mgl64.Vec2{}, false
	}

	return p.Mul(-1), true
}

// projectPoints is the shared projection over a shape's vertices. A shape
// with no vertices projects to the empty interval (0, 0).
func projectPoints(s ConvexShape, axis mgl64.Vec2) (min, max float64) {
	count := s.Points()
	if count <= 0 {
		return 0, 0
	}

	min = s.Point(0).Dot(axis)
	max = min

	for i := 1; i < count; i++ {
		d := s.Point(i).Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	return min, max
}
