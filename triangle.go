package flat

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a three-vertex convex shape.
//
// Contains is winding-dependent: the vertices must be ordered so the signed
// area cross(B-A, C-A) is positive (counter-clockwise in y-up coordinates,
// clockwise on a y-down screen). A triangle wound the other way silently
// reports every point as outside; no validation is performed.
type Triangle struct {
	A mgl64.Vec2
	B mgl64.Vec2
	C mgl64.Vec2
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(cross(t.B.Sub(t.A), t.C.Sub(t.A))) / 2
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() mgl64.Vec2 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// Translate returns the triangle moved by delta.
func (t Triangle) Translate(delta mgl64.Vec2) Triangle {
	return Triangle{A: t.A.Add(delta), B: t.B.Add(delta), C: t.C.Add(delta)}
}

// Contains reports whether point lies inside the triangle, using the
// same-side test: the point must sit on the positive side of all three
// edges. See the type comment for the required winding.
func (t Triangle) Contains(point mgl64.Vec2) bool {
	return cross(t.B.Sub(t.A), point.Sub(t.A)) > 0 &&
		cross(t.C.Sub(t.B), point.Sub(t.B)) > 0 &&
		cross(t.A.Sub(t.C), point.Sub(t.C)) > 0
}

// Bounds returns the axis-aligned bounding rectangle of the triangle.
func (t Triangle) Bounds() Rect {
	left := math.Min(t.A.X(), math.Min(t.B.X(), t.C.X()))
	top := math.Min(t.A.Y(), math.Min(t.B.Y(), t.C.Y()))
	right := math.Max(t.A.X(), math.Max(t.B.X(), t.C.X()))
	bottom := math.Max(t.A.Y(), math.Max(t.B.Y(), t.C.Y()))

	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Edges returns the three sides in vertex order.
func (t Triangle) Edges() [3]Line {
	return [3]Line{
		{From: t.A, To: t.B},
		{From: t.B, To: t.C},
		{From: t.C, To: t.A},
	}
}

// Points implements ConvexShape.
func (t Triangle) Points() int { return 3 }

// Point returns the vertex at index in A, B, C order.
func (t Triangle) Point(index int) mgl64.Vec2 {
	switch index {
	case 0:
		return t.A
	case 1:
		return t.B
	case 2:
		return t.C
	default:
		panic(fmt.Sprintf("flat: triangle point index %d out of range [0, 3)", index))
	}
}

// Axes implements ConvexShape.
func (t Triangle) Axes() int { return 3 }

// Axis returns the normal of the edge starting at vertex index, computed on
// demand.
func (t Triangle) Axis(index int) mgl64.Vec2 {
	switch index {
	case 0:
		return normalizeOrZero(perpendicular(t.B.Sub(t.A)))
	case 1:
		return normalizeOrZero(perpendicular(t.C.Sub(t.B)))
	case 2:
		return normalizeOrZero(perpendicular(t.A.Sub(t.C)))
	default:
		panic(fmt.Sprintf("flat: triangle axis index %d out of range [0, 3)", index))
	}
}

// Project implements Projectable.
func (t Triangle) Project(axis mgl64.Vec2) (min, max float64) {
	return projectPoints(t, axis)
}
