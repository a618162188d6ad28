package flat

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// LineInt is the integer-endpoint variant of Line. Geometry queries convert
// to the floating-point segment.
type LineInt struct {
	From Point2
	To   Point2
}

// Line converts to the floating-point segment.
func (l LineInt) Line() Line {
	return Line{From: l.From.Vec2(), To: l.To.Vec2()}
}

// Length returns the segment length.
func (l LineInt) Length() float64 {
	return l.Line().Length()
}

// Normal returns the unit normal of the segment, or the zero vector for a
// zero-length segment.
func (l LineInt) Normal() mgl64.Vec2 {
	return l.Line().Normal()
}

// Bounds returns the integer bounding rectangle of the segment.
func (l LineInt) Bounds() RectInt {
	left := min(l.From.X, l.To.X)
	top := min(l.From.Y, l.To.Y)

	return RectInt{
		X:      left,
		Y:      top,
		Width:  max(l.From.X, l.To.X) - left,
		Height: max(l.From.Y, l.To.Y) - top,
	}
}

// Translate returns the segment moved by delta.
func (l LineInt) Translate(delta Point2) LineInt {
	return LineInt{From: l.From.Add(delta), To: l.To.Add(delta)}
}

// Points implements ConvexShape.
func (l LineInt) Points() int { return 2 }

// Point returns From for index 0 and To for index 1.
func (l LineInt) Point(index int) mgl64.Vec2 {
	switch index {
	case 0:
		return l.From.Vec2()
	case 1:
		return l.To.Vec2()
	default:
		panic(fmt.Sprintf("flat: lineint point index %d out of range [0, 2)", index))
	}
}

// Axes implements ConvexShape.
func (l LineInt) Axes() int { return 1 }

// Axis returns the segment normal for index 0.
func (l LineInt) Axis(index int) mgl64.Vec2 {
	if index != 0 {
		panic(fmt.Sprintf("flat: lineint axis index %d out of range [0, 1)", index))
	}

	return l.Normal()
}

// Project implements Projectable.
func (l LineInt) Project(axis mgl64.Vec2) (min, max float64) {
	return projectPoints(l, axis)
}
