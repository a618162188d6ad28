package flat

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// RectInt is the integer variant of Rect, for pixel/tile aligned geometry.
// The same Contains/Overlaps conventions apply: left/top inclusive,
// right/bottom exclusive, and ValidateSize normalizes negative sizes.
type RectInt struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r RectInt) Left() int   { return r.X }
func (r RectInt) Right() int  { return r.X + r.Width }
func (r RectInt) Top() int    { return r.Y }
func (r RectInt) Bottom() int { return r.Y + r.Height }

func (r RectInt) TopLeft() Point2     { return Point2{r.X, r.Y} }
func (r RectInt) TopRight() Point2    { return Point2{r.X + r.Width, r.Y} }
func (r RectInt) BottomRight() Point2 { return Point2{r.X + r.Width, r.Y + r.Height} }
func (r RectInt) BottomLeft() Point2  { return Point2{r.X, r.Y + r.Height} }

// Center returns the midpoint of the rectangle, truncated toward the
// top-left on odd sizes.
func (r RectInt) Center() Point2 {
	return Point2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Size returns the width and height as a point.
func (r RectInt) Size() Point2 {
	return Point2{r.Width, r.Height}
}

// Area returns Width * Height.
func (r RectInt) Area() int {
	return r.Width * r.Height
}

// Rect converts to the floating-point rectangle.
func (r RectInt) Rect() Rect {
	return Rect{
		X:      float64(r.X),
		Y:      float64(r.Y),
		Width:  float64(r.Width),
		Height: float64(r.Height),
	}
}

// ValidateSize returns the canonical non-negative-size form.
func (r RectInt) ValidateSize() RectInt {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}

	return r
}

// Translate returns the rectangle moved by delta.
func (r RectInt) Translate(delta Point2) RectInt {
	r.X += delta.X
	r.Y += delta.Y

	return r
}

// Inflate returns the rectangle grown by amount on every side.
func (r RectInt) Inflate(amount int) RectInt {
	return RectInt{
		X:      r.X - amount,
		Y:      r.Y - amount,
		Width:  r.Width + amount*2,
		Height: r.Height + amount*2,
	}
}

// Conflate returns the smallest rectangle covering both r and other.
func (r RectInt) Conflate(other RectInt) RectInt {
	left := min(r.Left(), other.Left())
	top := min(r.Top(), other.Top())
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return RectInt{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Contains reports whether point lies inside the rectangle, left/top
// inclusive and right/bottom exclusive.
func (r RectInt) Contains(point Point2) bool {
	return point.X >= r.X && point.X < r.X+r.Width &&
		point.Y >= r.Y && point.Y < r.Y+r.Height
}

// ContainsRect reports whether other lies entirely inside the rectangle.
func (r RectInt) ContainsRect(other RectInt) bool {
	return other.Left() >= r.Left() && other.Right() <= r.Right() &&
		other.Top() >= r.Top() && other.Bottom() <= r.Bottom()
}

// Overlaps is the interval fast path, see Rect.Overlaps.
func (r RectInt) Overlaps(other RectInt) bool {
	return r.X+r.Width > other.X && r.X < other.X+other.Width &&
		r.Y+r.Height > other.Y && r.Y < other.Y+other.Height
}

// Intersection returns the overlapping region of the two rectangles. An axis
// with no overlap yields zero position and size on that axis.
func (r RectInt) Intersection(other RectInt) RectInt {
	var result RectInt

	if r.X+r.Width > other.X && r.X < other.X+other.Width {
		result.X = max(r.Left(), other.Left())
		result.Width = min(r.Right(), other.Right()) - result.X
	}
	if r.Y+r.Height > other.Y && r.Y < other.Y+other.Height {
		result.Y = max(r.Top(), other.Top())
		result.Height = min(r.Bottom(), other.Bottom()) - result.Y
	}

	return result
}

// Sector returns the outcode describing where point lies relative to the
// rectangle: a combination of the Sector bits, or SectorInside.
func (r RectInt) Sector(point Point2) uint8 {
	var sector uint8

	if point.X < r.Left() {
		sector |= SectorLeft
	} else if point.X >= r.Right() {
		sector |= SectorRight
	}
	if point.Y < r.Top() {
		sector |= SectorTop
	} else if point.Y >= r.Bottom() {
		sector |= SectorBottom
	}

	return sector
}

// Edges returns the four sides in TopLeft -> TopRight -> BottomRight ->
// BottomLeft winding.
func (r RectInt) Edges() [4]LineInt {
	return [4]LineInt{
		{From: r.TopLeft(), To: r.TopRight()},
		{From: r.TopRight(), To: r.BottomRight()},
		{From: r.BottomRight(), To: r.BottomLeft()},
		{From: r.BottomLeft(), To: r.TopLeft()},
	}
}

// Points implements ConvexShape.
func (r RectInt) Points() int { return 4 }

// Point returns the corner at index in TopLeft, TopRight, BottomRight,
// BottomLeft order.
func (r RectInt) Point(index int) mgl64.Vec2 {
	switch index {
	case 0:
		return r.TopLeft().Vec2()
	case 1:
		return r.TopRight().Vec2()
	case 2:
		return r.BottomRight().Vec2()
	case 3:
		return r.BottomLeft().Vec2()
	default:
		panic(fmt.Sprintf("flat: rectint point index %d out of range [0, 4)", index))
	}
}

// Axes implements ConvexShape, see Rect.Axes.
func (r RectInt) Axes() int { return 2 }

// Axis returns unit X for index 0 and unit Y for index 1.
func (r RectInt) Axis(index int) mgl64.Vec2 {
	switch index {
	case 0:
		return mgl64.Vec2{1, 0}
	case 1:
		return mgl64.Vec2{0, 1}
	default:
		panic(fmt.Sprintf("flat: rectint axis index %d out of range [0, 2)", index))
	}
}

// Project implements Projectable.
func (r RectInt) Project(axis mgl64.Vec2) (min, max float64) {
	return projectPoints(r, axis)
}
