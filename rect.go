package flat

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sector bits returned by Rect.Sector, identifying which region around a
// rectangle a point falls in. Zero means the point is inside.
const (
	SectorInside uint8 = 0
	SectorTop    uint8 = 1 << 0
	SectorBottom uint8 = 1 << 1
	SectorLeft   uint8 = 1 << 2
	SectorRight  uint8 = 1 << 3
)

// Rect is an axis-aligned rectangle.
//
// Width and Height may be negative after arithmetic; call ValidateSize before
// using such a rectangle in projection, containment or sector queries, which
// all assume non-negative size.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectCentered returns a rectangle of the given size centered on position.
func RectCentered(position mgl64.Vec2, width, height float64) Rect {
	return Rect{
		X:      position.X() - width/2,
		Y:      position.Y() - height/2,
		Width:  width,
		Height: height,
	}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) TopLeft() mgl64.Vec2     { return mgl64.Vec2{r.X, r.Y} }
func (r Rect) TopRight() mgl64.Vec2    { return mgl64.Vec2{r.X + r.Width, r.Y} }
func (r Rect) BottomRight() mgl64.Vec2 { return mgl64.Vec2{r.X + r.Width, r.Y + r.Height} }
func (r Rect) BottomLeft() mgl64.Vec2  { return mgl64.Vec2{r.X, r.Y + r.Height} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Size returns the width and height as a vector.
func (r Rect) Size() mgl64.Vec2 {
	return mgl64.Vec2{r.Width, r.Height}
}

// Area returns Width * Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// ValidateSize returns the canonical form of the rectangle, flipping any
// negative Width/Height so the size is non-negative and the origin is the
// top-left corner.
func (r Rect) ValidateSize() Rect {
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
func (r Rect) Translate(delta mgl64.Vec2) Rect {
	r.X += delta.X()
	r.Y += delta.Y()

	return r
}

// Inflate returns the rectangle grown by amount on every side.
func (r Rect) Inflate(amount float64) Rect {
	return Rect{
		X:      r.X - amount,
		Y:      r.Y - amount,
		Width:  r.Width + amount*2,
		Height: r.Height + amount*2,
	}
}

// Conflate returns the smallest rectangle covering both r and other.
func (r Rect) Conflate(other Rect) Rect {
	left := math.Min(r.Left(), other.Left())
	top := math.Min(r.Top(), other.Top())
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())

	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Contains reports whether point lies inside the rectangle. The left/top
// edges are inclusive and the right/bottom edges exclusive, so adjacent
// rectangles partition the plane without double-claiming shared edges.
func (r Rect) Contains(point mgl64.Vec2) bool {
	return point.X() >= r.X && point.X() < r.X+r.Width &&
		point.Y() >= r.Y && point.Y() < r.Y+r.Height
}

// ContainsRect reports whether other lies entirely inside the rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left() >= r.Left() && other.Right() <= r.Right() &&
		other.Top() >= r.Top() && other.Bottom() <= r.Bottom()
}

// Overlaps is the rectangle fast path: two axis-aligned rectangles overlap
// exactly when their X intervals and Y intervals both overlap, so no SAT
// enumeration is needed. Intervals are open per the Contains convention.
func (r Rect) Overlaps(other Rect) bool {
	return r.X+r.Width > other.X && r.X < other.X+other.Width &&
		r.Y+r.Height > other.Y && r.Y < other.Y+other.Height
}

// Intersection returns the overlapping region of the two rectangles. An axis
// with no overlap yields zero position and size on that axis.
func (r Rect) Intersection(other Rect) Rect {
	var result Rect

	if r.X+r.Width > other.X && r.X < other.X+other.Width {
		result.X = math.Max(r.Left(), other.Left())
		result.Width = math.Min(r.Right(), other.Right()) - result.X
	}
	if r.Y+r.Height > other.Y && r.Y < other.Y+other.Height {
		result.Y = math.Max(r.Top(), other.Top())
		result.Height = math.Min(r.Bottom(), other.Bottom()) - result.Y
	}

	return result
}

// Sector returns the outcode describing where point lies relative to the
// rectangle: a combination of the Sector bits, or SectorInside.
func (r Rect) Sector(point mgl64.Vec2) uint8 {
	var sector uint8

	if point.X() < r.Left() {
		sector |= SectorLeft
	} else if point.X() >= r.Right() {
		sector |= SectorRight
	}
	if point.Y() < r.Top() {
		sector |= SectorTop
	} else if point.Y() >= r.Bottom() {
		sector |= SectorBottom
	}

	return sector
}

// Edges returns the four sides in TopLeft -> TopRight -> BottomRight ->
// BottomLeft winding.
func (r Rect) Edges() [4]Line {
	return [4]Line{
		{From: r.TopLeft(), To: r.TopRight()},
		{From: r.TopRight(), To: r.BottomRight()},
		{From: r.BottomRight(), To: r.BottomLeft()},
		{From: r.BottomLeft(), To: r.TopLeft()},
	}
}

// Points implements ConvexShape.
func (r Rect) Points() int { return 4 }

// Point returns the corner at index in TopLeft, TopRight, BottomRight,
// BottomLeft order.
func (r Rect) Point(index int) mgl64.Vec2 {
	switch index {
	case 0:
		return r.TopLeft()
	case 1:
		return r.TopRight()
	case 2:
		return r.BottomRight()
	case 3:
		return r.BottomLeft()
	default:
		panic(fmt.Sprintf("flat: rect point index %d out of range [0, 4)", index))
	}
}

// Axes implements ConvexShape. An axis-aligned rectangle only needs two
// axes: parallel edges share a normal, so the four edges collapse to unit X
// and unit Y.
func (r Rect) Axes() int { return 2 }

// Axis returns unit X for index 0 and unit Y for index 1.
func (r Rect) Axis(index int) mgl64.Vec2 {
	switch index {
	case 0:
		return mgl64.Vec2{1, 0}
	case 1:
		return mgl64.Vec2{0, 1}
	default:
		panic(fmt.Sprintf("flat: rect axis index %d out of range [0, 2)", index))
	}
}

// Project implements Projectable.
func (r Rect) Project(axis mgl64.Vec2) (min, max float64) {
	return projectPoints(r, axis)
}
