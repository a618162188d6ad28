package flat

import "github.com/go-gl/mathgl/mgl64"

// Point2 is an integer 2D coordinate, used by the *Int shape variants for
// pixel/tile aligned geometry.
type Point2 struct {
	X int
	Y int
}

var (
	Point2Zero  = Point2{0, 0}
	Point2One   = Point2{1, 1}
	Point2UnitX = Point2{1, 0}
	Point2UnitY = Point2{0, 1}
)

// Add returns the component-wise sum of p and other.
func (p Point2) Add(other Point2) Point2 {
	return Point2{p.X + other.X, p.Y + other.Y}
}

// Sub returns the component-wise difference of p and other.
func (p Point2) Sub(other Point2) Point2 {
	return Point2{p.X - other.X, p.Y - other.Y}
}

// Mul returns p scaled by the given factor.
func (p Point2) Mul(scale int) Point2 {
	return Point2{p.X * scale, p.Y * scale}
}

// Neg returns the negation of p.
func (p Point2) Neg() Point2 {
	return Point2{-p.X, -p.Y}
}

// Vec2 converts p to its floating-point equivalent.
func (p Point2) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{float64(p.X), float64(p.Y)}
}
