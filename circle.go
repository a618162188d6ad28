package flat

import (
	"encoding/json"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circle is a center/radius shape. It is convex but exposes infinitely many
// separating axes, so it cannot satisfy ConvexShape; overlap tests against
// circles use the dedicated formulas below instead of the generic SAT loop.
type Circle struct {
	Position mgl64.Vec2
	Radius   float64
}

// Project implements Projectable. The circle covers its projected center
// plus/minus the radius, scaled by the axis magnitude.
func (c Circle) Project(axis mgl64.Vec2) (min, max float64) {
	center := c.Position.Dot(axis)
	extent := c.Radius * axis.Len()

	return center - extent, center + extent
}

// Contains reports whether point lies strictly inside the circle.
func (c Circle) Contains(point mgl64.Vec2) bool {
	return c.Position.Sub(point).LenSqr() < c.Radius*c.Radius
}

// Bounds returns the axis-aligned bounding rectangle of the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		X:      c.Position.X() - c.Radius,
		Y:      c.Position.Y() - c.Radius,
		Width:  c.Radius * 2,
		Height: c.Radius * 2,
	}
}

// Translate returns the circle moved by delta.
func (c Circle) Translate(delta mgl64.Vec2) Circle {
	return Circle{Position: c.Position.Add(delta), Radius: c.Radius}
}

// OverlapsCircle tests two circles. They overlap when the squared distance
// between the centers is strictly less than the squared sum of the radii, so
// exact tangency does not count as overlap. pushout is the displacement to
// apply to c.
//
// When the centers coincide exactly there is no direction to push along;
// the fallback pushes along unit X by the combined radius.
func (c Circle) OverlapsCircle(other Circle) (pushout mgl64.Vec2, ok bool) {
	combined := c.Radius + other.Radius
	delta := c.Position.Sub(other.Position)
	lengthSqr := delta.LenSqr()

	if lengthSqr >= combined*combined {
		return mgl64.Vec2{}, false
	}

	if lengthSqr <= 0 {
		return mgl64.Vec2{combined, 0}, true
	}

	length := math.Sqrt(lengthSqr)

	return delta.Mul(1 / length).Mul(combined - length), true
}

// Overlaps tests the circle against any convex shape. Two axis families are
// tested: every axis of the shape, and for every vertex of the shape the
// direction from that vertex to the circle's center (unit X when the center
// coincides with the vertex). The axis with the smallest absolute overlap
// wins, first such axis on ties; pushout is the displacement to apply to c.
func (c Circle) Overlaps(shape ConvexShape) (pushout mgl64.Vec2, ok bool) {
	amount := math.MaxFloat64

	test := func(axis mgl64.Vec2) bool {
		p, overlaps := AxisOverlaps(c, shape, axis)
		if !overlaps {
			return false
		}

		if math.Abs(p) < math.Abs(amount) {
			amount = p
			pushout = axis.Mul(amount)
		}

		return true
	}

	for i := 0; i < shape.Axes(); i++ {
		if !test(shape.Axis(i)) {
			return mgl64.Vec2{}, false
		}
	}

	for i := 0; i < shape.Points(); i++ {
		axis := normalizeOrZero(c.Position.Sub(shape.Point(i)))
		if axis.X() == 0 && axis.Y() == 0 {
			axis = mgl64.Vec2{1, 0}
		}

		if !test(axis) {
			return mgl64.Vec2{}, false
		}
	}

	return pushout, true
}

type circleJSON struct {
	X      float64
	Y      float64
	Radius float64
}

// MarshalJSON encodes the circle as {"X", "Y", "Radius"}.
func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(circleJSON{X: c.Position.X(), Y: c.Position.Y(), Radius: c.Radius})
}

// UnmarshalJSON decodes the {"X", "Y", "Radius"} form.
func (c *Circle) UnmarshalJSON(data []byte) error {
	var v circleJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	c.Position = mgl64.Vec2{v.X, v.Y}
	c.Radius = v.Radius

	return nil
}
