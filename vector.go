package flat

import "github.com/go-gl/mathgl/mgl64"

// perpendicular returns v rotated 90 degrees counter-clockwise.
// Applied to an edge vector it yields that edge's normal direction.
func perpendicular(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.Y(), v.X()}
}

// cross returns the scalar 2D cross product of a and b.
// Its sign encodes the orientation of b relative to a.
func cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// normalizeOrZero returns v scaled to unit length, or the zero vector when v
// has zero length. mgl64.Vec2.Normalize would produce NaN components there,
// and the degenerate-geometry policy is to propagate a zero vector instead.
func normalizeOrZero(v mgl64.Vec2) mgl64.Vec2 {
	if v.X() == 0 && v.Y() == 0 {
		return mgl64.Vec2{}
	}

	return v.Normalize()
}
