package flat

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxConvexPolygonPoints is the fixed vertex capacity of a ConvexPolygon.
// The buffer lives inline in the struct so construction never allocates.
const MaxConvexPolygonPoints = 32

// ConvexPolygon is a bounded ordered vertex list assumed to be convex and
// consistently wound. Edge normals are computed on demand rather than
// cached.
//
// The capacity is a hard bound: AddPoint past MaxConvexPolygonPoints panics.
type ConvexPolygon struct {
	points [MaxConvexPolygonPoints]mgl64.Vec2
	count  int
}

// NewConvexPolygon builds a polygon from the given vertices in winding
// order. It panics when more than MaxConvexPolygonPoints are given.
func NewConvexPolygon(points ...mgl64.Vec2) ConvexPolygon {
	var p ConvexPolygon
	for _, point := range points {
		p.AddPoint(point)
	}

	return p
}

// AddPoint appends a vertex. It panics when the polygon is at capacity.
func (p *ConvexPolygon) AddPoint(point mgl64.Vec2) {
	if p.count >= MaxConvexPolygonPoints {
		panic(fmt.Sprintf("flat: convex polygon exceeds %d points", MaxConvexPolygonPoints))
	}

	p.points[p.count] = point
	p.count++
}

// SetPoint replaces the vertex at index.
func (p *ConvexPolygon) SetPoint(index int, point mgl64.Vec2) {
	if index < 0 || index >= p.count {
		panic(fmt.Sprintf("flat: convex polygon point index %d out of range [0, %d)", index, p.count))
	}

	p.points[index] = point
}

// RemovePointAt removes the vertex at index, shifting later vertices down.
func (p *ConvexPolygon) RemovePointAt(index int) {
	if index < 0 || index >= p.count {
		panic(fmt.Sprintf("flat: convex polygon point index %d out of range [0, %d)", index, p.count))
	}

	copy(p.points[index:], p.points[index+1:p.count])
	p.count--
}

// Translate moves every vertex by delta.
func (p *ConvexPolygon) Translate(delta mgl64.Vec2) {
	for i := 0; i < p.count; i++ {
		p.points[i] = p.points[i].Add(delta)
	}
}

// Bounds returns the axis-aligned bounding rectangle of the polygon, or a
// zero rectangle when the polygon has no vertices.
func (p *ConvexPolygon) Bounds() Rect {
	if p.count == 0 {
		return Rect{}
	}

	left, top := p.points[0].X(), p.points[0].Y()
	right, bottom := left, top

	for i := 1; i < p.count; i++ {
		left = min(left, p.points[i].X())
		top = min(top, p.points[i].Y())
		right = max(right, p.points[i].X())
		bottom = max(bottom, p.points[i].Y())
	}

	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Contains reports whether point lies inside the polygon, by accumulating
// the orientation sign of every edge against the point. The point is
// interior exactly when every edge agrees, i.e. the absolute sum equals the
// vertex count. Works for either winding; fewer than 3 vertices never
// contain anything.
func (p *ConvexPolygon) Contains(point mgl64.Vec2) bool {
	if p.count < 3 {
		return false
	}

	sum := 0
	for i := 0; i < p.count; i++ {
		a := p.points[i]
		b := p.points[(i+1)%p.count]

		orientation := cross(b.Sub(a), point.Sub(a))
		if orientation > 0 {
			sum++
		} else if orientation < 0 {
			sum--
		}
	}

	return sum == p.count || sum == -p.count
}

// Edge returns the side from vertex index to the next vertex.
func (p *ConvexPolygon) Edge(index int) Line {
	if index < 0 || index >= p.count {
		panic(fmt.Sprintf("flat: convex polygon edge index %d out of range [0, %d)", index, p.count))
	}

	return Line{From: p.points[index], To: p.points[(index+1)%p.count]}
}

// Edges returns all sides in vertex order.
func (p *ConvexPolygon) Edges() []Line {
	edges := make([]Line, p.count)
	for i := range edges {
		edges[i] = p.Edge(i)
	}

	return edges
}

// Points implements ConvexShape.
func (p *ConvexPolygon) Points() int { return p.count }

// Point returns the vertex at index.
func (p *ConvexPolygon) Point(index int) mgl64.Vec2 {
	if index < 0 || index >= p.count {
		panic(fmt.Sprintf("flat: convex polygon point index %d out of range [0, %d)", index, p.count))
	}

	return p.points[index]
}

// Axes implements ConvexShape: one edge normal per vertex.
func (p *ConvexPolygon) Axes() int { return p.count }

// Axis returns the normal of the edge starting at vertex index, computed on
// demand.
func (p *ConvexPolygon) Axis(index int) mgl64.Vec2 {
	if index < 0 || index >= p.count {
		panic(fmt.Sprintf("flat: convex polygon axis index %d out of range [0, %d)", index, p.count))
	}

	return normalizeOrZero(perpendicular(p.points[(index+1)%p.count].Sub(p.points[index])))
}

// Project implements Projectable.
func (p *ConvexPolygon) Project(axis mgl64.Vec2) (min, max float64) {
	return projectPoints(p, axis)
}
