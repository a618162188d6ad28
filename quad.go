package flat

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quad is an arbitrary four-sided convex shape. The vertices are assumed to
// form a simple polygon in consistent winding.
//
// The four edge normals are cached and recomputed lazily: any vertex change
// marks the cache dirty and the next axis read refreshes it. Vertices are
// therefore only reachable through the getters and setters.
type Quad struct {
	a, b, c, d mgl64.Vec2

	normals      [4]mgl64.Vec2
	normalsDirty bool
}

// NewQuad builds a quad from four vertices in winding order.
func NewQuad(a, b, c, d mgl64.Vec2) Quad {
	return Quad{a: a, b: b, c: c, d: d, normalsDirty: true}
}

func (q *Quad) A() mgl64.Vec2 { return q.a }
func (q *Quad) B() mgl64.Vec2 { return q.b }
func (q *Quad) C() mgl64.Vec2 { return q.c }
func (q *Quad) D() mgl64.Vec2 { return q.d }

func (q *Quad) SetA(v mgl64.Vec2) {
	q.a = v
	q.normalsDirty = true
}

func (q *Quad) SetB(v mgl64.Vec2) {
	q.b = v
	q.normalsDirty = true
}

func (q *Quad) SetC(v mgl64.Vec2) {
	q.c = v
	q.normalsDirty = true
}

func (q *Quad) SetD(v mgl64.Vec2) {
	q.d = v
	q.normalsDirty = true
}

// Translate moves all four vertices by delta. The edge normals are
// unaffected by translation but the cache is invalidated anyway to keep the
// mutation rule uniform.
func (q *Quad) Translate(delta mgl64.Vec2) {
	q.a = q.a.Add(delta)
	q.b = q.b.Add(delta)
	q.c = q.c.Add(delta)
	q.d = q.d.Add(delta)
	q.normalsDirty = true
}

// Center returns the average of the four vertices.
func (q *Quad) Center() mgl64.Vec2 {
	return q.a.Add(q.b).Add(q.c).Add(q.d).Mul(1.0 / 4.0)
}

// Bounds returns the axis-aligned bounding rectangle of the quad.
func (q *Quad) Bounds() Rect {
	left := math.Min(math.Min(q.a.X(), q.b.X()), math.Min(q.c.X(), q.d.X()))
	top := math.Min(math.Min(q.a.Y(), q.b.Y()), math.Min(q.c.Y(), q.d.Y()))
	right := math.Max(math.Max(q.a.X(), q.b.X()), math.Max(q.c.X(), q.d.X()))
	bottom := math.Max(math.Max(q.a.Y(), q.b.Y()), math.Max(q.c.Y(), q.d.Y()))

	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Edges returns the four sides in vertex order.
func (q *Quad) Edges() [4]Line {
	return [4]Line{
		{From: q.a, To: q.b},
		{From: q.b, To: q.c},
		{From: q.c, To: q.d},
		{From: q.d, To: q.a},
	}
}

// refreshNormals recomputes the cached edge normals when dirty. Every axis
// read path must go through here first.
func (q *Quad) refreshNormals() {
	if !q.normalsDirty {
		return
	}

	q.normals[0] = normalizeOrZero(perpendicular(q.b.Sub(q.a)))
	q.normals[1] = normalizeOrZero(perpendicular(q.c.Sub(q.b)))
	q.normals[2] = normalizeOrZero(perpendicular(q.d.Sub(q.c)))
	q.normals[3] = normalizeOrZero(perpendicular(q.a.Sub(q.d)))
	q.normalsDirty = false
}

// Points implements ConvexShape.
func (q *Quad) Points() int { return 4 }

// Point returns the vertex at index in A, B, C, D order.
func (q *Quad) Point(index int) mgl64.Vec2 {
	switch index {
	case 0:
		return q.a
	case 1:
		return q.b
	case 2:
		return q.c
	case 3:
		return q.d
	default:
		panic(fmt.Sprintf("flat: quad point index %d out of range [0, 4)", index))
	}
}

// Axes implements ConvexShape.
func (q *Quad) Axes() int { return 4 }

// Axis returns the outward normal of the edge starting at vertex index,
// refreshing the cache if a vertex changed since the last read.
func (q *Quad) Axis(index int) mgl64.Vec2 {
	if index < 0 || index >= 4 {
		panic(fmt.Sprintf("flat: quad axis index %d out of range [0, 4)", index))
	}

	q.refreshNormals()

	return q.normals[index]
}

// Project implements Projectable.
func (q *Quad) Project(axis mgl64.Vec2) (min, max float64) {
	return projectPoints(q, axis)
}
