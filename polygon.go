package flat

import (
	"fmt"

	"github.com/akmonengine/flat/earclip"
	"github.com/go-gl/mathgl/mgl64"
)

// Polygon is a mutable, arbitrary-length vertex list, possibly concave. It
// is the one reference type among the shapes: mutations are visible through
// every holder of the pointer.
//
// Two derived values are cached with independent dirty flags: the
// ear-clipping triangulation and the bounding rectangle. Every mutation
// marks both dirty and the next read recomputes; repeated reads without an
// intervening mutation reuse the caches.
//
// Containment, area and overlap queries work per triangle of the cached
// triangulation, so a self-intersecting outline, whose triangulation is
// undefined, gives undefined query results.
//
// Polygon is not safe for concurrent use: a read races with any mutation on
// the dirty flags and cached slices. Share it with a single writer, or
// synchronize externally.
type Polygon struct {
	points []mgl64.Vec2

	indices        []int
	trianglesDirty bool
	bounds         Rect
	boundsDirty    bool
}

// NewPolygon builds a polygon from the given outline vertices.
func NewPolygon(points ...mgl64.Vec2) *Polygon {
	p := &Polygon{
		points:         append([]mgl64.Vec2(nil), points...),
		trianglesDirty: true,
		boundsDirty:    true,
	}

	return p
}

func (p *Polygon) markDirty() {
	p.trianglesDirty = true
	p.boundsDirty = true
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.points)
}

// Point returns the vertex at index.
func (p *Polygon) Point(index int) mgl64.Vec2 {
	if index < 0 || index >= len(p.points) {
		panic(fmt.Sprintf("flat: polygon point index %d out of range [0, %d)", index, len(p.points)))
	}

	return p.points[index]
}

// SetPoint replaces the vertex at index, invalidating the caches only when
// the value actually changes.
func (p *Polygon) SetPoint(index int, point mgl64.Vec2) {
	if index < 0 || index >= len(p.points) {
		panic(fmt.Sprintf("flat: polygon point index %d out of range [0, %d)", index, len(p.points)))
	}

	if p.points[index] == point {
		return
	}

	p.points[index] = point
	p.markDirty()
}

// Add appends vertices to the outline.
func (p *Polygon) Add(points ...mgl64.Vec2) {
	if len(points) == 0 {
		return
	}

	p.points = append(p.points, points...)
	p.markDirty()
}

// Insert adds a vertex at index, shifting later vertices up. index may equal
// Len to append.
func (p *Polygon) Insert(index int, point mgl64.Vec2) {
	if index < 0 || index > len(p.points) {
		panic(fmt.Sprintf("flat: polygon insert index %d out of range [0, %d]", index, len(p.points)))
	}

	p.points = append(p.points, mgl64.Vec2{})
	copy(p.points[index+1:], p.points[index:])
	p.points[index] = point
	p.markDirty()
}

// RemoveAt removes the vertex at index.
func (p *Polygon) RemoveAt(index int) {
	if index < 0 || index >= len(p.points) {
		panic(fmt.Sprintf("flat: polygon point index %d out of range [0, %d)", index, len(p.points)))
	}

	p.points = append(p.points[:index], p.points[index+1:]...)
	p.markDirty()
}

// Clear removes all vertices and eagerly resets both caches to the empty
// state.
func (p *Polygon) Clear() {
	p.points = p.points[:0]
	p.indices = nil
	p.trianglesDirty = false
	p.bounds = Rect{}
	p.boundsDirty = false
}

// Move translates every vertex by delta.
func (p *Polygon) Move(delta mgl64.Vec2) {
	for i := range p.points {
		p.points[i] = p.points[i].Add(delta)
	}
	p.markDirty()
}

// Center returns the center of the bounding rectangle.
func (p *Polygon) Center() mgl64.Vec2 {
	return p.Bounds().Center()
}

// SetCenter moves the polygon so its bounds center lands on position.
func (p *Polygon) SetCenter(position mgl64.Vec2) {
	p.Move(position.Sub(p.Center()))
}

// Bounds returns the axis-aligned bounding rectangle, recomputing it only
// when a mutation occurred since the last read. An empty polygon has zero
// bounds.
func (p *Polygon) Bounds() Rect {
	if p.boundsDirty {
		p.bounds = Rect{}

		if len(p.points) > 0 {
			left, top := p.points[0].X(), p.points[0].Y()
			right, bottom := left, top

			for _, point := range p.points[1:] {
				left = min(left, point.X())
				top = min(top, point.Y())
				right = max(right, point.X())
				bottom = max(bottom, point.Y())
			}

			p.bounds = Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
		}

		p.boundsDirty = false
	}

	return p.bounds
}

// Indices returns the cached triangulation as a flat list of index triples
// into the vertex list, re-triangulating only when a mutation occurred since
// the last read. The returned slice is the cache itself and must not be
// modified.
func (p *Polygon) Indices() []int {
	if p.trianglesDirty {
		p.indices = earclip.Triangulate(p.points)
		p.trianglesDirty = false
	}

	return p.indices
}

// TriangleCount returns the number of triangles in the triangulation.
func (p *Polygon) TriangleCount() int {
	return len(p.Indices()) / 3
}

// TriangleAt returns the triangle at index of the triangulation.
func (p *Polygon) TriangleAt(index int) Triangle {
	indices := p.Indices()
	if index < 0 || index*3 >= len(indices) {
		panic(fmt.Sprintf("flat: polygon triangle index %d out of range [0, %d)", index, len(indices)/3))
	}

	return Triangle{
		A: p.points[indices[index*3]],
		B: p.points[indices[index*3+1]],
		C: p.points[indices[index*3+2]],
	}
}

// Triangles returns the triangulation as freshly built Triangle values. The
// underlying index cache is reused across calls.
func (p *Polygon) Triangles() []Triangle {
	triangles := make([]Triangle, p.TriangleCount())
	for i := range triangles {
		triangles[i] = p.TriangleAt(i)
	}

	return triangles
}

// Edge returns the outline side from vertex index to the next vertex.
func (p *Polygon) Edge(index int) Line {
	if index < 0 || index >= len(p.points) {
		panic(fmt.Sprintf("flat: polygon edge index %d out of range [0, %d)", index, len(p.points)))
	}

	return Line{From: p.points[index], To: p.points[(index+1)%len(p.points)]}
}

// Edges returns all outline sides in vertex order.
func (p *Polygon) Edges() []Line {
	edges := make([]Line, len(p.points))
	for i := range edges {
		edges[i] = p.Edge(i)
	}

	return edges
}

// Area returns the summed area of the triangulation.
func (p *Polygon) Area() float64 {
	var area float64
	for i := 0; i < p.TriangleCount(); i++ {
		area += p.TriangleAt(i).Area()
	}

	return area
}

// Contains reports whether point lies inside the polygon, rejecting early on
// the bounding rectangle and then testing each triangle of the
// triangulation.
func (p *Polygon) Contains(point mgl64.Vec2) bool {
	if !p.Bounds().Contains(point) {
		return false
	}

	for i := 0; i < p.TriangleCount(); i++ {
		if p.TriangleAt(i).Contains(point) {
			return true
		}
	}

	return false
}

// Overlaps reports whether the polygon overlaps the rectangle, testing each
// triangle of the triangulation through the SAT engine after a bounds
// reject.
func (p *Polygon) Overlaps(rect Rect) bool {
	if !p.Bounds().Overlaps(rect) {
		return false
	}

	for i := 0; i < p.TriangleCount(); i++ {
		if _, ok := Overlaps(p.TriangleAt(i), rect); ok {
			return true
		}
	}

	return false
}

// OverlapsCircle reports whether the polygon overlaps the circle, testing
// each triangle of the triangulation after a bounds reject.
func (p *Polygon) OverlapsCircle(circle Circle) bool {
	if !p.Bounds().Overlaps(circle.Bounds()) {
		return false
	}

	for i := 0; i < p.TriangleCount(); i++ {
		if _, ok := circle.Overlaps(p.TriangleAt(i)); ok {
			return true
		}
	}

	return false
}
