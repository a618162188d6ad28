package flat

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTriangleContains(t *testing.T) {
	triangle := Triangle{
		A: mgl64.Vec2{0, 0},
		B: mgl64.Vec2{10, 0},
		C: mgl64.Vec2{5, 10},
	}

	tests := []struct {
		name     string
		point    mgl64.Vec2
		expected bool
	}{
		{"centroid", mgl64.Vec2{5, 5}, true},
		{"below the base", mgl64.Vec2{5, -1}, false},
		{"outside left", mgl64.Vec2{-1, 1}, false},
		{"outside right of slanted edge", mgl64.Vec2{9, 5}, false},
		{"near a vertex, inside", mgl64.Vec2{5, 9}, true},
		{"on an edge is not contained", mgl64.Vec2{5, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := triangle.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestTriangleContainsRequiresWinding(t *testing.T) {
	// Contains only classifies correctly for positive-signed-area winding;
	// the reversed triangle silently reports interior points as outside.
	// This pins down the documented precondition.
	reversed := Triangle{
		A: mgl64.Vec2{0, 0},
		B: mgl64.Vec2{5, 10},
		C: mgl64.Vec2{10, 0},
	}

	if reversed.Contains(mgl64.Vec2{5, 5}) {
		t.Error("opposite winding should fail containment, per the documented precondition")
	}
}

func TestTriangleArea(t *testing.T) {
	triangle := Triangle{
		A: mgl64.Vec2{0, 0},
		B: mgl64.Vec2{10, 0},
		C: mgl64.Vec2{5, 10},
	}

	if got := triangle.Area(); !floatEqual(got, 50, 1e-9) {
		t.Errorf("Area = %v, want 50", got)
	}

	// Area is winding-independent
	reversed := Triangle{A: triangle.A, B: triangle.C, C: triangle.B}
	if got := reversed.Area(); !floatEqual(got, 50, 1e-9) {
		t.Errorf("reversed Area = %v, want 50", got)
	}
}

func TestTriangleCentroid(t *testing.T) {
	triangle := Triangle{
		A: mgl64.Vec2{0, 0},
		B: mgl64.Vec2{9, 0},
		C: mgl64.Vec2{0, 9},
	}

	if got := triangle.Centroid(); !vec2Equal(got, mgl64.Vec2{3, 3}, 1e-9) {
		t.Errorf("Centroid = %v, want (3, 3)", got)
	}
}

func TestTriangleOverlapsRect(t *testing.T) {
	triangle := Triangle{
		A: mgl64.Vec2{0, 0},
		B: mgl64.Vec2{10, 0},
		C: mgl64.Vec2{5, 10},
	}

	inside := Rect{X: 4, Y: 2, Width: 2, Height: 2}
	if _, ok := Overlaps(triangle, inside); !ok {
		t.Error("rect inside the triangle should overlap")
	}

	// Inside the bounding box but beyond the right slanted edge
	outside := Rect{X: 9, Y: 8, Width: 1, Height: 1}
	if _, ok := Overlaps(triangle, outside); ok {
		t.Error("rect beyond the slanted edge should not overlap")
	}
}

func TestTrianglePointPanics(t *testing.T) {
	triangle := Triangle{}

	defer func() {
		if recover() == nil {
			t.Error("Point(3) should panic")
		}
	}()
	triangle.Point(3)
}
