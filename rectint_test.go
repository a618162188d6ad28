package flat

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRectIntContains(t *testing.T) {
	rect := RectInt{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name     string
		point    Point2
		expected bool
	}{
		{"top-left corner is inclusive", Point2{0, 0}, true},
		{"bottom-right corner is exclusive", Point2{10, 10}, false},
		{"last interior cell", Point2{9, 9}, true},
		{"outside", Point2{-1, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestRectIntOverlapsAndIntersection(t *testing.T) {
	a := RectInt{X: 0, Y: 0, Width: 10, Height: 10}
	b := RectInt{X: 5, Y: 5, Width: 10, Height: 10}
	c := RectInt{X: 10, Y: 0, Width: 5, Height: 5}

	if !a.Overlaps(b) {
		t.Error("a and b should overlap")
	}
	if a.Overlaps(c) {
		t.Error("touching rects should not overlap")
	}

	got := a.Intersection(b)
	want := RectInt{X: 5, Y: 5, Width: 5, Height: 5}
	if got != want {
		t.Errorf("Intersection = %+v, want %+v", got, want)
	}
}

func TestRectIntValidateSize(t *testing.T) {
	rect := RectInt{X: 10, Y: 20, Width: -4, Height: -6}

	got := rect.ValidateSize()
	want := RectInt{X: 6, Y: 14, Width: 4, Height: 6}
	if got != want {
		t.Errorf("ValidateSize = %+v, want %+v", got, want)
	}
}

func TestRectIntAsConvexShape(t *testing.T) {
	rect := RectInt{X: 0, Y: 0, Width: 10, Height: 10}
	other := Rect{X: 5.5, Y: 0, Width: 10, Height: 10}

	pushout, ok := Overlaps(rect, other)
	if !ok {
		t.Fatal("rects should overlap")
	}
	if !vec2Equal(pushout, mgl64.Vec2{-4.5, 0}, 1e-9) {
		t.Errorf("pushout = %v, want (-4.5, 0)", pushout)
	}
}

func TestRectIntSector(t *testing.T) {
	rect := RectInt{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name     string
		point    Point2
		expected uint8
	}{
		{"inside", Point2{5, 5}, SectorInside},
		{"above", Point2{5, -1}, SectorTop},
		{"below", Point2{5, 11}, SectorBottom},
		{"left", Point2{-1, 5}, SectorLeft},
		{"right", Point2{11, 5}, SectorRight},
		{"bottom-left diagonal", Point2{-1, 11}, SectorBottom | SectorLeft},
		{"right edge is outside", Point2{10, 5}, SectorRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.Sector(tt.point); got != tt.expected {
				t.Errorf("Sector(%v) = %b, want %b", tt.point, got, tt.expected)
			}
		})
	}
}

func TestRectIntCenterAndEdges(t *testing.T) {
	rect := RectInt{X: 2, Y: 4, Width: 5, Height: 6}

	// Odd width truncates toward the left
	if got := rect.Center(); got != (Point2{4, 7}) {
		t.Errorf("Center = %+v, want {4 7}", got)
	}

	edges := rect.Edges()
	if edges[0] != (LineInt{From: Point2{2, 4}, To: Point2{7, 4}}) {
		t.Errorf("top edge = %+v", edges[0])
	}
	if edges[3] != (LineInt{From: Point2{2, 10}, To: Point2{2, 4}}) {
		t.Errorf("closing edge = %+v", edges[3])
	}
}

func TestRectIntConflate(t *testing.T) {
	a := RectInt{X: 0, Y: 0, Width: 4, Height: 4}
	b := RectInt{X: 10, Y: -2, Width: 4, Height: 4}

	got := a.Conflate(b)
	want := RectInt{X: 0, Y: -2, Width: 14, Height: 6}
	if got != want {
		t.Errorf("Conflate = %+v, want %+v", got, want)
	}
}
