package flat

import (
	"encoding/json"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRectContains(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name     string
		point    mgl64.Vec2
		expected bool
	}{
		{"top-left corner is inclusive", mgl64.Vec2{0, 0}, true},
		{"bottom-right corner is exclusive", mgl64.Vec2{10, 10}, false},
		{"right edge is exclusive", mgl64.Vec2{10, 5}, false},
		{"bottom edge is exclusive", mgl64.Vec2{5, 10}, false},
		{"just inside bottom-right", mgl64.Vec2{9.999, 9.999}, true},
		{"center", mgl64.Vec2{5, 5}, true},
		{"outside left", mgl64.Vec2{-0.001, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestRectOverlapsFastPath(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping",
			a:        Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:        Rect{X: 5, Y: 5, Width: 10, Height: 10},
			expected: true,
		},
		{
			name:     "touching edges do not overlap",
			a:        Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:        Rect{X: 10, Y: 0, Width: 10, Height: 10},
			expected: false,
		},
		{
			name:     "overlap on X only",
			a:        Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:        Rect{X: 5, Y: 20, Width: 10, Height: 10},
			expected: false,
		},
		{
			name:     "contained",
			a:        Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:        Rect{X: 2, Y: 2, Width: 2, Height: 2},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("Overlaps = %v, want %v", got, tt.expected)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.expected {
				t.Errorf("reversed Overlaps = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}

	got := a.Intersection(b)
	want := Rect{X: 5, Y: 5, Width: 5, Height: 5}
	if got != want {
		t.Errorf("Intersection = %+v, want %+v", got, want)
	}

	// Disjoint on X: zero X interval, Y interval still reported
	c := Rect{X: 20, Y: 5, Width: 10, Height: 10}
	got = a.Intersection(c)
	if got.Width != 0 || got.X != 0 {
		t.Errorf("disjoint X interval = (%v, %v), want (0, 0)", got.X, got.Width)
	}
	if got.Y != 5 || got.Height != 5 {
		t.Errorf("Y interval = (%v, %v), want (5, 5)", got.Y, got.Height)
	}
}

func TestRectValidateSize(t *testing.T) {
	rect := Rect{X: 10, Y: 20, Width: -4, Height: -6}

	got := rect.ValidateSize()
	want := Rect{X: 6, Y: 14, Width: 4, Height: 6}
	if got != want {
		t.Errorf("ValidateSize = %+v, want %+v", got, want)
	}

	// Already canonical rects pass through unchanged
	if got := want.ValidateSize(); got != want {
		t.Errorf("ValidateSize on canonical rect = %+v, want %+v", got, want)
	}
}

func TestRectConflate(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	b := Rect{X: 10, Y: -2, Width: 4, Height: 4}

	got := a.Conflate(b)
	want := Rect{X: 0, Y: -2, Width: 14, Height: 6}
	if got != want {
		t.Errorf("Conflate = %+v, want %+v", got, want)
	}
}

func TestRectSector(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name     string
		point    mgl64.Vec2
		expected uint8
	}{
		{"inside", mgl64.Vec2{5, 5}, SectorInside},
		{"above", mgl64.Vec2{5, -1}, SectorTop},
		{"below", mgl64.Vec2{5, 11}, SectorBottom},
		{"left", mgl64.Vec2{-1, 5}, SectorLeft},
		{"right", mgl64.Vec2{11, 5}, SectorRight},
		{"top-left diagonal", mgl64.Vec2{-1, -1}, SectorTop | SectorLeft},
		{"bottom-right diagonal", mgl64.Vec2{11, 11}, SectorBottom | SectorRight},
		{"right edge is outside", mgl64.Vec2{10, 5}, SectorRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.Sector(tt.point); got != tt.expected {
				t.Errorf("Sector(%v) = %b, want %b", tt.point, got, tt.expected)
			}
		})
	}
}

func TestRectConvexShape(t *testing.T) {
	rect := Rect{X: 1, Y: 2, Width: 3, Height: 4}

	if rect.Points() != 4 {
		t.Errorf("Points = %d, want 4", rect.Points())
	}
	if rect.Axes() != 2 {
		t.Errorf("Axes = %d, want 2", rect.Axes())
	}

	corners := []mgl64.Vec2{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	for i, want := range corners {
		if got := rect.Point(i); got != want {
			t.Errorf("Point(%d) = %v, want %v", i, got, want)
		}
	}

	if rect.Axis(0) != (mgl64.Vec2{1, 0}) || rect.Axis(1) != (mgl64.Vec2{0, 1}) {
		t.Error("axes should be unit X then unit Y")
	}

	defer func() {
		if recover() == nil {
			t.Error("Point(4) should panic")
		}
	}()
	rect.Point(4)
}

func TestRectProject(t *testing.T) {
	rect := Rect{X: 1, Y: 2, Width: 3, Height: 4}

	min, max := rect.Project(mgl64.Vec2{1, 0})
	if !floatEqual(min, 1, 1e-9) || !floatEqual(max, 4, 1e-9) {
		t.Errorf("X projection = (%v, %v), want (1, 4)", min, max)
	}

	min, max = rect.Project(mgl64.Vec2{0, 1})
	if !floatEqual(min, 2, 1e-9) || !floatEqual(max, 6, 1e-9) {
		t.Errorf("Y projection = (%v, %v), want (2, 6)", min, max)
	}
}

func TestRectJSONRoundTrip(t *testing.T) {
	original := Rect{X: 1.5, Y: -2.25, Width: 3.75, Height: 4.5}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Rect
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded != original {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}
