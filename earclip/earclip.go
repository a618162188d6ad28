// Package earclip implements ear-clipping triangulation of simple 2D
// polygons.
//
// An "ear" is a convex vertex whose triangle (previous vertex, vertex, next
// vertex) contains no other vertex of the polygon. Any simple polygon with
// more than three vertices has at least two ears, so repeatedly clipping an
// ear and removing its tip decomposes the polygon into exactly n-2 triangles.
//
// Input may be wound either way; output triples are always emitted in
// counter-clockwise (positive signed area) order. Self-intersecting polygons
// are outside the algorithm's contract: triangulation still terminates but
// the result may not cover the intended region.
//
// References:
//   - Meisters: "Polygons Have Ears" (1975)
//   - Eberly: "Triangulation by Ear Clipping" (2008)
package earclip

import "github.com/go-gl/mathgl/mgl64"

// SignedArea returns the shoelace area of the polygon outline: positive for
// counter-clockwise winding (y-up), negative for clockwise.
func SignedArea(points []mgl64.Vec2) float64 {
	var sum float64
	for i, p := range points {
		next := points[(i+1)%len(points)]
		sum += p.X()*next.Y() - next.X()*p.Y()
	}

	return sum / 2
}

// Triangulate decomposes the polygon into triangles, returned as a flat list
// of index triples into points. Fewer than three points yield nil. Each
// triple is counter-clockwise regardless of the input winding.
func Triangulate(points []mgl64.Vec2) []int {
	n := len(points)
	if n < 3 {
		return nil
	}

	// Working list of indices into points, normalized to counter-clockwise
	// so the convexity test below is a single sign check.
	remaining := make([]int, n)
	if SignedArea(points) < 0 {
		for i := range remaining {
			remaining[i] = n - 1 - i
		}
	} else {
		for i := range remaining {
			remaining[i] = i
		}
	}

	indices := make([]int, 0, (n-2)*3)

	for len(remaining) > 3 {
		ear := findEar(points, remaining)
		if ear < 0 {
			// No ear exists, which only happens for degenerate or
			// self-intersecting input. Clip the first convex vertex (or
			// failing that, the first vertex) so the loop still terminates.
			ear = findConvex(points, remaining)
			if ear < 0 {
				ear = 0
			}
		}

		prev := remaining[(ear-1+len(remaining))%len(remaining)]
		next := remaining[(ear+1)%len(remaining)]
		indices = append(indices, prev, remaining[ear], next)

		remaining = append(remaining[:ear], remaining[ear+1:]...)
	}

	indices = append(indices, remaining[0], remaining[1], remaining[2])

	return indices
}

// findEar returns the position in remaining of the first ear, or -1.
func findEar(points []mgl64.Vec2, remaining []int) int {
	for i := range remaining {
		prev := points[remaining[(i-1+len(remaining))%len(remaining)]]
		cur := points[remaining[i]]
		next := points[remaining[(i+1)%len(remaining)]]

		if cross(cur.Sub(prev), next.Sub(cur)) <= 0 {
			continue // reflex or collinear vertex, not an ear tip
		}

		if containsAnyVertex(points, remaining, i, prev, cur, next) {
			continue
		}

		return i
	}

	return -1
}

// findConvex returns the position in remaining of the first strictly convex
// vertex, or -1 when every vertex is reflex or collinear.
func findConvex(points []mgl64.Vec2, remaining []int) int {
	for i := range remaining {
		prev := points[remaining[(i-1+len(remaining))%len(remaining)]]
		cur := points[remaining[i]]
		next := points[remaining[(i+1)%len(remaining)]]

		if cross(cur.Sub(prev), next.Sub(cur)) > 0 {
			return i
		}
	}

	return -1
}

// containsAnyVertex reports whether any remaining vertex other than the ear
// candidate's own corners lies inside or on the boundary of triangle
// (a, b, c). The boundary must count as blocking: a reflex vertex sitting
// exactly on the candidate's chord (such as the notch corner of an L-shape)
// would otherwise be clipped across, producing a triangle outside the
// polygon.
func containsAnyVertex(points []mgl64.Vec2, remaining []int, ear int, a, b, c mgl64.Vec2) bool {
	n := len(remaining)

	for j := range remaining {
		if j == ear || j == (ear-1+n)%n || j == (ear+1)%n {
			continue
		}

		p := points[remaining[j]]
		if cross(b.Sub(a), p.Sub(a)) >= 0 &&
			cross(c.Sub(b), p.Sub(b)) >= 0 &&
			cross(a.Sub(c), p.Sub(c)) >= 0 {
			return true
		}
	}

	return false
}

func cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
