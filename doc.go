// Package flat provides 2D convex-shape collision detection based on the
// Separating Axis Theorem (SAT).
//
// Two convex shapes do not overlap if and only if there exists an axis onto
// which their projections do not overlap. The engine enumerates the candidate
// axes exposed by each shape (typically edge normals), projects both shapes
// onto each axis, and exits as soon as a separating axis is found. When no
// axis separates the shapes, the axis with the smallest projected overlap
// yields the minimum translation vector (pushout) that resolves the collision.
//
// Shapes are plain value types built on mgl64.Vec2. Any type implementing
// ConvexShape participates in the generic SAT engine; Circle is handled with
// dedicated formulas since it exposes infinitely many axes. Polygon supports
// arbitrary (possibly concave) outlines through lazy ear-clipping
// triangulation and is queried per triangle rather than through SAT.
//
// The package performs no I/O and returns no errors: bad indices and exceeded
// capacities panic, while degenerate geometry (zero-length lines, coincident
// circle centers, empty point sets) follows defined numeric fallbacks.
//
// References:
//   - Gottschalk: "Separating Axis Theorem" (1996)
//   - Ericson: "Real-Time Collision Detection" (2004), ch. 4-5
package flat
