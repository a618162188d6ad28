package main

import (
	"fmt"

	"github.com/akmonengine/flat"
	"github.com/go-gl/mathgl/mgl64"
)

// Walkthrough of the overlap queries: a player box resolved against a wall,
// a sensor circle against a triangular ramp, and point queries on a concave
// room outline.
func main() {
	fmt.Println("SAT playground")
	fmt.Println("==============")

	player := flat.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	wall := flat.Rect{X: 8, Y: -2, Width: 10, Height: 14}

	fmt.Printf("player: %+v\n", player)
	fmt.Printf("wall:   %+v\n", wall)

	if pushout, ok := flat.Overlaps(player, wall); ok {
		fmt.Printf("  overlapping, pushout %v\n", pushout)
		player = player.Translate(pushout)
		fmt.Printf("  player resolved to %+v\n", player)
	} else {
		fmt.Println("  no overlap")
	}

	ramp := flat.Triangle{
		A: mgl64.Vec2{0, 0},
		B: mgl64.Vec2{10, 0},
		C: mgl64.Vec2{5, 10},
	}
	sensor := flat.Circle{Position: mgl64.Vec2{5, -2}, Radius: 3}

	fmt.Printf("\nramp:   %+v\n", ramp)
	fmt.Printf("sensor: %+v\n", sensor)

	if pushout, ok := sensor.Overlaps(ramp); ok {
		fmt.Printf("  overlapping, pushout %v\n", pushout)
		sensor = sensor.Translate(pushout)
		fmt.Printf("  sensor resolved to %+v\n", sensor)
	} else {
		fmt.Println("  no overlap")
	}

	// Concave room: a square with a notched corner, triangulated on demand
	room := flat.NewPolygon(
		mgl64.Vec2{0, 0},
		mgl64.Vec2{10, 0},
		mgl64.Vec2{10, 5},
		mgl64.Vec2{5, 5},
		mgl64.Vec2{5, 10},
		mgl64.Vec2{0, 10},
	)

	fmt.Printf("\nroom: %d vertices, %d triangles, area %.1f\n",
		room.Len(), room.TriangleCount(), room.Area())

	for _, point := range []mgl64.Vec2{{2, 2}, {8, 8}} {
		fmt.Printf("  contains %v: %v\n", point, room.Contains(point))
	}
}
