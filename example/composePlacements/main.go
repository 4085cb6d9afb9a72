package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	geometry "github.com/r-silveira/XbimGeometry"
	"github.com/r-silveira/XbimGeometry/trsf"
)

func main() {
	// A part modeled around the origin, placed one unit up and rotated a
	// quarter turn around Z.
	quarterTurn := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	part := geometry.NewLocation(trsf.New(quarterTurn, mgl64.Vec3{0, 0, 1}))

	// The assembly holding the part sits five units along X.
	assembly := geometry.NewLocation(trsf.New(mgl64.QuatIdent(), mgl64.Vec3{5, 0, 0}))

	// Compose: part placement applied first, then the assembly placement.
	world := part.Multiplied(assembly)

	fmt.Println("Part placement in world space")
	fmt.Printf("  translation: %v\n", world.Translation())
	fmt.Printf("  is identity: %v\n", world.IsIdentity())

	corner := mgl64.Vec3{1, 0, 0}
	fmt.Printf("  corner %v maps to %v\n", corner, world.Apply(corner))

	// Composing with an identity placement is a no-op.
	same := world.Multiplied(geometry.Identity())
	fmt.Printf("  unchanged by identity: %v\n", same.Translation() == world.Translation())

	// Scale a placement down to half size; its translation is preserved.
	half := world.ScaledBy(0.5)
	fmt.Println("Half-size placement")
	fmt.Printf("  scale factor: %v\n", half.ScaleFactor())
	fmt.Printf("  translation:  %v\n", half.Translation())

	// Bounding box of the part, pushed through the placement.
	box := geometry.Bounds{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}
	moved := world.TransformBounds(box)
	fmt.Printf("Bounds in world space: min %v max %v\n", moved.Min, moved.Max)

	// Bulk transform of a vertex buffer across 4 workers.
	vertices := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	geometry.TransformPoints(world, vertices, 4)
	fmt.Printf("Transformed vertices: %v\n", vertices)
}
