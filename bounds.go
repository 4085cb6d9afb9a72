package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is an axis-aligned box in model space, the extent a placement's
// geometry occupies.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint reports whether the point lies inside the box, faces
// included.
func (b Bounds) ContainsPoint(point mgl64.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if point[axis] < b.Min[axis] || point[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

// Overlaps reports whether the two boxes share any point. A separating axis
// means no overlap; boxes touching along a face, edge or corner count as
// overlapping.
func (b Bounds) Overlaps(other Bounds) bool {
	for axis := 0; axis < 3; axis++ {
		if b.Max[axis] < other.Min[axis] || other.Max[axis] < b.Min[axis] {
			return false
		}
	}
	return true
}

// TransformBounds transforms a box through the location and returns the
// axis-aligned bounds of the result. Under rotation the result bounds the
// rotated box, it is not the rotated box itself.
func (l Location) TransformBounds(b Bounds) Bounds {
	corners := [8]mgl64.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}

	// Transform the first corner to seed min/max, then fold in the rest
	world := l.t.Apply(corners[0])
	min := world
	max := world

	for i := 1; i < 8; i++ {
		world = l.t.Apply(corners[i])

		min[0] = math.Min(min[0], world[0])
		min[1] = math.Min(min[1], world[1])
		min[2] = math.Min(min[2], world[2])

		max[0] = math.Max(max[0], world[0])
		max[1] = math.Max(max[1], world[1])
		max[2] = math.Max(max[2], world[2])
	}

	return Bounds{Min: min, Max: max}
}
