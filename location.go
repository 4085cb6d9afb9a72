// Package geometry provides immutable placements for positioning shapes in
// model space.
package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/r-silveira/XbimGeometry/trsf"
)

// Placement locates geometry in model space. Implementations are immutable
// values: every mutating-looking operation returns a new placement.
type Placement interface {
	IsIdentity() bool
}

// TrsfCarrier is the capability query for placements backed by a native
// transform. Multiplied uses it to recover the concrete transform of an
// arbitrary Placement; a carrier without one reports false.
type TrsfCarrier interface {
	NativeTrsf() (trsf.Trsf, bool)
}

// Location is an immutable Placement wrapping a similarity transform. The
// transform is held by value: constructing a Location copies it, and no
// operation aliases or mutates it afterwards.
type Location struct {
	t trsf.Trsf
}

// NewLocation wraps a copy of the given transform in a Location
func NewLocation(t trsf.Trsf) Location {
	return Location{t: t}
}

// Identity returns the Location of the identity transform
func Identity() Location {
	return Location{t: trsf.Identity()}
}

// NativeTrsf implements TrsfCarrier
func (l Location) NativeTrsf() (trsf.Trsf, bool) {
	return l.t, true
}

// Trsf returns a copy of the wrapped transform
func (l Location) Trsf() trsf.Trsf {
	return l.t
}

// IsIdentity reports whether the wrapped transform is the identity transform
func (l Location) IsIdentity() bool {
	return l.t.IsIdentity()
}

// Multiplied composes this location with other: the result applies this
// location's transform first, then other's. A nil argument, a placement not
// backed by a native transform, or an identity placement composes as a no-op
// and the result wraps a copy of this location's own transform. No error is
// ever reported. Composition is not commutative.
func (l Location) Multiplied(other Placement) Location {
	carrier, ok := other.(TrsfCarrier)
	if !ok {
		return Location{t: l.t}
	}
	t, ok := carrier.NativeTrsf()
	if !ok || t.IsIdentity() {
		return Location{t: l.t}
	}

	return Location{t: t.Multiplied(l.t)}
}

// ScaledBy applies a uniform scale to this location. The scale is applied
// first, this location's rotation and translation after, so the translation
// part is unchanged. The factor is passed through unvalidated: 1 yields an
// equal location, 0 collapses every point onto the translation.
func (l Location) ScaledBy(scale float64) Location {
	scaler := trsf.Identity()
	scaler.SetScaleFactor(scale)

	return Location{t: l.t.Multiplied(scaler)}
}

// Inverted returns the Location of the inverse transform
func (l Location) Inverted() Location {
	return Location{t: l.t.Inverted()}
}

// Translation returns the translation part of the wrapped transform
func (l Location) Translation() mgl64.Vec3 {
	return l.t.Translation
}

// Rotation returns the rotation part of the wrapped transform
func (l Location) Rotation() mgl64.Quat {
	return l.t.Rotation
}

// ScaleFactor returns the uniform scale factor of the wrapped transform
func (l Location) ScaleFactor() float64 {
	return l.t.Scale
}

// Apply transforms a point by this location
func (l Location) Apply(point mgl64.Vec3) mgl64.Vec3 {
	return l.t.Apply(point)
}
