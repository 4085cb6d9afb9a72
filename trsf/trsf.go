// Package trsf implements the similarity transforms used to place geometry
// in model space.
//
// A Trsf combines a rotation, a translation and a uniform scale factor; it
// maps a point p to Scale*(Rotation·p) + Translation. Composition follows the
// matrix convention: A.Multiplied(B) is the transform that applies B first,
// then A.
package trsf

import "github.com/go-gl/mathgl/mgl64"

// Trsf is a similarity transform: a rotation, a translation and a uniform
// scale factor. The zero value is not a valid transform, use Identity.
type Trsf struct {
	Rotation    mgl64.Quat
	Translation mgl64.Vec3
	Scale       float64
}

// Identity creates the transform that maps every point to itself
func Identity() Trsf {
	return Trsf{
		Rotation: mgl64.QuatIdent(),
		Scale:    1,
	}
}

// New creates a transform from a rotation and a translation, with scale 1.
// The rotation is normalized.
func New(rotation mgl64.Quat, translation mgl64.Vec3) Trsf {
	return Trsf{
		Rotation:    rotation.Normalize(),
		Translation: translation,
		Scale:       1,
	}
}

// SetScaleFactor sets the uniform scale factor. The value is not validated:
// zero collapses every point, negative factors mirror.
func (t *Trsf) SetScaleFactor(scale float64) {
	t.Scale = scale
}

// SetTranslation sets the translation part
func (t *Trsf) SetTranslation(translation mgl64.Vec3) {
	t.Translation = translation
}

// SetRotation sets the rotation part, normalized
func (t *Trsf) SetRotation(rotation mgl64.Quat) {
	t.Rotation = rotation.Normalize()
}

// IsIdentity reports whether the transform maps every point to itself.
// The comparison is exact: only transforms built as the identity qualify,
// composition results are never renormalized into it.
func (t Trsf) IsIdentity() bool {
	return t.Scale == 1 &&
		t.Translation == (mgl64.Vec3{}) &&
		t.Rotation.W == 1 && t.Rotation.V == (mgl64.Vec3{})
}

// Multiplied composes the receiver with o. The result applies o first, then
// the receiver: Apply(p) == t.Apply(o.Apply(p)). Composition is not
// commutative.
func (t Trsf) Multiplied(o Trsf) Trsf {
	return Trsf{
		Rotation:    t.Rotation.Mul(o.Rotation).Normalize(),
		Translation: t.Rotation.Rotate(o.Translation).Mul(t.Scale).Add(t.Translation),
		Scale:       t.Scale * o.Scale,
	}
}

// Inverted returns the inverse transform. A degenerate transform (scale 0)
// yields non-finite components.
func (t Trsf) Inverted() Trsf {
	inverse := t.Rotation.Inverse()
	return Trsf{
		Rotation:    inverse,
		Translation: inverse.Rotate(t.Translation).Mul(-1 / t.Scale),
		Scale:       1 / t.Scale,
	}
}

// Apply transforms a point
func (t Trsf) Apply(point mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(point).Mul(t.Scale).Add(t.Translation)
}

// Mat4 returns the homogeneous matrix of the transform (translation,
// rotation and scale applied in that order to column vectors)
func (t Trsf) Mat4() mgl64.Mat4 {
	return mgl64.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl64.Scale3D(t.Scale, t.Scale, t.Scale))
}
