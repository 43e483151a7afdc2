package scene

import (
	"math"

	"cogentcore.org/core/math32"
)

// Transform is a node's local pose relative to its parent.
// Rotation holds Euler angles in radians applied in XYZ order.
type Transform struct {
	Position [3]float64
	Rotation [3]float64
	Scale    [3]float64
}

// Identity returns a transform with no translation, no rotation and unit scale.
func Identity() Transform {
	return Transform{Scale: [3]float64{1, 1, 1}}
}

// Quat returns the rotation as a quaternion.
func (t Transform) Quat() math32.Quat {
	q := t.QuatArray()
	return math32.Quat{X: float32(q[0]), Y: float32(q[1]), Z: float32(q[2]), W: float32(q[3])}
}

// QuatArray returns the rotation quaternion as [x, y, z, w], composed as qx·qy·qz so the
// X rotation is outermost. math32's SetFromEuler composes in the opposite order.
func (t Transform) QuatArray() [4]float64 {
	s1, c1 := math.Sincos(t.Rotation[0] / 2)
	s2, c2 := math.Sincos(t.Rotation[1] / 2)
	s3, c3 := math.Sincos(t.Rotation[2] / 2)
	return [4]float64{
		s1*c2*c3 + c1*s2*s3,
		c1*s2*c3 - s1*c2*s3,
		c1*c2*s3 + s1*s2*c3,
		c1*c2*c3 - s1*s2*s3,
	}
}

// Apply maps a point from local space into the parent's space: scale, rotate, then translate.
func (t Transform) Apply(p math32.Vector3) math32.Vector3 {
	s := math32.Vec3(float32(t.Scale[0]), float32(t.Scale[1]), float32(t.Scale[2]))
	pos := math32.Vec3(float32(t.Position[0]), float32(t.Position[1]), float32(t.Position[2]))
	return p.Mul(s).MulQuat(t.Quat()).Add(pos)
}

// ApplyNormal maps a direction into the parent's space, ignoring translation.
func (t Transform) ApplyNormal(n math32.Vector3) math32.Vector3 {
	s := math32.Vec3(float32(t.Scale[0]), float32(t.Scale[1]), float32(t.Scale[2]))
	return n.Div(s).MulQuat(t.Quat()).Normal()
}

// IsIdentity reports whether t leaves points unchanged.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Chain is an ordered list of transforms from a node up to the root.
type Chain []Transform

// Apply maps a point from the innermost node's space into world space.
func (c Chain) Apply(p math32.Vector3) math32.Vector3 {
	for _, t := range c {
		p = t.Apply(p)
	}
	return p
}

// ApplyNormal maps a direction from the innermost node's space into world space.
func (c Chain) ApplyNormal(n math32.Vector3) math32.Vector3 {
	for _, t := range c {
		n = t.ApplyNormal(n)
	}
	return n
}
