package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), v1.Add(v2))
	assert.Equal(t, NewVec3(3, 3, 3), v2.Sub(v1))
	assert.Equal(t, NewVec3(2, 4, 6), v1.Mul(2))
	assert.Equal(t, float32(32), v1.Dot(v2))

	// Right x Up = Front in a right-handed system
	assert.Equal(t, Vec3Front, Vec3Right.Cross(Vec3Up))
}

func TestVec3Normalize(t *testing.T) {
	n := NewVec3(3, 0, 0).Normalize()
	assert.Equal(t, NewVec3(1, 0, 0), n)
	assert.InDelta(t, 1, n.Length(), eps)

	// zero vector is returned unchanged
	assert.Equal(t, Vec3Zero, Vec3Zero.Normalize())
}

func TestMat4ComposeOrder(t *testing.T) {
	// scale first, then rotate 90 degrees about Y, then translate
	m := Mat4Compose(
		NewVec3(10, 0, 0),
		QuaternionFromAxisAngle(Vec3Up, math32.Pi/2),
		Splat(2),
	)

	got := m.TransformPoint(NewVec3(1, 0, 0))
	// (1,0,0) -> scale (2,0,0) -> rotY(90) (0,0,-2) -> translate (10,0,-2)
	assert.True(t, got.ApproxEqual(NewVec3(10, 0, -2), eps), "got %v", got)
}

func TestQuaternionFromEulerMatchesAxisRotations(t *testing.T) {
	q := QuaternionFromEuler(NewVec3(-math32.Pi/2, 0, 0))
	// A plane normal (+Z) laid flat must point up.
	got := q.RotateVector(Vec3Front)
	assert.True(t, got.ApproxEqual(Vec3Up, eps), "got %v", got)

	// Matrix and quaternion rotate identically.
	q = QuaternionFromEuler(NewVec3(0.3, -0.2, 0.1))
	v := NewVec3(1, 2, 3)
	assert.True(t, q.RotateVector(v).ApproxEqual(q.ToMat4().TransformPoint(v), eps))
}

func TestQuaternionFromEulerOrder(t *testing.T) {
	// XYZ order: Z is applied first, X last.
	e := NewVec3(math32.Pi/2, 0, math32.Pi/2)
	q := QuaternionFromEuler(e)
	manual := QuaternionFromAxisAngle(Vec3Right, e.X).RotateVector(
		QuaternionFromAxisAngle(Vec3Front, e.Z).RotateVector(Vec3Right))
	assert.True(t, q.RotateVector(Vec3Right).ApproxEqual(manual, eps))
}

func TestMat4LookAtMovesEyeToOrigin(t *testing.T) {
	eye := NewVec3(4, 2, 5)
	view := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	assert.True(t, view.TransformPoint(eye).ApproxEqual(Vec3Zero, eps))

	// target lies straight down the -Z axis in view space
	target := view.TransformPoint(Vec3Zero)
	assert.InDelta(t, 0, target.X, eps)
	assert.InDelta(t, 0, target.Y, eps)
	assert.InDelta(t, -eye.Length(), target.Z, eps)
}

func TestMat4Perspective(t *testing.T) {
	near, far := float32(0.1), float32(100)
	proj := Mat4Perspective(DegToRad(75), 16.0/9.0, near, far)

	// near plane maps to NDC z = -1, far plane to +1
	assert.InDelta(t, -1, proj.TransformPoint(NewVec3(0, 0, -near)).Z, 1e-4)
	assert.InDelta(t, 1, proj.TransformPoint(NewVec3(0, 0, -far)).Z, 1e-4)
}

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4Translation(NewVec3(1, 2, 3))
	assert.Equal(t, m, m.Mul(Mat4Identity()))
	assert.Equal(t, m, Mat4Identity().Mul(m))
	assert.Equal(t, NewVec3(1, 2, 3), m.Translation())
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, math32.Pi, DegToRad(180), eps)
}
