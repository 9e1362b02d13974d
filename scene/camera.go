package scene

import (
	"haunted-house/math"
)

// PerspectiveCamera is a pinhole camera looking from Position at Target.
// Changes to FOV, Aspect, Near or Far take effect only after
// UpdateProjectionMatrix.
type PerspectiveCamera struct {
	FOV    float32 // vertical field of view in degrees
	Aspect float32
	Near   float32
	Far    float32

	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	projectionMatrix math.Mat4
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: math.Vec3Zero,
		Up:     math.Vec3Up,
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection from the lens fields.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.projectionMatrix = math.Mat4Perspective(math.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	return c.projectionMatrix
}

func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Target, c.Up)
}

// ViewProjectionMatrix returns view then projection.
func (c *PerspectiveCamera) ViewProjectionMatrix() math.Mat4 {
	return c.ViewMatrix().Mul(c.projectionMatrix)
}

func (c *PerspectiveCamera) SetPosition(pos math.Vec3) {
	c.Position = pos
}

func (c *PerspectiveCamera) LookAt(target math.Vec3) {
	c.Target = target
}

// Forward returns the unit view direction.
func (c *PerspectiveCamera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Right returns the unit vector to the right of the view direction.
func (c *PerspectiveCamera) Right() math.Vec3 {
	return c.Forward().Cross(c.Up).Normalize()
}
