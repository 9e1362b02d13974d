// Package controls drives a camera from pointer input.
package controls

import (
	"github.com/chewxy/math32"

	"haunted-house/core"
	"haunted-house/math"
	"haunted-house/scene"
)

const (
	epsilon   = 1e-6
	wheelBase = 0.95
)

type state int

const (
	stateNone state = iota
	stateRotate
	statePan
	stateDolly
)

// spherical is a position relative to the target: Theta around +Y from +Z,
// Phi down from +Y.
type spherical struct {
	Radius, Phi, Theta float32
}

func sphericalFromOffset(v math.Vec3) spherical {
	r := v.Length()
	if r == 0 {
		return spherical{}
	}
	cosPhi := math32.Max(-1, math32.Min(1, v.Y/r))
	return spherical{Radius: r, Theta: math32.Atan2(v.X, v.Z), Phi: math32.Acos(cosPhi)}
}

func (s spherical) offset() math.Vec3 {
	sinPhi, cosPhi := math32.Sincos(s.Phi)
	sinTheta, cosTheta := math32.Sincos(s.Theta)
	return math.Vec3{
		X: s.Radius * sinPhi * sinTheta,
		Y: s.Radius * cosPhi,
		Z: s.Radius * sinPhi * cosTheta,
	}
}

// OrbitControls orbits a camera around Target: left-drag rotates,
// right-drag pans, middle-drag or the wheel dollies. Input only records
// deltas; Update applies them and must be called once per frame.
type OrbitControls struct {
	Enabled bool
	Target  math.Vec3

	EnableDamping bool
	DampingFactor float32

	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32

	MinDistance   float32
	MaxDistance   float32
	MinPolarAngle float32
	MaxPolarAngle float32

	camera *scene.PerspectiveCamera
	height float32

	state          state
	lastX, lastY   float64
	sphericalDelta spherical
	scale          float32
	panOffset      math.Vec3
}

// NewOrbitControls attaches controls to camera, orbiting the camera's
// current target.
func NewOrbitControls(camera *scene.PerspectiveCamera, options ...Option) *OrbitControls {
	oc := &OrbitControls{
		Enabled:       true,
		Target:        camera.Target,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MinDistance:   0,
		MaxDistance:   math32.Inf(1),
		MinPolarAngle: 0,
		MaxPolarAngle: math32.Pi,
		camera:        camera,
		height:        1,
		scale:         1,
	}
	for _, option := range options {
		option(oc)
	}
	return oc
}

// SetSize records the viewport size; drag distances are measured against
// its height.
func (oc *OrbitControls) SetSize(width, height int) {
	if height > 0 {
		oc.height = float32(height)
	}
}

// PointerDown starts a drag. The button decides the gesture.
func (oc *OrbitControls) PointerDown(button core.MouseButton, x, y float64) {
	if !oc.Enabled {
		return
	}
	switch button {
	case core.MouseLeft:
		oc.state = stateRotate
	case core.MouseRight:
		oc.state = statePan
	case core.MouseMiddle:
		oc.state = stateDolly
	default:
		return
	}
	oc.lastX, oc.lastY = x, y
}

// PointerMove continues the current drag, if any.
func (oc *OrbitControls) PointerMove(x, y float64) {
	if !oc.Enabled || oc.state == stateNone {
		return
	}
	dx := float32(x - oc.lastX)
	dy := float32(y - oc.lastY)
	oc.lastX, oc.lastY = x, y

	switch oc.state {
	case stateRotate:
		oc.rotateLeft(2 * math32.Pi * dx * oc.RotateSpeed / oc.height)
		oc.rotateUp(2 * math32.Pi * dy * oc.RotateSpeed / oc.height)
	case statePan:
		oc.pan(dx*oc.PanSpeed, dy*oc.PanSpeed)
	case stateDolly:
		if dy > 0 {
			oc.dollyOut()
		} else if dy < 0 {
			oc.dollyIn()
		}
	}
}

// PointerUp ends the current drag.
func (oc *OrbitControls) PointerUp(button core.MouseButton) {
	oc.state = stateNone
}

// Wheel dollies: positive offsets (scrolling up) move the camera closer.
func (oc *OrbitControls) Wheel(offset float64) {
	if !oc.Enabled {
		return
	}
	if offset > 0 {
		oc.dollyIn()
	} else if offset < 0 {
		oc.dollyOut()
	}
}

func (oc *OrbitControls) rotateLeft(angle float32) {
	oc.sphericalDelta.Theta -= angle
}

func (oc *OrbitControls) rotateUp(angle float32) {
	oc.sphericalDelta.Phi -= angle
}

func (oc *OrbitControls) zoomScale() float32 {
	return math32.Pow(wheelBase, oc.ZoomSpeed)
}

func (oc *OrbitControls) dollyIn() {
	oc.scale *= oc.zoomScale()
}

func (oc *OrbitControls) dollyOut() {
	oc.scale /= oc.zoomScale()
}

// pan converts a pixel drag into a world-space offset at the target's depth.
func (oc *OrbitControls) pan(dx, dy float32) {
	cam := oc.camera
	distance := cam.Position.Sub(oc.Target).Length()
	distance *= math32.Tan(math.DegToRad(cam.FOV) / 2)

	right := cam.Right()
	up := right.Cross(cam.Forward())

	oc.panOffset = oc.panOffset.
		Add(right.Mul(-2 * dx * distance / oc.height)).
		Add(up.Mul(2 * dy * distance / oc.height))
}

// Update applies pending motion to the camera and reports whether the
// camera moved.
func (oc *OrbitControls) Update() bool {
	cam := oc.camera
	before := cam.Position

	s := sphericalFromOffset(cam.Position.Sub(oc.Target))

	factor := float32(1)
	if oc.EnableDamping {
		factor = oc.DampingFactor
	}
	s.Theta += oc.sphericalDelta.Theta * factor
	s.Phi += oc.sphericalDelta.Phi * factor

	s.Phi = clamp(s.Phi, oc.MinPolarAngle, oc.MaxPolarAngle)
	s.Phi = clamp(s.Phi, epsilon, math32.Pi-epsilon)

	s.Radius = clamp(s.Radius*oc.scale, oc.MinDistance, oc.MaxDistance)

	oc.Target = oc.Target.Add(oc.panOffset.Mul(factor))

	cam.Position = oc.Target.Add(s.offset())
	cam.LookAt(oc.Target)

	if oc.EnableDamping {
		oc.sphericalDelta.Theta *= 1 - oc.DampingFactor
		oc.sphericalDelta.Phi *= 1 - oc.DampingFactor
		oc.panOffset = oc.panOffset.Mul(1 - oc.DampingFactor)
	} else {
		oc.sphericalDelta = spherical{}
		oc.panOffset = math.Vec3Zero
	}
	zoomed := oc.scale != 1
	oc.scale = 1

	return zoomed || cam.Position.Sub(before).LengthSqr() > epsilon
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
