package haunted

import (
	"fmt"
	stdmath "math"

	"github.com/chewxy/math32"

	"haunted-house/core"
	"haunted-house/math"
	"haunted-house/scene"
)

const (
	DefaultGraveCount = 50

	GraveWidth  = 0.6
	GraveHeight = 0.8
	GraveDepth  = 0.2

	graveY         = 0.3
	graveMinRadius = 3
	graveRingWidth = 6
	graveMaxTiltY  = 0.7
	graveMaxTiltZ  = 0.4
)

var GraveColor = core.MustParseHex("#b2b6b1")

// Largest float32 values inside the half-open angle and radius ranges.
var (
	graveAngleLimit  = math32.Nextafter(2*math32.Pi, 0)
	graveRadiusLimit = math32.Nextafter(graveMinRadius+graveRingWidth, 0)
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// GravePlacement is one grave's polar position and tilt.
type GravePlacement struct {
	Angle     float32 // [0, 2pi)
	Radius    float32 // [3, 9)
	Position  math.Vec3
	RotationY float32 // [-0.35, 0.35]
	RotationZ float32 // [-0.2, 0.2]
}

// PlaceGraves draws count placements from rng, four draws per grave in the
// order angle, radius, y tilt, z tilt.
func PlaceGraves(count int, rng RandomSource) []GravePlacement {
	placements := make([]GravePlacement, 0, max(count, 0))
	for i := 0; i < count; i++ {
		angle := rng.Float64() * stdmath.Pi * 2
		radius := graveMinRadius + rng.Float64()*graveRingWidth
		sin, cos := stdmath.Sincos(angle)

		placements = append(placements, GravePlacement{
			Angle:  min(float32(angle), graveAngleLimit),
			Radius: min(float32(radius), graveRadiusLimit),
			Position: math.Vec3{
				X: float32(sin * radius),
				Y: graveY,
				Z: float32(cos * radius),
			},
			RotationY: float32((rng.Float64() - 0.5) * graveMaxTiltY),
			RotationZ: float32((rng.Float64() - 0.5) * graveMaxTiltZ),
		})
	}
	return placements
}

// BuildGraves creates the "graves" group with one mesh per placement, all
// sharing one box geometry and one material.
func BuildGraves(count int, rng RandomSource) *scene.Node {
	group := scene.NewGroup("graves")
	geometry := scene.CreateBox(GraveWidth, GraveHeight, GraveDepth)
	material := scene.NewStandardMaterial("grave", GraveColor)

	for i, p := range PlaceGraves(count, rng) {
		grave := scene.NewMesh(fmt.Sprintf("grave %d", i+1), geometry, material)
		grave.SetPosition(p.Position)
		grave.SetRotation(math.Vec3{Y: p.RotationY, Z: p.RotationZ})
		group.AddChild(grave)
	}
	return group
}
