package haunted

import (
	"haunted-house/core"
	"haunted-house/math"
	"haunted-house/scene"
)

const (
	AmbientIntensity = 0.12
	MoonIntensity    = 0.12
)

var (
	MoonColor    = core.MustParseHex("#b9d5ff")
	MoonPosition = math.Vec3{X: 4, Y: 5, Z: -2}
)

// LightingRig holds the lights the debug panel edits.
type LightingRig struct {
	Ambient   *scene.Node
	Moon      *scene.Node
	DoorLight *scene.Node
}

// BuildLights creates the ambient and moon lights. doorLight is the house's
// point light, kept here so every light is reachable from the rig.
func BuildLights(doorLight *scene.Node) *LightingRig {
	moon := scene.NewDirectionalLight("moon light", MoonColor, MoonIntensity)
	moon.SetPosition(MoonPosition)

	return &LightingRig{
		Ambient:   scene.NewAmbientLight("ambient light", MoonColor, AmbientIntensity),
		Moon:      moon,
		DoorLight: doorLight,
	}
}
