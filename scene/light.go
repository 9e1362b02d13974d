package scene

import (
	"github.com/chewxy/math32"

	"haunted-house/core"
	"haunted-house/math"
)

type LightKind int

const (
	LightAmbient LightKind = iota
	LightDirectional
	LightPoint
)

func (k LightKind) String() string {
	switch k {
	case LightAmbient:
		return "ambient"
	case LightDirectional:
		return "directional"
	case LightPoint:
		return "point"
	}
	return "unknown"
}

// Light is attached to a Node; the node's world position is the light
// position. Directional lights shine from there toward Target.
type Light struct {
	Kind      LightKind
	Color     core.Color
	Intensity float32

	// Point lights only. Distance 0 means unlimited range.
	Distance float32
	Decay    float32

	// Directional lights only, in world space.
	Target math.Vec3
}

func newLightNode(name string, light *Light) *Node {
	n := NewNode(name)
	n.Light = light
	return n
}

func NewAmbientLight(name string, color core.Color, intensity float32) *Node {
	return newLightNode(name, &Light{
		Kind:      LightAmbient,
		Color:     color,
		Intensity: intensity,
	})
}

// NewDirectionalLight returns a light aimed at the origin.
func NewDirectionalLight(name string, color core.Color, intensity float32) *Node {
	return newLightNode(name, &Light{
		Kind:      LightDirectional,
		Color:     color,
		Intensity: intensity,
		Target:    math.Vec3Zero,
	})
}

func NewPointLight(name string, color core.Color, intensity, distance float32) *Node {
	return newLightNode(name, &Light{
		Kind:      LightPoint,
		Color:     color,
		Intensity: intensity,
		Distance:  distance,
		Decay:     1,
	})
}

// LightInstance is a light resolved to world space for one frame.
type LightInstance struct {
	*Light
	Position  math.Vec3
	Direction math.Vec3 // normalized, directional lights only
}

// Attenuation returns the point-light falloff at dist: full strength at
// the light, fading to zero at Distance with exponent Decay.
func (l *Light) Attenuation(dist float32) float32 {
	if l.Kind != LightPoint || l.Distance <= 0 {
		return 1
	}
	f := 1 - dist/l.Distance
	if f <= 0 {
		return 0
	}
	return math32.Pow(f, l.Decay)
}
