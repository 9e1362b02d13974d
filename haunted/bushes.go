package haunted

import (
	"fmt"

	"haunted-house/core"
	"haunted-house/math"
	"haunted-house/scene"
)

var BushColor = core.MustParseHex("#418c4c")

// BushDescriptor places one bush; the scale is uniform.
type BushDescriptor struct {
	ID       int
	Position math.Vec3
	Scale    float32
}

// DefaultBushes is the authored layout around the door.
var DefaultBushes = []BushDescriptor{
	{ID: 1, Position: math.Vec3{X: 0.8, Y: 0.2, Z: 2.2}, Scale: 0.5},
	{ID: 2, Position: math.Vec3{X: 1.4, Y: 0.1, Z: 2.1}, Scale: 0.25},
	{ID: 3, Position: math.Vec3{X: -0.8, Y: 0.1, Z: 2.2}, Scale: 0.4},
	{ID: 4, Position: math.Vec3{X: -1, Y: 0.05, Z: 2.6}, Scale: 0.15},
}

// BuildBushes adds one mesh per descriptor to parent. All bushes share one
// unit sphere geometry and one material.
func BuildBushes(parent *scene.Node, descriptors []BushDescriptor) []*scene.Node {
	geometry := scene.CreateSphere(1, 16, 16)
	material := scene.NewStandardMaterial("bush", BushColor)

	bushes := make([]*scene.Node, 0, len(descriptors))
	for _, d := range descriptors {
		bush := scene.NewMesh(fmt.Sprintf("bush %d", d.ID), geometry, material)
		bush.SetPosition(d.Position)
		bush.SetScale(math.Splat(d.Scale))
		parent.AddChild(bush)
		bushes = append(bushes, bush)
	}
	return bushes
}
