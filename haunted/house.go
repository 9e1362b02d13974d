// Package haunted assembles the haunted-house scene: the house with its
// door light and bushes, a ring of graves and the moonlight rig.
package haunted

import (
	"github.com/chewxy/math32"

	"haunted-house/core"
	"haunted-house/math"
	"haunted-house/scene"
)

const (
	WallsWidth  = 4
	WallsHeight = 3
	WallsDepth  = 4

	FloorSize = 20

	RoofRadius   = 3.5
	RoofHeight   = 1
	RoofSegments = 4

	DoorWidth  = 1
	DoorHeight = 2

	DoorLightIntensity = 1
	DoorLightDistance  = 7
)

var (
	FloorColor     = core.MustParseHex("#a9c388")
	WallsColor     = core.MustParseHex("#F27900")
	RoofColor      = core.Hex(0x3d2412)
	DoorColor      = core.Hex(0xffffff)
	DoorLightColor = core.MustParseHex("#ff7d46")

	DoorLightPosition = math.Vec3{X: 0, Y: 2.2, Z: 2.7}
)

// House is the "house" group and its named parts.
type House struct {
	Group     *scene.Node
	Floor     *scene.Node
	Walls     *scene.Node
	Roof      *scene.Node
	Door      *scene.Node
	DoorLight *scene.Node
	Bushes    []*scene.Node
}

// BuildHouse creates the house group with floor, walls, roof, door and the
// door light. The door material has an empty Map slot for the door texture.
func BuildHouse() *House {
	h := &House{Group: scene.NewGroup("house")}

	h.Floor = scene.NewMesh("floor",
		scene.CreatePlane(FloorSize, FloorSize),
		scene.NewStandardMaterial("floor", FloorColor))
	h.Floor.Transform.Rotation.X = -math32.Pi * 0.5
	h.Floor.Transform.Position.Y = 0

	h.Walls = scene.NewMesh("walls",
		scene.CreateBox(WallsWidth, WallsHeight, WallsDepth),
		scene.NewStandardMaterial("walls", WallsColor))
	h.Walls.Transform.Position.Y = WallsHeight / 2.0

	h.Roof = scene.NewMesh("roof",
		scene.CreateCone(RoofRadius, RoofHeight, RoofSegments),
		scene.NewStandardMaterial("roof", RoofColor))
	h.Roof.Transform.Rotation.Y = math32.Pi / 4
	h.Roof.Transform.Position.Y = WallsHeight + 0.5

	h.Door = scene.NewMesh("door",
		scene.CreatePlane(DoorWidth, DoorHeight),
		scene.NewBasicMaterial("door", DoorColor))
	h.Door.Transform.Position.Z = WallsDepth/2.0 + 0.01
	h.Door.Transform.Position.Y = 1

	h.DoorLight = scene.NewPointLight("door light", DoorLightColor, DoorLightIntensity, DoorLightDistance)
	h.DoorLight.SetPosition(DoorLightPosition)

	for _, n := range []*scene.Node{h.Floor, h.Walls, h.Roof, h.Door, h.DoorLight} {
		h.Group.AddChild(n)
	}
	return h
}

// SetDoorTexture plugs tex into the door material.
func (h *House) SetDoorTexture(tex *scene.Texture) {
	h.Door.Material.Map = tex
}
