package haunted

import (
	"log/slog"

	"haunted-house/math"
	"haunted-house/scene"
)

const (
	CameraFOV  = 75
	CameraNear = 0.1
	CameraFar  = 100
)

var CameraPosition = math.Vec3{X: 4, Y: 2, Z: 5}

// TextureLoader starts an asynchronous texture load and returns the
// texture to fill in later.
type TextureLoader interface {
	Load(path string, onLoad func(*scene.Texture), onError func(error)) *scene.Texture
}

// Options configures Build.
type Options struct {
	GraveCount int
	Rand       RandomSource

	// DoorTexture is requested from Loader when both are set.
	DoorTexture string
	Loader      TextureLoader

	Logger *slog.Logger
}

// World is the assembled scene and the handles the application needs.
type World struct {
	Scene  *scene.Scene
	Camera *scene.PerspectiveCamera
	House  *House
	Graves *scene.Node
	Lights *LightingRig
}

// NewCamera returns the viewing camera for the given aspect ratio.
func NewCamera(aspect float32) *scene.PerspectiveCamera {
	cam := scene.NewPerspectiveCamera(CameraFOV, aspect, CameraNear, CameraFar)
	cam.SetPosition(CameraPosition)
	return cam
}

// Build assembles the whole scene. A failed door texture load is logged
// and leaves the door plain white.
func Build(opts Options) *World {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	house := BuildHouse()
	house.Bushes = BuildBushes(house.Group, DefaultBushes)
	graves := BuildGraves(opts.GraveCount, opts.Rand)
	rig := BuildLights(house.DoorLight)

	s := scene.NewScene()
	s.Add(house.Group, graves, rig.Ambient, rig.Moon)

	if opts.Loader != nil && opts.DoorTexture != "" {
		path := opts.DoorTexture
		tex := opts.Loader.Load(path,
			func(t *scene.Texture) {
				logger.Info("door texture loaded", "path", path, "width", t.Width, "height", t.Height)
			},
			func(err error) {
				logger.Warn("door texture failed to load", "path", path, "error", err)
				house.SetDoorTexture(nil)
			})
		house.SetDoorTexture(tex)
	}

	logger.Debug("scene built",
		"bushes", len(house.Bushes),
		"graves", len(graves.Children),
		"lights", len(s.Lights()))

	return &World{
		Scene:  s,
		Camera: NewCamera(1),
		House:  house,
		Graves: graves,
		Lights: rig,
	}
}
