// Package app drives the per-frame loop: it owns the viewport, forwards
// resizes to the camera and renderer, and reschedules itself every frame.
package app

import (
	"image"
	"log/slog"
	"time"

	"haunted-house/core"
	"haunted-house/gui"
	"haunted-house/scene"
)

// MaxPixelRatio caps the device pixel ratio handed to the renderer.
const MaxPixelRatio = 2

// Renderer draws a scene from a camera.
type Renderer interface {
	SetSize(width, height int)
	SetPixelRatio(ratio float32)
	SetOverlay(img *image.RGBA)
	Render(s *scene.Scene, cam *scene.PerspectiveCamera) error
	Destroy()
}

// Controls updates the camera from accumulated user input.
type Controls interface {
	Update() bool
	SetSize(width, height int)
}

// FrameScheduler runs a callback once on the next display refresh.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// Loader applies finished asynchronous loads on the calling goroutine.
type Loader interface {
	Poll() int
	Close()
}

// drawStatser is implemented by renderers that count their draw calls.
type drawStatser interface {
	DrawStats() (objects, vertices, triangles, culled int)
}

// Viewport is the drawable area in logical pixels.
type Viewport struct {
	Width      int
	Height     int
	PixelRatio float32
}

// App wires a scene, camera, controls and renderer into a frame loop.
type App struct {
	scene     *scene.Scene
	camera    *scene.PerspectiveCamera
	controls  Controls
	renderer  Renderer
	scheduler FrameScheduler

	panel  *gui.Panel
	loader Loader
	logger *slog.Logger
	now    func() time.Time

	viewport Viewport
	stats    *frameStats
	frames   uint64
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithPanel attaches a parameter panel whose overlay is refreshed when dirty.
func WithPanel(panel *gui.Panel) Option {
	return func(a *App) {
		a.panel = panel
	}
}

// WithLoader attaches a loader polled at the start of every tick.
func WithLoader(loader Loader) Option {
	return func(a *App) {
		a.loader = loader
	}
}

// WithClock replaces time.Now for frame statistics.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// New creates an App. Nothing is rendered until Start.
func New(s *scene.Scene, cam *scene.PerspectiveCamera, controls Controls, renderer Renderer, scheduler FrameScheduler, options ...Option) *App {
	a := &App{
		scene:     s,
		camera:    cam,
		controls:  controls,
		renderer:  renderer,
		scheduler: scheduler,
		logger:    slog.Default(),
		now:       time.Now,
		viewport:  Viewport{PixelRatio: 1},
	}
	for _, opt := range options {
		opt(a)
	}
	a.stats = newFrameStats(a.now)
	return a
}

// Viewport returns the current viewport.
func (a *App) Viewport() Viewport {
	return a.viewport
}

// Frames returns the number of completed ticks.
func (a *App) Frames() uint64 {
	return a.frames
}

// Resize applies a new window size and device pixel ratio. A zero height
// (minimised window) is ignored.
func (a *App) Resize(width, height int, devicePixelRatio float32) {
	if width <= 0 || height <= 0 {
		return
	}
	ratio := devicePixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	if ratio > MaxPixelRatio {
		ratio = MaxPixelRatio
	}

	a.viewport = Viewport{Width: width, Height: height, PixelRatio: ratio}

	a.camera.Aspect = float32(width) / float32(height)
	a.camera.UpdateProjectionMatrix()

	a.renderer.SetSize(width, height)
	a.renderer.SetPixelRatio(ratio)
	if a.controls != nil {
		a.controls.SetSize(width, height)
	}

	a.logger.Debug("viewport resized", "width", width, "height", height, "pixelRatio", ratio)
}

// Start schedules the first tick.
func (a *App) Start() {
	a.scheduler.RequestFrame(a.Tick)
}

// Tick runs one frame and schedules the next.
func (a *App) Tick() {
	if a.loader != nil {
		a.loader.Poll()
	}
	if a.controls != nil {
		a.controls.Update()
	}
	if a.panel != nil && a.panel.Dirty() {
		a.renderer.SetOverlay(a.panel.Render())
	}

	if err := a.renderer.Render(a.scene, a.camera); err != nil {
		a.logger.Error("render failed", "frame", a.frames, "error", err)
	}
	a.frames++

	if fps, ok := a.stats.tick(); ok {
		attrs := []any{"fps", fps}
		if ds, ok := a.renderer.(drawStatser); ok {
			objects, _, triangles, culled := ds.DrawStats()
			attrs = append(attrs, "objects", objects, "triangles", triangles, "culled", culled)
		}
		a.logger.Debug("frame stats", attrs...)
	}

	a.scheduler.RequestFrame(a.Tick)
}

// HandleKey forwards a key event to the panel.
func (a *App) HandleKey(key core.Key, action core.Action, mods core.ModifierKey) bool {
	if a.panel == nil {
		return false
	}
	return a.panel.HandleKey(key, action, mods)
}

// Close stops the loader and releases renderer resources.
func (a *App) Close() {
	if a.loader != nil {
		a.loader.Close()
	}
	a.renderer.Destroy()
}
