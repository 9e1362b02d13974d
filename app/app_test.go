package app

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haunted-house/core"
	"haunted-house/gui"
	"haunted-house/scene"
)

type fakeRenderer struct {
	calls    *[]string
	width    int
	height   int
	ratio    float32
	overlays int
	renders  int
	err      error
	destroys int
}

func (r *fakeRenderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *fakeRenderer) SetPixelRatio(ratio float32) {
	r.ratio = ratio
}

func (r *fakeRenderer) SetOverlay(img *image.RGBA) {
	r.overlays++
	*r.calls = append(*r.calls, "overlay")
}

func (r *fakeRenderer) Render(s *scene.Scene, cam *scene.PerspectiveCamera) error {
	r.renders++
	*r.calls = append(*r.calls, "render")
	return r.err
}

func (r *fakeRenderer) Destroy() {
	r.destroys++
}

type fakeControls struct {
	calls   *[]string
	updates int
	width   int
	height  int
}

func (c *fakeControls) Update() bool {
	c.updates++
	*c.calls = append(*c.calls, "update")
	return false
}

func (c *fakeControls) SetSize(width, height int) {
	c.width, c.height = width, height
}

type fakeScheduler struct {
	queued []func()
}

func (s *fakeScheduler) RequestFrame(fn func()) {
	s.queued = append(s.queued, fn)
}

// runOne runs the oldest queued callback.
func (s *fakeScheduler) runOne() {
	fn := s.queued[0]
	s.queued = s.queued[1:]
	fn()
}

type fakeLoader struct {
	calls  *[]string
	polls  int
	closed bool
}

func (l *fakeLoader) Poll() int {
	l.polls++
	*l.calls = append(*l.calls, "poll")
	return 0
}

func (l *fakeLoader) Close() {
	l.closed = true
}

type fixture struct {
	app       *App
	calls     []string
	renderer  *fakeRenderer
	controls  *fakeControls
	scheduler *fakeScheduler
	camera    *scene.PerspectiveCamera
}

func newFixture(t *testing.T, options ...Option) *fixture {
	t.Helper()
	f := &fixture{scheduler: &fakeScheduler{}}
	f.renderer = &fakeRenderer{calls: &f.calls}
	f.controls = &fakeControls{calls: &f.calls}
	f.camera = scene.NewPerspectiveCamera(75, 1, 0.1, 100)
	options = append([]Option{WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))}, options...)
	f.app = New(scene.NewScene(), f.camera, f.controls, f.renderer, f.scheduler, options...)
	return f
}

func TestStartSchedulesFirstTick(t *testing.T) {
	f := newFixture(t)
	f.app.Start()
	require.Len(t, f.scheduler.queued, 1)
	assert.Zero(t, f.renderer.renders)
}

func TestTickUpdatesRendersAndReschedulesOnce(t *testing.T) {
	f := newFixture(t)
	f.app.Start()

	for i := 1; i <= 3; i++ {
		f.scheduler.runOne()
		assert.Equal(t, i, f.controls.updates)
		assert.Equal(t, i, f.renderer.renders)
		require.Len(t, f.scheduler.queued, 1, "exactly one reschedule per tick")
	}
	assert.Equal(t, uint64(3), f.app.Frames())
	assert.Equal(t, []string{"update", "render", "update", "render", "update", "render"}, f.calls)
}

func TestResizeUpdatesCameraAndRenderer(t *testing.T) {
	f := newFixture(t)
	before := f.camera.ProjectionMatrix()

	f.app.Resize(1600, 900, 1.5)

	assert.InDelta(t, 1600.0/900.0, f.camera.Aspect, 1e-6)
	assert.NotEqual(t, before, f.camera.ProjectionMatrix())
	assert.Equal(t, 1600, f.renderer.width)
	assert.Equal(t, 900, f.renderer.height)
	assert.Equal(t, float32(1.5), f.renderer.ratio)
	assert.Equal(t, 1600, f.controls.width)
	assert.Equal(t, 900, f.controls.height)
	assert.Equal(t, Viewport{Width: 1600, Height: 900, PixelRatio: 1.5}, f.app.Viewport())
}

func TestResizeCapsPixelRatio(t *testing.T) {
	f := newFixture(t)
	f.app.Resize(800, 600, 3)
	assert.Equal(t, float32(MaxPixelRatio), f.renderer.ratio)

	f.app.Resize(800, 600, 0)
	assert.Equal(t, float32(1), f.renderer.ratio)
}

func TestResizeIgnoresZeroHeight(t *testing.T) {
	f := newFixture(t)
	f.app.Resize(800, 600, 1)
	f.app.Resize(800, 0, 1)

	assert.InDelta(t, 800.0/600.0, f.camera.Aspect, 1e-6)
	assert.Equal(t, 600, f.renderer.height)
}

func TestLoaderPolledBeforeControls(t *testing.T) {
	f := newFixture(t)
	loader := &fakeLoader{calls: &f.calls}
	f.app = New(scene.NewScene(), f.camera, f.controls, f.renderer, f.scheduler, WithLoader(loader))

	f.app.Tick()
	assert.Equal(t, []string{"poll", "update", "render"}, f.calls)

	f.app.Close()
	assert.True(t, loader.closed)
	assert.Equal(t, 1, f.renderer.destroys)
}

func TestOverlayRefreshedOnlyWhenDirty(t *testing.T) {
	panel := gui.NewPanel("Debug")
	var v float32
	panel.Add("value", &v).Min(0).Max(1).Step(0.1)

	f := newFixture(t, WithPanel(panel))
	f.app.Tick()
	f.app.Tick()
	assert.Equal(t, 1, f.renderer.overlays)

	assert.True(t, f.app.HandleKey(core.KeyRight, core.Press, 0))
	f.app.Tick()
	assert.Equal(t, 2, f.renderer.overlays)
	assert.InDelta(t, 0.1, v, 1e-6)
}

func TestHandleKeyWithoutPanel(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.app.HandleKey(core.KeyH, core.Press, 0))
}

func TestRenderErrorIsLoggedAndLoopContinues(t *testing.T) {
	var buf bytes.Buffer
	f := newFixture(t)
	f.app.logger = slog.New(slog.NewTextHandler(&buf, nil))
	f.renderer.err = errors.New("no camera")

	f.app.Start()
	f.scheduler.runOne()
	f.scheduler.runOne()

	assert.Equal(t, 2, f.renderer.renders)
	assert.Len(t, f.scheduler.queued, 1)
	assert.Contains(t, buf.String(), "render failed")
	assert.Contains(t, buf.String(), "no camera")
}

func TestFrameStatsLoggedOncePerSecond(t *testing.T) {
	var buf bytes.Buffer
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }
	f := newFixture(t, WithClock(clock),
		WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	for i := 0; i < 30; i++ {
		now = now.Add(20 * time.Millisecond)
		f.app.Tick()
	}
	assert.NotContains(t, buf.String(), "frame stats")

	for i := 0; i < 20; i++ {
		now = now.Add(20 * time.Millisecond)
		f.app.Tick()
	}
	assert.Contains(t, buf.String(), "frame stats")
	assert.Contains(t, buf.String(), "fps=50")
}
