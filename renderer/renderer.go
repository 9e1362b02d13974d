package renderer

import (
	"fmt"
	"image"
	"log/slog"

	"haunted-house/internal/opengl"
	"haunted-house/scene"
)

// FramebufferSizeFunc reports the window's framebuffer size in pixels.
type FramebufferSizeFunc func() (width, height int)

// RenderEngine is the high-level renderer that drives the OpenGL backend.
//
// The scene is drawn into an off-screen target sized width×pixelRatio by
// height×pixelRatio, then stretched onto the window framebuffer. The panel
// overlay is composited last.
type RenderEngine struct {
	gl      *opengl.Renderer
	target  *opengl.RenderTarget
	overlay *opengl.Overlay

	framebufferSize FramebufferSizeFunc
	logger          *slog.Logger

	FrustumCulling bool

	width, height int
	pixelRatio    float32

	// Per-frame stats (populated during Render)
	lastObjects   int
	lastVertices  int
	lastTriangles int
	lastCulled    int
}

// NewRenderEngine initialises the OpenGL backend. The GL context must be
// current on the calling thread.
func NewRenderEngine(width, height int, framebufferSize FramebufferSizeFunc, logger *slog.Logger) (*RenderEngine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	target, err := opengl.NewRenderTarget(width, height)
	if err != nil {
		glRenderer.Destroy()
		return nil, fmt.Errorf("failed to create render target: %w", err)
	}

	overlay, err := opengl.NewOverlay()
	if err != nil {
		target.Destroy()
		glRenderer.Destroy()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	logger.Info("render engine initialized", "backend", "opengl", "version", glRenderer.Version())
	return &RenderEngine{
		gl:              glRenderer,
		target:          target,
		overlay:         overlay,
		framebufferSize: framebufferSize,
		logger:          logger,
		FrustumCulling:  true,
		width:           width,
		height:          height,
		pixelRatio:      1,
	}, nil
}

// SetSize sets the logical (CSS-pixel) size of the drawing surface.
func (re *RenderEngine) SetSize(width, height int) {
	re.width, re.height = width, height
	re.resizeTarget()
}

// SetPixelRatio sets the device pixel ratio applied to the drawing buffer.
func (re *RenderEngine) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	re.pixelRatio = ratio
	re.resizeTarget()
}

// DrawingBufferSize returns the size of the off-screen target in pixels.
func (re *RenderEngine) DrawingBufferSize() (int, int) {
	return int(float32(re.width) * re.pixelRatio), int(float32(re.height) * re.pixelRatio)
}

func (re *RenderEngine) resizeTarget() {
	w, h := re.DrawingBufferSize()
	if w < 1 || h < 1 {
		return
	}
	if err := re.target.Resize(w, h); err != nil {
		re.logger.Error("resize render target", "width", w, "height", h, "error", err)
	}
}

// SetOverlay replaces the screen-space overlay image. nil hides it.
func (re *RenderEngine) SetOverlay(img *image.RGBA) {
	re.overlay.SetImage(img)
}

// Render draws the scene from the camera and presents it to the window
// framebuffer. The caller swaps buffers.
func (re *RenderEngine) Render(s *scene.Scene, cam *scene.PerspectiveCamera) error {
	if s == nil {
		return fmt.Errorf("no scene")
	}
	if cam == nil {
		return fmt.Errorf("no camera")
	}

	re.gl.BeginFrame(re.target, s.Background, s.Lights())

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()

	// Build view-projection matrix for frustum culling
	vp := view.Mul(proj)
	frustum := scene.FrustumFromViewProjection(vp)

	objects, vertices, triangles, culled := 0, 0, 0, 0

	for _, node := range s.GetVisibleNodes() {
		model := node.GetWorldMatrix()

		// Frustum culling: skip draw if AABB is completely outside the frustum
		if re.FrustumCulling {
			aabb := node.Geometry.WorldBounds(model)
			if !aabb.IntersectsFrustum(&frustum) {
				culled++
				continue
			}
		}

		mvp := model.Mul(view).Mul(proj)
		re.gl.DrawMesh(node.Geometry, node.Material, mvp, model)

		objects++
		vertices += len(node.Geometry.Vertices)
		triangles += node.Geometry.TriangleCount()
	}

	for _, err := range re.gl.UploadErrors() {
		re.logger.Warn("texture upload failed", "error", err)
	}

	re.lastObjects = objects
	re.lastVertices = vertices
	re.lastTriangles = triangles
	re.lastCulled = culled

	fbw, fbh := re.framebufferSize()
	re.target.Blit(fbw, fbh)
	if re.width > 0 {
		re.overlay.Draw(fbw, fbh, float32(fbw)/float32(re.width))
	}
	return nil
}

// DrawStats returns stats from the most recent Render call.
func (re *RenderEngine) DrawStats() (objects, vertices, triangles, culled int) {
	return re.lastObjects, re.lastVertices, re.lastTriangles, re.lastCulled
}

// Destroy releases all GPU resources.
func (re *RenderEngine) Destroy() {
	re.overlay.Destroy()
	re.target.Destroy()
	re.gl.Destroy()
}
