package opengl

import (
	"fmt"
	"image"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Overlay draws a screen-space RGBA image (the tweak panel) on top of the
// default framebuffer with alpha blending.
type Overlay struct {
	prog    uint32
	vao     uint32
	tex     uint32
	rectLoc int32
	imgLoc  int32

	width, height int
}

// The quad is generated from gl_VertexID; rect is (x0, y0, x1, y1) in NDC.
const overlayVertSrc = `
#version 410 core
uniform vec4 rect;
out vec2 uv;
void main() {
    vec2 corner = vec2(float(gl_VertexID & 1), float((gl_VertexID >> 1) & 1));
    uv          = vec2(corner.x, 1.0 - corner.y);
    gl_Position = vec4(mix(rect.xy, rect.zw, corner), 0.0, 1.0);
}
` + "\x00"

const overlayFragSrc = `
#version 410 core
in vec2 uv;
out vec4 outColor;
uniform sampler2D overlayImage;
void main() {
    outColor = texture(overlayImage, uv);
}
` + "\x00"

// NewOverlay compiles the overlay program.
func NewOverlay() (*Overlay, error) {
	prog, err := newProgram(overlayVertSrc, overlayFragSrc)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}

	o := &Overlay{
		prog:    prog,
		rectLoc: gl.GetUniformLocation(prog, gl.Str("rect\x00")),
		imgLoc:  gl.GetUniformLocation(prog, gl.Str("overlayImage\x00")),
	}

	// Core profile needs a bound VAO even with no attributes.
	gl.GenVertexArrays(1, &o.vao)

	gl.GenTextures(1, &o.tex)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return o, nil
}

// SetImage replaces the overlay contents. A nil image hides the overlay.
func (o *Overlay) SetImage(img *image.RGBA) {
	if img == nil || img.Rect.Empty() {
		o.width, o.height = 0, 0
		return
	}
	uploadImage(o.tex, img)
	o.width, o.height = img.Rect.Dx(), img.Rect.Dy()
}

// Draw blits the overlay into the top-right corner of a fbWidth × fbHeight
// framebuffer, each image pixel covering scale framebuffer pixels.
func (o *Overlay) Draw(fbWidth, fbHeight int, scale float32) {
	if o.width == 0 || fbWidth == 0 || fbHeight == 0 {
		return
	}

	w := 2 * float32(o.width) * scale / float32(fbWidth)
	h := 2 * float32(o.height) * scale / float32(fbHeight)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(o.prog)
	gl.Uniform4f(o.rectLoc, 1-w, 1-h, 1, 1)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.Uniform1i(o.imgLoc, 0)

	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy frees all GPU resources.
func (o *Overlay) Destroy() {
	gl.DeleteTextures(1, &o.tex)
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteProgram(o.prog)
}
