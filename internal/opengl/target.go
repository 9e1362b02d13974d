package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// RenderTarget is an off-screen framebuffer the scene is drawn into at the
// drawing-buffer resolution (CSS size × pixel ratio). Blit resolves it to
// the default framebuffer at whatever size the window currently has.
type RenderTarget struct {
	FBO      uint32
	ColorTex uint32
	DepthRBO uint32
	Width    int32
	Height   int32
}

// NewRenderTarget allocates an RGBA8 color texture and a depth renderbuffer.
func NewRenderTarget(width, height int) (*RenderTarget, error) {
	rt := &RenderTarget{}
	if err := rt.alloc(width, height); err != nil {
		return nil, err
	}
	return rt, nil
}

func (rt *RenderTarget) alloc(width, height int) error {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	rt.Width, rt.Height = int32(width), int32(height)

	gl.GenFramebuffers(1, &rt.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.FBO)

	gl.GenTextures(1, &rt.ColorTex)
	gl.BindTexture(gl.TEXTURE_2D, rt.ColorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, rt.Width, rt.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, rt.ColorTex, 0)

	gl.GenRenderbuffers(1, &rt.DepthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, rt.DepthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, rt.Width, rt.Height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, rt.DepthRBO)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		rt.free()
		return fmt.Errorf("render target incomplete: 0x%x", status)
	}
	return nil
}

func (rt *RenderTarget) free() {
	if rt.FBO != 0 {
		gl.DeleteFramebuffers(1, &rt.FBO)
		rt.FBO = 0
	}
	if rt.ColorTex != 0 {
		gl.DeleteTextures(1, &rt.ColorTex)
		rt.ColorTex = 0
	}
	if rt.DepthRBO != 0 {
		gl.DeleteRenderbuffers(1, &rt.DepthRBO)
		rt.DepthRBO = 0
	}
}

// Resize reallocates the attachments when the size changes.
func (rt *RenderTarget) Resize(width, height int) error {
	if int32(width) == rt.Width && int32(height) == rt.Height {
		return nil
	}
	rt.free()
	return rt.alloc(width, height)
}

// Bind makes the target the draw framebuffer and sets the viewport to cover it.
func (rt *RenderTarget) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.FBO)
	gl.Viewport(0, 0, rt.Width, rt.Height)
}

// Blit copies the target into the default framebuffer, stretching it to
// dstWidth × dstHeight.
func (rt *RenderTarget) Blit(dstWidth, dstHeight int) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, rt.FBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(
		0, 0, rt.Width, rt.Height,
		0, 0, int32(dstWidth), int32(dstHeight),
		gl.COLOR_BUFFER_BIT, gl.LINEAR,
	)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(dstWidth), int32(dstHeight))
}

// Destroy frees all GPU resources.
func (rt *RenderTarget) Destroy() {
	rt.free()
}
