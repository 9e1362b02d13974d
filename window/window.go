// Package window hosts the GLFW window and OpenGL context and runs the
// display-synced frame loop.
package window

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"haunted-house/core"
)

func init() {
	runtime.LockOSThread()
}

type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

// Handlers receive input and resize events during PollEvents. Nil
// handlers are skipped.
type Handlers struct {
	// OnResize receives the window size in screen coordinates and the
	// device pixel ratio.
	OnResize      func(width, height int, devicePixelRatio float32)
	OnKey         func(key core.Key, action core.Action, mods core.ModifierKey)
	OnMouseButton func(button core.MouseButton, action core.Action, x, y float64)
	OnCursorPos   func(x, y float64)
	OnScroll      func(xoff, yoff float64)
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	handlers Handlers
	queued   []func()
}

// New initialises GLFW, creates the window and makes its context current.
func New(config Config, handlers Handlers) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	w := &Window{
		Handle:   handle,
		Width:    config.Width,
		Height:   config.Height,
		Title:    config.Title,
		handlers: handlers,
	}
	w.installCallbacks()
	return w, nil
}

func (w *Window) installCallbacks() {
	w.Handle.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Width = width
		w.Height = height
		if w.handlers.OnResize != nil {
			w.handlers.OnResize(width, height, w.PixelRatio())
		}
	})
	w.Handle.SetContentScaleCallback(func(_ *glfw.Window, _, _ float32) {
		if w.handlers.OnResize != nil {
			w.handlers.OnResize(w.Width, w.Height, w.PixelRatio())
		}
	})

	w.Handle.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
			return
		}
		if w.handlers.OnKey != nil {
			w.handlers.OnKey(core.Key(key), core.Action(action), core.ModifierKey(mods))
		}
	})

	w.Handle.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if w.handlers.OnMouseButton != nil {
			x, y := win.GetCursorPos()
			w.handlers.OnMouseButton(core.MouseButton(button), core.Action(action), x, y)
		}
	})

	w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.handlers.OnCursorPos != nil {
			w.handlers.OnCursorPos(x, y)
		}
	})

	w.Handle.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if w.handlers.OnScroll != nil {
			w.handlers.OnScroll(xoff, yoff)
		}
	})
}

// PixelRatio returns the monitor content scale, the equivalent of a
// browser's devicePixelRatio.
func (w *Window) PixelRatio() float32 {
	sx, _ := w.Handle.GetContentScale()
	if sx <= 0 {
		return 1
	}
	return sx
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// RequestFrame queues fn to run once on the next frame.
func (w *Window) RequestFrame(fn func()) {
	w.queued = append(w.queued, fn)
}

// Run polls events, runs the callbacks queued for this frame and swaps
// buffers until ctx is cancelled or the window is closed. Callbacks queued
// while a frame runs wait for the next one.
func (w *Window) Run(ctx context.Context) error {
	for !w.Handle.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}

		glfw.PollEvents()

		frame := w.queued
		w.queued = nil
		for _, fn := range frame {
			fn()
		}

		w.Handle.SwapBuffers()
	}
	return nil
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
