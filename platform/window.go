// platform/window.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/muikit/mui/log"
	"github.com/muikit/mui/renderer"
)

var (
	// ErrCreateWindow indicates native window creation failed.
	ErrCreateWindow = errors.New("failed to create window")
	// ErrCreateContext indicates OpenGL context creation or activation failed.
	ErrCreateContext = errors.New("failed to create OpenGL context")
)

const (
	minWindowWidth  = 800
	minWindowHeight = 480
)

// Window owns the single native window and its OpenGL context. It satisfies
// renderer.Surface, so a Canvas can be built directly on it.
type Window struct {
	p         *SDLPlatform
	lg        *log.Logger
	win       *sdl.Window
	glContext sdl.GLContext
	caps      *renderer.Capabilities
}

var _ renderer.Surface = (*Window)(nil)

// NewWindow creates the window hidden at the minimum size, creates and
// activates its OpenGL context, loads the GL entry points and negotiates
// the driver capabilities. Only one window may exist at a time. On any
// failure the partially constructed window and context are destroyed.
func NewWindow(p *SDLPlatform, title string, lg *log.Logger) (*Window, error) {
	if p.hasWindow {
		return nil, fmt.Errorf("%w: a window already exists", ErrCreateWindow)
	}

	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		minWindowWidth, minWindowHeight,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	win.SetMinimumSize(minWindowWidth, minWindowHeight)

	glContext, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrCreateContext, err)
	}
	if err := win.GLMakeCurrent(glContext); err != nil {
		sdl.GLDeleteContext(glContext)
		win.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrCreateContext, err)
	}
	if err := gl.InitWithProcAddrFunc(sdl.GLGetProcAddress); err != nil {
		sdl.GLDeleteContext(glContext)
		win.Destroy()
		return nil, fmt.Errorf("failed to load OpenGL entry points: %w", err)
	}

	caps, err := renderer.NewCapabilities()
	if err != nil {
		sdl.GLDeleteContext(glContext)
		win.Destroy()
		return nil, fmt.Errorf("failed to negotiate OpenGL capabilities: %w", err)
	}
	lg.Infof("OpenGL %s, %s, %s", caps.Version(), caps.Vendor(), caps.Renderer())
	lg.Infof("GLSL %s", caps.ShadingLanguageVersion())

	p.hasWindow = true
	return &Window{p: p, lg: lg, win: win, glContext: glContext, caps: caps}, nil
}

// Show makes the window visible. Windows start hidden so the first frame
// can be drawn before anything appears; showing a visible window is a no-op.
func (w *Window) Show() {
	w.win.Show()
}

// Swap presents the back buffer.
func (w *Window) Swap() {
	w.win.GLSwap()
}

// Resize reconciles the GL viewport and the canvas projection with the
// current drawable size. The host must call it for every
// WindowPixelSizeChanged event; nothing else keeps the two in sync.
func (w *Window) Resize(canvas *renderer.Canvas) {
	width, height := w.win.GLGetDrawableSize()
	gl.Viewport(0, 0, width, height)
	canvas.RefreshSize(width, height)
}

// SetVSync synchronizes buffer swaps with the display refresh when on.
func (w *Window) SetVSync(on bool) error {
	interval := 0
	if on {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		return fmt.Errorf("failed to set swap interval: %w", err)
	}
	return nil
}

// DrawableSize returns the drawable size in pixels, which differs from the
// window size on high-DPI displays.
func (w *Window) DrawableSize() (int32, int32) {
	return w.win.GLGetDrawableSize()
}

// Capabilities returns the handle negotiated when the context was created.
func (w *Window) Capabilities() *renderer.Capabilities {
	return w.caps
}

// Dispose deletes the OpenGL context and destroys the window. A new window
// may be created afterwards.
func (w *Window) Dispose() {
	sdl.GLDeleteContext(w.glContext)
	if err := w.win.Destroy(); err != nil {
		w.lg.Errorf("failed to destroy window: %v", err)
	}
	w.p.hasWindow = false
}
