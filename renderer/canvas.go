// renderer/canvas.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// Decoders for the formats LoadImage accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is the drawable target a Canvas renders to. It is implemented by
// the platform window; the renderer only ever sees this interface.
type Surface interface {
	// DrawableSize returns the surface size in pixels, which on high-DPI
	// displays can differ from the size in screen coordinates.
	DrawableSize() (int32, int32)
	// Capabilities reports what was negotiated when the surface's GL
	// context was created.
	Capabilities() *Capabilities
}

// Canvas is the drawing surface of a window. It owns the pixel-space
// orthographic projection and issues the draw calls for Compositions; all
// methods must be called from the thread holding the GL context.
type Canvas struct {
	width, height int32
	projection    mgl32.Mat4

	// Program bound by the last Draw. Zero means none; binds are elided
	// while consecutive draws use the same program.
	boundProgram uint32

	caps *Capabilities
}

// NewCanvas creates a Canvas covering the surface at its current size.
func NewCanvas(surface Surface) *Canvas {
	c := &Canvas{caps: surface.Capabilities()}
	c.RefreshSize(surface.DrawableSize())
	return c
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int32, int32) {
	return c.width, c.height
}

// RefreshSize resizes the canvas and recomputes the projection so that one
// unit maps to one pixel with the origin in the bottom-left corner.
func (c *Canvas) RefreshSize(width, height int32) {
	c.width, c.height = width, height
	c.projection = mgl32.Ortho(0, float32(width), 0, float32(height), -1, 1)
}

// Clear fills the color buffer with the given color.
func (c *Canvas) Clear(col color.RGBA) {
	clearColorBuffer(float32(col.R)/255, float32(col.G)/255,
		float32(col.B)/255, float32(col.A)/255)
}

// Capabilities reports the negotiated driver capabilities of the surface
// this canvas was created for.
func (c *Canvas) Capabilities() *Capabilities {
	return c.caps
}

// LoadImage decodes the image file at path and uploads it as a 2D texture
// with a full mipmap chain, returning the texture name. Rows are flipped so
// that texture coordinate (0, 0) addresses the bottom-left of the image.
func (c *Canvas) LoadImage(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rgba := rgbaFlipped(img)
	b := rgba.Bounds()

	texture := genTexture()
	useTexture2D(texture)
	uploadTexture2D(int32(b.Dx()), int32(b.Dy()), rgba.Pix)
	return texture, nil
}

// ReleaseTexture deletes a texture created by LoadImage.
func (c *Canvas) ReleaseTexture(texture uint32) {
	deleteTexture(texture)
}

// Draw renders one Composition with the given program. texture names the
// texture to sample on unit 0 and is 0 for untextured programs.
func (c *Canvas) Draw(comp *Composition, program Program, texture uint32) {
	if c.boundProgram != program.ID() {
		program.apply()
		c.boundProgram = program.ID()
	}

	if texture != 0 {
		useTexture2D(texture)
	}

	useVertexArray(comp.prim.VertexArray())
	program.uniform(c.projection, comp, DrawingContext{Width: c.width, Height: c.height})
	comp.prim.Draw()
}

// rgbaFlipped converts src to RGBA form with the rows in bottom-up order,
// matching the GL texture coordinate origin.
func rgbaFlipped(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, h-1-y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
