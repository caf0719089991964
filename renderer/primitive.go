// renderer/primitive.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"image/color"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Primitive is a GPU-resident drawable: a bound vertex array plus the draw
// call that consumes it. Coordinates are screen coordinates with the origin
// at the bottom-left, matching the Canvas projection.
type Primitive interface {
	// VertexArray returns the primitive's vertex array object.
	VertexArray() uint32
	// Draw issues the draw call; the vertex array must be bound.
	Draw()
	// Release deletes the primitive's GPU objects.
	Release()
}

// Vertex attribute index convention shared by all primitives and programs:
// index 0 carries positions, index 1 carries the per-vertex color (line
// geometry) or texture coordinate (meshes).
const (
	attribPosition = 0
	attribColorUV  = 1
)

// LineGeometry is a two-point line with a single color, drawn with a
// line-list call. The color rides along as a constant vertex attribute
// rather than a uniform, which keeps per-primitive state out of the
// programs.
type LineGeometry struct {
	vao uint32
	vbo uint32
}

const lineVertices = 2

// NewLineGeometry uploads the two endpoints and returns the geometry. The
// new vertex array remains bound.
func NewLineGeometry(p0, p1 mgl32.Vec2, c color.RGBA) *LineGeometry {
	vao := newVertexArray()
	vbo := genBuffer()
	vertices := []float32{
		p0.X(), p0.Y(),
		p1.X(), p1.Y(),
	}
	bufferData(gl.ARRAY_BUFFER, vbo, vertices, gl.STATIC_DRAW)
	vertexAttribArray(attribPosition, 2, numFloat, 2, 0)
	constVertexAttrib4N(attribColorUV, c.R, c.G, c.B, c.A)
	return &LineGeometry{vao: vao, vbo: vbo}
}

func (l *LineGeometry) VertexArray() uint32 { return l.vao }

func (l *LineGeometry) Draw() {
	drawArrays(gl.LINES, lineVertices)
}

func (l *LineGeometry) Release() {
	deleteBuffers(l.vbo)
	deleteVertexArray(l.vao)
}

// SpriteMesh is an axis-aligned textured quad: four vertices with unit
// texture coordinates, drawn as two indexed triangles.
type SpriteMesh struct {
	vao uint32
	vbo uint32
	ebo uint32
}

var spriteIndices = []uint32{
	0, 1, 2, // first triangle
	0, 2, 3, // second triangle
}

// NewSpriteMesh builds the quad spanned by the bottom-left and top-right
// corner points. The new vertex array remains bound.
func NewSpriteMesh(bottomLeft, topRight mgl32.Vec2) *SpriteMesh {
	vao := newVertexArray()
	bufs := genBuffers(2)
	vbo, ebo := bufs[0], bufs[1]
	vertices := []float32{
		// positions                     // tex coords
		bottomLeft.X(), topRight.Y(), 0, 1, // top-left
		bottomLeft.X(), bottomLeft.Y(), 0, 0, // bottom-left
		topRight.X(), bottomLeft.Y(), 1, 0, // bottom-right
		topRight.X(), topRight.Y(), 1, 1, // top-right
	}
	bufferData(gl.ARRAY_BUFFER, vbo, vertices, gl.STATIC_DRAW)
	bufferData(gl.ELEMENT_ARRAY_BUFFER, ebo, spriteIndices, gl.STATIC_DRAW)
	vertexAttribArray(attribPosition, 2, numFloat, 4, 0)
	vertexAttribArray(attribColorUV, 2, numFloat, 4, 2)
	return &SpriteMesh{vao: vao, vbo: vbo, ebo: ebo}
}

func (s *SpriteMesh) VertexArray() uint32 { return s.vao }

func (s *SpriteMesh) Draw() {
	drawElements(gl.TRIANGLES, int32(len(spriteIndices)))
}

func (s *SpriteMesh) Release() {
	deleteBuffers(s.vbo, s.ebo)
	deleteVertexArray(s.vao)
}
