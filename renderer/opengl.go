// renderer/opengl.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// The renderer targets OpenGL 2.0 as its baseline, with newer-version
// features negotiated once at context creation (see caps.go). VAOs are used
// for all geometry regardless of version, so pre-3.0 drivers must provide
// GL_ARB_vertex_array_object. Bindings are not cleared after use; code that
// mutates a GL object must bind it first. Note that binding a VAO replaces
// element-buffer and vertex-attribute state but not the ARRAY_BUFFER
// binding.

package renderer

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrShaderCompile wraps the driver's info log for a failed compilation.
	ErrShaderCompile = errors.New("shader compilation failed")
	// ErrProgramLink wraps the driver's info log for a failed program link.
	ErrProgramLink = errors.New("shader program link failed")
)

// numType identifies the scalar type of a vertex attribute.
type numType int

const (
	numByte numType = iota
	numUnsignedByte
	numShort
	numUnsignedShort
	numInt
	numUnsignedInt
	numFloat
	numDouble
)

func (t numType) size() int {
	switch t {
	case numByte, numUnsignedByte:
		return 1
	case numShort, numUnsignedShort:
		return 2
	case numInt, numUnsignedInt, numFloat:
		return 4
	case numDouble:
		return 8
	}
	panic("unhandled numType")
}

func (t numType) glType() uint32 {
	switch t {
	case numByte:
		return gl.BYTE
	case numUnsignedByte:
		return gl.UNSIGNED_BYTE
	case numShort:
		return gl.SHORT
	case numUnsignedShort:
		return gl.UNSIGNED_SHORT
	case numInt:
		return gl.INT
	case numUnsignedInt:
		return gl.UNSIGNED_INT
	case numFloat:
		return gl.FLOAT
	case numDouble:
		return gl.DOUBLE
	}
	panic("unhandled numType")
}

func genBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func genBuffers(n int32) []uint32 {
	bufs := make([]uint32, n)
	gl.GenBuffers(n, &bufs[0])
	return bufs
}

func genTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func deleteTexture(t uint32) {
	gl.DeleteTextures(1, &t)
}

// uploadTexture2D fills the texture bound to TEXTURE_2D with RGBA pixels,
// sets edge-clamped wrapping with nearest-neighbor sampling and builds the
// mipmap chain. pix holds width*height*4 bytes in bottom-up row order.
func uploadTexture2D(width, height int32, pix []uint8) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA,
		gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

// newVertexArray generates a vertex array object and leaves it bound.
func newVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return vao
}

func deleteBuffers(bufs ...uint32) {
	gl.DeleteBuffers(int32(len(bufs)), &bufs[0])
}

func deleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

// bufferDatum constrains the scalar types a buffer object can be filled from.
type bufferDatum interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~float32 | ~float64
}

func bufferData[T bufferDatum](target, buffer uint32, data []T, usage uint32) {
	gl.BindBuffer(target, buffer)
	if len(data) == 0 {
		return
	}
	var zero T
	gl.BufferData(target, len(data)*int(unsafe.Sizeof(zero)), unsafe.Pointer(&data[0]), usage)
}

// vertexAttribArray describes an array vertex attribute. Stride and offset
// are given in element counts of kind, not bytes; values are not normalized.
func vertexAttribArray(index uint32, vecSize int32, kind numType, strideLen, offsetLen int) {
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointerWithOffset(index, vecSize, kind.glType(), false,
		int32(strideLen*kind.size()), uintptr(offsetLen*kind.size()))
}

// constVertexAttrib4N supplies a constant normalized ubyte vec4 attribute,
// disabling any array that was previously enabled on the index.
func constVertexAttrib4N(index uint32, r, g, b, a uint8) {
	gl.DisableVertexAttribArray(index)
	gl.VertexAttrib4Nub(index, r, g, b, a)
}

// shaderKind identifies a programmable pipeline stage. Geometry,
// tessellation and compute stages are not used by any program here.
type shaderKind int

const (
	vertexShader shaderKind = iota
	fragmentShader
)

func (k shaderKind) glEnum() uint32 {
	if k == vertexShader {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func (k shaderKind) String() string {
	if k == vertexShader {
		return "vertex"
	}
	return "fragment"
}

// compileShader compiles GLSL source for the given stage. On failure the
// returned error carries the driver's info log verbatim and the shader
// object is deleted.
func compileShader(src string, kind shaderKind) (uint32, error) {
	shader := gl.CreateShader(kind.glEnum())

	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csources, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s shader: %s", ErrShaderCompile, kind,
			strings.TrimRight(infoLog, "\x00"))
	}

	return shader, nil
}

// newShaderProgram links the given compiled shaders into a program; the
// shader objects are deleted regardless of the outcome. attribs maps
// attribute indices to shader attribute names, bound before linking since
// the baseline GLSL has no layout qualifiers.
func newShaderProgram(attribs map[uint32]string, shaders ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	for index, name := range attribs {
		gl.BindAttribLocation(program, index, gl.Str(name+"\x00"))
	}
	gl.LinkProgram(program)
	for _, s := range shaders {
		gl.DeleteShader(s)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrProgramLink, strings.TrimRight(infoLog, "\x00"))
	}

	return program, nil
}

func deleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func deleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func getUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func useProgram(program uint32) {
	gl.UseProgram(program)
}

// useTexture2D binds the texture on unit 0; call after useProgram.
func useTexture2D(texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func clearColorBuffer(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func useVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func setUniformMat4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func drawArrays(mode uint32, count int32) {
	gl.DrawArrays(mode, 0, count)
}

func drawElements(mode uint32, count int32) {
	gl.DrawElementsWithOffset(mode, count, gl.UNSIGNED_INT, 0)
}
