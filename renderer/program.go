// renderer/program.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared by the bundled program kinds. "filter" is a reserved
// word in every GLSL version, so the filter uniform goes by colorFilter.
const (
	uniformProjection = "projection"
	uniformModel      = "model"
	uniformFilter     = "colorFilter"
)

// Program is a linked shader program the Canvas can draw a Composition
// through. The interface is sealed; the two implementations are
// GeometryProgram and TexturedProgram.
type Program interface {
	// ID returns the GL program object, used by the Canvas to elide
	// redundant program binds.
	ID() uint32
	// Release deletes the program object.
	Release()

	apply()
	uniform(projection mgl32.Mat4, comp *Composition, ctx DrawingContext)
}

// compileProgram compiles and links a vertex/fragment pair with the shared
// attribute index bindings. attrib1 selects the name bound to attribute 1.
func compileProgram(vertexSrc, fragmentSrc, attrib1 string) (uint32, error) {
	vsh, err := compileShader(vertexSrc, vertexShader)
	if err != nil {
		return 0, err
	}
	fsh, err := compileShader(fragmentSrc, fragmentShader)
	if err != nil {
		deleteShader(vsh)
		return 0, err
	}
	return newShaderProgram(map[uint32]string{
		attribPosition: "position",
		attribColorUV:  attrib1,
	}, vsh, fsh)
}

func readShaderFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader source %s: %w", path, err)
	}
	return string(src), nil
}

// GeometryProgram draws untextured geometry; it consumes the projection and
// composed model matrices and takes its color from vertex attributes.
type GeometryProgram struct {
	id            uint32
	projectionLoc int32
	modelLoc      int32
}

// NewGeometryProgram compiles and links a geometry program from vertex and
// fragment shader source files.
func NewGeometryProgram(vertexPath, fragmentPath string) (*GeometryProgram, error) {
	vsh, err := readShaderFile(vertexPath)
	if err != nil {
		return nil, err
	}
	fsh, err := readShaderFile(fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewGeometryProgramFromSource(vsh, fsh)
}

// NewGeometryProgramFromSource is NewGeometryProgram for in-memory GLSL.
func NewGeometryProgramFromSource(vertexSrc, fragmentSrc string) (*GeometryProgram, error) {
	id, err := compileProgram(vertexSrc, fragmentSrc, "color")
	if err != nil {
		return nil, err
	}
	return &GeometryProgram{
		id:            id,
		projectionLoc: getUniformLocation(id, uniformProjection),
		modelLoc:      getUniformLocation(id, uniformModel),
	}, nil
}

func (p *GeometryProgram) ID() uint32 { return p.id }

func (p *GeometryProgram) Release() { deleteProgram(p.id) }

func (p *GeometryProgram) apply() { useProgram(p.id) }

func (p *GeometryProgram) uniform(projection mgl32.Mat4, comp *Composition, ctx DrawingContext) {
	setUniformMat4(p.projectionLoc, projection)
	setUniformMat4(p.modelLoc, comp.EvaluateModelMatrix(ctx))
}

// TexturedProgram draws textured meshes; on top of the geometry uniforms it
// consumes the composed color filter matrix and samples the texture bound
// on unit 0.
type TexturedProgram struct {
	id            uint32
	projectionLoc int32
	modelLoc      int32
	filterLoc     int32
}

// NewTexturedProgram compiles and links a textured program from vertex and
// fragment shader source files.
func NewTexturedProgram(vertexPath, fragmentPath string) (*TexturedProgram, error) {
	vsh, err := readShaderFile(vertexPath)
	if err != nil {
		return nil, err
	}
	fsh, err := readShaderFile(fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewTexturedProgramFromSource(vsh, fsh)
}

// NewTexturedProgramFromSource is NewTexturedProgram for in-memory GLSL.
func NewTexturedProgramFromSource(vertexSrc, fragmentSrc string) (*TexturedProgram, error) {
	id, err := compileProgram(vertexSrc, fragmentSrc, "uv")
	if err != nil {
		return nil, err
	}
	return &TexturedProgram{
		id:            id,
		projectionLoc: getUniformLocation(id, uniformProjection),
		modelLoc:      getUniformLocation(id, uniformModel),
		filterLoc:     getUniformLocation(id, uniformFilter),
	}, nil
}

func (p *TexturedProgram) ID() uint32 { return p.id }

func (p *TexturedProgram) Release() { deleteProgram(p.id) }

func (p *TexturedProgram) apply() { useProgram(p.id) }

func (p *TexturedProgram) uniform(projection mgl32.Mat4, comp *Composition, ctx DrawingContext) {
	setUniformMat4(p.projectionLoc, projection)
	setUniformMat4(p.modelLoc, comp.EvaluateModelMatrix(ctx))
	setUniformMat4(p.filterLoc, comp.EvaluateFilterMatrix(ctx))
}
