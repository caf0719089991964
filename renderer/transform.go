// renderer/transform.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawingContext is the state handed to contributors when their matrices
// are evaluated at draw time; currently that is just the surface size in
// pixels.
type DrawingContext struct {
	Width, Height int32
}

// contribIDs hands out contributor identities; ids start at 1 so the zero
// token never collides with an allocated one.
var contribIDs atomic.Uint64

// ContribToken gives a contributor a stable identity for the ordered sets a
// Composition maintains: membership is decided by identity, not by value
// equality. Embed one, obtained from NewContribToken, in every transform and
// filter implementation.
type ContribToken struct {
	id uint64
}

func NewContribToken() ContribToken {
	return ContribToken{id: contribIDs.Add(1)}
}

// ContribID returns the contributor identity carried by the token.
func (t ContribToken) ContribID() uint64 { return t.id }

// ModelTransform contributes a model matrix to a Composition. ModelMatrix
// is re-evaluated on every draw, so implementations may derive the matrix
// from the current surface size.
type ModelTransform interface {
	ContribID() uint64
	ModelMatrix(ctx DrawingContext) mgl32.Mat4
}

// ColorFilter contributes a color filter matrix to a Composition; only
// textured programs consume filters.
type ColorFilter interface {
	ContribID() uint64
	FilterMatrix(ctx DrawingContext) mgl32.Mat4
}

// CenterAxis selects the axes SmartScaling centers its content on.
type CenterAxis int

const (
	CenterX CenterAxis = iota
	CenterY
	CenterBoth
)

// SmartScaling scales uniformly so that a reference design size fits the
// current surface, preserving aspect ratio. It suits a coordinate system
// with the origin in a corner and untranslated content: the scale factor is
// min(surfaceWidth/referenceWidth, surfaceHeight/referenceHeight).
// Optionally the scaled content is centered on one or both axes.
type SmartScaling struct {
	ContribToken

	refWidth, refHeight int32

	centered                    bool
	axis                        CenterAxis
	contentWidth, contentHeight int32
}

// NewSmartScaling returns a scale-only transform for the given reference
// design size.
func NewSmartScaling(refWidth, refHeight int32) *SmartScaling {
	return &SmartScaling{
		ContribToken: NewContribToken(),
		refWidth:     refWidth,
		refHeight:    refHeight,
	}
}

// NewCenteredSmartScaling additionally translates so that content of the
// given size ends up centered on the selected axes.
func NewCenteredSmartScaling(refWidth, refHeight int32, axis CenterAxis, contentWidth, contentHeight int32) *SmartScaling {
	return &SmartScaling{
		ContribToken:  NewContribToken(),
		refWidth:      refWidth,
		refHeight:     refHeight,
		centered:      true,
		axis:          axis,
		contentWidth:  contentWidth,
		contentHeight: contentHeight,
	}
}

func (s *SmartScaling) ModelMatrix(ctx DrawingContext) mgl32.Mat4 {
	factor := min(float32(ctx.Width)/float32(s.refWidth), float32(ctx.Height)/float32(s.refHeight))
	m := mgl32.Scale3D(factor, factor, 0)
	if !s.centered {
		return m
	}

	var tx, ty float32
	if s.axis == CenterX || s.axis == CenterBoth {
		tx = (float32(ctx.Width) - float32(s.contentWidth)*factor) / 2
	}
	if s.axis == CenterY || s.axis == CenterBoth {
		ty = (float32(ctx.Height) - float32(s.contentHeight)*factor) / 2
	}
	return m.Mul4(mgl32.Translate3D(tx, ty, 0))
}
