// renderer/composition_test.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// nullPrimitive stands in for a GPU-backed primitive in tests that never
// touch a GL context.
type nullPrimitive struct{}

func (nullPrimitive) VertexArray() uint32 { return 0 }
func (nullPrimitive) Draw()               {}
func (nullPrimitive) Release()            {}

// staticTransform contributes the same fixed matrix as a model transform
// and as a color filter.
type staticTransform struct {
	ContribToken
	m mgl32.Mat4
}

func newStaticTransform(m mgl32.Mat4) *staticTransform {
	return &staticTransform{ContribToken: NewContribToken(), m: m}
}

func (s *staticTransform) ModelMatrix(DrawingContext) mgl32.Mat4  { return s.m }
func (s *staticTransform) FilterMatrix(DrawingContext) mgl32.Mat4 { return s.m }

var testCtx = DrawingContext{Width: 800, Height: 480}

func TestCompositionEmptyEvaluatesToIdentity(t *testing.T) {
	comp := NewComposition(nullPrimitive{})
	if got := comp.EvaluateModelMatrix(testCtx); !got.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("Expected identity model matrix for an empty set, got %v", got)
	}
	if got := comp.EvaluateFilterMatrix(testCtx); !got.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("Expected identity filter matrix for an empty set, got %v", got)
	}
}

func TestCompositionFoldOrder(t *testing.T) {
	// With contributors A, B, C added in that order the fold must produce
	// C * B * A. Scaling and translation do not commute, so a wrong order
	// shows up in the product.
	a := mgl32.Translate3D(1, 0, 0)
	b := mgl32.Scale3D(2, 2, 1)
	c := mgl32.Translate3D(0, 3, 0)

	comp := NewComposition(nullPrimitive{})
	comp.AddModelTransform(newStaticTransform(a))
	comp.AddModelTransform(newStaticTransform(b))
	comp.AddModelTransform(newStaticTransform(c))

	want := c.Mul4(b.Mul4(a))
	if got := comp.EvaluateModelMatrix(testCtx); !got.ApproxEqual(want) {
		t.Errorf("Expected fold C*B*A = %v, got %v", want, got)
	}

	// Sanity check on the test itself: the reversed product differs.
	if reversed := a.Mul4(b.Mul4(c)); want.ApproxEqual(reversed) {
		t.Fatal("Test matrices must not commute")
	}
}

func TestCompositionTranslationsCompose(t *testing.T) {
	comp := NewComposition(nullPrimitive{})
	comp.AddModelTransform(newStaticTransform(mgl32.Translate3D(5, 7, 0)))
	comp.AddModelTransform(newStaticTransform(mgl32.Translate3D(1, 2, 0)))

	got := comp.EvaluateModelMatrix(testCtx).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if want := (mgl32.Vec4{6, 9, 0, 1}); !got.ApproxEqual(want) {
		t.Errorf("Expected origin to map to %v, got %v", want, got)
	}
}

func TestCompositionAddIsIdempotent(t *testing.T) {
	tr := newStaticTransform(mgl32.Translate3D(3, 0, 0))
	comp := NewComposition(nullPrimitive{})
	comp.AddModelTransform(tr)
	comp.AddModelTransform(tr)

	got := comp.EvaluateModelMatrix(testCtx).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if want := (mgl32.Vec4{3, 0, 0, 1}); !got.ApproxEqual(want) {
		t.Errorf("Expected the transform to apply once, got offset %v", got)
	}
}

func TestCompositionRemove(t *testing.T) {
	a := newStaticTransform(mgl32.Translate3D(1, 0, 0))
	b := newStaticTransform(mgl32.Scale3D(2, 2, 1))

	comp := NewComposition(nullPrimitive{})
	comp.AddModelTransform(a)
	comp.AddModelTransform(b)
	comp.RemoveModelTransform(a)

	if got := comp.EvaluateModelMatrix(testCtx); !got.ApproxEqual(b.m) {
		t.Errorf("Expected only the remaining transform, got %v", got)
	}

	// Removing a non-member changes nothing.
	comp.RemoveModelTransform(newStaticTransform(mgl32.Ident4()))
	if got := comp.EvaluateModelMatrix(testCtx); !got.ApproxEqual(b.m) {
		t.Errorf("Expected removal of a non-member to be a no-op, got %v", got)
	}

	// Re-adding a removed member appends it at the end of the order.
	comp.AddModelTransform(a)
	want := a.m.Mul4(b.m)
	if got := comp.EvaluateModelMatrix(testCtx); !got.ApproxEqual(want) {
		t.Errorf("Expected re-added transform to fold last, want %v, got %v", want, got)
	}
}

func TestCompositionFilterSetIsIndependent(t *testing.T) {
	// Model members must not leak into the filter fold: a composition with
	// models but no filters still evaluates the filter matrix to identity.
	comp := NewComposition(nullPrimitive{})
	comp.AddModelTransform(newStaticTransform(mgl32.Scale3D(4, 4, 1)))

	if got := comp.EvaluateFilterMatrix(testCtx); !got.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("Expected identity filter matrix with no filters attached, got %v", got)
	}

	f := newStaticTransform(mgl32.Scale3D(0.5, 0.5, 0.5))
	comp.AddFilterTransform(f)
	if got := comp.EvaluateFilterMatrix(testCtx); !got.ApproxEqual(f.m) {
		t.Errorf("Expected the filter matrix alone, got %v", got)
	}

	comp.RemoveFilterTransform(f)
	if got := comp.EvaluateFilterMatrix(testCtx); !got.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("Expected identity after removing the only filter, got %v", got)
	}
}
