// renderer/transform_test.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSmartScalingFactor(t *testing.T) {
	s := NewSmartScaling(800, 480)

	// Both axes doubled: factor 2, pure scaling.
	m := s.ModelMatrix(DrawingContext{Width: 1600, Height: 960})
	got := m.Mul4x1(mgl32.Vec4{1, 1, 0, 1})
	if want := (mgl32.Vec4{2, 2, 0, 1}); !got.ApproxEqual(want) {
		t.Errorf("Expected (1, 1) to scale to %v, got %v", want, got)
	}

	// Width grows less than height: the smaller ratio wins.
	m = s.ModelMatrix(DrawingContext{Width: 1200, Height: 960})
	got = m.Mul4x1(mgl32.Vec4{2, 2, 0, 1})
	if want := (mgl32.Vec4{3, 3, 0, 1}); !got.ApproxEqual(want) {
		t.Errorf("Expected factor 1.5, got point %v", got)
	}

	// At the reference size the matrix leaves points in place.
	m = s.ModelMatrix(DrawingContext{Width: 800, Height: 480})
	got = m.Mul4x1(mgl32.Vec4{123, 45, 0, 1})
	if want := (mgl32.Vec4{123, 45, 0, 1}); !got.ApproxEqual(want) {
		t.Errorf("Expected points untouched at reference size, got %v", got)
	}
}

func TestSmartScalingCentered(t *testing.T) {
	ctx := DrawingContext{Width: 300, Height: 200}

	// factor = min(300/100, 200/100) = 2; the translation is applied in
	// content space before scaling, so the matrix is scale * translate.
	x := NewCenteredSmartScaling(100, 100, CenterX, 100, 100)
	want := mgl32.Scale3D(2, 2, 0).Mul4(mgl32.Translate3D(50, 0, 0))
	if got := x.ModelMatrix(ctx); !got.ApproxEqual(want) {
		t.Errorf("CenterX: expected %v, got %v", want, got)
	}

	y := NewCenteredSmartScaling(100, 100, CenterY, 100, 100)
	want = mgl32.Scale3D(2, 2, 0)
	if got := y.ModelMatrix(ctx); !got.ApproxEqual(want) {
		t.Errorf("CenterY: expected no offset on a filled axis, got %v", got)
	}

	both := NewCenteredSmartScaling(100, 100, CenterBoth, 60, 40)
	want = mgl32.Scale3D(2, 2, 0).Mul4(mgl32.Translate3D(90, 60, 0))
	if got := both.ModelMatrix(ctx); !got.ApproxEqual(want) {
		t.Errorf("CenterBoth: expected %v, got %v", want, got)
	}
}

func TestContribTokenIdentity(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		tok := NewContribToken()
		if tok.ContribID() == 0 {
			t.Fatal("Expected token ids to be nonzero")
		}
		if seen[tok.ContribID()] {
			t.Fatalf("Expected token ids to be unique, %d repeated", tok.ContribID())
		}
		seen[tok.ContribID()] = true
	}
}
