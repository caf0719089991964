// renderer/canvas_test.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeSurface struct {
	w, h int32
	caps *Capabilities
}

func (s *fakeSurface) DrawableSize() (int32, int32) { return s.w, s.h }
func (s *fakeSurface) Capabilities() *Capabilities { return s.caps }

func testSurface(t *testing.T, w, h int32) *fakeSurface {
	t.Helper()
	caps, err := newCapabilities("Vendor", "Renderer", "2.1 Mesa 20.0.8", "1.20",
		[]string{"GL_ARB_vertex_array_object"})
	if err != nil {
		t.Fatalf("Unexpected capabilities error: %v", err)
	}
	return &fakeSurface{w: w, h: h, caps: caps}
}

func TestCanvasProjection(t *testing.T) {
	c := NewCanvas(testSurface(t, 1024, 768))

	// Ortho(0, w, 0, h): pixel corners land on the clip volume corners,
	// the center on the origin.
	tests := []struct {
		px, py float32
		want   mgl32.Vec4
	}{
		{0, 0, mgl32.Vec4{-1, -1, 0, 1}},
		{1024, 0, mgl32.Vec4{1, -1, 0, 1}},
		{0, 768, mgl32.Vec4{-1, 1, 0, 1}},
		{1024, 768, mgl32.Vec4{1, 1, 0, 1}},
		{512, 384, mgl32.Vec4{0, 0, 0, 1}},
	}
	for _, tc := range tests {
		got := c.projection.Mul4x1(mgl32.Vec4{tc.px, tc.py, 0, 1})
		if !got.ApproxEqual(tc.want) {
			t.Errorf("Expected pixel (%g, %g) to project to %v, got %v",
				tc.px, tc.py, tc.want, got)
		}
	}
}

func TestCanvasRefreshSize(t *testing.T) {
	c := NewCanvas(testSurface(t, 1024, 768))
	if w, h := c.Size(); w != 1024 || h != 768 {
		t.Fatalf("Expected initial size (1024, 768), got (%d, %d)", w, h)
	}

	c.RefreshSize(640, 480)
	if w, h := c.Size(); w != 640 || h != 480 {
		t.Errorf("Expected size (640, 480) after refresh, got (%d, %d)", w, h)
	}

	got := c.projection.Mul4x1(mgl32.Vec4{640, 480, 0, 1})
	if want := (mgl32.Vec4{1, 1, 0, 1}); !got.ApproxEqual(want) {
		t.Errorf("Expected projection to track the new size, got %v", got)
	}
}

func TestCanvasCapabilities(t *testing.T) {
	surface := testSurface(t, 800, 480)
	c := NewCanvas(surface)
	if c.Capabilities() != surface.caps {
		t.Error("Expected the canvas to report the surface capabilities")
	}
}
