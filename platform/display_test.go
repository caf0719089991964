// platform/display_test.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"testing"
)

func TestDisplaysSorted(t *testing.T) {
	p := newTestPlatform()
	p.displays[2] = &DisplayInfo{Name: "C"}
	p.displays[0] = &DisplayInfo{Name: "A"}
	p.displays[1] = &DisplayInfo{Name: "B"}

	handles := p.Displays()
	if len(handles) != 3 {
		t.Fatalf("Expected 3 display handles, got %d", len(handles))
	}
	for i, h := range handles {
		if h.index != int32(i) {
			t.Errorf("Expected handle index %d at position %d, got %d", i, i, h.index)
		}
	}
}

func TestDisplayInfoSnapshot(t *testing.T) {
	p := newTestPlatform()
	p.displays[0] = &DisplayInfo{
		Name:         "Primary",
		Bounds:       Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		UsableBounds: Rect{X: 0, Y: 30, Width: 1920, Height: 1050},
		FullscreenModes: []DisplayMode{
			{Format: 1, Width: 1920, Height: 1080, RefreshRate: 60},
		},
	}

	info, ok := p.DisplayInfo(DisplayHandle{index: 0})
	if !ok {
		t.Fatalf("Expected info for tracked display")
	}
	if info.Name != "Primary" {
		t.Errorf("Expected name Primary, got %q", info.Name)
	}
	if info.HDREnabled {
		t.Errorf("Expected HDR to be reported off")
	}

	// The snapshot is detached from the tracker's record.
	info.FullscreenModes[0].RefreshRate = 144
	if got := p.displays[0].FullscreenModes[0].RefreshRate; got != 60 {
		t.Errorf("Expected tracked refresh rate to stay 60, got %d", got)
	}

	if _, ok := p.DisplayInfo(DisplayHandle{index: 9}); ok {
		t.Errorf("Expected no info for untracked display")
	}
}
