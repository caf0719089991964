// renderer/caps_test.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		s            string
		major, minor int
		wantErr      bool
	}{
		{"4.6.0 NVIDIA 550.54", 4, 6, false},
		{"3.1", 3, 1, false},
		{"2.1 Mesa 20.0.8", 2, 1, false},
		{"4.60 NVIDIA", 4, 60, false},
		{"10.2.something", 10, 2, false},
		{"OpenGL ES 3.0", 0, 0, true},
		{"", 0, 0, true},
		{"4", 0, 0, true},
		{"x.y", 0, 0, true},
	}
	for _, tc := range tests {
		major, minor, err := parseVersion(tc.s)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseVersion(%q): expected error, got (%d, %d)", tc.s, major, minor)
			} else if !errors.Is(err, ErrMalformedVersion) {
				t.Errorf("parseVersion(%q): expected ErrMalformedVersion, got %v", tc.s, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseVersion(%q): unexpected error %v", tc.s, err)
			continue
		}
		if major != tc.major || minor != tc.minor {
			t.Errorf("parseVersion(%q): expected (%d, %d), got (%d, %d)",
				tc.s, tc.major, tc.minor, major, minor)
		}
	}
}

func TestCapabilitiesMinimumVersion(t *testing.T) {
	// Below 2.0 always fails, even with every relevant extension present.
	exts := []string{"GL_ARB_vertex_array_object", "GL_ARB_uniform_buffer_object"}
	_, err := newCapabilities("Vendor", "Renderer", "1.5.0", "1.10", exts)
	if err == nil {
		t.Fatal("Expected construction to fail for OpenGL 1.5")
	}
	if !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("Expected ErrUnsupportedDriver, got %v", err)
	}
}

func TestCapabilitiesVAORequirement(t *testing.T) {
	// A 2.x driver without GL_ARB_vertex_array_object is rejected.
	_, err := newCapabilities("Vendor", "Renderer", "2.1.0", "1.20", nil)
	if err == nil {
		t.Fatal("Expected construction to fail for 2.1 without the VAO extension")
	}
	if !errors.Is(err, ErrMissingExtension) {
		t.Errorf("Expected ErrMissingExtension, got %v", err)
	}

	// With the extension it succeeds.
	c, err := newCapabilities("Vendor", "Renderer", "2.1.0", "1.20",
		[]string{"GL_ARB_vertex_array_object"})
	if err != nil {
		t.Fatalf("Unexpected error for 2.1 with the VAO extension: %v", err)
	}
	if !c.HasExtension("GL_ARB_vertex_array_object") {
		t.Error("Expected HasExtension to report GL_ARB_vertex_array_object")
	}

	// From 3.0 on the extension check is bypassed.
	if _, err := newCapabilities("Vendor", "Renderer", "3.0.0", "1.30", nil); err != nil {
		t.Errorf("Unexpected error for 3.0 without extensions: %v", err)
	}
}

func TestUniformBufferFeature(t *testing.T) {
	// At 3.1 the feature is enabled unconditionally.
	c, err := newCapabilities("Vendor", "Renderer", "3.1.0", "1.40", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !c.HasFeature(FeatureUniformBufferObject) {
		t.Error("Expected uniform buffer objects to be enabled at 3.1")
	}

	// Below 3.1 it depends on the extension.
	c, err = newCapabilities("Vendor", "Renderer", "2.5.0", "1.20",
		[]string{"GL_ARB_vertex_array_object", "GL_ARB_uniform_buffer_object"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !c.HasFeature(FeatureUniformBufferObject) {
		t.Error("Expected uniform buffer objects to be enabled at 2.5 with the extension")
	}

	c, err = newCapabilities("Vendor", "Renderer", "2.5.0", "1.20",
		[]string{"GL_ARB_vertex_array_object"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.HasFeature(FeatureUniformBufferObject) {
		t.Error("Expected uniform buffer objects to be disabled at 2.5 without the extension")
	}

	// 3.0 is still below the unconditional threshold.
	c, err = newCapabilities("Vendor", "Renderer", "3.0.0", "1.30", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.HasFeature(FeatureUniformBufferObject) {
		t.Error("Expected uniform buffer objects to be disabled at 3.0 without the extension")
	}
}

func TestCapabilitiesQueries(t *testing.T) {
	c, err := newCapabilities("NVIDIA Corporation", "NVIDIA GeForce RTX 3070/PCIe/SSE2",
		"3.2.0 NVIDIA 550.54.14", "1.50 NVIDIA via Cg compiler",
		[]string{"GL_ARB_debug_output"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if c.Vendor() != "NVIDIA Corporation" {
		t.Errorf("Expected vendor string to be preserved, got %q", c.Vendor())
	}
	if c.Renderer() != "NVIDIA GeForce RTX 3070/PCIe/SSE2" {
		t.Errorf("Expected renderer string to be preserved, got %q", c.Renderer())
	}
	if c.Version() != "3.2.0 NVIDIA 550.54.14" {
		t.Errorf("Expected raw version string to be preserved, got %q", c.Version())
	}
	if major, minor := c.GLVersion(); major != 3 || minor != 2 {
		t.Errorf("Expected GL version (3, 2), got (%d, %d)", major, minor)
	}
	if major, minor := c.GLSLVersion(); major != 1 || minor != 50 {
		t.Errorf("Expected GLSL version (1, 50), got (%d, %d)", major, minor)
	}
	if !c.HasExtension("GL_ARB_debug_output") {
		t.Error("Expected GL_ARB_debug_output to be reported")
	}
	if c.HasExtension("GL_ARB_bindless_texture") {
		t.Error("Did not expect GL_ARB_bindless_texture to be reported")
	}

	// 3.2 is above both thresholds: VAO requirement satisfied without the
	// extension and uniform buffers enabled unconditionally.
	if !c.HasFeature(FeatureUniformBufferObject) {
		t.Error("Expected uniform buffer objects to be enabled at 3.2")
	}
}

func TestCapabilitiesMalformedShadingVersion(t *testing.T) {
	_, err := newCapabilities("Vendor", "Renderer", "3.2.0", "GLSL broken", nil)
	if err == nil {
		t.Fatal("Expected construction to fail for an unparseable GLSL version")
	}
	if !errors.Is(err, ErrMalformedVersion) {
		t.Errorf("Expected ErrMalformedVersion, got %v", err)
	}
}
