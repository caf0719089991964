// cmd/mui/config_test.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaultConfig(t *testing.T) {
	config := getDefaultConfig()

	if config.WindowTitle == "" {
		t.Error("WindowTitle not initialized in default config")
	}
	if !config.VSync {
		t.Error("Expected vsync on by default")
	}
	if config.ReferenceWidth != 800 || config.ReferenceHeight != 480 {
		t.Errorf("Expected 800x480 reference size, got %dx%d",
			config.ReferenceWidth, config.ReferenceHeight)
	}
	if config.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %q", config.LogLevel)
	}
	want := color.RGBA{R: 26, G: 30, B: 38, A: 255}
	if got := config.clearColor(); got != want {
		t.Errorf("Expected clear color %v, got %v", want, got)
	}
}

func TestConfigRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config := getDefaultConfig()
	config.WindowTitle = "test title"
	config.VSync = false
	config.ImagePath = "/tmp/sprite.png"
	if err := config.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *config {
		t.Errorf("Expected %+v, got %+v", config, loaded)
	}
}

func TestLoadConfigAbsent(t *testing.T) {
	loaded, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *getDefaultConfig() {
		t.Errorf("Expected defaults for absent config, got %+v", loaded)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"WindowTitle":"custom","Obsolete":true}`), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.WindowTitle != "custom" {
		t.Errorf("Expected overridden title, got %q", loaded.WindowTitle)
	}
	// Fields the file does not set keep their defaults, and unknown fields
	// are ignored.
	if loaded.LogLevel != "info" {
		t.Errorf("Expected default log level to survive partial config, got %q", loaded.LogLevel)
	}
}
