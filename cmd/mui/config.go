// cmd/mui/config.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
)

// Config holds the demo's persisted settings. Unknown fields in the file are
// ignored, so configs written by newer builds still load.
type Config struct {
	WindowTitle     string
	VSync           bool
	ClearColor      [4]uint8
	ReferenceWidth  int32
	ReferenceHeight int32
	ImagePath       string
	LogLevel        string
}

func getDefaultConfig() *Config {
	return &Config{
		WindowTitle:     "mui demo",
		VSync:           true,
		ClearColor:      [4]uint8{26, 30, 38, 255},
		ReferenceWidth:  800,
		ReferenceHeight: 480,
		LogLevel:        "info",
	}
}

// LoadConfig reads the config at path, filling in defaults for anything the
// file does not set. A missing file is not an error; it yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := getDefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(b, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// Save writes the config as indented JSON, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	b, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) clearColor() color.RGBA {
	return color.RGBA{R: c.ClearColor[0], G: c.ClearColor[1], B: c.ClearColor[2], A: c.ClearColor[3]}
}

// defaultConfigPath is used when -config is not given.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "mui.json"
	}
	return filepath.Join(dir, "mui", "config.json")
}
