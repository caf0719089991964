// renderer/caps.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
)

var (
	// ErrUnsupportedDriver indicates an OpenGL driver below the 2.0 baseline.
	ErrUnsupportedDriver = errors.New("unsupported OpenGL driver")
	// ErrMissingExtension indicates a pre-3.0 driver without a required extension.
	ErrMissingExtension = errors.New("required OpenGL extension missing")
	// ErrMalformedVersion indicates a version string that could not be parsed.
	ErrMalformedVersion = errors.New("malformed OpenGL version string")
)

// Feature identifies an optional driver capability derived during
// negotiation; call Capabilities.HasFeature to check for one.
type Feature int

const (
	// FeatureUniformBufferObject: core in OpenGL 3.1, available on older
	// drivers through GL_ARB_uniform_buffer_object.
	FeatureUniformBufferObject Feature = iota
)

// Capabilities records everything negotiated with the OpenGL driver at the
// time its context was made current: identification strings, parsed
// versions, the supported extension set, and the derived feature flags.
// It is immutable after construction and is shared by reference between the
// window that owns the context and every Canvas built on it.
type Capabilities struct {
	vendor   string
	renderer string

	version      string
	versionMajor int
	versionMinor int

	slVersion      string
	slVersionMajor int
	slVersionMinor int

	extensions map[string]bool
	features   map[Feature]bool
}

// NewCapabilities queries the current OpenGL context and negotiates the
// feature set. The context must be current and the entry points loaded
// before this is called. Construction fails if the driver is below OpenGL
// 2.0, if a pre-3.0 driver lacks GL_ARB_vertex_array_object, or if a
// version string cannot be parsed.
func NewCapabilities() (*Capabilities, error) {
	// The indexed extension query is an OpenGL 3.0 entry point; the legacy
	// space-separated string works on every context this renderer can own.
	var extensions []string
	if s := gl.GetString(gl.EXTENSIONS); s != nil {
		extensions = strings.Fields(gl.GoStr(s))
	}

	return newCapabilities(glString(gl.VENDOR), glString(gl.RENDERER),
		glString(gl.VERSION), glString(gl.SHADING_LANGUAGE_VERSION), extensions)
}

func glString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func newCapabilities(vendor, renderer, version, slVersion string, extensions []string) (*Capabilities, error) {
	c := &Capabilities{
		vendor:     vendor,
		renderer:   renderer,
		version:    version,
		slVersion:  slVersion,
		extensions: make(map[string]bool),
		features:   make(map[Feature]bool),
	}

	var err error
	if c.versionMajor, c.versionMinor, err = parseVersion(version); err != nil {
		return nil, err
	}
	if c.slVersionMajor, c.slVersionMinor, err = parseVersion(slVersion); err != nil {
		return nil, err
	}
	for _, e := range extensions {
		c.extensions[e] = true
	}

	if err := c.checkRequirements(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Capabilities) checkRequirements() error {
	if !c.versionAtLeast(2, 0) {
		return fmt.Errorf("%w: OpenGL %d.%d reported, 2.0 or later required",
			ErrUnsupportedDriver, c.versionMajor, c.versionMinor)
	}

	// VAOs are used unconditionally for uniform rendering patterns, so
	// pre-3.0 drivers must provide them through the extension.
	if !c.versionAtLeast(3, 0) && !c.extensions["GL_ARB_vertex_array_object"] {
		return fmt.Errorf("%w: GL_ARB_vertex_array_object not available with OpenGL %d.%d",
			ErrMissingExtension, c.versionMajor, c.versionMinor)
	}

	if c.versionAtLeast(3, 1) {
		c.features[FeatureUniformBufferObject] = true
	} else if c.extensions["GL_ARB_uniform_buffer_object"] {
		c.features[FeatureUniformBufferObject] = true
	}

	return nil
}

func (c *Capabilities) versionAtLeast(major, minor int) bool {
	return c.versionMajor > major || (c.versionMajor == major && c.versionMinor >= minor)
}

// versionRe matches the leading major.minor tokens of a GL version string;
// patch levels and vendor suffixes ("4.6.0 NVIDIA 550.54") are ignored.
var versionRe = regexp.MustCompile(`^(\d+)\.(\d+)`)

func parseVersion(s string) (major, minor int, err error) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	if major, err = strconv.Atoi(m[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	if minor, err = strconv.Atoi(m[2]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	return major, minor, nil
}

// Vendor returns the driver's GL_VENDOR string.
func (c *Capabilities) Vendor() string { return c.vendor }

// Renderer returns the driver's GL_RENDERER string.
func (c *Capabilities) Renderer() string { return c.renderer }

// Version returns the raw GL_VERSION string.
func (c *Capabilities) Version() string { return c.version }

// GLVersion returns the parsed (major, minor) OpenGL version.
func (c *Capabilities) GLVersion() (major, minor int) {
	return c.versionMajor, c.versionMinor
}

// ShadingLanguageVersion returns the raw GL_SHADING_LANGUAGE_VERSION string.
func (c *Capabilities) ShadingLanguageVersion() string { return c.slVersion }

// GLSLVersion returns the parsed (major, minor) shading language version.
func (c *Capabilities) GLSLVersion() (major, minor int) {
	return c.slVersionMajor, c.slVersionMinor
}

// HasExtension reports whether the driver advertises the named extension.
func (c *Capabilities) HasExtension(name string) bool { return c.extensions[name] }

// HasFeature reports whether a negotiated feature is available.
func (c *Capabilities) HasFeature(f Feature) bool { return c.features[f] }
