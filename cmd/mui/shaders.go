// cmd/mui/shaders.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// GLSL 120 sources for the bundled programs. Attribute names must match the
// ones the programs bind before linking: position at index 0, color or uv at
// index 1.

const geometryVertexSource = `#version 120

attribute vec2 position;
attribute vec4 color;

uniform mat4 projection;
uniform mat4 model;

varying vec4 vertexColor;

void main() {
	gl_Position = projection * model * vec4(position, 0.0, 1.0);
	vertexColor = color;
}
`

const geometryFragmentSource = `#version 120

varying vec4 vertexColor;

void main() {
	gl_FragColor = vertexColor;
}
`

const texturedVertexSource = `#version 120

attribute vec2 position;
attribute vec2 uv;

uniform mat4 projection;
uniform mat4 model;

varying vec2 texCoord;

void main() {
	gl_Position = projection * model * vec4(position, 0.0, 1.0);
	texCoord = uv;
}
`

const texturedFragmentSource = `#version 120

uniform sampler2D tex;
uniform mat4 colorFilter;

varying vec2 texCoord;

void main() {
	gl_FragColor = colorFilter * texture2D(tex, texCoord);
}
`
