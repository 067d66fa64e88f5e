package gltest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

func TestDeclaredUniforms(t *testing.T) {
	src := `#version 410 core
struct Light {
	vec3 position;
	float intensity;
};
uniform mat4 model;
uniform Light light;
  uniform sampler2D albedo;
// uniform float commented;
`
	assert.Equal(t, []string{"model", "light.position", "light.intensity", "albedo"}, declaredUniforms(src))
}

func TestLinkAssignsLocations(t *testing.T) {
	b := New()
	vs := b.CreateShader(metadata.VertexShader)
	b.ShaderSource(vs, "uniform mat4 model;\nuniform float shared;\n")
	b.CompileShader(vs)
	fs := b.CreateShader(metadata.FragmentShader)
	b.ShaderSource(fs, "uniform float shared;\nuniform vec4 tint;\n")
	b.CompileShader(fs)

	p := b.CreateProgram()
	b.AttachShader(p, vs)
	b.AttachShader(p, fs)
	b.LinkProgram(p)

	assert.True(t, b.ProgramLinkStatus(p))
	assert.Equal(t, int32(0), b.GetUniformLocation(p, "model"))
	assert.Equal(t, int32(1), b.GetUniformLocation(p, "shared"))
	assert.Equal(t, int32(2), b.GetUniformLocation(p, "tint"))
	assert.Equal(t, int32(-1), b.GetUniformLocation(p, "missing"))
}

func TestLinkFailures(t *testing.T) {
	b := New()
	p := b.CreateProgram()
	b.LinkProgram(p)
	assert.False(t, b.ProgramLinkStatus(p))
	assert.Contains(t, b.ProgramInfoLog(p, 512), "no shaders attached")

	s := b.CreateShader(metadata.VertexShader)
	b.ShaderSource(s, "#error nope\n")
	b.CompileShader(s)
	assert.False(t, b.ShaderCompileStatus(s))
	assert.Equal(t, "ERROR", b.ShaderInfoLog(s, 5))

	b.AttachShader(p, s)
	b.LinkProgram(p)
	assert.Contains(t, b.ProgramInfoLog(p, 512), "not compiled")

	b.FailLink = true
	b.LinkLog = "forced"
	b.LinkProgram(p)
	assert.Equal(t, "forced", b.ProgramInfoLog(p, 512))
}

func TestDeleteClearsBindings(t *testing.T) {
	b := New()
	tex := b.GenTexture()
	b.ActiveTexture(metadata.Slot3)
	b.BindTexture(metadata.Texture2D, tex)
	assert.Equal(t, tex, b.BoundTexture(metadata.Slot3, metadata.Texture2D))

	b.DeleteTexture(tex)
	assert.Zero(t, b.BoundTexture(metadata.Slot3, metadata.Texture2D))
	assert.Equal(t, 1, b.Deleted[tex])
	assert.Zero(t, b.Live())
}
