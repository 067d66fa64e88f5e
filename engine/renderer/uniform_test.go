package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/math"
	"github.com/spaghettifunk/ace/engine/renderer/gltest"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

func TestSetUniformDispatch(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  gltest.UniformValue
	}{
		{"bool", true, gltest.UniformValue{Func: "Uniform1i", Count: 1, Ints: []int32{1}}},
		{"int32", int32(-4), gltest.UniformValue{Func: "Uniform1i", Count: 1, Ints: []int32{-4}}},
		{"int", 7, gltest.UniformValue{Func: "Uniform1i", Count: 1, Ints: []int32{7}}},
		{"uint32", uint32(9), gltest.UniformValue{Func: "Uniform1ui", Count: 1, Uints: []uint32{9}}},
		{"float32", float32(0.5), gltest.UniformValue{Func: "Uniform1f", Count: 1, Floats: []float32{0.5}}},
		{"float64", 0.25, gltest.UniformValue{Func: "Uniform1f", Count: 1, Floats: []float32{0.25}}},
		{"unit", metadata.Slot3, gltest.UniformValue{Func: "Uniform1i", Count: 1, Ints: []int32{3}}},
		{"vec2", math.NewVec2(1, 2), gltest.UniformValue{Func: "Uniform2f", Count: 1, Floats: []float32{1, 2}}},
		{"vec3", math.NewVec3(1, 2, 3), gltest.UniformValue{Func: "Uniform3f", Count: 1, Floats: []float32{1, 2, 3}}},
		{"vec4", math.NewVec4(1, 2, 3, 4), gltest.UniformValue{Func: "Uniform4f", Count: 1, Floats: []float32{1, 2, 3, 4}}},
		{"ivec3", math.IVec3{X: 1, Y: -2, Z: 3}, gltest.UniformValue{Func: "Uniform3i", Count: 1, Ints: []int32{1, -2, 3}}},
		{"uvec2", math.UVec2{X: 5, Y: 6}, gltest.UniformValue{Func: "Uniform2ui", Count: 1, Uints: []uint32{5, 6}}},
		{"bvec4", math.BVec4{X: true, Z: true}, gltest.UniformValue{Func: "Uniform4i", Count: 1, Ints: []int32{1, 0, 1, 0}}},
		{"floats", []float32{1, 2, 3}, gltest.UniformValue{Func: "Uniform1fv", Count: 3, Floats: []float32{1, 2, 3}}},
		{"bools", []bool{false, true}, gltest.UniformValue{Func: "Uniform1iv", Count: 2, Ints: []int32{0, 1}}},
		{"vec3s", []math.Vec3{math.NewVec3(1, 2, 3), math.NewVec3(4, 5, 6)},
			gltest.UniformValue{Func: "Uniform3fv", Count: 2, Floats: []float32{1, 2, 3, 4, 5, 6}}},
		{"uvec4s", []math.UVec4{{X: 1, Y: 2, Z: 3, W: 4}},
			gltest.UniformValue{Func: "Uniform4uiv", Count: 1, Uints: []uint32{1, 2, 3, 4}}},
		{"mat2", math.NewMat2Identity(), gltest.UniformValue{Func: "UniformMatrix2fv", Count: 1, Floats: []float32{1, 0, 0, 1}}},
		{"mat3x2", math.Mat3x2{Data: [6]float32{1, 2, 3, 4, 5, 6}},
			gltest.UniformValue{Func: "UniformMatrix3x2fv", Count: 1, Floats: []float32{1, 2, 3, 4, 5, 6}}},
	}

	names := make([]string, len(tests))
	for i, tt := range tests {
		names[i] = tt.name
	}
	b := gltest.New()
	p := newTestProgram(t, b, fragmentWithUniforms(names...))
	active := p.Bind()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, active.SetUniform(tt.name, tt.value))
			got, ok := b.UniformValue(p.Handle(), tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetUniformMatrices(t *testing.T) {
	b := gltest.New()
	p := newTestProgram(t, b, passThroughFragment)
	active := p.Bind()

	m := math.NewMat4Translation(math.NewVec3(1, 2, 3))
	require.NoError(t, active.SetUniform("model", m))
	got, ok := b.UniformValue(p.Handle(), "model")
	require.True(t, ok)
	assert.Equal(t, "UniformMatrix4fv", got.Func)
	assert.False(t, got.Transpose)
	assert.Equal(t, m.Data[:], got.Floats)

	both := []math.Mat4{math.NewMat4Identity(), m}
	require.NoError(t, active.SetUniform("view", both))
	got, _ = b.UniformValue(p.Handle(), "view")
	assert.Equal(t, int32(2), got.Count)
	assert.Len(t, got.Floats, 32)
	assert.Equal(t, m.Data[:], got.Floats[16:])
}

func TestSetUniformResolvesEveryCall(t *testing.T) {
	b := gltest.New()
	p := newTestProgram(t, b, passThroughFragment)
	active := p.Bind()

	require.NoError(t, active.SetUniform("tint", math.NewVec4(1, 1, 1, 1)))
	require.NoError(t, active.SetUniform("tint", math.NewVec4(0, 0, 0, 1)))
	assert.Equal(t, 2, b.Count("GetUniformLocation"))
}

func TestSetUniformUnknownNameIsNoOp(t *testing.T) {
	b := gltest.New()
	p := newTestProgram(t, b, passThroughFragment)

	require.NoError(t, p.Bind().SetUniform("doesNotExist", float32(1)))
	assert.Empty(t, b.Programs[p.Handle()].Values)
}

func TestSetUniformUnsupportedType(t *testing.T) {
	b := gltest.New()
	p := newTestProgram(t, b, passThroughFragment)

	err := p.Bind().SetUniform("tint", "red")
	assert.ErrorIs(t, err, core.ErrUnsupportedUniform)
	var ue *UniformTypeError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "tint", ue.Name)
}

func TestAssignTextureUnitAndUnbind(t *testing.T) {
	b := gltest.New()
	p := newTestProgram(t, b, fragmentWithUniforms("screenTexture"))

	require.NoError(t, p.AssignTextureUnit("screenTexture", metadata.Slot1))
	assert.Equal(t, p.Handle(), b.CurrentProgram)
	got, _ := b.UniformValue(p.Handle(), "screenTexture")
	assert.Equal(t, []int32{1}, got.Ints)

	// Unbind clears whatever program is current.
	other := newTestProgram(t, b, passThroughFragment)
	active := p.Bind()
	other.Bind()
	active.Unbind()
	assert.Zero(t, b.CurrentProgram)
}
