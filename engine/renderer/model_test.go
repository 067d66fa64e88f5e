package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/ace/engine/math"
	"github.com/spaghettifunk/ace/engine/renderer/gltest"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

func newTestModel(t *testing.T, b *gltest.Backend) (*Model, *Ref[*Program]) {
	t.Helper()
	program := NewRef(newTestProgram(t, b, passThroughFragment))
	m := NewModel(b, TriangleVertices, TriangleIndices, program.Clone(), InterleavedLayout(3, 3, 2))
	return m, program
}

func TestModelKeepsItsOwnData(t *testing.T) {
	b := gltest.New()
	vertices := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	indices := []uint32{0, 1, 2}
	m := NewModel(b, vertices, indices, NewRef(newTestProgram(t, b, passThroughFragment)), nil)

	vertices[0] = 99
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, m.Vertices())
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices())

	out := m.Indices()
	out[0] = 7
	assert.Equal(t, uint32(0), m.Indices()[0])

	assert.Len(t, b.Buffers[m.vbo.Handle()].Data, 36)
	assert.Len(t, b.Buffers[m.ebo.Handle()].Data, 12)
}

func TestNewModelCallOrder(t *testing.T) {
	b := gltest.New()
	program := NewRef(newTestProgram(t, b, passThroughFragment))
	b.ResetCalls()

	NewModel(b, QuadVertices, QuadIndices, program, InterleavedLayout(2, 2))
	assert.Equal(t, []string{
		"GenVertexArray", "GenBuffer", "GenBuffer",
		"BindVertexArray", "BindBuffer", "BindBuffer",
		"BufferData", "BufferData",
		"VertexAttribPointer", "EnableVertexAttribArray",
		"VertexAttribPointer", "EnableVertexAttribArray",
		"BindVertexArray",
	}, b.CallNames())
	assert.Zero(t, b.CurrentVertexArray)
	assert.Equal(t, metadata.StaticDraw, b.Buffers[b.BoundBuffers[metadata.ArrayBuffer]].Usage)
}

func TestModelRender(t *testing.T) {
	b := gltest.New()
	m, program := newTestModel(t, b)
	defer program.Release()
	b.ResetCalls()

	err := m.Render(metadata.Triangles, func(p *ActiveProgram) {
		require.NoError(t, p.SetUniform("tint", math.NewVec4(1, 0, 0, 1)))
	})
	require.NoError(t, err)

	require.Len(t, b.Draws, 1)
	draw := b.Draws[0]
	assert.Equal(t, metadata.Triangles, draw.Mode)
	assert.Equal(t, int32(6), draw.Count)
	assert.Equal(t, metadata.ScalarUnsignedInt, draw.Type)
	assert.Equal(t, program.Get().Handle(), draw.Program)
	assert.Equal(t, m.VertexArray().Handle(), draw.VertexArray)
	assert.Zero(t, b.CurrentVertexArray)

	tint, ok := b.UniformValue(program.Get().Handle(), "tint")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0, 0, 1}, tint.Floats)

	names := b.CallNames()
	assert.Equal(t, "UseProgram", names[0])
	assert.Equal(t, []string{"BindVertexArray", "DrawElements", "BindVertexArray"}, names[len(names)-3:])
}

func TestModelRenderWithoutUniforms(t *testing.T) {
	b := gltest.New()
	m, program := newTestModel(t, b)
	defer program.Release()

	require.NoError(t, m.Render(metadata.Triangles, nil))
	require.NoError(t, m.Render(metadata.Triangles, func(*ActiveProgram) {}))
	assert.Len(t, b.Draws, 2)
}

func TestModelDelete(t *testing.T) {
	b := gltest.New()
	m, program := newTestModel(t, b)
	assert.Equal(t, 2, program.Count())

	m.Delete()
	m.Delete()
	assert.Equal(t, 1, program.Count())
	assert.Zero(t, b.Deleted[program.Get().Handle()])
	assert.Equal(t, 2, b.Count("DeleteBuffer"))
	assert.Equal(t, 1, b.Count("DeleteVertexArray"))

	err := m.Render(metadata.Triangles, nil)
	assert.Error(t, err)
	assert.Empty(t, b.Draws)

	program.Release()
	assert.Zero(t, b.Live())
}

func TestCubeGeometry(t *testing.T) {
	assert.Len(t, CubeVertices, 24*8)
	assert.Len(t, CubeIndices, 36)
	for _, i := range CubeIndices {
		assert.Less(t, i, uint32(24))
	}
	assert.Len(t, QuadVertices, 4*4)
	for _, i := range QuadIndices {
		assert.Less(t, i, uint32(4))
	}
}


func TestModelSetProgram(t *testing.T) {
	b := gltest.New()
	m, first := newTestModel(t, b)
	oldHandle := first.Get().Handle()
	first.Release()

	second := NewRef(newTestProgram(t, b, passThroughFragment))
	newHandle := second.Get().Handle()
	m.SetProgram(second)
	assert.Equal(t, 1, b.Deleted[oldHandle], "last reference to the old program went with the swap")

	require.NoError(t, m.Render(metadata.Triangles, nil))
	require.NotEmpty(t, b.Draws)
	assert.Equal(t, newHandle, b.Draws[len(b.Draws)-1].Program)

	m.Delete()
	assert.Equal(t, 1, b.Deleted[newHandle])
}
