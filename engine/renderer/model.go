package renderer

import (
	"fmt"

	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

/**
 * @brief Vertex and index data resident in GPU buffers, drawn with a shared
 * program. The data is uploaded once and never changes afterwards.
 */
type Model struct {
	backend  Backend
	vertices []float32
	indices  []uint32
	program  *Ref[*Program]
	vao      *VertexArray
	vbo      *VertexBuffer
	ebo      *ElementBuffer
	deleted  bool
}

// NewModel uploads vertices and indices and runs configure once with the
// model's vertex array bound, so it can describe the vertex layout. The model
// takes over the program reference.
func NewModel(backend Backend, vertices []float32, indices []uint32, program *Ref[*Program], configure func(*BoundVertexArray)) *Model {
	m := &Model{
		backend:  backend,
		vertices: append([]float32(nil), vertices...),
		indices:  append([]uint32(nil), indices...),
		program:  program,
		vao:      NewVertexArray(backend),
		vbo:      NewVertexBuffer(backend),
		ebo:      NewElementBuffer(backend),
	}

	vao := m.vao.Bind()
	vbo := m.vbo.Bind()
	ebo := m.ebo.Bind()
	vbo.Upload(Typed(m.vertices), metadata.StaticDraw)
	ebo.Upload(Typed(m.indices), metadata.StaticDraw)
	if configure != nil {
		configure(vao)
	}
	vao.Unbind()
	return m
}

// Render binds the program, lets uniforms set per-draw state, and draws every
// index as 32-bit unsigned elements. uniforms may be nil.
func (m *Model) Render(mode metadata.PrimitiveMode, uniforms func(*ActiveProgram)) error {
	if m.deleted {
		return fmt.Errorf("render model: %w", errDeleted)
	}
	active := m.program.Get().Bind()
	if uniforms != nil {
		uniforms(active)
	}
	vao := m.vao.Bind()
	m.backend.DrawElements(mode, int32(len(m.indices)), metadata.ScalarUnsignedInt, 0)
	vao.Unbind()
	return nil
}

// Vertices returns a copy of the vertex data.
func (m *Model) Vertices() []float32 { return append([]float32(nil), m.vertices...) }

// Indices returns a copy of the index data.
func (m *Model) Indices() []uint32 { return append([]uint32(nil), m.indices...) }

func (m *Model) Program() *Program         { return m.program.Get() }
func (m *Model) VertexArray() *VertexArray { return m.vao }

// SetProgram takes over program for later draws and releases the reference
// the model held before.
func (m *Model) SetProgram(program *Ref[*Program]) {
	previous := m.program
	m.program = program
	previous.Release()
}

// Delete releases the buffers and the model's program reference.
func (m *Model) Delete() {
	if m.deleted {
		return
	}
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
	m.program.Release()
	m.deleted = true
}
