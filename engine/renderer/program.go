package renderer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

/**
 * @brief Collects at most one shader stage per kind into a driver program.
 * A successful Link consumes the builder; a failed Link leaves it untouched.
 */
type ProgramBuilder struct {
	backend  Backend
	handle   uint32
	stages   map[metadata.ShaderKind]*Shader
	consumed bool
}

func NewProgramBuilder(backend Backend) *ProgramBuilder {
	return &ProgramBuilder{
		backend: backend,
		handle:  backend.CreateProgram(),
		stages:  make(map[metadata.ShaderKind]*Shader),
	}
}

func (pb *ProgramBuilder) Handle() uint32 { return pb.handle }

// Len is the number of attached stages.
func (pb *ProgramBuilder) Len() int { return len(pb.stages) }

func (pb *ProgramBuilder) Stage(kind metadata.ShaderKind) (*Shader, bool) {
	s, ok := pb.stages[kind]
	return s, ok
}

// Stages returns the attached stages ordered by kind.
func (pb *ProgramBuilder) Stages() []*Shader {
	out := make([]*Shader, 0, len(pb.stages))
	for _, s := range pb.stages {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].kind < out[j].kind })
	return out
}

// Attach compiles s if needed and attaches it. A second stage of a kind that
// is already present is rejected before the driver is touched.
func (pb *ProgramBuilder) Attach(s *Shader) error {
	if pb.consumed {
		return core.ErrBuilderConsumed
	}
	if _, ok := pb.stages[s.kind]; ok {
		return &DuplicateStageError{Kind: s.kind}
	}
	if err := s.Compile(); err != nil {
		return err
	}
	pb.backend.AttachShader(pb.handle, s.handle)
	pb.stages[s.kind] = s
	return nil
}

// Link links the attached stages. On failure the returned *LinkError holds
// this builder unchanged and Link may be called again.
func (pb *ProgramBuilder) Link() (*Program, error) {
	if pb.consumed {
		return nil, core.ErrBuilderConsumed
	}
	pb.backend.LinkProgram(pb.handle)
	if !pb.backend.ProgramLinkStatus(pb.handle) {
		err := &LinkError{Log: pb.backend.ProgramInfoLog(pb.handle, InfoLogSize), Builder: pb}
		core.LogError("program link failed", "program", pb.handle, "err", err)
		return nil, err
	}

	for _, s := range pb.Stages() {
		pb.backend.DetachShader(pb.handle, s.handle)
	}
	program := &Program{backend: pb.backend, handle: pb.handle}
	pb.consumed = true
	pb.handle = 0
	pb.stages = nil
	return program, nil
}

// Delete releases an unlinked program. It does nothing once Link succeeded.
func (pb *ProgramBuilder) Delete() {
	if pb.consumed {
		return
	}
	pb.backend.DeleteProgram(pb.handle)
	pb.consumed = true
	pb.handle = 0
	pb.stages = nil
}

// Program is a linked, immutable shader program.
type Program struct {
	backend Backend
	handle  uint32
	deleted bool
}

func (p *Program) Handle() uint32 { return p.handle }

// Bind makes p the current program.
func (p *Program) Bind() *ActiveProgram {
	p.backend.UseProgram(p.handle)
	return &ActiveProgram{program: p}
}

// AssignTextureUnit binds p and points the sampler uniform name at unit.
func (p *Program) AssignTextureUnit(name string, unit metadata.TextureUnit) error {
	return p.Bind().SetUniform(name, unit)
}

func (p *Program) Delete() {
	if p.deleted {
		return
	}
	p.backend.DeleteProgram(p.handle)
	p.deleted = true
}

// GenerateProgram builds a program from source files. An empty geometryPath
// means no geometry stage. Every stage handle is released on return, and the
// program handle too when any step fails.
func GenerateProgram(backend Backend, vertexPath, fragmentPath, geometryPath string) (*Program, error) {
	type stageFile struct {
		kind metadata.ShaderKind
		path string
	}
	files := []stageFile{
		{metadata.VertexShader, vertexPath},
		{metadata.FragmentShader, fragmentPath},
	}
	if geometryPath != "" {
		files = append(files, stageFile{metadata.GeometryShader, geometryPath})
	}

	shaders := make([]*Shader, 0, len(files))
	defer func() {
		for _, s := range shaders {
			s.Delete()
		}
	}()
	for _, f := range files {
		s, err := NewShaderFromFile(backend, f.kind, f.path)
		if err != nil {
			return nil, err
		}
		shaders = append(shaders, s)
	}
	program, err := linkStages(backend, shaders)
	if err != nil {
		return nil, fmt.Errorf("generate program from %s: %w", vertexPath, err)
	}
	return program, nil
}

// NewProgramFromSource is GenerateProgram for in-memory sources.
func NewProgramFromSource(backend Backend, vertex, fragment, geometry string) (*Program, error) {
	shaders := []*Shader{
		NewShader(backend, metadata.VertexShader, vertex),
		NewShader(backend, metadata.FragmentShader, fragment),
	}
	if geometry != "" {
		shaders = append(shaders, NewShader(backend, metadata.GeometryShader, geometry))
	}
	defer func() {
		for _, s := range shaders {
			s.Delete()
		}
	}()
	return linkStages(backend, shaders)
}

func linkStages(backend Backend, shaders []*Shader) (*Program, error) {
	builder := NewProgramBuilder(backend)
	for _, s := range shaders {
		if err := builder.Attach(s); err != nil {
			builder.Delete()
			return nil, err
		}
	}
	program, err := builder.Link()
	if err != nil {
		builder.Delete()
		var le *LinkError
		if errors.As(err, &le) {
			le.Builder = nil
		}
		return nil, err
	}
	return program, nil
}
