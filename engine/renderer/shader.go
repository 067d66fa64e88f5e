package renderer

import (
	"fmt"

	"github.com/spaghettifunk/ace/engine/assets/loaders"
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

// InfoLogSize bounds how much of a compile or link log is captured.
const InfoLogSize = 512

type shaderState uint8

const (
	shaderCreated shaderState = iota
	shaderCompiled
	shaderFailed
	shaderDeleted
)

/**
 * @brief A single shader stage. The driver handle is allocated on creation,
 * compiled at most once, and released by Delete whatever state the stage is in.
 */
type Shader struct {
	backend Backend
	kind    metadata.ShaderKind
	source  string
	handle  uint32
	state   shaderState
	err     error
}

func NewShader(backend Backend, kind metadata.ShaderKind, source string) *Shader {
	return &Shader{
		backend: backend,
		kind:    kind,
		source:  source,
		handle:  backend.CreateShader(kind),
	}
}

// NewShaderFromFile reads the source first; no driver call is made if that fails.
func NewShaderFromFile(backend Backend, kind metadata.ShaderKind, path string) (*Shader, error) {
	source, err := loaders.LoadShaderSource(path)
	if err != nil {
		core.LogError("failed to load shader source", "kind", kind, "path", path, "err", err)
		return nil, err
	}
	return NewShader(backend, kind, source), nil
}

func (s *Shader) Kind() metadata.ShaderKind { return s.kind }
func (s *Shader) Source() string            { return s.source }
func (s *Shader) Handle() uint32            { return s.handle }
func (s *Shader) Compiled() bool            { return s.state == shaderCompiled }

// Compile submits the source and compiles it. The outcome is cached: later
// calls return the first result without touching the driver.
func (s *Shader) Compile() error {
	switch s.state {
	case shaderCompiled:
		return nil
	case shaderFailed:
		return s.err
	case shaderDeleted:
		return fmt.Errorf("compile %s shader: %w", s.kind, errDeleted)
	}

	s.backend.ShaderSource(s.handle, s.source)
	s.backend.CompileShader(s.handle)
	if !s.backend.ShaderCompileStatus(s.handle) {
		s.state = shaderFailed
		s.err = &CompileError{Kind: s.kind, Log: s.backend.ShaderInfoLog(s.handle, InfoLogSize)}
		core.LogError("shader compilation failed", "kind", s.kind, "err", s.err)
		return s.err
	}
	s.state = shaderCompiled
	return nil
}

// Delete releases the driver handle. Safe to call more than once.
func (s *Shader) Delete() {
	if s.state == shaderDeleted {
		return
	}
	s.backend.DeleteShader(s.handle)
	s.state = shaderDeleted
	s.handle = 0
}
