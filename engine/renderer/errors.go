package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

var errDeleted = errors.New("object already deleted")

// CompileError carries the driver log of a shader stage that failed to compile.
type CompileError struct {
	Kind metadata.ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader failed to compile: %s", e.Kind, strings.TrimSpace(e.Log))
}

func (e *CompileError) Is(target error) bool { return target == core.ErrCompile }

/**
 * @brief Returned by ProgramBuilder.Link when the driver rejects the program.
 * Builder is the same, unchanged builder so the caller can inspect it, retry
 * or delete it. It is nil when the error comes from GenerateProgram or
 * NewProgramFromSource, which release their builder.
 */
type LinkError struct {
	Log     string
	Builder *ProgramBuilder
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program failed to link: %s", strings.TrimSpace(e.Log))
}

func (e *LinkError) Is(target error) bool { return target == core.ErrLink }

type DuplicateStageError struct {
	Kind metadata.ShaderKind
}

func (e *DuplicateStageError) Error() string {
	return fmt.Sprintf("program already has a %s stage", e.Kind)
}

func (e *DuplicateStageError) Is(target error) bool { return target == core.ErrDuplicateStageKind }

// TextureConfigError names the first compatibility rule a TextureConfig broke.
type TextureConfigError struct {
	Config TextureConfig
	Rule   int
	Reason string
}

func (e *TextureConfigError) Error() string {
	return fmt.Sprintf("bad texture config (rule %d): %s [%s]", e.Rule, e.Reason, e.Config)
}

func (e *TextureConfigError) Is(target error) bool { return target == core.ErrBadTextureConfig }

// ImageLayoutError is returned when a config cannot describe decoded image data.
type ImageLayoutError struct {
	Config TextureConfig
	Want   TextureConfig
}

func (e *ImageLayoutError) Error() string {
	return fmt.Sprintf("texture config [%s] does not match decoded image layout [%s]", e.Config, e.Want)
}

func (e *ImageLayoutError) Is(target error) bool { return target == core.ErrBadTextureConfig }

type UniformTypeError struct {
	Name  string
	Value any
}

func (e *UniformTypeError) Error() string {
	return fmt.Sprintf("uniform %q: unsupported value type %T", e.Name, e.Value)
}

func (e *UniformTypeError) Is(target error) bool { return target == core.ErrUnsupportedUniform }
