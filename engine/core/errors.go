package core

import (
	"errors"
	"fmt"
)

var (
	ErrCompile            = errors.New("shader compilation failed")
	ErrLink               = errors.New("shader program link failed")
	ErrDuplicateStageKind = errors.New("program already has a stage of this kind")
	ErrBuilderConsumed    = errors.New("program builder already linked")
	ErrBadTextureConfig   = errors.New("bad texture configuration")
	ErrImageDecode        = errors.New("image decode failed")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrUnsupportedUniform = errors.New("unsupported uniform value type")
	ErrUnknownName        = errors.New("unknown name")
)

// UnknownNameError is returned when a textual enum value (from a config or
// manifest file) does not name any known constant.
type UnknownNameError struct {
	Kind string
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

func (e *UnknownNameError) Is(target error) bool {
	return target == ErrUnknownName
}
