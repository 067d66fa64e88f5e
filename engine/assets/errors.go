package assets

import (
	"fmt"

	"github.com/spaghettifunk/ace/engine/core"
)

// AssetKind names the namespace an asset lives in.
type AssetKind uint8

const (
	KindProgram AssetKind = iota
	KindTexture
	KindMaterial
)

func (k AssetKind) String() string {
	switch k {
	case KindProgram:
		return "program"
	case KindTexture:
		return "texture"
	case KindMaterial:
		return "material"
	}
	return fmt.Sprintf("AssetKind(%d)", uint8(k))
}

// NotFoundError is returned by the Find methods for names never added.
type NotFoundError struct {
	Kind AssetKind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == core.ErrAssetNotFound }
