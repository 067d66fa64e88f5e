package renderer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/ace/engine/assets/loaders"
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

// DefaultCubemapExtension is used when no extension is given for a cubemap directory.
const DefaultCubemapExtension = ".jpg"

// CubemapPaths holds the six face images of a cubemap.
type CubemapPaths struct {
	Right  string
	Left   string
	Top    string
	Bottom string
	Front  string
	Back   string
}

// CubemapEntry pairs a face image with the face it is uploaded to.
type CubemapEntry struct {
	Path string
	Face metadata.CubemapFace
}

// CubemapPathsFromDirectory expects right, left, top, bottom, front and back
// images with extension ext in dir. Every file must exist.
func CubemapPathsFromDirectory(dir, ext string) (CubemapPaths, error) {
	if ext == "" {
		ext = DefaultCubemapExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	face := func(name string) string { return filepath.Join(dir, name+ext) }
	paths := CubemapPaths{
		Right:  face("right"),
		Left:   face("left"),
		Top:    face("top"),
		Bottom: face("bottom"),
		Front:  face("front"),
		Back:   face("back"),
	}
	for _, e := range paths.Entries() {
		if _, err := os.Stat(e.Path); err != nil {
			return CubemapPaths{}, fmt.Errorf("cubemap face %s: %w", e.Face, err)
		}
	}
	return paths, nil
}

// Entries yields the faces in upload order: +X, -X, +Y, -Y, +Z, -Z.
func (p CubemapPaths) Entries() [6]CubemapEntry {
	return [6]CubemapEntry{
		{p.Right, metadata.CubeMapPositiveX},
		{p.Left, metadata.CubeMapNegativeX},
		{p.Top, metadata.CubeMapPositiveY},
		{p.Bottom, metadata.CubeMapNegativeY},
		{p.Front, metadata.CubeMapPositiveZ},
		{p.Back, metadata.CubeMapNegativeZ},
	}
}

// NewCubemapFromFiles decodes all six faces, concurrently, before allocating
// the texture, so a bad face never leaves a partial cubemap behind.
// config must be a TextureCubeMap with RGB unsigned byte pixels.
func NewCubemapFromFiles(backend Backend, paths CubemapPaths, config TextureConfig) (*Texture, error) {
	if err := config.validateImageUpload(metadata.TextureCubeMap); err != nil {
		core.LogError("rejected cubemap config", "err", err)
		return nil, err
	}

	entries := paths.Entries()
	files := make([]string, len(entries))
	for i, e := range entries {
		files[i] = e.Path
	}
	faces, err := loaders.LoadImages(files...)
	if err != nil {
		core.LogError("failed to load cubemap faces", "dir", filepath.Dir(paths.Front), "err", err)
		return nil, err
	}

	t := &Texture{
		backend: backend,
		handle:  backend.GenTexture(),
		config:  config,
		width:   int32(faces[0].Width),
		height:  int32(faces[0].Height),
	}
	t.Bind(metadata.Slot0)
	backend.UnpackAlignment(1)
	for i, e := range entries {
		img := faces[i]
		backend.TexImageCubeFace(e.Face, 0, config.InternalStorage, int32(img.Width), int32(img.Height), config.PixelFormat, config.PixelType, img.Pixels)
	}
	backend.TexParameter(config.Kind, metadata.TextureWrapS, metadata.WrapRepeat)
	backend.TexParameter(config.Kind, metadata.TextureWrapT, metadata.WrapRepeat)
	backend.TexParameter(config.Kind, metadata.TextureWrapR, metadata.WrapRepeat)
	backend.TexParameter(config.Kind, metadata.TextureMinFilter, metadata.FilterLinear)
	backend.TexParameter(config.Kind, metadata.TextureMagFilter, metadata.FilterLinear)

	core.LogDebug("cubemap created", "handle", t.handle, "front", paths.Front)
	return t, nil
}
