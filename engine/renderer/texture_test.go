package renderer

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer/gltest"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

func TestTextureConfigValidate(t *testing.T) {
	cfg := func(kind metadata.TextureKind, storage metadata.InternalStorage, format metadata.PixelDataFormat, typ metadata.PixelDataType) TextureConfig {
		return TextureConfig{Kind: kind, InternalStorage: storage, PixelFormat: format, PixelType: typ}
	}
	tests := []struct {
		name   string
		config TextureConfig
		rule   int
	}{
		{"rgb bytes", cfg(metadata.Texture2D, metadata.StorageRGB8, metadata.FormatRGB, metadata.TypeUnsignedByte), 0},
		{"332 with rgb", cfg(metadata.Texture2D, metadata.StorageR3G3B2, metadata.FormatRGB, metadata.TypeUnsignedByte332), 0},
		{"332 with rgba", cfg(metadata.Texture2D, metadata.StorageRGBA8, metadata.FormatRGBA, metadata.TypeUnsignedByte332), 1},
		{"565 rev with red", cfg(metadata.Texture2D, metadata.StorageRed, metadata.FormatRed, metadata.TypeUnsignedShort565Rev), 1},
		{"8888 with bgra", cfg(metadata.Texture2D, metadata.StorageRGBA8, metadata.FormatBGRA, metadata.TypeUnsignedInt8888), 0},
		{"5551 with rgb", cfg(metadata.Texture2D, metadata.StorageRGB5A1, metadata.FormatRGB, metadata.TypeUnsignedShort5551), 2},
		{"2101010 rev with rg", cfg(metadata.Texture2D, metadata.StorageRGB10A2, metadata.FormatRG, metadata.TypeUnsignedInt2101010Rev), 2},
		{"depth on cubemap", cfg(metadata.TextureCubeMap, metadata.StorageDepth24, metadata.FormatDepth, metadata.TypeFloat), 3},
		{"depth on rectangle", cfg(metadata.TextureRectangle, metadata.StorageDepth32F, metadata.FormatDepth, metadata.TypeFloat), 0},
		{"depth storage with rgb", cfg(metadata.Texture2D, metadata.StorageDepth16, metadata.FormatRGB, metadata.TypeUnsignedByte), 4},
		{"depth format with rgb8", cfg(metadata.Texture2D, metadata.StorageRGB8, metadata.FormatDepth, metadata.TypeFloat), 5},
		{"depth format with depth24", cfg(metadata.Texture2D, metadata.StorageDepth24, metadata.FormatDepth, metadata.TypeFloat), 0},
		{"depth stencil is not depth", cfg(metadata.Texture2D, metadata.StorageDepth24Stencil8, metadata.FormatDepth, metadata.TypeUnsignedInt), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.rule == 0 {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, core.ErrBadTextureConfig)
			var tce *TextureConfigError
			require.ErrorAs(t, err, &tce)
			assert.Equal(t, tt.rule, tce.Rule)
			assert.Equal(t, tt.config, tce.Config)
		})
	}
}

func TestNewTextureFromFile(t *testing.T) {
	b := gltest.New()
	path := writePNG(t, t.TempDir(), "stripe.png", red, blue)

	tex, err := NewTextureFromFile(b, path, RGBTextureConfig(metadata.Texture2D))
	require.NoError(t, err)

	w, h := tex.Size()
	assert.Equal(t, int32(1), w)
	assert.Equal(t, int32(2), h)

	obj := b.Textures[tex.Handle()]
	require.NotNil(t, obj.Image)
	// rows are flipped so the bottom row comes first
	assert.Equal(t, []byte{0, 0, 255, 255, 0, 0}, obj.Image.Pixels)
	assert.Equal(t, metadata.StorageRGB, obj.Image.Internal)
	assert.True(t, obj.Mipmaps)
	assert.Equal(t, metadata.WrapRepeat, obj.Params[metadata.TextureWrapS])
	assert.Equal(t, metadata.WrapRepeat, obj.Params[metadata.TextureWrapT])
	assert.Equal(t, metadata.FilterLinear, obj.Params[metadata.TextureMinFilter])
	assert.Equal(t, metadata.FilterLinear, obj.Params[metadata.TextureMagFilter])
}

func TestNewTextureFromFileFailures(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "ok.png", red)
	garbage := writeFile(t, dir, "garbage.png", "definitely not an image")

	t.Run("bad config", func(t *testing.T) {
		b := gltest.New()
		bad := TextureConfig{Kind: metadata.Texture2D, InternalStorage: metadata.StorageRGB8, PixelFormat: metadata.FormatDepth}
		_, err := NewTextureFromFile(b, good, bad)
		assert.ErrorIs(t, err, core.ErrBadTextureConfig)
		assert.Empty(t, b.Calls)
	})
	t.Run("missing file", func(t *testing.T) {
		b := gltest.New()
		_, err := NewTextureFromFile(b, filepath.Join(dir, "missing.png"), RGBTextureConfig(metadata.Texture2D))
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Empty(t, b.Calls)
	})
	t.Run("undecodable", func(t *testing.T) {
		b := gltest.New()
		_, err := NewTextureFromFile(b, garbage, RGBTextureConfig(metadata.Texture2D))
		assert.ErrorIs(t, err, core.ErrImageDecode)
		assert.Empty(t, b.Calls)
	})
}

func TestNewTextureFromFileOddWidthRows(t *testing.T) {
	b := gltest.New()
	path := writeSolidPNG(t, t.TempDir(), "odd.png", 3, 1, red)

	tex, err := NewTextureFromFile(b, path, RGBTextureConfig(metadata.Texture2D))
	require.NoError(t, err)

	img := b.Textures[tex.Handle()].Image
	require.NotNil(t, img)
	assert.Len(t, img.Pixels, 9)
	assert.Equal(t, int32(1), img.RowAlignment)
	assert.Equal(t, int32(1), b.Unpack)

	names := b.CallNames()
	assert.Less(t, slices.Index(names, "UnpackAlignment"), slices.Index(names, "TexImage2D"))
}

func TestNewTextureFromFileRejectsImageLayout(t *testing.T) {
	path := writePNG(t, t.TempDir(), "ok.png", red)
	tests := []struct {
		name   string
		config TextureConfig
	}{
		{"rgba format", TextureConfig{Kind: metadata.Texture2D, InternalStorage: metadata.StorageRGBA8, PixelFormat: metadata.FormatRGBA, PixelType: metadata.TypeUnsignedByte}},
		{"float type", TextureConfig{Kind: metadata.Texture2D, InternalStorage: metadata.StorageRGB, PixelFormat: metadata.FormatRGB, PixelType: metadata.TypeFloat}},
		{"cubemap kind", RGBTextureConfig(metadata.TextureCubeMap)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := gltest.New()
			_, err := NewTextureFromFile(b, path, tt.config)
			assert.ErrorIs(t, err, core.ErrBadTextureConfig)
			var le *ImageLayoutError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.config, le.Config)
			assert.Empty(t, b.Calls)
		})
	}
}

func TestTextureBindReplacesUnit(t *testing.T) {
	b := gltest.New()
	dir := t.TempDir()
	a, err := NewTextureFromFile(b, writePNG(t, dir, "a.png", red), RGBTextureConfig(metadata.Texture2D))
	require.NoError(t, err)
	c, err := NewTextureFromFile(b, writePNG(t, dir, "c.png", blue), RGBTextureConfig(metadata.Texture2D))
	require.NoError(t, err)

	a.Bind(metadata.Slot2)
	assert.Equal(t, a.Handle(), b.BoundTexture(metadata.Slot2, metadata.Texture2D))
	c.Bind(metadata.Slot2)
	assert.Equal(t, c.Handle(), b.BoundTexture(metadata.Slot2, metadata.Texture2D))
	assert.Equal(t, metadata.Slot2, b.ActiveUnit)

	a.Delete()
	a.Delete()
	assert.Equal(t, 1, b.Deleted[a.Handle()])
}

func writeCubemap(t *testing.T, dir, ext string) {
	t.Helper()
	for _, face := range []string{"right", "left", "top", "bottom", "front", "back"} {
		writePNG(t, dir, face+ext, red, blue)
	}
}

func TestCubemapPathsFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeCubemap(t, dir, ".png")

	paths, err := CubemapPathsFromDirectory(dir, "png")
	require.NoError(t, err)

	entries := paths.Entries()
	wantFaces := []metadata.CubemapFace{
		metadata.CubeMapPositiveX, metadata.CubeMapNegativeX,
		metadata.CubeMapPositiveY, metadata.CubeMapNegativeY,
		metadata.CubeMapPositiveZ, metadata.CubeMapNegativeZ,
	}
	wantFiles := []string{"right", "left", "top", "bottom", "front", "back"}
	for i, e := range entries {
		assert.Equal(t, wantFaces[i], e.Face)
		assert.Equal(t, filepath.Join(dir, wantFiles[i]+".png"), e.Path)
	}

	_, err = CubemapPathsFromDirectory(dir, "")
	assert.ErrorIs(t, err, fs.ErrNotExist, "default extension is .jpg")
}

func TestCubemapPathsMissingFace(t *testing.T) {
	dir := t.TempDir()
	writeCubemap(t, dir, ".jpg")
	require.NoError(t, os.Remove(filepath.Join(dir, "bottom.jpg")))

	_, err := CubemapPathsFromDirectory(dir, ".jpg")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewCubemapFromFiles(t *testing.T) {
	dir := t.TempDir()
	writeCubemap(t, dir, ".png")
	paths, err := CubemapPathsFromDirectory(dir, ".png")
	require.NoError(t, err)

	b := gltest.New()
	tex, err := NewCubemapFromFiles(b, paths, RGBTextureConfig(metadata.TextureCubeMap))
	require.NoError(t, err)

	obj := b.Textures[tex.Handle()]
	assert.Len(t, obj.Faces, 6)
	var faces []metadata.CubemapFace
	for _, c := range b.Calls {
		if c.Name == "TexImageCubeFace" {
			faces = append(faces, c.Args[0].(metadata.CubemapFace))
		}
	}
	assert.Equal(t, []metadata.CubemapFace{
		metadata.CubeMapPositiveX, metadata.CubeMapNegativeX,
		metadata.CubeMapPositiveY, metadata.CubeMapNegativeY,
		metadata.CubeMapPositiveZ, metadata.CubeMapNegativeZ,
	}, faces)
	assert.Equal(t, metadata.WrapRepeat, obj.Params[metadata.TextureWrapR])
	assert.Equal(t, metadata.FilterLinear, obj.Params[metadata.TextureMagFilter])
}

func TestNewCubemapBadFaceLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	writeCubemap(t, dir, ".png")
	writeFile(t, dir, "front.png", "corrupt")
	paths, err := CubemapPathsFromDirectory(dir, ".png")
	require.NoError(t, err)

	b := gltest.New()
	_, err = NewCubemapFromFiles(b, paths, RGBTextureConfig(metadata.TextureCubeMap))
	assert.ErrorIs(t, err, core.ErrImageDecode)
	assert.Zero(t, b.Live())
	assert.Empty(t, b.Calls)
}

func TestNewCubemapFromFilesOddWidthFaces(t *testing.T) {
	dir := t.TempDir()
	for _, face := range []string{"right", "left", "top", "bottom", "front", "back"} {
		writeSolidPNG(t, dir, face+".png", 5, 3, blue)
	}
	paths, err := CubemapPathsFromDirectory(dir, ".png")
	require.NoError(t, err)

	b := gltest.New()
	tex, err := NewCubemapFromFiles(b, paths, RGBTextureConfig(metadata.TextureCubeMap))
	require.NoError(t, err)

	for face, img := range b.Textures[tex.Handle()].Faces {
		assert.Len(t, img.Pixels, 5*3*3, face.String())
		assert.Equal(t, int32(1), img.RowAlignment, face.String())
	}
}

func TestNewCubemapFromFilesRejectsImageLayout(t *testing.T) {
	dir := t.TempDir()
	writeCubemap(t, dir, ".png")
	paths, err := CubemapPathsFromDirectory(dir, ".png")
	require.NoError(t, err)

	for _, config := range []TextureConfig{
		RGBTextureConfig(metadata.Texture2D),
		{Kind: metadata.TextureCubeMap, InternalStorage: metadata.StorageRGBA8, PixelFormat: metadata.FormatRGBA, PixelType: metadata.TypeUnsignedByte},
	} {
		b := gltest.New()
		_, err := NewCubemapFromFiles(b, paths, config)
		assert.ErrorIs(t, err, core.ErrBadTextureConfig, config.String())
		assert.Empty(t, b.Calls)
	}
}
