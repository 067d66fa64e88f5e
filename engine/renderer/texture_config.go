package renderer

import (
	"fmt"

	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

/**
 * @brief Describes how a texture is stored and how its pixel data is laid out.
 * It is checked as a unit by Validate before any driver allocation.
 */
type TextureConfig struct {
	Kind            metadata.TextureKind     `toml:"kind"`
	InternalStorage metadata.InternalStorage `toml:"internal_storage"`
	PixelFormat     metadata.PixelDataFormat `toml:"pixel_format"`
	PixelType       metadata.PixelDataType   `toml:"pixel_type"`
}

// RGBTextureConfig is the layout of images decoded by the image loader.
func RGBTextureConfig(kind metadata.TextureKind) TextureConfig {
	return TextureConfig{
		Kind:            kind,
		InternalStorage: metadata.StorageRGB,
		PixelFormat:     metadata.FormatRGB,
		PixelType:       metadata.TypeUnsignedByte,
	}
}

func (c TextureConfig) String() string {
	return fmt.Sprintf("%s %s %s %s", c.Kind, c.InternalStorage, c.PixelFormat, c.PixelType)
}

// Validate reports the first format-compatibility rule c breaks.
func (c TextureConfig) Validate() error {
	fail := func(rule int, reason string) error {
		return &TextureConfigError{Config: c, Rule: rule, Reason: reason}
	}

	if c.PixelFormat != metadata.FormatRGB {
		switch c.PixelType {
		case metadata.TypeUnsignedByte332, metadata.TypeUnsignedByte233Rev,
			metadata.TypeUnsignedShort565, metadata.TypeUnsignedShort565Rev:
			return fail(1, fmt.Sprintf("packed type %s needs RGB pixel format", c.PixelType))
		}
	}

	if c.PixelFormat != metadata.FormatRGBA && c.PixelFormat != metadata.FormatBGRA {
		switch c.PixelType {
		case metadata.TypeUnsignedShort4444, metadata.TypeUnsignedShort4444Rev,
			metadata.TypeUnsignedShort5551, metadata.TypeUnsignedShort1555Rev,
			metadata.TypeUnsignedInt1010102, metadata.TypeUnsignedInt2101010Rev,
			metadata.TypeUnsignedInt8888, metadata.TypeUnsignedInt8888Rev:
			return fail(2, fmt.Sprintf("packed type %s needs RGBA or BGRA pixel format", c.PixelType))
		}
	}

	depth := c.InternalStorage.IsDepth()
	switch c.Kind {
	case metadata.Texture2D, metadata.ProxyTexture2D, metadata.TextureRectangle, metadata.ProxyTextureRectangle:
	default:
		if depth {
			return fail(3, fmt.Sprintf("%s cannot hold depth storage", c.Kind))
		}
	}

	if c.PixelFormat != metadata.FormatDepth && depth {
		return fail(4, "depth storage needs depth pixel format")
	}
	if c.PixelFormat == metadata.FormatDepth && !depth {
		return fail(5, fmt.Sprintf("depth pixel format needs depth storage, got %s", c.InternalStorage))
	}
	return nil
}

// validateImageUpload checks c against the loader's tightly packed RGB bytes
// and the texture kind the caller is about to create.
func (c TextureConfig) validateImageUpload(kind metadata.TextureKind) error {
	if err := c.Validate(); err != nil {
		return err
	}
	want := RGBTextureConfig(kind)
	if c.Kind != kind || c.PixelFormat != want.PixelFormat || c.PixelType != want.PixelType {
		want.InternalStorage = c.InternalStorage
		return &ImageLayoutError{Config: c, Want: want}
	}
	return nil
}
