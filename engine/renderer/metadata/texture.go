package metadata

/** @brief The kind of texture object a handle is bound as. */
type TextureKind uint8

const (
	Texture2D TextureKind = iota
	ProxyTexture2D
	Texture1DArray
	ProxyTexture1DArray
	TextureRectangle
	ProxyTextureRectangle
	TextureCubeMap
	ProxyTextureCubeMap
)

var textureKindNames = []string{
	"Texture2D", "ProxyTexture2D", "Texture1DArray", "ProxyTexture1DArray",
	"TextureRectangle", "ProxyTextureRectangle", "TextureCubeMap", "ProxyTextureCubeMap",
}

func (k TextureKind) String() string { return nameOf(textureKindNames, k, "TextureKind") }

func (k *TextureKind) UnmarshalText(text []byte) (err error) {
	*k, err = parseName[TextureKind](textureKindNames, text, "texture kind")
	return err
}

/** @brief One face of a cubemap, in upload order. */
type CubemapFace uint8

const (
	CubeMapPositiveX CubemapFace = iota
	CubeMapNegativeX
	CubeMapPositiveY
	CubeMapNegativeY
	CubeMapPositiveZ
	CubeMapNegativeZ
)

var cubemapFaceNames = []string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

func (f CubemapFace) String() string { return nameOf(cubemapFaceNames, f, "CubemapFace") }

/** @brief Client-side pixel layout handed to an image upload. */
type PixelDataFormat uint8

const (
	FormatRed PixelDataFormat = iota
	FormatGreen
	FormatBlue
	FormatRG
	FormatRGB
	FormatBGR
	FormatRGBA
	FormatBGRA
	FormatRedInteger
	FormatGreenInteger
	FormatBlueInteger
	FormatRGInteger
	FormatRGBInteger
	FormatBGRInteger
	FormatRGBAInteger
	FormatBGRAInteger
	FormatStencil
	FormatDepth
	FormatDepthStencil
)

var pixelDataFormatNames = []string{
	"Red", "Green", "Blue", "RG", "RGB", "BGR", "RGBA", "BGRA",
	"RedInteger", "GreenInteger", "BlueInteger", "RGInteger", "RGBInteger", "BGRInteger",
	"RGBAInteger", "BGRAInteger", "Stencil", "Depth", "DepthStencil",
}

func (f PixelDataFormat) String() string { return nameOf(pixelDataFormatNames, f, "PixelDataFormat") }

func (f *PixelDataFormat) UnmarshalText(text []byte) (err error) {
	*f, err = parseName[PixelDataFormat](pixelDataFormatNames, text, "pixel data format")
	return err
}

/** @brief Client-side component type, including the packed layouts. */
type PixelDataType uint8

const (
	TypeUnsignedByte PixelDataType = iota
	TypeByte
	TypeUnsignedShort
	TypeShort
	TypeUnsignedInt
	TypeInt
	TypeFloat
	TypeUnsignedByte332
	TypeUnsignedByte233Rev
	TypeUnsignedShort565
	TypeUnsignedShort565Rev
	TypeUnsignedShort4444
	TypeUnsignedShort4444Rev
	TypeUnsignedShort5551
	TypeUnsignedShort1555Rev
	TypeUnsignedInt8888
	TypeUnsignedInt8888Rev
	TypeUnsignedInt1010102
	TypeUnsignedInt2101010Rev
)

var pixelDataTypeNames = []string{
	"UnsignedByte", "Byte", "UnsignedShort", "Short", "UnsignedInt", "Int", "Float",
	"UnsignedByte332", "UnsignedByte233Rev", "UnsignedShort565", "UnsignedShort565Rev",
	"UnsignedShort4444", "UnsignedShort4444Rev", "UnsignedShort5551", "UnsignedShort1555Rev",
	"UnsignedInt8888", "UnsignedInt8888Rev", "UnsignedInt1010102", "UnsignedInt2101010Rev",
}

func (t PixelDataType) String() string { return nameOf(pixelDataTypeNames, t, "PixelDataType") }

func (t *PixelDataType) UnmarshalText(text []byte) (err error) {
	*t, err = parseName[PixelDataType](pixelDataTypeNames, text, "pixel data type")
	return err
}

/** @brief Server-side (internal) storage format of a texture or renderbuffer. */
type InternalStorage uint8

const (
	StorageDepth InternalStorage = iota
	StorageDepthStencil
	StorageStencil

	StorageRed
	StorageGreen
	StorageBlue
	StorageRG
	StorageRGB
	StorageRGBA

	StorageR8
	StorageR8Snorm
	StorageR16
	StorageR16Snorm
	StorageRG8
	StorageRG8Snorm
	StorageRG16
	StorageRG16Snorm
	StorageR3G3B2
	StorageRGB4
	StorageRGB5
	StorageRGB8
	StorageRGB8Snorm
	StorageRGB10
	StorageRGB12
	StorageRGB16Snorm
	StorageRGBA2
	StorageRGBA4
	StorageRGB5A1
	StorageRGBA8
	StorageRGBA8Snorm
	StorageRGB10A2
	StorageRGB10A2UI
	StorageRGBA12
	StorageRGBA16
	StorageSRGB8
	StorageSRGB8Alpha8

	StorageR16F
	StorageRG16F
	StorageRGB16F
	StorageRGBA16F
	StorageR32F
	StorageRG32F
	StorageRGB32F
	StorageRGBA32F
	StorageR11FG11FB10F
	StorageRGB9E5

	StorageR8I
	StorageR8UI
	StorageR16I
	StorageR16UI
	StorageR32I
	StorageR32UI
	StorageRG8I
	StorageRG8UI
	StorageRG16I
	StorageRG16UI
	StorageRG32I
	StorageRG32UI
	StorageRGB8I
	StorageRGB8UI
	StorageRGB16I
	StorageRGB16UI
	StorageRGB32I
	StorageRGB32UI
	StorageRGBA8I
	StorageRGBA8UI
	StorageRGBA16I
	StorageRGBA16UI
	StorageRGBA32I
	StorageRGBA32UI

	StorageDepth16
	StorageDepth24
	StorageDepth32
	StorageDepth32F
	StorageDepth24Stencil8
	StorageDepth32FStencil8
	StorageStencil8
)

var internalStorageNames = []string{
	"Depth", "DepthStencil", "Stencil",
	"Red", "Green", "Blue", "RG", "RGB", "RGBA",
	"R8", "R8Snorm", "R16", "R16Snorm", "RG8", "RG8Snorm", "RG16", "RG16Snorm",
	"R3G3B2", "RGB4", "RGB5", "RGB8", "RGB8Snorm", "RGB10", "RGB12", "RGB16Snorm",
	"RGBA2", "RGBA4", "RGB5A1", "RGBA8", "RGBA8Snorm", "RGB10A2", "RGB10A2UI", "RGBA12", "RGBA16",
	"SRGB8", "SRGB8Alpha8",
	"R16F", "RG16F", "RGB16F", "RGBA16F", "R32F", "RG32F", "RGB32F", "RGBA32F",
	"R11FG11FB10F", "RGB9E5",
	"R8I", "R8UI", "R16I", "R16UI", "R32I", "R32UI",
	"RG8I", "RG8UI", "RG16I", "RG16UI", "RG32I", "RG32UI",
	"RGB8I", "RGB8UI", "RGB16I", "RGB16UI", "RGB32I", "RGB32UI",
	"RGBA8I", "RGBA8UI", "RGBA16I", "RGBA16UI", "RGBA32I", "RGBA32UI",
	"Depth16", "Depth24", "Depth32", "Depth32F", "Depth24Stencil8", "Depth32FStencil8", "Stencil8",
}

func (s InternalStorage) String() string { return nameOf(internalStorageNames, s, "InternalStorage") }

func (s *InternalStorage) UnmarshalText(text []byte) (err error) {
	*s, err = parseName[InternalStorage](internalStorageNames, text, "internal storage")
	return err
}

// IsDepth reports the pure depth formats: Depth, Depth16, Depth24, Depth32
// and Depth32F. Combined depth/stencil formats are not included.
func (s InternalStorage) IsDepth() bool {
	switch s {
	case StorageDepth, StorageDepth16, StorageDepth24, StorageDepth32, StorageDepth32F:
		return true
	}
	return false
}

/** @brief Texture parameter names. */
type TextureParameter uint8

const (
	TextureWrapS TextureParameter = iota
	TextureWrapT
	TextureWrapR
	TextureMinFilter
	TextureMagFilter
)

/** @brief Values for wrap and filter parameters. */
type TextureParameterValue uint8

const (
	WrapRepeat TextureParameterValue = iota
	WrapMirroredRepeat
	WrapClampToEdge
	FilterNearest
	FilterLinear
	FilterLinearMipmapLinear
)

/** @brief A numbered slot a texture is bound to for sampling. */
type TextureUnit uint8

const (
	Slot0 TextureUnit = iota
	Slot1
	Slot2
	Slot3
	Slot4
	Slot5
	Slot6
	Slot7
	Slot8
	Slot9
	Slot10
	Slot11
	Slot12
	Slot13
	Slot14
	Slot15

	MaxTextureUnits = 16
)
