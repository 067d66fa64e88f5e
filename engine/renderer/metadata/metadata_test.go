package metadata

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameTablesCoverEveryConstant(t *testing.T) {
	assert.Len(t, scalarTypeNames, int(ScalarFixed)+1)
	assert.Len(t, scalarTypeSizes, int(ScalarFixed)+1)
	assert.Len(t, shaderKindNames, int(FragmentShader)+1)
	assert.Len(t, bufferUsageNames, int(StreamCopy)+1)
	assert.Len(t, primitiveModeNames, int(Patches)+1)
	assert.Len(t, textureKindNames, int(ProxyTextureCubeMap)+1)
	assert.Len(t, cubemapFaceNames, int(CubeMapNegativeZ)+1)
	assert.Len(t, pixelDataFormatNames, int(FormatDepthStencil)+1)
	assert.Len(t, pixelDataTypeNames, int(TypeUnsignedInt2101010Rev)+1)
	assert.Len(t, internalStorageNames, int(StorageStencil8)+1)
}

func TestScalarTypeSizes(t *testing.T) {
	cases := map[ScalarType]int{
		ScalarByte:          1,
		ScalarUnsignedByte:  1,
		ScalarShort:         2,
		ScalarUnsignedShort: 2,
		ScalarInt:           4,
		ScalarUnsignedInt:   4,
		ScalarHalfFloat:     2,
		ScalarFloat:         4,
		ScalarDouble:        8,
		ScalarFixed:         4,
	}
	for typ, size := range cases {
		assert.Equal(t, size, typ.Size(), typ.String())
	}
	assert.Zero(t, ScalarType(200).Size())
}

func TestIsDepth(t *testing.T) {
	for _, s := range []InternalStorage{StorageDepth, StorageDepth16, StorageDepth24, StorageDepth32, StorageDepth32F} {
		assert.True(t, s.IsDepth(), s.String())
	}
	for _, s := range []InternalStorage{StorageDepth24Stencil8, StorageDepthStencil, StorageRGB8, StorageStencil8} {
		assert.False(t, s.IsDepth(), s.String())
	}
}

func TestUnmarshalTextIsLenient(t *testing.T) {
	var s InternalStorage
	require.NoError(t, s.UnmarshalText([]byte("depth_24")))
	assert.Equal(t, StorageDepth24, s)

	var f PixelDataFormat
	require.NoError(t, f.UnmarshalText([]byte("rgb")))
	assert.Equal(t, FormatRGB, f)

	var k TextureKind
	require.NoError(t, k.UnmarshalText([]byte("TEXTURE-CUBE-MAP")))
	assert.Equal(t, TextureCubeMap, k)

	var u BufferUsage
	err := u.UnmarshalText([]byte("sometimes_draw"))
	assert.True(t, errors.Is(err, core.ErrUnknownName))
}

func TestAttachmentText(t *testing.T) {
	var a Attachment
	require.NoError(t, a.UnmarshalText([]byte("color2")))
	assert.Equal(t, ColorAttachment(2), a)
	assert.Equal(t, "color2", a.String())

	require.NoError(t, a.UnmarshalText([]byte("depth_stencil")))
	assert.Equal(t, DepthStencilAttachment, a)

	assert.Error(t, a.UnmarshalText([]byte("colour")))
	assert.Error(t, a.UnmarshalText([]byte("color")))
}

func TestStringFallsBackForUnknownValues(t *testing.T) {
	assert.Equal(t, "Fragment", FragmentShader.String())
	assert.Equal(t, "ShaderKind(9)", ShaderKind(9).String())
	assert.Equal(t, "-Z", CubeMapNegativeZ.String())
}
