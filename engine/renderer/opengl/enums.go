package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

// Each table is indexed by the metadata constant it translates.

var shaderKinds = [...]uint32{
	metadata.VertexShader:         gl.VERTEX_SHADER,
	metadata.TessControlShader:    gl.TESS_CONTROL_SHADER,
	metadata.TessEvaluationShader: gl.TESS_EVALUATION_SHADER,
	metadata.GeometryShader:       gl.GEOMETRY_SHADER,
	metadata.FragmentShader:       gl.FRAGMENT_SHADER,
}

var bufferTargets = [...]uint32{
	metadata.ArrayBuffer:        gl.ARRAY_BUFFER,
	metadata.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
}

var bufferUsages = [...]uint32{
	metadata.StaticDraw:  gl.STATIC_DRAW,
	metadata.StaticRead:  gl.STATIC_READ,
	metadata.StaticCopy:  gl.STATIC_COPY,
	metadata.DynamicDraw: gl.DYNAMIC_DRAW,
	metadata.DynamicRead: gl.DYNAMIC_READ,
	metadata.DynamicCopy: gl.DYNAMIC_COPY,
	metadata.StreamDraw:  gl.STREAM_DRAW,
	metadata.StreamRead:  gl.STREAM_READ,
	metadata.StreamCopy:  gl.STREAM_COPY,
}

var primitiveModes = [...]uint32{
	metadata.Points:                 gl.POINTS,
	metadata.LineStrip:              gl.LINE_STRIP,
	metadata.LineLoop:               gl.LINE_LOOP,
	metadata.Lines:                  gl.LINES,
	metadata.LineStripAdjacency:     gl.LINE_STRIP_ADJACENCY,
	metadata.LinesAdjacency:         gl.LINES_ADJACENCY,
	metadata.TriangleStrip:          gl.TRIANGLE_STRIP,
	metadata.TriangleFan:            gl.TRIANGLE_FAN,
	metadata.Triangles:              gl.TRIANGLES,
	metadata.TriangleStripAdjacency: gl.TRIANGLE_STRIP_ADJACENCY,
	metadata.TrianglesAdjacency:     gl.TRIANGLES_ADJACENCY,
	metadata.Patches:                gl.PATCHES,
}

var scalarTypes = [...]uint32{
	metadata.ScalarByte:          gl.BYTE,
	metadata.ScalarUnsignedByte:  gl.UNSIGNED_BYTE,
	metadata.ScalarShort:         gl.SHORT,
	metadata.ScalarUnsignedShort: gl.UNSIGNED_SHORT,
	metadata.ScalarInt:           gl.INT,
	metadata.ScalarUnsignedInt:   gl.UNSIGNED_INT,
	metadata.ScalarHalfFloat:     gl.HALF_FLOAT,
	metadata.ScalarFloat:         gl.FLOAT,
	metadata.ScalarDouble:        gl.DOUBLE,
	metadata.ScalarFixed:         gl.FIXED,
}

var textureKinds = [...]uint32{
	metadata.Texture2D:             gl.TEXTURE_2D,
	metadata.ProxyTexture2D:        gl.PROXY_TEXTURE_2D,
	metadata.Texture1DArray:        gl.TEXTURE_1D_ARRAY,
	metadata.ProxyTexture1DArray:   gl.PROXY_TEXTURE_1D_ARRAY,
	metadata.TextureRectangle:      gl.TEXTURE_RECTANGLE,
	metadata.ProxyTextureRectangle: gl.PROXY_TEXTURE_RECTANGLE,
	metadata.TextureCubeMap:        gl.TEXTURE_CUBE_MAP,
	metadata.ProxyTextureCubeMap:   gl.PROXY_TEXTURE_CUBE_MAP,
}

var cubemapFaces = [...]uint32{
	metadata.CubeMapPositiveX: gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	metadata.CubeMapNegativeX: gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	metadata.CubeMapPositiveY: gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	metadata.CubeMapNegativeY: gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	metadata.CubeMapPositiveZ: gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
	metadata.CubeMapNegativeZ: gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

var pixelFormats = [...]uint32{
	metadata.FormatRed:          gl.RED,
	metadata.FormatGreen:        gl.GREEN,
	metadata.FormatBlue:         gl.BLUE,
	metadata.FormatRG:           gl.RG,
	metadata.FormatRGB:          gl.RGB,
	metadata.FormatBGR:          gl.BGR,
	metadata.FormatRGBA:         gl.RGBA,
	metadata.FormatBGRA:         gl.BGRA,
	metadata.FormatRedInteger:   gl.RED_INTEGER,
	metadata.FormatGreenInteger: gl.GREEN_INTEGER,
	metadata.FormatBlueInteger:  gl.BLUE_INTEGER,
	metadata.FormatRGInteger:    gl.RG_INTEGER,
	metadata.FormatRGBInteger:   gl.RGB_INTEGER,
	metadata.FormatBGRInteger:   gl.BGR_INTEGER,
	metadata.FormatRGBAInteger:  gl.RGBA_INTEGER,
	metadata.FormatBGRAInteger:  gl.BGRA_INTEGER,
	metadata.FormatStencil:      gl.STENCIL_INDEX,
	metadata.FormatDepth:        gl.DEPTH_COMPONENT,
	metadata.FormatDepthStencil: gl.DEPTH_STENCIL,
}

var pixelTypes = [...]uint32{
	metadata.TypeUnsignedByte:          gl.UNSIGNED_BYTE,
	metadata.TypeByte:                  gl.BYTE,
	metadata.TypeUnsignedShort:         gl.UNSIGNED_SHORT,
	metadata.TypeShort:                 gl.SHORT,
	metadata.TypeUnsignedInt:           gl.UNSIGNED_INT,
	metadata.TypeInt:                   gl.INT,
	metadata.TypeFloat:                 gl.FLOAT,
	metadata.TypeUnsignedByte332:       gl.UNSIGNED_BYTE_3_3_2,
	metadata.TypeUnsignedByte233Rev:    gl.UNSIGNED_BYTE_2_3_3_REV,
	metadata.TypeUnsignedShort565:      gl.UNSIGNED_SHORT_5_6_5,
	metadata.TypeUnsignedShort565Rev:   gl.UNSIGNED_SHORT_5_6_5_REV,
	metadata.TypeUnsignedShort4444:     gl.UNSIGNED_SHORT_4_4_4_4,
	metadata.TypeUnsignedShort4444Rev:  gl.UNSIGNED_SHORT_4_4_4_4_REV,
	metadata.TypeUnsignedShort5551:     gl.UNSIGNED_SHORT_5_5_5_1,
	metadata.TypeUnsignedShort1555Rev:  gl.UNSIGNED_SHORT_1_5_5_5_REV,
	metadata.TypeUnsignedInt8888:       gl.UNSIGNED_INT_8_8_8_8,
	metadata.TypeUnsignedInt8888Rev:    gl.UNSIGNED_INT_8_8_8_8_REV,
	metadata.TypeUnsignedInt1010102:    gl.UNSIGNED_INT_10_10_10_2,
	metadata.TypeUnsignedInt2101010Rev: gl.UNSIGNED_INT_2_10_10_10_REV,
}

var internalStorages = [...]uint32{
	metadata.StorageDepth:        gl.DEPTH_COMPONENT,
	metadata.StorageDepthStencil: gl.DEPTH_STENCIL,
	metadata.StorageStencil:      gl.STENCIL_INDEX,

	metadata.StorageRed:   gl.RED,
	metadata.StorageGreen: gl.GREEN,
	metadata.StorageBlue:  gl.BLUE,
	metadata.StorageRG:    gl.RG,
	metadata.StorageRGB:   gl.RGB,
	metadata.StorageRGBA:  gl.RGBA,

	metadata.StorageR8:          gl.R8,
	metadata.StorageR8Snorm:     gl.R8_SNORM,
	metadata.StorageR16:         gl.R16,
	metadata.StorageR16Snorm:    gl.R16_SNORM,
	metadata.StorageRG8:         gl.RG8,
	metadata.StorageRG8Snorm:    gl.RG8_SNORM,
	metadata.StorageRG16:        gl.RG16,
	metadata.StorageRG16Snorm:   gl.RG16_SNORM,
	metadata.StorageR3G3B2:      gl.R3_G3_B2,
	metadata.StorageRGB4:        gl.RGB4,
	metadata.StorageRGB5:        gl.RGB5,
	metadata.StorageRGB8:        gl.RGB8,
	metadata.StorageRGB8Snorm:   gl.RGB8_SNORM,
	metadata.StorageRGB10:       gl.RGB10,
	metadata.StorageRGB12:       gl.RGB12,
	metadata.StorageRGB16Snorm:  gl.RGB16_SNORM,
	metadata.StorageRGBA2:       gl.RGBA2,
	metadata.StorageRGBA4:       gl.RGBA4,
	metadata.StorageRGB5A1:      gl.RGB5_A1,
	metadata.StorageRGBA8:       gl.RGBA8,
	metadata.StorageRGBA8Snorm:  gl.RGBA8_SNORM,
	metadata.StorageRGB10A2:     gl.RGB10_A2,
	metadata.StorageRGB10A2UI:   gl.RGB10_A2UI,
	metadata.StorageRGBA12:      gl.RGBA12,
	metadata.StorageRGBA16:      gl.RGBA16,
	metadata.StorageSRGB8:       gl.SRGB8,
	metadata.StorageSRGB8Alpha8: gl.SRGB8_ALPHA8,

	metadata.StorageR16F:         gl.R16F,
	metadata.StorageRG16F:        gl.RG16F,
	metadata.StorageRGB16F:       gl.RGB16F,
	metadata.StorageRGBA16F:      gl.RGBA16F,
	metadata.StorageR32F:         gl.R32F,
	metadata.StorageRG32F:        gl.RG32F,
	metadata.StorageRGB32F:       gl.RGB32F,
	metadata.StorageRGBA32F:      gl.RGBA32F,
	metadata.StorageR11FG11FB10F: gl.R11F_G11F_B10F,
	metadata.StorageRGB9E5:       gl.RGB9_E5,

	metadata.StorageR8I:      gl.R8I,
	metadata.StorageR8UI:     gl.R8UI,
	metadata.StorageR16I:     gl.R16I,
	metadata.StorageR16UI:    gl.R16UI,
	metadata.StorageR32I:     gl.R32I,
	metadata.StorageR32UI:    gl.R32UI,
	metadata.StorageRG8I:     gl.RG8I,
	metadata.StorageRG8UI:    gl.RG8UI,
	metadata.StorageRG16I:    gl.RG16I,
	metadata.StorageRG16UI:   gl.RG16UI,
	metadata.StorageRG32I:    gl.RG32I,
	metadata.StorageRG32UI:   gl.RG32UI,
	metadata.StorageRGB8I:    gl.RGB8I,
	metadata.StorageRGB8UI:   gl.RGB8UI,
	metadata.StorageRGB16I:   gl.RGB16I,
	metadata.StorageRGB16UI:  gl.RGB16UI,
	metadata.StorageRGB32I:   gl.RGB32I,
	metadata.StorageRGB32UI:  gl.RGB32UI,
	metadata.StorageRGBA8I:   gl.RGBA8I,
	metadata.StorageRGBA8UI:  gl.RGBA8UI,
	metadata.StorageRGBA16I:  gl.RGBA16I,
	metadata.StorageRGBA16UI: gl.RGBA16UI,
	metadata.StorageRGBA32I:  gl.RGBA32I,
	metadata.StorageRGBA32UI: gl.RGBA32UI,

	metadata.StorageDepth16:          gl.DEPTH_COMPONENT16,
	metadata.StorageDepth24:          gl.DEPTH_COMPONENT24,
	metadata.StorageDepth32:          gl.DEPTH_COMPONENT32,
	metadata.StorageDepth32F:         gl.DEPTH_COMPONENT32F,
	metadata.StorageDepth24Stencil8:  gl.DEPTH24_STENCIL8,
	metadata.StorageDepth32FStencil8: gl.DEPTH32F_STENCIL8,
	metadata.StorageStencil8:         gl.STENCIL_INDEX8,
}

var textureParameters = [...]uint32{
	metadata.TextureWrapS:     gl.TEXTURE_WRAP_S,
	metadata.TextureWrapT:     gl.TEXTURE_WRAP_T,
	metadata.TextureWrapR:     gl.TEXTURE_WRAP_R,
	metadata.TextureMinFilter: gl.TEXTURE_MIN_FILTER,
	metadata.TextureMagFilter: gl.TEXTURE_MAG_FILTER,
}

var textureParameterValues = [...]int32{
	metadata.WrapRepeat:               gl.REPEAT,
	metadata.WrapMirroredRepeat:       gl.MIRRORED_REPEAT,
	metadata.WrapClampToEdge:          gl.CLAMP_TO_EDGE,
	metadata.FilterNearest:            gl.NEAREST,
	metadata.FilterLinear:             gl.LINEAR,
	metadata.FilterLinearMipmapLinear: gl.LINEAR_MIPMAP_LINEAR,
}

var framebufferTargets = [...]uint32{
	metadata.FramebufferReadOnly:    gl.READ_FRAMEBUFFER,
	metadata.FramebufferDrawOnly:    gl.DRAW_FRAMEBUFFER,
	metadata.FramebufferReadAndDraw: gl.FRAMEBUFFER,
}

var depthFuncs = [...]uint32{
	metadata.DepthLess:      gl.LESS,
	metadata.DepthLessEqual: gl.LEQUAL,
	metadata.DepthEqual:     gl.EQUAL,
	metadata.DepthAlways:    gl.ALWAYS,
}

func attachment(a metadata.Attachment) uint32 {
	switch a.Point {
	case metadata.AttachmentDepth:
		return gl.DEPTH_ATTACHMENT
	case metadata.AttachmentStencil:
		return gl.STENCIL_ATTACHMENT
	case metadata.AttachmentDepthStencil:
		return gl.DEPTH_STENCIL_ATTACHMENT
	}
	return gl.COLOR_ATTACHMENT0 + a.Index
}

func clearMask(m metadata.ClearMask) uint32 {
	var mask uint32
	if m&metadata.ClearColor != 0 {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if m&metadata.ClearDepth != 0 {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if m&metadata.ClearStencil != 0 {
		mask |= gl.STENCIL_BUFFER_BIT
	}
	return mask
}
