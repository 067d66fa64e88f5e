package renderer

import "github.com/spaghettifunk/ace/engine/renderer/metadata"

// Backend is the table of driver calls the resource layer issues. Every
// method maps onto one OpenGL entry point; arguments use metadata descriptors
// and the implementation translates them to driver enumerants.
//
// Handles are plain uint32 names. Zero is never a live object and binding zero
// restores the default binding for a target.
type Backend interface {
	CreateShader(kind metadata.ShaderKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	// ShaderInfoLog returns at most bufSize bytes of the compile log.
	ShaderInfoLog(shader uint32, bufSize int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) bool
	// ProgramInfoLog returns at most bufSize bytes of the link log.
	ProgramInfoLog(program uint32, bufSize int) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	// GetUniformLocation returns -1 for names the program does not use.
	GetUniformLocation(program uint32, name string) int32

	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	Uniform1i(location int32, v0 int32)
	Uniform2i(location int32, v0, v1 int32)
	Uniform3i(location int32, v0, v1, v2 int32)
	Uniform4i(location int32, v0, v1, v2, v3 int32)
	Uniform1ui(location int32, v0 uint32)
	Uniform2ui(location int32, v0, v1 uint32)
	Uniform3ui(location int32, v0, v1, v2 uint32)
	Uniform4ui(location int32, v0, v1, v2, v3 uint32)

	Uniform1fv(location int32, count int32, value []float32)
	Uniform2fv(location int32, count int32, value []float32)
	Uniform3fv(location int32, count int32, value []float32)
	Uniform4fv(location int32, count int32, value []float32)
	Uniform1iv(location int32, count int32, value []int32)
	Uniform2iv(location int32, count int32, value []int32)
	Uniform3iv(location int32, count int32, value []int32)
	Uniform4iv(location int32, count int32, value []int32)
	Uniform1uiv(location int32, count int32, value []uint32)
	Uniform2uiv(location int32, count int32, value []uint32)
	Uniform3uiv(location int32, count int32, value []uint32)
	Uniform4uiv(location int32, count int32, value []uint32)

	UniformMatrix2fv(location int32, count int32, transpose bool, value []float32)
	UniformMatrix3fv(location int32, count int32, transpose bool, value []float32)
	UniformMatrix4fv(location int32, count int32, transpose bool, value []float32)
	UniformMatrix2x3fv(location int32, count int32, transpose bool, value []float32)
	UniformMatrix3x2fv(location int32, count int32, transpose bool, value []float32)
	UniformMatrix2x4fv(location int32, count int32, transpose bool, value []float32)
	UniformMatrix4x2fv(location int32, count int32, transpose bool, value []float32)
	UniformMatrix3x4fv(location int32, count int32, transpose bool, value []float32)
	UniformMatrix4x3fv(location int32, count int32, transpose bool, value []float32)

	GenBuffer() uint32
	BindBuffer(target metadata.BufferTarget, buffer uint32)
	BufferData(target metadata.BufferTarget, data []byte, usage metadata.BufferUsage)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, typ metadata.ScalarType, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DeleteVertexArray(array uint32)

	GenTexture() uint32
	ActiveTexture(unit metadata.TextureUnit)
	BindTexture(kind metadata.TextureKind, texture uint32)
	// TexImage2D uploads pixels, or allocates uninitialised storage when
	// pixels is nil.
	TexImage2D(kind metadata.TextureKind, level int32, internal metadata.InternalStorage, width, height int32, format metadata.PixelDataFormat, typ metadata.PixelDataType, pixels []byte)
	// UnpackAlignment sets the row alignment, in bytes, of client pixel data
	// read by later uploads. The driver default is 4.
	UnpackAlignment(alignment int32)
	TexImageCubeFace(face metadata.CubemapFace, level int32, internal metadata.InternalStorage, width, height int32, format metadata.PixelDataFormat, typ metadata.PixelDataType, pixels []byte)
	TexParameter(kind metadata.TextureKind, param metadata.TextureParameter, value metadata.TextureParameterValue)
	GenerateMipmap(kind metadata.TextureKind)
	DeleteTexture(texture uint32)

	GenFramebuffer() uint32
	BindFramebuffer(target metadata.FramebufferTarget, framebuffer uint32)
	CheckFramebufferComplete(target metadata.FramebufferTarget) bool
	FramebufferTexture2D(target metadata.FramebufferTarget, attachment metadata.Attachment, kind metadata.TextureKind, texture uint32, level int32)
	DeleteFramebuffer(framebuffer uint32)

	GenRenderbuffer() uint32
	BindRenderbuffer(renderbuffer uint32)
	RenderbufferStorage(internal metadata.InternalStorage, width, height int32)
	FramebufferRenderbuffer(target metadata.FramebufferTarget, attachment metadata.Attachment, renderbuffer uint32)
	DeleteRenderbuffer(renderbuffer uint32)

	DrawElements(mode metadata.PrimitiveMode, count int32, typ metadata.ScalarType, offset int)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask metadata.ClearMask)
	SetDepthTest(enabled bool)
	SetDepthFunc(fn metadata.DepthFunc)
}
