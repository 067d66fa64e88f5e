// Package opengl implements renderer.Backend on an OpenGL 4.1 core context.
// Every method must be called on the thread that owns the current context.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

var _ renderer.Backend = (*Backend)(nil)

type Backend struct{}

// New loads the GL entry points for the context current on this thread.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	core.LogInfo("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return &Backend{}, nil
}

func ptr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

func first[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// ------------------------------------------
// Shaders and programs
// ------------------------------------------

func (*Backend) CreateShader(kind metadata.ShaderKind) uint32 {
	return gl.CreateShader(shaderKinds[kind])
}

func (*Backend) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	length := int32(len(source))
	gl.ShaderSource(shader, 1, csource, &length)
}

func (*Backend) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*Backend) ShaderCompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (*Backend) ShaderInfoLog(shader uint32, bufSize int) string {
	return infoLog(bufSize, func(n int32, length *int32, buf *uint8) {
		gl.GetShaderInfoLog(shader, n, length, buf)
	})
}

func (*Backend) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (*Backend) CreateProgram() uint32               { return gl.CreateProgram() }
func (*Backend) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (*Backend) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (*Backend) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (*Backend) ProgramLinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (*Backend) ProgramInfoLog(program uint32, bufSize int) string {
	return infoLog(bufSize, func(n int32, length *int32, buf *uint8) {
		gl.GetProgramInfoLog(program, n, length, buf)
	})
}

func infoLog(bufSize int, get func(n int32, length *int32, buf *uint8)) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]uint8, bufSize+1)
	var length int32
	get(int32(bufSize), &length, &buf[0])
	return strings.TrimRight(string(buf[:length]), "\x00")
}

func (*Backend) UseProgram(program uint32)    { gl.UseProgram(program) }
func (*Backend) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*Backend) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// ------------------------------------------
// Uniforms
// ------------------------------------------

func (*Backend) Uniform1f(l int32, v0 float32)             { gl.Uniform1f(l, v0) }
func (*Backend) Uniform2f(l int32, v0, v1 float32)         { gl.Uniform2f(l, v0, v1) }
func (*Backend) Uniform3f(l int32, v0, v1, v2 float32)     { gl.Uniform3f(l, v0, v1, v2) }
func (*Backend) Uniform4f(l int32, v0, v1, v2, v3 float32) { gl.Uniform4f(l, v0, v1, v2, v3) }
func (*Backend) Uniform1i(l int32, v0 int32)               { gl.Uniform1i(l, v0) }
func (*Backend) Uniform2i(l int32, v0, v1 int32)           { gl.Uniform2i(l, v0, v1) }
func (*Backend) Uniform3i(l int32, v0, v1, v2 int32)       { gl.Uniform3i(l, v0, v1, v2) }
func (*Backend) Uniform4i(l int32, v0, v1, v2, v3 int32)   { gl.Uniform4i(l, v0, v1, v2, v3) }
func (*Backend) Uniform1ui(l int32, v0 uint32)             { gl.Uniform1ui(l, v0) }
func (*Backend) Uniform2ui(l int32, v0, v1 uint32)         { gl.Uniform2ui(l, v0, v1) }
func (*Backend) Uniform3ui(l int32, v0, v1, v2 uint32)     { gl.Uniform3ui(l, v0, v1, v2) }
func (*Backend) Uniform4ui(l int32, v0, v1, v2, v3 uint32) { gl.Uniform4ui(l, v0, v1, v2, v3) }

func (*Backend) Uniform1fv(l, n int32, v []float32) { gl.Uniform1fv(l, n, first(v)) }
func (*Backend) Uniform2fv(l, n int32, v []float32) { gl.Uniform2fv(l, n, first(v)) }
func (*Backend) Uniform3fv(l, n int32, v []float32) { gl.Uniform3fv(l, n, first(v)) }
func (*Backend) Uniform4fv(l, n int32, v []float32) { gl.Uniform4fv(l, n, first(v)) }
func (*Backend) Uniform1iv(l, n int32, v []int32)   { gl.Uniform1iv(l, n, first(v)) }
func (*Backend) Uniform2iv(l, n int32, v []int32)   { gl.Uniform2iv(l, n, first(v)) }
func (*Backend) Uniform3iv(l, n int32, v []int32)   { gl.Uniform3iv(l, n, first(v)) }
func (*Backend) Uniform4iv(l, n int32, v []int32)   { gl.Uniform4iv(l, n, first(v)) }
func (*Backend) Uniform1uiv(l, n int32, v []uint32) { gl.Uniform1uiv(l, n, first(v)) }
func (*Backend) Uniform2uiv(l, n int32, v []uint32) { gl.Uniform2uiv(l, n, first(v)) }
func (*Backend) Uniform3uiv(l, n int32, v []uint32) { gl.Uniform3uiv(l, n, first(v)) }
func (*Backend) Uniform4uiv(l, n int32, v []uint32) { gl.Uniform4uiv(l, n, first(v)) }

func (*Backend) UniformMatrix2fv(l, n int32, t bool, v []float32) {
	gl.UniformMatrix2fv(l, n, t, first(v))
}

func (*Backend) UniformMatrix3fv(l, n int32, t bool, v []float32) {
	gl.UniformMatrix3fv(l, n, t, first(v))
}

func (*Backend) UniformMatrix4fv(l, n int32, t bool, v []float32) {
	gl.UniformMatrix4fv(l, n, t, first(v))
}

func (*Backend) UniformMatrix2x3fv(l, n int32, t bool, v []float32) {
	gl.UniformMatrix2x3fv(l, n, t, first(v))
}

func (*Backend) UniformMatrix3x2fv(l, n int32, t bool, v []float32) {
	gl.UniformMatrix3x2fv(l, n, t, first(v))
}

func (*Backend) UniformMatrix2x4fv(l, n int32, t bool, v []float32) {
	gl.UniformMatrix2x4fv(l, n, t, first(v))
}

func (*Backend) UniformMatrix4x2fv(l, n int32, t bool, v []float32) {
	gl.UniformMatrix4x2fv(l, n, t, first(v))
}

func (*Backend) UniformMatrix3x4fv(l, n int32, t bool, v []float32) {
	gl.UniformMatrix3x4fv(l, n, t, first(v))
}

func (*Backend) UniformMatrix4x3fv(l, n int32, t bool, v []float32) {
	gl.UniformMatrix4x3fv(l, n, t, first(v))
}

// ------------------------------------------
// Buffers and vertex arrays
// ------------------------------------------

func (*Backend) GenBuffer() uint32 {
	var h uint32
	gl.GenBuffers(1, &h)
	return h
}

func (*Backend) BindBuffer(target metadata.BufferTarget, buffer uint32) {
	gl.BindBuffer(bufferTargets[target], buffer)
}

func (*Backend) BufferData(target metadata.BufferTarget, data []byte, usage metadata.BufferUsage) {
	gl.BufferData(bufferTargets[target], len(data), ptr(data), bufferUsages[usage])
}

func (*Backend) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (*Backend) GenVertexArray() uint32 {
	var h uint32
	gl.GenVertexArrays(1, &h)
	return h
}

func (*Backend) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (*Backend) VertexAttribPointer(index uint32, size int32, typ metadata.ScalarType, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, scalarTypes[typ], normalized, stride, gl.PtrOffset(offset))
}

func (*Backend) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }
func (*Backend) DeleteVertexArray(array uint32)       { gl.DeleteVertexArrays(1, &array) }

// ------------------------------------------
// Textures
// ------------------------------------------

func (*Backend) GenTexture() uint32 {
	var h uint32
	gl.GenTextures(1, &h)
	return h
}

func (*Backend) ActiveTexture(unit metadata.TextureUnit) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (*Backend) BindTexture(kind metadata.TextureKind, texture uint32) {
	gl.BindTexture(textureKinds[kind], texture)
}

func (*Backend) TexImage2D(kind metadata.TextureKind, level int32, internal metadata.InternalStorage, width, height int32, format metadata.PixelDataFormat, typ metadata.PixelDataType, pixels []byte) {
	gl.TexImage2D(textureKinds[kind], level, int32(internalStorages[internal]), width, height, 0,
		pixelFormats[format], pixelTypes[typ], ptr(pixels))
}

func (*Backend) TexImageCubeFace(face metadata.CubemapFace, level int32, internal metadata.InternalStorage, width, height int32, format metadata.PixelDataFormat, typ metadata.PixelDataType, pixels []byte) {
	gl.TexImage2D(cubemapFaces[face], level, int32(internalStorages[internal]), width, height, 0,
		pixelFormats[format], pixelTypes[typ], ptr(pixels))
}

func (*Backend) UnpackAlignment(alignment int32) { gl.PixelStorei(gl.UNPACK_ALIGNMENT, alignment) }

func (*Backend) TexParameter(kind metadata.TextureKind, param metadata.TextureParameter, value metadata.TextureParameterValue) {
	gl.TexParameteri(textureKinds[kind], textureParameters[param], textureParameterValues[value])
}

func (*Backend) GenerateMipmap(kind metadata.TextureKind) { gl.GenerateMipmap(textureKinds[kind]) }
func (*Backend) DeleteTexture(texture uint32)             { gl.DeleteTextures(1, &texture) }

// ------------------------------------------
// Framebuffers and renderbuffers
// ------------------------------------------

func (*Backend) GenFramebuffer() uint32 {
	var h uint32
	gl.GenFramebuffers(1, &h)
	return h
}

func (*Backend) BindFramebuffer(target metadata.FramebufferTarget, framebuffer uint32) {
	gl.BindFramebuffer(framebufferTargets[target], framebuffer)
}

func (*Backend) CheckFramebufferComplete(target metadata.FramebufferTarget) bool {
	return gl.CheckFramebufferStatus(framebufferTargets[target]) == gl.FRAMEBUFFER_COMPLETE
}

func (*Backend) FramebufferTexture2D(target metadata.FramebufferTarget, a metadata.Attachment, kind metadata.TextureKind, texture uint32, level int32) {
	gl.FramebufferTexture2D(framebufferTargets[target], attachment(a), textureKinds[kind], texture, level)
}

func (*Backend) DeleteFramebuffer(framebuffer uint32) { gl.DeleteFramebuffers(1, &framebuffer) }

func (*Backend) GenRenderbuffer() uint32 {
	var h uint32
	gl.GenRenderbuffers(1, &h)
	return h
}

func (*Backend) BindRenderbuffer(renderbuffer uint32) {
	gl.BindRenderbuffer(gl.RENDERBUFFER, renderbuffer)
}

func (*Backend) RenderbufferStorage(internal metadata.InternalStorage, width, height int32) {
	gl.RenderbufferStorage(gl.RENDERBUFFER, internalStorages[internal], width, height)
}

func (*Backend) FramebufferRenderbuffer(target metadata.FramebufferTarget, a metadata.Attachment, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(framebufferTargets[target], attachment(a), gl.RENDERBUFFER, renderbuffer)
}

func (*Backend) DeleteRenderbuffer(renderbuffer uint32) { gl.DeleteRenderbuffers(1, &renderbuffer) }

// ------------------------------------------
// Drawing
// ------------------------------------------

func (*Backend) DrawElements(mode metadata.PrimitiveMode, count int32, typ metadata.ScalarType, offset int) {
	gl.DrawElements(primitiveModes[mode], count, scalarTypes[typ], gl.PtrOffset(offset))
}

func (*Backend) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (*Backend) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (*Backend) Clear(mask metadata.ClearMask)      { gl.Clear(clearMask(mask)) }

func (*Backend) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
		return
	}
	gl.Disable(gl.DEPTH_TEST)
}

func (*Backend) SetDepthFunc(fn metadata.DepthFunc) { gl.DepthFunc(depthFuncs[fn]) }
