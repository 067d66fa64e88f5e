// Package gltest provides an in-memory renderer.Backend that records every
// driver call and simulates enough driver state for the resource layer to be
// exercised without a GPU or a window.
package gltest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

type ShaderObject struct {
	Kind     metadata.ShaderKind
	Source   string
	Compiled bool
	Log      string
}

type ProgramObject struct {
	Attached []uint32
	Linked   bool
	Log      string
	// Uniforms maps declared uniform names to their locations after link.
	Uniforms map[string]int32
	// Values holds the last value set per location.
	Values map[int32]UniformValue
}

// UniformValue is the last upload to a uniform location.
type UniformValue struct {
	Func      string
	Count     int32
	Transpose bool
	Floats    []float32
	Ints      []int32
	Uints     []uint32
}

type BufferObject struct {
	Target metadata.BufferTarget
	Data   []byte
	Usage  metadata.BufferUsage
}

type Attribute struct {
	Size       int32
	Type       metadata.ScalarType
	Normalized bool
	Stride     int32
	Offset     int
	Enabled    bool
}

type VertexArrayObject struct {
	Attributes map[uint32]Attribute
}

type Image struct {
	Internal metadata.InternalStorage
	Width    int32
	Height   int32
	Format   metadata.PixelDataFormat
	Type     metadata.PixelDataType
	Pixels   []byte

	// RowAlignment is the unpack alignment in effect at upload time.
	RowAlignment int32
}

type TextureObject struct {
	Kind    metadata.TextureKind
	Image   *Image
	Faces   map[metadata.CubemapFace]*Image
	Params  map[metadata.TextureParameter]metadata.TextureParameterValue
	Mipmaps bool
}

type FramebufferObject struct {
	// Attachments maps attachment points to texture or renderbuffer handles.
	Attachments map[metadata.Attachment]uint32
}

type RenderbufferObject struct {
	Internal metadata.InternalStorage
	Width    int32
	Height   int32
}

// Draw is one recorded DrawElements call with the state it ran against.
type Draw struct {
	Mode        metadata.PrimitiveMode
	Count       int32
	Type        metadata.ScalarType
	Offset      int
	Program     uint32
	VertexArray uint32
}

// Backend is a recording fake driver. The zero value is not usable; call New.
type Backend struct {
	Calls []Call
	Draws []Draw

	// FailLink makes every LinkProgram fail with LinkLog.
	FailLink bool
	LinkLog  string
	// Incomplete makes CheckFramebufferComplete report false.
	Incomplete bool

	Shaders       map[uint32]*ShaderObject
	Programs      map[uint32]*ProgramObject
	Buffers       map[uint32]*BufferObject
	VertexArrays  map[uint32]*VertexArrayObject
	Textures      map[uint32]*TextureObject
	Framebuffers  map[uint32]*FramebufferObject
	Renderbuffers map[uint32]*RenderbufferObject

	// Deleted counts delete calls per handle.
	Deleted map[uint32]int

	CurrentProgram      uint32
	CurrentVertexArray  uint32
	CurrentRenderbuffer uint32
	ActiveUnit          metadata.TextureUnit
	BoundBuffers        map[metadata.BufferTarget]uint32
	BoundTextures       map[metadata.TextureUnit]map[metadata.TextureKind]uint32
	ReadFramebuffer     uint32
	DrawFramebuffer     uint32

	ViewportRect [4]int32
	ClearRGBA    [4]float32
	DepthTest    bool
	Depth        metadata.DepthFunc

	// Unpack is the current unpack row alignment, 4 until changed.
	Unpack int32

	next uint32
}

func New() *Backend {
	return &Backend{
		Shaders:       make(map[uint32]*ShaderObject),
		Programs:      make(map[uint32]*ProgramObject),
		Buffers:       make(map[uint32]*BufferObject),
		VertexArrays:  make(map[uint32]*VertexArrayObject),
		Textures:      make(map[uint32]*TextureObject),
		Framebuffers:  make(map[uint32]*FramebufferObject),
		Renderbuffers: make(map[uint32]*RenderbufferObject),
		Deleted:       make(map[uint32]int),
		BoundBuffers:  make(map[metadata.BufferTarget]uint32),
		BoundTextures: make(map[metadata.TextureUnit]map[metadata.TextureKind]uint32),
		Unpack:        4,
	}
}

func (b *Backend) record(name string, args ...any) {
	b.Calls = append(b.Calls, Call{Name: name, Args: args})
}

func (b *Backend) handle() uint32 {
	b.next++
	return b.next
}

// CallNames lists recorded call names in order.
func (b *Backend) CallNames() []string {
	names := make([]string, len(b.Calls))
	for i, c := range b.Calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times the named call was recorded.
func (b *Backend) Count(name string) int {
	n := 0
	for _, c := range b.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// ResetCalls forgets recorded calls and draws but keeps object state.
func (b *Backend) ResetCalls() {
	b.Calls = nil
	b.Draws = nil
}

// Live returns the number of objects that have not been deleted.
func (b *Backend) Live() int {
	return len(b.Shaders) + len(b.Programs) + len(b.Buffers) + len(b.VertexArrays) +
		len(b.Textures) + len(b.Framebuffers) + len(b.Renderbuffers)
}

func (b *Backend) markDeleted(h uint32) {
	if h != 0 {
		b.Deleted[h]++
	}
}

// ------------------------------------------
// Shaders and programs
// ------------------------------------------

var errorDirective = regexp.MustCompile(`(?m)^\s*#error\s*(.*)$`)

func (b *Backend) CreateShader(kind metadata.ShaderKind) uint32 {
	h := b.handle()
	b.record("CreateShader", kind)
	b.Shaders[h] = &ShaderObject{Kind: kind}
	return h
}

func (b *Backend) ShaderSource(shader uint32, source string) {
	b.record("ShaderSource", shader, source)
	if s, ok := b.Shaders[shader]; ok {
		s.Source = source
	}
}

// CompileShader fails sources that contain a GLSL #error directive, the way a
// real compiler does.
func (b *Backend) CompileShader(shader uint32) {
	b.record("CompileShader", shader)
	s, ok := b.Shaders[shader]
	if !ok {
		return
	}
	if m := errorDirective.FindStringSubmatch(s.Source); m != nil {
		s.Compiled = false
		s.Log = fmt.Sprintf("ERROR: 0:1: '#error' : %s\n", strings.TrimSpace(m[1]))
		return
	}
	s.Compiled = true
	s.Log = ""
}

func (b *Backend) ShaderCompileStatus(shader uint32) bool {
	b.record("ShaderCompileStatus", shader)
	s, ok := b.Shaders[shader]
	return ok && s.Compiled
}

func (b *Backend) ShaderInfoLog(shader uint32, bufSize int) string {
	b.record("ShaderInfoLog", shader, bufSize)
	s, ok := b.Shaders[shader]
	if !ok {
		return ""
	}
	return truncate(s.Log, bufSize)
}

func (b *Backend) DeleteShader(shader uint32) {
	b.record("DeleteShader", shader)
	b.markDeleted(shader)
	delete(b.Shaders, shader)
}

func (b *Backend) CreateProgram() uint32 {
	h := b.handle()
	b.record("CreateProgram")
	b.Programs[h] = &ProgramObject{
		Uniforms: make(map[string]int32),
		Values:   make(map[int32]UniformValue),
	}
	return h
}

func (b *Backend) AttachShader(program, shader uint32) {
	b.record("AttachShader", program, shader)
	if p, ok := b.Programs[program]; ok {
		p.Attached = append(p.Attached, shader)
	}
}

func (b *Backend) DetachShader(program, shader uint32) {
	b.record("DetachShader", program, shader)
	p, ok := b.Programs[program]
	if !ok {
		return
	}
	for i, s := range p.Attached {
		if s == shader {
			p.Attached = append(p.Attached[:i], p.Attached[i+1:]...)
			return
		}
	}
}

var (
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+(\w+)\s+(\w+)`)
	structDecl  = regexp.MustCompile(`(?s)struct\s+(\w+)\s*\{(.*?)\}`)
	fieldDecl   = regexp.MustCompile(`(\w+)\s+(\w+)\s*;`)
)

// declaredUniforms lists the uniform names in source in declaration order.
// A uniform of struct type expands to one name per field, e.g. "material.diffuse".
func declaredUniforms(source string) []string {
	structs := make(map[string][]string)
	for _, m := range structDecl.FindAllStringSubmatch(source, -1) {
		for _, f := range fieldDecl.FindAllStringSubmatch(m[2], -1) {
			structs[m[1]] = append(structs[m[1]], f[2])
		}
	}
	var names []string
	for _, m := range uniformDecl.FindAllStringSubmatch(source, -1) {
		fields, ok := structs[m[1]]
		if !ok {
			names = append(names, m[2])
			continue
		}
		for _, f := range fields {
			names = append(names, m[2]+"."+f)
		}
	}
	return names
}

// LinkProgram succeeds when at least one compiled stage is attached and
// FailLink is unset. Declared uniforms get locations in declaration order.
func (b *Backend) LinkProgram(program uint32) {
	b.record("LinkProgram", program)
	p, ok := b.Programs[program]
	if !ok {
		return
	}
	p.Linked = false
	switch {
	case b.FailLink:
		p.Log = b.LinkLog
		return
	case len(p.Attached) == 0:
		p.Log = "error: no shaders attached to program\n"
		return
	}
	uniforms := make(map[string]int32)
	for _, h := range p.Attached {
		s, ok := b.Shaders[h]
		if !ok || !s.Compiled {
			p.Log = fmt.Sprintf("error: shader %d is not compiled\n", h)
			return
		}
		for _, name := range declaredUniforms(s.Source) {
			if _, seen := uniforms[name]; !seen {
				uniforms[name] = int32(len(uniforms))
			}
		}
	}
	p.Linked = true
	p.Log = ""
	p.Uniforms = uniforms
}

func (b *Backend) ProgramLinkStatus(program uint32) bool {
	b.record("ProgramLinkStatus", program)
	p, ok := b.Programs[program]
	return ok && p.Linked
}

func (b *Backend) ProgramInfoLog(program uint32, bufSize int) string {
	b.record("ProgramInfoLog", program, bufSize)
	p, ok := b.Programs[program]
	if !ok {
		return ""
	}
	return truncate(p.Log, bufSize)
}

func (b *Backend) UseProgram(program uint32) {
	b.record("UseProgram", program)
	b.CurrentProgram = program
}

func (b *Backend) DeleteProgram(program uint32) {
	b.record("DeleteProgram", program)
	b.markDeleted(program)
	delete(b.Programs, program)
	if b.CurrentProgram == program {
		b.CurrentProgram = 0
	}
}

func (b *Backend) GetUniformLocation(program uint32, name string) int32 {
	b.record("GetUniformLocation", program, name)
	p, ok := b.Programs[program]
	if !ok || !p.Linked {
		return -1
	}
	if loc, ok := p.Uniforms[name]; ok {
		return loc
	}
	return -1
}

// UniformValue returns the last value uploaded to name on program.
func (b *Backend) UniformValue(program uint32, name string) (UniformValue, bool) {
	p, ok := b.Programs[program]
	if !ok {
		return UniformValue{}, false
	}
	loc, ok := p.Uniforms[name]
	if !ok {
		return UniformValue{}, false
	}
	v, ok := p.Values[loc]
	return v, ok
}

func (b *Backend) setUniform(name string, location int32, v UniformValue) {
	v.Func = name
	b.record(name, location, v)
	if location < 0 {
		return
	}
	if p, ok := b.Programs[b.CurrentProgram]; ok {
		p.Values[location] = v
	}
}

func truncate(s string, n int) string {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
