package gltest

import "github.com/spaghettifunk/ace/engine/renderer/metadata"

// ------------------------------------------
// Buffers and vertex arrays
// ------------------------------------------

func (b *Backend) GenBuffer() uint32 {
	h := b.handle()
	b.record("GenBuffer")
	b.Buffers[h] = &BufferObject{}
	return h
}

func (b *Backend) BindBuffer(target metadata.BufferTarget, buffer uint32) {
	b.record("BindBuffer", target, buffer)
	b.BoundBuffers[target] = buffer
	if o, ok := b.Buffers[buffer]; ok {
		o.Target = target
	}
}

func (b *Backend) BufferData(target metadata.BufferTarget, data []byte, usage metadata.BufferUsage) {
	b.record("BufferData", target, len(data), usage)
	if o, ok := b.Buffers[b.BoundBuffers[target]]; ok {
		o.Data = append([]byte(nil), data...)
		o.Usage = usage
	}
}

func (b *Backend) DeleteBuffer(buffer uint32) {
	b.record("DeleteBuffer", buffer)
	b.markDeleted(buffer)
	delete(b.Buffers, buffer)
	for t, h := range b.BoundBuffers {
		if h == buffer {
			b.BoundBuffers[t] = 0
		}
	}
}

func (b *Backend) GenVertexArray() uint32 {
	h := b.handle()
	b.record("GenVertexArray")
	b.VertexArrays[h] = &VertexArrayObject{Attributes: make(map[uint32]Attribute)}
	return h
}

func (b *Backend) BindVertexArray(array uint32) {
	b.record("BindVertexArray", array)
	b.CurrentVertexArray = array
}

func (b *Backend) VertexAttribPointer(index uint32, size int32, typ metadata.ScalarType, normalized bool, stride int32, offset int) {
	b.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
	vao, ok := b.VertexArrays[b.CurrentVertexArray]
	if !ok {
		return
	}
	a := vao.Attributes[index]
	a.Size, a.Type, a.Normalized, a.Stride, a.Offset = size, typ, normalized, stride, offset
	vao.Attributes[index] = a
}

func (b *Backend) EnableVertexAttribArray(index uint32) {
	b.record("EnableVertexAttribArray", index)
	vao, ok := b.VertexArrays[b.CurrentVertexArray]
	if !ok {
		return
	}
	a := vao.Attributes[index]
	a.Enabled = true
	vao.Attributes[index] = a
}

func (b *Backend) DeleteVertexArray(array uint32) {
	b.record("DeleteVertexArray", array)
	b.markDeleted(array)
	delete(b.VertexArrays, array)
	if b.CurrentVertexArray == array {
		b.CurrentVertexArray = 0
	}
}

// ------------------------------------------
// Textures
// ------------------------------------------

func (b *Backend) GenTexture() uint32 {
	h := b.handle()
	b.record("GenTexture")
	b.Textures[h] = &TextureObject{
		Faces:  make(map[metadata.CubemapFace]*Image),
		Params: make(map[metadata.TextureParameter]metadata.TextureParameterValue),
	}
	return h
}

func (b *Backend) ActiveTexture(unit metadata.TextureUnit) {
	b.record("ActiveTexture", unit)
	b.ActiveUnit = unit
}

func (b *Backend) BindTexture(kind metadata.TextureKind, texture uint32) {
	b.record("BindTexture", kind, texture)
	m, ok := b.BoundTextures[b.ActiveUnit]
	if !ok {
		m = make(map[metadata.TextureKind]uint32)
		b.BoundTextures[b.ActiveUnit] = m
	}
	m[kind] = texture
	if t, ok := b.Textures[texture]; ok {
		t.Kind = kind
	}
}

// BoundTexture returns the texture bound to kind on unit.
func (b *Backend) BoundTexture(unit metadata.TextureUnit, kind metadata.TextureKind) uint32 {
	return b.BoundTextures[unit][kind]
}

func (b *Backend) bound(kind metadata.TextureKind) *TextureObject {
	return b.Textures[b.BoundTextures[b.ActiveUnit][kind]]
}

func newImage(align int32, internal metadata.InternalStorage, w, h int32, format metadata.PixelDataFormat, typ metadata.PixelDataType, pixels []byte) *Image {
	img := &Image{Internal: internal, Width: w, Height: h, Format: format, Type: typ, RowAlignment: align}
	if pixels != nil {
		img.Pixels = append([]byte(nil), pixels...)
	}
	return img
}

func (b *Backend) TexImage2D(kind metadata.TextureKind, level int32, internal metadata.InternalStorage, width, height int32, format metadata.PixelDataFormat, typ metadata.PixelDataType, pixels []byte) {
	b.record("TexImage2D", kind, level, internal, width, height, format, typ, len(pixels))
	if t := b.bound(kind); t != nil && level == 0 {
		t.Image = newImage(b.Unpack, internal, width, height, format, typ, pixels)
	}
}

func (b *Backend) TexImageCubeFace(face metadata.CubemapFace, level int32, internal metadata.InternalStorage, width, height int32, format metadata.PixelDataFormat, typ metadata.PixelDataType, pixels []byte) {
	b.record("TexImageCubeFace", face, level, internal, width, height, format, typ, len(pixels))
	if t := b.bound(metadata.TextureCubeMap); t != nil && level == 0 {
		t.Faces[face] = newImage(b.Unpack, internal, width, height, format, typ, pixels)
	}
}

func (b *Backend) UnpackAlignment(alignment int32) {
	b.record("UnpackAlignment", alignment)
	b.Unpack = alignment
}

func (b *Backend) TexParameter(kind metadata.TextureKind, param metadata.TextureParameter, value metadata.TextureParameterValue) {
	b.record("TexParameter", kind, param, value)
	if t := b.bound(kind); t != nil {
		t.Params[param] = value
	}
}

func (b *Backend) GenerateMipmap(kind metadata.TextureKind) {
	b.record("GenerateMipmap", kind)
	if t := b.bound(kind); t != nil {
		t.Mipmaps = true
	}
}

func (b *Backend) DeleteTexture(texture uint32) {
	b.record("DeleteTexture", texture)
	b.markDeleted(texture)
	delete(b.Textures, texture)
	for _, m := range b.BoundTextures {
		for k, h := range m {
			if h == texture {
				m[k] = 0
			}
		}
	}
}

// ------------------------------------------
// Framebuffers and renderbuffers
// ------------------------------------------

func (b *Backend) GenFramebuffer() uint32 {
	h := b.handle()
	b.record("GenFramebuffer")
	b.Framebuffers[h] = &FramebufferObject{Attachments: make(map[metadata.Attachment]uint32)}
	return h
}

func (b *Backend) BindFramebuffer(target metadata.FramebufferTarget, framebuffer uint32) {
	b.record("BindFramebuffer", target, framebuffer)
	switch target {
	case metadata.FramebufferReadOnly:
		b.ReadFramebuffer = framebuffer
	case metadata.FramebufferDrawOnly:
		b.DrawFramebuffer = framebuffer
	default:
		b.ReadFramebuffer = framebuffer
		b.DrawFramebuffer = framebuffer
	}
}

func (b *Backend) framebufferAt(target metadata.FramebufferTarget) (uint32, *FramebufferObject) {
	h := b.DrawFramebuffer
	if target == metadata.FramebufferReadOnly {
		h = b.ReadFramebuffer
	}
	return h, b.Framebuffers[h]
}

// CheckFramebufferComplete treats the default framebuffer as complete and a
// named one as complete once it has any attachment.
func (b *Backend) CheckFramebufferComplete(target metadata.FramebufferTarget) bool {
	b.record("CheckFramebufferComplete", target)
	if b.Incomplete {
		return false
	}
	h, fb := b.framebufferAt(target)
	if h == 0 {
		return true
	}
	return fb != nil && len(fb.Attachments) > 0
}

func (b *Backend) FramebufferTexture2D(target metadata.FramebufferTarget, attachment metadata.Attachment, kind metadata.TextureKind, texture uint32, level int32) {
	b.record("FramebufferTexture2D", target, attachment, kind, texture, level)
	if _, fb := b.framebufferAt(target); fb != nil {
		fb.Attachments[attachment] = texture
	}
}

func (b *Backend) DeleteFramebuffer(framebuffer uint32) {
	b.record("DeleteFramebuffer", framebuffer)
	b.markDeleted(framebuffer)
	delete(b.Framebuffers, framebuffer)
	if b.ReadFramebuffer == framebuffer {
		b.ReadFramebuffer = 0
	}
	if b.DrawFramebuffer == framebuffer {
		b.DrawFramebuffer = 0
	}
}

func (b *Backend) GenRenderbuffer() uint32 {
	h := b.handle()
	b.record("GenRenderbuffer")
	b.Renderbuffers[h] = &RenderbufferObject{}
	return h
}

func (b *Backend) BindRenderbuffer(renderbuffer uint32) {
	b.record("BindRenderbuffer", renderbuffer)
	b.CurrentRenderbuffer = renderbuffer
}

func (b *Backend) RenderbufferStorage(internal metadata.InternalStorage, width, height int32) {
	b.record("RenderbufferStorage", internal, width, height)
	if rb, ok := b.Renderbuffers[b.CurrentRenderbuffer]; ok {
		rb.Internal, rb.Width, rb.Height = internal, width, height
	}
}

func (b *Backend) FramebufferRenderbuffer(target metadata.FramebufferTarget, attachment metadata.Attachment, renderbuffer uint32) {
	b.record("FramebufferRenderbuffer", target, attachment, renderbuffer)
	if _, fb := b.framebufferAt(target); fb != nil {
		fb.Attachments[attachment] = renderbuffer
	}
}

func (b *Backend) DeleteRenderbuffer(renderbuffer uint32) {
	b.record("DeleteRenderbuffer", renderbuffer)
	b.markDeleted(renderbuffer)
	delete(b.Renderbuffers, renderbuffer)
	if b.CurrentRenderbuffer == renderbuffer {
		b.CurrentRenderbuffer = 0
	}
}

// ------------------------------------------
// Drawing
// ------------------------------------------

func (b *Backend) DrawElements(mode metadata.PrimitiveMode, count int32, typ metadata.ScalarType, offset int) {
	b.record("DrawElements", mode, count, typ, offset)
	b.Draws = append(b.Draws, Draw{
		Mode:        mode,
		Count:       count,
		Type:        typ,
		Offset:      offset,
		Program:     b.CurrentProgram,
		VertexArray: b.CurrentVertexArray,
	})
}

func (b *Backend) Viewport(x, y, width, height int32) {
	b.record("Viewport", x, y, width, height)
	b.ViewportRect = [4]int32{x, y, width, height}
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	b.record("ClearColor", r, g, bl, a)
	b.ClearRGBA = [4]float32{r, g, bl, a}
}

func (b *Backend) Clear(mask metadata.ClearMask) {
	b.record("Clear", mask)
}

func (b *Backend) SetDepthTest(enabled bool) {
	b.record("SetDepthTest", enabled)
	b.DepthTest = enabled
}

func (b *Backend) SetDepthFunc(fn metadata.DepthFunc) {
	b.record("SetDepthFunc", fn)
	b.Depth = fn
}
