package renderer

import (
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

/**
 * @brief A framebuffer object and the attachments created against it. The
 * attachment lists only grow; everything is released by Delete.
 */
type FrameBuffer struct {
	backend       Backend
	handle        uint32
	textures      []*Texture
	renderBuffers []*RenderBuffer
	deleted       bool
}

func NewFrameBuffer(backend Backend) *FrameBuffer {
	return &FrameBuffer{backend: backend, handle: backend.GenFramebuffer()}
}

func (fb *FrameBuffer) Handle() uint32 { return fb.handle }

// Bind binds fb to target.
func (fb *FrameBuffer) Bind(target metadata.FramebufferTarget) *BoundFrameBuffer {
	fb.backend.BindFramebuffer(target, fb.handle)
	return &BoundFrameBuffer{framebuffer: fb, target: target}
}

// Texture returns the i-th texture attachment.
func (fb *FrameBuffer) Texture(i int) *Texture { return fb.textures[i] }

func (fb *FrameBuffer) RenderBuffer(i int) *RenderBuffer { return fb.renderBuffers[i] }

func (fb *FrameBuffer) TextureCount() int      { return len(fb.textures) }
func (fb *FrameBuffer) RenderBufferCount() int { return len(fb.renderBuffers) }

// Delete releases every attachment and then the framebuffer itself.
func (fb *FrameBuffer) Delete() {
	if fb.deleted {
		return
	}
	for _, t := range fb.textures {
		t.Delete()
	}
	for _, rb := range fb.renderBuffers {
		rb.Delete()
	}
	fb.backend.DeleteFramebuffer(fb.handle)
	fb.deleted = true
}

// BoundFrameBuffer is a framebuffer bound to some target.
type BoundFrameBuffer struct {
	framebuffer *FrameBuffer
	target      metadata.FramebufferTarget
}

func (b *BoundFrameBuffer) FrameBuffer() *FrameBuffer          { return b.framebuffer }
func (b *BoundFrameBuffer) Target() metadata.FramebufferTarget { return b.target }

// AttachTexture creates an empty width x height texture at attachment.
func (b *BoundFrameBuffer) AttachTexture(width, height int32, config TextureConfig, attachment metadata.Attachment) (*Texture, error) {
	fb := b.framebuffer
	t, err := newAttachmentTexture(fb.backend, width, height, config, attachment)
	if err != nil {
		return nil, err
	}
	fb.textures = append(fb.textures, t)
	return t, nil
}

// AttachRenderBuffer creates renderbuffer storage at attachment.
func (b *BoundFrameBuffer) AttachRenderBuffer(width, height int32, storage metadata.InternalStorage, attachment metadata.Attachment) *RenderBuffer {
	fb := b.framebuffer
	rb := newAttachmentRenderBuffer(fb.backend, storage, width, height, attachment)
	fb.renderBuffers = append(fb.renderBuffers, rb)
	return rb
}

// IsComplete asks the driver whether the bound framebuffer can be rendered
// to. Nothing enforces the check; call it after the last attachment.
func (b *BoundFrameBuffer) IsComplete() bool {
	ok := b.framebuffer.backend.CheckFramebufferComplete(metadata.FramebufferReadAndDraw)
	if !ok {
		core.LogWarn("framebuffer incomplete", "framebuffer", b.framebuffer.handle)
	}
	return ok
}

// Unbind restores the default framebuffer on both targets, whatever was bound.
func (b *BoundFrameBuffer) Unbind() {
	b.framebuffer.backend.BindFramebuffer(metadata.FramebufferReadAndDraw, 0)
}
