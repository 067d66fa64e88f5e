package renderer

import "github.com/spaghettifunk/ace/engine/renderer/metadata"

// RenderBuffer owns renderbuffer storage attached to a framebuffer.
type RenderBuffer struct {
	backend Backend
	handle  uint32
	storage metadata.InternalStorage
	width   int32
	height  int32
	deleted bool
}

func newAttachmentRenderBuffer(backend Backend, storage metadata.InternalStorage, width, height int32, attachment metadata.Attachment) *RenderBuffer {
	rb := &RenderBuffer{
		backend: backend,
		handle:  backend.GenRenderbuffer(),
		storage: storage,
		width:   width,
		height:  height,
	}
	backend.BindRenderbuffer(rb.handle)
	backend.RenderbufferStorage(storage, width, height)
	backend.FramebufferRenderbuffer(metadata.FramebufferReadAndDraw, attachment, rb.handle)
	return rb
}

func (rb *RenderBuffer) Handle() uint32                    { return rb.handle }
func (rb *RenderBuffer) Storage() metadata.InternalStorage { return rb.storage }
func (rb *RenderBuffer) Size() (width, height int32)       { return rb.width, rb.height }

func (rb *RenderBuffer) Delete() {
	if rb.deleted {
		return
	}
	rb.backend.DeleteRenderbuffer(rb.handle)
	rb.deleted = true
}
