package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer/gltest"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

func TestFrameBufferAttachments(t *testing.T) {
	b := gltest.New()
	fb := NewFrameBuffer(b)
	bound := fb.Bind(metadata.FramebufferReadAndDraw)
	assert.Same(t, fb, bound.FrameBuffer())
	assert.Equal(t, metadata.FramebufferReadAndDraw, bound.Target())
	assert.False(t, bound.IsComplete(), "no attachments yet")

	colour, err := bound.AttachTexture(800, 600, RGBTextureConfig(metadata.Texture2D), metadata.ColorAttachment(0))
	require.NoError(t, err)
	depth := bound.AttachRenderBuffer(800, 600, metadata.StorageDepth24Stencil8, metadata.DepthStencilAttachment)
	assert.True(t, bound.IsComplete())

	assert.Equal(t, 1, fb.TextureCount())
	assert.Equal(t, 1, fb.RenderBufferCount())
	assert.Same(t, colour, fb.Texture(0))
	assert.Same(t, depth, fb.RenderBuffer(0))

	obj := b.Framebuffers[fb.Handle()]
	assert.Equal(t, colour.Handle(), obj.Attachments[metadata.ColorAttachment(0)])
	assert.Equal(t, depth.Handle(), obj.Attachments[metadata.DepthStencilAttachment])

	tex := b.Textures[colour.Handle()]
	require.NotNil(t, tex.Image)
	assert.Nil(t, tex.Image.Pixels, "attachment storage is uninitialised")
	assert.Equal(t, int32(800), tex.Image.Width)

	rb := b.Renderbuffers[depth.Handle()]
	assert.Equal(t, metadata.StorageDepth24Stencil8, rb.Internal)
	w, h := depth.Size()
	assert.Equal(t, [2]int32{800, 600}, [2]int32{w, h})
	assert.Equal(t, metadata.StorageDepth24Stencil8, depth.Storage())
}

func TestFrameBufferAttachBadTexture(t *testing.T) {
	b := gltest.New()
	fb := NewFrameBuffer(b)
	bound := fb.Bind(metadata.FramebufferReadAndDraw)
	b.ResetCalls()

	cfg := TextureConfig{Kind: metadata.TextureCubeMap, InternalStorage: metadata.StorageDepth24, PixelFormat: metadata.FormatDepth, PixelType: metadata.TypeFloat}
	_, err := bound.AttachTexture(64, 64, cfg, metadata.DepthAttachment)
	assert.ErrorIs(t, err, core.ErrBadTextureConfig)
	assert.Empty(t, b.Calls)
	assert.Zero(t, fb.TextureCount())
}

func TestFrameBufferUnbindRestoresBothTargets(t *testing.T) {
	b := gltest.New()
	fb := NewFrameBuffer(b)

	bound := fb.Bind(metadata.FramebufferReadOnly)
	assert.Equal(t, fb.Handle(), b.ReadFramebuffer)
	b.DrawFramebuffer = 42

	bound.Unbind()
	assert.Zero(t, b.ReadFramebuffer)
	assert.Zero(t, b.DrawFramebuffer)
	last := b.Calls[len(b.Calls)-1]
	assert.Equal(t, "BindFramebuffer", last.Name)
	assert.Equal(t, []any{metadata.FramebufferReadAndDraw, uint32(0)}, last.Args)
}

func TestFrameBufferIncompleteReported(t *testing.T) {
	b := gltest.New()
	b.Incomplete = true
	fb := NewFrameBuffer(b)
	bound := fb.Bind(metadata.FramebufferReadAndDraw)
	bound.AttachRenderBuffer(4, 4, metadata.StorageDepth24, metadata.DepthAttachment)
	assert.False(t, bound.IsComplete())
}

func TestFrameBufferDeleteReleasesAttachments(t *testing.T) {
	b := gltest.New()
	fb := NewFrameBuffer(b)
	bound := fb.Bind(metadata.FramebufferReadAndDraw)
	_, err := bound.AttachTexture(8, 8, RGBTextureConfig(metadata.Texture2D), metadata.ColorAttachment(0))
	require.NoError(t, err)
	_, err = bound.AttachTexture(8, 8, RGBTextureConfig(metadata.Texture2D), metadata.ColorAttachment(1))
	require.NoError(t, err)
	bound.AttachRenderBuffer(8, 8, metadata.StorageDepth24Stencil8, metadata.DepthStencilAttachment)
	bound.Unbind()
	require.Equal(t, 4, b.Live())

	fb.Delete()
	fb.Delete()
	assert.Zero(t, b.Live())
	assert.Equal(t, 1, b.Count("DeleteFramebuffer"))
	assert.Equal(t, 2, b.Count("DeleteTexture"))
	assert.Equal(t, 1, b.Count("DeleteRenderbuffer"))
}
