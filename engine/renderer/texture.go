package renderer

import (
	"github.com/spaghettifunk/ace/engine/assets/loaders"
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

// Texture owns one driver texture object.
type Texture struct {
	backend Backend
	handle  uint32
	config  TextureConfig
	width   int32
	height  int32
	deleted bool
}

// NewTextureFromFile decodes an image into a mipmapped, repeating 2D texture.
// The config is validated and the file decoded before anything is allocated.
// config must be a Texture2D with RGB unsigned byte pixels.
func NewTextureFromFile(backend Backend, path string, config TextureConfig) (*Texture, error) {
	if err := config.validateImageUpload(metadata.Texture2D); err != nil {
		core.LogError("rejected texture config", "path", path, "err", err)
		return nil, err
	}
	img, err := loaders.LoadImage(path)
	if err != nil {
		core.LogError("failed to load texture image", "path", path, "err", err)
		return nil, err
	}

	t := &Texture{
		backend: backend,
		handle:  backend.GenTexture(),
		config:  config,
		width:   int32(img.Width),
		height:  int32(img.Height),
	}
	t.Bind(metadata.Slot0)
	backend.UnpackAlignment(1)
	backend.TexImage2D(config.Kind, 0, config.InternalStorage, t.width, t.height, config.PixelFormat, config.PixelType, img.Pixels)
	backend.GenerateMipmap(config.Kind)
	backend.TexParameter(config.Kind, metadata.TextureWrapS, metadata.WrapRepeat)
	backend.TexParameter(config.Kind, metadata.TextureWrapT, metadata.WrapRepeat)
	backend.TexParameter(config.Kind, metadata.TextureMinFilter, metadata.FilterLinear)
	backend.TexParameter(config.Kind, metadata.TextureMagFilter, metadata.FilterLinear)

	core.LogDebug("texture created", "path", path, "handle", t.handle, "width", t.width, "height", t.height)
	return t, nil
}

// newAttachmentTexture allocates uninitialised storage and attaches it to the
// framebuffer currently bound on the ReadAndDraw target.
func newAttachmentTexture(backend Backend, width, height int32, config TextureConfig, attachment metadata.Attachment) (*Texture, error) {
	if err := config.Validate(); err != nil {
		core.LogError("rejected attachment texture config", "attachment", attachment, "err", err)
		return nil, err
	}
	t := &Texture{
		backend: backend,
		handle:  backend.GenTexture(),
		config:  config,
		width:   width,
		height:  height,
	}
	backend.BindTexture(config.Kind, t.handle)
	backend.TexImage2D(config.Kind, 0, config.InternalStorage, width, height, config.PixelFormat, config.PixelType, nil)
	backend.TexParameter(config.Kind, metadata.TextureMinFilter, metadata.FilterLinear)
	backend.TexParameter(config.Kind, metadata.TextureMagFilter, metadata.FilterLinear)
	backend.FramebufferTexture2D(metadata.FramebufferReadAndDraw, attachment, config.Kind, t.handle, 0)
	return t, nil
}

func (t *Texture) Handle() uint32              { return t.handle }
func (t *Texture) Config() TextureConfig       { return t.config }
func (t *Texture) Size() (width, height int32) { return t.width, t.height }

// Bind activates unit and binds t to it, replacing whatever the unit held.
func (t *Texture) Bind(unit metadata.TextureUnit) {
	t.backend.ActiveTexture(unit)
	t.backend.BindTexture(t.config.Kind, t.handle)
}

func (t *Texture) Delete() {
	if t.deleted {
		return
	}
	t.backend.DeleteTexture(t.handle)
	t.deleted = true
}
