package loaders

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/ace/engine/core"
)

/**
 * @brief Decoded pixels ready for upload: three bytes per pixel (RGB), rows
 * ordered bottom to top.
 */
type Image struct {
	Width  int
	Height int
	Pixels []byte
}

// ImageDecodeError is returned for bytes that are not a supported image.
type ImageDecodeError struct {
	Path   string
	Format string
	Err    error
}

func (e *ImageDecodeError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("decode %s image %s: %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("decode image %s: %v", e.Path, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

func (e *ImageDecodeError) Is(target error) bool { return target == core.ErrImageDecode }

var supportedImageTypes = map[string]bool{
	"png": true, "jpg": true, "gif": true, "bmp": true, "tif": true, "webp": true,
}

// LoadImage reads and decodes the image at path. See DecodeImage.
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	img, err := DecodeImage(data)
	if err != nil {
		if de, ok := err.(*ImageDecodeError); ok {
			de.Path = path
		}
		return nil, err
	}
	return img, nil
}

// DecodeImage sniffs the format, decodes, flips vertically so that row 0 is
// the bottom of the texture, and drops the alpha channel.
func DecodeImage(data []byte) (*Image, error) {
	kind, err := filetype.Match(data)
	if err != nil || !supportedImageTypes[kind.Extension] {
		return nil, &ImageDecodeError{Err: fmt.Errorf("unsupported image type %q", kind.MIME.Value)}
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ImageDecodeError{Format: kind.Extension, Err: err}
	}

	flipped := imaging.FlipV(src)
	w, h := flipped.Rect.Dx(), flipped.Rect.Dy()
	out := &Image{Width: w, Height: h, Pixels: make([]byte, 0, w*h*3)}
	for y := 0; y < h; y++ {
		row := flipped.Pix[y*flipped.Stride : y*flipped.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			out.Pixels = append(out.Pixels, row[x], row[x+1], row[x+2])
		}
	}
	return out, nil
}
