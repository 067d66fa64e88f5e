package loaders

import (
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/ace/engine/core"
)

func TestJobPoolRunsEveryJob(t *testing.T) {
	pool, err := NewJobPool(3, 0)
	require.NoError(t, err)

	var done, failed atomic.Int32
	for i := 0; i < 20; i++ {
		pool.Submit(Job{
			Run: func() error {
				if i%5 == 0 {
					return assert.AnError
				}
				return nil
			},
			OnComplete: func() { done.Add(1) },
			OnFailure: func(err error) {
				assert.ErrorIs(t, err, assert.AnError)
				failed.Add(1)
			},
		})
	}
	pool.Shutdown()

	assert.Equal(t, int32(16), done.Load())
	assert.Equal(t, int32(4), failed.Load())
}

func TestNewJobPoolRejectsBadSizes(t *testing.T) {
	_, err := NewJobPool(0, 1)
	assert.ErrorIs(t, err, ErrNoWorkers)
	_, err = NewJobPool(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestLoadImagesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	colours := []color.NRGBA{{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}, {R: 9, G: 9, B: 9, A: 255}}
	var paths []string
	for i, c := range colours {
		paths = append(paths, writeTestPNG(t, dir, string(rune('a'+i))+".png", c))
	}

	images, err := LoadImages(paths...)
	require.NoError(t, err)
	require.Len(t, images, len(colours))
	for i, c := range colours {
		assert.Equal(t, []byte{c.R, c.G, c.B}, images[i].Pixels, "image %d", i)
	}
}

func TestLoadImagesReportsFirstFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeTestPNG(t, dir, "good.png", color.NRGBA{A: 255})
	missing := filepath.Join(dir, "missing.png")

	_, err := LoadImages(good, missing, filepath.Join(dir, "also-missing.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.png")
	assert.NotErrorIs(t, err, core.ErrImageDecode)

	images, err := LoadImages()
	assert.NoError(t, err)
	assert.Empty(t, images)
}

// writeTestPNG writes a 1x1 image of colour c and returns its path.
func writeTestPNG(t *testing.T, dir, name string, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, c)
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}
