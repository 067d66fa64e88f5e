package renderer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/ace/engine/math"
	"github.com/spaghettifunk/ace/engine/renderer/gltest"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

func TestDrawFrame(t *testing.T) {
	b := gltest.New()
	r := New(b, 640, 480)
	r.SetClearColour(math.NewVec4(0.1, 0.2, 0.3, 1))

	var order []string
	packet := &RenderPacket{
		DeltaTime: 0.016,
		Passes: []RenderPass{
			func(r *Renderer, dt float64) error {
				order = append(order, "scene")
				r.SetDepthFunc(metadata.DepthLessEqual)
				return nil
			},
			func(r *Renderer, dt float64) error {
				order = append(order, "post")
				assert.InDelta(t, 0.016, dt, 1e-9)
				return nil
			},
		},
	}
	require.NoError(t, r.DrawFrame(packet))

	assert.Equal(t, []string{"scene", "post"}, order)
	assert.Equal(t, [4]int32{0, 0, 640, 480}, b.ViewportRect)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, b.ClearRGBA)
	assert.True(t, b.DepthTest)
	assert.Equal(t, metadata.DepthLess, b.Depth, "EndFrame restores the default depth test")

	names := b.CallNames()
	assert.Equal(t, []string{"Viewport", "SetDepthTest", "ClearColor", "Clear"}, names[:4])
	assert.Equal(t, []any{metadata.ClearColor | metadata.ClearDepth}, b.Calls[3].Args)
}

func TestDrawFrameStopsOnPassError(t *testing.T) {
	b := gltest.New()
	r := New(b, 8, 8)
	boom := errors.New("boom")
	ran := false

	err := r.DrawFrame(&RenderPacket{Passes: []RenderPass{
		func(*Renderer, float64) error { return boom },
		func(*Renderer, float64) error { ran = true; return nil },
	}})
	assert.ErrorIs(t, err, boom)
	assert.False(t, ran)
	assert.Zero(t, b.Count("SetDepthFunc"))
}

func TestClearWithoutDepth(t *testing.T) {
	b := gltest.New()
	r := New(b, 8, 8)
	r.Clear(math.NewVec4(1, 1, 1, 1), false)
	assert.False(t, b.DepthTest)
	last := b.Calls[len(b.Calls)-1]
	assert.Equal(t, []any{metadata.ClearColor}, last.Args)
}

func TestOnResize(t *testing.T) {
	b := gltest.New()
	r := New(b, 8, 8)
	r.OnResize(1024, 768)
	w, h := r.Size()
	assert.Equal(t, int32(1024), w)
	assert.Equal(t, int32(768), h)
	require.NoError(t, r.BeginFrame(0))
	assert.Equal(t, [4]int32{0, 0, 1024, 768}, b.ViewportRect)
}
