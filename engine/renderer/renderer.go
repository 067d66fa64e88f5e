package renderer

import (
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/math"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

// RenderPass draws part of a frame. Passes run in order between BeginFrame
// and EndFrame.
type RenderPass func(r *Renderer, deltaTime float64) error

type RenderPacket struct {
	DeltaTime float64
	Passes    []RenderPass
}

// Renderer owns the per-frame default framebuffer state.
type Renderer struct {
	backend     Backend
	width       int32
	height      int32
	clearColour math.Vec4
}

func New(backend Backend, width, height uint32) *Renderer {
	return &Renderer{
		backend:     backend,
		width:       int32(width),
		height:      int32(height),
		clearColour: math.NewVec4(0, 0, 0, 1),
	}
}

func (r *Renderer) Backend() Backend { return r.backend }

func (r *Renderer) Size() (width, height int32) { return r.width, r.height }

func (r *Renderer) SetClearColour(colour math.Vec4) { r.clearColour = colour }

// Clear fills the bound framebuffer with colour and resets depth.
func (r *Renderer) Clear(colour math.Vec4, depthTest bool) {
	r.backend.SetDepthTest(depthTest)
	r.backend.ClearColor(colour.X, colour.Y, colour.Z, colour.W)
	mask := metadata.ClearColor
	if depthTest {
		mask |= metadata.ClearDepth
	}
	r.backend.Clear(mask)
}

// SetDepthFunc changes the depth comparison for the following draws.
func (r *Renderer) SetDepthFunc(fn metadata.DepthFunc) {
	r.backend.SetDepthFunc(fn)
}

func (r *Renderer) BeginFrame(deltaTime float64) error {
	r.backend.Viewport(0, 0, r.width, r.height)
	r.Clear(r.clearColour, true)
	return nil
}

func (r *Renderer) EndFrame(deltaTime float64) error {
	r.backend.SetDepthFunc(metadata.DepthLess)
	return nil
}

// OnResize updates the viewport used from the next frame on.
func (r *Renderer) OnResize(width, height uint32) {
	r.width, r.height = int32(width), int32(height)
	core.LogDebug("renderer resized", "width", width, "height", height)
}

func (r *Renderer) DrawFrame(packet *RenderPacket) error {
	if err := r.BeginFrame(packet.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}
	for _, pass := range packet.Passes {
		if err := pass(r, packet.DeltaTime); err != nil {
			core.LogError("render pass failed", "err", err)
			return err
		}
	}
	if err := r.EndFrame(packet.DeltaTime); err != nil {
		core.LogError("renderer EndFrame failed")
		return err
	}
	return nil
}
