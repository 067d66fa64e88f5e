package engine

import (
	"github.com/spaghettifunk/ace/engine/assets"
	"github.com/spaghettifunk/ace/engine/renderer"
)

type Game struct {
	ApplicationConfig *ApplicationConfig

	// Assets is set by the engine before FnInitialize runs.
	Assets   *assets.Container
	Renderer *renderer.Renderer
	State    interface{}

	FnInitialize Initialize
	FnUpdate     Update
	FnRender     Render
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error

// Render appends the game's passes to packet; the engine draws it afterwards.
type Render func(packet *renderer.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
