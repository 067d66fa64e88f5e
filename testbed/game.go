package testbed

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/ace/engine"
	"github.com/spaghettifunk/ace/engine/assets"
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/math"
	"github.com/spaghettifunk/ace/engine/renderer"
	"github.com/spaghettifunk/ace/engine/renderer/components"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

// Names of the assets the scene expects in the manifest.
const (
	litProgram     = "lit"
	skyboxProgram  = "skybox"
	screenProgram  = "screen"
	skyboxTexture  = "skybox"
	cubeMaterial   = "brick"
	rotationSpeed  = 0.5
	moveSpeed      = 5.0
	turnSpeed      = 1.0
	mouseTurnScale = 0.005
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	WorldCamera *components.Camera

	width  uint32
	height uint32
	angle  float32

	cube   *renderer.Model
	skybox *renderer.Model
	screen *renderer.Model

	offscreen   *renderer.FrameBuffer
	sceneColour *renderer.Texture

	material *assets.Material
	textures []*renderer.Ref[*renderer.Texture]
	programs []modelProgram
}

// modelProgram remembers which build of a named program a model draws with.
type modelProgram struct {
	name       string
	model      *renderer.Model
	generation uuid.UUID
}

func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown
	return tg
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	if g.Assets == nil || g.Renderer == nil {
		return fmt.Errorf("the engine did not provide assets and renderer")
	}
	state := g.State.(*gameState)

	w, h := g.Renderer.Size()
	state.WorldCamera = components.NewCamera(float32(w) / float32(max(h, 1)))
	state.WorldCamera.SetPosition(math.NewVec3(0, 1.5, 6))

	mat, err := g.Assets.FindMaterial(cubeMaterial)
	if err != nil {
		return err
	}
	state.material = mat
	// the material names its own diffuse map
	if _, err := g.texture(mat.DiffuseMapName); err != nil {
		return err
	}
	if _, err := g.texture(skyboxTexture); err != nil {
		return err
	}

	layout3D := renderer.InterleavedLayout(3, 3, 2)
	if state.cube, err = g.model(litProgram, renderer.CubeVertices, renderer.CubeIndices, layout3D); err != nil {
		return err
	}
	if state.skybox, err = g.model(skyboxProgram, renderer.CubeVertices, renderer.CubeIndices, layout3D); err != nil {
		return err
	}
	if state.screen, err = g.model(screenProgram, renderer.QuadVertices, renderer.QuadIndices, renderer.InterleavedLayout(2, 2)); err != nil {
		return err
	}

	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, g.gameOnKey)
	core.EventRegister(core.EVENT_CODE_MOUSE_WHEEL, g.gameOnWheel)
	return nil
}

// model uploads a mesh drawn with the named program and tracks the program's
// build so syncPrograms can pick up reloads.
func (g *TestGame) model(program string, vertices []float32, indices []uint32, layout func(*renderer.BoundVertexArray)) (*renderer.Model, error) {
	state := g.State.(*gameState)
	generation, _ := g.Assets.Generation(assets.KindProgram, program)
	ref, err := g.Assets.FindProgram(program)
	if err != nil {
		return nil, err
	}
	m := renderer.NewModel(g.Renderer.Backend(), vertices, indices, ref, layout)
	state.programs = append(state.programs, modelProgram{name: program, model: m, generation: generation})
	return m, nil
}

// syncPrograms hands each model the current build of its program when the
// container has reloaded it since the model last looked.
func (g *TestGame) syncPrograms() error {
	state := g.State.(*gameState)
	for i := range state.programs {
		mp := &state.programs[i]
		generation, ok := g.Assets.Generation(assets.KindProgram, mp.name)
		if !ok || generation == mp.generation {
			continue
		}
		ref, err := g.Assets.FindProgram(mp.name)
		if err != nil {
			return err
		}
		mp.model.SetProgram(ref)
		mp.generation = generation
		core.LogDebug("model switched to reloaded program", "program", mp.name, "generation", generation)
	}
	return nil
}

// texture looks a texture up once and keeps the reference for the game's
// lifetime, so a reload never pulls it out from under a frame.
func (g *TestGame) texture(name string) (*renderer.Ref[*renderer.Texture], error) {
	state := g.State.(*gameState)
	ref, err := g.Assets.FindTexture(name)
	if err != nil {
		return nil, err
	}
	state.textures = append(state.textures, ref)
	return ref, nil
}

// currentTexture resolves name on every frame so hot-reloaded images show up.
func (g *TestGame) currentTexture(name string) (*renderer.Texture, func(), error) {
	ref, err := g.Assets.FindTexture(name)
	if err != nil {
		return nil, nil, err
	}
	return ref.Get(), ref.Release, nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	cam := state.WorldCamera
	dt := float32(deltaTime)

	state.angle += rotationSpeed * dt

	if core.InputIsKeyDown(core.KEY_LEFT) || core.InputIsKeyDown(core.KEY_Q) {
		cam.Yaw(turnSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_RIGHT) || core.InputIsKeyDown(core.KEY_E) {
		cam.Yaw(-turnSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_UP) {
		cam.Pitch(turnSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_DOWN) {
		cam.Pitch(-turnSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_W) {
		cam.MoveForward(moveSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_S) {
		cam.MoveBackward(moveSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_A) {
		cam.MoveLeft(moveSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_D) {
		cam.MoveRight(moveSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_SPACE) {
		cam.MoveUp(moveSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_Z) {
		cam.MoveDown(moveSpeed * dt)
	}
	if core.InputIsButtonDown(core.BUTTON_RIGHT) {
		dx, dy := core.InputGetMouseDelta()
		cam.Yaw(-float32(dx) * mouseTurnScale)
		cam.Pitch(-float32(dy) * mouseTurnScale)
	}
	return nil
}

func (g *TestGame) Render(packet *renderer.RenderPacket, deltaTime float64) error {
	if err := g.syncPrograms(); err != nil {
		return err
	}
	packet.Passes = append(packet.Passes, g.scenePass, g.presentPass)
	return nil
}

// scenePass draws the lit cube and the skybox into the offscreen target.
func (g *TestGame) scenePass(r *renderer.Renderer, deltaTime float64) error {
	state := g.State.(*gameState)
	cam := state.WorldCamera

	fb := state.offscreen.Bind(metadata.FramebufferReadAndDraw)
	defer fb.Unbind()
	r.Clear(g.ApplicationConfig.ClearColour(), true)

	diffuse, release, err := g.currentTexture(state.material.DiffuseMapName)
	if err != nil {
		return err
	}
	defer release()
	diffuse.Bind(metadata.Slot0)

	model := math.NewMat4EulerXYZ(state.angle*0.5, state.angle, 0)
	var uniformErr error
	err = state.cube.Render(metadata.Triangles, func(p *renderer.ActiveProgram) {
		uniformErr = firstError(
			p.SetUniform("model", model),
			p.SetUniform("view", cam.View()),
			p.SetUniform("projection", cam.Projection()),
			p.SetUniform("viewPos", cam.Position()),
			state.material.Apply(p),
		)
	})
	if err != nil {
		return err
	}
	if uniformErr != nil {
		return uniformErr
	}

	// the skybox sits at the far plane, so it must pass depth at 1.0
	sky, releaseSky, err := g.currentTexture(skyboxTexture)
	if err != nil {
		return err
	}
	defer releaseSky()
	sky.Bind(metadata.Slot1)

	r.SetDepthFunc(metadata.DepthLessEqual)
	err = state.skybox.Render(metadata.Triangles, func(p *renderer.ActiveProgram) {
		uniformErr = firstError(
			p.SetUniform("view", cam.SkyboxView()),
			p.SetUniform("projection", cam.Projection()),
		)
	})
	r.SetDepthFunc(metadata.DepthLess)
	if err != nil {
		return err
	}
	return uniformErr
}

// presentPass copies the offscreen colour target to the window.
func (g *TestGame) presentPass(r *renderer.Renderer, deltaTime float64) error {
	state := g.State.(*gameState)
	r.Clear(g.ApplicationConfig.ClearColour(), false)
	state.sceneColour.Bind(metadata.Slot0)
	return state.screen.Render(metadata.Triangles, nil)
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	if width == 0 || height == 0 {
		return nil
	}
	state.width, state.height = width, height
	state.WorldCamera.SetAspect(float32(width) / float32(height))
	return g.createOffscreen(int32(width), int32(height))
}

// createOffscreen replaces the offscreen target with one of the given size.
func (g *TestGame) createOffscreen(width, height int32) error {
	state := g.State.(*gameState)
	if state.offscreen != nil {
		state.offscreen.Delete()
		state.offscreen, state.sceneColour = nil, nil
	}

	fb := renderer.NewFrameBuffer(g.Renderer.Backend())
	bound := fb.Bind(metadata.FramebufferReadAndDraw)
	defer bound.Unbind()

	colour, err := bound.AttachTexture(width, height, renderer.RGBTextureConfig(metadata.Texture2D), metadata.ColorAttachment(0))
	if err != nil {
		fb.Delete()
		return err
	}
	bound.AttachRenderBuffer(width, height, metadata.StorageDepth24Stencil8, metadata.DepthStencilAttachment)
	if !bound.IsComplete() {
		fb.Delete()
		return fmt.Errorf("offscreen framebuffer %dx%d is incomplete", width, height)
	}
	state.offscreen, state.sceneColour = fb, colour
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)
	for _, m := range []*renderer.Model{state.cube, state.skybox, state.screen} {
		if m != nil {
			m.Delete()
		}
	}
	if state.offscreen != nil {
		state.offscreen.Delete()
	}
	for _, ref := range state.textures {
		ref.Release()
	}
	state.textures = nil
	state.programs = nil
	return nil
}

func (g *TestGame) gameOnKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return false
	}
	if ke.KeyCode == core.KEY_R {
		g.State.(*gameState).WorldCamera.Reset()
		core.LogDebug("camera reset")
		return true
	}
	return false
}

func (g *TestGame) gameOnWheel(context core.EventContext) bool {
	me, ok := context.Data.(*core.MouseEvent)
	if !ok {
		return false
	}
	g.State.(*gameState).WorldCamera.MoveForward(float32(me.Scroll) * 0.5)
	return true
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
