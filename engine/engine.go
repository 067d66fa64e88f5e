package engine

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/spaghettifunk/ace/engine/assets"
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/platform"
	"github.com/spaghettifunk/ace/engine/renderer"
	"github.com/spaghettifunk/ace/engine/renderer/opengl"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

const targetFrameSeconds float64 = 1.0 / 60.0

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	isSuspended  bool
	quit         atomic.Bool

	platform *platform.Platform
	renderer *renderer.Renderer
	assets   *assets.Container

	width    uint32
	height   uint32
	clock    *core.Clock
	metrics  *core.Metrics
	lastTime float64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game and application config are required")
	}
	if g.FnInitialize == nil || g.FnUpdate == nil || g.FnRender == nil || g.FnOnResize == nil {
		return nil, fmt.Errorf("game is missing one of the initialize, update, render or resize hooks")
	}
	if err := g.ApplicationConfig.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		platform:     platform.New(),
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		width:        g.ApplicationConfig.Window.StartWidth,
		height:       g.ApplicationConfig.Window.StartHeight,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.ApplicationConfig
	core.SetLogLevel(cfg.LogLevel)

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}
	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)
	core.EventRegister(core.EVENT_CODE_ASSET_CHANGED, e.onAssetChanged)

	if err := e.platform.Startup(platform.WindowConfig{
		Title:  cfg.Name,
		X:      cfg.Window.StartPosX,
		Y:      cfg.Window.StartPosY,
		Width:  cfg.Window.StartWidth,
		Height: cfg.Window.StartHeight,
		VSync:  cfg.Window.VSync,
		Debug:  cfg.Renderer.Debug,
	}); err != nil {
		return err
	}

	backend, err := opengl.New()
	if err != nil {
		return err
	}
	if cfg.Renderer.Debug && !backend.EnableDebugOutput(renderer.LogDebugMessage) {
		core.LogWarn("debug context requested but KHR_debug output is unavailable")
	}
	// the framebuffer can be larger than the window on high-DPI displays
	e.width, e.height = e.platform.FramebufferSize()
	e.renderer = renderer.New(backend, e.width, e.height)
	e.renderer.SetClearColour(cfg.ClearColour())

	e.assets = assets.NewContainer(cfg.Assets.Root, backend)
	if cfg.Assets.Manifest != "" {
		if err := e.assets.LoadManifest(filepath.Join(e.assets.Root(), cfg.Assets.Manifest)); err != nil {
			return err
		}
	}
	if cfg.Assets.HotReload {
		if err := e.assets.Watch(); err != nil {
			// reloading is a convenience, keep running without it
			core.LogWarn("asset hot reload disabled", "err", err)
		}
	}

	e.gameInstance.Assets = e.assets
	e.gameInstance.Renderer = e.renderer
	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}
	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}
	e.currentStage = EngineStageInitialized
	return nil
}

// RequestQuit asks the loop to stop after the current frame. It is safe to
// call from any goroutine.
func (e *Engine) RequestQuit() { e.quit.Store(true) }

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.isRunning = true
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	limitFrames := !e.gameInstance.ApplicationConfig.Window.VSync
	var runErr error

	for e.isRunning {
		if !e.platform.PumpMessages() || e.quit.Load() {
			e.isRunning = false
			break
		}
		if e.isSuspended {
			e.platform.Sleep(targetFrameSeconds * 1000)
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		frameStartTime := platform.GetAbsoluteTime()

		// Rebuild anything the watcher saw change since the last frame.
		e.assets.ReloadChanged()

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("game update failed, shutting down", "err", err)
			runErr = err
			break
		}

		packet := &renderer.RenderPacket{DeltaTime: delta}
		if err := e.gameInstance.FnRender(packet, delta); err != nil {
			core.LogError("game render failed, shutting down", "err", err)
			runErr = err
			break
		}
		if err := e.renderer.DrawFrame(packet); err != nil {
			runErr = err
			break
		}
		e.platform.SwapBuffers()

		// Figure out how long the frame took and, if below the target,
		// give the remaining time back to the OS.
		frameElapsedTime := platform.GetAbsoluteTime() - frameStartTime
		e.metrics.Update(frameElapsedTime)
		if remaining := targetFrameSeconds - frameElapsedTime; limitFrames && remaining > 0 {
			e.platform.Sleep(remaining*1000 - 1)
		}

		// Input state is copied last so this frame's presses stay visible
		// to every system above.
		core.InputUpdate(delta)
		e.lastTime = currentTime
	}

	e.isRunning = false
	if err := e.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown || e.currentStage == EngineStageUninitialized {
		return nil
	}
	e.currentStage = EngineStageShuttingDown

	var shutdownErr error
	if e.gameInstance.FnShutdown != nil {
		shutdownErr = e.gameInstance.FnShutdown()
	}
	// GL objects have to go before the context does
	if e.assets != nil {
		e.assets.Release()
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	core.LogInfo("engine stopped", "fps", e.metrics.FPS(), "frame_ms", e.metrics.FrameTime())
	return shutdownErr
}

// GetFramebufferSize returns the width and height (in this order) of the
// application framebuffer.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext) bool {
	if context.Type == core.EVENT_CODE_APPLICATION_QUIT {
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down")
		e.isRunning = false
		e.quit.Store(true)
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event data", "code", context.Type)
		return false
	}
	if ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event data", "code", context.Type)
		return false
	}
	width, height := se.WindowWidth, se.WindowHeight
	if width == e.width && height == e.height {
		return false
	}
	e.width, e.height = width, height
	core.LogDebug("window resized", "width", width, "height", height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("window minimized, suspending application")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("window restored, resuming application")
		e.isSuspended = false
	}
	e.renderer.OnResize(width, height)
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError("game resize failed", "err", err)
	}
	return false
}

func (e *Engine) onAssetChanged(context core.EventContext) bool {
	if ae, ok := context.Data.(*core.AssetEvent); ok {
		core.LogInfo("asset changed on disk", "path", ae.Path)
	}
	return false
}
