package engine

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/math"
)

type WindowConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX   uint32 `toml:"x"`
	// Window starting position y axis, if applicable.
	StartPosY   uint32 `toml:"y"`
	// Window starting width, if applicable.
	StartWidth  uint32 `toml:"width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"height"`
	VSync       bool   `toml:"vsync"`
}

type AssetsConfig struct {
	// Root is the directory holding shaders/, textures/ and materials/.
	Root      string `toml:"root"`
	// Manifest is relative to Root. Empty skips manifest loading.
	Manifest  string `toml:"manifest"`
	HotReload bool   `toml:"hot_reload"`
}

type RendererConfig struct {
	ClearColour [4]float32 `toml:"clear_colour"`
	// Debug requests a debug GL context and logs its KHR_debug messages.
	Debug       bool       `toml:"debug"`
}

type ApplicationConfig struct {
	// The application name used in windowing, if applicable.
	Name     string         `toml:"name"`
	LogLevel core.LogLevel  `toml:"log_level"`
	Window   WindowConfig   `toml:"window"`
	Assets   AssetsConfig   `toml:"assets"`
	Renderer RendererConfig `toml:"renderer"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:     "Ace",
		LogLevel: core.InfoLevel,
		Window: WindowConfig{
			StartPosX:   100,
			StartPosY:   100,
			StartWidth:  1280,
			StartHeight: 720,
			VSync:       true,
		},
		Assets: AssetsConfig{
			Root:     "assets",
			Manifest: "assets.toml",
		},
		Renderer: RendererConfig{
			ClearColour: [4]float32{0.1, 0.1, 0.12, 1},
		},
	}
}

// LoadApplicationConfig reads a TOML config on top of the defaults. Keys the
// file leaves out keep their default value; unknown keys are an error.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load application config: %w", err)
	}
	return ParseApplicationConfig(data)
}

func ParseApplicationConfig(data []byte) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse application config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.Window.StartWidth == 0 || c.Window.StartHeight == 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.StartWidth, c.Window.StartHeight)
	}
	if c.Assets.Root == "" {
		return fmt.Errorf("asset root must not be empty")
	}
	return nil
}

func (c *ApplicationConfig) ClearColour() math.Vec4 {
	cc := c.Renderer.ClearColour
	return math.NewVec4(cc[0], cc[1], cc[2], cc[3])
}
