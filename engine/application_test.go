package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/math"
	"github.com/spaghettifunk/ace/engine/renderer"
)

func TestParseApplicationConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseApplicationConfig([]byte(`
name = "demo"
log_level = "debug"

[window]
width = 800
vsync = false

[assets]
root = "testdata"
hot_reload = true

[renderer]
clear_colour = [0.5, 0.25, 0.0, 1.0]
`))
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, core.DebugLevel, cfg.LogLevel)
	assert.Equal(t, uint32(800), cfg.Window.StartWidth)
	assert.Equal(t, uint32(720), cfg.Window.StartHeight, "missing keys keep defaults")
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, "testdata", cfg.Assets.Root)
	assert.Equal(t, "assets.toml", cfg.Assets.Manifest)
	assert.True(t, cfg.Assets.HotReload)
	assert.Equal(t, math.NewVec4(0.5, 0.25, 0, 1), cfg.ClearColour())
}

func TestParseApplicationConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "fullscreen = true"},
		{"bad log level", `log_level = "verbose"`},
		{"zero width", "[window]\nwidth = 0"},
		{"empty asset root", "[assets]\nroot = \"\""},
		{"not toml", "name = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseApplicationConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseApplicationConfigUnknownKeyIsStrict(t *testing.T) {
	_, err := ParseApplicationConfig([]byte("[window]\ntitle = \"x\""))
	var strict *toml.StrictMissingError
	assert.ErrorAs(t, err, &strict)
}

func TestLoadApplicationConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ace.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"from file\"\n"), 0o644))

	cfg, err := LoadApplicationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from file", cfg.Name)

	_, err = LoadApplicationConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultApplicationConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultApplicationConfig().Validate())
}

func TestNewRequiresHooks(t *testing.T) {
	_, err := New(&Game{ApplicationConfig: DefaultApplicationConfig()})
	assert.Error(t, err)

	noop := func() error { return nil }
	g := &Game{
		ApplicationConfig: DefaultApplicationConfig(),
		FnInitialize:      noop,
		FnUpdate:          func(float64) error { return nil },
		FnRender:          func(*renderer.RenderPacket, float64) error { return nil },
		FnOnResize:        func(uint32, uint32) error { return nil },
	}
	e, err := New(g)
	require.NoError(t, err)
	w, h := e.GetFramebufferSize()
	assert.Equal(t, uint32(1280), w)
	assert.Equal(t, uint32(720), h)
	assert.NoError(t, e.Shutdown(), "shutting down before initialize is a no-op")
}
