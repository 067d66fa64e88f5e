package assets

import (
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/ace/engine/containers"
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer"
	"github.com/spaghettifunk/ace/engine/renderer/gltest"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

// newReloadingContainer skips the file watcher; tests report changes directly.
func newReloadingContainer(t *testing.T, b *gltest.Backend) (*Container, string) {
	t.Helper()
	root := newAssetRoot(t)
	c := NewContainer(root, b)
	c.changes = containers.NewRingQueue[string](changeQueueSize)
	t.Cleanup(c.Release)
	return c, root
}

func TestReloadChangedProgram(t *testing.T) {
	require.True(t, core.EventSystemInitialize())
	defer core.EventSystemShutdown()
	var fired []string
	core.EventRegister(core.EVENT_CODE_ASSET_CHANGED, func(ctx core.EventContext) bool {
		fired = append(fired, ctx.Data.(*core.AssetEvent).Path)
		return false
	})

	b := gltest.New()
	c, root := newReloadingContainer(t, b)
	held, err := c.AddProgram("lit", "basic.vert", "lit.frag", "")
	require.NoError(t, err)
	before, _ := c.Generation(KindProgram, "lit")

	frag := writeFile(t, root, "shaders/lit.frag", litFragment+"// tweaked\n")
	c.notifyChanged(frag)
	c.notifyChanged(frag)
	assert.Equal(t, 1, c.ReloadChanged())

	after, _ := c.Generation(KindProgram, "lit")
	assert.NotEqual(t, before, after)
	assert.Equal(t, []string{frag}, fired)

	current, err := c.FindProgram("lit")
	require.NoError(t, err)
	defer current.Release()
	assert.NotEqual(t, held.Get().Handle(), current.Get().Handle())

	old := held.Get().Handle()
	assert.Zero(t, b.Deleted[old], "held reference keeps the old build alive")
	held.Release()
	assert.Equal(t, 1, b.Deleted[old])

	assert.Zero(t, c.ReloadChanged(), "queue was drained")
}

func TestReloadFailureKeepsPreviousBuild(t *testing.T) {
	b := gltest.New()
	c, root := newReloadingContainer(t, b)
	ref, err := c.AddProgram("lit", "basic.vert", "lit.frag", "")
	require.NoError(t, err)
	defer ref.Release()
	before, _ := c.Generation(KindProgram, "lit")

	c.notifyChanged(writeFile(t, root, "shaders/lit.frag", brokenFragment))
	assert.Zero(t, c.ReloadChanged())

	after, _ := c.Generation(KindProgram, "lit")
	assert.Equal(t, before, after)
	current, err := c.FindProgram("lit")
	require.NoError(t, err)
	defer current.Release()
	assert.Same(t, ref.Get(), current.Get())
}

func TestReloadChangedTextureOnly(t *testing.T) {
	b := gltest.New()
	c, root := newReloadingContainer(t, b)
	program, err := c.AddProgram("lit", "basic.vert", "lit.frag", "")
	require.NoError(t, err)
	defer program.Release()
	wall, err := c.AddTexture("wall", "wall.png", renderer.RGBTextureConfig(metadata.Texture2D))
	require.NoError(t, err)
	defer wall.Release()
	programGen, _ := c.Generation(KindProgram, "lit")

	c.notifyChanged(writePNG(t, root, "textures/wall.png", 4, 1, color.NRGBA{G: 255, A: 255}))
	c.notifyChanged(filepath.Join(root, "unrelated.txt"))
	assert.Equal(t, 1, c.ReloadChanged())

	current, err := c.FindTexture("wall")
	require.NoError(t, err)
	defer current.Release()
	w, h := current.Get().Size()
	assert.Equal(t, [2]int32{4, 1}, [2]int32{w, h})

	after, _ := c.Generation(KindProgram, "lit")
	assert.Equal(t, programGen, after)
}

func TestReloadWithoutWatcher(t *testing.T) {
	c := NewContainer(t.TempDir(), gltest.New())
	assert.Zero(t, c.PendingChanges())
	assert.Zero(t, c.ReloadChanged())
}

func TestWatchQueuesChanges(t *testing.T) {
	b := gltest.New()
	root := newAssetRoot(t)
	c := NewContainer(root, b)
	defer c.Release()

	require.NoError(t, c.Watch())
	assert.ErrorIs(t, c.Watch(), errAlreadyWatching)

	writeFile(t, root, "shaders/lit.frag", litFragment+"// saved\n")
	assert.Eventually(t, func() bool { return c.PendingChanges() > 0 }, 5*time.Second, 10*time.Millisecond)
}
