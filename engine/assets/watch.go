package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/ace/engine/containers"
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer"
)

const changeQueueSize = 256

var errAlreadyWatching = errors.New("asset container is already watching")

// Watch starts watching the asset root and its subdirectories. Changed paths
// are queued until ReloadChanged picks them up on the render thread.
func (c *Container) Watch() error {
	if c.watcher != nil {
		return errAlreadyWatching
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	c.watcher = w
	c.changes = containers.NewRingQueue[string](changeQueueSize)
	c.done = make(chan struct{})

	if err := c.watchRecursive(c.root); err != nil {
		c.stopWatching()
		return err
	}
	c.wg.Add(1)
	go c.pump()
	core.LogDebug("watching assets", "root", c.root)
	return nil
}

func (c *Container) pump() {
	defer c.wg.Done()
	for {
		select {
		case e, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
				if e.Has(fsnotify.Create) {
					if err := c.watchRecursive(e.Name); err != nil {
						core.LogWarn("failed to watch new asset directory", "path", e.Name, "err", err)
					}
				}
				continue
			}
			if e.Has(fsnotify.Write) || e.Has(fsnotify.Create) {
				c.notifyChanged(e.Name)
			}

		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher error", "err", err)

		case <-c.done:
			return
		}
	}
}

// watchRecursive adds dir and every directory below it to the watch list.
func (c *Container) watchRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return c.watcher.Add(path)
		}
		return nil
	})
}

func (c *Container) notifyChanged(path string) {
	if err := c.changes.Enqueue(filepath.Clean(path)); err != nil {
		core.LogWarn("asset change dropped", "path", path, "err", err)
	}
}

func (c *Container) stopWatching() {
	if c.watcher == nil {
		return
	}
	close(c.done)
	c.watcher.Close()
	c.wg.Wait()
	c.watcher = nil
}

// PendingChanges is the number of changed paths waiting for ReloadChanged.
func (c *Container) PendingChanges() int {
	if c.changes == nil {
		return 0
	}
	return c.changes.Len()
}

// ReloadChanged rebuilds every program and texture whose source files changed
// since the last call and returns how many were swapped in. A failed rebuild
// is logged and the previous resource stays in place.
func (c *Container) ReloadChanged() int {
	if c.changes == nil {
		return 0
	}
	changed := make(map[string]bool)
	for _, p := range c.changes.Drain() {
		changed[p] = true
	}
	if len(changed) == 0 {
		return 0
	}

	reloaded := reloadEntries(c.programs, KindProgram, changed)
	reloaded += reloadEntries(c.textures, KindTexture, changed)
	for p := range changed {
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_ASSET_CHANGED, Data: &core.AssetEvent{Path: p}})
	}
	return reloaded
}

func reloadEntries[T renderer.Deleter](m map[string]*entry[T], kind AssetKind, changed map[string]bool) int {
	n := 0
	for name, e := range m {
		if e.rebuild == nil || !touches(e.sources, changed) {
			continue
		}
		previous := e.generation
		if err := build(e); err != nil {
			core.LogError("asset reload failed, keeping previous build", "kind", kind, "name", name, "err", err)
			continue
		}
		core.LogInfo("asset reloaded", "kind", kind, "name", name, "from", previous, "to", e.generation)
		n++
	}
	return n
}

func touches(sources []string, changed map[string]bool) bool {
	for _, s := range sources {
		if changed[s] {
			return true
		}
	}
	return false
}
