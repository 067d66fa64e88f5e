package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/spaghettifunk/ace/engine/containers"
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

type entry[T renderer.Deleter] struct {
	ref        *renderer.Ref[T]
	generation uuid.UUID
	// sources are the absolute files the resource was built from.
	sources []string
	// rebuild recreates the resource from sources; nil for inserted entries.
	rebuild func() (T, error)
	// after runs on every new build, e.g. to assign sampler units.
	after func(T) error
}

/**
 * @brief Named programs, textures and materials loaded from an asset root.
 * Shaders are resolved under <root>/shaders, textures under <root>/textures
 * and materials under <root>/materials. All methods except the file watcher
 * pump run on the render thread.
 */
type Container struct {
	root    string
	backend renderer.Backend

	programs  map[string]*entry[*renderer.Program]
	textures  map[string]*entry[*renderer.Texture]
	materials map[string]*Material

	watcher *fsnotify.Watcher
	changes *containers.RingQueue[string]
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewContainer(root string, backend renderer.Backend) *Container {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Container{
		root:      root,
		backend:   backend,
		programs:  make(map[string]*entry[*renderer.Program]),
		textures:  make(map[string]*entry[*renderer.Texture]),
		materials: make(map[string]*Material),
	}
}

func (c *Container) Root() string              { return c.root }
func (c *Container) Backend() renderer.Backend { return c.backend }

func (c *Container) ShaderPath(name string) string   { return filepath.Join(c.root, "shaders", name) }
func (c *Container) TexturePath(name string) string  { return filepath.Join(c.root, "textures", name) }
func (c *Container) MaterialPath(name string) string { return filepath.Join(c.root, "materials", name) }

// AddProgram builds a program from shader files and stores it under name,
// replacing any previous program of that name. An empty geometry means no
// geometry stage. The returned reference belongs to the caller.
func (c *Container) AddProgram(name, vertex, fragment, geometry string) (*renderer.Ref[*renderer.Program], error) {
	return c.AddProgramWithSamplers(name, vertex, fragment, geometry, nil)
}

// AddProgramWithSamplers is AddProgram followed by assigning each sampler
// uniform to its texture unit, again after every reload.
func (c *Container) AddProgramWithSamplers(name, vertex, fragment, geometry string, samplers map[string]metadata.TextureUnit) (*renderer.Ref[*renderer.Program], error) {
	vs, fs := c.ShaderPath(vertex), c.ShaderPath(fragment)
	var gs string
	sources := []string{vs, fs}
	if geometry != "" {
		gs = c.ShaderPath(geometry)
		sources = append(sources, gs)
	}
	e := &entry[*renderer.Program]{
		sources: sources,
		rebuild: func() (*renderer.Program, error) {
			return renderer.GenerateProgram(c.backend, vs, fs, gs)
		},
	}
	if len(samplers) > 0 {
		e.after = func(p *renderer.Program) error {
			active := p.Bind()
			defer active.Unbind()
			for uniform, unit := range samplers {
				if err := active.SetUniform(uniform, unit); err != nil {
					return err
				}
			}
			return nil
		}
	}
	if err := build(e); err != nil {
		return nil, fmt.Errorf("add program %q: %w", name, err)
	}
	replace(c.programs, name, e)
	core.LogInfo("program added", "name", name, "generation", e.generation)
	return e.ref.Clone(), nil
}

// InsertProgram stores a program built elsewhere. The container takes over ref.
func (c *Container) InsertProgram(name string, ref *renderer.Ref[*renderer.Program]) {
	replace(c.programs, name, &entry[*renderer.Program]{ref: ref, generation: uuid.New()})
}

// FindProgram returns a new reference to the named program.
func (c *Container) FindProgram(name string) (*renderer.Ref[*renderer.Program], error) {
	e, ok := c.programs[name]
	if !ok {
		return nil, &NotFoundError{Kind: KindProgram, Name: name}
	}
	return e.ref.Clone(), nil
}

// AddTexture loads a 2D texture from <root>/textures/file.
func (c *Container) AddTexture(name, file string, config renderer.TextureConfig) (*renderer.Ref[*renderer.Texture], error) {
	path := c.TexturePath(file)
	e := &entry[*renderer.Texture]{
		sources: []string{path},
		rebuild: func() (*renderer.Texture, error) {
			return renderer.NewTextureFromFile(c.backend, path, config)
		},
	}
	if err := build(e); err != nil {
		return nil, fmt.Errorf("add texture %q: %w", name, err)
	}
	replace(c.textures, name, e)
	core.LogInfo("texture added", "name", name, "generation", e.generation)
	return e.ref.Clone(), nil
}

// AddCubemap loads the six faces in <root>/textures/dir. An empty ext
// means renderer.DefaultCubemapExtension.
func (c *Container) AddCubemap(name, dir, ext string, config renderer.TextureConfig) (*renderer.Ref[*renderer.Texture], error) {
	paths, err := renderer.CubemapPathsFromDirectory(c.TexturePath(dir), ext)
	if err != nil {
		return nil, fmt.Errorf("add cubemap %q: %w", name, err)
	}
	entries := paths.Entries()
	sources := make([]string, 0, len(entries))
	for _, ce := range entries {
		sources = append(sources, ce.Path)
	}
	e := &entry[*renderer.Texture]{
		sources: sources,
		rebuild: func() (*renderer.Texture, error) {
			return renderer.NewCubemapFromFiles(c.backend, paths, config)
		},
	}
	if err := build(e); err != nil {
		return nil, fmt.Errorf("add cubemap %q: %w", name, err)
	}
	replace(c.textures, name, e)
	core.LogInfo("cubemap added", "name", name, "generation", e.generation)
	return e.ref.Clone(), nil
}

// InsertTexture stores a texture built elsewhere. The container takes over ref.
func (c *Container) InsertTexture(name string, ref *renderer.Ref[*renderer.Texture]) {
	replace(c.textures, name, &entry[*renderer.Texture]{ref: ref, generation: uuid.New()})
}

func (c *Container) FindTexture(name string) (*renderer.Ref[*renderer.Texture], error) {
	e, ok := c.textures[name]
	if !ok {
		return nil, &NotFoundError{Kind: KindTexture, Name: name}
	}
	return e.ref.Clone(), nil
}

// Generation identifies the current build of a program or texture. It
// changes whenever the resource is replaced or reloaded.
func (c *Container) Generation(kind AssetKind, name string) (uuid.UUID, bool) {
	switch kind {
	case KindProgram:
		if e, ok := c.programs[name]; ok {
			return e.generation, true
		}
	case KindTexture:
		if e, ok := c.textures[name]; ok {
			return e.generation, true
		}
	case KindMaterial:
		if m, ok := c.materials[name]; ok {
			return m.Generation, true
		}
	}
	return uuid.Nil, false
}

// Release drops every reference the container holds and stops watching.
// Resources still referenced by callers stay alive until they release them.
func (c *Container) Release() {
	c.stopWatching()
	for name, e := range c.programs {
		e.ref.Release()
		delete(c.programs, name)
	}
	for name, e := range c.textures {
		e.ref.Release()
		delete(c.textures, name)
	}
	clear(c.materials)
}

func build[T renderer.Deleter](e *entry[T]) error {
	v, err := e.rebuild()
	if err != nil {
		return err
	}
	if e.after != nil {
		if err := e.after(v); err != nil {
			v.Delete()
			return err
		}
	}
	if e.ref != nil {
		e.ref.Release()
	}
	e.ref = renderer.NewRef(v)
	e.generation = uuid.New()
	return nil
}

func replace[T renderer.Deleter](m map[string]*entry[T], name string, e *entry[T]) {
	if old, ok := m[name]; ok {
		old.ref.Release()
	}
	m[name] = e
}
