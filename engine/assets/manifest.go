package assets

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

/**
 * @brief The assets.toml file: everything to load at startup. Enum values in
 * texture configs are written by name, e.g. pixel_format = "RGB".
 */
type Manifest struct {
	Programs  []ProgramManifest  `toml:"program"`
	Textures  []TextureManifest  `toml:"texture"`
	Cubemaps  []CubemapManifest  `toml:"cubemap"`
	Materials []MaterialManifest `toml:"material"`
}

type ProgramManifest struct {
	Name     string                          `toml:"name"`
	Vertex   string                          `toml:"vertex"`
	Fragment string                          `toml:"fragment"`
	Geometry string                          `toml:"geometry"`
	Samplers map[string]metadata.TextureUnit `toml:"samplers"`
}

// TextureManifest loads one 2D texture. Without a config table the image is
// stored as RGB.
type TextureManifest struct {
	Name   string                  `toml:"name"`
	File   string                  `toml:"file"`
	Config *renderer.TextureConfig `toml:"config"`
}

func (t TextureManifest) TextureConfig() renderer.TextureConfig {
	if t.Config == nil {
		return renderer.RGBTextureConfig(metadata.Texture2D)
	}
	return *t.Config
}

type CubemapManifest struct {
	Name      string                  `toml:"name"`
	Dir       string                  `toml:"dir"`
	Extension string                  `toml:"extension"`
	Config    *renderer.TextureConfig `toml:"config"`
}

func (c CubemapManifest) TextureConfig() renderer.TextureConfig {
	if c.Config == nil {
		return renderer.RGBTextureConfig(metadata.TextureCubeMap)
	}
	return *c.Config
}

type MaterialManifest struct {
	File string `toml:"file"`
}

// ParseManifest decodes manifest text without loading anything.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse asset manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest loads every asset listed in the manifest at path: programs,
// then textures, cubemaps and materials. It stops at the first failure.
func (c *Container) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load asset manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return err
	}

	for _, p := range m.Programs {
		ref, err := c.AddProgramWithSamplers(p.Name, p.Vertex, p.Fragment, p.Geometry, p.Samplers)
		if err != nil {
			return err
		}
		ref.Release()
	}
	for _, t := range m.Textures {
		ref, err := c.AddTexture(t.Name, t.File, t.TextureConfig())
		if err != nil {
			return err
		}
		ref.Release()
	}
	for _, cm := range m.Cubemaps {
		ref, err := c.AddCubemap(cm.Name, cm.Dir, cm.Extension, cm.TextureConfig())
		if err != nil {
			return err
		}
		ref.Release()
	}
	for _, mat := range m.Materials {
		if _, err := c.LoadMaterial(mat.File); err != nil {
			return err
		}
	}
	core.LogInfo("asset manifest loaded", "path", path,
		"programs", len(m.Programs), "textures", len(m.Textures)+len(m.Cubemaps), "materials", len(m.Materials))
	return nil
}
