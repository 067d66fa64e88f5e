package assets

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/ace/engine/assets/loaders"
	"github.com/spaghettifunk/ace/engine/renderer"
)

// Material is a named set of surface parameters for a shader.
type Material struct {
	loaders.MaterialConfig
	Generation uuid.UUID
}

func NewMaterial(cfg loaders.MaterialConfig) *Material {
	return &Material{MaterialConfig: cfg, Generation: uuid.New()}
}

// Apply uploads the material to the material.* uniforms of the bound program.
func (m *Material) Apply(p *renderer.ActiveProgram) error {
	uniforms := []struct {
		name  string
		value any
	}{
		{"material.ambient", m.AmbientColour},
		{"material.diffuse", m.DiffuseColour},
		{"material.specular", m.SpecularColour},
		{"material.shininess", m.Shininess},
		{"material.dissolve", m.Dissolve},
		{"material.optical_density", m.OpticalDensity},
	}
	for _, u := range uniforms {
		if err := p.SetUniform(u.name, u.value); err != nil {
			return err
		}
	}
	return nil
}

// AddMaterial stores m under its name, replacing any material of that name.
func (c *Container) AddMaterial(m *Material) {
	if m.Generation == uuid.Nil {
		m.Generation = uuid.New()
	}
	c.materials[m.Name] = m
}

func (c *Container) FindMaterial(name string) (*Material, error) {
	m, ok := c.materials[name]
	if !ok {
		return nil, &NotFoundError{Kind: KindMaterial, Name: name}
	}
	return m, nil
}

// LoadMaterial reads <root>/materials/file and adds the material it describes.
func (c *Container) LoadMaterial(file string) (*Material, error) {
	cfg, err := loaders.LoadMaterial(c.MaterialPath(file))
	if err != nil {
		return nil, err
	}
	m := NewMaterial(*cfg)
	c.AddMaterial(m)
	return m, nil
}
